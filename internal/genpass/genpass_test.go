package genpass

import (
	"errors"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_LengthAndClasses(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"all classes", Options{Length: 32, Upper: true, Lower: true, Number: true, Symbol: true}, []string{upper, lower, number, symbol}},
		{"letters only", Options{Length: 8, Upper: true, Lower: true}, []string{upper, lower}},
		{"digits only", Options{Length: 6, Number: true}, []string{number}},
		{"exact minimum", Options{Length: 4, Upper: true, Lower: true, Number: true, Symbol: true}, []string{upper, lower, number, symbol}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(pw) != tt.opts.Length {
				t.Errorf("len = %d, want %d", len(pw), tt.opts.Length)
			}

			alphabet := strings.Join(tt.want, "")
			for _, c := range pw {
				if !strings.ContainsRune(alphabet, c) {
					t.Errorf("character %q not in enabled alphabet", c)
				}
			}
			for _, class := range tt.want {
				if !strings.ContainsAny(pw, class) {
					t.Errorf("password %q has no character from %q", pw, class)
				}
			}
		})
	}
}

func TestGenerate_NoLookAlikes(t *testing.T) {
	pw, err := Generate(Options{Length: 200, Upper: true, Lower: true, Number: true})
	if err != nil {
		t.Fatal(err)
	}
	if strings.ContainsAny(pw, "0OlI") {
		t.Errorf("password contains look-alike characters: %q", pw)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	a, err := Generate(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two generated passwords are identical")
	}
}

func TestGenerate_InvalidOptions(t *testing.T) {
	if _, err := Generate(Options{Length: 10}); !errors.Is(err, ErrNoCharacterClass) {
		t.Errorf("no classes: error = %v, want ErrNoCharacterClass", err)
	}
	if _, err := Generate(Options{Length: 3, Upper: true, Lower: true, Number: true, Symbol: true}); !errors.Is(err, ErrLengthTooShort) {
		t.Errorf("short length: error = %v, want ErrLengthTooShort", err)
	}
	if _, err := Generate(Options{Length: MaxLength + 1, Lower: true}); !errors.Is(err, ErrLengthTooLong) {
		t.Errorf("long length: error = %v, want ErrLengthTooLong", err)
	}
	if pw, err := Generate(Options{Length: MaxLength, Lower: true}); err != nil || len(pw) != MaxLength {
		t.Errorf("Generate(MaxLength) = %d chars, %v", len(pw), err)
	}
}

func TestGenerateFrom_FailingReader(t *testing.T) {
	if _, err := GenerateFrom(failingReader{}, DefaultOptions()); !errors.Is(err, ErrRandomSource) {
		t.Errorf("GenerateFrom() error = %v, want ErrRandomSource", err)
	}
}
