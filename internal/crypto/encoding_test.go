package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBase64URL_NoPadding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"one byte", []byte("a")},      // Would normally have == padding
		{"two bytes", []byte("ab")},    // Would normally have = padding
		{"three bytes", []byte("abc")}, // No padding needed
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := ToBase64URL(tt.data)
			if strings.Contains(encoded, "=") {
				t.Errorf("encoded string contains padding: %s", encoded)
			}
		})
	}
}

func TestBase64URL_URLSafe(t *testing.T) {
	// 0xfb will produce + and 0x3f will produce / in standard base64
	data := []byte{0xfb, 0xff, 0x3f, 0xff}

	encoded := ToBase64URL(data)

	if strings.ContainsAny(encoded, "+/") {
		t.Errorf("encoded is not URL-safe: %s", encoded)
	}
}

func TestFromBase64URL_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid chars", "!!!invalid!!!"},
		{"spaces in middle", "aGVs bG8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBase64URL(tt.input); err == nil {
				t.Error("expected error for invalid input")
			}
		})
	}
}

func TestDecodeBase64_MultipleFormats(t *testing.T) {
	original := []byte("hello world")

	tests := []struct {
		name    string
		encoded string
	}{
		{"raw url encoding", "aGVsbG8gd29ybGQ"},
		{"url encoding with padding", "aGVsbG8gd29ybGQ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBase64(tt.encoded)
			if err != nil {
				t.Fatalf("DecodeBase64() error = %v", err)
			}
			if !bytes.Equal(decoded, original) {
				t.Errorf("DecodeBase64() = %v, want %v", decoded, original)
			}
		})
	}

	// Standard alphabet: 0xfb 0xff encodes to "+/8=".
	decoded, err := DecodeBase64("+/8=")
	if err != nil {
		t.Fatalf("DecodeBase64(std) error = %v", err)
	}
	if !bytes.Equal(decoded, []byte{0xfb, 0xff}) {
		t.Errorf("DecodeBase64(std) = %x, want fbff", decoded)
	}
}

func TestBase58(t *testing.T) {
	if got := ToBase58([]byte("hello world")); got != "StV1DL6CwTryKyV" {
		t.Errorf("ToBase58() = %s, want StV1DL6CwTryKyV", got)
	}

	decoded, err := FromBase58("StV1DL6CwTryKyV")
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != "hello world" {
		t.Errorf("FromBase58() = %q", decoded)
	}

	if _, err := FromBase58("0OIl"); err == nil {
		t.Error("expected error for characters outside the base58 alphabet")
	}
}

func TestParseCodec(t *testing.T) {
	for _, name := range []string{"base64url", "base58"} {
		c, err := ParseCodec(name)
		if err != nil {
			t.Errorf("ParseCodec(%q) error = %v", name, err)
		}
		if string(c) != name {
			t.Errorf("ParseCodec(%q) = %q", name, c)
		}
	}

	for _, name := range []string{"", "base64", "hex", "BASE58"} {
		if _, err := ParseCodec(name); !errors.Is(err, ErrUnknownEncoding) {
			t.Errorf("ParseCodec(%q) error = %v, want ErrUnknownEncoding", name, err)
		}
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	sig := bytes.Repeat([]byte{0xfb, 0x00, 0x3f}, 22)

	for _, c := range []Codec{CodecBase64URL, CodecBase58} {
		t.Run(string(c), func(t *testing.T) {
			encoded, err := c.Encode(sig)
			if err != nil {
				t.Fatal(err)
			}

			// Trailing newline, as read from a file.
			decoded, err := c.Decode(encoded + "\n")
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !bytes.Equal(decoded, sig) {
				t.Errorf("round trip failed: got %x, want %x", decoded, sig)
			}
		})
	}

	if _, err := Codec("rot13").Encode(sig); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("Encode() error = %v, want ErrUnknownEncoding", err)
	}
}

// Example_codec demonstrates encoding a signature for a text channel.
func Example_codec() {
	data := []byte("Hello, World!")

	urlSafe, _ := CodecBase64URL.Encode(data)
	fmt.Printf("base64url: %s\n", urlSafe)

	decoded, _ := CodecBase64URL.Decode(urlSafe)
	fmt.Printf("decoded: %s\n", decoded)

	// Output:
	// base64url: SGVsbG8sIFdvcmxkIQ
	// decoded: Hello, World!
}

func TestToBase64URLPadded(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte("hello"), "aGVsbG8="},
		{[]byte{0xfb, 0xff}, "-_8="},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := ToBase64URLPadded(tt.in); got != tt.want {
			t.Errorf("ToBase64URLPadded(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
