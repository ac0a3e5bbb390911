// Package genpass generates random passwords from a fixed alphabet that
// leaves out look-alike characters (0/O, 1/l/I).
package genpass

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	upper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lower  = "abcdefghijkmnpqrstuvwxyz"
	number = "123456789"
	symbol = "!@#$%&^*_"
)

// MaxLength is the longest password Generate produces.
const MaxLength = 255

var (
	// ErrNoCharacterClass is returned when every character class is disabled.
	ErrNoCharacterClass = errors.New("at least one character class is required")

	// ErrLengthTooShort is returned when the length cannot hold one character
	// of each enabled class.
	ErrLengthTooShort = errors.New("password length too short")

	// ErrLengthTooLong is returned when the length exceeds MaxLength.
	ErrLengthTooLong = errors.New("password length too long")

	// ErrRandomSource is returned when the random reader fails.
	ErrRandomSource = errors.New("random source failed")
)

// Options selects the password length and character classes.
type Options struct {
	Length int
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool
}

// DefaultOptions returns a 16-character password with every class enabled.
func DefaultOptions() Options {
	return Options{Length: 16, Upper: true, Lower: true, Number: true, Symbol: true}
}

func (o Options) classes() []string {
	var classes []string
	if o.Upper {
		classes = append(classes, upper)
	}
	if o.Lower {
		classes = append(classes, lower)
	}
	if o.Number {
		classes = append(classes, number)
	}
	if o.Symbol {
		classes = append(classes, symbol)
	}
	return classes
}

// Generate returns a password drawn from crypto/rand.
func Generate(opts Options) (string, error) {
	return GenerateFrom(rand.Reader, opts)
}

// GenerateFrom returns a password drawn from r. The password contains at
// least one character of each enabled class.
func GenerateFrom(r io.Reader, opts Options) (string, error) {
	classes := opts.classes()
	if len(classes) == 0 {
		return "", ErrNoCharacterClass
	}
	if opts.Length < len(classes) {
		return "", fmt.Errorf("%w: got %d, need at least %d", ErrLengthTooShort, opts.Length, len(classes))
	}
	if opts.Length > MaxLength {
		return "", fmt.Errorf("%w: got %d, max %d", ErrLengthTooLong, opts.Length, MaxLength)
	}

	var all string
	password := make([]byte, 0, opts.Length)
	for _, class := range classes {
		all += class
		c, err := pick(r, class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < opts.Length {
		c, err := pick(r, all)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates, so the guaranteed characters are not always in front.
	for i := len(password) - 1; i > 0; i-- {
		j, err := randIndex(r, i+1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func pick(r io.Reader, chars string) (byte, error) {
	i, err := randIndex(r, len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

func randIndex(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}
