package textcrypt

import "fmt"

// Format selects a signature algorithm.
type Format int

const (
	// FormatBlake3 is the Blake3 keyed hash. One 32-byte key signs and verifies.
	FormatBlake3 Format = iota + 1
	// FormatEd25519 is Ed25519. A 32-byte seed signs; a 32-byte public key verifies.
	FormatEd25519
)

// Formats lists every supported format.
var Formats = []Format{FormatBlake3, FormatEd25519}

// ParseFormat returns the format with the given name ("blake3" or "ed25519").
func ParseFormat(s string) (Format, error) {
	switch s {
	case "blake3":
		return FormatBlake3, nil
	case "ed25519":
		return FormatEd25519, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatBlake3:
		return "blake3"
	case FormatEd25519:
		return "ed25519"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FormatBlake3, FormatEd25519:
		return []byte(f.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
