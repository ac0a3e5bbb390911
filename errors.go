package textcrypt

import (
	"errors"
	"fmt"

	"github.com/textcrypt/textcrypt/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnknownFormat is returned for a format name or value outside
	// {blake3, ed25519}.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrKeyLength is returned when key bytes are shorter than 32 bytes.
	ErrKeyLength = crypto.ErrKeyLength

	// ErrInvalidPoint is returned when Ed25519 public key bytes are not a
	// point on the curve.
	ErrInvalidPoint = crypto.ErrInvalidPoint

	// ErrMalformedSignature is returned when an Ed25519 signature is not
	// 64 bytes.
	ErrMalformedSignature = crypto.ErrMalformedSignature

	// ErrInvalidKeyLength is returned when an encryption key is not exactly
	// 32 bytes.
	ErrInvalidKeyLength = crypto.ErrInvalidKeyLength

	// ErrMalformedCiphertext is returned when ciphertext is shorter than a
	// nonce plus an authentication tag.
	ErrMalformedCiphertext = crypto.ErrMalformedCiphertext

	// ErrAuthenticationFailed is returned when ciphertext was tampered with
	// or the key is wrong. The two cases are not distinguished.
	ErrAuthenticationFailed = crypto.ErrAuthenticationFailed

	// ErrInvalidEncoding is returned when decrypted text is not valid UTF-8.
	ErrInvalidEncoding = crypto.ErrInvalidEncoding

	// ErrRandomSource is returned when the system random source fails.
	ErrRandomSource = crypto.ErrRandomSource

	// ErrArtifactExists is returned by KeySet.WriteTo when a key file is
	// already present and overwriting was not requested.
	ErrArtifactExists = errors.New("key file already exists")
)

// KeyError reports key material that could not be used for a format.
// It never contains the key bytes.
type KeyError struct {
	Format Format
	Kind   string // "secret", "signing", "public"
	Length int
	Err    error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %s key (%d bytes): %v", e.Format, e.Kind, e.Length, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error {
	return e.Err
}
