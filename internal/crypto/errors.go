package crypto

import "errors"

var (
	// ErrKeyLength is returned when key or seed bytes are shorter than the
	// algorithm requires.
	ErrKeyLength = errors.New("key too short")

	// ErrInvalidPoint is returned when Ed25519 public key bytes do not
	// decode to a point on the curve.
	ErrInvalidPoint = errors.New("invalid ed25519 public key")

	// ErrMalformedSignature is returned when an Ed25519 signature is not
	// exactly 64 bytes.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrInvalidKeyLength is returned when an AEAD key is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrMalformedCiphertext is returned when the ciphertext is too short to
	// hold a nonce and an authentication tag.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrAuthenticationFailed is returned when the authentication tag does
	// not verify. A wrong key and tampered data are reported the same way.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidEncoding is returned when decrypted bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("plaintext is not valid UTF-8")

	// ErrRandomSource is returned when the random source cannot supply bytes.
	ErrRandomSource = errors.New("random source unavailable")

	// ErrUnknownEncoding is returned for an unrecognized text codec name.
	ErrUnknownEncoding = errors.New("unknown encoding")
)
