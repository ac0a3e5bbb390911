package textcrypt

import (
	"errors"
	"fmt"
	"io"

	"github.com/textcrypt/textcrypt/internal/crypto"
)

// Sign reads r to the end and signs its contents with key.
//
// For FormatBlake3 the key is the shared secret and the signature is 32
// bytes. For FormatEd25519 the key is the 32-byte seed and the signature
// is 64 bytes. Only the first 32 bytes of key are used.
func Sign(r io.Reader, key []byte, format Format) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	signer, err := newSigner(key, format)
	if err != nil {
		return nil, err
	}

	return signer.Sign(data), nil
}

// Verify reads r to the end and checks sig against its contents.
//
// A signature that does not match returns false with a nil error. For
// FormatEd25519 the key is the public key, and a signature that is not
// 64 bytes fails with ErrMalformedSignature.
func Verify(r io.Reader, key, sig []byte, format Format) (bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("read input: %w", err)
	}

	verifier, err := newVerifier(key, format)
	if err != nil {
		return false, err
	}

	return verifier.Verify(data, sig)
}

// Generate creates the key artifacts for format.
func Generate(format Format) (KeySet, error) {
	var (
		keys map[string][]byte
		err  error
	)
	switch format {
	case FormatBlake3:
		keys, err = crypto.GenerateBlake3()
	case FormatEd25519:
		keys, err = crypto.GenerateEd25519()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	if err != nil {
		return nil, fmt.Errorf("generate %s key: %w", format, err)
	}
	return KeySet(keys), nil
}

// Encrypt encrypts plaintext with ChaCha20-Poly1305 under a 32-byte key.
// The result is nonce (12 bytes) || ciphertext || tag (16 bytes).
func Encrypt(plaintext string, key []byte) ([]byte, error) {
	return crypto.Encrypt(plaintext, key)
}

// Decrypt reverses Encrypt.
func Decrypt(data, key []byte) (string, error) {
	return crypto.Decrypt(data, key)
}

func newSigner(key []byte, format Format) (crypto.Signer, error) {
	switch format {
	case FormatBlake3:
		k, err := crypto.NewBlake3Key(key)
		if err != nil {
			return nil, wrapKeyError(format, "secret", key, err)
		}
		return k, nil
	case FormatEd25519:
		k, err := crypto.NewEd25519SigningKey(key)
		if err != nil {
			return nil, wrapKeyError(format, "signing", key, err)
		}
		return k, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
}

func newVerifier(key []byte, format Format) (crypto.Verifier, error) {
	switch format {
	case FormatBlake3:
		k, err := crypto.NewBlake3Key(key)
		if err != nil {
			return nil, wrapKeyError(format, "secret", key, err)
		}
		return k, nil
	case FormatEd25519:
		k, err := crypto.NewEd25519VerifyingKey(key)
		if err != nil {
			return nil, wrapKeyError(format, "public", key, err)
		}
		return k, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
}

// wrapKeyError converts key construction failures to *KeyError.
func wrapKeyError(format Format, kind string, key []byte, err error) error {
	if errors.Is(err, crypto.ErrKeyLength) || errors.Is(err, crypto.ErrInvalidPoint) {
		return &KeyError{Format: format, Kind: kind, Length: len(key), Err: err}
	}
	return err
}
