package crypto

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"
)

// Seal encrypts plaintext with ChaCha20-Poly1305 under nonce, with no
// associated data.
// Returns: nonce (12 bytes) || ciphertext || tag (16 bytes)
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	if len(key) != AEADKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(key), AEADKeySize)
	}

	if len(nonce) != AEADNonceSize {
		return nil, fmt.Errorf("invalid nonce size: got %d, want %d", len(nonce), AEADNonceSize)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	out := make([]byte, 0, AEADNonceSize+len(plaintext)+AEADTagSize)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal.
// The input format is: nonce (12 bytes) || ciphertext || tag (16 bytes)
func Open(key, data []byte) ([]byte, error) {
	if len(key) != AEADKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(key), AEADKeySize)
	}

	if len(data) < MinCiphertextSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrMalformedCiphertext, len(data), MinCiphertextSize)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, data[:AEADNonceSize], data[AEADNonceSize:], nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

// Encrypt encrypts text under a fresh random nonce.
func Encrypt(plaintext string, key []byte) ([]byte, error) {
	if len(key) != AEADKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(key), AEADKeySize)
	}

	nonce := make([]byte, AEADNonceSize)
	if err := readRandom(nonce); err != nil {
		return nil, err
	}

	return Seal(key, nonce, []byte(plaintext))
}

// Decrypt reverses Encrypt. The plaintext must be valid UTF-8.
func Decrypt(data, key []byte) (string, error) {
	plaintext, err := Open(key, data)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plaintext) {
		return "", ErrInvalidEncoding
	}

	return string(plaintext), nil
}
