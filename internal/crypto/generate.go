package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/textcrypt/textcrypt/internal/genpass"
)

// randReader is the random source used for nonces and key generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func random() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// readRandom fills b from the random source.
func readRandom(b []byte) error {
	if _, err := io.ReadFull(random(), b); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return nil
}

// GenerateBlake3 creates a Blake3 key from a 32-character password drawn
// from every character class, and returns it under Blake3KeyFile.
func GenerateBlake3() (map[string][]byte, error) {
	key, err := blake3Key(random(), genpass.Options{
		Length: KeySize,
		Upper:  true,
		Lower:  true,
		Number: true,
		Symbol: true,
	})
	if err != nil {
		return nil, err
	}

	return map[string][]byte{
		Blake3KeyFile: key,
	}, nil
}

// blake3Key draws a password from r. Only reader failures become
// ErrRandomSource; other generator errors pass through wrapped.
func blake3Key(r io.Reader, opts genpass.Options) ([]byte, error) {
	password, err := genpass.GenerateFrom(r, opts)
	if err != nil {
		if errors.Is(err, genpass.ErrRandomSource) {
			return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		return nil, fmt.Errorf("generate password: %w", err)
	}
	return []byte(password), nil
}

// GenerateEd25519 creates an Ed25519 keypair and returns the seed under
// Ed25519SigningKeyFile and the public key under Ed25519PublicKeyFile.
func GenerateEd25519() (map[string][]byte, error) {
	seed := make([]byte, ed25519.SeedSize)
	if err := readRandom(seed); err != nil {
		return nil, err
	}

	sk, err := NewEd25519SigningKey(seed)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{
		Ed25519SigningKeyFile: sk.Seed(),
		Ed25519PublicKeyFile:  sk.Public().Bytes(),
	}, nil
}
