package crypto

import (
	"fmt"
	"os"

	"filippo.io/edwards25519"
	"github.com/cloudflare/circl/sign/ed25519"
)

// keyBytes returns the first KeySize bytes of b as an array.
// Inputs longer than KeySize are truncated; key files written by older
// tooling may carry trailing bytes such as a newline.
func keyBytes(b []byte) ([KeySize]byte, error) {
	var key [KeySize]byte
	if len(b) < KeySize {
		return key, fmt.Errorf("%w: got %d, want %d", ErrKeyLength, len(b), KeySize)
	}
	copy(key[:], b[:KeySize])
	return key, nil
}

// Blake3Key is a symmetric key for the Blake3 keyed hash. The same key
// signs and verifies.
type Blake3Key struct {
	key [KeySize]byte
}

// NewBlake3Key creates a Blake3 key from the first 32 bytes of b.
func NewBlake3Key(b []byte) (*Blake3Key, error) {
	key, err := keyBytes(b)
	if err != nil {
		return nil, err
	}
	return &Blake3Key{key: key}, nil
}

// LoadBlake3Key reads a Blake3 key from a file.
func LoadBlake3Key(path string) (*Blake3Key, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewBlake3Key(b)
}

// Bytes returns a copy of the raw key.
func (k *Blake3Key) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, k.key[:])
	return out
}

// Ed25519SigningKey is an Ed25519 private key built from a 32-byte seed.
type Ed25519SigningKey struct {
	priv ed25519.PrivateKey
}

// NewEd25519SigningKey creates a signing key from the first 32 bytes of seed.
func NewEd25519SigningKey(seed []byte) (*Ed25519SigningKey, error) {
	s, err := keyBytes(seed)
	if err != nil {
		return nil, err
	}
	return &Ed25519SigningKey{priv: ed25519.NewKeyFromSeed(s[:])}, nil
}

// LoadEd25519SigningKey reads an Ed25519 seed from a file.
func LoadEd25519SigningKey(path string) (*Ed25519SigningKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewEd25519SigningKey(b)
}

// Seed returns a copy of the 32-byte seed.
func (k *Ed25519SigningKey) Seed() []byte {
	return k.priv.Seed()
}

// Public derives the verifying key. The result is deterministic for a seed.
func (k *Ed25519SigningKey) Public() *Ed25519VerifyingKey {
	pub := k.priv.Public().(ed25519.PublicKey)
	return &Ed25519VerifyingKey{pub: pub}
}

// Ed25519VerifyingKey is an Ed25519 public key.
type Ed25519VerifyingKey struct {
	pub ed25519.PublicKey
}

// NewEd25519VerifyingKey creates a verifying key from the first 32 bytes of b.
// The bytes must be the encoding of a point on the curve.
func NewEd25519VerifyingKey(b []byte) (*Ed25519VerifyingKey, error) {
	key, err := keyBytes(b)
	if err != nil {
		return nil, err
	}
	if _, err := new(edwards25519.Point).SetBytes(key[:]); err != nil {
		return nil, ErrInvalidPoint
	}
	pub := make([]byte, KeySize)
	copy(pub, key[:])
	return &Ed25519VerifyingKey{pub: ed25519.PublicKey(pub)}, nil
}

// LoadEd25519VerifyingKey reads an Ed25519 public key from a file.
func LoadEd25519VerifyingKey(path string) (*Ed25519VerifyingKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewEd25519VerifyingKey(b)
}

// Bytes returns a copy of the 32-byte public key.
func (k *Ed25519VerifyingKey) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, k.pub)
	return out
}
