package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"
)

// Sign returns the 64-byte RFC 8032 signature of message. Signing is
// deterministic and reads no randomness.
func (k *Ed25519SigningKey) Sign(message []byte) []byte {
	return ed25519.Sign(k.priv, message)
}

// Verify checks an Ed25519 signature. It fails with ErrMalformedSignature
// when sig is not 64 bytes; any other rejection is false.
func (k *Ed25519VerifyingKey) Verify(message, sig []byte) (bool, error) {
	if len(sig) != Ed25519SignatureSize {
		return false, fmt.Errorf("%w: got %d, want %d", ErrMalformedSignature, len(sig), Ed25519SignatureSize)
	}
	return ed25519.Verify(k.pub, message, sig), nil
}

func (k *Ed25519SigningKey) signer()     {}
func (k *Ed25519VerifyingKey) verifier() {}
