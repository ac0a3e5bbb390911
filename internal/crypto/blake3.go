package crypto

import (
	"crypto/subtle"

	"lukechampine.com/blake3"
)

// Sign returns the 32-byte Blake3 keyed hash of message.
func (k *Blake3Key) Sign(message []byte) []byte {
	h := blake3.New(Blake3SignatureSize, k.key[:])
	h.Write(message)
	return h.Sum(nil)
}

// Verify recomputes the keyed hash and compares it to sig in constant time.
// A signature of the wrong length is a mismatch, not an error.
func (k *Blake3Key) Verify(message, sig []byte) (bool, error) {
	return subtle.ConstantTimeCompare(k.Sign(message), sig) == 1, nil
}

func (k *Blake3Key) signer()   {}
func (k *Blake3Key) verifier() {}
