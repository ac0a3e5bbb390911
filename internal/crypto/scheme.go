package crypto

// Signer produces a signature over a message.
//
// The set of implementations is closed: Blake3Key and Ed25519SigningKey.
type Signer interface {
	Sign(message []byte) []byte
	signer()
}

// Verifier checks a signature over a message. A signature that does not
// match is reported as false with a nil error.
//
// The set of implementations is closed: Blake3Key and Ed25519VerifyingKey.
type Verifier interface {
	Verify(message, sig []byte) (bool, error)
	verifier()
}

var (
	_ Signer   = (*Blake3Key)(nil)
	_ Verifier = (*Blake3Key)(nil)
	_ Signer   = (*Ed25519SigningKey)(nil)
	_ Verifier = (*Ed25519VerifyingKey)(nil)
)
