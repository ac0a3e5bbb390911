package crypto

const (
	// KeySize is the size in bytes of a Blake3 key, an Ed25519 seed and an
	// Ed25519 public key.
	KeySize = 32

	// Blake3SignatureSize is the size of a Blake3 keyed-hash digest in bytes.
	Blake3SignatureSize = 32
	// Ed25519SignatureSize is the size of an Ed25519 signature in bytes.
	Ed25519SignatureSize = 64

	// AEADKeySize is the size of a ChaCha20-Poly1305 key in bytes.
	AEADKeySize = 32
	// AEADNonceSize is the size of a ChaCha20-Poly1305 nonce in bytes.
	AEADNonceSize = 12
	// AEADTagSize is the size of a Poly1305 authentication tag in bytes.
	AEADTagSize = 16

	// MinCiphertextSize is the size of a sealed empty message: nonce plus tag.
	MinCiphertextSize = AEADNonceSize + AEADTagSize
)

// Artifact names produced by key generation.
const (
	Blake3KeyFile         = "blake3.txt"
	Ed25519SigningKeyFile = "ed25519.sk"
	Ed25519PublicKeyFile  = "ed25519.pk"
)
