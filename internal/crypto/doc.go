// Package crypto provides the signing, verification, key generation and
// authenticated encryption primitives behind textcrypt.
//
// # Algorithm Suite
//
//   - Blake3 keyed hash: a MAC over the message with a 32-byte symmetric
//     key. The same [Blake3Key] signs and verifies; signatures are 32 bytes.
//
//   - Ed25519 (RFC 8032): deterministic digital signatures. An
//     [Ed25519SigningKey] is built from a 32-byte seed and derives its
//     [Ed25519VerifyingKey]; signatures are 64 bytes.
//
//   - ChaCha20-Poly1305 (RFC 8439): authenticated encryption of text with
//     a 32-byte key and a random 12-byte nonce per message.
//
// # Key Material
//
// Key constructors take raw bytes and use the first 32. Shorter input fails
// with [ErrKeyLength]. Longer input is truncated, which keeps key files with
// trailing bytes usable. Ed25519 public keys must also decode to a curve
// point, otherwise construction fails with [ErrInvalidPoint].
//
// AEAD keys are not truncated: [Encrypt] and [Decrypt] require exactly
// 32 bytes.
//
// # Ciphertext Format
//
// [Encrypt] returns nonce (12 bytes) || ciphertext || tag (16 bytes). Nonces
// MUST be unique for each encryption with the same key; they are drawn from
// crypto/rand on every call and never derived from the input.
//
// [Decrypt] reports tampering and a wrong key identically, as
// [ErrAuthenticationFailed].
//
// # Text Encoding
//
// Primitives take and return raw bytes. Callers passing signatures or
// ciphertexts through text channels use a [Codec]:
//
//   - [CodecBase64URL]: URL-safe base64 without padding (RFC 4648 §5).
//   - [CodecBase58]: Bitcoin-alphabet base58.
package crypto
