// Package textcrypt signs, verifies and encrypts text.
//
// Two signature formats are supported:
//
//   - [FormatBlake3]: a Blake3 keyed hash. The same 32-byte key signs and
//     verifies, so it is a MAC rather than a public-key signature.
//   - [FormatEd25519]: RFC 8032 Ed25519. A 32-byte seed signs and the
//     derived 32-byte public key verifies.
//
// Text encryption uses ChaCha20-Poly1305 with a random nonce embedded in
// the output.
//
// Basic usage:
//
//	keys, err := textcrypt.Generate(textcrypt.FormatEd25519)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := textcrypt.Sign(strings.NewReader("hello"), keys["ed25519.sk"], textcrypt.FormatEd25519)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := textcrypt.Verify(strings.NewReader("hello"), keys["ed25519.pk"], sig, textcrypt.FormatEd25519)
//
// All functions work on raw bytes. Callers that pass signatures or
// ciphertexts through text channels encode them themselves, for example
// with URL-safe base64.
//
// Inputs are read fully into memory before any cryptographic work; bound
// the reader if its size is not trusted.
package textcrypt
