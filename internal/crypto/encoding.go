package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 without padding.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// ToBase64URLPadded encodes bytes to URL-safe base64 with padding.
func ToBase64URLPadded(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeBase64 decodes base64url (with or without padding) to bytes.
// This version is more lenient and tries multiple encodings.
func DecodeBase64(s string) ([]byte, error) {
	// Try without padding first
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	// Try with padding
	data, err = base64.URLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	// Try standard base64 without padding
	data, err = base64.RawStdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	// Try standard base64 with padding
	return base64.StdEncoding.DecodeString(s)
}

// ToBase58 encodes bytes with the Bitcoin base58 alphabet.
func ToBase58(data []byte) string {
	return base58.Encode(data)
}

// FromBase58 decodes a base58 string.
func FromBase58(s string) ([]byte, error) {
	return base58.Decode(s)
}

// Codec names a text-safe encoding for binary signatures and ciphertexts.
type Codec string

const (
	// CodecBase64URL is URL-safe base64 without padding.
	CodecBase64URL Codec = "base64url"
	// CodecBase58 is Bitcoin-alphabet base58.
	CodecBase58 Codec = "base58"
)

// ParseCodec returns the codec with the given name.
func ParseCodec(name string) (Codec, error) {
	switch c := Codec(name); c {
	case CodecBase64URL, CodecBase58:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// Encode encodes data with the codec.
func (c Codec) Encode(data []byte) (string, error) {
	switch c {
	case CodecBase64URL:
		return ToBase64URL(data), nil
	case CodecBase58:
		return ToBase58(data), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, string(c))
}

// Decode decodes s, ignoring surrounding whitespace. Base64 input is
// decoded leniently so padded or standard-alphabet text is accepted.
func (c Codec) Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	switch c {
	case CodecBase64URL:
		return DecodeBase64(s)
	case CodecBase58:
		return FromBase58(s)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, string(c))
}
