package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encoding selects the base64 alphabet used for URL payloads.
type Encoding string

const (
	// EncodingStd is the standard alphabet with padding.
	EncodingStd Encoding = "std"
	// EncodingURL is the URL-safe alphabet without padding.
	EncodingURL Encoding = "url"
)

// ParseEncoding validates an encoding name. An empty name means EncodingStd.
func ParseEncoding(name string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(name))) {
	case "", EncodingStd:
		return EncodingStd, nil
	case EncodingURL:
		return EncodingURL, nil
	default:
		return "", fmt.Errorf("unknown payload encoding %q", name)
	}
}

// Encode returns b as base64 text without line wrapping.
func (e Encoding) Encode(b []byte) string {
	if e == EncodingURL {
		return base64.RawURLEncoding.EncodeToString(b)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// DecodePayload decodes base64 text in either alphabet, padded or not.
func DecodePayload(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")

	enc := base64.RawStdEncoding
	if strings.ContainsAny(s, "-_") {
		enc = base64.RawURLEncoding
	}

	b, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	return b, nil
}
