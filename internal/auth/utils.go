package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandString returns a URL-safe random string with bytes*8 bits of
// entropy. The flow uses 32 bytes for state and nonce.
func GenerateRandString(bytes int) string {
	if bytes <= 0 {
		bytes = 32
	}

	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.RawURLEncoding.EncodeToString(b)
}
