package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"mlsbridge/internal/domain"
)

// HashSize is the output size of Hash and MAC.
const HashSize = sha256.Size

// Hash returns SHA-256(data).
func Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// MAC returns HMAC-SHA-256(key, data).
func MAC(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// Extract is HKDF-Extract with SHA-256. A nil salt is treated as zeros.
func Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(sha256.New, ikm, salt)
}

// Expand is HKDF-Expand with SHA-256.
func Expand(secret, info []byte, length int) ([]byte, error) {
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, secret, info), out); err != nil {
		return nil, fmt.Errorf("%w: hkdf expand: %v", domain.ErrCrypto, err)
	}
	return out, nil
}

// labeled prefixes info with a fixed context string so keys derived for one
// purpose never collide with another.
func labeled(label string, context []byte) []byte {
	out := make([]byte, 0, len(labelPrefix)+len(label)+len(context))
	out = append(out, labelPrefix...)
	out = append(out, label...)
	return append(out, context...)
}

const labelPrefix = "mlsbridge "
