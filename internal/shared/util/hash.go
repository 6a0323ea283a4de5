package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashKey returns a stable hex digest of the given parts joined with \x1f.
// Only the last part may contain the separator without risking a collision.
func HashKey(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}

// ETag wraps HashKey as a strong HTTP entity tag.
func ETag(parts ...string) string {
	return `"` + HashKey(parts...)[:32] + `"`
}
