package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/matzehuels/pagesmith/pkg/layout"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey joins prefix and the digest of the JSON encoding of parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// LayoutHash hashes the canonical JSON form of l. Equal trees hash equally
// regardless of how they were built.
func LayoutHash(l layout.Layout) (string, error) {
	data, err := layout.Marshal(l)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}
