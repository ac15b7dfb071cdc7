package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------

// Key derives the cache key for a request description. Parameter pairs are
// sorted by name and serialized deterministically before hashing, so
// semantically identical requests map to the same key regardless of
// construction order.
func Key(params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
