package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a rendered document.
func Fingerprint(doc string) uint64 {
	return xxhash.Sum64String(doc)
}
