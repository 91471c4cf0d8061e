// Package hash wraps the xxHash64 functions used for frame checksums and
// import deduplication.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
