// Package assethash computes a stable content fingerprint for decoded
// media payloads.
package assethash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 fingerprint of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
