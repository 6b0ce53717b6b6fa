package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the integrity checksum of a sealed record buffer: the
// xxHash64 of every byte after the fixed header (offset table, fixed-data
// section, and variable-data section).
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
