package sortition

import (
	"crypto/sha256"
	"encoding/binary"
)

// digestSeed hashes the UTF-8 bytes of the joined seed string. SHA-256 gives
// the avalanche behavior the draw depends on: a single differing input byte
// reselects the whole digest.
func digestSeed(seed string) [sha256.Size]byte {
	return sha256.Sum256([]byte(seed))
}

// mapToRange folds a digest into [0, max) by interpreting its first four
// bytes as a big-endian uint32 and reducing modulo max.
//
// The reduction is deliberately modulo rather than rejection sampling: the
// bias is at most max/2^32, which for the small ranges this library serves
// (tens to low thousands) is below 1e-7, and it keeps the draw free of
// unbounded retry loops. max == 1 is degenerate but valid and always maps
// to 0.
//
// Precondition: max > 0, enforced by the callers' validation.
func mapToRange(digest [sha256.Size]byte, max int) int {
	v := binary.BigEndian.Uint32(digest[:4])
	return int(v % uint32(max))
}
