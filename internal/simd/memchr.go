// Package simd provides byte-search primitives used to accelerate the arc
// decoder's per-node letter scan.
//
// Dictionary nodes are runs of fixed-stride arc records (one letter byte
// followed by a goto_length-byte packed pointer); the exact-match walker
// performs a linear scan over a node's siblings for the arc whose letter
// equals the next input byte. For wide nodes (a dictionary's root commonly
// branches on every letter of the alphabet) that scan dominates lookup
// time, so it is worth accelerating the same way the regex engine
// accelerates prefilter scans: gather the strided letter bytes into a
// contiguous buffer and search that buffer instead of touching memory at
// `stride` intervals.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// IndexByte returns the index of the first occurrence of needle in
// haystack, or -1 if absent. It uses the SWAR (SIMD Within A Register)
// technique, processing 8 bytes per iteration via uint64 bitwise
// operations, which is reliably faster than a byte-by-byte loop once the
// input is more than a few bytes long.
func IndexByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * 0x0101010101010101

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i : i+8])
		x := chunk ^ mask
		// Zero-byte detection: a byte is zero in x iff the matching
		// subtraction-and-mask formula below produces a set high bit.
		y := (x - 0x0101010101010101) & ^x & 0x8080808080808080
		if y != 0 {
			return i + bits.TrailingZeros64(y)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
