// Package simd provides the byte-search primitives behind fregex's literal
// anchors: a SWAR (SIMD Within A Register) memchr/memrchr pair and a
// rare-byte memmem built on top of them.
//
// Every routine is pure Go and processes eight bytes per step using uint64
// bitwise arithmetic, so the package behaves identically on every platform.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// It is equivalent to bytes.IndexByte.
//
// Algorithm:
//  1. Broadcast needle into every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect zero bytes with (v - 0x01..01) & ^v & 0x80..80
//  4. The lowest set bit marks the first match (little-endian load)
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o') // 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8
	idx := 0
	for idx+8 <= n {
		xor := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask
		// Borrow propagation can only set false bits above a real zero byte,
		// so the lowest bit is always exact.
		if hasZero := (xor - lo8) & ^xor & hi8; hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}
	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// Memrchr returns the index of the last instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// It is equivalent to bytes.LastIndexByte. The SWAR test only tells whether
// a chunk contains the needle; the exact position is then resolved by a
// backward byte scan of that chunk, because the zero-byte formula may report
// false positives above a real match.
func Memrchr(haystack []byte, needle byte) int {
	idx := len(haystack)
	mask := uint64(needle) * lo8
	for idx >= 8 {
		xor := binary.LittleEndian.Uint64(haystack[idx-8:]) ^ mask
		if (xor-lo8)&^xor&hi8 != 0 {
			for i := idx - 1; i >= idx-8; i-- {
				if haystack[i] == needle {
					return i
				}
			}
		}
		idx -= 8
	}
	for i := idx - 1; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
