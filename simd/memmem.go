package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// It is equivalent to bytes.Index. The search runs Memchr over the rarest
// byte of the needle (ranked by ByteFrequencies) and verifies every candidate
// in place.
//
// Example:
//
//	pos := simd.Memmem([]byte("hello world"), []byte("world")) // 6
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start (mimics bytes.Index behavior)
	if needleLen == 0 {
		return 0
	}
	if needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rare, rareIdx := RareByte(needle)
	searchStart := rareIdx
	last := haystackLen - needleLen + rareIdx
	for searchStart <= last {
		pos := Memchr(haystack[searchStart:last+1], rare)
		if pos == -1 {
			return -1
		}
		pos += searchStart

		start := pos - rareIdx
		if bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = pos + 1
	}
	return -1
}

// IndexAt returns the index of the first instance of needle in haystack at or
// after position at, or -1. Offsets are absolute.
func IndexAt(haystack, needle []byte, at int) int {
	if at < 0 || at > len(haystack) {
		return -1
	}
	pos := Memmem(haystack[at:], needle)
	if pos == -1 {
		return -1
	}
	return at + pos
}
