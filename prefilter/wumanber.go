package prefilter

import (
	"bytes"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

const (
	minTableSize = 256
	maxTableSize = 1 << 16
)

// WuManber is a multi-pattern exact string searcher.
//
// The searcher slides a window of minLen bytes (the length of the shortest
// pattern) over the haystack and inspects the b-byte block at the end of
// the window. The shift table says how far the window may move without
// skipping an alignment where the block could sit inside some pattern's
// first minLen bytes; a zero shift means the block ends a pattern's first
// minLen bytes, and the prefix table lists those patterns for verification.
//
// Blocks are hashed with xxhash into power-of-two tables. Colliding blocks
// share the minimum shift and their prefix entries, so a collision costs an
// extra comparison, never a missed match.
//
// WuManber is immutable after construction and safe for concurrent use.
type WuManber struct {
	patterns     [][]byte
	b            int
	minLen       int
	defaultShift int
	mask         uint64
	shift        []int
	prefix       [][]prefixEntry
}

// prefixEntry identifies a pattern whose first minLen bytes end with a
// given block, together with that pattern's first b bytes.
type prefixEntry struct {
	pattern int
	head    []byte
}

// NewWuManber builds a searcher over patterns with block size b (2 or 3 is
// typical).
//
// Returns ErrPatternTooShort if patterns is empty, b < 1, or the shortest
// pattern is shorter than b.
func NewWuManber(patterns [][]byte, b int) (*WuManber, error) {
	if len(patterns) == 0 || b < 1 {
		return nil, ErrPatternTooShort
	}
	minLen := len(patterns[0])
	for _, p := range patterns[1:] {
		minLen = min(minLen, len(p))
	}
	if minLen < b {
		return nil, ErrPatternTooShort
	}

	size := tableSize(len(patterns) * (minLen - b + 1))
	wm := &WuManber{
		patterns:     make([][]byte, len(patterns)),
		b:            b,
		minLen:       minLen,
		defaultShift: minLen - b + 1,
		mask:         uint64(size - 1),
		shift:        make([]int, size),
		prefix:       make([][]prefixEntry, size),
	}
	for i := range wm.shift {
		wm.shift[i] = wm.defaultShift
	}

	for i, p := range patterns {
		wm.patterns[i] = append([]byte(nil), p...)
		p = wm.patterns[i]
		for j := b; j <= minLen; j++ {
			h := wm.hash(p[j-b : j])
			if s := minLen - j; s < wm.shift[h] {
				wm.shift[h] = s
			}
		}
		h := wm.hash(p[minLen-b : minLen])
		wm.prefix[h] = append(wm.prefix[h], prefixEntry{pattern: i, head: p[:b]})
	}
	return wm, nil
}

// tableSize returns a power of two with room for n distinct blocks at a
// load factor of at most one half.
func tableSize(n int) int {
	size := minTableSize
	if n > 0 {
		size = max(size, 1<<bits.Len(uint(2*n-1)))
	}
	return min(size, maxTableSize)
}

func (wm *WuManber) hash(block []byte) uint64 {
	return xxhash.Sum64(block) & wm.mask
}

// Find returns the leftmost occurrence of any pattern in haystack.
// See FindAt.
func (wm *WuManber) Find(haystack []byte) (start, end, pattern int) {
	return wm.FindAt(haystack, 0)
}

// FindAt returns the bounds and index of the leftmost pattern occurrence
// that starts at or after at. When several patterns occur at that position
// the lowest index wins. Returns (-1, -1, -1) if nothing is found.
//
// Every window is aligned on a pattern start (start = pos - minLen), and
// pos only grows, so the first verified candidate is the leftmost one.
func (wm *WuManber) FindAt(haystack []byte, at int) (start, end, pattern int) {
	if at < 0 {
		at = 0
	}
	for pos := at + wm.minLen; pos <= len(haystack); {
		h := wm.hash(haystack[pos-wm.b : pos])
		s := wm.shift[h]
		if s == 0 {
			cand := pos - wm.minLen
			head := haystack[cand : cand+wm.b]
			for _, e := range wm.prefix[h] {
				if !bytes.Equal(e.head, head) {
					continue
				}
				p := wm.patterns[e.pattern]
				if stop := cand + len(p); stop <= len(haystack) && bytes.Equal(haystack[cand:stop], p) {
					return cand, stop, e.pattern
				}
			}
			s = 1
		}
		pos += s
	}
	return -1, -1, -1
}

// FindMatch implements MultiPrefilter.
func (wm *WuManber) FindMatch(haystack []byte, start int) (matchStart, matchEnd, pattern int) {
	return wm.FindAt(haystack, start)
}

// PatternCount implements MultiPrefilter.
func (wm *WuManber) PatternCount() int {
	return len(wm.patterns)
}

// HeapBytes implements MultiPrefilter.
func (wm *WuManber) HeapBytes() int {
	n := len(wm.shift) * 8
	for _, p := range wm.patterns {
		n += len(p)
	}
	for _, entries := range wm.prefix {
		n += len(entries) * 32
	}
	return n
}

// BlockSize returns the block size b.
func (wm *WuManber) BlockSize() int {
	return wm.b
}

// MinLen returns the length of the shortest pattern.
func (wm *WuManber) MinLen() int {
	return wm.minLen
}
