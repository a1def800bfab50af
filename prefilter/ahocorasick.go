package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// AhoCorasick adapts an Aho-Corasick automaton to MultiPrefilter.
//
// It serves literal sets whose shortest member is shorter than the
// Wu-Manber block size. The automaton reports the earliest-ending
// occurrence, so an occurrence that starts earlier but ends later can only
// begin within maxLen bytes of that end; those starts are rescanned to get
// the leftmost one. The reported pattern is the lowest-index literal present
// at that position, so ties follow set order regardless of automaton
// internals.
type AhoCorasick struct {
	auto     *ahocorasick.Automaton
	patterns [][]byte
	size     int
	maxLen   int
}

// NewAhoCorasick builds an automaton over patterns. Empty patterns are
// rejected with ErrPatternTooShort.
func NewAhoCorasick(patterns [][]byte) (*AhoCorasick, error) {
	if len(patterns) == 0 {
		return nil, ErrPatternTooShort
	}
	ac := &AhoCorasick{patterns: make([][]byte, len(patterns))}
	builder := ahocorasick.NewBuilder()
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, ErrPatternTooShort
		}
		ac.patterns[i] = append([]byte(nil), p...)
		ac.size += len(p)
		ac.maxLen = max(ac.maxLen, len(p))
		builder.AddPattern(ac.patterns[i])
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	ac.auto = auto
	return ac, nil
}

// FindMatch implements MultiPrefilter.
func (ac *AhoCorasick) FindMatch(haystack []byte, start int) (matchStart, matchEnd, pattern int) {
	if start < 0 {
		start = 0
	}
	if start > len(haystack) {
		return -1, -1, -1
	}
	m := ac.auto.Find(haystack, start)
	if m == nil {
		return -1, -1, -1
	}
	for pos := max(start, m.End-ac.maxLen); pos <= m.Start; pos++ {
		if i := ac.patternAt(haystack, pos); i >= 0 {
			return pos, pos + len(ac.patterns[i]), i
		}
	}
	return m.Start, m.End, m.PatternID
}

// patternAt returns the lowest index of a pattern occurring at pos, or -1.
func (ac *AhoCorasick) patternAt(haystack []byte, pos int) int {
	for i, p := range ac.patterns {
		if bytes.HasPrefix(haystack[pos:], p) {
			return i
		}
	}
	return -1
}

// IsMatch reports whether any pattern occurs in haystack.
func (ac *AhoCorasick) IsMatch(haystack []byte) bool {
	return ac.auto.IsMatch(haystack)
}

// PatternCount implements MultiPrefilter.
func (ac *AhoCorasick) PatternCount() int {
	return len(ac.patterns)
}

// HeapBytes implements MultiPrefilter. The automaton's own tables are not
// counted.
func (ac *AhoCorasick) HeapBytes() int {
	return ac.size
}
