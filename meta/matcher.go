package meta

import (
	"github.com/coregx/fregex/prefilter"
)

// matcher is implemented by the four search strategies. Exactly one is
// chosen when an Engine is built.
type matcher interface {
	find(haystack []byte) *Match
}

// anchoredMatcher is a matcher driven by occurrences of a literal anchor.
// Multi-pattern search feeds it anchor positions found by a shared
// multi-literal prefilter.
type anchoredMatcher interface {
	// anchor returns the literal every match contains.
	anchor() []byte

	// verifyAt checks the anchor occurrence at p. On success it returns the
	// leftmost match reachable from p. On failure next is the smallest
	// anchor position worth checking again.
	verifyAt(haystack []byte, p int) (start, end, next int, ok bool)

	// minStart returns a lower bound on the start of any match verifyAt can
	// report for an anchor at p or later.
	minStart(haystack []byte, p int) int

	// window returns the bytes one verifyAt call hands to the full engine
	// when windows can overlap, zero otherwise.
	window() int
}

// verifyIn runs v over haystack[lo:hi] and returns absolute bounds.
func verifyIn(v Verifier, haystack []byte, lo, hi int) (start, end int, ok bool) {
	loc := v.FindIndex(haystack[lo:hi])
	if loc == nil {
		return -1, -1, false
	}
	return lo + loc[0], lo + loc[1], true
}

// literalMatcher finds a plain string. When the prefilter is complete no
// regex engine runs at search time; otherwise the occurrence is verified
// like a prefix.
type literalMatcher struct {
	text []byte
	pf   prefilter.Prefilter
	v    Verifier
}

func newLiteralMatcher(text []byte, pf prefilter.Prefilter, v Verifier) *literalMatcher {
	return &literalMatcher{text: text, pf: pf, v: v}
}

func (m *literalMatcher) find(haystack []byte) *Match {
	p := m.pf.Find(haystack, 0)
	if p < 0 {
		return nil
	}
	if m.pf.IsComplete() {
		return NewMatch(p, p+m.pf.LiteralLen(), haystack)
	}
	start, end, ok := verifyIn(m.v, haystack, p, len(haystack))
	if !ok {
		return nil
	}
	return NewMatch(start, end, haystack)
}

func (m *literalMatcher) anchor() []byte {
	return m.text
}

func (m *literalMatcher) verifyAt(_ []byte, p int) (start, end, next int, ok bool) {
	return p, p + len(m.text), p + 1, true
}

func (m *literalMatcher) minStart(_ []byte, p int) int {
	return p
}

func (m *literalMatcher) window() int {
	return 0
}

// prefilterBytes reports the heap held by the prefilter behind m.
func prefilterBytes(m matcher) int {
	switch m := m.(type) {
	case *literalMatcher:
		return m.pf.HeapBytes()
	case *longestMatcher:
		return m.pf.HeapBytes()
	case *prefixMatcher:
		return m.prefix.HeapBytes()
	}
	return 0
}

// fallbackMatcher runs the full engine over the whole haystack.
type fallbackMatcher struct {
	v Verifier
}

func (m *fallbackMatcher) find(haystack []byte) *Match {
	loc := m.v.FindIndex(haystack)
	if loc == nil {
		return nil
	}
	return NewMatch(loc[0], loc[1], haystack)
}
