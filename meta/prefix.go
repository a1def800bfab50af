package meta

import (
	"github.com/coregx/fregex/prefilter"
)

// prefixMatcher anchors on the literal every match starts with.
//
// Only the first prefix occurrence is used. The full engine then scans the
// whole remaining text, so a failed verification at that occurrence still
// finds matches at later occurrences; no retry loop is needed. Slicing the
// haystack at the occurrence is exact because the pattern consumes the
// prefix before any assertion can look at surrounding text.
type prefixMatcher struct {
	prefix prefilter.Prefilter
	v      Verifier
}

func (m *prefixMatcher) find(haystack []byte) *Match {
	p := m.prefix.Find(haystack, 0)
	if p < 0 {
		return nil
	}
	start, end, ok := verifyIn(m.v, haystack, p, len(haystack))
	if !ok {
		return nil
	}
	return NewMatch(start, end, haystack)
}
