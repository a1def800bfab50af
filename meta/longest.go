package meta

import (
	"unicode/utf8"

	"github.com/coregx/fregex/literal"
	"github.com/coregx/fregex/prefilter"
	"github.com/coregx/fregex/simd"
)

// windowMode selects how far around a fragment occurrence the full engine
// has to look.
type windowMode uint8

const (
	// windowBounded: the match length is bounded by MaxLen, so any match
	// containing the fragment at p lies in [p-delta, p+len+delta].
	windowBounded windowMode = iota

	// windowLine: unbounded, but the pattern cannot match '\n', so a match
	// lies in the line that contains the fragment.
	windowLine

	// windowOpen: unbounded and possibly spanning lines. The fragment is
	// only a presence test; the full engine scans the whole text.
	windowOpen
)

func (w windowMode) String() string {
	switch w {
	case windowBounded:
		return "bounded"
	case windowLine:
		return "line"
	case windowOpen:
		return "open"
	default:
		return "unknown"
	}
}

func (w windowMode) reason() string {
	switch w {
	case windowBounded:
		return "bounded window around longest fragment"
	case windowLine:
		return "unbounded repetition, line window around longest fragment"
	default:
		return "pattern can span lines, whole-text check after longest fragment"
	}
}

// longestMatcher anchors on the longest mandatory literal fragment and
// verifies a window around each occurrence, left to right.
type longestMatcher struct {
	frag   []byte
	pf     prefilter.Prefilter
	maxLen int
	delta  int
	mode   windowMode
	v      Verifier
}

func newLongestMatcher(pattern string, frag literal.Fragment, v Verifier) *longestMatcher {
	m := &longestMatcher{
		frag:   frag.Bytes,
		pf:     prefilter.NewBuilder(literal.NewSeq(literal.NewLiteral(frag.Bytes, false))).Build(),
		maxLen: frag.MaxLen,
		delta:  frag.Delta(),
		v:      v,
	}
	switch {
	case frag.LengthKnown:
		m.mode = windowBounded
	default:
		// A parse error cannot happen for a pattern the engine compiled;
		// treat it like a newline-capable pattern anyway.
		if nl, err := literal.CanMatchNewline(pattern); err != nil || nl {
			m.mode = windowOpen
		} else {
			m.mode = windowLine
		}
	}
	return m
}

func (m *longestMatcher) find(haystack []byte) *Match {
	tracker := prefilter.NewTracker(0)
	for at := 0; at <= len(haystack); {
		p := m.pf.Find(haystack, at)
		if p < 0 {
			return nil
		}
		if tracker.ShouldRetire(p) {
			return m.scanFrom(haystack, p)
		}
		start, end, next, ok := m.verifyAt(haystack, p)
		if ok {
			return NewMatch(start, end, haystack)
		}
		tracker.Record(m.window())
		at = max(next, p+1)
	}
	return nil
}

// scanFrom runs the full engine once from the lowest start a match
// containing an occurrence at p or later can have. Every earlier occurrence
// must already have been rejected.
func (m *longestMatcher) scanFrom(haystack []byte, p int) *Match {
	lo := runeStart(haystack, max(m.minStart(haystack, p), 0))
	start, end, ok := verifyIn(m.v, haystack, lo, len(haystack))
	if !ok {
		return nil
	}
	return NewMatch(start, end, haystack)
}

// window returns how many bytes one verification examines in bounded mode.
// Line windows never overlap and the open window runs once, so both count
// as zero.
func (m *longestMatcher) window() int {
	if m.mode != windowBounded {
		return 0
	}
	return len(m.frag) + 2*m.delta
}

func (m *longestMatcher) anchor() []byte {
	return m.frag
}

func (m *longestMatcher) verifyAt(haystack []byte, p int) (start, end, next int, ok bool) {
	switch m.mode {
	case windowBounded:
		lo := runeStart(haystack, max(p-m.delta, 0))
		hi := runeEnd(haystack, min(p+len(m.frag)+m.delta, len(haystack)))
		start, end, ok = verifyIn(m.v, haystack, lo, hi)
		if !ok {
			return -1, -1, p + 1, false
		}
		// The window may have cut off the tail of the match at start, or of
		// an earlier-starting match that overlaps the window end.
		if start+m.maxLen > hi && hi < len(haystack) {
			wide := runeEnd(haystack, min(start+m.maxLen, len(haystack)))
			start, end, _ = verifyIn(m.v, haystack, lo, wide)
		}
		return start, end, p + 1, true

	case windowLine:
		lo, hi := lineBounds(haystack, p)
		start, end, ok = verifyIn(m.v, haystack, lo, hi)
		if !ok {
			return -1, -1, hi + 1, false
		}
		return start, end, hi + 1, true

	default:
		start, end, ok = verifyIn(m.v, haystack, 0, len(haystack))
		return start, end, len(haystack) + 1, ok
	}
}

func (m *longestMatcher) minStart(haystack []byte, p int) int {
	switch m.mode {
	case windowBounded:
		return p - m.delta
	case windowLine:
		lo, _ := lineBounds(haystack, p)
		return lo
	default:
		return 0
	}
}

// lineBounds returns the line containing position p, without its
// terminating newline.
func lineBounds(haystack []byte, p int) (lo, hi int) {
	lo = simd.Memrchr(haystack[:p], '\n') + 1
	hi = len(haystack)
	if i := simd.Memchr(haystack[p:], '\n'); i >= 0 {
		hi = p + i
	}
	return lo, hi
}

// runeStart moves i back to the start of the UTF-8 sequence it falls in.
func runeStart(haystack []byte, i int) int {
	for n := 0; i > 0 && i < len(haystack) && !utf8.RuneStart(haystack[i]) && n < utf8.UTFMax-1; n++ {
		i--
	}
	return i
}

// runeEnd moves i forward past the UTF-8 sequence it falls in.
func runeEnd(haystack []byte, i int) int {
	for n := 0; i < len(haystack) && !utf8.RuneStart(haystack[i]) && n < utf8.UTFMax-1; n++ {
		i++
	}
	return i
}
