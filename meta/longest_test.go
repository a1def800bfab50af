package meta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/fregex/literal"
)

func literalFragment(s string) literal.Fragment {
	return literal.Fragment{Bytes: []byte(s), MaxLen: len(s), LengthKnown: true}
}

func TestLongestWindowMode(t *testing.T) {
	tests := []struct {
		pattern string
		mode    windowMode
		delta   int
	}{
		{"p..ce", windowBounded, 9},
		{"[ai][cx]e", windowBounded, 8},
		{"colou?r", windowBounded, 2},
		{"plus+", windowLine, 0},
		{"C[a-z]*a", windowLine, 0},
		{"[^s]yy*", windowOpen, 0},
		{`\s+end`, windowOpen, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			e := mustCompile(t, tt.pattern)
			lm, ok := e.matcher.(*longestMatcher)
			if !ok {
				t.Fatalf("matcher = %T, want *longestMatcher", e.matcher)
			}
			if lm.mode != tt.mode {
				t.Errorf("mode = %v, want %v", lm.mode, tt.mode)
			}
			if tt.mode == windowBounded && lm.delta != tt.delta {
				t.Errorf("delta = %d, want %d", lm.delta, tt.delta)
			}
		})
	}
}

func TestLongestVerifyAtNext(t *testing.T) {
	haystack := []byte("plu\nplus\nx")

	line := mustCompile(t, "plus+").matcher.(*longestMatcher)
	if _, _, next, ok := line.verifyAt(haystack, 4); !ok || next != 9 {
		t.Errorf("line hit: ok=%v next=%d, want ok next=9", ok, next)
	}
	if got := line.minStart(haystack, 6); got != 4 {
		t.Errorf("line minStart = %d, want 4", got)
	}

	bounded := mustCompile(t, "p..ce").matcher.(*longestMatcher)
	if _, _, next, ok := bounded.verifyAt([]byte("xxcexx"), 2); ok || next != 3 {
		t.Errorf("bounded miss: ok=%v next=%d, want miss next=3", ok, next)
	}
	if got := bounded.minStart(haystack, 20); got != 11 {
		t.Errorf("bounded minStart = %d, want 11", got)
	}
}

// TestLongestBoundedWidening covers a match that the first window cuts off.
func TestLongestBoundedWidening(t *testing.T) {
	// the fragment at 0 has no match of its own; the window it opens ends at
	// 13 and truncates the match found at 10
	e := mustCompile(t, "[xy]c.?.?")
	haystack := []byte("c---------xczzz")
	assert.Equal(t, []int{10, 14}, matchIndex(e.Find(haystack)))
	assert.Equal(t, stdlibIndex(t, e.Pattern(), haystack), matchIndex(e.Find(haystack)))
}

func TestLineBounds(t *testing.T) {
	haystack := []byte("one\ntwo\n\nfour")
	tests := []struct {
		p      int
		lo, hi int
	}{
		{0, 0, 3},
		{2, 0, 3},
		{3, 0, 3},
		{4, 4, 7},
		{8, 8, 8},
		{9, 9, 13},
		{13, 9, 13},
	}
	for _, tt := range tests {
		lo, hi := lineBounds(haystack, tt.p)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("lineBounds(%d) = (%d, %d), want (%d, %d)", tt.p, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestRuneBoundaries(t *testing.T) {
	haystack := []byte("aé€b") // a=0, é=1..2, €=3..5, b=6
	tests := []struct {
		i          int
		start, end int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 1, 3},
		{4, 3, 6},
		{5, 3, 6},
		{7, 7, 7},
	}
	for _, tt := range tests {
		if got := runeStart(haystack, tt.i); got != tt.start {
			t.Errorf("runeStart(%d) = %d, want %d", tt.i, got, tt.start)
		}
		if got := runeEnd(haystack, tt.i); got != tt.end {
			t.Errorf("runeEnd(%d) = %d, want %d", tt.i, got, tt.end)
		}
	}
}

// TestLongestDenseAnchors exercises the switch to a single full scan when
// anchor occurrences are dense.
func TestLongestDenseAnchors(t *testing.T) {
	dense := strings.Repeat("ab", 500)
	haystacks := []string{
		dense + "a12z",
		dense,
		"a12z" + dense,
		dense[:100] + "a12z" + dense,
		dense + "é" + "a99z" + dense,
	}

	e := mustCompile(t, "a[0-9][0-9]z")
	require.Equal(t, UseLongest, e.Strategy())
	for _, h := range haystacks {
		want := stdlibIndex(t, e.Pattern(), []byte(h))
		assert.Equal(t, want, matchIndex(e.Find([]byte(h))))
	}

	set := mustCompileMulti(t, "b[0-9]q", "a[0-9][0-9]z")
	require.Equal(t, MultiLongest, set.Strategy())
	for _, h := range haystacks {
		want, pattern := expectedMulti(set.Patterns(), []byte(h))
		found := set.Find([]byte(h))
		assert.Equal(t, want, matchIndex(found))
		if found != nil {
			assert.Equal(t, pattern, found.Pattern())
		}
	}
}
