package meta

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/fregex/literal"
	"github.com/coregx/fregex/prefilter"
)

var equivalencePatterns = []string{
	// UseLiteral
	"pattern", "many", "x", `\$\(\)\$`, "", "café", `a\nb`, "a}b",
	// UseLongest
	"p..ce", "[ai][cx]e", "plus+", "C[a-z]*a", "[Pp]refix.*:", "[^s]yy*",
	`\d\d-\d\d`, "colou?r", "a.?c", "é.x", `\w+@\w+`, "ab*c", "x[^y]*y", `a.\nb`,
	`[]x]yz`, `\s+end`, "Long.*string",
	// UsePrefix
	"ba(se)+", "a\nb+", "foo|bar", "ab$", `ab\b`, "li(ne)?",
	// UseFallback
	"^abc", `\bword\b`, "(text)?", "[0-9]+(px|em)", "(?m)^line$", "(?s)a.*b",
}

var equivalenceHaystacks = []string{
	"",
	"text with pattern",
	"many many many many",
	"text with $()$ chars",
	"piece peace pounce",
	"words with the letter e but only axe matches",
	"multiple ba ba but only one is base",
	"only works with extended plus text",
	"Short parts Circa",
	"Long string with a prefix: somewhere",
	"text with a\nbbb",
	"text with \nyd",
	"call 12-34 or 56-78 now",
	"color colour café éax",
	"user@example and other@host",
	"xyyy\nx\ny",
	"a\nb and a\n\nb",
	"line one\nline\nline three",
	"foo bar baz food",
	"a word, another word",
	"10px 2em",
	"abc\nabc",
	"some text\tend\n  end",
	"Prefix: first line\nsecond prefix: line",
	"\xff\xfeab\xffpattern",
}

// TestEngineMatchesStdlib checks every strategy against the ground truth.
func TestEngineMatchesStdlib(t *testing.T) {
	for _, pattern := range equivalencePatterns {
		e := mustCompile(t, pattern)
		for _, h := range equivalenceHaystacks {
			haystack := []byte(h)
			want := stdlibIndex(t, pattern, haystack)
			got := matchIndex(e.Find(haystack))
			assert.Equal(t, want, got, "pattern %q (%v) haystack %q", pattern, e.Strategy(), h)
			assert.Equal(t, want != nil, e.IsMatch(haystack))
		}
	}
}

// TestEngineRandomEquivalence compares random patterns over random text.
func TestEngineRandomEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		pattern := randomPattern(rng)
		e, err := Compile(pattern, DefaultConfig())
		if err != nil {
			continue
		}
		for j := 0; j < 5; j++ {
			haystack := randomHaystack(rng)
			want := stdlibIndex(t, pattern, haystack)
			got := matchIndex(e.Find(haystack))
			if !assert.Equal(t, want, got, "pattern %q (%v) haystack %q", pattern, e.Strategy(), haystack) {
				return
			}
		}
	}
}

func TestEngineScenarios(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		strategy Strategy
		want     []int
	}{
		{"pattern", "text with pattern", UseLiteral, []int{10, 17}},
		{"many", "many many many many", UseLiteral, []int{0, 4}},
		{"x", "find the first x", UseLiteral, []int{15, 16}},
		{`\$\(\)\$`, "text with $()$ chars", UseLiteral, []int{10, 14}},
		{"p..ce", "piece peace pounce", UseLongest, []int{0, 5}},
		{"[ai][cx]e", "words with the letter e but only axe matches", UseLongest, []int{33, 36}},
		{"ba(se)+", "multiple ba ba but only one is base", UsePrefix, []int{31, 35}},
		{"plus+", "only works with extended plus text", UseLongest, []int{25, 29}},
		{"C[a-z]*a", "Short parts Circa", UseLongest, []int{12, 17}},
		{"[Pp]refix.*:", "Long string with a prefix: somewhere", UseLongest, []int{19, 26}},
		{"a\nb+", "text with a\nbbb", UsePrefix, []int{10, 15}},
		{"[^s]yy*", "text with \nyd", UseLongest, []int{10, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			e := mustCompile(t, tt.pattern)
			assert.Equal(t, tt.strategy, e.Strategy())
			m := e.Find([]byte(tt.haystack))
			require.NotNil(t, m)
			assert.Equal(t, tt.want, matchIndex(m))
			assert.Equal(t, 0, m.Pattern())
		})
	}
}

func TestEngineDowngradesWithoutAnchor(t *testing.T) {
	tests := []struct {
		pattern string
		reason  string
	}{
		{`\d+`, "no usable literal anchor"},
		{".*", "no usable literal anchor"},
		{"foo|bar", "no usable literal anchor"},
	}
	for _, tt := range tests {
		e := mustCompile(t, tt.pattern)
		assert.Equal(t, UseFallback, e.Strategy(), tt.pattern)
		assert.Equal(t, tt.reason, e.Reason(), tt.pattern)
	}
}

func TestEngineReason(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"abc", "pattern is a plain string"},
		{"p..ce", "bounded window around longest fragment"},
		{"plus+", "unbounded repetition, line window around longest fragment"},
		{"[^s]yy*", "pattern can span lines, whole-text check after longest fragment"},
		{"ba(se)+", "literal prefix anchors the full engine"},
		{"(x)", "no usable literal anchor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustCompile(t, tt.pattern).Reason(), tt.pattern)
	}
}

func TestEngineHeuristicsDisabled(t *testing.T) {
	config := DefaultConfig()
	config.EnableHeuristics = false
	e, err := Compile("pattern", config)
	require.NoError(t, err)
	assert.Equal(t, UseFallback, e.Strategy())
	assert.Equal(t, "heuristics disabled in configuration", e.Reason())
	assert.Equal(t, []int{10, 17}, matchIndex(e.Find([]byte("text with pattern"))))
}

// TestPrefixSingleShot documents that the prefix anchor is tried once per
// call: a failed verification at the first occurrence is not retried, yet
// later matches are still found because the engine scans the whole suffix.
func TestPrefixSingleShot(t *testing.T) {
	e := mustCompile(t, "ba(se)+")
	require.Equal(t, UsePrefix, e.Strategy())

	haystack := []byte("ba ba ba base")
	assert.Equal(t, []int{9, 13}, matchIndex(e.Find(haystack)))
	assert.Nil(t, e.Find([]byte("ba ba bas")))
}

func TestEngineIdempotent(t *testing.T) {
	for _, pattern := range []string{"pattern", "p..ce", "ba(se)+", "(text)?"} {
		e := mustCompile(t, pattern)
		haystack := []byte("text with pattern piece base")
		first := matchIndex(e.Find(haystack))
		second := matchIndex(e.Find(haystack))
		assert.Equal(t, first, second, pattern)
	}
}

// TestLiteralRoundTrip checks that a metacharacter-free pattern gives the
// same answer through the literal, longest and fallback matchers.
func TestLiteralRoundTrip(t *testing.T) {
	haystacks := []string{"text with pattern", "no match here", "pattern", "patter pattern"}
	for _, h := range haystacks {
		haystack := []byte(h)
		e := mustCompile(t, "pattern")
		v := e.Verifier()

		lm := newLongestMatcher("pattern", literalFragment("pattern"), v)
		fm := &fallbackMatcher{v: v}

		want := matchIndex(e.Find(haystack))
		assert.Equal(t, want, matchIndex(lm.find(haystack)), h)
		assert.Equal(t, want, matchIndex(fm.find(haystack)), h)
	}
}

func TestLiteralMatcherCompleteness(t *testing.T) {
	v := mustCompile(t, "ab+").Verifier()
	build := func(complete bool) prefilter.Prefilter {
		return prefilter.NewBuilder(literal.NewSeq(literal.NewLiteral([]byte("ab"), complete))).Build()
	}
	haystack := []byte("xx a abbb")

	complete := newLiteralMatcher([]byte("ab"), build(true), v)
	assert.Equal(t, []int{5, 7}, matchIndex(complete.find(haystack)))

	// an incomplete anchor is verified from the occurrence onward
	partial := newLiteralMatcher([]byte("ab"), build(false), v)
	assert.Equal(t, []int{5, 9}, matchIndex(partial.find(haystack)))
	assert.Nil(t, partial.find([]byte("xx a")))
}

func TestEngineLogsPrefilterBytes(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := Compile("pattern", config)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"prefilter_bytes":7`)

	buf.Reset()
	_, err = CompileMulti([]string{"x", "ta"}, config)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"strategy":"MultiLiteral"`)
	assert.Contains(t, buf.String(), `"prefilter_bytes":3`)
}

func TestEngineConcurrent(t *testing.T) {
	e := mustCompile(t, "[Pp]refix.*:")
	haystack := bytes.Repeat([]byte("filler text\n"), 100)
	haystack = append(haystack, []byte("the prefix: here")...)
	want := stdlibIndex(t, "[Pp]refix.*:", haystack)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := matchIndex(e.Find(haystack)); !assert.Equal(t, want, got) {
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEngineRE2(t *testing.T) {
	config := DefaultConfig()
	config.Engine = EngineRE2
	for _, pattern := range []string{"pattern", "p..ce", "ba(se)+", "[^s]yy*", "(text)?"} {
		e, err := Compile(pattern, config)
		require.NoError(t, err, pattern)
		for _, h := range equivalenceHaystacks[:12] {
			haystack := []byte(h)
			assert.Equal(t, stdlibIndex(t, pattern, haystack), matchIndex(e.Find(haystack)),
				"pattern %q haystack %q", pattern, h)
		}
	}
}

func BenchmarkEngineFind(b *testing.B) {
	haystack := bytes.Repeat([]byte("lorem ipsum dolor sit amet\n"), 4096)
	haystack = append(haystack, []byte("the prefix: found")...)
	for _, pattern := range []string{"prefix:", "[Pp]refix.*:", "pre(fix)+:", "(pre)fix:"} {
		e, _ := Compile(pattern, DefaultConfig())
		b.Run(e.Strategy().String(), func(b *testing.B) {
			b.SetBytes(int64(len(haystack)))
			for i := 0; i < b.N; i++ {
				_ = e.Find(haystack)
			}
		})
	}
}
