// Package fregex accelerates leftmost-first regular expression search by
// running cheap literal searches before, or instead of, a full regex engine.
//
// Every pattern is compiled with the full engine first (Go's regexp by
// default, RE2 optionally) and then classified lexically into one of four
// strategies:
//   - UseLiteral: the pattern is a plain string, no regex engine runs
//   - UseLongest: the longest mandatory literal fragment is located first and
//     the full engine only looks at a window around it
//   - UsePrefix: the leading literal is located first and the full engine
//     runs from there
//   - UseFallback: the full engine runs over the whole text
//
// Whatever the strategy, results are identical to running the full engine
// alone.
//
// Basic usage:
//
//	re, err := fregex.Compile(`p..ce`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loc := re.FindIndex([]byte("the place to be"))
//	fmt.Println(loc) // [4 9]
//
// Pattern sets:
//
//	set := fregex.MustCompileMulti([]string{"alpha", "beta"})
//	m := set.FindMatch([]byte("beta alpha"))
//	fmt.Println(m.Start(), m.Pattern()) // 0 1
//
// Advanced usage:
//
//	config := fregex.DefaultConfig()
//	config.Engine = meta.EngineRE2
//	config.Logger = zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	re, err := fregex.CompileWithConfig(`C[a-z]*a`, config)
//
// Limitations:
//   - No capture groups and no replace functions
//   - Matches are leftmost-first only
package fregex

import (
	"unicode/utf8"

	"github.com/coregx/fregex/meta"
)

// Match is a match location. It borrows the searched text and is valid only
// while that text is alive and unmodified.
type Match = meta.Match

// Strategy is the search strategy selected for a pattern.
type Strategy = meta.Strategy

// MultiStrategy is the search strategy selected for a pattern set.
type MultiStrategy = meta.MultiStrategy

// Config controls compilation. See meta.Config.
type Config = meta.Config

// Strategies, in order of preference.
const (
	UseLiteral  = meta.UseLiteral
	UseLongest  = meta.UseLongest
	UsePrefix   = meta.UsePrefix
	UseFallback = meta.UseFallback
)

// Matcher is the search capability shared by Regex and MultiRegex.
type Matcher interface {
	FindIndex(b []byte) []int
	FindAllIndex(b []byte, n int) [][]int
	Match(b []byte) bool
	String() string
}

var (
	_ Matcher = (*Regex)(nil)
	_ Matcher = (*MultiRegex)(nil)
)

// Regex is a compiled pattern.
//
// A Regex is immutable and safe to use concurrently from multiple
// goroutines.
//
// Example:
//
//	re := fregex.MustCompile(`colou?r`)
//	if re.MatchString("what colour") {
//	    println("matched!")
//	}
type Regex struct {
	engine *meta.Engine
}

// Compile compiles pattern with the default configuration.
//
// Syntax is that of Go's regexp package. An invalid pattern returns an
// error matching ErrSyntaxError.
//
// Example:
//
//	re, err := fregex.Compile(`[ai][cx]e`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var word = fregex.MustCompile(`w.rd`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("fregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with a custom configuration.
//
// Example:
//
//	config := fregex.DefaultConfig()
//	config.EnableHeuristics = false // plain full-engine search
//	re, err := fregex.CompileWithConfig("p..ce", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.Compile(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine}, nil
}

// DefaultConfig returns the default configuration: the Go regexp engine,
// block size 2, heuristics enabled and no logging.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Find returns the text of the leftmost match in b, or nil.
//
// Example:
//
//	re := fregex.MustCompile(`p..ce`)
//	println(string(re.Find([]byte("the place")))) // "place"
func (r *Regex) Find(b []byte) []byte {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return m.Bytes()
}

// FindString returns the text of the leftmost match in s, or "".
func (r *Regex) FindString(s string) string {
	m := r.engine.Find([]byte(s))
	if m == nil {
		return ""
	}
	return s[m.Start():m.End()]
}

// FindIndex returns the location of the leftmost match in b as a
// two-element slice, or nil. The match is at b[loc[0]:loc[1]].
//
// Example:
//
//	re := fregex.MustCompile(`ba(se)+`)
//	loc := re.FindIndex([]byte("multiple ba ba but only one is base"))
//	// loc == [31 35]
func (r *Regex) FindIndex(b []byte) []int {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return []int{m.Start(), m.End()}
}

// FindStringIndex returns the location of the leftmost match in s, or nil.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindMatch returns the leftmost match in b, or nil. The Match borrows b.
func (r *Regex) FindMatch(b []byte) *Match {
	return r.engine.Find(b)
}

// Match reports whether b contains a match.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s contains a match.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch([]byte(s))
}

// IsMatch is an alias of Match.
func (r *Regex) IsMatch(b []byte) bool {
	return r.engine.IsMatch(b)
}

// FindAllIndex returns the locations of successive non-overlapping matches
// in b. If n > 0, it returns at most n matches. If n <= 0, it returns all
// matches.
//
// Each search restarts on the text after the previous match, so a match is
// found as if the text began there. An empty match advances the search by
// one byte.
//
// Example:
//
//	re := fregex.MustCompile(`b.ta`)
//	locs := re.FindAllIndex([]byte("beta bota"), -1)
//	// locs == [[0 4] [5 9]]
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	return findAll(r.engine.Find, b, n)
}

// FindAllStringIndex is the string version of FindAllIndex.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// Strategy returns the strategy selected for the pattern.
func (r *Regex) Strategy() Strategy {
	return r.engine.Strategy()
}

// Reason returns a human-readable explanation of the selected strategy.
func (r *Regex) Reason() string {
	return r.engine.Reason()
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.engine.Pattern()
}

// findAll enumerates matches by repeated search on the remaining text. An
// empty match adjacent to the previous match is dropped, as in regexp.
func findAll(find func([]byte) *Match, b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}

	var locs [][]int
	pos, prevEnd := 0, -1
	for pos <= len(b) {
		m := find(b[pos:])
		if m == nil {
			break
		}

		start, end := pos+m.Start(), pos+m.End()
		if start != end || start != prevEnd {
			locs = append(locs, []int{start, end})
			prevEnd = end
		}

		switch {
		case end > pos:
			pos = end
		case pos < len(b):
			_, width := utf8.DecodeRune(b[pos:])
			pos += width
		default:
			pos++
		}

		if n > 0 && len(locs) >= n {
			break
		}
	}
	return locs
}
