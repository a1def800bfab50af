package fregex

import (
	"strings"

	"github.com/coregx/fregex/meta"
)

// Multi-pattern strategies.
const (
	MultiSingle     = meta.MultiSingle
	MultiLiteral    = meta.MultiLiteral
	MultiLongest    = meta.MultiLongest
	MultiSequential = meta.MultiSequential
)

// MultiRegex is a compiled pattern set. A search reports the leftmost match
// of any pattern; when several patterns match at the same position, the one
// listed first wins.
//
// A MultiRegex is immutable and safe for concurrent use.
//
// Example:
//
//	set := fregex.MustCompileMulti([]string{"[ac][xi][ea] is the best", "x*box", "card?"})
//	m := set.FindMatch([]byte("another cia is the best"))
//	// m.Start() == 8, m.End() == 23, m.Pattern() == 0
type MultiRegex struct {
	engine *meta.MultiEngine
}

// CompileMulti compiles a pattern set with the default configuration.
//
// Every pattern must compile; the first invalid one aborts with an error
// matching ErrSyntaxError whose Index names it. An empty set returns an
// error matching ErrArgumentError.
func CompileMulti(patterns []string) (*MultiRegex, error) {
	return CompileMultiWithConfig(patterns, DefaultConfig())
}

// MustCompileMulti is like CompileMulti but panics on error.
func MustCompileMulti(patterns []string) *MultiRegex {
	m, err := CompileMulti(patterns)
	if err != nil {
		panic("fregex: CompileMulti(" + strings.Join(patterns, ", ") + "): " + err.Error())
	}
	return m
}

// CompileMultiWithConfig compiles a pattern set with a custom configuration.
func CompileMultiWithConfig(patterns []string, config Config) (*MultiRegex, error) {
	engine, err := meta.CompileMulti(patterns, config)
	if err != nil {
		return nil, err
	}
	return &MultiRegex{engine: engine}, nil
}

// Find returns the text of the leftmost match of any pattern, or nil.
func (m *MultiRegex) Find(b []byte) []byte {
	found := m.engine.Find(b)
	if found == nil {
		return nil
	}
	return found.Bytes()
}

// FindString returns the text of the leftmost match of any pattern, or "".
func (m *MultiRegex) FindString(s string) string {
	found := m.engine.Find([]byte(s))
	if found == nil {
		return ""
	}
	return s[found.Start():found.End()]
}

// FindIndex returns the location of the leftmost match of any pattern, or
// nil.
func (m *MultiRegex) FindIndex(b []byte) []int {
	found := m.engine.Find(b)
	if found == nil {
		return nil
	}
	return []int{found.Start(), found.End()}
}

// FindStringIndex is the string version of FindIndex.
func (m *MultiRegex) FindStringIndex(s string) []int {
	return m.FindIndex([]byte(s))
}

// FindMatch returns the leftmost match with the index of the pattern that
// produced it, or nil.
//
// Example:
//
//	set := fregex.MustCompileMulti([]string{"beta", "alpha"})
//	found := set.FindMatch([]byte("alpha beta"))
//	// found.Start() == 0, found.Pattern() == 1
func (m *MultiRegex) FindMatch(b []byte) *Match {
	return m.engine.Find(b)
}

// Match reports whether any pattern matches b.
func (m *MultiRegex) Match(b []byte) bool {
	return m.engine.IsMatch(b)
}

// MatchString reports whether any pattern matches s.
func (m *MultiRegex) MatchString(s string) bool {
	return m.engine.IsMatch([]byte(s))
}

// IsMatch is an alias of Match.
func (m *MultiRegex) IsMatch(b []byte) bool {
	return m.engine.IsMatch(b)
}

// FindAllIndex returns successive non-overlapping leftmost matches of the
// set, with the same enumeration rules as Regex.FindAllIndex.
func (m *MultiRegex) FindAllIndex(b []byte, n int) [][]int {
	return findAll(m.engine.Find, b, n)
}

// Strategy returns the strategy selected for the set.
func (m *MultiRegex) Strategy() MultiStrategy {
	return m.engine.Strategy()
}

// Patterns returns a copy of the source patterns.
func (m *MultiRegex) Patterns() []string {
	return m.engine.Patterns()
}

// Regex returns the single-pattern Regex compiled for pattern i.
func (m *MultiRegex) Regex(i int) *Regex {
	return &Regex{engine: m.engine.Engine(i)}
}

// String returns the patterns joined by newlines.
func (m *MultiRegex) String() string {
	return strings.Join(m.engine.Patterns(), "\n")
}
