// Package prefilter provides the anchor searches that precede full regex
// verification.
//
// A prefilter quickly finds the positions in the haystack where a literal
// anchor (a whole literal pattern, a leading prefix, or a mandatory
// fragment) occurs. The caller then verifies those candidates with the full
// regex engine, unless the prefilter is complete.
//
// Selection:
//   - Single byte → memchr prefilter (SWAR byte search)
//   - Single substring → memmem prefilter (rare-byte substring search)
//   - Literal set, shortest ≥ block size → Wu-Manber
//   - Literal set, shortest ≥ 1 → Aho-Corasick
//
// Example usage:
//
//	seq := literal.NewSeq(literal.NewLiteral([]byte("hello"), true))
//	pf := prefilter.NewBuilder(seq).Build()
//	pos := pf.Find([]byte("say hello"), 0) // 4
package prefilter

import (
	"errors"

	"github.com/coregx/fregex/literal"
	"github.com/coregx/fregex/simd"
)

// DefaultBlockSize is the Wu-Manber block size used by Builder unless
// overridden.
const DefaultBlockSize = 2

// ErrPatternTooShort is returned when a multi-pattern searcher cannot be
// built because the set is empty or its shortest pattern is shorter than
// the block size.
var ErrPatternTooShort = errors.New("prefilter: pattern set empty or shorter than block size")

// Prefilter is used to quickly find candidate match positions before running
// the full regex engine.
type Prefilter interface {
	// Find returns the index of the first candidate match starting at or after
	// 'start', or -1 if no candidate is found.
	//
	// A candidate does NOT guarantee a full regex match - the caller must
	// verify it unless IsComplete() is true.
	//
	// Example:
	//
	//	pos := pf.Find(haystack, 0)
	//	for pos != -1 {
	//	    if verify(haystack, pos) {
	//	        return pos
	//	    }
	//	    pos = pf.Find(haystack, pos+1)
	//	}
	Find(haystack []byte, start int) int

	// IsComplete returns true if a prefilter match guarantees a full regex
	// match, i.e. the pattern is an exact literal.
	IsComplete() bool

	// LiteralLen returns the length of the matched literal when IsComplete()
	// is true, and 0 otherwise.
	LiteralLen() int

	// HeapBytes returns the number of bytes of heap memory used by this
	// prefilter.
	HeapBytes() int
}

// MultiPrefilter finds the leftmost occurrence of any literal of a set.
//
// Implementations report the literal with the lowest index when several
// literals occur at the same leftmost position.
type MultiPrefilter interface {
	// FindMatch returns the bounds of the leftmost literal occurrence that
	// starts at or after 'start' and the index of that literal.
	// Returns (-1, -1, -1) if none is found.
	FindMatch(haystack []byte, start int) (matchStart, matchEnd, pattern int)

	// PatternCount returns the number of literals in the set.
	PatternCount() int

	// HeapBytes returns the approximate heap usage of the search tables.
	HeapBytes() int
}

// Builder constructs prefilters from a literal sequence.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("alpha"), true),
//	    literal.NewLiteral([]byte("beta"), true),
//	)
//	mp, err := prefilter.NewBuilder(seq).BuildMulti()
type Builder struct {
	literals  *literal.Seq
	blockSize int
}

// NewBuilder creates a new prefilter builder from a literal sequence.
func NewBuilder(literals *literal.Seq) *Builder {
	return &Builder{
		literals:  literals,
		blockSize: DefaultBlockSize,
	}
}

// WithBlockSize sets the Wu-Manber block size used by BuildMulti.
func (b *Builder) WithBlockSize(n int) *Builder {
	b.blockSize = n
	return b
}

// Build constructs a single-literal prefilter for the first literal of the
// sequence. Returns nil if the sequence is empty.
//
// An empty literal yields a memmem prefilter that matches at every position.
func (b *Builder) Build() Prefilter {
	if b.literals.IsEmpty() {
		return nil
	}
	lit := b.literals.Get(0)
	if len(lit.Bytes) == 1 {
		return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
	}
	return newMemmemPrefilter(lit.Bytes, lit.Complete)
}

// BuildMulti constructs a multi-literal prefilter for the whole sequence.
//
// Selection:
//  1. shortest literal ≥ block size → Wu-Manber
//  2. shortest literal ≥ 1 → Aho-Corasick
//  3. otherwise → ErrPatternTooShort
func (b *Builder) BuildMulti() (MultiPrefilter, error) {
	if b.literals.IsEmpty() {
		return nil, ErrPatternTooShort
	}
	patterns := b.literals.Bytes()
	minLength := b.literals.MinLen()
	switch {
	case b.blockSize >= 1 && minLength >= b.blockSize:
		return NewWuManber(patterns, b.blockSize)
	case minLength >= 1:
		return NewAhoCorasick(patterns)
	default:
		return nil, ErrPatternTooShort
	}
}

// memchrPrefilter wraps simd.Memchr as a Prefilter.
//
// Example patterns:
//
//	/x/         → search for 'x'
//	/a.?c/      → fragment "a"
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{
		needle:   needle,
		complete: complete,
	}
}

// Find implements Prefilter.Find using simd.Memchr.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memchr(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memchrPrefilter) HeapBytes() int {
	return 0
}

// memmemPrefilter wraps simd.Memmem as a Prefilter.
//
// Example patterns:
//
//	/hello/       → search for "hello"
//	/prefix.*:/   → fragment "prefix"
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

// newMemmemPrefilter copies needle to prevent aliasing.
func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	needleCopy := make([]byte, len(needle))
	copy(needleCopy, needle)

	return &memmemPrefilter{
		needle:   needleCopy,
		complete: complete,
	}
}

// Find implements Prefilter.Find using simd.Memmem. An empty needle matches
// at start, including start == len(haystack).
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	return simd.IndexAt(haystack, p.needle, start)
}

// IsComplete implements Prefilter.IsComplete.
func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}
