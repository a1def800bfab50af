// Package literal analyses regex pattern text lexically: it splits patterns
// into tokens, recovers the literal text of pure-literal patterns, and
// extracts the anchors (leading prefix, longest mandatory fragment) that the
// accelerated matchers search for before running the full regex engine.
//
// Key concepts:
//   - A Token is one lexical unit: a literal character, a one-character
//     class, an opaque escape, or a syntax character
//   - A Fragment is the longest literal run every match must contain
//   - A Literal is a concrete byte sequence tied to the pattern it came from
//   - A Seq is an ordered set of literals, one per pattern of a multi-pattern
//     search; order is significant because ties go to the earlier literal
package literal

import (
	"bytes"
	"strconv"
)

// Literal represents a literal byte sequence extracted from a pattern.
// The Complete flag indicates whether the literal is the entire pattern
// (true) or only a mandatory fragment of its matches (false).
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello"), true}
//   - Pattern /hel+o/ → Literal{[]byte("hel"), false}
type Literal struct {
	// Bytes contains the actual literal byte sequence.
	Bytes []byte

	// Complete indicates whether this literal represents the entire match.
	// If true, finding the literal is sufficient (no regex engine needed).
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	return "literal{" + string(l.Bytes) + ", complete=" + strconv.FormatBool(l.Complete) + "}"
}

// Seq is an ordered sequence of literals, one per pattern of a pattern set.
// The position of a literal in the sequence is its pattern index.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("alpha"), true),
//	    literal.NewLiteral([]byte("beta"), true),
//	)
//	fmt.Println(seq.Len(), seq.MinLen()) // Output: 2 4
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		n = min(n, len(lit.Bytes))
	}
	return n
}

// AllComplete reports whether every literal is a complete pattern.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// Bytes returns the raw byte sequences in pattern order.
// The slices alias the literals; callers must not modify them.
func (s *Seq) Bytes() [][]byte {
	if s == nil {
		return nil
	}
	out := make([][]byte, len(s.literals))
	for i, lit := range s.literals {
		out[i] = lit.Bytes
	}
	return out
}

// FirstAt returns the index of the first literal in the sequence that
// occurs in haystack at position pos, or -1 if none does.
func (s *Seq) FirstAt(haystack []byte, pos int) int {
	if s == nil || pos < 0 || pos > len(haystack) {
		return -1
	}
	for i, lit := range s.literals {
		if bytes.HasPrefix(haystack[pos:], lit.Bytes) {
			return i
		}
	}
	return -1
}
