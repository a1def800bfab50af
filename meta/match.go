package meta

// Match represents a successful match with position information.
//
// A Match contains:
//   - Start position (inclusive)
//   - End position (exclusive)
//   - Index of the pattern that matched (0 for single-pattern engines)
//   - Reference to the searched haystack
//
// The haystack is borrowed, not copied: Bytes is a view into the caller's
// buffer and becomes meaningless once that buffer is modified. Use String
// to retain the matched text.
//
// Example:
//
//	match := meta.NewMatch(10, 17, []byte("text with pattern"))
//	println(match.String())             // "pattern"
//	println(match.Start(), match.End()) // 10, 17
type Match struct {
	start    int
	end      int
	pattern  int
	haystack []byte
}

// NewMatch creates a new Match from start and end positions for pattern 0.
//
// The haystack is stored by reference (not copied) for efficiency.
// Callers must ensure the haystack remains valid for the lifetime of the Match.
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{
		start:    start,
		end:      end,
		haystack: haystack,
	}
}

// NewPatternMatch creates a new Match attributed to the pattern at index
// pattern of a multi-pattern set.
func NewPatternMatch(start, end, pattern int, haystack []byte) *Match {
	return &Match{
		start:    start,
		end:      end,
		pattern:  pattern,
		haystack: haystack,
	}
}

// Start returns the inclusive start position of the match.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end position of the match.
func (m *Match) End() int {
	return m.end
}

// Pattern returns the index of the matching pattern within its set.
func (m *Match) Pattern() int {
	return m.pattern
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched bytes as a slice.
//
// The returned slice is a view into the searched haystack (not a copy).
// Callers should copy the bytes if they need to retain them after the
// haystack is modified or deallocated.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns the matched text as a string.
//
// This allocates a new string by copying the matched bytes.
// For zero-allocation access, use Bytes() instead.
func (m *Match) String() string {
	return string(m.Bytes())
}

// IsEmpty returns true if the match has zero length.
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}

// Contains returns true if start <= pos < end.
func (m *Match) Contains(pos int) bool {
	return pos >= m.start && pos < m.end
}
