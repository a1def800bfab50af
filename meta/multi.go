package meta

import (
	"bytes"

	"github.com/coregx/fregex/literal"
	"github.com/coregx/fregex/prefilter"
)

// MultiStrategy represents the search strategy selected for a pattern set.
type MultiStrategy int

const (
	// MultiSingle delegates to the single-pattern Engine of a one-pattern set.
	MultiSingle MultiStrategy = iota

	// MultiLiteral searches a set of plain strings with one multi-literal
	// prefilter (Wu-Manber, or Aho-Corasick for literals shorter than the
	// block size). No regex engine runs at search time.
	MultiLiteral

	// MultiLongest searches the set of anchors (literals and longest
	// fragments) with one multi-literal prefilter and verifies each anchor
	// occurrence with the window logic of the pattern it belongs to.
	MultiLongest

	// MultiSequential runs every pattern's own Engine and keeps the match
	// with the smallest start.
	MultiSequential
)

// String returns a human-readable representation of the MultiStrategy.
func (s MultiStrategy) String() string {
	switch s {
	case MultiSingle:
		return "MultiSingle"
	case MultiLiteral:
		return "MultiLiteral"
	case MultiLongest:
		return "MultiLongest"
	case MultiSequential:
		return "MultiSequential"
	default:
		return "Unknown"
	}
}

// MultiEngine searches for the leftmost match of any pattern of a set.
//
// When several patterns match at the same leftmost position, the pattern
// listed first wins. The reported Match carries the winning pattern index.
//
// Thread safety: a MultiEngine is immutable after CompileMulti and safe for
// concurrent use.
type MultiEngine struct {
	patterns []string
	strategy MultiStrategy
	engines  []*Engine

	// MultiLiteral and MultiLongest
	set     prefilter.MultiPrefilter
	members []anchoredMatcher
	states  *searchStatePool
}

// CompileMulti validates config and builds a MultiEngine for patterns.
//
// Every pattern is compiled; the first invalid one aborts construction with
// an ErrSyntax *Error carrying its index. An empty set is an ErrArgument
// error.
//
// Selection, in order:
//  1. one pattern → MultiSingle
//  2. only plain strings → MultiLiteral
//  3. any pattern using UsePrefix or UseFallback → MultiSequential
//  4. otherwise → MultiLongest, unless an anchor is empty or a pattern
//     needs a whole-text window, in which case MultiSequential
func CompileMulti(patterns []string, config Config) (*MultiEngine, error) {
	if err := config.Validate(); err != nil {
		return nil, argumentError("invalid config", err)
	}
	if len(patterns) == 0 {
		return nil, argumentError("empty pattern set", nil)
	}

	m := &MultiEngine{
		patterns: append([]string(nil), patterns...),
		engines:  make([]*Engine, len(patterns)),
	}
	for i, p := range patterns {
		e, err := compileIndexed(p, i, config)
		if err != nil {
			return nil, err
		}
		m.engines[i] = e
	}

	m.strategy = m.selectStrategy(config)
	ev := config.Logger.Debug().
		Int("patterns", len(patterns)).
		Str("strategy", m.strategy.String())
	if m.set != nil {
		ev = ev.Int("prefilter_bytes", m.set.HeapBytes())
	}
	ev.Msg("compiled pattern set")
	return m, nil
}

func (m *MultiEngine) selectStrategy(config Config) MultiStrategy {
	if len(m.engines) == 1 {
		return MultiSingle
	}

	allLiteral := true
	for _, e := range m.engines {
		switch e.strategy {
		case UsePrefix, UseFallback:
			return MultiSequential
		case UseLongest:
			allLiteral = false
			if lm := e.anchored.(*longestMatcher); lm.mode == windowOpen {
				return MultiSequential
			}
		}
	}

	lits := make([]literal.Literal, len(m.engines))
	m.members = make([]anchoredMatcher, len(m.engines))
	for i, e := range m.engines {
		lits[i] = literal.NewLiteral(e.anchored.anchor(), e.strategy == UseLiteral)
		m.members[i] = e.anchored
	}
	set, err := prefilter.NewBuilder(literal.NewSeq(lits...)).
		WithBlockSize(config.BlockSize).
		BuildMulti()
	if err != nil {
		// an empty literal pattern
		m.members = nil
		return MultiSequential
	}
	m.set = set
	m.states = newSearchStatePool(len(m.members))
	if allLiteral {
		return MultiLiteral
	}
	return MultiLongest
}

// Find returns the leftmost match of any pattern in haystack, or nil.
// Ties on the start position go to the pattern listed first.
func (m *MultiEngine) Find(haystack []byte) *Match {
	switch m.strategy {
	case MultiSingle:
		return m.engines[0].Find(haystack)
	case MultiLiteral:
		start, end, k := m.set.FindMatch(haystack, 0)
		if start < 0 {
			return nil
		}
		return NewPatternMatch(start, end, k, haystack)
	case MultiLongest:
		return m.findLongest(haystack)
	default:
		return m.findSequential(haystack)
	}
}

// IsMatch reports whether any pattern matches haystack.
func (m *MultiEngine) IsMatch(haystack []byte) bool {
	if m.strategy == MultiSequential {
		for _, e := range m.engines {
			if e.IsMatch(haystack) {
				return true
			}
		}
		return false
	}
	return m.Find(haystack) != nil
}

// findSequential keeps the smallest start; the strict comparison makes the
// first listed pattern win ties.
func (m *MultiEngine) findSequential(haystack []byte) *Match {
	var best *Match
	for i, e := range m.engines {
		found := e.Find(haystack)
		if found != nil && (best == nil || found.start < best.start) {
			best = NewPatternMatch(found.start, found.end, i, haystack)
		}
	}
	return best
}

// findLongest walks anchor occurrences left to right. Each pattern's first
// verified occurrence gives its leftmost match. After the first hit the walk
// continues only while some unfinished pattern could still produce a match
// starting at or before the best one. When overlapping windows make the
// walk more expensive than running every engine once, it switches to
// sequential search.
func (m *MultiEngine) findLongest(haystack []byte) *Match {
	state := m.states.get()
	defer m.states.put(state)
	done, resume := state.done, state.resume

	tracker := prefilter.NewTracker(0)
	var best *Match
	for at := 0; at <= len(haystack); {
		p, _, _ := m.set.FindMatch(haystack, at)
		if p < 0 {
			break
		}
		if best != nil && m.lowerBound(haystack, p, done) > best.start {
			break
		}
		if best == nil && tracker.ShouldRetire(p) {
			return m.findSequential(haystack)
		}
		for k, mem := range m.members {
			if done[k] || p < resume[k] || !bytes.HasPrefix(haystack[p:], mem.anchor()) {
				continue
			}
			start, end, next, ok := mem.verifyAt(haystack, p)
			tracker.Record(mem.window())
			if !ok {
				resume[k] = next
				continue
			}
			done[k] = true
			if best == nil || start < best.start || (start == best.start && k < best.pattern) {
				best = NewPatternMatch(start, end, k, haystack)
			}
		}
		at = p + 1
	}
	return best
}

// lowerBound returns the smallest start any unfinished pattern could report
// from an anchor at p or later.
func (m *MultiEngine) lowerBound(haystack []byte, p int, done []bool) int {
	bound := len(haystack) + 1
	for k, mem := range m.members {
		if !done[k] {
			bound = min(bound, mem.minStart(haystack, p))
		}
	}
	return bound
}

// Strategy returns the strategy selected for the set.
func (m *MultiEngine) Strategy() MultiStrategy {
	return m.strategy
}

// Patterns returns a copy of the source patterns.
func (m *MultiEngine) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// Engine returns the single-pattern Engine built for pattern i.
func (m *MultiEngine) Engine(i int) *Engine {
	return m.engines[i]
}
