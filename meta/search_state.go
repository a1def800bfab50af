package meta

import (
	"sync"
)

// searchState holds the per-search mutable state of a MultiEngine: which
// patterns are settled and where each unsettled one may next match.
//
// A MultiEngine is immutable, so concurrent searches each take their own
// searchState from the pool.
type searchState struct {
	done   []bool
	resume []int
}

func newSearchState(patterns int) *searchState {
	return &searchState{
		done:   make([]bool, patterns),
		resume: make([]int, patterns),
	}
}

// reset prepares the state for reuse.
func (s *searchState) reset() {
	for i := range s.done {
		s.done[i] = false
		s.resume[i] = 0
	}
}

// searchStatePool manages searchState instances of one pattern count.
type searchStatePool struct {
	pool sync.Pool
}

func newSearchStatePool(patterns int) *searchStatePool {
	p := &searchStatePool{}
	p.pool.New = func() any {
		return newSearchState(patterns)
	}
	return p
}

// get returns a reset searchState.
func (p *searchStatePool) get() *searchState {
	s := p.pool.Get().(*searchState)
	s.reset()
	return s
}

func (p *searchStatePool) put(s *searchState) {
	p.pool.Put(s)
}
