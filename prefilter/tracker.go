package prefilter

// Tracker measures, during one search, how much verification work the
// candidates of a prefilter cost compared to the text they cover.
//
// Every candidate hands a window of text to the full regex engine. When
// candidates are dense the windows overlap and the same bytes are verified
// over and over; a single full-engine pass over the rest of the text is then
// cheaper. The tracker reports when that point is reached, and the caller
// retires the prefilter for the remainder of the search.
//
// A Tracker is a value owned by a single search. It is not safe for
// concurrent use and is never stored in an immutable matcher.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(0)
//	for at := 0; ; {
//	    p := pf.Find(haystack, at)
//	    if p < 0 {
//	        return nil
//	    }
//	    if tracker.ShouldRetire(p) {
//	        return fullScan(haystack, p)
//	    }
//	    lo, hi := window(p)
//	    tracker.Record(hi - lo)
//	    ...
//	}
type Tracker struct {
	origin int // search start position

	// Statistics
	candidates int // candidates verified
	verified   int // bytes handed to the full engine

	// Configuration
	warmup int     // candidates before the first check
	ratio  float64 // retire when verified > ratio * covered

	retired bool
}

// TrackerConfig holds the retirement thresholds.
type TrackerConfig struct {
	// WarmupPeriod is the number of candidates verified before the tracker
	// may retire a prefilter.
	// Default: 32
	WarmupPeriod int

	// MaxOverlap is the largest acceptable ratio of verified bytes to text
	// covered so far.
	// Default: 4
	MaxOverlap float64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		WarmupPeriod: 32,
		MaxOverlap:   4,
	}
}

// NewTracker returns a tracker for a search starting at origin, with the
// default configuration.
func NewTracker(origin int) Tracker {
	return NewTrackerWithConfig(origin, DefaultTrackerConfig())
}

// NewTrackerWithConfig returns a tracker with a custom configuration.
func NewTrackerWithConfig(origin int, config TrackerConfig) Tracker {
	return Tracker{
		origin: origin,
		warmup: config.WarmupPeriod,
		ratio:  config.MaxOverlap,
	}
}

// Record accounts for one candidate whose verification examined n bytes.
func (t *Tracker) Record(n int) {
	t.candidates++
	t.verified += n
}

// ShouldRetire reports whether verifying the candidate at pos is likely to
// cost more than scanning the rest of the text. Once it returns true it
// keeps returning true.
func (t *Tracker) ShouldRetire(pos int) bool {
	if t.retired {
		return true
	}
	if t.candidates < t.warmup {
		return false
	}
	covered := pos - t.origin + 1
	if float64(t.verified) > t.ratio*float64(covered) {
		t.retired = true
	}
	return t.retired
}

// Stats returns the candidates and verified bytes recorded so far.
func (t *Tracker) Stats() (candidates, verified int) {
	return t.candidates, t.verified
}

// Retired reports whether the tracker has retired the prefilter.
func (t *Tracker) Retired() bool {
	return t.retired
}
