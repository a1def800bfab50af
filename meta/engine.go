package meta

import (
	"github.com/coregx/fregex/literal"
	"github.com/coregx/fregex/prefilter"
)

// Engine searches for a single pattern using the strategy selected for it.
//
// The Engine:
//  1. Compiles the pattern with the configured full engine (validation)
//  2. Classifies the pattern (see Strategy)
//  3. Builds exactly one matcher for that strategy
//
// Thread safety: an Engine is immutable after Compile. Multiple goroutines
// can call Find and IsMatch on the same Engine concurrently.
//
// Example:
//
//	engine, err := meta.Compile(`ba(se)+`, meta.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	match := engine.Find([]byte("multiple ba ba but only one is base"))
//	// match.Start() == 31, match.End() == 35
type Engine struct {
	pattern  string
	strategy Strategy
	reason   string
	matcher  matcher
	verifier Verifier

	// set for UseLiteral and UseLongest; reused by multi-pattern search
	anchored anchoredMatcher
}

// Compile validates config and builds an Engine for pattern.
//
// Errors are *Error values: ErrArgument for an invalid config, ErrSyntax
// when the full engine rejects the pattern.
func Compile(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, argumentError("invalid config", err)
	}
	return compileIndexed(pattern, -1, config)
}

// compileIndexed builds an Engine for the pattern at index of a pattern
// set (-1 for a single pattern).
func compileIndexed(pattern string, index int, config Config) (*Engine, error) {
	strategy, v, err := Classify(pattern, config.Engine.Compiler())
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Index = index
		}
		return nil, err
	}
	if !config.EnableHeuristics {
		strategy = UseFallback
	}

	e := &Engine{
		pattern:  pattern,
		strategy: strategy,
		verifier: v,
	}
	e.build()
	if !config.EnableHeuristics {
		e.reason = "heuristics disabled in configuration"
	}

	ev := config.Logger.Debug().
		Str("pattern", pattern).
		Str("strategy", e.strategy.String()).
		Str("reason", e.reason).
		Int("prefilter_bytes", prefilterBytes(e.matcher))
	if index >= 0 {
		ev = ev.Int("index", index)
	}
	if lm, ok := e.matcher.(*longestMatcher); ok {
		ev = ev.Str("fragment", string(lm.frag)).Str("window", lm.mode.String())
	}
	ev.Msg("compiled pattern")

	return e, nil
}

// build constructs the matcher for e.strategy and records why it applies,
// downgrading to UseFallback when the selected strategy has no usable anchor.
func (e *Engine) build() {
	switch e.strategy {
	case UseLiteral:
		text, _ := literal.Unescape(e.pattern)
		seq := literal.NewSeq(literal.NewLiteral([]byte(text), true))
		lm := newLiteralMatcher([]byte(text), prefilter.NewBuilder(seq).Build(), e.verifier)
		e.matcher, e.anchored = lm, lm
		e.reason = "pattern is a plain string"
		return

	case UseLongest:
		frag := literal.LongestFragment(e.pattern)
		if len(frag.Bytes) > 0 {
			lm := newLongestMatcher(e.pattern, frag, e.verifier)
			e.matcher, e.anchored = lm, lm
			e.reason = lm.mode.reason()
			return
		}

	case UsePrefix:
		if prefix := literal.Prefix(e.pattern); prefix != "" {
			seq := literal.NewSeq(literal.NewLiteral([]byte(prefix), false))
			e.matcher = &prefixMatcher{
				prefix: prefilter.NewBuilder(seq).Build(),
				v:      e.verifier,
			}
			e.reason = "literal prefix anchors the full engine"
			return
		}
	}
	e.strategy = UseFallback
	e.matcher = &fallbackMatcher{v: e.verifier}
	e.reason = "no usable literal anchor"
}

// Find returns the leftmost-first match in haystack, or nil.
//
// The result is identical to running the full engine over haystack; the
// strategy only changes how fast it is found.
func (e *Engine) Find(haystack []byte) *Match {
	return e.matcher.find(haystack)
}

// IsMatch reports whether haystack contains a match.
func (e *Engine) IsMatch(haystack []byte) bool {
	return e.matcher.find(haystack) != nil
}

// Strategy returns the strategy in use. It differs from the lexical
// classification when that strategy had no usable anchor.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Reason returns a human-readable explanation of the strategy in use.
func (e *Engine) Reason() string {
	return e.reason
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Verifier returns the compiled full engine backing this Engine.
func (e *Engine) Verifier() Verifier {
	return e.verifier
}
