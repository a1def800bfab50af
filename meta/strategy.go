package meta

import (
	"strings"

	"github.com/coregx/fregex/literal"
)

// Strategy represents the search strategy selected for a pattern.
//
// Strategy selection is a pure function of the pattern text, so the same
// pattern always gets the same strategy. The order of the constants is the
// order of preference: the first strategy a pattern qualifies for wins.
type Strategy int

const (
	// UseLiteral searches for the pattern as a plain string.
	// Selected for:
	//   - Patterns with no unescaped syntax character (. [ ^ $ * + ? ( | {)
	//   - Escapes limited to punctuation and \a \f \t \n \r \v
	UseLiteral Strategy = iota

	// UseLongest anchors on the longest mandatory literal fragment and runs
	// the full engine on a window around each occurrence.
	// Selected for:
	//   - No groups, alternation, counted repetition or anchors
	//   - Escapes limited to literal characters and \d \D \w \W \s \S
	//   - No * + ? when the pattern mentions a newline
	UseLongest

	// UsePrefix anchors on the leading literal and runs the full engine from
	// its first occurrence to the end of the text.
	// Selected for:
	//   - Patterns whose first two characters are plain literals
	UsePrefix

	// UseFallback runs the full engine over the whole text.
	UseFallback
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseLiteral:
		return "UseLiteral"
	case UseLongest:
		return "UseLongest"
	case UsePrefix:
		return "UsePrefix"
	case UseFallback:
		return "UseFallback"
	default:
		return "Unknown"
	}
}

// Classify validates pattern with compile and selects its strategy.
//
// The pattern is compiled before any heuristic analysis; a compile failure
// is returned as an *Error of kind ErrSyntax and no strategy is selected.
// The compiled Verifier is returned so that the caller compiles each
// pattern exactly once.
//
// Example:
//
//	strategy, v, err := meta.Classify(`p..ce`, meta.EngineStdlib.Compiler())
//	// strategy == meta.UseLongest
func Classify(pattern string, compile Compiler) (Strategy, Verifier, error) {
	v, err := compile(pattern)
	if err != nil {
		return UseFallback, nil, syntaxError(pattern, -1, err)
	}
	return SelectStrategy(pattern), v, nil
}

// SelectStrategy classifies pattern text without validating it.
//
// Decision order: UseLiteral > UseLongest > UsePrefix > UseFallback.
func SelectStrategy(pattern string) Strategy {
	tokens := literal.Tokenize(pattern)
	switch {
	case isLiteral(tokens):
		return UseLiteral
	case isLongest(pattern, tokens):
		return UseLongest
	case isPrefix(tokens):
		return UsePrefix
	default:
		return UseFallback
	}
}

func isLiteral(tokens []literal.Token) bool {
	for _, tok := range tokens {
		if tok.Kind != literal.Char {
			return false
		}
	}
	return true
}

// isLongest reports whether every token keeps a match within a window that
// can be computed from the fragment position.
func isLongest(pattern string, tokens []literal.Token) bool {
	multiline := strings.Contains(pattern, "\n") || strings.Contains(pattern, `\n`)
	for _, tok := range tokens {
		switch tok.Kind {
		case literal.Escape:
			return false
		case literal.Meta:
			switch tok.Rune {
			case '*', '+', '?':
				if multiline {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}

func isPrefix(tokens []literal.Token) bool {
	if len(tokens) < 2 {
		return false
	}
	for _, tok := range tokens[:2] {
		if tok.Kind != literal.Char || tok.Escaped {
			return false
		}
	}
	return true
}
