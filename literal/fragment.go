package literal

import (
	"unicode/utf8"
)

// Fragment describes the longest literal run every match of a pattern must
// contain, together with an upper bound on the match length.
type Fragment struct {
	// Bytes is the longest mandatory literal run. Empty when the pattern has
	// no literal character that is guaranteed to appear.
	Bytes []byte

	// MaxLen is an upper bound, in bytes, of the length of any match.
	// Literal characters contribute their UTF-8 length; '.', bracket
	// expressions and class escapes contribute utf8.UTFMax. Only meaningful
	// when LengthKnown is true.
	MaxLen int

	// LengthKnown is false when the pattern contains unbounded repetition
	// (* or +) or a construct of unknown width.
	LengthKnown bool
}

// Delta returns how many bytes a match may extend beyond the fragment on
// either side.
func (f Fragment) Delta() int {
	if d := f.MaxLen - len(f.Bytes); d > 0 {
		return d
	}
	return 0
}

// LongestFragment scans pattern left to right and returns its longest
// mandatory literal run.
//
// Rules:
//   - A literal character extends the current run.
//   - '*' and '?' remove the character they apply to from the run.
//   - '*' and '+' make the length unbounded.
//   - Every non-literal token closes the run; the longest closed run wins.
//
// The result is only a mandatory fragment for patterns free of groups,
// alternation and counted repetition; those tokens close the run and mark
// the length unknown but the caller is expected to exclude such patterns.
//
// Example:
//
//	f := literal.LongestFragment(`C[a-z]*a`)
//	// f.Bytes == "C", f.LengthKnown == false
//	f = literal.LongestFragment(`p..ce`)
//	// f.Bytes == "ce", f.MaxLen == 11, f.LengthKnown == true
func LongestFragment(pattern string) Fragment {
	var (
		best     []rune
		run      []rune
		frag     = Fragment{LengthKnown: true}
		closeRun = func() {
			if len(run) > len(best) {
				best = append(best[:0], run...)
			}
			run = run[:0]
		}
	)

	for _, tok := range Tokenize(pattern) {
		switch tok.Kind {
		case Char:
			run = append(run, tok.Rune)
			frag.MaxLen += tok.Width()
		case Class:
			frag.MaxLen += utf8.UTFMax
			closeRun()
		case Escape:
			frag.LengthKnown = false
			closeRun()
		case Meta:
			switch tok.Rune {
			case '*', '?':
				if len(run) > 0 {
					run = run[:len(run)-1]
				}
				if tok.Rune == '*' {
					frag.LengthKnown = false
				}
			case '+':
				frag.LengthKnown = false
			case '^', '$':
			default:
				frag.LengthKnown = false
			}
			closeRun()
		}
	}
	closeRun()

	frag.Bytes = []byte(string(best))
	return frag
}
