package literal

import (
	"regexp/syntax"
)

// CanMatchNewline reports whether any match of pattern may contain '\n'.
//
// Patterns that cannot match a newline only ever match inside a single
// line, which lets a searcher bound verification to the enclosing line.
// The answer is conservative: true whenever a literal, class or any-char
// node admits '\n', even if that node is unreachable.
func CanMatchNewline(pattern string) (bool, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return false, err
	}
	return canMatchNewline(re), nil
}

func canMatchNewline(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpAnyChar:
		return true
	case syntax.OpLiteral:
		for _, r := range re.Rune {
			if r == '\n' {
				return true
			}
		}
	case syntax.OpCharClass:
		for i := 0; i+1 < len(re.Rune); i += 2 {
			if re.Rune[i] <= '\n' && '\n' <= re.Rune[i+1] {
				return true
			}
		}
	}
	for _, sub := range re.Sub {
		if canMatchNewline(sub) {
			return true
		}
	}
	return false
}
