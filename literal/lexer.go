package literal

import (
	"strings"
	"unicode/utf8"
)

// TokenKind classifies one lexical unit of pattern text.
type TokenKind uint8

const (
	// Char is a single literal character, written plainly or as an escape
	// that denotes exactly one character (\. \$ \n \t ...).
	Char TokenKind = iota

	// Class matches exactly one character out of a set: '.', a bracket
	// expression, or one of the Perl class escapes \d \D \w \W \s \S.
	Class

	// Escape is any other backslash sequence: assertions (\b \B \A \z),
	// Unicode classes (\pL, \p{Greek}), hex and octal codes, \Q...\E quoting.
	// Its width and position semantics are unknown to the lexer.
	Escape

	// Meta is an unescaped syntax character outside a bracket expression:
	// one of ^ $ * + ? ( ) | {
	Meta
)

// String returns a human-readable name of the token kind.
func (k TokenKind) String() string {
	switch k {
	case Char:
		return "Char"
	case Class:
		return "Class"
	case Escape:
		return "Escape"
	case Meta:
		return "Meta"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit of a pattern.
type Token struct {
	Kind TokenKind

	// Rune is the decoded character for Char and the syntax character for
	// Meta. It is unset for Class and Escape.
	Rune rune

	// Escaped reports whether the token started with a backslash.
	Escaped bool

	// Pos is the byte offset of the token in the pattern and Raw its text.
	Pos int
	Raw string
}

// Width returns the number of bytes a Char token matches in UTF-8 text.
func (t Token) Width() int {
	if n := utf8.RuneLen(t.Rune); n > 0 {
		return n
	}
	return 1
}

// IsMeta reports whether t is the unescaped syntax character r.
func (t Token) IsMeta(r rune) bool {
	return t.Kind == Meta && t.Rune == r
}

// Tokenize splits pattern into tokens, scanning left to right.
//
// A backslash escapes exactly the next character: `\\\\` is one literal
// backslash and the character after it is unescaped again. Bracket
// expressions are consumed whole, honouring escapes, a leading ']' and
// POSIX classes like [:alpha:], so syntax characters inside brackets are
// never reported as Meta.
//
// Tokenize never fails; malformed input (a trailing '\', an unterminated
// bracket) is consumed into a final Escape or Class token. Patterns are
// expected to be validated by the regex engine first.
func Tokenize(pattern string) []Token {
	tokens := make([]Token, 0, len(pattern))
	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		var tok Token
		switch r {
		case '\\':
			tok = scanEscape(pattern, i)
		case '[':
			end := skipBracket(pattern, i)
			tok = Token{Kind: Class, Pos: i, Raw: pattern[i:end]}
		case '.':
			tok = Token{Kind: Class, Pos: i, Raw: "."}
		case '^', '$', '*', '+', '?', '(', ')', '|', '{':
			tok = Token{Kind: Meta, Rune: r, Pos: i, Raw: pattern[i : i+size]}
		default:
			tok = Token{Kind: Char, Rune: r, Pos: i, Raw: pattern[i : i+size]}
		}
		tokens = append(tokens, tok)
		i += len(tok.Raw)
	}
	return tokens
}

// scanEscape reads the escape sequence starting at the backslash at i.
func scanEscape(pattern string, i int) Token {
	if i+1 >= len(pattern) {
		return Token{Kind: Escape, Escaped: true, Pos: i, Raw: pattern[i:]}
	}
	c, size := utf8.DecodeRuneInString(pattern[i+1:])
	end := i + 1 + size
	tok := Token{Kind: Escape, Escaped: true, Pos: i}

	switch {
	case c < utf8.RuneSelf && !isAlnum(byte(c)):
		tok.Kind = Char
		tok.Rune = c
	case c == 'a':
		tok.Kind, tok.Rune = Char, '\a'
	case c == 'f':
		tok.Kind, tok.Rune = Char, '\f'
	case c == 't':
		tok.Kind, tok.Rune = Char, '\t'
	case c == 'n':
		tok.Kind, tok.Rune = Char, '\n'
	case c == 'r':
		tok.Kind, tok.Rune = Char, '\r'
	case c == 'v':
		tok.Kind, tok.Rune = Char, '\v'
	case strings.ContainsRune("dDwWsS", c):
		tok.Kind = Class
	case c == 'p' || c == 'P' || c == 'x':
		if end < len(pattern) && pattern[end] == '{' {
			if j := strings.IndexByte(pattern[end:], '}'); j >= 0 {
				end += j + 1
			} else {
				end = len(pattern)
			}
		} else if c == 'x' {
			end = min(end+2, len(pattern))
		} else if end < len(pattern) {
			_, n := utf8.DecodeRuneInString(pattern[end:])
			end += n
		}
	case c == 'Q':
		if j := strings.Index(pattern[end:], `\E`); j >= 0 {
			end += j + 2
		} else {
			end = len(pattern)
		}
	case c >= '0' && c <= '7':
		for n := 1; n < 3 && end < len(pattern) && pattern[end] >= '0' && pattern[end] <= '7'; n++ {
			end++
		}
	}

	tok.Raw = pattern[i:end]
	return tok
}

// skipBracket returns the offset just past the bracket expression that
// starts at i, or len(pattern) if it is unterminated.
func skipBracket(pattern string, i int) int {
	j := i + 1
	if j < len(pattern) && pattern[j] == '^' {
		j++
	}
	// A ']' right after the opening bracket is a member, not the terminator.
	if j < len(pattern) && pattern[j] == ']' {
		j++
	}
	for j < len(pattern) {
		switch {
		case pattern[j] == '\\':
			j += 2
		case strings.HasPrefix(pattern[j:], "[:"):
			if k := strings.Index(pattern[j+2:], ":]"); k >= 0 {
				j += k + 4
			} else {
				j++
			}
		case pattern[j] == ']':
			return j + 1
		default:
			j++
		}
	}
	return len(pattern)
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Unescape returns the text a pattern matches when the pattern is a pure
// literal, i.e. every token is a Char. ok is false otherwise.
//
// Example:
//
//	s, ok := literal.Unescape(`\$\(\)\$`) // "$()$", true
//	_, ok = literal.Unescape(`a.c`)        // "", false
func Unescape(pattern string) (text string, ok bool) {
	if !strings.ContainsAny(pattern, `\.[^$*+?()|{`) {
		return pattern, true
	}
	var b strings.Builder
	b.Grow(len(pattern))
	for _, tok := range Tokenize(pattern) {
		if tok.Kind != Char {
			return "", false
		}
		b.WriteRune(tok.Rune)
	}
	return b.String(), true
}

// Prefix returns the run of plain characters a pattern starts with, up to
// the first escape, class or syntax character. When that character is a
// quantifier making the previous character optional (* ? {) the last rune
// is dropped. Patterns with a top-level alternation have no mandatory
// prefix and yield "".
//
// Example:
//
//	literal.Prefix(`Long.*string`)   // "Long"
//	literal.Prefix(`colou?r`)        // "colo"
//	literal.Prefix(`foo|bar`)        // ""
func Prefix(pattern string) string {
	tokens := Tokenize(pattern)
	if hasTopLevelAlternation(tokens) {
		return ""
	}
	end := 0
	for _, tok := range tokens {
		if tok.Kind != Char || tok.Escaped {
			if tok.IsMeta('*') || tok.IsMeta('?') || tok.IsMeta('{') {
				_, size := utf8.DecodeLastRuneInString(pattern[:end])
				end -= size
			}
			break
		}
		end = tok.Pos + len(tok.Raw)
	}
	return pattern[:end]
}

// HasTopLevelAlternation reports whether pattern contains a '|' outside of
// any group.
func HasTopLevelAlternation(pattern string) bool {
	return hasTopLevelAlternation(Tokenize(pattern))
}

func hasTopLevelAlternation(tokens []Token) bool {
	depth := 0
	for _, tok := range tokens {
		switch {
		case tok.IsMeta('('):
			depth++
		case tok.IsMeta(')'):
			if depth > 0 {
				depth--
			}
		case tok.IsMeta('|') && depth == 0:
			return true
		}
	}
	return false
}
