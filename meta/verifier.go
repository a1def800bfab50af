package meta

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wasilibs/go-re2"
)

// Verifier is the capability this package consumes from a full regex
// engine: report the leftmost-first match in b as a two-element slice
// [start, end], or nil if there is none.
//
// *regexp.Regexp and *re2.Regexp both satisfy Verifier. Implementations
// must be safe for concurrent use; engines built on them share one
// Verifier across goroutines.
type Verifier interface {
	FindIndex(b []byte) []int
}

// Compiler builds a Verifier for a pattern. A returned error means the
// pattern is invalid.
type Compiler func(pattern string) (Verifier, error)

// EngineKind names a full regex engine implementation.
type EngineKind uint8

const (
	// EngineStdlib is the Go standard library regexp package.
	EngineStdlib EngineKind = iota

	// EngineRE2 is RE2 compiled to WebAssembly (github.com/wasilibs/go-re2).
	EngineRE2
)

// String returns the engine name accepted by ParseEngineKind.
func (k EngineKind) String() string {
	switch k {
	case EngineStdlib:
		return "stdlib"
	case EngineRE2:
		return "re2"
	default:
		return fmt.Sprintf("EngineKind(%d)", k)
	}
}

// ParseEngineKind parses an engine name ("stdlib" or "re2", case
// insensitive).
func ParseEngineKind(name string) (EngineKind, error) {
	switch strings.ToLower(name) {
	case "stdlib", "go", "regexp":
		return EngineStdlib, nil
	case "re2":
		return EngineRE2, nil
	default:
		return 0, fmt.Errorf("unknown regex engine %q", name)
	}
}

// Compiler returns the Compiler for the engine kind.
func (k EngineKind) Compiler() Compiler {
	if k == EngineRE2 {
		return compileRE2
	}
	return compileStdlib
}

func compileStdlib(pattern string) (Verifier, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

func compileRE2(pattern string) (Verifier, error) {
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}
