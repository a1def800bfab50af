package meta

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stdlibIndex is the ground truth: the first match of the Go regexp package.
func stdlibIndex(t testing.TB, pattern string, haystack []byte) []int {
	t.Helper()
	return regexp.MustCompile(pattern).FindIndex(haystack)
}

func matchIndex(m *Match) []int {
	if m == nil {
		return nil
	}
	return []int{m.Start(), m.End()}
}

func mustCompile(t testing.TB, pattern string) *Engine {
	t.Helper()
	e, err := Compile(pattern, DefaultConfig())
	require.NoError(t, err, "pattern %q", pattern)
	return e
}

var randomAtoms = []string{
	"a", "b", "c", ".", "[ab]", "[^a]", `\n`, "\n", "é", `\d`, `\s`, "1", " ",
}

var randomQuantifiers = []string{"", "", "", "*", "+", "?"}

// randomPattern builds a pattern from atoms that exercises every window
// mode: bounded, line and whole-text.
func randomPattern(rng *rand.Rand) string {
	var b strings.Builder
	for n := 1 + rng.Intn(5); n > 0; n-- {
		b.WriteString(randomAtoms[rng.Intn(len(randomAtoms))])
		b.WriteString(randomQuantifiers[rng.Intn(len(randomQuantifiers))])
	}
	return b.String()
}

func randomHaystack(rng *rand.Rand) []byte {
	const alphabet = "abc\n1 é"
	runes := []rune(alphabet)
	var b strings.Builder
	for n := rng.Intn(40); n > 0; n-- {
		b.WriteRune(runes[rng.Intn(len(runes))])
	}
	return []byte(b.String())
}
