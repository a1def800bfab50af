package prefilter

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func toBytes(patterns ...string) [][]byte {
	out := make([][]byte, len(patterns))
	for i, p := range patterns {
		out[i] = []byte(p)
	}
	return out
}

// naiveFind is the reference: leftmost start, lowest pattern index on ties.
func naiveFind(haystack []byte, patterns [][]byte, at int) (int, int, int) {
	for start := at; start <= len(haystack); start++ {
		for i, p := range patterns {
			if bytes.HasPrefix(haystack[start:], p) {
				return start, start + len(p), i
			}
		}
	}
	return -1, -1, -1
}

func TestWuManber_Find(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		b        int
		haystack string
		want     [3]int
	}{
		{"single", []string{"pattern", "not present"}, 2, "text with pattern", [3]int{10, 17, 0}},
		{"alpha_first", []string{"alpha", "beta"}, 2, "alpha beta gamma delta", [3]int{0, 5, 0}},
		{"alpha_second", []string{"beta", "alpha"}, 2, "alpha beta gamma delta", [3]int{0, 5, 1}},
		{"beta_leftmost", []string{"delta", "beta"}, 2, "alpha beta gamma delta", [3]int{6, 10, 1}},
		{"four", []string{"gamma", "beta", "delta", "alpha"}, 2, "alpha beta gamma delta", [3]int{0, 5, 3}},
		{"b3", []string{"gamma", "delta"}, 3, "alpha beta gamma delta", [3]int{11, 16, 0}},
		{"b1", []string{"ma", "ta"}, 1, "alpha beta gamma", [3]int{8, 10, 1}},
		{"at_end", []string{"ab"}, 2, "xxab", [3]int{2, 4, 0}},
		{"whole", []string{"abc"}, 2, "abc", [3]int{0, 3, 0}},
		{"tie_first_listed", []string{"ab", "abc"}, 2, "xabc", [3]int{1, 3, 0}},
		{"tie_longer_first", []string{"abc", "ab"}, 2, "xabc", [3]int{1, 4, 0}},
		{"longer_runs_past_end", []string{"abcdef", "abz"}, 2, "abcde abz", [3]int{6, 9, 1}},
		{"overlap", []string{"bcd", "abcx"}, 2, "abcd", [3]int{1, 4, 0}},
		{"not_found", []string{"xyz", "qqq"}, 2, "alpha beta", [3]int{-1, -1, -1}},
		{"haystack_shorter", []string{"longpattern"}, 2, "short", [3]int{-1, -1, -1}},
		{"empty_haystack", []string{"ab"}, 2, "", [3]int{-1, -1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wm, err := NewWuManber(toBytes(tt.patterns...), tt.b)
			if err != nil {
				t.Fatalf("NewWuManber: %v", err)
			}
			s, e, p := wm.Find([]byte(tt.haystack))
			if got := [3]int{s, e, p}; got != tt.want {
				t.Errorf("Find(%q) = %v, want %v", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestWuManber_FindAt(t *testing.T) {
	wm, err := NewWuManber(toBytes("many"), 2)
	if err != nil {
		t.Fatal(err)
	}
	haystack := []byte("many many many many")
	var starts []int
	for at := 0; ; {
		s, e, _ := wm.FindAt(haystack, at)
		if s < 0 {
			break
		}
		starts = append(starts, s)
		at = e
	}
	if fmt.Sprint(starts) != "[0 5 10 15]" {
		t.Errorf("starts = %v, want [0 5 10 15]", starts)
	}
	if s, _, _ := wm.FindAt(haystack, 100); s != -1 {
		t.Errorf("FindAt past end = %d, want -1", s)
	}
	if s, _, _ := wm.FindAt(haystack, -5); s != 0 {
		t.Errorf("FindAt negative = %d, want 0", s)
	}
}

func TestWuManber_Degenerate(t *testing.T) {
	tests := []struct {
		name     string
		patterns [][]byte
		b        int
	}{
		{"empty_set", nil, 2},
		{"shorter_than_block", toBytes("abc", "x"), 2},
		{"empty_pattern", toBytes("abc", ""), 1},
		{"zero_block", toBytes("abc"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWuManber(tt.patterns, tt.b)
			if !errors.Is(err, ErrPatternTooShort) {
				t.Errorf("err = %v, want ErrPatternTooShort", err)
			}
		})
	}
}

// TestWuManber_Random compares against naiveFind on a small alphabet where
// shifts, collisions and overlapping candidates are frequent.
func TestWuManber_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randString := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = "abc"[rng.Intn(3)]
		}
		return b
	}

	for iter := 0; iter < 500; iter++ {
		blockSize := 1 + rng.Intn(3)
		patterns := make([][]byte, 1+rng.Intn(4))
		for i := range patterns {
			patterns[i] = randString(blockSize + rng.Intn(4))
		}
		haystack := randString(rng.Intn(64))
		at := rng.Intn(len(haystack) + 1)

		wm, err := NewWuManber(patterns, blockSize)
		if err != nil {
			t.Fatalf("NewWuManber(%q, %d): %v", patterns, blockSize, err)
		}
		gs, ge, gp := wm.FindAt(haystack, at)
		ws, we, wp := naiveFind(haystack, patterns, at)
		if gs != ws || ge != we || gp != wp {
			t.Fatalf("patterns=%q b=%d haystack=%q at=%d: got (%d,%d,%d), want (%d,%d,%d)",
				patterns, blockSize, haystack, at, gs, ge, gp, ws, we, wp)
		}
	}
}

func TestWuManber_Accessors(t *testing.T) {
	wm, err := NewWuManber(toBytes("alpha", "beta"), 3)
	if err != nil {
		t.Fatal(err)
	}
	if wm.BlockSize() != 3 || wm.MinLen() != 4 || wm.PatternCount() != 2 {
		t.Errorf("accessors: b=%d minLen=%d count=%d", wm.BlockSize(), wm.MinLen(), wm.PatternCount())
	}
	if wm.HeapBytes() <= 0 {
		t.Error("HeapBytes() should be positive")
	}
}

func TestTableSize(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, minTableSize},
		{1, minTableSize},
		{200, 512},
		{1 << 20, maxTableSize},
	}
	for _, tt := range tests {
		if got := tableSize(tt.n); got != tt.want {
			t.Errorf("tableSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func BenchmarkWuManber(b *testing.B) {
	wm, _ := NewWuManber(toBytes("needle", "haystack", "pattern", "fragment"), 2)
	text := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 512)
	text = append(text, []byte("fragment")...)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = wm.Find(text)
	}
}
