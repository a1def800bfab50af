package simd_test

import (
	"fmt"

	"github.com/coregx/fregex/simd"
)

func ExampleMemmem() {
	pos := simd.Memmem([]byte("hello world"), []byte("world"))
	fmt.Printf("Found at position %d\n", pos)
	// Output: Found at position 6
}

func ExampleMemrchr() {
	text := []byte("line one\nline two\nline three")
	fmt.Println(simd.Memrchr(text[:20], '\n'))
	// Output: 17
}
