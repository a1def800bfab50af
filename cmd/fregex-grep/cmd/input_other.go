//go:build !unix

package cmd

import "os"

func readInput(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	return data, noRelease, err
}
