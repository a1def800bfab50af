//go:build unix

package cmd

import (
	"os"

	"golang.org/x/sys/unix"
)

// readInput maps path read-only. The returned release function must be
// called once the contents are no longer used.
func readInput(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := fi.Size()
	if size == 0 || !fi.Mode().IsRegular() {
		// mmap rejects empty files, and pipes or devices have no size
		data, err := os.ReadFile(path)
		return data, noRelease, err
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		data, err := os.ReadFile(path)
		return data, noRelease, err
	}
	return data, func() error { return unix.Munmap(data) }, nil
}
