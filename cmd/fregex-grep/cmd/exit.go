package cmd

import (
	"errors"
	"fmt"
)

// exitError carries a grep-style exit code: 0 found, 1 not found, 2 error.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	switch {
	case e.err != nil:
		return e.err.Error()
	case e.code == 1:
		return "no match"
	default:
		return fmt.Sprintf("exit %d", e.code)
	}
}

func (e exitError) Unwrap() error {
	return e.err
}

// ExitCode extracts the exit code from err, or returns -1 when err does not
// carry one.
func ExitCode(err error) int {
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}
