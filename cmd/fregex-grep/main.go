// fregex-grep prints the offsets of every match of one or more patterns in
// files or standard input.
package main

import (
	"os"

	"github.com/coregx/fregex/cmd/fregex-grep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		os.Exit(2)
	}
}
