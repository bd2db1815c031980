package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps command errors to process exit codes. A prompt that ended
// without a value exits 2 without printing anything else.
func exitCode(err error) int {
	if errors.Is(err, errNoValue) {
		return 2
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}
