// Package main provides the clampgen CLI for generating fluid clamp() tokens
// and breakpoint classes for Tailwind projects.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Lint already printed its report; the exit code is the message.
		if !errors.Is(err, errLintFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
