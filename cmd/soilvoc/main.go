// Package main provides the soilvoc binary entry point.
// Soilvoc maintains the SoilWise soil-health SKOS vocabulary: restoring
// it from the curated spreadsheet, interlinking it against external
// thesauri and rendering it for review.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/soilwise-he/soilvoc/commands"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
