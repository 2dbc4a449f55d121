// Command tsdownlevel is a thin development harness over pkg/downlevel,
// mirroring the teacher's own cmd/esbuild: a convenience CLI for exercising
// the library end to end, not a production driver. It never parses real
// TypeScript; it reads pre-built AST fixtures (see internal/fixture) or runs
// one of a few canned demo programs.
package main

import (
	"fmt"
	"os"

	"github.com/tsdownlevel/tsdownlevel/cmd/tsdownlevel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
