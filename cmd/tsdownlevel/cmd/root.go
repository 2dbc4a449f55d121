package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsdownlevel",
	Short: "A TypeScript-to-JavaScript downleveling core, exercised from the command line",
	Long: `tsdownlevel is a development harness over the downlevel library:
it lowers classes, enums, namespaces, async/await, and other ES2015+/TS-only
constructs to plain ES5 (or whatever intermediate target you pick), the way
tsc's own --target/--module flags do, minus the type checker.

It never parses real .ts/.tsx source; give it a pre-built JSON AST fixture
(see internal/fixture) or run one of the built-in demo programs with
--demo.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("target", "es5", "output language level (es3, es5, es2015 .. esnext)")
	rootCmd.PersistentFlags().String("module", "esm", "output module format (esm, cjs, amd, umd, system)")
}
