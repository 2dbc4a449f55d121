package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/config"
	"github.com/tsdownlevel/tsdownlevel/internal/fixture"
	"github.com/tsdownlevel/tsdownlevel/internal/logger"
	"github.com/tsdownlevel/tsdownlevel/pkg/downlevel"
)

var (
	runDemo string
	runMap  bool
)

var runCmd = &cobra.Command{
	Use:   "run [fixture.json]",
	Short: "Downlevel one fixture and print the result",
	Long: `Downlevel a JSON AST fixture (see internal/fixture) and print the
emitted JavaScript to stdout. Pass a fixture file path, or --demo one of the
built-in canned programs instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runDemo, "demo", "", fmt.Sprintf("run a built-in demo instead of a file (one of %v)", demoNames()))
	runCmd.Flags().BoolVar(&runMap, "map", false, "also print the source-map JSON")
}

func runRun(c *cobra.Command, args []string) error {
	targetStr, _ := c.Flags().GetString("target")
	moduleStr, _ := c.Flags().GetString("module")
	target, err := parseTarget(targetStr)
	if err != nil {
		return err
	}
	module, err := parseModule(moduleStr)
	if err != nil {
		return err
	}

	var arena *ast.Arena
	var root ast.NodeId
	var sourceName string

	switch {
	case runDemo != "":
		arena, root, err = loadDemo(runDemo)
		sourceName = runDemo + ".ts"
	case len(args) == 1:
		sourceName = args[0]
		var data []byte
		data, err = os.ReadFile(args[0])
		if err == nil {
			arena, root, err = fixture.Load(data)
		}
	default:
		return fmt.Errorf("pass a fixture file or --demo (one of %v)", demoNames())
	}
	if err != nil {
		return err
	}

	sourceMapMode := config.SourceMapNone
	if runMap {
		sourceMapMode = config.SourceMapExternalWithoutComment
	}

	log, takeMsgs := logger.NewCollectingLog()
	out, err := downlevel.Transform(downlevel.Options{
		Arena:      arena,
		Root:       root,
		SourceName: sourceName,
		Config: config.Options{
			Target:    target,
			Module:    module,
			SourceMap: sourceMapMode,
		},
		Log: log,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(c.OutOrStdout(), string(out.JS))

	for _, msg := range takeMsgs() {
		fmt.Fprintf(c.ErrOrStderr(), "%s: %s\n", msg.Kind, msg.Data.Text)
	}

	if runMap && out.SourceMap != nil {
		encoded, err := json.MarshalIndent(out.SourceMap, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), string(encoded))
	}

	return nil
}
