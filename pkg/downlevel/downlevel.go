// Package downlevel is the single public entry point over the two-stage
// lowering core (spec.md §1): internal/lower classifies the AST and records
// transform directives, internal/convert builds the IR tree those
// directives describe, and internal/printer renders it to bytes. Everything
// else in this module is an implementation detail reached only through
// Transform.
//
// Mirrors esbuild's pkg/api, which is likewise a thin façade that recovers
// the parser/printer's internal "this should never happen" panics at the
// package boundary so host code never observes a raw panic crossing out of
// the library.
package downlevel

import (
	"fmt"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/config"
	"github.com/tsdownlevel/tsdownlevel/internal/convert"
	"github.com/tsdownlevel/tsdownlevel/internal/logger"
	"github.com/tsdownlevel/tsdownlevel/internal/lower"
	"github.com/tsdownlevel/tsdownlevel/internal/printer"
	"github.com/tsdownlevel/tsdownlevel/internal/sourcemap"
)

// Options configures one Transform call. File is the Arena/root pair the
// caller's parser (or internal/fixture, for the CLI demo/golden-test paths)
// already produced; the core itself never parses source text.
type Options struct {
	Arena    *ast.Arena
	Root     ast.NodeId
	Config   config.Options
	TypeOnly lower.TypeOnlySet

	// SourceName is this file's path as it should appear in a source map's
	// "sources" array. Ignored when Config.SourceMap is SourceMapNone.
	SourceName string

	// Log receives one Error-level note per panic Transform recovers; no
	// Debug-level notes are recorded. A zero Log (nil AddMsg) discards.
	Log logger.Log
}

// Output is a successful Transform result (spec.md §6).
type Output struct {
	JS []byte

	// SourceMap is the v3 JSON document, nil unless Options.Config.SourceMap
	// requested one.
	SourceMap *sourcemap.Document
}

// InternalError is what a recovered internal-inconsistency panic (spec.md
// §7.3: "a directive references a non-existent node, malformed IR, counter
// overflow") turns into at the package boundary. Its existence means the
// core's own invariants broke, never that the input was malformed — those
// cases are handled without panicking (spec.md §7's two expected failure
// regimes).
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("downlevel: internal error: %s", e.Reason)
}

// Transform runs the full Lower → Convert → Print pipeline over one file.
// It recovers any panic raised during the pipeline (an internal-consistency
// failure such as an out-of-range node index) and returns it as
// *InternalError rather than letting it cross the package boundary as a
// bare panic.
func Transform(opts Options) (out Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			reason := fmt.Sprint(r)
			opts.Log.AddError(logger.Loc{}, reason)
			err = &InternalError{Reason: reason}
		}
	}()

	ctx := lower.Lower(opts.Arena, opts.Root, opts.Config, opts.TypeOnly, opts.Log)

	conv := convert.New(opts.Arena, ctx, opts.Config)
	file := conv.ConvertFile(opts.Root)

	result := printer.Print(opts.Arena, file, opts.Config, ctx.Helpers, opts.Log)

	out = Output{JS: result.JS}
	if opts.Config.SourceMap != config.SourceMapNone {
		// Single file per Transform call, so "sources" always has exactly
		// one entry; the caller fills in its real path via SourceName.
		doc := sourcemap.NewDocument("", []string{opts.SourceName}, nil, result.Names, result.Mappings)
		out.SourceMap = &doc
	}
	return out, nil
}
