// Package config holds the flat options struct threaded through lowering,
// conversion, and printing, mirroring esbuild's internal/config.Options:
// a value-typed bag of knobs passed down the call chain rather than stashed
// in a context.Context.
package config

import "github.com/tsdownlevel/tsdownlevel/internal/compat"

// NewlineKind selects the line terminator the source writer emits.
type NewlineKind uint8

const (
	NewlineLF NewlineKind = iota
	NewlineCRLF
)

// IndentStyle selects how internal/printer.SourceWriter renders one
// indentation step.
type IndentStyle uint8

const (
	IndentSpaces IndentStyle = iota
	IndentTabs
)

// SourceMapMode mirrors esbuild's SourceMap enum: whether to produce mapping
// data at all, and in what shape.
type SourceMapMode uint8

const (
	SourceMapNone SourceMapMode = iota
	SourceMapLinkedWithComment
	SourceMapInline
	SourceMapExternalWithoutComment
)

// Options is the immutable configuration for one Lower+Emit pass over a
// single source file. It is copied by value, never mutated after
// construction, matching esbuild's config.Options usage.
type Options struct {
	Target       compat.Target
	Module       compat.ModuleFormat
	Newline      NewlineKind
	Indent       IndentStyle
	SourceMap    SourceMapMode

	// SourceFileIndex identifies this file in the emitted source-map's
	// "sources" array; it has no meaning inside the core beyond that.
	SourceFileIndex uint32

	// RemoveComments suppresses all leading/trailing comment emission.
	RemoveComments bool

	// Deps lists the module specifiers this file imports, in source
	// order, consumed by the AMD/UMD/SystemJS dependency-array wrapper.
	Deps []string

	// GlobalName is a UMD/IIFE global variable name. It is carried into
	// the module wrapper IR but not used by the printer: the UMD bootstrap
	// has no "no AMD, no CommonJS" browser-global branch, whatever its value.
	GlobalName string

	// PreserveConstEnums keeps `const enum` members materialized as a
	// real object instead of erasing the declaration entirely (spec.md
	// §4.2, Enum (ES5): "A const enum without preserveConstEnums erases
	// entirely").
	PreserveConstEnums bool
}

// TargetRequiresES5Lowering is a convenience used throughout internal/lower:
// most per-feature gates in spec.md §4.1 are phrased as "and target = ES5"
// or "and target < ES2022" etc, but the single most common gate is simply
// "this target cannot use native classes/let/const/arrow functions" which
// is exactly compat.Target < ES2015.
func (o Options) TargetRequiresES5Lowering() bool {
	return o.Target < compat.ES2015
}
