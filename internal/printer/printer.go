// Package printer implements spec.md §4.3/§4.4/§4.5: the deterministic
// recursive IR printer, source writer, and (since this core's internal/convert
// stage already folds the "AST emitter"'s four dispatch paths into a single
// ir.Node tree per spec.md's two-stage architecture) the single walk that
// turns that tree into UTF-8 bytes plus an optional source-map.
package printer

import (
	"sort"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/config"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/logger"
	"github.com/tsdownlevel/tsdownlevel/internal/renamer"
	"github.com/tsdownlevel/tsdownlevel/internal/runtime"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// Result is what one Print call hands back (spec.md §6, "Output from the
// core"): the emitted bytes plus, when source maps are enabled, the
// accumulated mapping vector ready for VLQ encoding.
type Result struct {
	JS       []byte
	Mappings string
	Names    []string
}

type printer struct {
	arena   *ast.Arena
	options config.Options
	log     logger.Log
	w       *sourceWriter

	// lineOffsets[i] is the byte offset of line i's first character,
	// computed once so ASTRef/Raw splices can report a source-map position
	// without rescanning the file on every mapping.
	lineOffsets []int32
}

// Print walks file (the whole-program ir.Node internal/convert.ConvertFile
// produced) and renders it to bytes. helperFlags gates which runtime helper
// definitions (internal/runtime) get prepended.
func Print(arenaValue *ast.Arena, file ir.Node, opts config.Options, helperFlags transform.HelperFlags, log logger.Log) Result {
	p := &printer{
		arena:       arenaValue,
		options:     opts,
		log:         log,
		w:           newSourceWriter(opts),
		lineOffsets: computeLineOffsets(arenaValue.Source),
	}

	wrapper, isWrapper := file.(*ir.ModuleWrapperIR)

	if !isWrapper {
		p.printHelperPreambleIfNeeded(helperFlags)
	}

	switch n := file.(type) {
	case *ir.Sequence:
		p.printStmtList(n.Items)
	case *ir.ModuleWrapperIR:
		p.printModuleWrapper(n, helperFlags)
	default:
		p.printStmt(n)
	}

	p.w.joiner.EnsureNewlineAtEnd()

	result := Result{JS: p.w.takeOutput()}
	if p.w.mappings != nil {
		result.Mappings, result.Names = p.w.mappings.EncodeVLQMappings()
	}
	return result
}

// printHelperPreambleIfNeeded emits every flagged runtime helper, each
// followed by a blank line, before any other output (spec.md §6,
// "Runtime-helper emission... prepends... at file top"). Module-wrapped
// output instead prepends helpers just inside the factory body, handled by
// printModuleWrapper, since "use strict"/the factory signature must come
// first in that shape.
func (p *printer) printHelperPreambleIfNeeded(flags transform.HelperFlags) {
	if !runtime.AnyNeeded(flags) {
		return
	}
	p.w.write(runtime.Assemble(flags))
	p.w.writeNewline()
	p.w.writeNewline()
}

// computeLineOffsets records the byte offset of the first character of each
// line in source, 0-indexed, for posToLineCol.
func computeLineOffsets(source string) []int32 {
	offsets := []int32{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			offsets = append(offsets, int32(i+1))
		}
	}
	return offsets
}

// posToLineCol converts a byte offset into the (line, column) pair a
// source-map mapping needs, both 0-indexed.
func (p *printer) posToLineCol(pos int32) (line, col int32) {
	i := sort.Search(len(p.lineOffsets), func(i int) bool { return p.lineOffsets[i] > pos }) - 1
	if i < 0 {
		i = 0
	}
	return int32(i), pos - p.lineOffsets[i]
}

func (p *printer) addMappingForNode(id ast.NodeId) {
	if !id.IsValid() || p.w.mappings == nil {
		return
	}
	line, col := p.posToLineCol(p.arena.Node(id).Span.Pos)
	p.w.addMapping(line, col)
}

func newTempScope() *renamer.Scope { return renamer.NewScope() }
