// Package convert implements the second stage of spec.md §4: given an
// ast.Arena and the transform.Context a completed internal/lower pass
// produced, build the ir.Node tree the printer (internal/printer) actually
// walks. Nodes with no registered directive (spec.md's Identity case) are
// spliced straight from source text via ir.ASTRef rather than rebuilt,
// following the spec's "ASTRef fallback" design: this core never needs a
// faithful IR model of constructs it isn't rewriting.
package convert

import (
	"sort"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/config"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// Converter holds the read-only inputs threaded through every builder
// function in this package: the arena being converted, the directives
// lowering produced for it, and the output options that gate target-specific
// choices a directive's own fields don't already carry (e.g. module format).
type Converter struct {
	Arena   *ast.Arena
	Ctx     *transform.Context
	Options config.Options
}

func New(arena *ast.Arena, ctx *transform.Context, options config.Options) *Converter {
	return &Converter{Arena: arena, Ctx: ctx, Options: options}
}

// ConvertFile converts the whole program rooted at `root` (spec.md §4.2,
// Module wrapping). A plain ESM file has no ModuleWrapper directive and its
// statements convert straight through (import/export syntax is itself valid
// ESM output). Under a CommonJS-shaped format the file's import/export
// declarations are not emitted as AST — they are fully synthesized from
// scratch into a require/exports preamble, since TS import/export syntax
// would otherwise splice through ir.ASTRef unchanged into invalid output.
func (c *Converter) ConvertFile(root ast.NodeId) ir.Node {
	node := c.Arena.Node(root)
	childIDs := childrenOf(node)

	d, hasDirective := c.Ctx.Get(root)
	wrapper, isWrapper := d.(transform.ModuleWrapper)
	if !hasDirective || !isWrapper {
		return &ir.Sequence{Items: c.convertStatementList(childIDs)}
	}

	return c.buildModuleWrapper(wrapper, childIDs)
}

func (c *Converter) convertStatementList(ids []ast.NodeId) []ir.Node {
	out := make([]ir.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.convertNode(id))
	}
	return out
}

// convertNode is the single recursive entry point every builder in this
// package calls back into for a child node, whether that child is itself a
// statement or an expression; the IR has no separate statement/expression
// node-kind split once ASTRef and the synthetic composites are in play.
func (c *Converter) convertNode(id ast.NodeId) ir.Node {
	if !id.IsValid() {
		return nil
	}

	if d, ok := c.Ctx.Get(id); ok {
		return c.convertDirective(id, d)
	}

	if !c.hasDirectiveInSubtree(id) {
		return &ir.ASTRef{Id: id}
	}

	return c.genericSplice(id)
}

// convertDirective dispatches the directive(s) registered for id. A Chain
// arises either from multiple independent function-shaping directives
// landing on the same function node (ES5ArrowFunction + ES5AsyncFunction +
// ES5FunctionParameters, internal/lower/lower_function.go) or from an export
// wrapping an already-lowered declaration (internal/lower/lower_module.go);
// both are handled by partitioning the flattened list into "shaping"
// directives (rebuild the node) and a trailing CommonJSExport wrapper.
func (c *Converter) convertDirective(id ast.NodeId, d transform.Directive) ir.Node {
	directives := flattenChain(d)

	var shaping []transform.Directive
	var exportWrap *transform.CommonJSExport
	for _, x := range directives {
		if ew, ok := x.(transform.CommonJSExport); ok {
			cp := ew
			exportWrap = &cp
			continue
		}
		shaping = append(shaping, x)
	}

	var result ir.Node
	switch {
	case isFunctionShaping(shaping):
		result = c.buildFunctionNode(id, shaping)
	case len(shaping) > 0:
		result = c.buildOne(id, shaping[0])
	default:
		result = &ir.ASTRef{Id: id}
	}

	if exportWrap != nil {
		result = c.wrapExport(id, result, *exportWrap)
	}
	return result
}

func flattenChain(d transform.Directive) []transform.Directive {
	if chain, ok := d.(transform.Chain); ok {
		return chain.Directives
	}
	return []transform.Directive{d}
}

func isFunctionShaping(directives []transform.Directive) bool {
	for _, d := range directives {
		switch d.(type) {
		case transform.ES5ArrowFunction, transform.ES5AsyncFunction, transform.ES5FunctionParameters:
			return true
		}
	}
	return false
}

func (c *Converter) buildOne(id ast.NodeId, d transform.Directive) ir.Node {
	switch v := d.(type) {
	case transform.ES5Class:
		return c.buildES5Class(id, v)
	case transform.ES5Namespace:
		return c.buildES5Namespace(id, v)
	case transform.ES5Enum:
		return c.buildES5Enum(id, v)
	case transform.ES5ForOf:
		return c.buildES5ForOf(id, v)
	case transform.ES5ObjectLiteral:
		return c.buildES5ObjectLiteral(id, v)
	case transform.ES5ArrayLiteral:
		return c.buildES5ArrayLiteral(id, v)
	case transform.ES5CallSpread:
		return c.buildES5CallSpread(id, v)
	case transform.ES5VariableDeclarationList:
		return c.buildES5VariableDeclarationList(id, v)
	case transform.ES5TemplateLiteral:
		return c.buildES5TemplateLiteral(id, v)
	case transform.ES5SuperCall:
		return c.buildES5SuperCall(id, v)
	case transform.SubstituteThis:
		return &ir.ThisExpr{Captured: true, CaptureAs: v.CaptureName}
	case transform.SubstituteArguments:
		return &ir.Identifier{Name: v.CaptureName}
	case transform.CommonJSExportDefaultExpr:
		return c.buildCommonJSExportDefaultExpr(v)
	case transform.CommonJSExportDefaultClassES5:
		return c.buildCommonJSExportDefaultClassES5(v)
	default:
		return &ir.ASTRef{Id: id}
	}
}

// hasDirectiveInSubtree reports whether id or any descendant has a
// registered directive, so convertNode knows whether a plain ASTRef splice
// is safe (nothing underneath needs rewriting) or whether it must descend
// generically instead.
func (c *Converter) hasDirectiveInSubtree(id ast.NodeId) bool {
	if !id.IsValid() {
		return false
	}
	if _, ok := c.Ctx.Get(id); ok {
		return true
	}
	node := c.Arena.Node(id)
	for _, child := range childrenOf(node) {
		if c.hasDirectiveInSubtree(child) {
			return true
		}
	}
	return false
}

// genericSplice rebuilds id's printed form as source-text segments
// alternating with the converted form of whichever direct-or-indirect
// children carry a directive, preserving every byte of untouched syntax
// around the rewritten part(s) (spec.md §9's residual-gap allowance).
func (c *Converter) genericSplice(id ast.NodeId) ir.Node {
	node := c.Arena.Node(id)
	var rewritten []ast.NodeId
	c.collectOutermostDirectives(id, &rewritten)

	if len(rewritten) == 0 {
		return &ir.ASTRef{Id: id}
	}

	sort.Slice(rewritten, func(i, j int) bool {
		return c.Arena.Node(rewritten[i]).Span.Pos < c.Arena.Node(rewritten[j]).Span.Pos
	})

	var items []ir.Node
	cursor := node.Span.Pos
	for _, childID := range rewritten {
		childSpan := c.Arena.Node(childID).Span
		if childSpan.Pos > cursor {
			items = append(items, &ir.Raw{Text: c.Arena.Source[cursor:childSpan.Pos]})
		}
		items = append(items, c.convertNode(childID))
		cursor = childSpan.End
	}
	if node.Span.End > cursor {
		items = append(items, &ir.Raw{Text: c.Arena.Source[cursor:node.Span.End]})
	}
	return &ir.Sequence{Items: items}
}

// collectOutermostDirectives walks down from id (exclusive of id itself,
// which the caller has already confirmed has no directive) and records the
// shallowest descendants that do, without descending past them — a
// descendant's own directive builder is responsible for whatever rewriting
// happens further inside it.
func (c *Converter) collectOutermostDirectives(id ast.NodeId, out *[]ast.NodeId) {
	node := c.Arena.Node(id)
	for _, child := range childrenOf(node) {
		if !child.IsValid() {
			continue
		}
		if _, ok := c.Ctx.Get(child); ok {
			*out = append(*out, child)
			continue
		}
		c.collectOutermostDirectives(child, out)
	}
}

func childrenOf(node *ast.Node) []ast.NodeId {
	if g, ok := node.Data.(*ast.GenericData); ok {
		return g.Children
	}
	return nil
}

