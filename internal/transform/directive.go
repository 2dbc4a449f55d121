// Package transform defines the transform context: the side table that maps
// AST node ids to "transform directives" telling the emitter (internal/printer)
// how to re-emit a node, plus the helper-usage flags and this-capture scope
// map that ride alongside it (spec.md §3).
package transform

import "github.com/tsdownlevel/tsdownlevel/internal/ast"

// Directive is a tagged variant, one per transformed node (spec.md §3's
// Transform directive table). Identity is represented by the *absence* of
// an entry in Context.directives rather than by a dedicated struct, so the
// emitter's "no directive" and "Identity" code paths are the same branch,
// as spec.md requires: "Identity is equivalent to absence of a directive;
// the emitter must treat them identically."
type Directive interface{ isDirective() }

func (ES5Class) isDirective()                      {}
func (ES5Namespace) isDirective()                  {}
func (ES5Enum) isDirective()                       {}
func (ES5ArrowFunction) isDirective()              {}
func (ES5AsyncFunction) isDirective()              {}
func (ES5ForOf) isDirective()                      {}
func (ES5ObjectLiteral) isDirective()              {}
func (ES5ArrayLiteral) isDirective()               {}
func (ES5CallSpread) isDirective()                 {}
func (ES5VariableDeclarationList) isDirective()    {}
func (ES5FunctionParameters) isDirective()         {}
func (ES5TemplateLiteral) isDirective()            {}
func (SubstituteThis) isDirective()                {}
func (SubstituteArguments) isDirective()           {}
func (ES5SuperCall) isDirective()                  {}
func (CommonJSExport) isDirective()                {}
func (CommonJSExportDefaultExpr) isDirective()     {}
func (CommonJSExportDefaultClassES5) isDirective() {}
func (ModuleWrapper) isDirective()                 {}
func (Chain) isDirective()                         {}

// ES5Class rewrites a class (declaration or expression) to an IIFE.
// IsExpression distinguishes the ES5ClassExpression flavor of spec.md's
// table; both produce the same IR shape (ir.ES5ClassIIFE), the difference
// only matters to the emitter when deciding whether a trailing `;` and
// surrounding statement context is needed.
type ES5Class struct {
	ClassNode   ast.NodeId
	Heritage    ast.NodeId // InvalidNodeId if no `extends`
	IsExpression bool
	NameOverride string // used for anonymous `export default class`
}

// ES5Namespace rewrites `namespace A.B.C {...}` to nested IIFEs.
type ES5Namespace struct {
	NamespaceNode    ast.NodeId
	ShouldDeclareVar bool
}

// ES5Enum rewrites an enum to an IIFE with reverse mapping.
type ES5Enum struct {
	EnumNode ast.NodeId
}

// ES5ArrowFunction rewrites `(p) => body` to `function(p){...}`.
type ES5ArrowFunction struct {
	ArrowNode        ast.NodeId
	CapturesThis     bool
	CapturesArguments bool
	// ClassAlias is the `_a`-style alias variable name when this arrow is
	// inside a static class member and references the class name by its
	// own identifier (spec.md §4.2, Arrow function).
	ClassAlias string
}

// ES5AsyncFunction wraps a function body in `__awaiter`/`__generator`.
type ES5AsyncFunction struct {
	FunctionNode ast.NodeId
}

// ES5ForOf rewrites `for (x of y)` to the `__values` iterator-protocol loop.
type ES5ForOf struct {
	ForOfNode ast.NodeId
}

// ES5ObjectLiteral / ES5ArrayLiteral lower computed keys and spreads.
type ES5ObjectLiteral struct{ Node ast.NodeId }
type ES5ArrayLiteral struct{ Node ast.NodeId }

// ES5CallSpread lowers a call/new argument list containing a spread.
type ES5CallSpread struct{ Node ast.NodeId }

// ES5VariableDeclarationList splits destructuring declarations.
type ES5VariableDeclarationList struct{ ListNode ast.NodeId }

// ES5FunctionParameters lowers defaults/rest/destructuring parameters.
type ES5FunctionParameters struct{ FunctionNode ast.NodeId }

// ES5TemplateLiteral concatenates a template literal or lowers a tagged
// template to a `__makeTemplateObject` call.
type ES5TemplateLiteral struct{ TemplateNode ast.NodeId }

// SubstituteThis / SubstituteArguments mark individual `this`/`arguments`
// tokens inside a lowered arrow for capture-name substitution.
type SubstituteThis struct{ CaptureName string }
type SubstituteArguments struct{ CaptureName string }

// ES5SuperCall rewrites `super(...)` inside a derived-class constructor.
type ES5SuperCall struct{}

// CommonJSExport prepends `exports.X = ...` to a wrapped declaration.
type CommonJSExport struct {
	Names     []string
	IsDefault bool
	Inner     Directive // the declaration's own directive, or nil for Identity
}

// CommonJSExportDefaultExpr handles `export default <expr>;` where expr is
// not itself a declaration.
type CommonJSExportDefaultExpr struct {
	Expr ast.NodeId
}

// CommonJSExportDefaultClassES5 handles `export default class {...}` at
// ES5: the class IIFE must be both declared and exported as the default.
type CommonJSExportDefaultClassES5 struct {
	ClassNode ast.NodeId
	Inner     ES5Class
}

// ModuleWrapper wraps the whole file for non-ESM output.
type ModuleWrapper struct {
	Deps []string
}

// Chain composes multiple directives on one node, innermost first.
type Chain struct {
	Directives []Directive
}
