// Package ir defines the language-agnostic tree of JavaScript constructs
// produced by the AST→IR converters (internal/convert) and consumed by the
// IR printer (internal/printer). It is a tagged-variant tree: literals,
// identifiers, expression shapes, statements, plus synthetic composite nodes
// for the downleveling patterns (ES5ClassIIFE, GeneratorBody, NamespaceIIFE,
// ...). See spec.md §3.
package ir

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
)

// Node is implemented by every IR shape. It carries no methods; the IR
// printer (internal/printer) dispatches on concrete type via a type switch,
// mirroring esbuild's js_ast.E / js_ast.S closed-interface pattern.
type Node interface{ isIRNode() }

func (*Identifier) isIRNode()       {}
func (*ThisExpr) isIRNode()         {}
func (*SuperExpr) isIRNode()        {}
func (*NumberLit) isIRNode()        {}
func (*StringLit) isIRNode()        {}
func (*BooleanLit) isIRNode()       {}
func (*NullLit) isIRNode()          {}
func (*UndefinedLit) isIRNode()     {}
func (*ArrayLit) isIRNode()         {}
func (*ObjectLit) isIRNode()        {}
func (*PropertyLit) isIRNode()      {}
func (*SpreadElement) isIRNode()    {}
func (*UnaryExpr) isIRNode()        {}
func (*BinaryExpr) isIRNode()       {}
func (*ConditionalExpr) isIRNode()  {}
func (*AssignExpr) isIRNode()       {}
func (*CallExpr) isIRNode()         {}
func (*NewExpr) isIRNode()          {}
func (*DotExpr) isIRNode()          {}
func (*IndexExpr) isIRNode()        {}
func (*FunctionExpr) isIRNode()     {}
func (*SequenceExpr) isIRNode()     {}
func (*ParenExpr) isIRNode()        {}

func (*Block) isIRNode()            {}
func (*VarStmt) isIRNode()          {}
func (*ExprStmt) isIRNode()         {}
func (*IfStmt) isIRNode()           {}
func (*ForStmt) isIRNode()          {}
func (*ForInStmt) isIRNode()        {}
func (*WhileStmt) isIRNode()        {}
func (*DoWhileStmt) isIRNode()      {}
func (*ReturnStmt) isIRNode()       {}
func (*ThrowStmt) isIRNode()        {}
func (*TryStmt) isIRNode()          {}
func (*SwitchStmt) isIRNode()       {}
func (*BreakStmt) isIRNode()        {}
func (*ContinueStmt) isIRNode()     {}
func (*LabeledStmt) isIRNode()      {}

// Synthetic downleveling composites (spec.md §3).
func (*ES5ClassIIFE) isIRNode()         {}
func (*ExtendsHelper) isIRNode()        {}
func (*PrototypeMethod) isIRNode()      {}
func (*StaticMethod) isIRNode()         {}
func (*DefineProperty) isIRNode()       {}
func (*AwaiterCall) isIRNode()          {}
func (*GeneratorBody) isIRNode()        {}
func (*GeneratorOp) isIRNode()          {}
func (*GeneratorSent) isIRNode()        {}
func (*GeneratorLabel) isIRNode()       {}
func (*PrivateFieldGet) isIRNode()      {}
func (*PrivateFieldSet) isIRNode()      {}
func (*WeakMapSet) isIRNode()           {}
func (*NamespaceIIFE) isIRNode()        {}
func (*EnumIIFE) isIRNode()             {}
func (*UseStrict) isIRNode()            {}
func (*EsModuleMarker) isIRNode()       {}
func (*RequireStatement) isIRNode()     {}
func (*NamedImport) isIRNode()          {}
func (*DefaultImport) isIRNode()        {}
func (*NamespaceImport) isIRNode()      {}
func (*ExportAssignment) isIRNode()     {}
func (*ReExportProperty) isIRNode()     {}
func (*ExportInit) isIRNode()           {}
func (*ASTRef) isIRNode()               {}
func (*Sequence) isIRNode()             {}
func (*Raw) isIRNode()                  {}
func (*Comment) isIRNode()              {}
func (*TrailingComment) isIRNode()      {}
func (*EmptyStatement) isIRNode()       {}
func (*TemplateConcat) isIRNode()       {}
func (*TaggedTemplateCall) isIRNode()   {}
func (*ForOfIteratorLoop) isIRNode()    {}
func (*ModuleWrapperIR) isIRNode()      {}

// --- literals & identifiers -------------------------------------------------

type Identifier struct{ Name string }

// ThisExpr is `this`; Captured is true when it must print as a capture
// variable name instead (set by SubstituteThis during conversion).
type ThisExpr struct {
	Captured  bool
	CaptureAs string
}

// SuperExpr is `super`, only ever produced inside a still-to-be-rewritten
// super call/property access; the class transformer consumes it before it
// would otherwise reach the printer directly.
type SuperExpr struct{}

type NumberLit struct{ Value float64 }
type StringLit struct{ Value string }
type BooleanLit struct{ Value bool }
type NullLit struct{}
type UndefinedLit struct{}

// --- compound expressions ----------------------------------------------------

type ArrayLit struct{ Elements []Node }

type ObjectLit struct{ Properties []*PropertyLit }

type PropertyLit struct {
	Key          Node // Identifier or StringLit or NumberLit or computed expr
	KeyIsComputed bool
	Value        Node
	IsShorthand  bool
	IsGetter     bool
	IsSetter     bool
}

type SpreadElement struct{ Value Node }

type UnaryExpr struct {
	Op     string
	Value  Node
	Prefix bool
}

type BinaryExpr struct {
	Op          string
	Left, Right Node
}

type ConditionalExpr struct{ Test, Yes, No Node }

type AssignExpr struct {
	Op          string // "=", "+=", ...
	Target, Value Node
}

type CallExpr struct {
	Callee Node
	Args   []Node
	Optional bool
}

type NewExpr struct {
	Callee Node
	Args   []Node
}

type DotExpr struct {
	Target   Node
	Property string
	Optional bool
}

type IndexExpr struct {
	Target, Index Node
	Optional      bool
}

// FunctionExpr is a plain `function(...) {...}` (or `function name(...) {...}`)
// produced once arrows/generators/async functions have been lowered away.
type FunctionExpr struct {
	Name       string
	Params     []Node // Identifier or AssignExpr (default) or SpreadElement (rest)
	Body       []Node
	IsGenerator bool
}

type SequenceExpr struct{ Exprs []Node }

type ParenExpr struct{ Inner Node }

// --- statements ---------------------------------------------------------------

type Block struct{ Stmts []Node }

type VarStmt struct {
	Kind  string // "var" | "let" | "const"
	Decls []VarDecl
}

type VarDecl struct {
	Name string
	Init Node // nil if none
}

type ExprStmt struct{ Expr Node }

type IfStmt struct {
	Test     Node
	Then     Node
	Else     Node // nil if none
}

type ForStmt struct {
	Init, Test, Update Node
	Body               Node
}

type ForInStmt struct {
	Kind string // "var"|"let"|"const"|"" for plain assignment target
	Name string
	Obj  Node
	Body Node
}

type WhileStmt struct {
	Test Node
	Body Node
}

type DoWhileStmt struct {
	Body Node
	Test Node
}

type ReturnStmt struct{ Value Node } // nil value = bare `return;`

type ThrowStmt struct{ Value Node }

type TryStmt struct {
	Try          []Node
	CatchParam   string // "" if no binding
	HasCatch     bool
	Catch        []Node
	HasFinally   bool
	Finally      []Node
}

type SwitchStmt struct {
	Discriminant Node
	Cases        []SwitchCase
}

type SwitchCase struct {
	Test  Node // nil for `default:`
	Body  []Node
}

type BreakStmt struct{ Label string }
type ContinueStmt struct{ Label string }
type LabeledStmt struct {
	Label string
	Body  Node
}

// --- fallback and formatting nodes --------------------------------------------

// ASTRef splices the original source-text byte range for node Id. This is
// the universal escape hatch: any AST subtree the converters don't yet
// model exactly passes through unchanged (spec.md §4.2, §9).
type ASTRef struct{ Id ast.NodeId }

// Sequence groups independently-printed IR nodes with no extra punctuation
// between them beyond what the printer's statement/expression context adds.
type Sequence struct{ Items []Node }

// Raw splices pre-formatted text verbatim (used for the small number of
// fixed-string constructs, like helper declarations or opcode comments,
// that have no structure worth modeling).
type Raw struct{ Text string }

type Comment struct{ Text string; Block bool }
type TrailingComment struct{ Text string }

type EmptyStatement struct{}

// TemplateConcat is a lowered non-tagged template literal, rewritten as a
// left-to-right string concatenation.
type TemplateConcat struct {
	// Parts alternates: Parts[0] is the leading cooked string (may be
	// empty), Exprs[0] is the first substitution, Parts[1] the next
	// cooked string, and so on; len(Parts) == len(Exprs)+1.
	Parts []string
	Exprs []Node
}

// TaggedTemplateCall is a lowered tagged template, rewritten as a call to
// the tag function with a `__makeTemplateObject`-produced strings array.
type TaggedTemplateCall struct {
	Tag        Node
	ThisArg    Node // non-nil when the tag is a property access, e.g. `a.b` + tag call uses `a` as `this`
	Cooked     []string
	Raw        []string
	Exprs      []Node
}

// ForOfIteratorLoop is the ES5 `__values`-based rewrite of `for (x of y)`.
type ForOfIteratorLoop struct {
	IteratorVar string // e.g. "_a"
	ResultVar   string // e.g. "_b"
	Iterable    Node
	BindingKind string // "var"|"let"|"const"
	BindingName string
	Body        Node
}

// ModuleWrapperIR is the whole-file wrapper for a non-ESM output format
// (spec.md §4.2, Module wrapping). Every non-ESM format shares the same
// CommonJS-shaped Preamble/Body; Format alone tells the printer which
// surrounding factory boilerplate (plain CJS, `define(...)`, the UMD
// bootstrap, or `System.register(...)`) to emit around it.
type ModuleWrapperIR struct {
	Format     compat.ModuleFormat
	Deps       []string
	ParamNames []string // factory parameter name per Deps entry, AMD/UMD/SystemJS order
	GlobalName string   // copied from config.Options.GlobalName; the printer does not read it
	Preamble   []Node   // UseStrict, EsModuleMarker, ExportInit, RequireStatement...
	Body       []Node
}
