// Package ast defines the read-only view over the typed AST arena that the
// downleveling core consumes. The arena itself is owned and populated by an
// external parser/binder/checker; this package never mutates it.
package ast

// NodeId is an opaque index into an externally owned Arena. The zero value
// is the invalid id, mirroring esbuild's ast.Index32 bit-flip trick so the
// zero value of a NodeId (as it would appear in an un-initialized struct
// field) is distinguishable from a real, valid index into node zero.
type NodeId struct{ flippedIndex uint32 }

// InvalidNodeId is the zero value; no valid node ever compares equal to it.
var InvalidNodeId = NodeId{}

// MakeNodeId wraps a raw arena index as a NodeId.
func MakeNodeId(index uint32) NodeId {
	return NodeId{flippedIndex: ^index}
}

// IsValid reports whether this id refers to a real arena slot.
func (id NodeId) IsValid() bool {
	return id.flippedIndex != 0
}

// Index returns the raw arena index. Panics if the id is invalid.
func (id NodeId) Index() uint32 {
	if !id.IsValid() {
		panic("ast: Index() called on an invalid NodeId")
	}
	return ^id.flippedIndex
}

// Span is a half-open byte range [Pos, End) into the file's source text.
type Span struct {
	Pos int32
	End int32
}

// Kind classifies a Node. Only the syntax kinds the downleveling core needs
// to recognize are enumerated; a real front end's kind space is much larger,
// but anything this core doesn't special-case is handled via KindOther plus
// the ASTRef fallback (see internal/ir).
type Kind uint16

const (
	KindOther Kind = iota
	KindSourceFile

	// Declarations that may require ES5 IIFE lowering.
	KindClassDeclaration
	KindClassExpression
	KindEnumDeclaration
	KindConstEnumDeclaration
	KindModuleDeclaration // `namespace X { ... }` / `module X { ... }`

	// Functions and their flavors.
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunction
	KindMethodDeclaration
	KindGetAccessor
	KindSetAccessor
	KindConstructor

	// Statements.
	KindVariableStatement
	KindVariableDeclarationList
	KindVariableDeclaration
	KindExpressionStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoStatement
	KindBlock
	KindReturnStatement
	KindThrowStatement
	KindTryStatement
	KindSwitchStatement
	KindBreakStatement
	KindContinueStatement
	KindLabeledStatement
	KindEmptyStatement
	KindClassStaticBlockDeclaration

	// Expressions.
	KindCallExpression
	KindNewExpression
	KindAwaitExpression
	KindYieldExpression
	KindSpreadElement
	KindArrayLiteralExpression
	KindObjectLiteralExpression
	KindTemplateExpression
	KindTaggedTemplateExpression
	KindBinaryExpression
	KindConditionalExpression
	KindPropertyAccessExpression
	KindElementAccessExpression
	KindThisExpression
	KindSuperExpression
	KindSuperCall
	KindIdentifier
	KindPrivateIdentifier
	KindParenthesizedExpression

	// Destructuring patterns.
	KindObjectBindingPattern
	KindArrayBindingPattern
	KindBindingElement

	// Ambient / type-only constructs that are erased at every target.
	KindInterfaceDeclaration
	KindTypeAliasDeclaration
	KindAmbientDeclaration

	// Module constructs.
	KindImportDeclaration
	KindImportEqualsDeclaration
	KindExportDeclaration
	KindExportAssignment // `export = expr`
	KindNamedImports
	KindNamespaceImport
	KindNamedExports

	// Literals.
	KindNumericLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral

	KindDecorator
)

// Node is one entry of the arena: a syntax kind tag, a byte span, and an
// opaque payload the typed accessor functions in this package know how to
// project. The core never inspects Data directly outside of this package.
type Node struct {
	Data Data
	Span Span
	Kind Kind
}

// Data is implemented by every typed per-kind payload (*ClassData,
// *FunctionData, *EnumData, ...). It carries no methods; it exists purely
// as a closed-ish marker so arena authors can't accidentally stuff an
// unrelated value into Node.Data.
type Data interface{ isNodeData() }

// Arena is the read-only, externally-owned AST. The core borrows it for the
// duration of one Lower+Emit pass and never retains a mutable reference.
type Arena struct {
	Nodes  []Node
	Source string // full source text, for ASTRef splicing and comment scanning
}

// Node returns the node addressed by id. Panics if id is invalid or out of
// range, which per spec.md §7.3 is an internal-inconsistency bug, never a
// condition reachable from well-formed input.
func (a *Arena) Node(id NodeId) *Node {
	idx := id.Index()
	if int(idx) >= len(a.Nodes) {
		panic("ast: NodeId out of range")
	}
	return &a.Nodes[idx]
}

// Text returns the verbatim source-text slice for a node's span.
func (a *Arena) Text(id NodeId) string {
	sp := a.Node(id).Span
	return a.Source[sp.Pos:sp.End]
}

// Kind is a convenience accessor equivalent to Node(id).Kind.
func (a *Arena) Kind(id NodeId) Kind {
	return a.Node(id).Kind
}
