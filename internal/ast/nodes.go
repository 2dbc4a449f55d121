package ast

// This file holds the typed per-kind payloads referenced from Node.Data.
// Each shape mirrors the corresponding construct in esbuild's js_ast.go
// (EClass/Class, EFunction/Fn, SEnum, SNamespace, ...) but is expressed over
// NodeId children instead of embedded value types, since ownership of the
// tree lives outside this package.

func (*ClassData) isNodeData()       {}
func (*FunctionData) isNodeData()    {}
func (*EnumData) isNodeData()        {}
func (*NamespaceData) isNodeData()   {}
func (*VarDeclData) isNodeData()     {}
func (*PropertyData) isNodeData()    {}
func (*ImportData) isNodeData()      {}
func (*ExportData) isNodeData()      {}
func (*BindingPatternData) isNodeData() {}
func (*GenericData) isNodeData()     {}

// ClassData backs KindClassDeclaration / KindClassExpression.
type ClassData struct {
	Name          string // empty for anonymous `export default class`
	Extends       NodeId // InvalidNodeId if no heritage clause
	Members       []ClassMember
	IsExported    bool
	IsDefault     bool
	TypeParamOnly bool // true if erased entirely (ambient-only declaration)
}

type ClassMemberKind uint8

const (
	MemberMethod ClassMemberKind = iota
	MemberGetAccessor
	MemberSetAccessor
	MemberField
	MemberStaticBlock
	MemberConstructor
)

type ClassMember struct {
	Name         NodeId // identifier / string / numeric / computed expr node
	NameIsString bool
	NameIsNumber bool
	NameIsComputed bool
	IsStatic     bool
	IsPrivate    bool
	Kind         ClassMemberKind
	Fn           NodeId // function body for methods/accessors/constructor
	Initializer  NodeId // field initializer, or static-block body
	LeadingComment  string
	TrailingComment string
}

// FunctionData backs function/method/arrow/constructor/accessor nodes.
type FunctionData struct {
	Name       string
	Params     []ParamData
	Body       []NodeId // statement list
	IsArrow    bool
	IsAsync    bool
	IsGenerator bool
	// ArrowExprBody holds the single expression when an arrow has a
	// concise (non-block) body; Body is empty in that case.
	ArrowExprBody NodeId
}

type ParamData struct {
	Binding      NodeId // identifier or binding pattern
	Default      NodeId // InvalidNodeId if none
	IsRest       bool
	IsParamProperty bool // constructor parameter property (public/private/readonly x)
}

// EnumData backs KindEnumDeclaration / KindConstEnumDeclaration.
type EnumData struct {
	Name       string
	Members    []EnumMember
	IsConst    bool
	IsExported bool
}

type EnumValueKind uint8

const (
	EnumValueAuto EnumValueKind = iota
	EnumValueNumeric
	EnumValueString
	EnumValueComputed
)

type EnumMember struct {
	Name          string
	ValueKind     EnumValueKind
	NumericValue  float64
	StringValue   string
	ComputedExpr  NodeId
}

// NamespaceData backs KindModuleDeclaration.
type NamespaceData struct {
	// NameParts is ["A","B","C"] for `namespace A.B.C { ... }`.
	NameParts  []string
	Body       []NodeId
	IsExported bool
}

// VarDeclData backs KindVariableDeclarationList.
type VarDeclData struct {
	Kind  string // "var" | "let" | "const"
	Decls []VarDeclarator
}

type VarDeclarator struct {
	Binding     NodeId // identifier or binding pattern
	Initializer NodeId // InvalidNodeId if none
}

// BindingPatternData backs KindObjectBindingPattern / KindArrayBindingPattern.
type BindingPatternData struct {
	IsObject bool
	Elements []BindingPatternElement
}

type BindingPatternElement struct {
	// For object patterns: PropertyKey is the source property being
	// destructured (may differ from Binding's name); for array patterns
	// PropertyKey is unused.
	PropertyKey   NodeId
	PropertyIsComputed bool
	Binding       NodeId // nested pattern or identifier
	Default       NodeId
	IsRest        bool
	IsElision     bool // `[, , x]` hole
}

// PropertyData backs object literal properties and class-field-like shapes
// that need a (possibly computed) key plus a value.
type PropertyData struct {
	Key        NodeId
	KeyIsString bool
	KeyIsComputed bool
	Value      NodeId
	IsSpread   bool
	IsShorthand bool
}

// ImportData backs KindImportDeclaration.
type ImportData struct {
	ModuleSpecifier string
	DefaultName     string // "" if none
	NamespaceName   string // "" if none (`import * as ns`)
	Named           []ImportSpecifier
	IsTypeOnly      bool
}

type ImportSpecifier struct {
	ImportedName string
	LocalName    string
	IsTypeOnly   bool
}

// ExportData backs KindExportDeclaration / KindExportAssignment.
type ExportData struct {
	IsExportEquals bool   // `export = expr`
	Expr           NodeId // the `export =` expression, or re-export source
	Names          []ExportSpecifier
	ModuleSpecifier string // "" unless this is a re-export
	IsTypeOnly     bool
	Decl           NodeId // the decorated declaration, for `export function f(){}` etc.
}

type ExportSpecifier struct {
	LocalName    string
	ExportedName string
	IsTypeOnly   bool
}

// GenericData is a catch-all payload for nodes whose only relevant fact is
// their child list, used by generic statement/expression kinds (If, For,
// Binary, Call, ...) that the lowering pass walks through without needing a
// specialized shape.
type GenericData struct {
	Children []NodeId
	Text     string // operator text, identifier text, literal text, etc.
}
