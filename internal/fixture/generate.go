package fixture

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
)

// Builder assembles a fixture document one node at a time and renders it to
// the same JSON shape Load reads back, via sjson rather than building a Go
// value and handing it to encoding/json — matching the incremental,
// path-addressed way callers actually want to grow a fixture (append one
// node, wire its id into the next).
type Builder struct {
	data []byte
	n    int
}

// NewBuilder starts a fixture over the given source text (kept only for
// ASTRef splicing/debugging; the builder's own nodes don't need to agree
// with byte offsets in it).
func NewBuilder(source string) *Builder {
	data := []byte(`{"nodes":[]}`)
	data, _ = sjson.SetBytes(data, "source", source)
	return &Builder{data: data}
}

// Bytes returns the fixture document built so far.
func (b *Builder) Bytes() []byte {
	return b.data
}

// Node appends a node of the given kind with arbitrary fixture fields (the
// same field names fixture.go's decode* functions read) and returns its id.
// The typed helpers below (SourceFile, Class, Function, ...) are sugar over
// this for the declaration kinds a fixture most commonly needs; anything
// else (imports, exports, binding patterns) can still be built directly
// through Node.
func (b *Builder) Node(kind ast.Kind, fields map[string]interface{}) ast.NodeId {
	idx := b.n
	b.n++
	prefix := fmt.Sprintf("nodes.%d.", idx)

	b.data, _ = sjson.SetBytes(b.data, prefix+"kind", nameByKind[kind])
	for key, value := range fields {
		b.data, _ = sjson.SetBytes(b.data, prefix+key, value)
	}
	return ast.MakeNodeId(uint32(idx))
}

// Generic appends a catch-all node (an expression/statement kind this
// package doesn't model structurally) with a child list and/or literal
// text, mirroring ast.GenericData.
func (b *Builder) Generic(kind ast.Kind, children []ast.NodeId, text string) ast.NodeId {
	return b.Node(kind, map[string]interface{}{
		"children": ids(children),
		"text":     text,
	})
}

// SourceFile reserves the file root, which Load always expects at node 0.
// Call it first, before building any other node, then attach the top-level
// statement ids once they exist via SetChildren — the root's children are
// necessarily built after the root itself, so its child list can't be known
// at construction time the way every other node's can.
func (b *Builder) SourceFile() ast.NodeId {
	return b.Node(ast.KindSourceFile, map[string]interface{}{"children": []int{}})
}

// SetChildren patches an already-appended node's child list, used to attach
// SourceFile's top-level statements once they've been built.
func (b *Builder) SetChildren(id ast.NodeId, children []ast.NodeId) {
	path := fmt.Sprintf("nodes.%d.children", id.Index())
	b.data, _ = sjson.SetBytes(b.data, path, ids(children))
}

// SetSpan patches an already-appended node's source span, needed whenever a
// test exercises internal/convert's genericSplice path (raw source bytes
// spliced around a rewritten descendant) rather than a fully-synthesized
// node — genericSplice slices NewBuilder's source string by byte
// offset, so any node it touches needs a real pos/end, unlike the rest of a
// fixture's nodes, whose Span is never consulted.
func (b *Builder) SetSpan(id ast.NodeId, pos, end int) {
	prefix := fmt.Sprintf("nodes.%d.", id.Index())
	b.data, _ = sjson.SetBytes(b.data, prefix+"pos", pos)
	b.data, _ = sjson.SetBytes(b.data, prefix+"end", end)
}

// ClassMemberSpec is one entry of Class's Members, a struct-literal mirror
// of ast.ClassMember.
type ClassMemberSpec struct {
	Name           ast.NodeId
	NameIsComputed bool
	IsStatic       bool
	IsPrivate      bool
	Kind           ast.ClassMemberKind
	Fn             ast.NodeId
	Initializer    ast.NodeId
}

// Class appends a class declaration/expression node. extends may be
// ast.InvalidNodeId for a non-derived class.
func (b *Builder) Class(isExpression bool, name string, extends ast.NodeId, members []ClassMemberSpec) ast.NodeId {
	kind := ast.KindClassDeclaration
	if isExpression {
		kind = ast.KindClassExpression
	}
	var memberFields []map[string]interface{}
	for _, m := range members {
		memberFields = append(memberFields, map[string]interface{}{
			"name":           idOrMinusOne(m.Name),
			"nameIsComputed": m.NameIsComputed,
			"static":         m.IsStatic,
			"private":        m.IsPrivate,
			"kind":           memberNameByKind[m.Kind],
			"fn":             idOrMinusOne(m.Fn),
			"initializer":    idOrMinusOne(m.Initializer),
		})
	}
	return b.Node(kind, map[string]interface{}{
		"name":    name,
		"extends": idOrMinusOne(extends),
		"members": memberFields,
	})
}

// ParamSpec mirrors ast.ParamData for Function's Params.
type ParamSpec struct {
	Binding ast.NodeId
	Default ast.NodeId
	IsRest  bool
}

// Function appends a function-shaped node (plain function, method, arrow,
// accessor, or constructor — pick the Kind).
func (b *Builder) Function(kind ast.Kind, name string, params []ParamSpec, body []ast.NodeId, async, generator bool) ast.NodeId {
	var paramFields []map[string]interface{}
	for _, p := range params {
		paramFields = append(paramFields, map[string]interface{}{
			"binding": idOrMinusOne(p.Binding),
			"default": idOrMinusOne(p.Default),
			"rest":    p.IsRest,
		})
	}
	return b.Node(kind, map[string]interface{}{
		"name":      name,
		"params":    paramFields,
		"body":      ids(body),
		"async":     async,
		"generator": generator,
	})
}

// EnumMemberSpec mirrors ast.EnumMember for Enum's Members.
type EnumMemberSpec struct {
	Name         string
	ValueKind    ast.EnumValueKind
	NumericValue float64
	StringValue  string
}

// Enum appends an enum declaration node.
func (b *Builder) Enum(isConst bool, name string, members []EnumMemberSpec) ast.NodeId {
	kind := ast.KindEnumDeclaration
	if isConst {
		kind = ast.KindConstEnumDeclaration
	}
	var memberFields []map[string]interface{}
	for _, m := range members {
		memberFields = append(memberFields, map[string]interface{}{
			"name":         m.Name,
			"valueKind":    enumValueNameByKind[m.ValueKind],
			"numericValue": m.NumericValue,
			"stringValue":  m.StringValue,
		})
	}
	return b.Node(kind, map[string]interface{}{
		"const":   isConst,
		"name":    name,
		"members": memberFields,
	})
}

// Namespace appends a `namespace A.B.C { ... }` node.
func (b *Builder) Namespace(nameParts []string, body []ast.NodeId, exported bool) ast.NodeId {
	return b.Node(ast.KindModuleDeclaration, map[string]interface{}{
		"nameParts": nameParts,
		"body":      ids(body),
		"exported":  exported,
	})
}

// VarDeclSpec mirrors ast.VarDeclarator for VarDeclList's Decls.
type VarDeclSpec struct {
	Binding     ast.NodeId
	Initializer ast.NodeId
}

// VarDeclList appends a `var`/`let`/`const` declaration-list node.
func (b *Builder) VarDeclList(varKind string, decls []VarDeclSpec) ast.NodeId {
	var declFields []map[string]interface{}
	for _, d := range decls {
		declFields = append(declFields, map[string]interface{}{
			"binding":     idOrMinusOne(d.Binding),
			"initializer": idOrMinusOne(d.Initializer),
		})
	}
	return b.Node(ast.KindVariableDeclarationList, map[string]interface{}{
		"varKind": varKind,
		"decls":   declFields,
	})
}

func ids(list []ast.NodeId) []int {
	out := make([]int, len(list))
	for i, id := range list {
		out[i] = int(id.Index())
	}
	return out
}

func idOrMinusOne(id ast.NodeId) int {
	if !id.IsValid() {
		return -1
	}
	return int(id.Index())
}
