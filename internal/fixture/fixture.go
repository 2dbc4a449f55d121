// Package fixture loads a JSON-serialized ast.Arena: the on-disk shape
// fed to pkg/downlevel by the CLI demo mode (cmd/tsdownlevel) and by the
// printer/lowering golden tests, standing in for a real TypeScript parser
// (out of scope per spec.md §1). The core itself only ever consumes an
// already-built *ast.Arena; this package is the one concrete place that
// boundary is crossed with actual file I/O.
//
// The wire format is a flat node array, array index doubling as the
// ast.NodeId the rest of the core already uses:
//
//	{
//	  "source": "class Foo {}",
//	  "nodes": [
//	    {"kind": "SourceFile", "children": [1]},
//	    {"kind": "ClassDeclaration", "name": "Foo", "extends": -1}
//	  ]
//	}
//
// Node 0 is always the file root. A -1 (or omitted) node-id field means
// ast.InvalidNodeId, matching the arena's own "zero/absent" convention.
package fixture

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
)

// Load parses a fixture document and returns the arena it describes plus
// the file root's node id (always node 0, but returned explicitly so
// callers never have to know that).
func Load(data []byte) (*ast.Arena, ast.NodeId, error) {
	doc := gjson.ParseBytes(data)
	if !doc.Exists() {
		return nil, ast.InvalidNodeId, fmt.Errorf("fixture: invalid JSON document")
	}

	nodesField := doc.Get("nodes")
	if !nodesField.IsArray() {
		return nil, ast.InvalidNodeId, fmt.Errorf("fixture: missing top-level \"nodes\" array")
	}

	arena := &ast.Arena{Source: doc.Get("source").String()}

	var loadErr error
	nodesField.ForEach(func(_, node gjson.Result) bool {
		n, err := decodeNode(node)
		if err != nil {
			loadErr = err
			return false
		}
		arena.Nodes = append(arena.Nodes, n)
		return true
	})
	if loadErr != nil {
		return nil, ast.InvalidNodeId, loadErr
	}
	if len(arena.Nodes) == 0 {
		return nil, ast.InvalidNodeId, fmt.Errorf("fixture: \"nodes\" array is empty, need at least a SourceFile root")
	}

	return arena, ast.MakeNodeId(0), nil
}

func decodeNode(node gjson.Result) (ast.Node, error) {
	kindName := node.Get("kind").String()
	kind, ok := kindByName[kindName]
	if !ok {
		return ast.Node{}, fmt.Errorf("fixture: unknown node kind %q", kindName)
	}

	n := ast.Node{
		Kind: kind,
		Span: ast.Span{Pos: int32(node.Get("pos").Int()), End: int32(node.Get("end").Int())},
	}

	switch kind {
	case ast.KindClassDeclaration, ast.KindClassExpression:
		n.Data = decodeClassData(node)
	case ast.KindFunctionDeclaration, ast.KindFunctionExpression, ast.KindArrowFunction,
		ast.KindMethodDeclaration, ast.KindGetAccessor, ast.KindSetAccessor, ast.KindConstructor:
		n.Data = decodeFunctionData(node)
	case ast.KindEnumDeclaration, ast.KindConstEnumDeclaration:
		n.Data = decodeEnumData(node)
	case ast.KindModuleDeclaration:
		n.Data = decodeNamespaceData(node)
	case ast.KindVariableDeclarationList:
		n.Data = decodeVarDeclData(node)
	case ast.KindObjectBindingPattern, ast.KindArrayBindingPattern:
		n.Data = decodeBindingPatternData(node)
	case ast.KindImportDeclaration, ast.KindImportEqualsDeclaration:
		n.Data = decodeImportData(node)
	case ast.KindExportDeclaration, ast.KindExportAssignment:
		n.Data = decodeExportData(node)
	default:
		n.Data = decodeGenericData(node)
	}
	return n, nil
}

func nodeId(v gjson.Result) ast.NodeId {
	if !v.Exists() {
		return ast.InvalidNodeId
	}
	idx := v.Int()
	if idx < 0 {
		return ast.InvalidNodeId
	}
	return ast.MakeNodeId(uint32(idx))
}

func nodeIdList(v gjson.Result) []ast.NodeId {
	if !v.IsArray() {
		return nil
	}
	ids := make([]ast.NodeId, 0, len(v.Array()))
	for _, e := range v.Array() {
		ids = append(ids, nodeId(e))
	}
	return ids
}

func decodeGenericData(node gjson.Result) *ast.GenericData {
	return &ast.GenericData{
		Children: nodeIdList(node.Get("children")),
		Text:     node.Get("text").String(),
	}
}

func decodeClassData(node gjson.Result) *ast.ClassData {
	data := &ast.ClassData{
		Name:          node.Get("name").String(),
		Extends:       nodeId(node.Get("extends")),
		IsExported:    node.Get("exported").Bool(),
		IsDefault:     node.Get("default").Bool(),
		TypeParamOnly: node.Get("typeParamOnly").Bool(),
	}
	for _, m := range node.Get("members").Array() {
		data.Members = append(data.Members, ast.ClassMember{
			Name:            nodeId(m.Get("name")),
			NameIsString:    m.Get("nameIsString").Bool(),
			NameIsNumber:    m.Get("nameIsNumber").Bool(),
			NameIsComputed:  m.Get("nameIsComputed").Bool(),
			IsStatic:        m.Get("static").Bool(),
			IsPrivate:       m.Get("private").Bool(),
			Kind:            memberKindByName[m.Get("kind").String()],
			Fn:              nodeId(m.Get("fn")),
			Initializer:     nodeId(m.Get("initializer")),
			LeadingComment:  m.Get("leadingComment").String(),
			TrailingComment: m.Get("trailingComment").String(),
		})
	}
	return data
}

func decodeFunctionData(node gjson.Result) *ast.FunctionData {
	data := &ast.FunctionData{
		Name:          node.Get("name").String(),
		Body:          nodeIdList(node.Get("body")),
		IsArrow:       node.Get("arrow").Bool(),
		IsAsync:       node.Get("async").Bool(),
		IsGenerator:   node.Get("generator").Bool(),
		ArrowExprBody: nodeId(node.Get("arrowExprBody")),
	}
	for _, p := range node.Get("params").Array() {
		data.Params = append(data.Params, ast.ParamData{
			Binding:         nodeId(p.Get("binding")),
			Default:         nodeId(p.Get("default")),
			IsRest:          p.Get("rest").Bool(),
			IsParamProperty: p.Get("paramProperty").Bool(),
		})
	}
	return data
}

func decodeEnumData(node gjson.Result) *ast.EnumData {
	data := &ast.EnumData{
		Name:       node.Get("name").String(),
		IsConst:    node.Get("const").Bool(),
		IsExported: node.Get("exported").Bool(),
	}
	for _, m := range node.Get("members").Array() {
		data.Members = append(data.Members, ast.EnumMember{
			Name:         m.Get("name").String(),
			ValueKind:    enumValueKindByName[m.Get("valueKind").String()],
			NumericValue: m.Get("numericValue").Float(),
			StringValue:  m.Get("stringValue").String(),
			ComputedExpr: nodeId(m.Get("computedExpr")),
		})
	}
	return data
}

func decodeNamespaceData(node gjson.Result) *ast.NamespaceData {
	var parts []string
	for _, p := range node.Get("nameParts").Array() {
		parts = append(parts, p.String())
	}
	return &ast.NamespaceData{
		NameParts:  parts,
		Body:       nodeIdList(node.Get("body")),
		IsExported: node.Get("exported").Bool(),
	}
}

func decodeVarDeclData(node gjson.Result) *ast.VarDeclData {
	data := &ast.VarDeclData{Kind: node.Get("varKind").String()}
	for _, d := range node.Get("decls").Array() {
		data.Decls = append(data.Decls, ast.VarDeclarator{
			Binding:     nodeId(d.Get("binding")),
			Initializer: nodeId(d.Get("initializer")),
		})
	}
	return data
}

func decodeBindingPatternData(node gjson.Result) *ast.BindingPatternData {
	data := &ast.BindingPatternData{IsObject: node.Get("object").Bool()}
	for _, e := range node.Get("elements").Array() {
		data.Elements = append(data.Elements, ast.BindingPatternElement{
			PropertyKey:        nodeId(e.Get("propertyKey")),
			PropertyIsComputed: e.Get("propertyComputed").Bool(),
			Binding:            nodeId(e.Get("binding")),
			Default:            nodeId(e.Get("default")),
			IsRest:             e.Get("rest").Bool(),
			IsElision:          e.Get("elision").Bool(),
		})
	}
	return data
}

func decodeImportData(node gjson.Result) *ast.ImportData {
	data := &ast.ImportData{
		ModuleSpecifier: node.Get("moduleSpecifier").String(),
		DefaultName:     node.Get("defaultName").String(),
		NamespaceName:   node.Get("namespaceName").String(),
		IsTypeOnly:      node.Get("typeOnly").Bool(),
	}
	for _, s := range node.Get("named").Array() {
		data.Named = append(data.Named, ast.ImportSpecifier{
			ImportedName: s.Get("importedName").String(),
			LocalName:    s.Get("localName").String(),
			IsTypeOnly:   s.Get("typeOnly").Bool(),
		})
	}
	return data
}

func decodeExportData(node gjson.Result) *ast.ExportData {
	data := &ast.ExportData{
		IsExportEquals: node.Get("exportEquals").Bool(),
		Expr:           nodeId(node.Get("expr")),
		ModuleSpecifier: node.Get("moduleSpecifier").String(),
		IsTypeOnly:     node.Get("typeOnly").Bool(),
		Decl:           nodeId(node.Get("decl")),
	}
	for _, s := range node.Get("names").Array() {
		data.Names = append(data.Names, ast.ExportSpecifier{
			LocalName:    s.Get("localName").String(),
			ExportedName: s.Get("exportedName").String(),
			IsTypeOnly:   s.Get("typeOnly").Bool(),
		})
	}
	return data
}
