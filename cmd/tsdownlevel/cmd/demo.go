package cmd

import (
	"fmt"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/fixture"
)

// demos are small, hand-built fixtures standing in for the real parser this
// core deliberately doesn't have (spec.md §1). Each demonstrates one of
// spec.md §4.2's transformers in isolation.
var demos = map[string]func() *fixture.Builder{
	"class":     classDemo,
	"enum":      enumDemo,
	"namespace": namespaceDemo,
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	return names
}

// classDemo builds `class Greeter extends Base { greet() { return "hi"; } }`.
func classDemo() *fixture.Builder {
	b := fixture.NewBuilder(`class Greeter extends Base { greet() { return "hi"; } }`)
	root := b.SourceFile()

	base := b.Generic(ast.KindIdentifier, nil, "Base")

	returnStmt := b.Generic(ast.KindReturnStatement, []ast.NodeId{
		b.Generic(ast.KindStringLiteral, nil, "hi"),
	}, "")
	method := b.Function(ast.KindMethodDeclaration, "greet", nil, []ast.NodeId{returnStmt}, false, false)

	class := b.Class(false, "Greeter", base, []fixture.ClassMemberSpec{
		{Kind: ast.MemberMethod, Name: b.Generic(ast.KindIdentifier, nil, "greet"), Fn: method},
	})

	b.SetChildren(root, []ast.NodeId{class})
	return b
}

// enumDemo builds `enum Color { Red, Green, Blue }`.
func enumDemo() *fixture.Builder {
	b := fixture.NewBuilder(`enum Color { Red, Green, Blue }`)
	root := b.SourceFile()

	e := b.Enum(false, "Color", []fixture.EnumMemberSpec{
		{Name: "Red", ValueKind: ast.EnumValueAuto, NumericValue: 0},
		{Name: "Green", ValueKind: ast.EnumValueAuto, NumericValue: 1},
		{Name: "Blue", ValueKind: ast.EnumValueAuto, NumericValue: 2},
	})

	b.SetChildren(root, []ast.NodeId{e})
	return b
}

// namespaceDemo builds `namespace Shapes { export class Circle {} }`.
func namespaceDemo() *fixture.Builder {
	b := fixture.NewBuilder(`namespace Shapes { export class Circle {} }`)
	root := b.SourceFile()

	circle := b.Class(false, "Circle", ast.InvalidNodeId, nil)
	ns := b.Namespace([]string{"Shapes"}, []ast.NodeId{circle}, false)

	b.SetChildren(root, []ast.NodeId{ns})
	return b
}

func loadDemo(name string) (*ast.Arena, ast.NodeId, error) {
	build, ok := demos[name]
	if !ok {
		return nil, ast.InvalidNodeId, fmt.Errorf("unknown demo %q (available: %v)", name, demoNames())
	}
	return fixture.Load(build().Bytes())
}
