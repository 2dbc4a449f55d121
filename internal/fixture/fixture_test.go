package fixture

import (
	"testing"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
)

func TestLoadRoundTripsBuilderOutput(t *testing.T) {
	b := NewBuilder("class Foo {}")
	root := b.SourceFile()
	classId := b.Class(false, "Foo", ast.InvalidNodeId, nil)
	b.SetChildren(root, []ast.NodeId{classId})

	arena, root, err := Load(b.Bytes())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if root != ast.MakeNodeId(0) {
		t.Fatalf("expected root node 0, got %v", root)
	}
	if arena.Node(root).Kind != ast.KindSourceFile {
		t.Fatalf("expected root kind SourceFile, got %v", arena.Kind(root))
	}
	classNode := arena.Node(classId)
	if classNode.Kind != ast.KindClassDeclaration {
		t.Fatalf("expected class node kind ClassDeclaration, got %v", classNode.Kind)
	}
	cls, ok := classNode.Data.(*ast.ClassData)
	if !ok {
		t.Fatalf("expected *ast.ClassData, got %T", classNode.Data)
	}
	if cls.Name != "Foo" {
		t.Errorf("expected class name Foo, got %q", cls.Name)
	}
	if cls.Extends.IsValid() {
		t.Errorf("expected no heritage clause")
	}
}

func TestLoadRejectsMissingNodesArray(t *testing.T) {
	_, _, err := Load([]byte(`{"source": "x"}`))
	if err == nil {
		t.Fatal("expected an error for a fixture with no \"nodes\" array")
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	_, _, err := Load([]byte(`{"nodes": [{"kind": "NotARealKind"}]}`))
	if err == nil {
		t.Fatal("expected an error for an unrecognized node kind")
	}
}
