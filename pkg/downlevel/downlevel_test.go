package downlevel

import (
	"strings"
	"testing"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
	"github.com/tsdownlevel/tsdownlevel/internal/config"
)

// buildArena assembles a tiny two-node program: a source file containing one
// empty, non-derived class declaration. Good enough to exercise the full
// Lower -> Convert -> Print pipeline without a real parser.
func buildArena(name string) *ast.Arena {
	a := &ast.Arena{Source: "class " + name + " {}"}
	classId := ast.MakeNodeId(1)
	a.Nodes = []ast.Node{
		{Kind: ast.KindSourceFile, Data: &ast.GenericData{Children: []ast.NodeId{classId}}},
		{Kind: ast.KindClassDeclaration, Data: &ast.ClassData{Name: name, Extends: ast.InvalidNodeId}},
	}
	return a
}

func TestTransformEmptyClassES5(t *testing.T) {
	a := buildArena("Foo")
	out, err := Transform(Options{
		Arena: a,
		Root:  ast.MakeNodeId(0),
		Config: config.Options{
			Target: compat.ES5,
			Module: compat.ESM,
		},
	})
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	js := string(out.JS)
	if !strings.Contains(js, "function Foo()") {
		t.Errorf("expected an ES5 constructor function for Foo, got:\n%s", js)
	}
	if !strings.Contains(js, "return Foo;") {
		t.Errorf("expected the class IIFE to return Foo, got:\n%s", js)
	}
}

func TestTransformNoSourceMapByDefault(t *testing.T) {
	a := buildArena("Bar")
	out, err := Transform(Options{
		Arena:  a,
		Root:   ast.MakeNodeId(0),
		Config: config.Options{Target: compat.ES5, Module: compat.ESM},
	})
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	if out.SourceMap != nil {
		t.Errorf("expected no source map when Config.SourceMap is SourceMapNone")
	}
}

func TestTransformSourceMapProducesDocument(t *testing.T) {
	a := buildArena("Baz")
	out, err := Transform(Options{
		Arena:      a,
		Root:       ast.MakeNodeId(0),
		SourceName: "baz.ts",
		Config: config.Options{
			Target:    compat.ES5,
			Module:    compat.ESM,
			SourceMap: config.SourceMapExternalWithoutComment,
		},
	})
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	if out.SourceMap == nil {
		t.Fatal("expected a source map document")
	}
	if out.SourceMap.Version != 3 {
		t.Errorf("expected source-map version 3, got %d", out.SourceMap.Version)
	}
	if len(out.SourceMap.Sources) != 1 || out.SourceMap.Sources[0] != "baz.ts" {
		t.Errorf("expected Sources = [\"baz.ts\"], got %v", out.SourceMap.Sources)
	}
	if out.SourceMap.File == "" {
		t.Error("expected NewDocument to synthesize a non-empty file name")
	}
}

func TestInternalErrorRecoversFromInvalidNodeId(t *testing.T) {
	a := buildArena("Qux")
	// A root past the end of the arena cannot come from well-formed input
	// (spec.md §7.3); Transform must recover the resulting panic instead of
	// propagating it.
	_, err := Transform(Options{
		Arena:  a,
		Root:   ast.MakeNodeId(99),
		Config: config.Options{Target: compat.ES5, Module: compat.ESM},
	})
	if err == nil {
		t.Fatal("expected an error for an out-of-range root node id")
	}
	if _, ok := err.(*InternalError); !ok {
		t.Errorf("expected *InternalError, got %T: %v", err, err)
	}
}
