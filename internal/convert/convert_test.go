package convert

import (
	"testing"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
	"github.com/tsdownlevel/tsdownlevel/internal/config"
	"github.com/tsdownlevel/tsdownlevel/internal/fixture"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/logger"
	"github.com/tsdownlevel/tsdownlevel/internal/lower"
)

// buildUntouchedProgram constructs a fixture with no construct any lowering
// transformer rewrites (a bare identifier statement), so ConvertFile's
// Identity/ASTRef fallback path is the only one exercised.
func buildUntouchedProgram(t *testing.T) (*ast.Arena, ast.NodeId) {
	t.Helper()
	b := fixture.NewBuilder(`x;`)
	root := b.SourceFile()
	id := b.Generic(ast.KindIdentifier, nil, "x")
	b.SetChildren(root, []ast.NodeId{id})
	arena, rootId, err := fixture.Load(b.Bytes())
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}
	return arena, rootId
}

func TestConvertFileReturnsSequenceWhenNoModuleWrapper(t *testing.T) {
	arena, root := buildUntouchedProgram(t)
	ctx := lower.Lower(arena, root, config.Options{Target: compat.ESNext, Module: compat.ESM}, nil, logger.NewDiscardLog())

	file := New(arena, ctx, config.Options{Target: compat.ESNext, Module: compat.ESM}).ConvertFile(root)

	seq, ok := file.(*ir.Sequence)
	if !ok {
		t.Fatalf("ConvertFile() = %T, want *ir.Sequence", file)
	}
	if len(seq.Items) != 1 {
		t.Fatalf("len(seq.Items) = %d, want 1", len(seq.Items))
	}
	if _, ok := seq.Items[0].(*ir.ASTRef); !ok {
		t.Fatalf("seq.Items[0] = %T, want *ir.ASTRef", seq.Items[0])
	}
}

func TestConvertFileWrapsCommonJSModule(t *testing.T) {
	arena, root := buildUntouchedProgram(t)
	cfg := config.Options{Target: compat.ESNext, Module: compat.CommonJS}
	ctx := lower.Lower(arena, root, cfg, nil, logger.NewDiscardLog())

	file := New(arena, ctx, cfg).ConvertFile(root)

	if _, ok := file.(*ir.ModuleWrapperIR); !ok {
		t.Fatalf("ConvertFile() under CommonJS = %T, want *ir.ModuleWrapperIR", file)
	}
}

func TestConvertNodeSplicesUntouchedSubtreeAsSingleASTRef(t *testing.T) {
	arena, root := buildUntouchedProgram(t)
	ctx := lower.Lower(arena, root, config.Options{Target: compat.ESNext, Module: compat.ESM}, nil, logger.NewDiscardLog())
	conv := New(arena, ctx, config.Options{Target: compat.ESNext, Module: compat.ESM})

	node := arena.Node(root)
	ids := childrenOf(node)
	if len(ids) != 1 {
		t.Fatalf("expected one child, got %d", len(ids))
	}

	result := conv.convertNode(ids[0])
	ref, ok := result.(*ir.ASTRef)
	if !ok {
		t.Fatalf("convertNode() = %T, want *ir.ASTRef", result)
	}
	if ref.Id != ids[0] {
		t.Fatalf("ASTRef.Id = %v, want %v", ref.Id, ids[0])
	}
}

func TestConvertNodeReturnsNilForInvalidId(t *testing.T) {
	arena, root := buildUntouchedProgram(t)
	ctx := lower.Lower(arena, root, config.Options{Target: compat.ESNext, Module: compat.ESM}, nil, logger.NewDiscardLog())
	conv := New(arena, ctx, config.Options{Target: compat.ESNext, Module: compat.ESM})

	if got := conv.convertNode(ast.InvalidNodeId); got != nil {
		t.Fatalf("convertNode(InvalidNodeId) = %v, want nil", got)
	}
}

func TestBuildOneDispatchesES5Class(t *testing.T) {
	b := fixture.NewBuilder(`class Foo extends Bar {}`)
	root := b.SourceFile()
	base := b.Generic(ast.KindIdentifier, nil, "Bar")
	class := b.Class(false, "Foo", base, nil)
	b.SetChildren(root, []ast.NodeId{class})
	arena, rootId, err := fixture.Load(b.Bytes())
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	cfg := config.Options{Target: compat.ES5, Module: compat.ESM}
	ctx := lower.Lower(arena, rootId, cfg, nil, logger.NewDiscardLog())
	conv := New(arena, ctx, cfg)

	result := conv.convertNode(class)
	if _, ok := result.(*ir.ES5ClassIIFE); !ok {
		t.Fatalf("convertNode(derived class) = %T, want *ir.ES5ClassIIFE", result)
	}
}
