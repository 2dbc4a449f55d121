package lower_test

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
	"github.com/tsdownlevel/tsdownlevel/internal/config"
	"github.com/tsdownlevel/tsdownlevel/internal/fixture"
	"github.com/tsdownlevel/tsdownlevel/internal/logger"
	"github.com/tsdownlevel/tsdownlevel/internal/lower"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// These pin what the lowering pass itself decides — which directive (if
// any) lands on a given node, and which runtime-helper flags end up set —
// independent of how internal/convert or internal/printer later render
// that decision. The whole-program byte-exact output is covered by
// internal/printer's snapshot suite instead.

func TestDerivedClassGetsES5ClassDirective(t *testing.T) {
	b := fixture.NewBuilder(`class Greeter extends Base {}`)
	root := b.SourceFile()
	base := b.Generic(ast.KindIdentifier, nil, "Base")
	class := b.Class(false, "Greeter", base, nil)
	b.SetChildren(root, []ast.NodeId{class})

	arena, rootId, err := fixture.Load(b.Bytes())
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	ctx := lower.Lower(arena, rootId, config.Options{Target: compat.ES5, Module: compat.ESM}, nil, logger.NewDiscardLog())

	directive, ok := ctx.Get(class)
	if !ok {
		t.Fatal("expected a directive on the derived class declaration")
	}
	es5Class, ok := directive.(transform.ES5Class)
	if !ok {
		t.Fatalf("expected transform.ES5Class, got %T", directive)
	}
	snaps.MatchSnapshot(t, "derived_class_directive", fmt.Sprintf("%+v", es5Class))
	snaps.MatchSnapshot(t, "derived_class_helpers", fmt.Sprintf("%+v", ctx.Helpers))
}

func TestCallSpreadNeedsSpreadArrayHelper(t *testing.T) {
	b := fixture.NewBuilder(`f(...args)`)
	root := b.SourceFile()
	callee := b.Generic(ast.KindIdentifier, nil, "f")
	spreadArg := b.Generic(ast.KindSpreadElement, []ast.NodeId{
		b.Generic(ast.KindIdentifier, nil, "args"),
	}, "")
	call := b.Generic(ast.KindCallExpression, []ast.NodeId{callee, spreadArg}, "")
	b.SetChildren(root, []ast.NodeId{call})

	arena, rootId, err := fixture.Load(b.Bytes())
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	ctx := lower.Lower(arena, rootId, config.Options{Target: compat.ES5, Module: compat.ESM}, nil, logger.NewDiscardLog())

	directive, ok := ctx.Get(call)
	if !ok {
		t.Fatal("expected a directive on the spread call expression")
	}
	if _, ok := directive.(transform.ES5CallSpread); !ok {
		t.Fatalf("expected transform.ES5CallSpread, got %T", directive)
	}
	snaps.MatchSnapshot(t, "call_spread_helpers", fmt.Sprintf("%+v", ctx.Helpers))
}

func TestConstEnumWithoutPreserveErases(t *testing.T) {
	b := fixture.NewBuilder(`const enum Color { Red, Green }`)
	root := b.SourceFile()
	e := b.Enum(true, "Color", []fixture.EnumMemberSpec{
		{Name: "Red", ValueKind: ast.EnumValueAuto, NumericValue: 0},
		{Name: "Green", ValueKind: ast.EnumValueAuto, NumericValue: 1},
	})
	b.SetChildren(root, []ast.NodeId{e})

	arena, rootId, err := fixture.Load(b.Bytes())
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	ctx := lower.Lower(arena, rootId, config.Options{Target: compat.ES5, Module: compat.ESM}, nil, logger.NewDiscardLog())

	if _, ok := ctx.Get(e); ok {
		t.Fatal("expected a const enum without PreserveConstEnums to record no directive (erased entirely)")
	}
}
