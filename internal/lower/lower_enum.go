package lower

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// lowerEnumDecl implements spec.md §4.2's Enum (ES5) transformer. A `const
// enum` without preserveConstEnums was already erased by isErasedAtTarget;
// every other enum becomes an IIFE with forward and reverse mappings,
// regardless of output target, since enums are a TS-only construct with no
// native JS form at any target (compat.Enums' minTargetFor is ESNext+1).
func (p *Pass) lowerEnumDecl(e *env, id ast.NodeId) {
	node := p.Arena.Node(id)
	enumData, ok := node.Data.(*ast.EnumData)
	if !ok {
		return
	}

	if enumData.Name != "" {
		p.Ctx.DeclareName(e.declScope, enumData.Name)
	}

	p.Ctx.Set(id, transform.ES5Enum{EnumNode: id})

	for _, member := range enumData.Members {
		if member.ValueKind == ast.EnumValueComputed && member.ComputedExpr.IsValid() {
			p.lowerStatement(e, member.ComputedExpr)
		}
	}
}
