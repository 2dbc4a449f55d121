package lower

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// lowerNamespaceDecl implements spec.md §4.2's Namespace (ES5) transformer:
// `namespace A.B.C {...}` becomes nested IIFEs, and the outermost `var A`
// declaration is suppressed when a same-named class/function/earlier
// namespace already declared it in this scope (a merged declaration).
func (p *Pass) lowerNamespaceDecl(e *env, id ast.NodeId) {
	node := p.Arena.Node(id)
	ns, ok := node.Data.(*ast.NamespaceData)
	if !ok || len(ns.NameParts) == 0 {
		return
	}

	outerName := ns.NameParts[0]
	shouldDeclareVar := p.Ctx.DeclareName(e.declScope, outerName)

	p.Ctx.Set(id, transform.ES5Namespace{
		NamespaceNode:    id,
		ShouldDeclareVar: shouldDeclareVar,
	})

	childEnv := *e
	childEnv.declScope = id
	childEnv.enclosingFunctionBody = id
	p.scopeFor(id)
	for _, stmt := range ns.Body {
		p.lowerStatement(&childEnv, stmt)
	}
}
