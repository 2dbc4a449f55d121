package lower

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// lowerForOf implements spec.md §4.2's For-of transformer: rewrite to the
// `__values` iterator-protocol loop when the target has no native
// `for...of`. The loop's own children (the iterated expression, the binding,
// and the body) are still walked for nested lowering regardless.
func (p *Pass) lowerForOf(e *env, id ast.NodeId) {
	node := p.Arena.Node(id)

	if compat.Unsupported(p.Options.Target, compat.ForOf) {
		p.Ctx.Set(id, transform.ES5ForOf{ForOfNode: id})
		p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.Values = true })
	}

	for _, child := range childrenOf(node) {
		p.lowerStatement(e, child)
	}
}
