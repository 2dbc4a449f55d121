package lower

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// lowerTemplateLiteral implements spec.md §4.2's Template literal
// transformer: a plain template becomes string concatenation, and a tagged
// template becomes a `__makeTemplateObject` call, when the target has no
// native template literals.
func (p *Pass) lowerTemplateLiteral(e *env, id ast.NodeId) {
	node := p.Arena.Node(id)

	if compat.Unsupported(p.Options.Target, compat.TemplateLiteral) {
		p.Ctx.Set(id, transform.ES5TemplateLiteral{TemplateNode: id})
		if node.Kind == ast.KindTaggedTemplateExpression {
			p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.MakeTemplateObject = true })
		}
	}

	for _, child := range childrenOf(node) {
		p.lowerStatement(e, child)
	}
}
