package convert

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/renamer"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// buildES5ForOf implements spec.md §4.2's For-of transformer: rewrite to
// the `__values` iterator-protocol loop. The generic catch-all payload for
// KindForOfStatement holds [binding, iterable, body] in source order, with
// Text carrying the binding's declaration kind ("var"|"let"|"const"|"" for a
// plain assignment target).
func (c *Converter) buildES5ForOf(id ast.NodeId, v transform.ES5ForOf) ir.Node {
	node := c.Arena.Node(id)
	g, ok := node.Data.(*ast.GenericData)
	if !ok || len(g.Children) < 3 {
		return &ir.ASTRef{Id: id}
	}
	bindingID, iterableID, bodyID := g.Children[0], g.Children[1], g.Children[2]

	bindingName := ""
	if bg, ok := c.Arena.Node(bindingID).Data.(*ast.GenericData); ok {
		bindingName = bg.Text
	}

	scope := renamer.NewScope()
	return &ir.ForOfIteratorLoop{
		IteratorVar: scope.NextTemp(),
		ResultVar:   scope.NextTemp(),
		Iterable:    c.convertNode(iterableID),
		BindingKind: g.Text,
		BindingName: bindingName,
		Body:        c.convertNode(bodyID),
	}
}
