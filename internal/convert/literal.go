package convert

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// buildES5ObjectLiteral implements spec.md §4.2's Object literal transformer:
// an object literal containing a spread is rewritten into a single
// `__assign({}, ...)` call, grouping consecutive plain properties into one
// object-literal argument per run so spreads and literal runs interleave in
// source order, matching tsc's own emission shape.
func (c *Converter) buildES5ObjectLiteral(id ast.NodeId, v transform.ES5ObjectLiteral) ir.Node {
	node := c.Arena.Node(id)
	g, ok := node.Data.(*ast.GenericData)
	if !ok {
		return &ir.ASTRef{Id: id}
	}

	var args []ir.Node
	var run []*ir.PropertyLit
	flush := func() {
		if len(run) > 0 {
			args = append(args, &ir.ObjectLit{Properties: run})
			run = nil
		}
	}

	for _, child := range g.Children {
		prop, ok := c.Arena.Node(child).Data.(*ast.PropertyData)
		if !ok {
			continue
		}
		if prop.IsSpread {
			flush()
			args = append(args, c.convertNode(prop.Value))
			continue
		}
		run = append(run, &ir.PropertyLit{
			Key:           c.convertNode(prop.Key),
			KeyIsComputed: prop.KeyIsComputed,
			Value:         c.convertNode(prop.Value),
			IsShorthand:   prop.IsShorthand,
		})
	}
	flush()

	if len(args) == 0 {
		return &ir.ObjectLit{}
	}
	return &ir.CallExpr{
		Callee: &ir.Identifier{Name: "__assign"},
		Args:   append([]ir.Node{&ir.ObjectLit{}}, args...),
	}
}

// buildES5ArrayLiteral implements spec.md §4.2's Array literal transformer:
// an array literal containing a spread is rewritten into a chain of
// `__spreadArray` calls, one per spread boundary, exactly mirroring tsc's
// emission of `[a, ...b, c]` as
// `__spreadArray(__spreadArray([a], b, true), [c], false)`.
func (c *Converter) buildES5ArrayLiteral(id ast.NodeId, v transform.ES5ArrayLiteral) ir.Node {
	node := c.Arena.Node(id)
	g, ok := node.Data.(*ast.GenericData)
	if !ok {
		return &ir.ASTRef{Id: id}
	}

	var acc ir.Node
	var run []ir.Node

	for _, child := range g.Children {
		if c.Arena.Kind(child) == ast.KindSpreadElement {
			if acc == nil {
				acc = &ir.ArrayLit{Elements: run}
			} else if len(run) > 0 {
				acc = spreadArrayCall(acc, &ir.ArrayLit{Elements: run}, false)
			}
			run = nil
			acc = spreadArrayCall(acc, c.spreadElementValue(child), true)
			continue
		}
		run = append(run, c.convertNode(child))
	}

	if acc == nil {
		return &ir.ArrayLit{Elements: run}
	}
	if len(run) > 0 {
		acc = spreadArrayCall(acc, &ir.ArrayLit{Elements: run}, false)
	}
	return acc
}

// buildES5CallSpread implements spec.md §4.2's Call/new spread transformer:
// a call with a spread argument becomes `callee.apply(thisArg, args)` (with
// `thisArg` recovered from a property-access callee so `this` binding
// survives), and `new` with a spread uses the `Function.prototype.bind`
// trick since `new` has no `apply` equivalent.
func (c *Converter) buildES5CallSpread(id ast.NodeId, v transform.ES5CallSpread) ir.Node {
	node := c.Arena.Node(id)
	g, ok := node.Data.(*ast.GenericData)
	if !ok || len(g.Children) == 0 {
		return &ir.ASTRef{Id: id}
	}
	calleeID := g.Children[0]
	argIDs := g.Children[1:]

	argsArray := c.buildSpreadArgsArray(argIDs)
	calleeIR := c.convertNode(calleeID)

	if node.Kind == ast.KindNewExpression {
		bound := &ir.CallExpr{
			Callee: &ir.DotExpr{Target: &ir.DotExpr{Target: calleeIR, Property: "bind"}, Property: "apply"},
			Args:   []ir.Node{calleeIR, spreadArrayCall(&ir.ArrayLit{Elements: []ir.Node{&ir.UndefinedLit{}}}, argsArray, true)},
		}
		return &ir.NewExpr{Callee: bound}
	}

	thisArg := ir.Node(&ir.UndefinedLit{})
	switch callee := calleeIR.(type) {
	case *ir.DotExpr:
		thisArg = callee.Target
	case *ir.IndexExpr:
		thisArg = callee.Target
	}
	if _, unset := thisArg.(*ir.UndefinedLit); unset {
		switch c.Arena.Kind(calleeID) {
		case ast.KindPropertyAccessExpression, ast.KindElementAccessExpression:
			if cg, ok := c.Arena.Node(calleeID).Data.(*ast.GenericData); ok && len(cg.Children) > 0 {
				thisArg = c.convertNode(cg.Children[0])
			}
		}
	}
	return &ir.CallExpr{
		Callee: &ir.DotExpr{Target: calleeIR, Property: "apply"},
		Args:   []ir.Node{thisArg, argsArray},
	}
}

// buildSpreadArgsArray flattens a call/new argument list containing spreads
// into a single array value via the same __spreadArray chaining as
// buildES5ArrayLiteral.
func (c *Converter) buildSpreadArgsArray(argIDs []ast.NodeId) ir.Node {
	var acc ir.Node
	var run []ir.Node
	for _, arg := range argIDs {
		if c.Arena.Kind(arg) == ast.KindSpreadElement {
			if acc == nil {
				acc = &ir.ArrayLit{Elements: run}
			} else if len(run) > 0 {
				acc = spreadArrayCall(acc, &ir.ArrayLit{Elements: run}, false)
			}
			run = nil
			acc = spreadArrayCall(acc, c.spreadElementValue(arg), true)
			continue
		}
		run = append(run, c.convertNode(arg))
	}
	if acc == nil {
		return &ir.ArrayLit{Elements: run}
	}
	if len(run) > 0 {
		acc = spreadArrayCall(acc, &ir.ArrayLit{Elements: run}, false)
	}
	return acc
}

func (c *Converter) spreadElementValue(id ast.NodeId) ir.Node {
	if g, ok := c.Arena.Node(id).Data.(*ast.GenericData); ok && len(g.Children) > 0 {
		return c.convertNode(g.Children[0])
	}
	return &ir.ASTRef{Id: id}
}

func spreadArrayCall(acc, value ir.Node, pack bool) ir.Node {
	return &ir.CallExpr{
		Callee: &ir.Identifier{Name: "__spreadArray"},
		Args:   []ir.Node{acc, value, &ir.BooleanLit{Value: pack}},
	}
}
