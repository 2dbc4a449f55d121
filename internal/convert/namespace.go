package convert

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// buildES5Namespace implements spec.md §4.2's Namespace (ES5) transformer:
// `namespace A.B.C {...}` becomes one nested IIFE per dotted name part. This
// builder only needs to fill in the leaf level's data (NameParts/Body); the
// printer is responsible for nesting IIFE N+1 inside IIFE N's body for every
// additional dotted part, since that nesting is mechanical given NameParts.
func (c *Converter) buildES5Namespace(id ast.NodeId, v transform.ES5Namespace) ir.Node {
	ns, ok := c.Arena.Node(v.NamespaceNode).Data.(*ast.NamespaceData)
	if !ok {
		return &ir.ASTRef{Id: id}
	}

	return &ir.NamespaceIIFE{
		NameParts:        ns.NameParts,
		Body:             c.convertStatementList(ns.Body),
		IsExported:       ns.IsExported,
		AttachToExports:  ns.IsExported && c.Options.Module.UsesCommonJSBodyShape(),
		ShouldDeclareVar: v.ShouldDeclareVar,
		ParamName:        ns.NameParts[len(ns.NameParts)-1],
	}
}
