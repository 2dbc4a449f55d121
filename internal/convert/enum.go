package convert

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// buildES5Enum implements spec.md §4.2's Enum (ES5) transformer: every
// member converts straight across, using the value kind and numeric/string
// value already stored on the arena's EnumMember. Neither lowering nor this
// builder evaluates member initializers or assigns auto-increment values; an
// auto member prints whatever NumericValue the arena supplies.
func (c *Converter) buildES5Enum(id ast.NodeId, v transform.ES5Enum) ir.Node {
	enumData, ok := c.Arena.Node(v.EnumNode).Data.(*ast.EnumData)
	if !ok {
		return &ir.ASTRef{Id: id}
	}

	members := make([]ir.EnumIIFEMember, 0, len(enumData.Members))
	for _, m := range enumData.Members {
		member := ir.EnumIIFEMember{
			Name:         m.Name,
			ValueKind:    ir.EnumValueKind(m.ValueKind),
			NumericValue: m.NumericValue,
			StringValue:  m.StringValue,
		}
		if m.ValueKind == ast.EnumValueComputed && m.ComputedExpr.IsValid() {
			member.ComputedExpr = c.convertNode(m.ComputedExpr)
		}
		members = append(members, member)
	}

	return &ir.EnumIIFE{
		Name:            enumData.Name,
		IsExported:      enumData.IsExported,
		AttachToExports: enumData.IsExported && c.Options.Module.UsesCommonJSBodyShape(),
		Members:         members,
	}
}
