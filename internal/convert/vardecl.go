package convert

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/renamer"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// buildES5VariableDeclarationList implements spec.md §4.2's Variable
// declaration (destructuring) transformer: a declarator with a pattern
// binding gets a fresh temp holding its initializer, then one declarator per
// leaf binding assigning from a property/index access chain off that temp.
// Declarators with a plain identifier binding pass through unchanged.
func (c *Converter) buildES5VariableDeclarationList(id ast.NodeId, v transform.ES5VariableDeclarationList) ir.Node {
	node := c.Arena.Node(id)
	decl, ok := node.Data.(*ast.VarDeclData)
	if !ok {
		return &ir.ASTRef{Id: id}
	}

	kind := decl.Kind
	if c.Options.TargetRequiresES5Lowering() {
		kind = "var"
	}

	scope := renamer.NewScope()
	var out []ir.VarDecl
	for _, d := range decl.Decls {
		if !isBindingPattern(c.Arena, d.Binding) {
			out = append(out, ir.VarDecl{Name: bindingIdentifierName(c.Arena, d.Binding), Init: c.convertNode(d.Initializer)})
			continue
		}
		tempName := scope.NextTemp()
		out = append(out, ir.VarDecl{Name: tempName, Init: c.convertNode(d.Initializer)})
		c.expandBindingPattern(scope, d.Binding, &ir.Identifier{Name: tempName}, &out)
	}

	return &ir.VarStmt{Kind: kind, Decls: out}
}

// expandBindingPattern recursively flattens one (possibly nested) binding
// pattern into a run of simple VarDecls, each initialized from a
// property/index access off `source`. A nested pattern element gets its own
// temp and recurses; object rest uses `__rest` against the keys already
// destructured by name, array rest uses `.slice(i)` (spec.md §4.2, Variable
// declaration).
func (c *Converter) expandBindingPattern(scope *renamer.Scope, patternID ast.NodeId, source ir.Node, out *[]ir.VarDecl) {
	pattern, ok := c.Arena.Node(patternID).Data.(*ast.BindingPatternData)
	if !ok {
		return
	}

	var excludedKeys []string
	for i, elem := range pattern.Elements {
		if elem.IsElision {
			continue
		}

		if elem.IsRest {
			name := bindingIdentifierName(c.Arena, elem.Binding)
			if pattern.IsObject {
				*out = append(*out, ir.VarDecl{Name: name, Init: &ir.CallExpr{
					Callee: &ir.Identifier{Name: "__rest"},
					Args:   []ir.Node{source, stringArrayLit(excludedKeys)},
				}})
			} else {
				*out = append(*out, ir.VarDecl{Name: name, Init: &ir.CallExpr{
					Callee: &ir.DotExpr{Target: source, Property: "slice"},
					Args:   []ir.Node{&ir.NumberLit{Value: float64(i)}},
				}})
			}
			continue
		}

		var access ir.Node
		if pattern.IsObject {
			if elem.PropertyIsComputed {
				access = &ir.IndexExpr{Target: source, Index: c.convertNode(elem.PropertyKey)}
			} else {
				key := bindingIdentifierName(c.Arena, elem.PropertyKey)
				excludedKeys = append(excludedKeys, key)
				access = &ir.DotExpr{Target: source, Property: key}
			}
		} else {
			access = &ir.IndexExpr{Target: source, Index: &ir.NumberLit{Value: float64(i)}}
		}

		if elem.Default.IsValid() {
			access = &ir.ConditionalExpr{
				Test: &ir.BinaryExpr{Op: "===", Left: access, Right: &ir.UndefinedLit{}},
				Yes:  c.convertNode(elem.Default),
				No:   access,
			}
		}

		if isBindingPattern(c.Arena, elem.Binding) {
			tempName := scope.NextTemp()
			*out = append(*out, ir.VarDecl{Name: tempName, Init: access})
			c.expandBindingPattern(scope, elem.Binding, &ir.Identifier{Name: tempName}, out)
			continue
		}
		*out = append(*out, ir.VarDecl{Name: bindingIdentifierName(c.Arena, elem.Binding), Init: access})
	}
}

func stringArrayLit(keys []string) ir.Node {
	elems := make([]ir.Node, len(keys))
	for i, k := range keys {
		elems[i] = &ir.StringLit{Value: k}
	}
	return &ir.ArrayLit{Elements: elems}
}

func isBindingPattern(arena *ast.Arena, id ast.NodeId) bool {
	if !id.IsValid() {
		return false
	}
	k := arena.Kind(id)
	return k == ast.KindObjectBindingPattern || k == ast.KindArrayBindingPattern
}

func bindingIdentifierName(arena *ast.Arena, id ast.NodeId) string {
	if !id.IsValid() {
		return ""
	}
	if g, ok := arena.Node(id).Data.(*ast.GenericData); ok {
		return g.Text
	}
	return ""
}
