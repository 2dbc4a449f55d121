package lower

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// lowerVariableDeclarationList implements spec.md §4.2's Variable
// declaration (destructuring) transformer: a `let`/`const`/`var` list whose
// bindings include an object or array pattern gets split into a temp-backed
// sequence of simple assignments when the target can't use native
// destructuring.
func (p *Pass) lowerVariableDeclarationList(e *env, id ast.NodeId) {
	node := p.Arena.Node(id)
	decl, ok := node.Data.(*ast.VarDeclData)
	if !ok {
		return
	}

	needsLowering := compat.Unsupported(p.Options.Target, compat.Destructuring)
	hasPattern := false
	for _, d := range decl.Decls {
		if isBindingPattern(p.Arena, d.Binding) {
			hasPattern = true
			break
		}
	}

	if hasPattern && needsLowering {
		p.Ctx.Set(id, transform.ES5VariableDeclarationList{ListNode: id})
		if usesObjectRest(p.Arena, decl) {
			p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.Rest = true })
		}
	}

	for _, d := range decl.Decls {
		p.lowerBindingPattern(e, d.Binding)
		if d.Initializer.IsValid() {
			p.lowerStatement(e, d.Initializer)
		}
	}
}

func isBindingPattern(arena *ast.Arena, id ast.NodeId) bool {
	if !id.IsValid() {
		return false
	}
	k := arena.Kind(id)
	return k == ast.KindObjectBindingPattern || k == ast.KindArrayBindingPattern
}

// lowerBindingPattern recurses into a (possibly nested) binding pattern's
// default-value expressions and computed property keys, both of which may
// themselves contain arrow functions, templates, or further destructuring.
func (p *Pass) lowerBindingPattern(e *env, id ast.NodeId) {
	if !id.IsValid() || !isBindingPattern(p.Arena, id) {
		return
	}
	node := p.Arena.Node(id)
	pattern, ok := node.Data.(*ast.BindingPatternData)
	if !ok {
		return
	}
	for _, elem := range pattern.Elements {
		if elem.PropertyIsComputed && elem.PropertyKey.IsValid() {
			p.lowerStatement(e, elem.PropertyKey)
		}
		if isBindingPattern(p.Arena, elem.Binding) {
			p.lowerBindingPattern(e, elem.Binding)
		}
		if elem.Default.IsValid() {
			p.lowerStatement(e, elem.Default)
		}
	}
}

// usesObjectRest reports whether any object binding pattern among decl's
// bindings has a rest element, the one case that needs the `__rest` helper
// rather than plain indexed destructuring.
func usesObjectRest(arena *ast.Arena, decl *ast.VarDeclData) bool {
	var check func(ast.NodeId) bool
	check = func(id ast.NodeId) bool {
		if !isBindingPattern(arena, id) {
			return false
		}
		node := arena.Node(id)
		pattern, ok := node.Data.(*ast.BindingPatternData)
		if !ok {
			return false
		}
		for _, elem := range pattern.Elements {
			if elem.IsRest && pattern.IsObject {
				return true
			}
			if check(elem.Binding) {
				return true
			}
		}
		return false
	}
	for _, d := range decl.Decls {
		if check(d.Binding) {
			return true
		}
	}
	return false
}
