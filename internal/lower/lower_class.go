package lower

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// lowerClassDecl implements spec.md §4.2's Class (ES5) transformer: a class
// declaration or expression becomes an ES5Class directive when the target
// can't use native `class`, plus per-member directives for whichever members
// themselves need lowering (arrow-capturing methods, private fields/methods
// needing the WeakMap encoding, async/generator methods).
func (p *Pass) lowerClassDecl(e *env, id ast.NodeId) {
	node := p.Arena.Node(id)
	cls, ok := node.Data.(*ast.ClassData)
	if !ok {
		return
	}

	name := cls.Name
	if name == "" && cls.IsDefault {
		name = "default"
	}
	if name != "" {
		p.Ctx.DeclareName(e.declScope, name)
	}

	needsIIFE := compat.Unsupported(p.Options.Target, compat.Classes)
	if needsIIFE {
		directive := transform.ES5Class{
			ClassNode:    id,
			Heritage:     cls.Extends,
			IsExpression: node.Kind == ast.KindClassExpression,
		}
		if cls.Name == "" && cls.IsDefault {
			directive.NameOverride = "default_1"
		}
		if cls.Extends.IsValid() {
			p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.Extends = true })
		}
		p.Ctx.Set(id, directive)
	}

	if cls.Extends.IsValid() {
		p.lowerStatement(e, cls.Extends)
	}

	derivedNeedsES5 := needsIIFE && cls.Extends.IsValid()
	for i := range cls.Members {
		p.lowerClassMember(e, name, &cls.Members[i], derivedNeedsES5)
	}
}

func (p *Pass) lowerClassMember(e *env, className string, member *ast.ClassMember, derivedNeedsES5 bool) {
	target := p.Options.Target

	if member.NameIsComputed && member.Name.IsValid() {
		p.lowerStatement(e, member.Name)
	}

	memberEnv := *e
	memberEnv.inStaticClassMember = member.IsStatic
	memberEnv.currentClassName = className

	if member.IsPrivate {
		switch member.Kind {
		case ast.MemberField:
			if compat.Unsupported(target, compat.ClassPrivateField) {
				p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.ClassPrivateFieldGet = true })
				p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.ClassPrivateFieldSet = true })
			}
		case ast.MemberMethod:
			if compat.Unsupported(target, compat.ClassPrivateMethod) {
				p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.ClassPrivateFieldGet = true })
			}
		case ast.MemberGetAccessor, ast.MemberSetAccessor:
			if compat.Unsupported(target, compat.ClassPrivateAccessor) {
				p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.ClassPrivateFieldGet = true })
				p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.ClassPrivateFieldSet = true })
			}
		}
	}

	switch member.Kind {
	case ast.MemberStaticBlock:
		if compat.Unsupported(target, compat.ClassStaticBlocks) && member.Initializer.IsValid() {
			p.lowerStatement(&memberEnv, member.Initializer)
		}
	case ast.MemberField:
		if member.Initializer.IsValid() {
			p.lowerStatement(&memberEnv, member.Initializer)
		}
	default:
		if member.Fn.IsValid() {
			p.lowerFunctionLike(&memberEnv, member.Fn)
			if member.Kind == ast.MemberConstructor && derivedNeedsES5 {
				p.lowerDerivedConstructorSuper(&memberEnv, member.Fn)
			}
		}
	}
}

// lowerDerivedConstructorSuper implements spec.md §8 scenario 6: an explicit
// derived-class constructor's `super(...)` call needs rewriting to
// `_super.call(this, args) || this` at ES5, and — since a class body can
// never reference `this` before calling `super()` — every `this` in the
// constructor is safe to redirect to the same `_this` capture the super
// rewrite binds, the same SubstituteThis bookkeeping lowerArrowFunction uses
// for an arrow's captured `this`.
func (p *Pass) lowerDerivedConstructorSuper(e *env, fnID ast.NodeId) {
	node := p.Arena.Node(fnID)
	fn, ok := node.Data.(*ast.FunctionData)
	if !ok {
		return
	}

	superStmt := findSuperCallStatement(p.Arena, fn.Body)
	if !superStmt.IsValid() {
		// No top-level super(...) call found (e.g. it's nested inside an
		// `if`) — leave the constructor unrewritten rather than guess.
		return
	}
	p.Ctx.Set(superStmt, transform.ES5SuperCall{})

	scope := p.scopeFor(fnID)
	name := scope.CaptureName("_this")
	for _, tn := range findThisExpressions(p.Arena, fn.Body) {
		p.Ctx.Set(tn, transform.SubstituteThis{CaptureName: name})
	}
}

// findSuperCallStatement locates the top-level `super(...);` expression
// statement in a derived constructor's body.
func findSuperCallStatement(arena *ast.Arena, stmts []ast.NodeId) ast.NodeId {
	for _, s := range stmts {
		node := arena.Node(s)
		if node.Kind != ast.KindExpressionStatement {
			continue
		}
		g, ok := node.Data.(*ast.GenericData)
		if !ok || len(g.Children) != 1 {
			continue
		}
		if arena.Node(g.Children[0]).Kind == ast.KindSuperCall {
			return s
		}
	}
	return ast.InvalidNodeId
}

// findThisExpressions walks a constructor's body (not crossing into a
// nested non-arrow function, the same boundary scanArrowCaptures uses in
// lower_function.go) collecting every `this` reference.
func findThisExpressions(arena *ast.Arena, stmts []ast.NodeId) []ast.NodeId {
	var out []ast.NodeId
	var walk func(ast.NodeId)
	walk = func(id ast.NodeId) {
		if !id.IsValid() {
			return
		}
		node := arena.Node(id)
		switch node.Kind {
		case ast.KindThisExpression:
			out = append(out, id)
			return
		case ast.KindFunctionDeclaration, ast.KindFunctionExpression, ast.KindMethodDeclaration,
			ast.KindGetAccessor, ast.KindSetAccessor, ast.KindConstructor:
			return
		}
		if childFn, ok := node.Data.(*ast.FunctionData); ok && node.Kind == ast.KindArrowFunction {
			for _, s := range childFn.Body {
				walk(s)
			}
			if childFn.ArrowExprBody.IsValid() {
				walk(childFn.ArrowExprBody)
			}
			return
		}
		for _, c := range childrenOf(node) {
			walk(c)
		}
	}
	for _, s := range stmts {
		walk(s)
	}
	return out
}
