package lower

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
	"github.com/tsdownlevel/tsdownlevel/internal/renamer"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// lowerFunctionLike handles every function-shaped node: declarations,
// expressions, arrows, methods, accessors, and constructors (spec.md §4.1
// decisions 3 and 4, and §4.2's Arrow/Async/Generator transformers).
func (p *Pass) lowerFunctionLike(e *env, id ast.NodeId) {
	node := p.Arena.Node(id)
	fn, ok := node.Data.(*ast.FunctionData)
	if !ok {
		return
	}

	isArrow := node.Kind == ast.KindArrowFunction
	target := p.Options.Target

	if isArrow && compat.Unsupported(target, compat.ArrowFunctions) {
		p.lowerArrowFunction(e, id, fn)
	}

	if (fn.IsAsync || fn.IsGenerator) && !isArrow {
		needsAsyncLowering := fn.IsAsync && !fn.IsGenerator && compat.Unsupported(target, compat.AsyncAwait)
		needsGeneratorLowering := fn.IsGenerator && compat.Unsupported(target, compat.Generator)
		needsAsyncGenLowering := fn.IsAsync && fn.IsGenerator && compat.Unsupported(target, compat.AsyncGenerator)
		if needsAsyncLowering || needsGeneratorLowering || needsAsyncGenLowering {
			p.Ctx.Set(id, transform.ES5AsyncFunction{FunctionNode: id})
			if fn.IsAsync {
				p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.Awaiter = true })
			}
			p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.Generator = true })
		}
	}

	if needsParamLowering(fn) && target < compat.ES2015 {
		p.Ctx.Set(id, transform.ES5FunctionParameters{FunctionNode: id})
		if hasRestParam(fn) {
			p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.Rest = true })
		}
	}

	// Descend into the body with an updated environment: a non-arrow
	// function establishes a fresh this/arguments capture scope and a
	// fresh destructuring-temp Scope (spec.md §4.4, "Temp-var scope stack
	// — each function-body frame resets the destructuring temp counter").
	childEnv := *e
	if !isArrow {
		childEnv.enclosingFunctionBody = id
		p.seedParamNames(p.scopeFor(id), fn)
	}
	for _, stmt := range fn.Body {
		p.lowerStatement(&childEnv, stmt)
	}
	if fn.ArrowExprBody.IsValid() {
		p.lowerStatement(&childEnv, fn.ArrowExprBody)
	}
}

func needsParamLowering(fn *ast.FunctionData) bool {
	for _, param := range fn.Params {
		if param.Default.IsValid() || param.IsRest {
			return true
		}
		if _, isPattern := paramBindingPattern(param); isPattern {
			return true
		}
	}
	return false
}

func hasRestParam(fn *ast.FunctionData) bool {
	for _, param := range fn.Params {
		if param.IsRest {
			return true
		}
	}
	return false
}

func paramBindingPattern(param ast.ParamData) (ast.NodeId, bool) {
	return param.Binding, param.Binding.IsValid()
}

// seedParamNames reserves every simple (non-pattern) parameter name in scope
// so a later temp/capture name never collides with a real parameter
// (spec.md's renamer contract, generalized from esbuild's own reserved-name
// seeding in internal/renamer).
func (p *Pass) seedParamNames(scope *renamer.Scope, fn *ast.FunctionData) {
	for _, param := range fn.Params {
		if !param.Binding.IsValid() {
			continue
		}
		node := p.Arena.Node(param.Binding)
		if node.Kind != ast.KindIdentifier {
			continue
		}
		if g, ok := node.Data.(*ast.GenericData); ok && g.Text != "" {
			scope.Reserve(g.Text)
		}
	}
}

// lowerArrowFunction implements spec.md §4.2's Arrow function transformer:
// scan the body for `this`/`arguments` references that don't cross into a
// nested non-arrow function, and if any are found, register the capture on
// the nearest enclosing non-arrow function body and a SubstituteThis /
// SubstituteArguments directive on every found token.
func (p *Pass) lowerArrowFunction(e *env, id ast.NodeId, fn *ast.FunctionData) {
	capturesThis, capturesArguments, thisNodes, argsNodes := scanArrowCaptures(p.Arena, fn)

	directive := transform.ES5ArrowFunction{
		ArrowNode:         id,
		CapturesThis:      capturesThis,
		CapturesArguments: capturesArguments,
	}

	if capturesThis {
		scope := p.scopeFor(e.enclosingFunctionBody)
		name := scope.CaptureName("_this")
		p.Ctx.SetThisCapture(e.enclosingFunctionBody, name)
		for _, tn := range thisNodes {
			p.Ctx.Set(tn, transform.SubstituteThis{CaptureName: name})
		}
		if e.inStaticClassMember && referencesIdentifier(p.Arena, fn, e.currentClassName) {
			alias := scope.ClassAliasName()
			directive.ClassAlias = alias
		}
	}
	if capturesArguments {
		scope := p.scopeFor(e.enclosingFunctionBody)
		name := scope.CaptureName("_arguments")
		p.Ctx.SetArgumentsCapture(e.enclosingFunctionBody, name)
		for _, an := range argsNodes {
			p.Ctx.Set(an, transform.SubstituteArguments{CaptureName: name})
		}
	}

	p.Ctx.Set(id, directive)
}

// scanArrowCaptures walks an arrow function's body (but not into nested
// non-arrow functions, per spec.md §4.1 decision 3: "skipping nested
// non-arrow functions") collecting every `this` and bare `arguments`
// reference.
func scanArrowCaptures(arena *ast.Arena, fn *ast.FunctionData) (capturesThis, capturesArguments bool, thisNodes, argsNodes []ast.NodeId) {
	var walk func(ast.NodeId)
	walk = func(id ast.NodeId) {
		if !id.IsValid() {
			return
		}
		node := arena.Node(id)
		switch node.Kind {
		case ast.KindThisExpression:
			capturesThis = true
			thisNodes = append(thisNodes, id)
			return
		case ast.KindIdentifier:
			if g, ok := node.Data.(*ast.GenericData); ok && g.Text == "arguments" {
				capturesArguments = true
				argsNodes = append(argsNodes, id)
			}
			return
		case ast.KindFunctionDeclaration, ast.KindFunctionExpression, ast.KindMethodDeclaration,
			ast.KindGetAccessor, ast.KindSetAccessor, ast.KindConstructor:
			// Do not cross into a nested non-arrow function's own `this`.
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
	for _, s := range fn.Body {
		walk(s)
	}
	if fn.ArrowExprBody.IsValid() {
		walk(fn.ArrowExprBody)
	}
	return
}

// referencesIdentifier reports whether `name` appears as a bare identifier
// anywhere in fn's body (used to decide whether a static-member arrow needs
// the `_a` class-name alias, spec.md §4.2 Arrow function).
func referencesIdentifier(arena *ast.Arena, fn *ast.FunctionData, name string) bool {
	if name == "" {
		return false
	}
	found := false
	var walk func(ast.NodeId)
	walk = func(id ast.NodeId) {
		if found || !id.IsValid() {
			return
		}
		node := arena.Node(id)
		if node.Kind == ast.KindIdentifier {
			if g, ok := node.Data.(*ast.GenericData); ok && g.Text == name {
				found = true
				return
			}
		}
		for _, c := range childrenOf(node) {
			walk(c)
		}
	}
	for _, s := range fn.Body {
		walk(s)
	}
	return found
}
