package convert

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/renamer"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// convertFunctionExpr converts a function-like node with no directive at all
// (already native-compatible at the target) straight into ir.FunctionExpr,
// still recursing into its body via convertNode for any nested directives.
func (c *Converter) convertFunctionExpr(fnID ast.NodeId) *ir.FunctionExpr {
	node := c.Arena.Node(fnID)
	fn, ok := node.Data.(*ast.FunctionData)
	if !ok {
		return &ir.FunctionExpr{}
	}
	params := make([]ir.Node, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, c.convertParam(p))
	}
	body := c.convertStatementList(fn.Body)
	if fn.ArrowExprBody.IsValid() {
		body = []ir.Node{&ir.ReturnStmt{Value: c.convertNode(fn.ArrowExprBody)}}
	}
	body = c.prependCaptures(fnID, body)
	return &ir.FunctionExpr{Name: fn.Name, Params: params, Body: body, IsGenerator: fn.IsGenerator}
}

func (c *Converter) convertParam(p ast.ParamData) ir.Node {
	if !p.Binding.IsValid() {
		return &ir.Identifier{Name: "_"}
	}
	base := c.convertNode(p.Binding)
	if p.IsRest {
		return &ir.SpreadElement{Value: base}
	}
	if p.Default.IsValid() {
		return &ir.AssignExpr{Op: "=", Target: base, Value: c.convertNode(p.Default)}
	}
	return base
}

// prependCaptures injects `var _this = this;` / `var _arguments = arguments;`
// as the first statement(s) of a function body when internal/lower recorded
// a this/arguments capture scope keyed by this function's own node id
// (spec.md §4.2, Arrow function).
func (c *Converter) prependCaptures(bodyScope ast.NodeId, body []ir.Node) []ir.Node {
	var prelude []ir.Node
	if name, ok := c.Ctx.ThisCapture(bodyScope); ok {
		prelude = append(prelude, &ir.VarStmt{Kind: "var", Decls: []ir.VarDecl{{Name: name, Init: &ir.ThisExpr{}}}})
	}
	if name, ok := c.Ctx.ArgumentsCapture(bodyScope); ok {
		prelude = append(prelude, &ir.VarStmt{Kind: "var", Decls: []ir.VarDecl{{Name: name, Init: &ir.Identifier{Name: "arguments"}}}})
	}
	if len(prelude) == 0 {
		return body
	}
	return append(prelude, body...)
}

// buildFunctionNode is the unified builder for a function-like node that
// carries one or more of ES5ArrowFunction / ES5AsyncFunction /
// ES5FunctionParameters (lowering registers these independently on the same
// node id; see internal/lower/lower_function.go, so they arrive here already
// merged into a transform.Chain). An arrow becoming a plain `function` needs
// no special handling beyond what convertFunctionExpr already does (the
// this/arguments substitution happened per-token during lowering), so this
// only special-cases the parameter and async/generator shaping.
func (c *Converter) buildFunctionNode(id ast.NodeId, shaping []transform.Directive) ir.Node {
	node := c.Arena.Node(id)
	fn, ok := node.Data.(*ast.FunctionData)
	if !ok {
		return &ir.ASTRef{Id: id}
	}

	hasAsync := false
	hasParams := false
	for _, d := range shaping {
		switch d.(type) {
		case transform.ES5AsyncFunction:
			hasAsync = true
		case transform.ES5FunctionParameters:
			hasParams = true
		}
	}

	params, paramPrelude := c.buildParams(fn, hasParams)

	var body []ir.Node
	if hasAsync {
		scope := renamer.NewScope()
		stateVar := scope.CaptureName("_a")
		cases, hoisted := c.buildGeneratorCases(fn.Body, stateVar)
		genBody := &ir.GeneratorBody{HasAwait: fn.IsAsync, StateVar: stateVar, Cases: cases}
		var inner ir.Node = genBody
		if fn.IsAsync && !fn.IsGenerator {
			inner = &ir.AwaiterCall{ThisArg: &ir.ThisExpr{}, GeneratorBody: genBody}
		}
		body = append(body, paramPrelude...)
		if len(hoisted) > 0 {
			decls := make([]ir.VarDecl, 0, len(hoisted))
			for _, name := range hoisted {
				decls = append(decls, ir.VarDecl{Name: name})
			}
			body = append(body, &ir.VarStmt{Kind: "var", Decls: decls})
		}
		body = append(body, &ir.ReturnStmt{Value: inner})
	} else {
		stmts := c.convertStatementList(fn.Body)
		if fn.ArrowExprBody.IsValid() {
			stmts = []ir.Node{&ir.ReturnStmt{Value: c.convertNode(fn.ArrowExprBody)}}
		}
		body = append(paramPrelude, stmts...)
		body = c.prependCaptures(id, body)
	}

	return &ir.FunctionExpr{Name: fn.Name, Params: params, Body: body}
}

// buildParams implements spec.md §4.2's ES5 function-parameter transformer
// for the defaults/rest case: every simple parameter stays a bare
// identifier, a default value becomes an
// `if (p === void 0) { p = <default>; }` prelude statement, and a rest
// parameter becomes a `var rest = []; for (...) rest[...] = arguments[...];`
// prelude plus no corresponding formal parameter. A destructuring pattern
// among the parameters is replaced by a synthesized temp parameter; the
// pattern is not expanded, so the names it declares are not bound in the
// function body (see DESIGN.md).
func (c *Converter) buildParams(fn *ast.FunctionData, lower bool) (params []ir.Node, prelude []ir.Node) {
	if !lower {
		for _, p := range fn.Params {
			params = append(params, c.convertParam(p))
		}
		return params, nil
	}

	scope := renamer.NewScope()
	restIndex := -1
	for i, p := range fn.Params {
		if p.IsRest {
			restIndex = i
			continue
		}
		name := c.simpleParamName(scope, p.Binding, i)
		params = append(params, &ir.Identifier{Name: name})
		if p.Default.IsValid() {
			prelude = append(prelude, &ir.IfStmt{
				Test: &ir.BinaryExpr{Op: "===", Left: &ir.Identifier{Name: name}, Right: &ir.UndefinedLit{}},
				Then: &ir.Block{Stmts: []ir.Node{&ir.ExprStmt{Expr: &ir.AssignExpr{Op: "=", Target: &ir.Identifier{Name: name}, Value: c.convertNode(p.Default)}}}},
			})
		}
	}

	if restIndex >= 0 {
		restName := c.simpleParamName(scope, fn.Params[restIndex].Binding, restIndex)
		iter := scope.NextTemp()
		prelude = append(prelude,
			&ir.VarStmt{Kind: "var", Decls: []ir.VarDecl{{Name: restName, Init: &ir.ArrayLit{}}}},
			&ir.ForStmt{
				Init: &ir.VarStmt{Kind: "var", Decls: []ir.VarDecl{{Name: iter, Init: &ir.NumberLit{Value: float64(restIndex)}}}},
				Test: &ir.BinaryExpr{Op: "<", Left: &ir.Identifier{Name: iter}, Right: &ir.DotExpr{Target: &ir.Identifier{Name: "arguments"}, Property: "length"}},
				Update: &ir.UnaryExpr{Op: "++", Value: &ir.Identifier{Name: iter}, Prefix: false},
				Body: &ir.Block{Stmts: []ir.Node{&ir.ExprStmt{Expr: &ir.AssignExpr{
					Op:     "=",
					Target: &ir.IndexExpr{Target: &ir.Identifier{Name: restName}, Index: &ir.BinaryExpr{Op: "-", Left: &ir.Identifier{Name: iter}, Right: &ir.NumberLit{Value: float64(restIndex)}}},
					Value:  &ir.IndexExpr{Target: &ir.Identifier{Name: "arguments"}, Index: &ir.Identifier{Name: iter}},
				}}},
				}},
		)
	}

	return params, prelude
}

func (c *Converter) simpleParamName(scope *renamer.Scope, binding ast.NodeId, index int) string {
	if binding.IsValid() && c.Arena.Kind(binding) == ast.KindIdentifier {
		if g, ok := c.Arena.Node(binding).Data.(*ast.GenericData); ok && g.Text != "" {
			scope.Reserve(g.Text)
			return g.Text
		}
	}
	return scope.NextTemp()
}

// generatorBuilder turns a straight-line async/generator function body into
// the `switch (_a.label) { case N: ... }` cases spec.md §4.2's Async/await
// and Generator transformers describe, splitting the statement list at
// every point a top-level `await`/`yield` crosses a statement boundary and
// hoisting any declaration whose initializer is a direct await/yield to a
// `var` at the top of the function (TSC's own ES5 output hoists these so
// the value can be recovered from `_a.sent()` in the following case).
//
// Only top-level statements of the body itself are split; an await/yield
// nested inside an `if`/loop/`try` branch is not (known limitation, see
// DESIGN.md) — such a statement converts normally via convertNode, which
// still recurses into the subtree for any *other* directive (spread,
// template, nested class, ...) but leaves the await/yield keyword as
// literal source text.
type generatorBuilder struct {
	c        *Converter
	stateVar string

	cases   []ir.GeneratorCase
	current []ir.Node
	label   int

	hoisted    []string
	hoistedSet map[string]bool
}

// buildGeneratorCases is the entry point buildFunctionNode's async/
// generator branch calls.
func (c *Converter) buildGeneratorCases(stmts []ast.NodeId, stateVar string) (cases []ir.GeneratorCase, hoisted []string) {
	b := &generatorBuilder{c: c, stateVar: stateVar, hoistedSet: map[string]bool{}}
	b.convertStmts(stmts)
	b.flush()
	return b.cases, b.hoisted
}

func (b *generatorBuilder) flush() {
	b.cases = append(b.cases, ir.GeneratorCase{Label: b.label, Statements: b.current})
	b.current = nil
}

// split closes out the current case and opens the next one, used every
// time a statement boundary crosses a suspend point.
func (b *generatorBuilder) split() {
	b.flush()
	b.label++
}

func (b *generatorBuilder) emit(n ir.Node) {
	b.current = append(b.current, n)
}

func (b *generatorBuilder) hoist(name string) {
	if name == "" || b.hoistedSet[name] {
		return
	}
	b.hoistedSet[name] = true
	b.hoisted = append(b.hoisted, name)
}

func (b *generatorBuilder) convertStmts(stmts []ast.NodeId) {
	for _, s := range stmts {
		b.convertStmt(s)
	}
}

// generatorOpcode reports the `__generator` opcode a suspend-point node
// corresponds to. Both `await` and plain (non-delegating) `yield` suspend
// via opcode 4 ("yield") — `__awaiter`'s own step function is what turns
// the awaited value's resolution back into a `.next()` call, so an await
// and a yield look identical to the `__generator` state machine itself.
func generatorOpcode(kind ast.Kind) int {
	return 4
}

func (c *Converter) isSuspendPoint(id ast.NodeId) bool {
	if !id.IsValid() {
		return false
	}
	switch c.Arena.Kind(id) {
	case ast.KindAwaitExpression, ast.KindYieldExpression:
		return true
	}
	return false
}

// suspendOperand returns the single operand of an await/yield node.
func (c *Converter) suspendOperand(id ast.NodeId) ast.NodeId {
	if g, ok := c.Arena.Node(id).Data.(*ast.GenericData); ok && len(g.Children) == 1 {
		return g.Children[0]
	}
	return ast.InvalidNodeId
}

func (b *generatorBuilder) convertStmt(s ast.NodeId) {
	c := b.c
	switch c.Arena.Kind(s) {
	case ast.KindReturnStatement:
		b.convertReturn(s)
	case ast.KindVariableDeclarationList:
		if b.tryVarDeclWithSuspend(s) {
			return
		}
		b.emit(c.convertNode(s))
	case ast.KindExpressionStatement:
		if b.tryExprStmtWithSuspend(s) {
			return
		}
		b.emit(c.convertNode(s))
	default:
		b.emit(c.convertNode(s))
	}
}

// convertReturn rewrites every `return <expr>;` to `return [2
// /*return*/, <expr>];` (spec.md §4.2: every completion out of an ES5
// generator state machine goes through the same tuple protocol, not just
// the ones that directly await), recursing into an expr that is itself a
// direct await/yield via the same suspend-split the let/const/expression-
// statement cases use.
func (b *generatorBuilder) convertReturn(s ast.NodeId) {
	c := b.c
	g, ok := c.Arena.Node(s).Data.(*ast.GenericData)
	if !ok || len(g.Children) == 0 {
		b.emit(&ir.ReturnStmt{Value: &ir.GeneratorOp{Opcode: 2}})
		return
	}
	value := g.Children[0]
	if c.isSuspendPoint(value) {
		operand := c.suspendOperand(value)
		b.emit(&ir.ReturnStmt{Value: &ir.GeneratorOp{Opcode: generatorOpcode(c.Arena.Kind(value)), Value: c.convertNode(operand)}})
		b.split()
		b.emit(&ir.ReturnStmt{Value: &ir.GeneratorOp{Opcode: 2, Value: &ir.GeneratorSent{StateVar: b.stateVar}}})
		return
	}
	b.emit(&ir.ReturnStmt{Value: &ir.GeneratorOp{Opcode: 2, Value: c.convertNode(value)}})
}

// tryVarDeclWithSuspend handles `const x = await g();` / `let x = yield
// g();`: a single, non-destructured declarator whose initializer is
// directly a suspend point splits into "suspend here" / "resume and
// assign" cases, with x hoisted to the function-level `var` statement
// since it must be readable from the following case (spec.md §8 scenario
// 4). Anything else (no initializer, a non-suspend initializer, multiple
// declarators, or a destructuring binding) converts normally.
func (b *generatorBuilder) tryVarDeclWithSuspend(s ast.NodeId) bool {
	c := b.c
	decl, ok := c.Arena.Node(s).Data.(*ast.VarDeclData)
	if !ok || len(decl.Decls) != 1 {
		return false
	}
	d := decl.Decls[0]
	if !d.Initializer.IsValid() || !c.isSuspendPoint(d.Initializer) {
		return false
	}
	if c.Arena.Kind(d.Binding) != ast.KindIdentifier {
		return false
	}
	name, ok := identifierText(c.Arena, d.Binding)
	if !ok {
		return false
	}

	operand := c.suspendOperand(d.Initializer)
	b.emit(&ir.ReturnStmt{Value: &ir.GeneratorOp{Opcode: generatorOpcode(c.Arena.Kind(d.Initializer)), Value: c.convertNode(operand)}})
	b.split()
	b.hoist(name)
	b.emit(&ir.ExprStmt{Expr: &ir.AssignExpr{Op: "=", Target: &ir.Identifier{Name: name}, Value: &ir.GeneratorSent{StateVar: b.stateVar}}})
	return true
}

// tryExprStmtWithSuspend handles a bare `await g();` / `yield g();`
// statement whose result is discarded: the suspend still splits the case,
// and the resume case still calls `_a.sent()` (for its thrown-error
// propagation side effect, matching the reference compiler's own output)
// even though nothing uses its value.
func (b *generatorBuilder) tryExprStmtWithSuspend(s ast.NodeId) bool {
	c := b.c
	g, ok := c.Arena.Node(s).Data.(*ast.GenericData)
	if !ok || len(g.Children) != 1 || !c.isSuspendPoint(g.Children[0]) {
		return false
	}
	suspend := g.Children[0]
	operand := c.suspendOperand(suspend)
	b.emit(&ir.ReturnStmt{Value: &ir.GeneratorOp{Opcode: generatorOpcode(c.Arena.Kind(suspend)), Value: c.convertNode(operand)}})
	b.split()
	b.emit(&ir.ExprStmt{Expr: &ir.GeneratorSent{StateVar: b.stateVar}})
	return true
}

// identifierText reads an Identifier node's text, the same lookup
// simpleParamName uses for parameter bindings.
func identifierText(arena *ast.Arena, id ast.NodeId) (string, bool) {
	if g, ok := arena.Node(id).Data.(*ast.GenericData); ok && g.Text != "" {
		return g.Text, true
	}
	return "", false
}
