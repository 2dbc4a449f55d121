package convert

import (
	"strings"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/renamer"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// buildES5Class implements spec.md §4.2's Class (ES5) transformer: assemble
// an ir.ES5ClassIIFE from the class's members in source order. The printer
// is responsible for the surrounding IIFE boilerplate (the `__extends` call,
// the constructor-function declaration line, the final `return ClassName;`)
// since every one of those follows mechanically from Name/Base/Constructor
// being non-nil; this builder's job is only to classify each member.
func (c *Converter) buildES5Class(id ast.NodeId, v transform.ES5Class) ir.Node {
	cls, ok := c.Arena.Node(v.ClassNode).Data.(*ast.ClassData)
	if !ok {
		return &ir.ASTRef{Id: id}
	}

	name := cls.Name
	if name == "" && v.NameOverride != "" {
		name = v.NameOverride
	}

	var base ir.Node
	if v.Heritage.IsValid() {
		base = c.convertNode(v.Heritage)
	}

	weakMapScope := renamer.NewScope()
	out := &ir.ES5ClassIIFE{Name: name, Base: base}

	type accessorPair struct {
		isStatic bool
		nameNode ir.Node
		computed bool
		get, set *ir.FunctionExpr
	}
	accessors := map[string]*accessorPair{}
	var accessorOrder []string

	// hasOtherStaticMembers decides whether static blocks emit inline
	// (interleaved with other static members, in source order) or defer to
	// after the IIFE returns (spec.md §4.2: "if the class has other
	// non-block static members, emit the block inline, otherwise defer").
	hasOtherStaticMembers := false
	for i := range cls.Members {
		m := &cls.Members[i]
		if m.IsStatic && m.Kind != ast.MemberStaticBlock && m.Kind != ast.MemberConstructor {
			hasOtherStaticMembers = true
			break
		}
	}

	var fieldInits []ir.Node

	for i := range cls.Members {
		m := &cls.Members[i]

		if m.IsPrivate && (m.Kind == ast.MemberField || m.Kind == ast.MemberGetAccessor || m.Kind == ast.MemberSetAccessor) {
			weakName := "_" + name + weakMapScope.NextTemp()
			if field := strings.TrimPrefix(c.staticPropertyName(m), "#"); field != "" {
				weakName = "_" + name + "_" + field
			}
			switch m.Kind {
			case ast.MemberGetAccessor:
				weakName += "_get"
			case ast.MemberSetAccessor:
				weakName += "_set"
			}
			out.WeakMapDecls = append(out.WeakMapDecls, weakName)
			out.WeakMapInits = append(out.WeakMapInits, weakName)
			if m.Kind == ast.MemberField && m.Initializer.IsValid() {
				set := &ir.WeakMapSet{WeakMapName: weakName, Target: &ir.ThisExpr{}, Value: c.convertNode(m.Initializer)}
				if m.IsStatic {
					set.Target = &ir.Identifier{Name: name}
					out.Body = append(out.Body, set)
				} else {
					fieldInits = append(fieldInits, set)
				}
			}
			continue
		}

		switch m.Kind {
		case ast.MemberConstructor:
			out.Constructor = c.convertFunctionExpr(m.Fn)

		case ast.MemberField:
			if m.Initializer.IsValid() {
				target := ir.Node(&ir.ThisExpr{})
				if m.IsStatic {
					target = &ir.Identifier{Name: name}
				}
				assign := &ir.ExprStmt{Expr: &ir.AssignExpr{
					Op:     "=",
					Target: &ir.DotExpr{Target: target, Property: c.staticPropertyName(m)},
					Value:  c.convertNode(m.Initializer),
				}}
				if m.IsStatic {
					out.Body = append(out.Body, assign)
				} else {
					fieldInits = append(fieldInits, assign)
				}
			}

		case ast.MemberStaticBlock:
			if m.Initializer.IsValid() {
				block := c.Arena.Node(m.Initializer)
				stmt := ir.Node(&ir.Sequence{Items: c.convertStatementList(childrenOf(block))})
				if hasOtherStaticMembers {
					out.Body = append(out.Body, stmt)
				} else {
					out.DeferredStaticBlocks = append(out.DeferredStaticBlocks, stmt)
				}
			}

		case ast.MemberGetAccessor, ast.MemberSetAccessor:
			key := c.staticPropertyName(m)
			pair, ok := accessors[key]
			if !ok {
				pair = &accessorPair{isStatic: m.IsStatic, nameNode: c.memberNameNode(m), computed: m.NameIsComputed}
				accessors[key] = pair
				accessorOrder = append(accessorOrder, key)
			}
			fn := c.convertFunctionExpr(m.Fn)
			if m.Kind == ast.MemberGetAccessor {
				pair.get = fn
			} else {
				pair.set = fn
			}

		default: // MemberMethod
			fn := c.convertFunctionExpr(m.Fn)
			nameNode := c.memberNameNode(m)
			if m.IsStatic {
				out.Body = append(out.Body, &ir.StaticMethod{ClassName: name, MethodName: nameNode, NameIsComputed: m.NameIsComputed, Function: fn, LeadingComment: m.LeadingComment, TrailingComment: m.TrailingComment})
			} else {
				out.Body = append(out.Body, &ir.PrototypeMethod{ClassName: name, MethodName: nameNode, NameIsComputed: m.NameIsComputed, Function: fn, LeadingComment: m.LeadingComment, TrailingComment: m.TrailingComment})
			}
		}
	}

	for _, key := range accessorOrder {
		pair := accessors[key]
		target := ir.Node(&ir.Identifier{Name: name})
		if !pair.isStatic {
			target = &ir.DotExpr{Target: &ir.Identifier{Name: name}, Property: "prototype"}
		}
		out.Body = append(out.Body, &ir.DefineProperty{
			Target:         target,
			PropertyName:   pair.nameNode,
			NameIsComputed: pair.computed,
			Descriptor:     ir.PropertyDescriptor{Get: pair.get, Set: pair.set, Configurable: true},
		})
	}

	switch {
	case out.Constructor != nil:
		// An explicit derived-class constructor whose super(...) call was
		// rewritten (buildES5SuperCall, below) binds the super result to
		// `_this` instead of using `this` directly (spec.md §8 scenario 6);
		// field initializers and the final return follow that binding. A
		// constructor on a non-derived class, or one lowering didn't find a
		// top-level super(...) call in, keeps the plain prepend.
		if v.Heritage.IsValid() && constructorHasSuperRewrite(out.Constructor) {
			insertFieldInitsAfterSuper(out.Constructor, fieldInits)
			if !endsInReturn(out.Constructor.Body) {
				out.Constructor.Body = append(out.Constructor.Body, &ir.ReturnStmt{Value: &ir.Identifier{Name: "_this"}})
			}
		} else {
			out.Constructor.Body = append(fieldInits, out.Constructor.Body...)
		}

	case v.Heritage.IsValid():
		// No explicit constructor on a derived class: TSC synthesizes
		// `function Name() { _super !== null && _super.apply(this,
		// arguments) || this; }`, or, when there are field initializers to
		// run, captures the super result as `_this` so the initializers
		// (and the final return) can use it instead of the real `this`
		// esbuild is rewritten to stand in for (`this` inside a derived
		// default constructor refers to the not-yet-initialized instance).
		superCall := defaultSuperCall()
		if len(fieldInits) == 0 {
			out.Constructor = &ir.FunctionExpr{Body: []ir.Node{&ir.ExprStmt{Expr: superCall}}}
		} else {
			for _, f := range fieldInits {
				substituteThisWithThisCapture(f)
			}
			body := make([]ir.Node, 0, len(fieldInits)+2)
			body = append(body, &ir.VarStmt{Kind: "var", Decls: []ir.VarDecl{{Name: "_this", Init: superCall}}})
			body = append(body, fieldInits...)
			body = append(body, &ir.ReturnStmt{Value: &ir.Identifier{Name: "_this"}})
			out.Constructor = &ir.FunctionExpr{Body: body}
		}

	case len(fieldInits) > 0:
		out.Constructor = &ir.FunctionExpr{Body: fieldInits}
	}

	return out
}

// defaultSuperCall builds `_super !== null && _super.apply(this, arguments)
// || this`, the body TSC gives a derived class's implicit default
// constructor (spec.md §4.2, Class (ES5)).
func defaultSuperCall() ir.Node {
	return &ir.BinaryExpr{
		Op: "||",
		Left: &ir.BinaryExpr{
			Op:   "&&",
			Left: &ir.BinaryExpr{Op: "!==", Left: &ir.Identifier{Name: "_super"}, Right: &ir.NullLit{}},
			Right: &ir.CallExpr{
				Callee: &ir.DotExpr{Target: &ir.Identifier{Name: "_super"}, Property: "apply"},
				Args:   []ir.Node{&ir.ThisExpr{}, &ir.Identifier{Name: "arguments"}},
			},
		},
		Right: &ir.ThisExpr{},
	}
}

// buildES5SuperCall implements spec.md §8 scenario 6's constructor
// transformer: rewrite the explicit `super(args);` statement lowering found
// (internal/lower/lower_class.go's lowerDerivedConstructorSuper) into `var _this
// = _super.call(this, args) || this;`. Every `this` reference later in the
// constructor body was already redirected to `_this` during lowering
// (transform.SubstituteThis), and buildES5Class appends the trailing
// `return _this;` once the whole body is assembled.
func (c *Converter) buildES5SuperCall(id ast.NodeId, v transform.ES5SuperCall) ir.Node {
	node := c.Arena.Node(id)
	g, ok := node.Data.(*ast.GenericData)
	if !ok || len(g.Children) != 1 {
		return &ir.ASTRef{Id: id}
	}
	callID := g.Children[0]
	var args []ir.Node
	if cg, ok := c.Arena.Node(callID).Data.(*ast.GenericData); ok {
		for _, a := range cg.Children {
			args = append(args, c.convertNode(a))
		}
	}
	call := &ir.CallExpr{
		Callee: &ir.DotExpr{Target: &ir.Identifier{Name: "_super"}, Property: "call"},
		Args:   append([]ir.Node{ir.Node(&ir.ThisExpr{})}, args...),
	}
	return &ir.VarStmt{Kind: "var", Decls: []ir.VarDecl{{Name: "_this", Init: &ir.BinaryExpr{Op: "||", Left: call, Right: &ir.ThisExpr{}}}}}
}

// constructorHasSuperRewrite reports whether buildES5SuperCall already
// produced the `var _this = ...;` statement somewhere in fn's body.
func constructorHasSuperRewrite(fn *ir.FunctionExpr) bool {
	for _, s := range fn.Body {
		if v, ok := s.(*ir.VarStmt); ok {
			for _, d := range v.Decls {
				if d.Name == "_this" {
					return true
				}
			}
		}
	}
	return false
}

// insertFieldInitsAfterSuper splices field initializers in immediately
// after the `var _this = ...;` statement, since they run once the
// instance exists (right after super() returns) and must use `_this`
// rather than `this` like the rest of the rewritten constructor body.
func insertFieldInitsAfterSuper(fn *ir.FunctionExpr, fieldInits []ir.Node) {
	if len(fieldInits) == 0 {
		return
	}
	for _, f := range fieldInits {
		substituteThisWithThisCapture(f)
	}
	for i, s := range fn.Body {
		v, ok := s.(*ir.VarStmt)
		if !ok {
			continue
		}
		isSuperVar := false
		for _, d := range v.Decls {
			if d.Name == "_this" {
				isSuperVar = true
			}
		}
		if !isSuperVar {
			continue
		}
		rest := append([]ir.Node{}, fn.Body[i+1:]...)
		fn.Body = append(fn.Body[:i+1:i+1], append(append([]ir.Node{}, fieldInits...), rest...)...)
		return
	}
}

// endsInReturn reports whether body's last statement is already a return,
// so buildES5Class doesn't append a redundant `return _this;`.
func endsInReturn(body []ir.Node) bool {
	if len(body) == 0 {
		return false
	}
	_, ok := body[len(body)-1].(*ir.ReturnStmt)
	return ok
}

// substituteThisWithThisCapture rewrites the bare `this` targets that
// fieldInits' WeakMapSet/AssignExpr shapes were built with into `_this`,
// since a derived default constructor with field initializers binds the
// super-call result to `_this` rather than using `this` directly.
func substituteThisWithThisCapture(n ir.Node) {
	switch v := n.(type) {
	case *ir.WeakMapSet:
		if _, ok := v.Target.(*ir.ThisExpr); ok {
			v.Target = &ir.Identifier{Name: "_this"}
		}
	case *ir.ExprStmt:
		substituteThisWithThisCapture(v.Expr)
	case *ir.AssignExpr:
		if dot, ok := v.Target.(*ir.DotExpr); ok {
			if _, ok := dot.Target.(*ir.ThisExpr); ok {
				dot.Target = &ir.Identifier{Name: "_this"}
			}
		}
	}
}

// memberNameNode converts a class member's (possibly computed) name into an
// IR key node for PrototypeMethod/StaticMethod/DefineProperty.
func (c *Converter) memberNameNode(m *ast.ClassMember) ir.Node {
	if !m.Name.IsValid() {
		return &ir.StringLit{Value: ""}
	}
	if m.NameIsComputed {
		return c.convertNode(m.Name)
	}
	return c.convertNode(m.Name)
}

// staticPropertyName extracts a plain string key for member bookkeeping
// (WeakMap naming, accessor-pair grouping) when the name isn't computed.
func (c *Converter) staticPropertyName(m *ast.ClassMember) string {
	if !m.Name.IsValid() || m.NameIsComputed {
		return ""
	}
	if g, ok := c.Arena.Node(m.Name).Data.(*ast.GenericData); ok {
		return g.Text
	}
	return ""
}
