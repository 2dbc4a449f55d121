package printer

import (
	"strconv"

	"github.com/tsdownlevel/tsdownlevel/internal/helpers"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
)

// exprLevel reports the precedence level at which n can be printed without
// wrapping parentheses, mirroring the teacher's level-threading approach
// (internal/js_printer) but driven off our IR's concrete node types instead
// of a single closed js_ast.E interface with an embedded OpCode.
func exprLevel(n ir.Node) L {
	switch v := n.(type) {
	case *ir.SequenceExpr:
		return LComma
	case *ir.AssignExpr:
		return LAssign
	case *ir.ConditionalExpr:
		return LConditional
	case *ir.BinaryExpr:
		return levelForBinaryOp(v.Op)
	case *ir.UnaryExpr:
		if v.Prefix {
			return LPrefix
		}
		return LPostfix
	case *ir.NewExpr:
		return LNew
	case *ir.CallExpr:
		return LCall
	case *ir.DotExpr, *ir.IndexExpr:
		return LMember
	case *ir.ParenExpr:
		return LMember
	default:
		return LMember
	}
}

// printExprPrec prints n in a context that requires at least minLevel,
// wrapping it in parentheses if its own level is lower (spec.md §4.3,
// "Precedence-preserving output... wrap in parentheses where the IR
// requests").
func (p *printer) printExprPrec(n ir.Node, minLevel L) {
	if n == nil {
		return
	}
	if exprLevel(n) < minLevel {
		p.w.write("(")
		p.printExprInline(n)
		p.w.write(")")
		return
	}
	p.printExprInline(n)
}

// printExprInline prints n without any precedence-driven wrapping of its
// own top level (its children are still wrapped as needed).
func (p *printer) printExprInline(n ir.Node) {
	switch v := n.(type) {
	case *ir.Identifier:
		p.w.write(v.Name)

	case *ir.ThisExpr:
		if v.Captured {
			p.w.write(v.CaptureAs)
		} else {
			p.w.write("this")
		}

	case *ir.SuperExpr:
		p.w.write("super")

	case *ir.NumberLit:
		p.w.write(formatNumber(v.Value))

	case *ir.StringLit:
		p.w.write(string(helpers.QuoteForJSON(v.Value, false)))

	case *ir.BooleanLit:
		if v.Value {
			p.w.write("true")
		} else {
			p.w.write("false")
		}

	case *ir.NullLit:
		p.w.write("null")

	case *ir.UndefinedLit:
		p.w.write("void 0")

	case *ir.ArrayLit:
		p.w.write("[")
		for i, e := range v.Elements {
			if i > 0 {
				p.w.write(", ")
			}
			p.printExprPrec(e, LAssign)
		}
		p.w.write("]")

	case *ir.ObjectLit:
		p.printObjectLit(v)

	case *ir.SpreadElement:
		p.w.write("...")
		p.printExprPrec(v.Value, LAssign)

	case *ir.UnaryExpr:
		p.printUnary(v)

	case *ir.BinaryExpr:
		p.printBinary(v)

	case *ir.ConditionalExpr:
		p.printExprPrec(v.Test, LConditional+1)
		p.w.write(" ? ")
		p.printExprPrec(v.Yes, LAssign)
		p.w.write(" : ")
		p.printExprPrec(v.No, LAssign)

	case *ir.AssignExpr:
		p.printExprPrec(v.Target, LCall)
		p.w.write(" " + v.Op + " ")
		p.printExprPrec(v.Value, LAssign)

	case *ir.CallExpr:
		p.printExprPrec(v.Callee, LCall)
		if v.Optional {
			p.w.write("?.")
		}
		p.printArgs(v.Args)

	case *ir.NewExpr:
		p.w.write("new ")
		p.printNewCallee(v.Callee)
		p.printArgs(v.Args)

	case *ir.DotExpr:
		p.printExprPrec(v.Target, LMember)
		if v.Optional {
			p.w.write("?.")
		} else {
			p.w.write(".")
		}
		p.w.write(v.Property)

	case *ir.IndexExpr:
		p.printExprPrec(v.Target, LMember)
		if v.Optional {
			p.w.write("?.")
		}
		p.w.write("[")
		p.printExprPrec(v.Index, LLowest)
		p.w.write("]")

	case *ir.FunctionExpr:
		p.printFunctionExpr(v)

	case *ir.SequenceExpr:
		for i, e := range v.Exprs {
			if i > 0 {
				p.w.write(", ")
			}
			p.printExprPrec(e, LAssign)
		}

	case *ir.ParenExpr:
		p.printExprPrec(v.Inner, LLowest)

	case *ir.ASTRef:
		p.addMappingForNode(v.Id)
		p.w.write(p.arena.Text(v.Id))

	case *ir.Raw:
		p.w.write(v.Text)

	case *ir.Sequence:
		for i, item := range v.Items {
			if i > 0 {
				p.w.write(" ")
			}
			p.printExprInline(item)
		}

	// Synthetic composites that can appear in expression position.
	case *ir.AwaiterCall:
		p.printAwaiterCall(v)
	case *ir.GeneratorSent:
		p.w.write(v.StateVar + ".sent()")
	case *ir.GeneratorLabel:
		p.w.write(strconv.Itoa(v.Label))
	case *ir.GeneratorBody:
		p.printGeneratorBodyExpr(v)
	case *ir.GeneratorOp:
		p.printGeneratorOp(v)
	case *ir.PrivateFieldGet:
		p.printPrivateFieldGet(v)
	case *ir.PrivateFieldSet:
		p.printPrivateFieldSet(v)
	case *ir.TemplateConcat:
		p.printTemplateConcat(v)
	case *ir.TaggedTemplateCall:
		p.printTaggedTemplateCall(v)
	case *ir.ES5ClassIIFE:
		p.printES5ClassIIFEExpr(v)

	default:
		p.w.write("/* unprintable expression */")
	}
}

func (p *printer) printArgs(args []ir.Node) {
	p.w.write("(")
	for i, a := range args {
		if i > 0 {
			p.w.write(", ")
		}
		p.printExprPrec(a, LAssign)
	}
	p.w.write(")")
}

// printNewCallee wraps the callee in parentheses when it isn't a bare
// MemberExpression-shaped node, since `new` only binds to a MemberExpression
// grammatically: `new (a.b.apply(a, args))()`, not `new a.b.apply(a, args)()`
// (spec.md §4.2, Array/Call spread: the `Function.prototype.bind.apply`
// rewrite of `new f(...args)` is exactly this shape).
func (p *printer) printNewCallee(callee ir.Node) {
	switch callee.(type) {
	case *ir.Identifier, *ir.DotExpr, *ir.IndexExpr, *ir.ThisExpr:
		p.printExprInline(callee)
	default:
		p.w.write("(")
		p.printExprInline(callee)
		p.w.write(")")
	}
}

func (p *printer) printUnary(v *ir.UnaryExpr) {
	if v.Prefix {
		p.w.write(v.Op)
		if isWordOp(v.Op) {
			p.w.write(" ")
		}
		p.printExprPrec(v.Value, LPrefix)
		return
	}
	p.printExprPrec(v.Value, LPostfix)
	p.w.write(v.Op)
}

func isWordOp(op string) bool {
	return op == "void" || op == "typeof" || op == "delete"
}

func (p *printer) printBinary(v *ir.BinaryExpr) {
	lvl := levelForBinaryOp(v.Op)
	p.printExprPrec(v.Left, lvl)
	p.w.write(" " + v.Op + " ")
	p.printExprPrec(v.Right, lvl+1)
}

func (p *printer) printObjectLit(v *ir.ObjectLit) {
	if len(v.Properties) == 0 {
		p.w.write("{}")
		return
	}
	p.w.write("{ ")
	for i, prop := range v.Properties {
		if i > 0 {
			p.w.write(", ")
		}
		p.printPropertyLit(prop)
	}
	p.w.write(" }")
}

func (p *printer) printPropertyLit(prop *ir.PropertyLit) {
	if prop.IsGetter || prop.IsSetter {
		if prop.IsGetter {
			p.w.write("get ")
		} else {
			p.w.write("set ")
		}
		p.printPropertyKey(prop.Key, prop.KeyIsComputed)
		p.printExprInline(prop.Value)
		return
	}
	if prop.IsShorthand {
		p.printExprInline(prop.Key)
		return
	}
	p.printPropertyKey(prop.Key, prop.KeyIsComputed)
	p.w.write(": ")
	p.printExprPrec(prop.Value, LAssign)
}

func (p *printer) printPropertyKey(key ir.Node, computed bool) {
	if computed {
		p.w.write("[")
		p.printExprPrec(key, LAssign)
		p.w.write("]")
		return
	}
	p.printExprInline(key)
}

// formatNumber renders a float64 the way JS number literals print: integral
// values with no trailing ".0", everything else via the shortest
// round-tripping decimal form.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
