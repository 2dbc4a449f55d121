package printer

import "github.com/tsdownlevel/tsdownlevel/internal/ir"

// printFunctionExpr prints `function name(params) { ...body... }` (spec.md
// §4.2's lowered-arrow/async-function target shape). Per spec.md §4.3,
// "Single-line detection for function bodies" is a may-implement
// optimization the printer is allowed to skip (the IR here carries no
// original-source single-line flag to drive it from); this
// printer always renders the multi-line form, which is always valid output.
func (p *printer) printFunctionExpr(fn *ir.FunctionExpr) {
	p.w.write("function")
	if fn.IsGenerator {
		p.w.write("*")
	}
	if fn.Name != "" {
		p.w.write(" " + fn.Name)
	} else {
		p.w.write(" ")
	}
	p.printParams(fn.Params)
	p.w.write(" ")
	p.printBlock(fn.Body)
}

func (p *printer) printParams(params []ir.Node) {
	p.w.write("(")
	for i, param := range params {
		if i > 0 {
			p.w.write(", ")
		}
		switch v := param.(type) {
		case *ir.SpreadElement:
			p.w.write("...")
			p.printExprInline(v.Value)
		case *ir.AssignExpr:
			p.printExprInline(v.Target)
			p.w.write(" = ")
			p.printExprPrec(v.Value, LAssign)
		default:
			p.printExprInline(param)
		}
	}
	p.w.write(")")
}
