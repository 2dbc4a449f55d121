package printer

import "github.com/tsdownlevel/tsdownlevel/internal/ir"

// printForOfIteratorLoop prints the `__values`-based iterator-protocol
// rewrite of `for (x of y)` (spec.md §4.2, For-of). This prints the loop's
// steady-state form only: the full TSC output additionally wraps the loop in
// a try/finally that calls the iterator's `.return()` on early exit, which
// needs extra error-state temporaries this IR shape doesn't carry (see
// DESIGN.md) — omitting it is a behavioral simplification (iterators that
// hold a resource and rely on early-return cleanup won't be closed), not a
// syntactic one.
func (p *printer) printForOfIteratorLoop(v *ir.ForOfIteratorLoop) {
	p.w.write("for (var " + v.IteratorVar + " = __values(")
	p.printExprPrec(v.Iterable, LComma)
	p.w.write("), " + v.ResultVar + " = " + v.IteratorVar + ".next(); !" + v.ResultVar + ".done; " + v.ResultVar + " = " + v.IteratorVar + ".next()) {")
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	if v.BindingKind == "" {
		p.w.write(v.BindingName + " = " + v.ResultVar + ".value;")
	} else {
		p.w.write(v.BindingKind + " " + v.BindingName + " = " + v.ResultVar + ".value;")
	}
	p.w.writeNewline()

	if block, ok := v.Body.(*ir.Block); ok {
		p.printStmtList(block.Stmts)
	} else if v.Body != nil {
		p.printStmt(v.Body)
	}

	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("}")
}
