package printer

import (
	"strconv"

	"github.com/tsdownlevel/tsdownlevel/internal/ir"
)

// generatorOpComment names the eight `__generator` opcodes (spec.md §3/§4.2)
// the way TSC's own output comments them, e.g. `[2 /*return*/, value]`.
var generatorOpComment = map[int]string{
	0: "next",
	1: "throw",
	2: "return",
	3: "break",
	4: "yield",
	5: "yield*",
	6: "catch",
	7: "endfinally",
}

// printAwaiterCall prints `__awaiter(thisArg, void 0, void 0, function ()
// {...})`, the async-function wrapper (spec.md §4.2, Async/await (ES5)).
// The inner function is never itself a generator function: `__generator`'s
// state machine (not a native `function*`) supplies the suspend points.
func (p *printer) printAwaiterCall(v *ir.AwaiterCall) {
	p.w.write("__awaiter(")
	p.printExprPrec(v.ThisArg, LComma)
	p.w.write(", void 0, void 0, function () {")
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.w.write("return ")
	p.printGeneratorBodyExpr(v.GeneratorBody)
	p.w.write(";")
	p.w.writeNewline()
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("})")
}

// printGeneratorBodyExpr prints `__generator(this, function (_a) { switch
// (_a.label) { case N: ...; } })`, shared by async and plain generator
// lowering.
func (p *printer) printGeneratorBodyExpr(v *ir.GeneratorBody) {
	p.w.write("__generator(this, function (" + v.StateVar + ") {")
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.w.write("switch (" + v.StateVar + ".label) {")
	p.w.writeNewline()
	p.w.increaseIndent()
	for _, c := range v.Cases {
		p.w.writeIndent()
		p.w.write("case " + strconv.Itoa(c.Label) + ":")
		if len(c.Statements) == 1 {
			p.w.write(" ")
			p.printStmtInline(c.Statements[0])
			p.w.writeNewline()
			continue
		}
		p.w.writeNewline()
		p.w.increaseIndent()
		p.printStmtList(c.Statements)
		p.w.decreaseIndent()
	}
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("}")
	p.w.writeNewline()
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("})")
}

// printGeneratorOp prints one `[opcode /*name*/]` (or `[opcode /*name*/,
// value]`) generator-protocol tuple.
func (p *printer) printGeneratorOp(v *ir.GeneratorOp) {
	comment := v.Comment
	if comment == "" {
		comment = generatorOpComment[v.Opcode]
	}
	p.w.write("[" + strconv.Itoa(v.Opcode) + " /*" + comment + "*/")
	if v.Value != nil {
		p.w.write(", ")
		p.printExprPrec(v.Value, LAssign)
	}
	p.w.write("]")
}
