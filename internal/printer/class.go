package printer

import "github.com/tsdownlevel/tsdownlevel/internal/ir"

// printES5ClassIIFE prints a class declaration's full statement form
// (spec.md §4.2, Class (ES5)): the private-field WeakMap declarations ahead
// of the IIFE, the `var Name = ...;` binding, and the WeakMap initializers
// immediately after the IIFE closes. A class used in expression position
// (an `export default class {}`'s VarDecl.Init, or a class expression
// nested inside a larger expression) goes through printES5ClassIIFEExpr
// directly instead, via the printExprInline case for *ir.ES5ClassIIFE.
func (p *printer) printES5ClassIIFE(v *ir.ES5ClassIIFE) {
	for _, decl := range v.WeakMapDecls {
		p.w.write("var " + decl + ";")
		p.w.writeNewline()
		p.w.writeIndent()
	}

	if v.Name != "" {
		p.w.write("var " + v.Name + " = ")
	}
	p.printES5ClassIIFEExpr(v)
	p.w.write(";")

	for _, init := range v.WeakMapInits {
		p.w.writeNewline()
		p.w.writeIndent()
		p.w.write(init + " = new WeakMap();")
	}
}

// printES5ClassIIFEExpr prints the bare `/** @class */ (function (_super)
// {...}(Base))` (or non-derived `(function () {...}())`) expression, with no
// surrounding `var Name =` binding — the shape every class IIFE reduces to
// once the WeakMap bookkeeping is stripped out.
func (p *printer) printES5ClassIIFEExpr(v *ir.ES5ClassIIFE) {
	p.w.write("/** @class */ (function (")
	if v.Base != nil {
		p.w.write("_super")
	}
	p.w.write(") {")
	p.w.writeNewline()
	p.w.increaseIndent()

	if v.Base != nil {
		p.w.writeIndent()
		p.w.write("__extends(" + v.Name + ", _super);")
		p.w.writeNewline()
	}

	p.w.writeIndent()
	p.printClassConstructor(v)
	p.w.writeNewline()

	p.printStmtList(v.Body)

	for _, block := range v.DeferredStaticBlocks {
		p.printStmt(block)
	}

	p.w.writeIndent()
	p.w.write("return " + v.Name + ";")
	p.w.writeNewline()

	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("}(")
	if v.Base != nil {
		p.printExprPrec(v.Base, LAssign)
	}
	p.w.write("))")
}

// printClassConstructor prints the `function Name(...) {...}` declaration
// every class IIFE carries, synthesizing an empty one when the class had no
// explicit constructor and buildES5Class left Constructor nil (a class with
// no fields and no `extends`).
func (p *printer) printClassConstructor(v *ir.ES5ClassIIFE) {
	ctor := v.Constructor
	if ctor == nil {
		ctor = &ir.FunctionExpr{}
	}
	p.w.write("function " + v.Name)
	p.printParams(ctor.Params)
	p.w.write(" ")
	p.printBlock(ctor.Body)
}

func (p *printer) printPrototypeMethod(v *ir.PrototypeMethod) {
	p.printCommentPrefix(v.LeadingComment)
	p.w.write(v.ClassName + ".prototype")
	p.printMemberKeyAccess(v.MethodName, v.NameIsComputed)
	p.w.write(" = ")
	p.printFunctionExpr(v.Function)
	p.w.write(";")
	p.printCommentSuffix(v.TrailingComment)
}

func (p *printer) printStaticMethod(v *ir.StaticMethod) {
	p.printCommentPrefix(v.LeadingComment)
	p.w.write(v.ClassName)
	p.printMemberKeyAccess(v.MethodName, v.NameIsComputed)
	p.w.write(" = ")
	p.printFunctionExpr(v.Function)
	p.w.write(";")
	p.printCommentSuffix(v.TrailingComment)
}

// printMemberKeyAccess prints `.name` for a plain identifier/string key or
// `[expr]` for a computed one, following a class-or-prototype target already
// written by the caller.
func (p *printer) printMemberKeyAccess(key ir.Node, computed bool) {
	if computed {
		p.w.write("[")
		p.printExprPrec(key, LAssign)
		p.w.write("]")
		return
	}
	switch k := key.(type) {
	case *ir.StringLit:
		if isPlainIdentifierName(k.Value) {
			p.w.write("." + k.Value)
			return
		}
		p.w.write("[")
		p.printExprInline(key)
		p.w.write("]")
	case *ir.NumberLit:
		p.w.write("[")
		p.printExprInline(key)
		p.w.write("]")
	default:
		p.w.write(".")
		p.printExprInline(key)
	}
}

func isPlainIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isLetter {
			return false
		}
		if i > 0 && !isLetter && !isDigit {
			return false
		}
	}
	return true
}

func (p *printer) printDefineProperty(v *ir.DefineProperty) {
	p.w.write("Object.defineProperty(")
	p.printExprPrec(v.Target, LComma)
	p.w.write(", ")
	p.printPropertyKey(v.PropertyName, v.NameIsComputed)
	p.w.write(", {")
	p.w.writeNewline()
	p.w.increaseIndent()
	first := true
	writeAccessor := func(label string, fn *ir.FunctionExpr) {
		if fn == nil {
			return
		}
		if !first {
			p.w.write(",")
			p.w.writeNewline()
		}
		first = false
		p.w.writeIndent()
		p.w.write(label + ": ")
		p.printFunctionExpr(fn)
	}
	writeAccessor("get", v.Descriptor.Get)
	writeAccessor("set", v.Descriptor.Set)
	if !first {
		p.w.write(",")
		p.w.writeNewline()
	}
	p.w.writeIndent()
	p.w.write("enumerable: " + boolString(v.Descriptor.Enumerable) + ",")
	p.w.writeNewline()
	p.w.writeIndent()
	p.w.write("configurable: " + boolString(v.Descriptor.Configurable))
	p.w.writeNewline()
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("});")
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (p *printer) printPrivateFieldGet(v *ir.PrivateFieldGet) {
	p.w.write("__classPrivateFieldGet(")
	p.printExprPrec(v.Target, LComma)
	p.w.write(", " + v.WeakMapName + `, "` + v.Kind + `")`)
}

func (p *printer) printPrivateFieldSet(v *ir.PrivateFieldSet) {
	p.w.write("__classPrivateFieldSet(")
	p.printExprPrec(v.Target, LComma)
	p.w.write(", " + v.WeakMapName + ", ")
	p.printExprPrec(v.Value, LComma)
	p.w.write(`, "` + v.Kind + `")`)
}

func (p *printer) printCommentPrefix(text string) {
	if text == "" || p.options.RemoveComments {
		return
	}
	p.w.write("/* " + text + " */")
	p.w.writeNewline()
	p.w.writeIndent()
}

func (p *printer) printCommentSuffix(text string) {
	if text == "" || p.options.RemoveComments {
		return
	}
	p.w.write(" /* " + text + " */")
}
