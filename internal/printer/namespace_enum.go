package printer

import (
	"strings"

	"github.com/tsdownlevel/tsdownlevel/internal/helpers"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
)

// printNamespaceIIFE prints the outermost level of a (possibly dotted)
// namespace rewrite; printNamespaceLevel recurses one level per dotted part
// (spec.md §4.2, Namespace (ES5): "For each level, emit a nested IIFE").
func (p *printer) printNamespaceIIFE(v *ir.NamespaceIIFE) {
	p.printNamespaceLevel(v, 0)
}

func (p *printer) printNamespaceLevel(v *ir.NamespaceIIFE, level int) {
	name := v.NameParts[level]
	isOutermost := level == 0
	isInnermost := level == len(v.NameParts)-1

	if !isOutermost || v.ShouldDeclareVar {
		p.w.write("var " + name + ";")
		p.w.writeNewline()
		p.w.writeIndent()
	}

	p.w.write("(function (" + name + ") {")
	p.w.writeNewline()
	p.w.increaseIndent()

	if isInnermost {
		p.printStmtList(v.Body)
	} else {
		p.w.writeIndent()
		p.printNamespaceLevel(v, level+1)
		p.w.writeNewline()
	}

	p.w.decreaseIndent()
	p.w.writeIndent()

	var arg string
	switch {
	case isOutermost && v.AttachToExports:
		arg = name + " = exports." + name + " || (exports." + name + " = {})"
	case isOutermost:
		arg = name + " || (" + name + " = {})"
	default:
		parentPath := strings.Join(v.NameParts[:level], ".")
		if v.AttachToExports {
			parentPath = "exports." + parentPath
		}
		arg = name + " = " + parentPath + "." + name + " || (" + parentPath + "." + name + " = {})"
	}
	p.w.write("})(" + arg + ");")
}

// printEnumIIFE prints `var E; (function (E) {...})(E || (E = {}));`
// (spec.md §4.2, Enum (ES5)).
func (p *printer) printEnumIIFE(v *ir.EnumIIFE) {
	p.w.write("var " + v.Name + ";")
	p.w.writeNewline()
	p.w.writeIndent()
	p.w.write("(function (" + v.Name + ") {")
	p.w.writeNewline()
	p.w.increaseIndent()
	for _, m := range v.Members {
		p.w.writeIndent()
		p.printEnumMember(v.Name, m)
		p.w.writeNewline()
	}
	p.w.decreaseIndent()
	p.w.writeIndent()

	arg := v.Name + " || (" + v.Name + " = {})"
	if v.AttachToExports {
		arg = v.Name + " = exports." + v.Name + " || (exports." + v.Name + " = {})"
	}
	p.w.write("})(" + arg + ");")
}

// printEnumMember prints one member's assignment: `E[E["Name"] = value] =
// "Name";` for a reverse-mappable (numeric/auto/computed) value, or plain
// `E["Name"] = "value";` for a string enum member, which TSC never reverse-
// maps.
func (p *printer) printEnumMember(enumName string, m ir.EnumIIFEMember) {
	quotedName := string(helpers.QuoteForJSON(m.Name, false))

	if m.ValueKind == ir.EnumValueString {
		p.w.write(enumName + "[" + quotedName + "] = " + string(helpers.QuoteForJSON(m.StringValue, false)) + ";")
		return
	}

	p.w.write(enumName + "[" + enumName + "[" + quotedName + "] = ")
	switch m.ValueKind {
	case ir.EnumValueComputed:
		p.printExprPrec(m.ComputedExpr, LAssign)
	default:
		p.w.write(formatNumber(m.NumericValue))
	}
	p.w.write("] = " + quotedName + ";")
}
