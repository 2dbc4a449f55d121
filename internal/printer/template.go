package printer

import (
	"github.com/tsdownlevel/tsdownlevel/internal/helpers"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
)

// printTemplateConcat prints a lowered non-tagged template literal as a
// left-to-right string concatenation: "part0" + expr0 + "part1" + ...
// Empty segments between two substitutions are left out; the first and
// last segments always print, even when empty (see DESIGN.md).
func (p *printer) printTemplateConcat(v *ir.TemplateConcat) {
	first := true
	writeSep := func() {
		if !first {
			p.w.write(" + ")
		}
		first = false
	}
	for i, part := range v.Parts {
		if part != "" || i == 0 || i == len(v.Parts)-1 {
			writeSep()
			p.w.write(string(helpers.QuoteForJSON(part, false)))
		}
		if i < len(v.Exprs) {
			writeSep()
			p.printExprPrec(v.Exprs[i], LAdd)
		}
	}
}

// printTaggedTemplateCall prints `tag(__makeTemplateObject([cooked...],
// [raw...]), ...substitutions)`. TSC instead caches the template-object
// array in a module-level `_templateObject` variable and reconstructs
// `this` via a comma-assignment when the tag is a property access, to avoid
// evaluating the tag expression's object twice; since Tag here is printed
// as a single expression invoked directly, the object is only ever
// evaluated once, so that rewrite has nothing to protect against (see
// DESIGN.md).
func (p *printer) printTaggedTemplateCall(v *ir.TaggedTemplateCall) {
	p.printExprPrec(v.Tag, LCall)
	p.w.write("(__makeTemplateObject([")
	p.printStringArray(v.Cooked)
	p.w.write("], [")
	p.printStringArray(v.Raw)
	p.w.write("])")
	for _, e := range v.Exprs {
		p.w.write(", ")
		p.printExprPrec(e, LAssign)
	}
	p.w.write(")")
}

func (p *printer) printStringArray(parts []string) {
	for i, s := range parts {
		if i > 0 {
			p.w.write(", ")
		}
		p.w.write(string(helpers.QuoteForJSON(s, false)))
	}
}
