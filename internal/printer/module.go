package printer

import (
	"github.com/tsdownlevel/tsdownlevel/internal/compat"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/runtime"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// printModuleWrapper prints the whole-file wrapper for a non-ESM output
// format (spec.md §4.2, Module wrapping): the CommonJS-shaped preamble/body
// is always the same; Format alone picks the surrounding factory
// boilerplate. Helper definitions are prepended just inside the factory
// body (after the preamble's `"use strict";`), matching spec.md §6's
// "after 'use strict' in CJS" rule.
func (p *printer) printModuleWrapper(v *ir.ModuleWrapperIR, helperFlags transform.HelperFlags) {
	switch v.Format {
	case compat.AMD:
		p.printAMDWrapper(v, helperFlags)
	case compat.UMD:
		p.printUMDWrapper(v, helperFlags)
	case compat.SystemJS:
		p.printSystemJSWrapper(v, helperFlags)
	default:
		p.printCommonJSBody(v, helperFlags)
	}
}

// printCommonJSBody prints the preamble+body shared by every CommonJS-shaped
// format, with no outer factory wrapping (plain CommonJS output).
func (p *printer) printCommonJSBody(v *ir.ModuleWrapperIR, helperFlags transform.HelperFlags) {
	preamble := v.Preamble
	if len(preamble) > 0 {
		if _, ok := preamble[0].(*ir.UseStrict); ok {
			p.printStmt(preamble[0])
			preamble = preamble[1:]
		}
	}
	if runtime.AnyNeeded(helperFlags) {
		p.w.writeIndent()
		p.w.write(runtime.Assemble(helperFlags))
		p.w.writeNewline()
	}
	p.printStmtList(preamble)
	p.printStmtList(v.Body)
}

func (p *printer) printFactoryParams(names []string) {
	p.w.write("(")
	for i, n := range names {
		if i > 0 {
			p.w.write(", ")
		}
		p.w.write(n)
	}
	p.w.write(")")
}

func (p *printer) printAMDWrapper(v *ir.ModuleWrapperIR, helperFlags transform.HelperFlags) {
	p.w.write(`define(["require", "exports"`)
	for _, dep := range v.Deps {
		p.w.write(`, "` + dep + `"`)
	}
	p.w.write("], function ")
	p.printFactoryParams(v.ParamNames)
	p.w.write(" {")
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.printCommonJSBody(v, helperFlags)
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("});")
}

// printUMDWrapper prints the standard TSC UMD bootstrap: a factory-detecting
// preamble trying CommonJS, then AMD (spec.md §4.2, "factory function
// detecting CommonJS vs AMD, otherwise falling back to AMD"). There is no
// browser-global branch; GlobalName is not read here.
func (p *printer) printUMDWrapper(v *ir.ModuleWrapperIR, helperFlags transform.HelperFlags) {
	p.w.write("(function (factory) {")
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.w.write(`if (typeof module === "object" && typeof module.exports === "object") {`)
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.w.write("var v = factory(require, exports);")
	p.w.writeNewline()
	p.w.writeIndent()
	p.w.write("if (v !== undefined) module.exports = v;")
	p.w.decreaseIndent()
	p.w.writeNewline()
	p.w.writeIndent()
	p.w.write(`}`)
	p.w.write(` else if (typeof define === "function" && define.amd) {`)
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.w.write(`define(["require", "exports"`)
	for _, dep := range v.Deps {
		p.w.write(`, "` + dep + `"`)
	}
	p.w.write("], factory);")
	p.w.decreaseIndent()
	p.w.writeNewline()
	p.w.writeIndent()
	p.w.write("}")
	p.w.writeNewline()
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("})(function ")
	p.printFactoryParams(v.ParamNames)
	p.w.write(" {")
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.printCommonJSBody(v, helperFlags)
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("});")
}

// printSystemJSWrapper prints `System.register([deps], function(exports_1,
// context_1){ return { setters: [], execute: function(){ <cjs body> } }; });`
// (spec.md §4.2, SystemJS).
func (p *printer) printSystemJSWrapper(v *ir.ModuleWrapperIR, helperFlags transform.HelperFlags) {
	p.w.write("System.register([")
	for i, dep := range v.Deps {
		if i > 0 {
			p.w.write(", ")
		}
		p.w.write(`"` + dep + `"`)
	}
	p.w.write(`], function (exports_1, context_1) {`)
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.w.write(`"use strict";`)
	p.w.writeNewline()
	p.w.writeIndent()
	p.w.write("return {")
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.w.write("setters: [],")
	p.w.writeNewline()
	p.w.writeIndent()
	p.w.write("execute: function () {")
	p.w.writeNewline()
	p.w.increaseIndent()
	p.w.writeIndent()
	p.printCommonJSBody(v, helperFlags)
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("}")
	p.w.writeNewline()
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("};")
	p.w.writeNewline()
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("});")
}

func (p *printer) printRequireStatement(v *ir.RequireStatement) {
	p.w.write("var " + v.VarName + " = ")
	switch v.Wrap {
	case "importStar":
		p.w.write("__importStar(")
	case "importDefault":
		p.w.write("__importDefault(")
	}
	p.w.write(`require("` + v.ModuleSpecifier + `")`)
	if v.Wrap != "" {
		p.w.write(")")
	}
	p.w.write(";")
}

func (p *printer) printReExportProperty(v *ir.ReExportProperty) {
	if v.IsStar {
		p.w.write("__exportStar(" + v.ModuleVar + ", exports);")
		return
	}
	p.w.write("exports." + v.ExportedName + " = " + v.ModuleVar + "." + v.ImportedName + ";")
}

func (p *printer) printExportInit(v *ir.ExportInit) {
	if len(v.Names) == 0 {
		return
	}
	p.w.write("exports.")
	for i, n := range v.Names {
		if i > 0 {
			p.w.write(" = exports.")
		}
		p.w.write(n)
	}
	p.w.write(" = void 0;")
}
