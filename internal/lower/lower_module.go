package lower

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// lowerImport implements spec.md §4.2's Import transformer: under a
// CommonJS-shaped module body the declaration itself contributes no direct
// per-node directive (the file-level ModuleWrapper's require/import preamble
// is synthesized from the import declarations themselves during conversion,
// in internal/convert/module.go); this
// pass's job is only to flag which interop helpers that preamble will need.
func (p *Pass) lowerImport(e *env, id ast.NodeId) {
	node := p.Arena.Node(id)
	imp, ok := node.Data.(*ast.ImportData)
	if !ok || imp.IsTypeOnly {
		return
	}

	if !p.Options.Module.UsesCommonJSBodyShape() {
		return
	}

	if imp.NamespaceName != "" {
		p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.ImportStar = true })
	}
	if imp.DefaultName != "" {
		p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.ImportDefault = true })
	}
	for _, spec := range imp.Named {
		if !spec.IsTypeOnly {
			p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.CreateBinding = true })
			break
		}
	}
}

// lowerExport implements spec.md §4.2's Export transformer: attach a
// CommonJSExport (or CommonJSExportDefaultExpr / CommonJSExportDefaultClassES5)
// directive to the wrapped declaration so the emitter prepends the right
// `exports.X = ...` assignment(s), and flags `__exportStar`/`__createBinding`
// for re-exports.
func (p *Pass) lowerExport(e *env, id ast.NodeId) {
	node := p.Arena.Node(id)
	exp, ok := node.Data.(*ast.ExportData)
	if !ok || exp.IsTypeOnly {
		return
	}

	if !p.Options.Module.UsesCommonJSBodyShape() {
		if exp.Decl.IsValid() {
			p.lowerStatement(e, exp.Decl)
		}
		if exp.Expr.IsValid() {
			p.lowerStatement(e, exp.Expr)
		}
		return
	}

	switch {
	case exp.ModuleSpecifier != "":
		// `export * from "mod"` / `export { a, b } from "mod"`.
		if len(exp.Names) == 0 {
			p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.ExportStar = true })
		} else {
			p.Ctx.NeedHelper(func(h *transform.HelperFlags) { h.CreateBinding = true })
		}

	case exp.IsExportEquals:
		// `export = expr` replaces the entire CommonJS exports object;
		// handled directly by the printer's module-wrapper epilogue, no
		// per-node directive needed beyond walking the expression.
		if exp.Expr.IsValid() {
			p.lowerStatement(e, exp.Expr)
		}

	case exp.Decl.IsValid():
		names := exportedNames(exp)
		declNode := p.Arena.Node(exp.Decl)
		if declNode.Kind == ast.KindClassDeclaration && isDefaultExportClass(declNode) {
			p.lowerClassDecl(e, exp.Decl)
			if inner, ok := p.Ctx.Get(exp.Decl); ok {
				if es5, isES5 := inner.(transform.ES5Class); isES5 {
					p.Ctx.Replace(exp.Decl, transform.CommonJSExportDefaultClassES5{
						ClassNode: exp.Decl,
						Inner:     es5,
					})
					return
				}
			}
			p.Ctx.Set(exp.Decl, transform.CommonJSExport{Names: names, IsDefault: true})
			return
		}

		p.lowerStatement(e, exp.Decl)
		p.Ctx.Set(exp.Decl, transform.CommonJSExport{Names: names})

	case exp.Expr.IsValid():
		p.lowerStatement(e, exp.Expr)
		p.Ctx.Set(exp.Expr, transform.CommonJSExportDefaultExpr{Expr: exp.Expr})
	}
}

func isDefaultExportClass(node *ast.Node) bool {
	cls, ok := node.Data.(*ast.ClassData)
	return ok && cls.IsDefault
}

func exportedNames(exp *ast.ExportData) []string {
	if len(exp.Names) == 0 {
		return nil
	}
	names := make([]string, 0, len(exp.Names))
	for _, n := range exp.Names {
		if !n.IsTypeOnly {
			names = append(names, n.ExportedName)
		}
	}
	return names
}
