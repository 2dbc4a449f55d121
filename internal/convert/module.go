package convert

import (
	"strconv"
	"strings"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/js_ident"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// buildModuleWrapper implements spec.md §4.2's Module wrapping for every
// non-ESM format. It classifies the file's top-level statements in one
// pass: import/re-export declarations are dropped from the body entirely
// and replaced by a synthesized require/exports preamble (internal/lower's
// lowerImport/lowerExport leave those declarations without a per-node
// directive on purpose, see lower_module.go); every other statement is
// converted normally, with local declaration exports already carrying their
// own CommonJSExport directive from lowering.
func (c *Converter) buildModuleWrapper(wrapper transform.ModuleWrapper, childIDs []ast.NodeId) ir.Node {
	preamble := []ir.Node{&ir.UseStrict{}, &ir.EsModuleMarker{}}

	var exportNames []string
	var depSpecifiers, depVarNames []string
	var bodyIDs []ast.NodeId
	var tail []ir.Node // `export = expr` lands here, after the body

	for _, id := range childIDs {
		node := c.Arena.Node(id)

		if imp, ok := node.Data.(*ast.ImportData); ok {
			if imp.IsTypeOnly {
				continue
			}
			varName := moduleVarName(imp.ModuleSpecifier, len(depSpecifiers)+1)
			depSpecifiers = append(depSpecifiers, imp.ModuleSpecifier)
			depVarNames = append(depVarNames, varName)

			wrap := ""
			if imp.NamespaceName != "" {
				wrap = "importStar"
			} else if imp.DefaultName != "" {
				wrap = "importDefault"
			}
			preamble = append(preamble, &ir.RequireStatement{VarName: varName, ModuleSpecifier: imp.ModuleSpecifier, Wrap: wrap})
			if imp.NamespaceName != "" {
				preamble = append(preamble, &ir.NamespaceImport{LocalName: imp.NamespaceName, ModuleVar: varName})
			}
			if imp.DefaultName != "" {
				preamble = append(preamble, &ir.DefaultImport{LocalName: imp.DefaultName, ModuleVar: varName})
			}
			for _, spec := range imp.Named {
				if spec.IsTypeOnly {
					continue
				}
				preamble = append(preamble, &ir.NamedImport{LocalName: spec.LocalName, ModuleVar: varName, ImportedName: spec.ImportedName})
			}
			continue
		}

		if exp, ok := node.Data.(*ast.ExportData); ok {
			if exp.IsTypeOnly {
				continue
			}

			if exp.ModuleSpecifier != "" {
				varName := moduleVarName(exp.ModuleSpecifier, len(depSpecifiers)+1)
				depSpecifiers = append(depSpecifiers, exp.ModuleSpecifier)
				depVarNames = append(depVarNames, varName)
				preamble = append(preamble, &ir.RequireStatement{VarName: varName, ModuleSpecifier: exp.ModuleSpecifier})
				if len(exp.Names) == 0 {
					preamble = append(preamble, &ir.ReExportProperty{ModuleVar: varName, IsStar: true})
				} else {
					for _, spec := range exp.Names {
						if spec.IsTypeOnly {
							continue
						}
						preamble = append(preamble, &ir.ReExportProperty{ExportedName: spec.ExportedName, ModuleVar: varName, ImportedName: spec.LocalName})
						exportNames = append(exportNames, spec.ExportedName)
					}
				}
				continue
			}

			if exp.IsExportEquals {
				tail = append(tail, &ir.ExportAssignment{Expr: c.convertNode(exp.Expr)})
				continue
			}

			switch {
			case len(exp.Names) > 0:
				for _, spec := range exp.Names {
					if !spec.IsTypeOnly {
						exportNames = append(exportNames, spec.ExportedName)
					}
				}
			case exp.Decl.IsValid():
				if name := c.declaredName(exp.Decl); name != "" {
					exportNames = append(exportNames, name)
				}
			case exp.Expr.IsValid():
				exportNames = append(exportNames, "default")
			}
			bodyIDs = append(bodyIDs, id)
			continue
		}

		bodyIDs = append(bodyIDs, id)
	}

	preamble = append(preamble, &ir.ExportInit{Names: exportNames})

	body := c.convertStatementList(bodyIDs)
	body = append(body, tail...)

	paramNames := make([]string, 0, len(depVarNames)+2)
	paramNames = append(paramNames, "require", "exports")
	paramNames = append(paramNames, depVarNames...)

	return &ir.ModuleWrapperIR{
		Format:     c.Options.Module,
		Deps:       depSpecifiers,
		ParamNames: paramNames,
		GlobalName: c.Options.GlobalName,
		Preamble:   preamble,
		Body:       body,
	}
}

// wrapExport applies a CommonJSExport directive to an already-rebuilt
// declaration: `exports.Name = Name;` for every exported name, plus
// `exports.default = Name;` when the export is also the file's default.
func (c *Converter) wrapExport(id ast.NodeId, declIR ir.Node, ew transform.CommonJSExport) ir.Node {
	names := ew.Names
	if len(names) == 0 {
		if n := c.declaredName(id); n != "" {
			names = []string{n}
		}
	}

	items := []ir.Node{declIR}
	for _, n := range names {
		items = append(items, exportAssignStmt(n, &ir.Identifier{Name: n}))
	}
	if ew.IsDefault {
		value := ir.Node(&ir.UndefinedLit{})
		if len(names) == 1 {
			value = &ir.Identifier{Name: names[0]}
		}
		items = append(items, exportAssignStmt("default", value))
	}
	return &ir.Sequence{Items: items}
}

// buildCommonJSExportDefaultExpr implements `export default <expr>;` where
// expr is not itself a declaration: `exports.default = <expr>;`. genericSplice
// is used instead of convertNode because the directive sits on Expr itself
// (self-referential, see internal/lower/lower_module.go), so convertNode
// would just find the same directive again.
func (c *Converter) buildCommonJSExportDefaultExpr(v transform.CommonJSExportDefaultExpr) ir.Node {
	return exportAssignStmt("default", c.genericSplice(v.Expr))
}

// buildCommonJSExportDefaultClassES5 implements `export default class {...}`
// at a target needing ES5 class lowering: the class IIFE is both named (if
// it has a name) and exported as the module's default.
func (c *Converter) buildCommonJSExportDefaultClassES5(v transform.CommonJSExportDefaultClassES5) ir.Node {
	classIIFE := c.buildES5Class(v.ClassNode, v.Inner)

	name := v.Inner.NameOverride
	if name == "" {
		if cls, ok := c.Arena.Node(v.ClassNode).Data.(*ast.ClassData); ok {
			name = cls.Name
		}
	}
	if name == "" {
		return exportAssignStmt("default", classIIFE)
	}

	return &ir.Sequence{Items: []ir.Node{
		&ir.VarStmt{Kind: "var", Decls: []ir.VarDecl{{Name: name, Init: classIIFE}}},
		exportAssignStmt("default", &ir.Identifier{Name: name}),
	}}
}

func exportAssignStmt(name string, value ir.Node) ir.Node {
	return &ir.ExprStmt{Expr: &ir.AssignExpr{
		Op:     "=",
		Target: &ir.DotExpr{Target: &ir.Identifier{Name: "exports"}, Property: name},
		Value:  value,
	}}
}

// declaredName recovers the single binding name a declaration introduces,
// used to fill in CommonJSExport.Names when lowering left it empty (the
// common `export function f(){}` / `export class C {}` shape, as opposed to
// an `export { a, b }` list which already carries its own names).
func (c *Converter) declaredName(declID ast.NodeId) string {
	switch d := c.Arena.Node(declID).Data.(type) {
	case *ast.FunctionData:
		return d.Name
	case *ast.ClassData:
		return d.Name
	case *ast.EnumData:
		return d.Name
	case *ast.NamespaceData:
		if len(d.NameParts) > 0 {
			return d.NameParts[0]
		}
	case *ast.VarDeclData:
		if len(d.Decls) > 0 {
			if g, ok := c.Arena.Node(d.Decls[0].Binding).Data.(*ast.GenericData); ok {
				return g.Text
			}
		}
	}
	return ""
}

// moduleVarName derives the `require("./foo")` binding name TSC would pick:
// the specifier's last path segment, forced into a valid identifier, with a
// `_N` suffix to disambiguate repeated basenames (TSC's own scheme).
func moduleVarName(specifier string, index int) string {
	base := specifier
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, ".js")
	base = strings.TrimSuffix(base, ".ts")
	base = js_ident.ForceValidIdentifier(base)
	if base == "" {
		base = "mod"
	}
	return base + "_" + strconv.Itoa(index)
}
