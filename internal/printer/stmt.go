package printer

import (
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// printStmtList prints every item of a statement list, one per line, at the
// writer's current indentation.
func (p *printer) printStmtList(items []ir.Node) {
	for _, item := range items {
		p.printStmt(item)
	}
}

// printBlock prints `{ ...stmts... }` with stmts indented one level further
// than the writer's current indentation, leaving the cursor immediately
// after the closing brace (no trailing newline — the caller's printStmt adds
// one once the whole statement, e.g. `if (...) { ... }`, is complete).
func (p *printer) printBlock(stmts []ir.Node) {
	p.w.write("{")
	p.w.writeNewline()
	p.w.increaseIndent()
	p.printStmtList(stmts)
	p.w.decreaseIndent()
	p.w.writeIndent()
	p.w.write("}")
}

// printStmt prints one statement-position IR node, indented, terminated by
// a newline (spec.md §4.3: "Deterministic recursive printer").
func (p *printer) printStmt(n ir.Node) {
	if n == nil {
		return
	}
	p.w.writeIndent()
	p.printStmtInline(n)
	p.w.writeNewline()
}

// printStmtInline prints a statement's content without the surrounding
// indent/newline bookkeeping printStmt adds; used both by printStmt and by
// constructs (NamespaceIIFE bodies, generator case bodies, ...) that need to
// interleave statement content with other text on the same logical line.
func (p *printer) printStmtInline(n ir.Node) {
	switch v := n.(type) {
	case *ir.Block:
		p.printBlock(v.Stmts)

	case *ir.VarStmt:
		p.printVarStmt(v)

	case *ir.ExprStmt:
		p.printExprPrec(v.Expr, LLowest)
		p.w.write(";")

	case *ir.IfStmt:
		p.w.write("if (")
		p.printExprPrec(v.Test, LLowest)
		p.w.write(") ")
		p.printStmtAsBody(v.Then)
		if v.Else != nil {
			p.w.write(" else ")
			p.printStmtAsBody(v.Else)
		}

	case *ir.ForStmt:
		p.w.write("for (")
		if v.Init != nil {
			p.printForClause(v.Init)
		}
		p.w.write("; ")
		if v.Test != nil {
			p.printExprPrec(v.Test, LLowest)
		}
		p.w.write("; ")
		if v.Update != nil {
			p.printExprPrec(v.Update, LLowest)
		}
		p.w.write(") ")
		p.printStmtAsBody(v.Body)

	case *ir.ForInStmt:
		p.w.write("for (")
		if v.Kind != "" {
			p.w.write(v.Kind)
			p.w.write(" ")
		}
		p.w.write(v.Name)
		p.w.write(" in ")
		p.printExprPrec(v.Obj, LLowest)
		p.w.write(") ")
		p.printStmtAsBody(v.Body)

	case *ir.WhileStmt:
		p.w.write("while (")
		p.printExprPrec(v.Test, LLowest)
		p.w.write(") ")
		p.printStmtAsBody(v.Body)

	case *ir.DoWhileStmt:
		p.w.write("do ")
		p.printStmtAsBody(v.Body)
		p.w.write(" while (")
		p.printExprPrec(v.Test, LLowest)
		p.w.write(");")

	case *ir.ReturnStmt:
		if v.Value == nil {
			p.w.write("return;")
		} else {
			p.w.write("return ")
			p.printExprPrec(v.Value, LLowest)
			p.w.write(";")
		}

	case *ir.ThrowStmt:
		p.w.write("throw ")
		p.printExprPrec(v.Value, LLowest)
		p.w.write(";")

	case *ir.TryStmt:
		p.w.write("try ")
		p.printBlock(v.Try)
		if v.HasCatch {
			p.w.write(" catch ")
			if v.CatchParam != "" {
				p.w.write("(")
				p.w.write(v.CatchParam)
				p.w.write(") ")
			}
			p.printBlock(v.Catch)
		}
		if v.HasFinally {
			p.w.write(" finally ")
			p.printBlock(v.Finally)
		}

	case *ir.SwitchStmt:
		p.w.write("switch (")
		p.printExprPrec(v.Discriminant, LLowest)
		p.w.write(") {")
		p.w.writeNewline()
		for _, c := range v.Cases {
			p.w.writeIndent()
			if c.Test == nil {
				p.w.write("default:")
			} else {
				p.w.write("case ")
				p.printExprPrec(c.Test, LLowest)
				p.w.write(":")
			}
			p.w.writeNewline()
			p.w.increaseIndent()
			p.printStmtList(c.Body)
			p.w.decreaseIndent()
		}
		p.w.writeIndent()
		p.w.write("}")

	case *ir.BreakStmt:
		if v.Label == "" {
			p.w.write("break;")
		} else {
			p.w.write("break " + v.Label + ";")
		}

	case *ir.ContinueStmt:
		if v.Label == "" {
			p.w.write("continue;")
		} else {
			p.w.write("continue " + v.Label + ";")
		}

	case *ir.LabeledStmt:
		p.w.write(v.Label)
		p.w.write(": ")
		p.printStmtAsBody(v.Body)

	case *ir.EmptyStatement:
		p.w.write(";")

	case *ir.Comment:
		p.printCommentInline(v)

	case *ir.Raw:
		p.w.write(v.Text)

	case *ir.ASTRef:
		p.addMappingForNode(v.Id)
		p.w.write(p.arena.Text(v.Id))

	case *ir.Sequence:
		p.printSequenceAsStmtList(v.Items)

	// Synthetic, statement-shaped composites.
	case *ir.ES5ClassIIFE:
		p.printES5ClassIIFE(v)
	case *ir.ExtendsHelper:
		p.w.write("__extends(" + v.ClassName + ", _super);")
	case *ir.PrototypeMethod:
		p.printPrototypeMethod(v)
	case *ir.StaticMethod:
		p.printStaticMethod(v)
	case *ir.DefineProperty:
		p.printDefineProperty(v)
	case *ir.WeakMapSet:
		p.printExprPrec(v.Target, LCall)
		p.w.write(".set(this, ")
		p.printExprPrec(v.Value, LComma)
		p.w.write(");")
	case *ir.NamespaceIIFE:
		p.printNamespaceIIFE(v)
	case *ir.EnumIIFE:
		p.printEnumIIFE(v)
	case *ir.ForOfIteratorLoop:
		p.printForOfIteratorLoop(v)
	case *ir.UseStrict:
		p.w.write(`"use strict";`)
	case *ir.EsModuleMarker:
		p.w.write(`Object.defineProperty(exports, "__esModule", { value: true });`)
	case *ir.RequireStatement:
		p.printRequireStatement(v)
	case *ir.NamedImport:
		p.w.write("var " + v.LocalName + " = " + v.ModuleVar + "." + v.ImportedName + ";")
	case *ir.DefaultImport:
		p.w.write("var " + v.LocalName + " = " + v.ModuleVar + ".default;")
	case *ir.NamespaceImport:
		p.w.write("var " + v.LocalName + " = " + v.ModuleVar + ";")
	case *ir.ExportAssignment:
		p.w.write("module.exports = ")
		p.printExprPrec(v.Expr, LComma)
		p.w.write(";")
	case *ir.ReExportProperty:
		p.printReExportProperty(v)
	case *ir.ExportInit:
		p.printExportInit(v)
	case *ir.ModuleWrapperIR:
		// Only reachable when a module wrapper ends up nested (it never
		// does today, since ConvertFile only ever produces one at the
		// file root); printStmt still has to handle it defensively rather
		// than panic, per spec.md §7.3 reserving panics for genuine
		// internal inconsistencies.
		p.printModuleWrapper(v, transform.HelperFlags{})

	default:
		// Any expression-shaped node reaching statement position (the
		// generator-body opcode shapes, mostly) prints as a bare
		// expression statement.
		p.printExprPrec(n, LLowest)
		p.w.write(";")
	}
}

// printStmtAsBody prints a statement used as a control-flow body (`if`,
// `for`, `while`, labeled statement): a Block prints inline without its own
// indent/newline wrapper (so `} else {` stays on one line), anything else
// recurses into a fresh indented line.
func (p *printer) printStmtAsBody(n ir.Node) {
	if block, ok := n.(*ir.Block); ok {
		p.printBlock(block.Stmts)
		return
	}
	p.w.increaseIndent()
	p.w.writeNewline()
	p.w.writeIndent()
	p.printStmtInline(n)
	p.w.decreaseIndent()
}

// printSequenceAsStmtList flattens a Sequence used in statement position
// (genericSplice's output, or a multi-statement directive expansion like
// CommonJSExport's wrapExport) into one printStmt per item rather than
// treating the whole thing as a single inline unit.
func (p *printer) printSequenceAsStmtList(items []ir.Node) {
	for i, item := range items {
		if i > 0 {
			p.w.writeNewline()
			p.w.writeIndent()
		}
		p.printStmtInline(item)
	}
}

// printForClause prints a for-loop's init clause, which is either a VarStmt
// (sans trailing semicolon/newline) or a bare expression.
func (p *printer) printForClause(n ir.Node) {
	if v, ok := n.(*ir.VarStmt); ok {
		p.printVarDecls(v.Kind, v.Decls)
		return
	}
	p.printExprPrec(n, LLowest)
}

func (p *printer) printVarStmt(v *ir.VarStmt) {
	p.printVarDecls(v.Kind, v.Decls)
	p.w.write(";")
}

func (p *printer) printVarDecls(kind string, decls []ir.VarDecl) {
	p.w.write(kind)
	p.w.write(" ")
	for i, d := range decls {
		if i > 0 {
			p.w.write(", ")
		}
		p.w.write(d.Name)
		if d.Init != nil {
			p.w.write(" = ")
			p.printExprPrec(d.Init, LAssign)
		}
	}
}

func (p *printer) printCommentInline(c *ir.Comment) {
	if p.options.RemoveComments {
		return
	}
	if c.Block {
		p.w.write("/*" + c.Text + "*/")
	} else {
		p.w.write("//" + c.Text)
	}
}
