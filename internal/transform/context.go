package transform

import "github.com/tsdownlevel/tsdownlevel/internal/ast"

// HelperFlags records which runtime helpers (spec.md §3, §6) a file needs.
// Populated distinguishes "lowering has not run yet" from "lowering ran and
// found nothing to flag", per spec.md's note that the bit "keep[s] the
// contract explicit." Flags are monotonic: Context.NeedHelper only ever
// turns a flag on.
type HelperFlags struct {
	Populated bool

	Extends              bool
	Assign               bool
	Awaiter              bool
	Generator            bool
	Values               bool
	SpreadArray          bool
	Rest                 bool
	ClassPrivateFieldGet bool
	ClassPrivateFieldSet bool
	ClassPrivateFieldIn  bool
	ImportStar           bool
	ImportDefault        bool
	ExportStar           bool
	CreateBinding        bool
	MakeTemplateObject   bool
}

// Context is the transform context: a per-file side table produced by one
// run of the lowering pass (internal/lower) and consumed read-only by one
// emission pass (internal/printer). See spec.md §3, "Lifecycle".
type Context struct {
	directives map[ast.NodeId]Directive
	Helpers    HelperFlags

	// thisCaptureScopes maps the node id of a non-arrow function (or
	// namespace, or the source file root) to the capture-variable name
	// (`_this`, `_this_1`, ...) that must be injected as its body's first
	// statement.
	thisCaptureScopes map[ast.NodeId]string

	// argumentsCaptureScopes is the `_arguments` analogue.
	argumentsCaptureScopes map[ast.NodeId]string

	// declaredNames tracks, per enclosing scope (source file root or a
	// namespace body), which identifiers have already been declared by a
	// class/enum/function/earlier-namespace — used to suppress duplicate
	// `var` emission for merged declarations (spec.md §3 invariants).
	declaredNames map[ast.NodeId]map[string]bool
}

// NewContext allocates an empty transform context.
func NewContext() *Context {
	return &Context{
		directives:             make(map[ast.NodeId]Directive),
		thisCaptureScopes:       make(map[ast.NodeId]string),
		argumentsCaptureScopes:  make(map[ast.NodeId]string),
		declaredNames:           make(map[ast.NodeId]map[string]bool),
	}
}

// Set registers a directive for id. If a directive is already present, the
// two are composed into a Chain with `next` appended after the existing
// entry (spec.md: "Merging... wrap both in Chain with deterministic order
// (inner-most first)" — the lowering pass calls Set in the order it wants
// directives to end up applied, so append-after-existing preserves that
// order without Set itself needing to know which transform is "more
// inner").
func (c *Context) Set(id ast.NodeId, next Directive) {
	existing, ok := c.directives[id]
	if !ok {
		c.directives[id] = next
		return
	}
	if chain, isChain := existing.(Chain); isChain {
		c.directives[id] = Chain{Directives: append(chain.Directives, next)}
		return
	}
	c.directives[id] = Chain{Directives: []Directive{existing, next}}
}

// Replace overwrites whatever directive (if any) is registered for id,
// rather than chaining. Used when a later transformer subsumes an earlier
// one's directive entirely (e.g. CommonJSExportDefaultClassES5 already
// embeds the ES5Class directive lowerClassDecl registered first).
func (c *Context) Replace(id ast.NodeId, d Directive) {
	c.directives[id] = d
}

// Get returns the directive registered for id, or (nil, false) for Identity.
func (c *Context) Get(id ast.NodeId) (Directive, bool) {
	d, ok := c.directives[id]
	return d, ok
}

// NeedHelper turns on a runtime-helper flag. Safe to call repeatedly; the
// first call also flips Populated so the "no helpers needed" state stays
// distinguishable from "lowering hasn't run."
func (c *Context) NeedHelper(mark func(*HelperFlags)) {
	c.Helpers.Populated = true
	mark(&c.Helpers)
}

// MarkLowered is called once, unconditionally, at the start of lowering a
// file, so a file that needs no directives at all still reports
// Helpers.Populated == true rather than looking like lowering never ran.
func (c *Context) MarkLowered() {
	c.Helpers.Populated = true
}

// SetThisCapture records that the body of enclosing scope node `scope` must
// receive `var <name> = this;` as its first statement.
func (c *Context) SetThisCapture(scope ast.NodeId, name string) {
	c.thisCaptureScopes[scope] = name
}

// ThisCapture returns the capture variable name for `scope`, if any.
func (c *Context) ThisCapture(scope ast.NodeId) (string, bool) {
	name, ok := c.thisCaptureScopes[scope]
	return name, ok
}

// SetArgumentsCapture is the `arguments` analogue of SetThisCapture.
func (c *Context) SetArgumentsCapture(scope ast.NodeId, name string) {
	c.argumentsCaptureScopes[scope] = name
}

// ArgumentsCapture returns the capture variable name for `scope`, if any.
func (c *Context) ArgumentsCapture(scope ast.NodeId) (string, bool) {
	name, ok := c.argumentsCaptureScopes[scope]
	return name, ok
}

// DeclareName records that `name` has been declared by a class, enum,
// function, or earlier namespace within `scope` (the enclosing source file
// or namespace body). Returns false if the name was already declared,
// which the namespace transformer uses to decide should_declare_var.
func (c *Context) DeclareName(scope ast.NodeId, name string) (firstDeclaration bool) {
	names, ok := c.declaredNames[scope]
	if !ok {
		names = make(map[string]bool)
		c.declaredNames[scope] = names
	}
	if names[name] {
		return false
	}
	names[name] = true
	return true
}

// IsDeclared reports whether `name` has already been declared within `scope`
// without also declaring it (a read-only probe used before committing to a
// should_declare_var decision).
func (c *Context) IsDeclared(scope ast.NodeId, name string) bool {
	return c.declaredNames[scope][name]
}
