package convert

import (
	"strings"

	"github.com/tsdownlevel/tsdownlevel/internal/ast"
	"github.com/tsdownlevel/tsdownlevel/internal/ir"
	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

// buildES5TemplateLiteral implements spec.md §4.2's Template literal
// transformer. The generic catch-all payload holds the substitution
// expressions as Children in source order (the tag expression prepended as
// Children[0] for a tagged template); the cooked string segments between
// substitutions are recovered by slicing the original source text between
// each substitution's span, since this simplified arena has no dedicated
// quasi/cooked-string node of its own. Escape-sequence processing is not
// modeled: Cooked and Raw are identical here.
func (c *Converter) buildES5TemplateLiteral(id ast.NodeId, v transform.ES5TemplateLiteral) ir.Node {
	node := c.Arena.Node(id)
	g, ok := node.Data.(*ast.GenericData)
	if !ok {
		return &ir.ASTRef{Id: id}
	}

	isTagged := node.Kind == ast.KindTaggedTemplateExpression
	children := g.Children
	var tagID ast.NodeId
	subs := children
	if isTagged && len(children) > 0 {
		tagID = children[0]
		subs = children[1:]
	}

	src := c.Arena.Source
	cursor := node.Span.Pos
	parts := make([]string, 0, len(subs)+1)
	exprs := make([]ir.Node, 0, len(subs))
	for _, sub := range subs {
		span := c.Arena.Node(sub).Span
		parts = append(parts, src[cursor:span.Pos])
		exprs = append(exprs, c.convertNode(sub))
		cursor = span.End
	}
	parts = append(parts, src[cursor:node.Span.End])

	cooked := make([]string, len(parts))
	for i, p := range parts {
		cooked[i] = stripTemplateDelimiters(p, i == 0, i == len(parts)-1)
	}

	if !isTagged {
		return &ir.TemplateConcat{Parts: cooked, Exprs: exprs}
	}

	var tag, thisArg ir.Node
	if tagID.IsValid() {
		tag = c.convertNode(tagID)
		if dot, ok := tag.(*ir.DotExpr); ok {
			thisArg = dot.Target
		}
	}
	return &ir.TaggedTemplateCall{Tag: tag, ThisArg: thisArg, Cooked: cooked, Raw: cooked, Exprs: exprs}
}

// stripTemplateDelimiters trims the backtick/`${`/`}` punctuation from one
// source-text segment between two substitution boundaries (or the template's
// own start/end).
func stripTemplateDelimiters(s string, first, last bool) string {
	if first {
		s = strings.TrimPrefix(s, "`")
	} else {
		s = strings.TrimPrefix(s, "}")
	}
	if last {
		s = strings.TrimSuffix(s, "`")
	} else {
		s = strings.TrimSuffix(s, "${")
	}
	return s
}
