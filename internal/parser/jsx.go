package parser

import (
	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

// parseJSXElementOrFragment parses a JSX element or fragment starting at
// the current `<` token, reached from parsePrimary when p.c.JSX is set and
// the token could not otherwise begin a relational/type-argument
// expression.
func (p *exprParser) parseJSXElementOrFragment() ast.NodeID {
	start := p.c.StartMark()
	ltSpan := p.c.Cur().Span
	p.c.Bump() // '<'
	if p.c.At(token.Gt) {
		return parseJSXFragment(p.c, p.b, start, ltSpan)
	}
	return parseJSXElement(p.c, p.b, start, ltSpan)
}

func parseJSXFragment(c *Cursor, b *ast.Builder, start uint32, ltSpan source.Span) ast.NodeID {
	c.Bump() // '>'
	children := parseJSXChildren(c, b)
	c.Expect(token.Lt)
	c.Expect(token.Slash)
	c.ExpectClosing(token.Gt, ltSpan)
	return b.Node(ast.JSXFragment, c.SpanSince(start), children...)
}

func parseJSXElement(c *Cursor, b *ast.Builder, start uint32, ltSpan source.Span) ast.NodeID {
	name := parseJSXNameOrMember(c, b)
	attrs := parseJSXAttributes(c, b)
	openingChildren := append([]ast.NodeID{name}, attrs...)

	if c.At(token.Slash) {
		c.Bump()
		c.ExpectClosing(token.Gt, ltSpan)
		opening := b.FlaggedNode(ast.JSXOpeningElement, c.SpanSince(start), ast.FlagSelfClosing, openingChildren...)
		return b.Node(ast.JSXElement, c.SpanSince(start), opening)
	}

	c.ExpectClosing(token.Gt, ltSpan)
	opening := b.Node(ast.JSXOpeningElement, c.SpanSince(start), openingChildren...)

	children := parseJSXChildren(c, b)

	closingStart := c.StartMark()
	closingLt := c.Cur().Span
	c.Expect(token.Lt)
	c.Expect(token.Slash)
	var closingName ast.NodeID
	if !c.At(token.Gt) {
		closingName = parseJSXNameOrMember(c, b)
	}
	c.ExpectClosing(token.Gt, closingLt)
	var closingChildren []ast.NodeID
	if closingName.IsValid() {
		closingChildren = append(closingChildren, closingName)
	}
	closing := b.Node(ast.JSXClosingElement, c.SpanSince(closingStart), closingChildren...)

	all := append([]ast.NodeID{opening}, children...)
	all = append(all, closing)
	return b.Node(ast.JSXElement, c.SpanSince(start), all...)
}

// parseJSXChildren parses the run of text/expression-container/element
// children between an opening tag's `>` and the next closing tag, switching
// the lexer's JSX-text mode on and off around each raw text run.
func parseJSXChildren(c *Cursor, b *ast.Builder) []ast.NodeID {
	c.Stack.Push(pctx.JsxChildren)
	defer c.Stack.Pop()

	var children []ast.NodeID
	for {
		text := c.SetJSXTextMode(true)
		if text.Span.End > text.Span.Start {
			children = append(children, b.LeafText(ast.JSXText, text.Span, text.Text))
		}
		c.SetJSXTextMode(false)

		switch {
		case c.At(token.LBrace):
			children = append(children, parseJSXExpressionContainer(c, b))
		case c.At(token.Lt):
			if c.PeekKind() == token.Slash {
				return children
			}
			ep := &exprParser{c: c, b: b}
			children = append(children, ep.parseJSXElementOrFragment())
		default:
			return children
		}
	}
}

func parseJSXExpressionContainer(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Expect(token.LBrace)
	var inner ast.NodeID
	if c.At(token.RBrace) {
		inner = b.Leaf(ast.JSXEmptyExpr, c.Cur().Span.Before())
	} else {
		ep := &exprParser{c: c, b: b}
		inner = ep.ParseAssignment()
	}
	c.ExpectClosing(token.RBrace, opening)
	return b.Node(ast.JSXExpressionContainer, c.SpanSince(start), inner)
}

func parseJSXName(c *Cursor, b *ast.Builder) ast.NodeID {
	tok := c.ReLexJSXIdentifier()
	c.Bump()
	return b.LeafText(ast.JSXIdentifier, tok.Span, tok.Text)
}

// parseJSXNameOrMember parses a tag or attribute name, including the
// dotted-member form (`Foo.Bar.Baz`) JSX permits in element position.
func parseJSXNameOrMember(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	name := parseJSXName(c, b)
	for c.At(token.Dot) {
		c.Bump()
		prop := parseJSXName(c, b)
		name = b.Node(ast.JSXMemberExpr, c.SpanSince(start), name, prop)
	}
	return name
}

func parseJSXAttributes(c *Cursor, b *ast.Builder) []ast.NodeID {
	return ParseList(c, pctx.JsxAttributes,
		func(k token.Kind) bool { return k == token.LBrace || k.IsIdentifierName() },
		func() (ast.NodeID, bool) {
			if c.At(token.LBrace) {
				return parseJSXSpreadAttribute(c, b), true
			}
			return parseJSXAttribute(c, b), true
		})
}

func parseJSXAttribute(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	name := parseJSXNameOrMember(c, b)
	if !c.At(token.Assign) {
		return b.Node(ast.JSXAttribute, c.SpanSince(start), name)
	}
	c.Bump() // '='
	var value ast.NodeID
	switch {
	case c.At(token.StringLit):
		tok := c.Bump()
		value = b.LeafText(ast.StringLiteral, tok.Span, tok.Text)
	case c.At(token.LBrace):
		value = parseJSXExpressionContainer(c, b)
	case c.At(token.Lt):
		ep := &exprParser{c: c, b: b}
		value = ep.parseJSXElementOrFragment()
	default:
		c.Fault(diag.SynExpectedToken, c.Cur().Span, "expected a JSX attribute value")
		value = b.Dummy(c.Cur().Span)
	}
	return b.Node(ast.JSXAttribute, c.SpanSince(start), name, value)
}

func parseJSXSpreadAttribute(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Expect(token.LBrace)
	c.Expect(token.Ellipsis)
	ep := &exprParser{c: c, b: b}
	arg := ep.ParseAssignment()
	c.ExpectClosing(token.RBrace, opening)
	return b.Node(ast.JSXSpreadAttribute, c.SpanSince(start), arg)
}
