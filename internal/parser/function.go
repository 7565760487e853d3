package parser

import (
	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/token"
)

// parseParameterList parses `( BindingElement (',' BindingElement)* ','? )`,
// shared by function declarations/expressions, methods, and arrow functions.
func parseParameterList(c *Cursor, b *ast.Builder) []ast.NodeID {
	opening := c.Expect(token.LParen)
	params := ParseCommaList(c, pctx.Parameters, token.RParen,
		func(k token.Kind) bool {
			return k == token.Ellipsis || k == token.LBrace || k == token.LBracket || k.IsIdentifierName()
		},
		func() (ast.NodeID, bool) { return parseBindingElement(c, b), true })
	c.ExpectClosing(token.RParen, opening)
	checkRestElementPosition(c, b, params)
	return params
}

// checkRestElementPosition reports a rest element that is not the final
// entry of its list, and a trailing comma recorded after a final rest
// element — both invalid positions the grammar itself cannot rule out
// while the list is still being accumulated.
func checkRestElementPosition(c *Cursor, b *ast.Builder, elems []ast.NodeID) {
	for i, id := range elems {
		n := b.Get(id)
		if n == nil || n.Kind != ast.RestElement {
			continue
		}
		if i != len(elems)-1 {
			c.Fault(diag.SynRestElementNotLast, n.Span, "a rest element must be the last element")
			continue
		}
		if comma, ok := c.State.TrailingCommas[n.Span.Start]; ok {
			c.Fault(diag.SynTrailingCommaAfterRest, comma, "a rest element may not have a trailing comma")
		}
	}
}

// parseFunctionBody parses a function's `{ ... }` block, parsing its
// statement list under the FunctionBody parsing context, which synchronizes
// exactly like an ordinary block's BlockStatements — functions differ only in the grammar parameters active
// inside, which callers set on Cursor.GCtx before calling this.
func parseFunctionBody(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	if !c.At(token.LBrace) {
		c.Fault(diag.SynExpectedToken, c.Cur().Span, "expected a function body")
		return b.DummyFunctionBody(c.Cur().Span)
	}
	opening := c.Expect(token.LBrace)
	stmts := parseStatementList(c, b, pctx.FunctionBody)
	c.ExpectClosing(token.RBrace, opening)
	return b.Node(ast.BlockStmt, c.SpanSince(start), stmts...)
}

func parseBindingElement(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	if c.At(token.Ellipsis) {
		c.Bump()
		target := parseBindingTarget(c, b)
		return b.Node(ast.RestElement, c.SpanSince(start), target)
	}
	target := parseBindingTarget(c, b)
	if c.TS && c.At(token.Question) {
		c.Bump()
	}
	if c.TS && c.At(token.Colon) {
		target = parseTypeAnnotation(c, b, target, start)
	}
	if c.At(token.Assign) {
		c.Bump()
		ep := &exprParser{c: c, b: b}
		def := ep.ParseAssignment()
		return b.Node(ast.AssignmentPattern, c.SpanSince(start), target, def)
	}
	return b.Node(ast.Param, c.SpanSince(start), target)
}

// parseBindingTarget parses BindingIdentifier, ObjectBindingPattern, or
// ArrayBindingPattern.
func parseBindingTarget(c *Cursor, b *ast.Builder) ast.NodeID {
	switch {
	case c.At(token.LBrace):
		return parseObjectBindingPattern(c, b)
	case c.At(token.LBracket):
		return parseArrayBindingPattern(c, b)
	default:
		ep := &exprParser{c: c, b: b}
		return ep.parseBindingIdentifier()
	}
}

func parseObjectBindingPattern(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Expect(token.LBrace)
	props := ParseCommaList(c, pctx.ObjectLiteralMembers, token.RBrace,
		func(k token.Kind) bool { return k == token.Ellipsis || k.IsIdentifierName() || k == token.LBracket },
		func() (ast.NodeID, bool) { return parseObjectBindingProperty(c, b), true })
	c.ExpectClosing(token.RBrace, opening)
	checkRestElementPosition(c, b, props)
	return b.Node(ast.ObjectPattern, c.SpanSince(start), props...)
}

func parseObjectBindingProperty(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	if c.At(token.Ellipsis) {
		c.Bump()
		target := parseBindingTarget(c, b)
		if tn := b.Get(target); tn != nil && tn.Kind != ast.Identifier {
			c.Fault(diag.SynRestInNestedPattern, tn.Span, "an object rest target must be a plain identifier")
		}
		return b.Node(ast.RestElement, c.SpanSince(start), target)
	}
	ep := &exprParser{c: c, b: b}
	computed := false
	var key ast.NodeID
	if c.At(token.LBracket) {
		computed = true
		opening := c.Bump().Span
		key = ep.ParseAssignment()
		c.ExpectClosing(token.RBracket, opening)
	} else {
		key = ep.parsePropertyKeyLiteral()
	}
	flags := uint32(0)
	if computed {
		flags |= ast.FlagComputed
	}
	if c.At(token.Colon) {
		c.Bump()
		value := parseBindingTarget(c, b)
		if c.At(token.Assign) {
			c.Bump()
			def := ep.ParseAssignment()
			value = b.Node(ast.AssignmentPattern, c.SpanSince(start), value, def)
		}
		return b.FlaggedNode(ast.Property, c.SpanSince(start), flags, key, value)
	}
	if c.At(token.Assign) {
		c.Bump()
		def := ep.ParseAssignment()
		value := b.Node(ast.AssignmentPattern, c.SpanSince(start), key, def)
		return b.FlaggedNode(ast.Property, c.SpanSince(start), flags, key, value)
	}
	return b.FlaggedNode(ast.Property, c.SpanSince(start), flags, key)
}

func parseArrayBindingPattern(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Expect(token.LBracket)
	elems := ParseCommaList(c, pctx.ArrayLiteralMembers, token.RBracket,
		func(k token.Kind) bool {
			return k == token.Comma || k == token.Ellipsis || k == token.LBrace || k == token.LBracket || k.IsIdentifierName()
		},
		func() (ast.NodeID, bool) {
			elStart := c.StartMark()
			if c.At(token.Comma) {
				return b.Leaf(ast.Invalid, c.Span(elStart, elStart)), true
			}
			return parseBindingElement(c, b), true
		})
	c.ExpectClosing(token.RBracket, opening)
	checkRestElementPosition(c, b, elems)
	return b.Node(ast.ArrayPattern, c.SpanSince(start), elems...)
}
