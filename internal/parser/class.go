package parser

import (
	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/token"
)

// parseClassTail parses everything after the `class` keyword: an optional
// name, type parameters, heritage clauses, and the class body. Shared by
// class declarations (requireName true) and class expressions (false),
// where start is the mark taken at `class` itself.
func parseClassTail(c *Cursor, b *ast.Builder, start uint32, kind ast.Kind, requireName bool) ast.NodeID {
	var children []ast.NodeID

	var name ast.NodeID
	if c.Cur().Kind.IsIdentifierName() && !c.AtAny(token.KwExtends, token.KwImplements) {
		ep := &exprParser{c: c, b: b}
		name = ep.parseBindingIdentifier()
		children = append(children, name)
	} else if requireName {
		c.Fault(diag.SynExpectedToken, c.Cur().Span, "expected a class name")
		name = b.Dummy(c.Cur().Span)
		children = append(children, name)
	}

	if c.At(token.Lt) {
		children = append(children, parseTypeParameterDecl(c, b))
	}

	if c.At(token.KwExtends) {
		hStart := c.StartMark()
		c.Bump()
		ep := &exprParser{c: c, b: b}
		super := ep.parseLeftHandSide()
		if c.At(token.Lt) {
			super = appendTypeArguments(c, b, super, hStart)
		}
		children = append(children, b.Node(ast.TSHeritageClause, c.SpanSince(hStart), super))
	}

	if c.At(token.KwImplements) {
		hStart := c.StartMark()
		c.Bump()
		impls := ParseCommaList(c, pctx.TypeMembers, token.LBrace,
			func(k token.Kind) bool { return k.IsIdentifierName() },
			func() (ast.NodeID, bool) { return parseTypeReference(c, b), true })
		children = append(children, b.Node(ast.TSHeritageClause, c.SpanSince(hStart), impls...))
	}

	body := parseClassBody(c, b)
	children = append(children, body)
	return b.Node(kind, c.SpanSince(start), children...)
}

func parseClassBody(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Expect(token.LBrace)
	members := ParseList(c, pctx.ClassMembers,
		func(k token.Kind) bool {
			return k != token.RBrace && k != token.Semicolon
		},
		func() (ast.NodeID, bool) { return parseClassMember(c, b) })
	c.ExpectClosing(token.RBrace, opening)
	return b.Node(ast.ClassBody, c.SpanSince(start), members...)
}

func parseClassMember(c *Cursor, b *ast.Builder) (ast.NodeID, bool) {
	start := c.StartMark()
	if c.At(token.Semicolon) {
		c.Bump()
		return ast.NoNodeID, false
	}

	var decorators []ast.NodeID
	for c.At(token.At) {
		decorators = append(decorators, parseDecorator(c, b))
	}

	if c.At(token.LBrace) {
		body := parseFunctionBody(c, b)
		return b.Node(ast.StaticBlock, c.SpanSince(start), body), true
	}

	var flags uint32
	for isModifierKeyword(c.Cur().Text) {
		if c.Cur().Text == "static" && c.PeekKind() == token.LBrace {
			c.Bump()
			body := parseFunctionBody(c, b)
			return b.Node(ast.StaticBlock, c.SpanSince(start), body), true
		}
		if !modifierLooksLikeModifier(c) {
			break
		}
		switch c.Cur().Text {
		case "static":
			flags |= ast.FlagStatic
		case "abstract":
			flags |= ast.FlagAbstract
		case "readonly":
			flags |= ast.FlagReadonly
		case "public", "private", "protected", "override":
			// Consumed but not recorded; access control is a semantic
			// concern, not a tree shape.
		}
		c.Bump()
	}

	isAsync := false
	if c.Cur().Text == "async" && modifierLooksLikeModifier(c) {
		isAsync = true
		c.Bump()
	}
	isGenerator := false
	if c.At(token.Star) {
		isGenerator = true
		c.Bump()
	}
	accessor := ""
	if (c.Cur().Text == "get" || c.Cur().Text == "set") && c.PeekKind() != token.LParen && c.PeekKind() != token.Assign && c.PeekKind() != token.Semicolon {
		accessor = c.Cur().Text
		c.Bump()
	}

	ep := &exprParser{c: c, b: b}
	computed := false
	var key ast.NodeID
	switch {
	case c.At(token.LBracket):
		computed = true
		opening := c.Bump().Span
		key = ep.ParseAssignment()
		c.ExpectClosing(token.RBracket, opening)
	case c.At(token.PrivateIdent):
		tok := c.Bump()
		key = b.LeafText(ast.PrivateIdentifier, tok.Span, tok.Text)
	default:
		key = ep.parsePropertyKeyLiteral()
	}
	if computed {
		flags |= ast.FlagComputed
	}
	if isAsync {
		flags |= ast.FlagAsync
	}
	if isGenerator {
		flags |= ast.FlagGenerator
	}

	if c.TS && c.At(token.Question) {
		flags |= ast.FlagOptional
		c.Bump()
	}

	if c.At(token.LParen) || c.At(token.Lt) {
		var typeParams ast.NodeID
		if c.At(token.Lt) {
			typeParams = parseTypeParameterDecl(c, b)
		}
		params := parseParameterList(c, b)
		var returnType ast.NodeID
		if c.TS && c.At(token.Colon) {
			c.Bump()
			returnType = parseType(c, b)
		}
		savedGCtx := c.GCtx
		c.GCtx = c.GCtx.WithAwait(isAsync).WithYield(isGenerator).WithReturn(true)
		var body ast.NodeID
		if c.At(token.LBrace) {
			body = parseFunctionBody(c, b)
		}
		c.GCtx = savedGCtx
		children := []ast.NodeID{key}
		if typeParams.IsValid() {
			children = append(children, typeParams)
		}
		children = append(children, params...)
		if returnType.IsValid() {
			children = append(children, returnType)
		}
		if body.IsValid() {
			children = append(children, body)
		}
		method := b.FlaggedNode(ast.ClassMethod, c.SpanSince(start), flags, children...)
		if accessor != "" {
			b.Get(method).Op = accessorOpKind(accessor)
		}
		for _, d := range decorators {
			method = attachDecorator(b, method, d)
		}
		return method, true
	}

	var typeAnn ast.NodeID
	if c.TS && c.At(token.Colon) {
		c.Bump()
		typeAnn = parseType(c, b)
	}
	var value ast.NodeID
	if c.At(token.Assign) {
		c.Bump()
		value = ep.ParseAssignment()
	}
	c.Asi()
	children := []ast.NodeID{key}
	if typeAnn.IsValid() {
		children = append(children, typeAnn)
	}
	if value.IsValid() {
		children = append(children, value)
	}
	prop := b.FlaggedNode(ast.ClassProperty, c.SpanSince(start), flags, children...)
	for _, d := range decorators {
		prop = attachDecorator(b, prop, d)
	}
	return prop, true
}

func parseDecorator(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	c.Bump() // @
	ep := &exprParser{c: c, b: b}
	expr := ep.parseLeftHandSide()
	return b.Node(ast.Decorator, c.SpanSince(start), expr)
}

// attachDecorator appends a decorator as a trailing child so downstream
// consumers can recover it positionally without a dedicated field; decorator
// count per member is small and this avoids growing Node itself.
func attachDecorator(b *ast.Builder, member, decorator ast.NodeID) ast.NodeID {
	n := b.Get(member)
	n.Children = append(n.Children, decorator)
	return member
}

func accessorOpKind(accessor string) token.Kind {
	if accessor == "get" {
		return token.KwGet
	}
	return token.KwSet
}

func isModifierKeyword(text string) bool {
	switch text {
	case "static", "public", "private", "protected", "abstract", "readonly", "override":
		return true
	default:
		return false
	}
}

// modifierLooksLikeModifier reports whether the current contextual keyword
// token is followed by something that can only start a member, ruling out
// the case where the keyword itself is the member name (e.g. `static() {}`).
func modifierLooksLikeModifier(c *Cursor) bool {
	switch c.PeekKind() {
	case token.LParen, token.Assign, token.Semicolon, token.Colon, token.Question, token.RBrace:
		return false
	default:
		return true
	}
}
