package parser

import (
	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/gctx"
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/recovery"
	"ecmaparser/internal/token"
)

// keywordTypeKinds are the token kinds that, standing alone, name a
// primitive TypeScript type rather than a type reference.
var keywordTypeKinds = map[token.Kind]bool{
	token.KwAny:       true,
	token.KwUnknown:   true,
	token.KwNever:     true,
	token.KwObject:    true,
	token.KwBoolean:   true,
	token.KwString:    true,
	token.KwNumber:    true,
	token.KwBigintKw:  true,
	token.KwSymbolKw:  true,
	token.KwUndefined: true,
	token.KwVoid:      true,
	token.KwNull:      true,
}

// typeOperatorKeywords prefix a type with a unary type operator: `keyof T`,
// `readonly T[]`, `unique symbol`.
var typeOperatorKeywords = map[token.Kind]bool{
	token.KwKeyof:    true,
	token.KwReadonly: true,
	token.KwUnique:   true,
}

// parseTypeAnnotation consumes the `:` a binding target or return position
// is standing at and wraps target together with the type that follows into
// a single TSTypeAnnotation node, replacing the value callers thread as
// their "target" from then on.
func parseTypeAnnotation(c *Cursor, b *ast.Builder, target ast.NodeID, start uint32) ast.NodeID {
	c.Bump() // ':'
	c.Stack.Push(pctx.TypeAnnotation)
	typ := parseType(c, b)
	c.Stack.Pop()
	return b.Node(ast.TSTypeAnnotation, c.SpanSince(start), target, typ)
}

// parseType is the type-grammar entry point, starting at ConditionalType
// and falling through every lower precedence tier down to PrimaryType.
func parseType(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	if c.At(token.KwNew) {
		return parseConstructorType(c, b, start)
	}
	if isFunctionTypeStart(c) {
		return parseFunctionType(c, b, start)
	}

	check := parseUnionType(c, b)
	if c.At(token.KwExtends) && !c.GCtx.ConditionalTypesDisallowed() {
		c.Bump()
		savedGCtx := c.GCtx
		c.GCtx = c.GCtx.With(gctx.DisallowConditionalTypes)
		extendsType := parseUnionType(c, b)
		c.GCtx = savedGCtx
		c.Expect(token.Question)
		trueType := parseType(c, b)
		c.Expect(token.Colon)
		falseType := parseType(c, b)
		return b.Node(ast.TSConditionalType, c.SpanSince(start), check, extendsType, trueType, falseType)
	}
	return check
}

// isFunctionTypeStart distinguishes a function-type `(params) => T` (or its
// generic form `<T>(params) => T`) from an ordinary parenthesized type,
// using a pure lookahead over the balanced `(...)` that follows.
func isFunctionTypeStart(c *Cursor) bool {
	if c.At(token.Lt) {
		return true
	}
	if !c.At(token.LParen) {
		return false
	}
	return Lookahead(c, func() bool {
		depth := 0
		for {
			switch c.Cur().Kind {
			case token.LParen:
				depth++
			case token.RParen:
				depth--
				if depth == 0 {
					c.Bump()
					return c.At(token.Arrow)
				}
			case token.EOF:
				return false
			}
			c.Bump()
		}
	})
}

func parseFunctionType(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	var typeParams ast.NodeID
	if c.At(token.Lt) {
		typeParams = parseTypeParameterDecl(c, b)
	}
	params := parseParameterList(c, b)
	c.Expect(token.Arrow)
	ret := parseType(c, b)
	var children []ast.NodeID
	if typeParams.IsValid() {
		children = append(children, typeParams)
	}
	children = append(children, params...)
	children = append(children, ret)
	return b.Node(ast.TSFunctionType, c.SpanSince(start), children...)
}

func parseConstructorType(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'new'
	var typeParams ast.NodeID
	if c.At(token.Lt) {
		typeParams = parseTypeParameterDecl(c, b)
	}
	params := parseParameterList(c, b)
	c.Expect(token.Arrow)
	ret := parseType(c, b)
	var children []ast.NodeID
	if typeParams.IsValid() {
		children = append(children, typeParams)
	}
	children = append(children, params...)
	children = append(children, ret)
	return b.Node(ast.TSConstructorType, c.SpanSince(start), children...)
}

func parseUnionType(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	if c.At(token.Pipe) {
		c.Bump()
	}
	first := parseIntersectionType(c, b)
	if !c.At(token.Pipe) {
		return first
	}
	members := []ast.NodeID{first}
	for c.At(token.Pipe) {
		c.Bump()
		members = append(members, parseIntersectionType(c, b))
	}
	return b.Node(ast.TSUnionType, c.SpanSince(start), members...)
}

func parseIntersectionType(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	if c.At(token.Amp) {
		c.Bump()
	}
	first := parseTypeOperatorType(c, b)
	if !c.At(token.Amp) {
		return first
	}
	members := []ast.NodeID{first}
	for c.At(token.Amp) {
		c.Bump()
		members = append(members, parseTypeOperatorType(c, b))
	}
	return b.Node(ast.TSIntersectionType, c.SpanSince(start), members...)
}

// parseTypeOperatorType handles the prefix operators (`keyof`, `readonly`,
// `unique`, `typeof`, `infer`) before bottoming out at PostfixType.
func parseTypeOperatorType(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	if typeOperatorKeywords[c.Cur().Kind] {
		op := c.Bump().Kind
		operand := parseTypeOperatorType(c, b)
		return b.OpNode(ast.TSTypeOperator, c.SpanSince(start), op, 0, operand)
	}
	if c.At(token.KwTypeof) {
		c.Bump()
		ref := parseEntityName(c, b)
		return b.OpNode(ast.TSTypeOperator, c.SpanSince(start), token.KwTypeof, 0, ref)
	}
	if c.At(token.KwInfer) {
		c.Bump()
		ep := &exprParser{c: c, b: b}
		name := ep.parseBindingIdentifier()
		children := []ast.NodeID{name}
		if c.At(token.KwExtends) && !c.GCtx.ConditionalTypesDisallowed() {
			c.Bump()
			savedGCtx := c.GCtx
			c.GCtx = c.GCtx.With(gctx.DisallowConditionalTypes)
			children = append(children, parseUnionType(c, b))
			c.GCtx = savedGCtx
		}
		return b.OpNode(ast.TSTypeOperator, c.SpanSince(start), token.KwInfer, 0, children...)
	}
	return parsePostfixType(c, b)
}

// parsePostfixType applies array (`T[]`) and indexed-access (`T[K]`)
// suffixes, which are left-recursive and bind tighter than anything above.
func parsePostfixType(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	typ := parsePrimaryType(c, b)
	for !c.Cur().OnNewLine && c.At(token.LBracket) {
		opening := c.Cur().Span
		c.Bump()
		if c.At(token.RBracket) {
			c.Bump()
			typ = b.Node(ast.TSArrayType, c.SpanSince(start), typ)
			continue
		}
		index := parseType(c, b)
		c.ExpectClosing(token.RBracket, opening)
		typ = b.Node(ast.TSIndexedAccessType, c.SpanSince(start), typ, index)
	}
	return typ
}

func parsePrimaryType(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	switch {
	case c.At(token.LParen):
		opening := c.Cur().Span
		c.Bump()
		inner := parseType(c, b)
		c.ExpectClosing(token.RParen, opening)
		if c.opts.PreserveParens {
			return b.Node(ast.TSParenthesizedType, c.SpanSince(start), inner)
		}
		return inner

	case c.At(token.LBracket):
		return parseTupleType(c, b)

	case c.At(token.LBrace):
		return parseMappedOrTypeLiteral(c, b)

	case keywordTypeKinds[c.Cur().Kind]:
		op := c.Bump().Kind
		return b.OpNode(ast.TSKeywordType, c.SpanSince(start), op, 0)

	case c.At(token.KwTrue), c.At(token.KwFalse):
		tok := c.Bump()
		return b.OpNode(ast.TSLiteralType, c.SpanSince(start), tok.Kind, 0)

	case c.At(token.Minus):
		c.Bump()
		var lit ast.NodeID
		if c.At(token.NumericLit) || c.At(token.BigIntLit) {
			tok := c.Bump()
			lit = b.LeafText(ast.NumericLiteral, c.SpanSince(start), "-"+tok.Text)
		} else {
			c.Fault(diag.SynExpectedToken, c.Cur().Span, "expected a numeric literal type")
			lit = b.Dummy(c.Cur().Span)
		}
		return b.Node(ast.TSLiteralType, c.SpanSince(start), lit)

	case c.At(token.NumericLit), c.At(token.BigIntLit), c.At(token.StringLit):
		tok := c.Bump()
		kind := ast.NumericLiteral
		switch tok.Kind {
		case token.BigIntLit:
			kind = ast.BigIntLiteral
		case token.StringLit:
			kind = ast.StringLiteral
		}
		lit := b.LeafText(kind, tok.Span, tok.Text)
		return b.Node(ast.TSLiteralType, c.SpanSince(start), lit)

	case c.At(token.NoSubstitutionTemplateLit), c.At(token.TemplateHead):
		ep := &exprParser{c: c, b: b}
		lit := ep.parseTemplateLiteral()
		return b.Node(ast.TSLiteralType, c.SpanSince(start), lit)

	case c.Cur().Kind.IsIdentifierName():
		return parseTypeReference(c, b)

	default:
		c.Fault(diag.SynExpectedToken, c.Cur().Span, "expected a type")
		return b.Dummy(c.Cur().Span)
	}
}

// parseEntityName parses a dotted identifier path (`a.b.c`) without
// consuming any trailing type arguments, used as the operand of `typeof`.
func parseEntityName(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	tok := c.Bump()
	name := b.LeafText(ast.Identifier, tok.Span, tok.Text)
	for c.At(token.Dot) {
		c.Bump()
		prop := c.Bump()
		propNode := b.LeafText(ast.Identifier, prop.Span, prop.Text)
		name = b.Node(ast.TSTypeReference, c.SpanSince(start), name, propNode)
	}
	return name
}

// parseTypeReference parses a (possibly qualified) type name and any
// trailing type-argument instantiation: `Foo`, `A.B.C`, `Map<K, V>`.
func parseTypeReference(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	name := parseEntityName(c, b)
	ref := b.Node(ast.TSTypeReference, c.SpanSince(start), name)
	if c.At(token.Lt) {
		ref = appendTypeArguments(c, b, ref, start)
	}
	return ref
}

func parseTupleType(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Expect(token.LBracket)
	elems := ParseCommaList(c, pctx.TypeMembers, token.RBracket,
		func(k token.Kind) bool { return k != token.RBracket },
		func() (ast.NodeID, bool) { return parseTupleElement(c, b), true })
	c.ExpectClosing(token.RBracket, opening)
	return b.Node(ast.TSTupleType, c.SpanSince(start), elems...)
}

func parseTupleElement(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	if c.At(token.Ellipsis) {
		c.Bump()
		elem := parseTupleElement(c, b)
		return b.Node(ast.RestElement, c.SpanSince(start), elem)
	}
	// Named tuple members (`label: T`, `label?: T`) share the binding
	// identifier's lookahead with a plain type reference; the only
	// disambiguator is a following `:` or `?:`.
	if c.Cur().Kind.IsIdentifierName() {
		labeled := Lookahead(c, func() bool {
			c.Bump()
			if c.At(token.Question) {
				c.Bump()
			}
			return c.At(token.Colon)
		})
		if labeled {
			tok := c.Bump()
			name := b.LeafText(ast.Identifier, tok.Span, tok.Text)
			flags := uint32(0)
			if c.At(token.Question) {
				flags |= ast.FlagOptional
				c.Bump()
			}
			c.Bump() // ':'
			typ := parseType(c, b)
			return b.FlaggedNode(ast.TSPropertySignature, c.SpanSince(start), flags, name, typ)
		}
	}
	typ := parseType(c, b)
	if c.At(token.Question) {
		c.Bump()
		b.Get(typ).Flags |= ast.FlagOptional
	}
	return typ
}

// parseMappedOrTypeLiteral disambiguates `{ [K in Keys]: T }` (a mapped
// type) from an ordinary object type literal, both of which start with `{`.
func parseMappedOrTypeLiteral(c *Cursor, b *ast.Builder) ast.NodeID {
	if isMappedTypeStart(c) {
		return parseMappedType(c, b)
	}
	return parseTypeLiteral(c, b)
}

func isMappedTypeStart(c *Cursor) bool {
	return Lookahead(c, func() bool {
		c.Bump() // '{'
		for c.AtAny(token.Plus, token.Minus) {
			c.Bump()
		}
		if c.At(token.KwReadonly) {
			c.Bump()
		}
		if !c.At(token.LBracket) {
			return false
		}
		c.Bump()
		if !c.Cur().Kind.IsIdentifierName() {
			return false
		}
		c.Bump()
		return c.At(token.KwIn)
	})
}

func parseMappedType(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Expect(token.LBrace)

	flags := uint32(0)
	if c.AtAny(token.Plus, token.Minus) {
		adds := c.At(token.Plus)
		c.Bump()
		c.Expect(token.KwReadonly)
		if adds {
			flags |= ast.FlagReadonly
		}
	} else if c.At(token.KwReadonly) {
		c.Bump()
		flags |= ast.FlagReadonly
	}

	c.Expect(token.LBracket)
	keyTok := c.Bump()
	key := b.LeafText(ast.Identifier, keyTok.Span, keyTok.Text)
	c.Expect(token.KwIn)
	constraint := parseType(c, b)
	var asType ast.NodeID
	if c.At(token.KwAs) {
		c.Bump()
		asType = parseType(c, b)
	}
	c.ExpectClosing(token.RBracket, keyTok.Span)

	if c.At(token.Plus) {
		c.Bump()
		c.Expect(token.Question)
		flags |= ast.FlagOptional
	} else if c.At(token.Minus) {
		c.Bump()
		c.Expect(token.Question)
	} else if c.At(token.Question) {
		c.Bump()
		flags |= ast.FlagOptional
	}

	c.Expect(token.Colon)
	valueType := parseType(c, b)
	c.Asi()
	c.ExpectClosing(token.RBrace, opening)

	children := []ast.NodeID{key, constraint}
	if asType.IsValid() {
		children = append(children, asType)
	}
	children = append(children, valueType)
	return b.FlaggedNode(ast.TSMappedType, c.SpanSince(start), flags, children...)
}

func parseTypeLiteral(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Expect(token.LBrace)
	members := ParseList(c, pctx.TypeMembers,
		func(k token.Kind) bool { return k != token.RBrace && k != token.Semicolon && k != token.Comma },
		func() (ast.NodeID, bool) { return parseTypeMember(c, b) })
	c.ExpectClosing(token.RBrace, opening)
	return b.Node(ast.TSTypeLiteral, c.SpanSince(start), members...)
}

// parseTypeMember parses one member of an interface body or object type
// literal: a call signature, construct signature, index signature, method
// signature, or property signature, separated by `;`, `,`, or a line break
// (consumed opportunistically rather than by a shared Asi, since commas are
// equally valid separators here).
func parseTypeMember(c *Cursor, b *ast.Builder) (ast.NodeID, bool) {
	start := c.StartMark()

	if c.At(token.LParen) || c.At(token.Lt) {
		member := parseCallOrConstructSignature(c, b, start, false)
		consumeMemberSeparator(c)
		return member, true
	}
	if c.At(token.KwNew) && (c.PeekKind() == token.LParen || c.PeekKind() == token.Lt) {
		c.Bump()
		member := parseCallOrConstructSignature(c, b, start, true)
		consumeMemberSeparator(c)
		return member, true
	}

	readonly := false
	if c.Cur().Text == "readonly" && c.PeekKind() != token.Colon && c.PeekKind() != token.Question && c.PeekKind() != token.LParen {
		readonly = true
		c.Bump()
	}

	if c.At(token.LBracket) {
		if member, ok := tryParseIndexSignature(c, b, start, readonly); ok {
			consumeMemberSeparator(c)
			return member, true
		}
	}

	isAsync := false
	if c.Cur().Text == "async" && c.PeekKind() != token.Colon && c.PeekKind() != token.Question && c.PeekKind() != token.LParen {
		isAsync = true
		c.Bump()
	}
	isGenerator := false
	if c.At(token.Star) {
		isGenerator = true
		c.Bump()
	}
	accessor := ""
	if (c.Cur().Text == "get" || c.Cur().Text == "set") && c.PeekKind() != token.LParen && c.PeekKind() != token.Colon && c.PeekKind() != token.Question {
		accessor = c.Cur().Text
		c.Bump()
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
	if readonly {
		flags |= ast.FlagReadonly
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
	if c.At(token.Question) {
		flags |= ast.FlagOptional
		c.Bump()
	}

	if c.At(token.LParen) || c.At(token.Lt) {
		var typeParams ast.NodeID
		if c.At(token.Lt) {
			typeParams = parseTypeParameterDecl(c, b)
		}
		params := parseParameterList(c, b)
		var ret ast.NodeID
		if c.At(token.Colon) {
			c.Bump()
			ret = parseType(c, b)
		}
		children := []ast.NodeID{key}
		if typeParams.IsValid() {
			children = append(children, typeParams)
		}
		children = append(children, params...)
		if ret.IsValid() {
			children = append(children, ret)
		}
		member := b.FlaggedNode(ast.TSMethodSignature, c.SpanSince(start), flags, children...)
		if accessor != "" {
			b.Get(member).Op = accessorOpKind(accessor)
		}
		consumeMemberSeparator(c)
		return member, true
	}

	var typ ast.NodeID
	if c.At(token.Colon) {
		c.Bump()
		typ = parseType(c, b)
	}
	children := []ast.NodeID{key}
	if typ.IsValid() {
		children = append(children, typ)
	}
	member := b.FlaggedNode(ast.TSPropertySignature, c.SpanSince(start), flags, children...)
	consumeMemberSeparator(c)
	return member, true
}

func parseCallOrConstructSignature(c *Cursor, b *ast.Builder, start uint32, isConstruct bool) ast.NodeID {
	var typeParams ast.NodeID
	if c.At(token.Lt) {
		typeParams = parseTypeParameterDecl(c, b)
	}
	params := parseParameterList(c, b)
	var ret ast.NodeID
	if c.At(token.Colon) {
		c.Bump()
		ret = parseType(c, b)
	}
	var children []ast.NodeID
	if typeParams.IsValid() {
		children = append(children, typeParams)
	}
	children = append(children, params...)
	if ret.IsValid() {
		children = append(children, ret)
	}
	kind := ast.TSCallSignature
	if isConstruct {
		kind = ast.TSConstructorType
	}
	return b.Node(kind, c.SpanSince(start), children...)
}

// tryParseIndexSignature parses `[key: KeyType]: ValueType`. The decision
// between an index signature and a computed property name is taken by a
// pure lookahead over `[ IdentifierName :` so that nothing is consumed on
// the ok=false path; once committed, a missing value annotation reports a
// single diagnostic and keeps the member rather than rewinding into the
// next member's tokens.
func tryParseIndexSignature(c *Cursor, b *ast.Builder, start uint32, readonly bool) (ast.NodeID, bool) {
	isIndex := Lookahead(c, func() bool {
		c.Bump() // '['
		if !c.Cur().Kind.IsIdentifierName() {
			return false
		}
		c.Bump()
		return c.At(token.Colon)
	})
	if !isIndex {
		return ast.NoNodeID, false
	}

	opening := c.Cur().Span
	c.Bump() // '['
	keyTok := c.Bump()
	key := b.LeafText(ast.Identifier, keyTok.Span, keyTok.Text)
	c.Bump() // ':'
	keyType := parseType(c, b)
	c.ExpectClosing(token.RBracket, opening)

	var valueType ast.NodeID
	if c.Eat(token.Colon) {
		valueType = parseType(c, b)
	} else {
		c.Fault(diag.SynIndexSignatureNoAnnotated, c.Span(c.PrevEnd(), c.PrevEnd()), "index signature must have a type annotation")
	}

	flags := uint32(0)
	if readonly {
		flags |= ast.FlagReadonly
	}
	children := []ast.NodeID{key, keyType}
	if valueType.IsValid() {
		children = append(children, valueType)
	}
	return b.FlaggedNode(ast.TSIndexSignature, c.SpanSince(start), flags, children...), true
}

// consumeMemberSeparator accepts the `;`, `,`, or implicit-newline
// separator between type-literal/interface members without faulting, since
// a missing separator there recovers naturally at the next member start.
func consumeMemberSeparator(c *Cursor) {
	if c.At(token.Semicolon) || c.At(token.Comma) {
		c.Bump()
	}
}

// parseTypeParameterDecl parses `< TypeParameter (',' TypeParameter)* ','? >`.
func parseTypeParameterDecl(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Cur().Span
	c.Bump() // '<'
	c.Stack.Push(pctx.TypeParameters)
	var params []ast.NodeID
	for {
		if c.Fatal() {
			break
		}
		c.ReLexTSRAngle()
		if c.At(token.Gt) {
			break
		}
		if recovery.IsContextTerminator(pctx.TypeParameters, c.Cur().Kind) {
			break
		}
		if !c.Cur().Kind.IsIdentifierName() {
			decision := recovery.Synchronize(c.opts.RecoverFromErrors, c.Stack, pctx.TypeParameters, c.Cur().Kind, func() { c.Bump() })
			c.traceSync(pctx.TypeParameters, decision)
			if decision == recovery.Abort {
				break
			}
			continue
		}
		params = append(params, parseTypeParameter(c, b))
		c.ReLexTSRAngle()
		if c.At(token.Comma) {
			c.Bump()
			continue
		}
		break
	}
	c.Stack.Pop()
	c.ReLexTSRAngle()
	c.ExpectClosing(token.Gt, opening)
	return b.Node(ast.TSTypeParameterDecl, c.SpanSince(start), params...)
}

func parseTypeParameter(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	if c.At(token.KwIn) || c.At(token.KwOut) {
		c.Bump()
	}
	if c.At(token.KwIn) || c.At(token.KwOut) {
		c.Bump()
	}
	tok := c.Bump()
	name := b.LeafText(ast.Identifier, tok.Span, tok.Text)
	children := []ast.NodeID{name}
	if c.At(token.KwExtends) {
		c.Bump()
		savedGCtx := c.GCtx
		c.GCtx = c.GCtx.With(gctx.DisallowConditionalTypes)
		children = append(children, parseType(c, b))
		c.GCtx = savedGCtx
	}
	if c.At(token.Assign) {
		c.Bump()
		children = append(children, parseType(c, b))
	}
	return b.Node(ast.TSTypeParameter, c.SpanSince(start), children...)
}

// appendTypeArguments parses `< Type (',' Type)* ','? >` and wraps expr
// together with the parsed arguments into a single instantiation node,
// used both for expression-position generic instantiation (`Foo<Bar>` in
// an `extends` clause) and for TSTypeReference's own type arguments.
func appendTypeArguments(c *Cursor, b *ast.Builder, expr ast.NodeID, start uint32) ast.NodeID {
	opening := c.Cur().Span
	c.Bump() // '<'
	c.Stack.Push(pctx.TypeArguments)
	var args []ast.NodeID
	for {
		if c.Fatal() {
			break
		}
		c.ReLexTSRAngle()
		if c.At(token.Gt) {
			break
		}
		if recovery.IsContextTerminator(pctx.TypeArguments, c.Cur().Kind) {
			break
		}
		args = append(args, parseType(c, b))
		c.ReLexTSRAngle()
		if c.At(token.Comma) {
			c.Bump()
			continue
		}
		break
	}
	c.Stack.Pop()
	c.ReLexTSRAngle()
	c.ExpectClosing(token.Gt, opening)
	children := append([]ast.NodeID{expr}, args...)
	return b.Node(ast.TSTypeArgumentInstantiation, c.SpanSince(start), children...)
}
