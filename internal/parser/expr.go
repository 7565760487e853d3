package parser

import (
	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/token"
)

// exprParser bundles a Cursor with the Builder it allocates nodes through.
// Every parser file in this package follows the same shape: a thin method
// set over (*Cursor, *ast.Builder) rather than a combined god-object, so the
// statement/type/class/JSX parsers can share one Cursor without sharing
// unrelated state.
type exprParser struct {
	c *Cursor
	b *ast.Builder
}

// ParseExpression parses a full Expression (the comma operator included),
// the entry point used wherever the grammar names `Expression[?In]`.
func (p *exprParser) ParseExpression() ast.NodeID {
	start := p.c.StartMark()
	first := p.ParseAssignment()
	if !p.c.At(token.Comma) {
		return first
	}
	items := []ast.NodeID{first}
	for p.c.At(token.Comma) {
		p.c.Bump()
		items = append(items, p.ParseAssignment())
	}
	return p.b.Node(ast.SequenceExpr, p.c.SpanSince(start), items...)
}

// ParseAssignment parses an AssignmentExpression: arrow functions (tried
// speculatively through the cover grammar), conditional expressions, and
// the `=`-family operators, right-associative.
func (p *exprParser) ParseAssignment() ast.NodeID {
	start := p.c.StartMark()

	if p.c.GCtx.HasYield() && p.c.At(token.KwYield) {
		return p.parseYield()
	}

	if arrow, ok := TryParseNode(p.c, p.tryParseArrowFunction); ok {
		return arrow
	}

	left := p.ParseConditional()
	if p.c.Cur().Kind.IsAssignmentOperator() {
		op := p.c.Bump().Kind
		right := p.ParseAssignment()
		return p.b.OpNode(ast.AssignmentExpr, p.c.SpanSince(start), op, 0, left, right)
	}
	return left
}

// tryParseArrowFunction speculatively parses `Ident => body` or
// `(Params) => body`, returning an invalid NodeID on failure so the caller's
// TryParse wrapper rewinds cleanly. `async` prefixes are recognized when not
// separated from the parameter list by a newline.
func (p *exprParser) tryParseArrowFunction() ast.NodeID {
	start := p.c.StartMark()
	isAsync := false
	if p.c.At(token.KwAsync) && !p.c.PeekOnNewLine() {
		isAsync = true
		p.c.Bump()
	}

	var params []ast.NodeID
	switch {
	case p.c.Cur().Kind == token.Ident || p.c.Cur().Kind.IsContextualKeyword():
		id := p.parseBindingIdentifier()
		params = []ast.NodeID{id}
	case p.c.At(token.LParen):
		params = parseParameterList(p.c, p.b)
	default:
		return ast.NoNodeID
	}

	if p.c.Cur().OnNewLine || !p.c.At(token.Arrow) {
		return ast.NoNodeID
	}
	p.c.Bump() // =>

	savedGCtx := p.c.GCtx
	p.c.GCtx = p.c.GCtx.WithAwait(isAsync).WithYield(false).WithReturn(true)
	defer func() { p.c.GCtx = savedGCtx }()

	var body ast.NodeID
	flags := uint32(0)
	if isAsync {
		flags |= ast.FlagAsync
	}
	if p.c.At(token.LBrace) {
		body = parseFunctionBody(p.c, p.b)
	} else {
		body = p.ParseAssignment()
	}
	return p.b.FlaggedNode(ast.ArrowFunctionExpr, p.c.SpanSince(start), flags, append(params, body)...)
}

func (p *exprParser) parseYield() ast.NodeID {
	start := p.c.StartMark()
	p.c.Bump() // yield
	delegate := false
	if p.c.At(token.Star) {
		delegate = true
		p.c.Bump()
	}
	var arg ast.NodeID
	if !p.c.Cur().OnNewLine && yieldArgumentStart(p.c.Cur().Kind) {
		arg = p.ParseAssignment()
	}
	flags := uint32(0)
	if delegate {
		flags |= ast.FlagGenerator
	}
	children := []ast.NodeID{}
	if arg.IsValid() {
		children = append(children, arg)
	}
	return p.b.FlaggedNode(ast.YieldExpr, p.c.SpanSince(start), flags, children...)
}

// awaitOperandStart reports whether k can only begin an await operand, not
// continue `await` used as a plain identifier: `await (x)` is a call and
// `await [0]` a member access, so delimiters and operators are excluded.
func awaitOperandStart(k token.Kind) bool {
	switch k {
	case token.KwThis, token.KwSuper, token.KwNull, token.KwTrue, token.KwFalse,
		token.StringLit, token.NumericLit, token.BigIntLit,
		token.KwNew, token.KwTypeof, token.KwVoid, token.KwDelete,
		token.Bang, token.Tilde:
		return true
	default:
		return k == token.Ident || k.IsContextualKeyword()
	}
}

func yieldArgumentStart(k token.Kind) bool {
	switch k {
	case token.Semicolon, token.RParen, token.RBrace, token.RBracket, token.Comma, token.Colon, token.EOF:
		return false
	default:
		return true
	}
}

// ParseConditional parses `ShortCircuitExpr ('?' Assignment ':' Assignment)?`.
func (p *exprParser) ParseConditional() ast.NodeID {
	start := p.c.StartMark()
	test := p.parseBinary(1)
	if !p.c.At(token.Question) {
		return test
	}
	p.c.Bump()
	savedGCtx := p.c.GCtx
	p.c.GCtx = p.c.GCtx.WithIn(true)
	cons := p.ParseAssignment()
	p.c.GCtx = savedGCtx
	p.c.Expect(token.Colon)
	alt := p.ParseAssignment()
	return p.b.Node(ast.ConditionalExpr, p.c.SpanSince(start), test, cons, alt)
}

// parseBinary implements precedence climbing over the binary/logical
// operator table, bottoming out at parseUnary.
func (p *exprParser) parseBinary(minPrec int) ast.NodeID {
	start := p.c.StartMark()
	left := p.parseUnary()
	for {
		op := p.c.Cur().Kind
		prec := binaryPrecedence(op, p.c.GCtx.HasIn())
		if prec == 0 || prec < minPrec {
			return left
		}
		p.c.Bump()
		nextMin := prec + 1
		if rightAssociative(op) {
			nextMin = prec
		}
		right := p.parseBinary(nextMin)
		kind := ast.BinaryExpr
		if isLogicalOp(op) {
			kind = ast.LogicalExpr
		}
		left = p.b.OpNode(kind, p.c.SpanSince(start), op, 0, left, right)
	}
}

var unaryOps = map[token.Kind]bool{
	token.Plus: true, token.Minus: true, token.Bang: true, token.Tilde: true,
	token.KwTypeof: true, token.KwVoid: true, token.KwDelete: true,
}

// parseUnary parses prefix unary operators, prefix ++/--, `await`, and TS
// `<T>expr` angle-bracket assertions, bottoming out at parseUpdate.
func (p *exprParser) parseUnary() ast.NodeID {
	start := p.c.StartMark()
	if p.c.At(token.KwAwait) {
		if p.c.GCtx.HasAwait() {
			p.c.Bump()
			arg := p.parseUnary()
			return p.b.Node(ast.AwaitExpr, p.c.SpanSince(start), arg)
		}
		// Outside [Await], `await` is an identifier — unless what follows
		// can only be read as an await operand, in which case the user
		// meant an await expression in the wrong context.
		if awaitOperandStart(p.c.PeekKind()) && !p.c.PeekOnNewLine() {
			p.c.Fault(diag.SynAwaitOutsideAsync, p.c.Cur().Span, "await is only allowed within async functions and at the top level of modules")
			p.c.Bump()
			arg := p.parseUnary()
			return p.b.Node(ast.AwaitExpr, p.c.SpanSince(start), arg)
		}
	}
	if unaryOps[p.c.Cur().Kind] {
		op := p.c.Bump().Kind
		arg := p.parseUnary()
		return p.b.OpNode(ast.UnaryExpr, p.c.SpanSince(start), op, 0, arg)
	}
	if p.c.At(token.PlusPlus) || p.c.At(token.MinusMinus) {
		op := p.c.Bump().Kind
		arg := p.parseUnary()
		return p.b.OpNode(ast.UpdateExpr, p.c.SpanSince(start), op, ast.FlagPrefix, arg)
	}
	return p.parsePostfix()
}

// parsePostfix parses `LeftHandSideExpr [no LineTerminator here] (++|--)?`.
func (p *exprParser) parsePostfix() ast.NodeID {
	start := p.c.StartMark()
	expr := p.parseLeftHandSide()
	if !p.c.Cur().OnNewLine && (p.c.At(token.PlusPlus) || p.c.At(token.MinusMinus)) {
		op := p.c.Bump().Kind
		return p.b.OpNode(ast.UpdateExpr, p.c.SpanSince(start), op, 0, expr)
	}
	return expr
}

// parseLeftHandSide parses NewExpression/CallExpression/MemberExpression,
// including optional chaining, as one combined postfix loop over a primary
// expression.
func (p *exprParser) parseLeftHandSide() ast.NodeID {
	start := p.c.StartMark()
	var expr ast.NodeID
	if p.c.At(token.KwNew) {
		expr = p.parseNewExpr()
	} else {
		expr = p.parsePrimary()
	}
	return p.parseCallTail(expr, start)
}

func (p *exprParser) parseNewExpr() ast.NodeID {
	start := p.c.StartMark()
	p.c.Bump() // new
	if p.c.At(token.Dot) {
		p.c.Bump()
		if p.c.Cur().Text != "target" {
			p.c.Fault(diag.SynExpectedToken, p.c.Cur().Span, "expected 'target' after 'new.'")
		}
		p.c.Bump()
		return p.b.Leaf(ast.MemberExpr, p.c.SpanSince(start))
	}
	var callee ast.NodeID
	if p.c.At(token.KwNew) {
		callee = p.parseNewExpr()
	} else {
		callee = p.parsePrimary()
	}
	callee = p.parseMemberTail(callee, start)
	var args []ast.NodeID
	if p.c.At(token.LParen) {
		args = p.parseArguments()
	}
	return p.b.Node(ast.NewExpr, p.c.SpanSince(start), append([]ast.NodeID{callee}, args...)...)
}

// parseMemberTail consumes `.prop`, `[expr]`, and optional-chain variants,
// but not call expressions — used by `new` callee parsing, which must not
// itself swallow a call's argument list.
func (p *exprParser) parseMemberTail(expr ast.NodeID, start uint32) ast.NodeID {
	for {
		switch {
		case p.c.At(token.Dot):
			p.c.Bump()
			prop := p.parsePropertyName()
			expr = p.b.Node(ast.MemberExpr, p.c.SpanSince(start), expr, prop)
		case p.c.At(token.LBracket):
			opening := p.c.Bump().Span
			idx := p.ParseExpression()
			p.c.ExpectClosing(token.RBracket, opening)
			expr = p.b.FlaggedNode(ast.MemberExpr, p.c.SpanSince(start), ast.FlagComputed, expr, idx)
		default:
			return expr
		}
	}
}

func (p *exprParser) parseCallTail(expr ast.NodeID, start uint32) ast.NodeID {
	for {
		switch {
		case p.c.At(token.Dot):
			p.c.Bump()
			prop := p.parsePropertyName()
			expr = p.b.Node(ast.MemberExpr, p.c.SpanSince(start), expr, prop)
		case p.c.At(token.QuestionDot):
			p.c.Bump()
			if p.c.At(token.LParen) {
				args := p.parseArguments()
				expr = p.b.FlaggedNode(ast.CallExpr, p.c.SpanSince(start), ast.FlagOptional, append([]ast.NodeID{expr}, args...)...)
				continue
			}
			if p.c.At(token.LBracket) {
				opening := p.c.Bump().Span
				idx := p.ParseExpression()
				p.c.ExpectClosing(token.RBracket, opening)
				expr = p.b.FlaggedNode(ast.MemberExpr, p.c.SpanSince(start), ast.FlagComputed|ast.FlagOptional, expr, idx)
				continue
			}
			prop := p.parsePropertyName()
			expr = p.b.FlaggedNode(ast.MemberExpr, p.c.SpanSince(start), ast.FlagOptional, expr, prop)
		case p.c.At(token.LBracket):
			opening := p.c.Bump().Span
			idx := p.ParseExpression()
			p.c.ExpectClosing(token.RBracket, opening)
			expr = p.b.FlaggedNode(ast.MemberExpr, p.c.SpanSince(start), ast.FlagComputed, expr, idx)
		case p.c.At(token.LParen):
			args := p.parseArguments()
			expr = p.b.Node(ast.CallExpr, p.c.SpanSince(start), append([]ast.NodeID{expr}, args...)...)
		case p.c.At(token.NoSubstitutionTemplateLit) || p.c.At(token.TemplateHead):
			tmpl := p.parseTemplateLiteral()
			expr = p.b.Node(ast.TaggedTemplateExpr, p.c.SpanSince(start), expr, tmpl)
		case p.c.Cur().Kind == token.Bang && !p.c.Cur().OnNewLine:
			// TS non-null assertion.
			p.c.Bump()
			expr = p.b.Node(ast.TSNonNullExpr, p.c.SpanSince(start), expr)
		default:
			return expr
		}
	}
}

func (p *exprParser) parsePropertyName() ast.NodeID {
	start := p.c.StartMark()
	if p.c.At(token.Hash) {
		p.c.Bump()
		name := p.c.Bump()
		return p.b.LeafText(ast.PrivateIdentifier, p.c.SpanSince(start), name.Text)
	}
	tok := p.c.Bump()
	return p.b.LeafText(ast.Identifier, p.c.SpanSince(start), tok.Text)
}

func (p *exprParser) parseArguments() []ast.NodeID {
	opening := p.c.Expect(token.LParen)
	args := ParseCommaList(p.c, pctx.ArgumentExpressions, token.RParen,
		func(k token.Kind) bool { return k == token.Ellipsis || isExprStartKind(k) },
		func() (ast.NodeID, bool) {
			start := p.c.StartMark()
			if p.c.At(token.Ellipsis) {
				p.c.Bump()
				arg := p.ParseAssignment()
				return p.b.Node(ast.SpreadElement, p.c.SpanSince(start), arg), true
			}
			return p.ParseAssignment(), true
		})
	p.c.ExpectClosing(token.RParen, opening)
	return args
}

func isExprStartKind(k token.Kind) bool {
	switch k {
	case token.KwThis, token.KwSuper, token.KwNull, token.KwTrue, token.KwFalse,
		token.StringLit, token.NumericLit, token.BigIntLit, token.RegExpLit,
		token.TemplateHead, token.NoSubstitutionTemplateLit,
		token.LParen, token.LBracket, token.LBrace, token.KwFunction, token.KwClass,
		token.KwNew, token.Slash, token.Plus, token.Minus, token.Bang, token.Tilde,
		token.PlusPlus, token.MinusMinus, token.KwTypeof, token.KwVoid, token.KwDelete,
		token.KwAwait, token.KwYield, token.Lt:
		return true
	default:
		return k.IsIdentifierName()
	}
}

// parsePrimary parses PrimaryExpression: literals, identifiers, `this`,
// `super`, parenthesized expressions, arrays, objects, function/class
// expressions, template literals, and regular-expression literals re-lexed
// on demand.
func (p *exprParser) parsePrimary() ast.NodeID {
	start := p.c.StartMark()
	switch p.c.Cur().Kind {
	case token.KwThis:
		p.c.Bump()
		return p.b.Leaf(ast.ThisExpr, p.c.SpanSince(start))
	case token.KwSuper:
		p.c.Bump()
		return p.b.Leaf(ast.SuperExpr, p.c.SpanSince(start))
	case token.KwNull:
		p.c.Bump()
		return p.b.Leaf(ast.NullLiteral, p.c.SpanSince(start))
	case token.KwTrue, token.KwFalse:
		tok := p.c.Bump()
		return p.b.OpNode(ast.BooleanLiteral, p.c.SpanSince(start), tok.Kind, 0)
	case token.NumericLit:
		tok := p.c.Bump()
		return p.b.LeafText(ast.NumericLiteral, p.c.SpanSince(start), tok.Text)
	case token.BigIntLit:
		tok := p.c.Bump()
		return p.b.LeafText(ast.BigIntLiteral, p.c.SpanSince(start), tok.Text)
	case token.StringLit:
		tok := p.c.Bump()
		return p.b.LeafText(ast.StringLiteral, p.c.SpanSince(start), tok.Text)
	case token.NoSubstitutionTemplateLit, token.TemplateHead:
		return p.parseTemplateLiteral()
	case token.Slash, token.SlashAssign:
		tok := p.c.ReLexRegExp()
		p.c.Bump()
		return p.b.LeafText(ast.RegExpLiteral, tok.Span, tok.Text)
	case token.LParen:
		return p.parseParenthesized()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.KwFunction:
		return p.parseFunctionExpr(false)
	case token.KwAsync:
		if la, ok := TryParseNode(p.c, func() ast.NodeID {
			p.c.Bump()
			if p.c.Cur().OnNewLine || !p.c.At(token.KwFunction) {
				return ast.NoNodeID
			}
			return p.parseFunctionExpr(true)
		}); ok {
			return la
		}
		tok := p.c.Bump()
		return p.b.LeafText(ast.Identifier, p.c.SpanSince(start), tok.Text)
	case token.KwClass:
		return p.parseClassExpr()
	case token.KwImport:
		return p.parseImportExprOrMeta(start)
	case token.Percent:
		if p.c.opts.AllowV8Intrinsics {
			return p.parseV8Intrinsic()
		}
		p.c.Fault(diag.SynExpectedToken, p.c.Cur().Span, "unexpected '%'")
		tok := p.c.Bump()
		return p.b.LeafText(ast.Identifier, p.c.SpanSince(start), tok.Text)
	case token.Lt:
		if p.c.JSX {
			return p.parseJSXElementOrFragment()
		}
		fallthrough
	default:
		if p.c.Cur().Kind.IsIdentifierName() {
			if p.c.Cur().Kind == token.KwYield && p.c.GCtx.IsStrict() && !p.c.GCtx.HasYield() {
				p.c.Fault(diag.SynYieldOutsideGenerator, p.c.Cur().Span, "yield is a reserved word outside generator functions in strict mode")
			}
			tok := p.c.Bump()
			return p.b.LeafText(ast.Identifier, p.c.SpanSince(start), tok.Text)
		}
		p.c.Fault(diag.SynExpectedToken, p.c.Cur().Span, "expected an expression")
		sp := p.c.Cur().Span
		p.c.Bump()
		return p.b.Dummy(sp)
	}
}

func (p *exprParser) parseV8Intrinsic() ast.NodeID {
	start := p.c.StartMark()
	p.c.Bump() // %
	name := p.c.Bump()
	ident := p.b.LeafText(ast.Identifier, name.Span, name.Text)
	args := p.parseArguments()
	return p.b.Node(ast.V8IntrinsicExpr, p.c.SpanSince(start), append([]ast.NodeID{ident}, args...)...)
}

// parseParenthesized parses a parenthesized expression or, via its caller's
// speculative arrow-function attempt, the same tokens as a parameter list.
// Since tryParseArrowFunction always runs first and rewinds on failure, by
// the time control reaches here the `(...)` is committed to being a plain
// grouping.
func (p *exprParser) parseParenthesized() ast.NodeID {
	start := p.c.StartMark()
	opening := p.c.Expect(token.LParen)
	inner := p.ParseExpression()
	p.c.ExpectClosing(token.RParen, opening)
	if p.c.opts.PreserveParens {
		return p.b.Node(ast.ParenthesizedExpr, p.c.SpanSince(start), inner)
	}
	return inner
}

func (p *exprParser) parseArrayLiteral() ast.NodeID {
	start := p.c.StartMark()
	p.c.Bump() // [
	elems := ParseCommaList(p.c, pctx.ArrayLiteralMembers, token.RBracket,
		func(k token.Kind) bool {
			return k == token.Comma || k == token.Ellipsis || isExprStartKind(k)
		},
		func() (ast.NodeID, bool) {
			elStart := p.c.StartMark()
			if p.c.At(token.Comma) {
				return p.b.Leaf(ast.Invalid, p.c.Span(elStart, elStart)), true
			}
			if p.c.At(token.Ellipsis) {
				p.c.Bump()
				arg := p.ParseAssignment()
				return p.b.Node(ast.SpreadElement, p.c.SpanSince(elStart), arg), true
			}
			return p.ParseAssignment(), true
		})
	p.c.ExpectClosing(token.RBracket, p.c.Cur().Span)
	return p.b.Node(ast.ArrayExpr, p.c.SpanSince(start), elems...)
}

func (p *exprParser) parseObjectLiteral() ast.NodeID {
	start := p.c.StartMark()
	p.c.Bump() // {
	props := ParseCommaList(p.c, pctx.ObjectLiteralMembers, token.RBrace,
		func(k token.Kind) bool {
			return k == token.Ellipsis || k == token.LBracket || k == token.Star || k.IsIdentifierName() || k == token.StringLit || k == token.NumericLit
		},
		p.parseObjectMember)
	p.c.ExpectClosing(token.RBrace, p.c.Cur().Span)
	return p.b.Node(ast.ObjectExpr, p.c.SpanSince(start), props...)
}

func (p *exprParser) parseObjectMember() (ast.NodeID, bool) {
	start := p.c.StartMark()
	if p.c.At(token.Ellipsis) {
		p.c.Bump()
		arg := p.ParseAssignment()
		return p.b.Node(ast.SpreadElement, p.c.SpanSince(start), arg), true
	}

	isAsync, isGenerator := false, false
	if p.c.At(token.KwAsync) && !p.c.PeekOnNewLine() && !p.objectMemberEndsHere() {
		isAsync = true
		p.c.Bump()
	}
	if p.c.At(token.Star) {
		isGenerator = true
		p.c.Bump()
	}
	isGetSet := token.Ident
	if (p.c.At(token.KwGet) || p.c.At(token.KwSet)) && !p.objectMemberEndsHereAfterAccessor() {
		isGetSet = p.c.Cur().Kind
		p.c.Bump()
	}

	computed := false
	var key ast.NodeID
	if p.c.At(token.LBracket) {
		computed = true
		opening := p.c.Bump().Span
		key = p.ParseAssignment()
		p.c.ExpectClosing(token.RBracket, opening)
	} else {
		key = p.parsePropertyKeyLiteral()
	}

	flags := uint32(0)
	if computed {
		flags |= ast.FlagComputed
	}
	if isAsync {
		flags |= ast.FlagAsync
	}
	if isGenerator {
		flags |= ast.FlagGenerator
	}

	switch {
	case p.c.At(token.LParen):
		fn := p.parseMethodTail(isAsync, isGenerator)
		op := token.Ident
		if isGetSet != token.Ident {
			op = isGetSet
		}
		return p.b.OpNode(ast.Property, p.c.SpanSince(start), op, flags, key, fn), true
	case p.c.At(token.Colon):
		p.c.Bump()
		value := p.ParseAssignment()
		return p.b.FlaggedNode(ast.Property, p.c.SpanSince(start), flags, key, value), true
	case p.c.At(token.Assign):
		// CoverInitializedName: only legal once refined to a destructuring
		// pattern; recorded for that later refinement.
		p.c.Bump()
		value := p.ParseAssignment()
		p.c.State.CoverInitializedName[start] = value
		return p.b.FlaggedNode(ast.Property, p.c.SpanSince(start), flags, key, value), true
	default:
		// Shorthand { ident }.
		return p.b.FlaggedNode(ast.Property, p.c.SpanSince(start), flags, key), true
	}
}

func (p *exprParser) objectMemberEndsHere() bool {
	switch p.c.PeekKind() {
	case token.Colon, token.Comma, token.RBrace, token.LParen, token.Assign:
		return true
	default:
		return false
	}
}

func (p *exprParser) objectMemberEndsHereAfterAccessor() bool {
	return p.objectMemberEndsHere()
}

func (p *exprParser) parsePropertyKeyLiteral() ast.NodeID {
	start := p.c.StartMark()
	tok := p.c.Bump()
	switch tok.Kind {
	case token.StringLit:
		return p.b.LeafText(ast.StringLiteral, p.c.SpanSince(start), tok.Text)
	case token.NumericLit:
		return p.b.LeafText(ast.NumericLiteral, p.c.SpanSince(start), tok.Text)
	default:
		return p.b.LeafText(ast.Identifier, p.c.SpanSince(start), tok.Text)
	}
}

func (p *exprParser) parseMethodTail(isAsync, isGenerator bool) ast.NodeID {
	start := p.c.StartMark()
	params := parseParameterList(p.c, p.b)
	savedGCtx := p.c.GCtx
	p.c.GCtx = p.c.GCtx.WithAwait(isAsync).WithYield(isGenerator).WithReturn(true)
	body := parseFunctionBody(p.c, p.b)
	p.c.GCtx = savedGCtx
	flags := uint32(0)
	if isAsync {
		flags |= ast.FlagAsync
	}
	if isGenerator {
		flags |= ast.FlagGenerator
	}
	return p.b.FlaggedNode(ast.FunctionExpr, p.c.SpanSince(start), flags, append(params, body)...)
}

func (p *exprParser) parseFunctionExpr(isAsync bool) ast.NodeID {
	start := p.c.StartMark()
	p.c.Bump() // function
	isGenerator := false
	if p.c.At(token.Star) {
		isGenerator = true
		p.c.Bump()
	}
	var name ast.NodeID
	if p.c.Cur().Kind.IsIdentifierName() {
		name = p.parseBindingIdentifier()
	}
	params := parseParameterList(p.c, p.b)
	savedGCtx := p.c.GCtx
	p.c.GCtx = p.c.GCtx.WithAwait(isAsync).WithYield(isGenerator).WithReturn(true)
	body := parseFunctionBody(p.c, p.b)
	p.c.GCtx = savedGCtx
	flags := uint32(0)
	if isAsync {
		flags |= ast.FlagAsync
	}
	if isGenerator {
		flags |= ast.FlagGenerator
	}
	children := []ast.NodeID{}
	if name.IsValid() {
		children = append(children, name)
	}
	children = append(children, params...)
	children = append(children, body)
	return p.b.FlaggedNode(ast.FunctionExpr, p.c.SpanSince(start), flags, children...)
}

// parseImportExprOrMeta parses the bare `import` keyword used as an
// expression: `import(specifier, options?)` (a dynamic import call,
// requiring at least one argument) or `import.meta`. Anything else
// following a bare `import` in expression position is a syntax error, left
// to recovery to synchronize past.
func (p *exprParser) parseImportExprOrMeta(start uint32) ast.NodeID {
	p.c.Bump() // 'import'
	kw := p.b.Leaf(ast.ImportExpr, p.c.SpanSince(start))
	if p.c.At(token.Dot) {
		p.c.Bump()
		metaTok := p.c.Cur()
		if metaTok.Text != "meta" {
			p.c.Fault(diag.SynExpectedToken, metaTok.Span, "expected 'meta' after 'import.'")
		}
		p.c.Bump()
		meta := p.b.LeafText(ast.Identifier, metaTok.Span, metaTok.Text)
		return p.b.Node(ast.MemberExpr, p.c.SpanSince(start), kw, meta)
	}
	if p.c.At(token.LParen) {
		args := p.parseArguments()
		if len(args) == 0 {
			p.c.Fault(diag.SynImportRequiresSpecifer, p.c.SpanSince(start), "import call requires at least one argument")
		}
		return p.b.Node(ast.CallExpr, p.c.SpanSince(start), append([]ast.NodeID{kw}, args...)...)
	}
	p.c.Fault(diag.SynExpectedToken, p.c.Cur().Span, "expected '(' or '.' after 'import'")
	return kw
}

func (p *exprParser) parseClassExpr() ast.NodeID {
	start := p.c.StartMark()
	p.c.Bump() // class
	return parseClassTail(p.c, p.b, start, ast.ClassExpr, false)
}

func (p *exprParser) parseTemplateLiteral() ast.NodeID {
	start := p.c.StartMark()
	tok := p.c.Bump()
	elem := p.b.LeafText(ast.TemplateElement, tok.Span, tok.Text)
	if tok.Kind == token.NoSubstitutionTemplateLit {
		return p.b.Node(ast.TemplateLiteral, p.c.SpanSince(start), elem)
	}
	parts := []ast.NodeID{elem}
	for tok.Kind == token.TemplateHead || tok.Kind == token.TemplateMiddle {
		expr := p.ParseExpression()
		parts = append(parts, expr)
		if !p.c.At(token.RBrace) {
			p.c.Fault(diag.SynExpectedToken, p.c.Cur().Span, "expected '}' closing a template substitution")
			if p.c.Fatal() {
				break
			}
		}
		tok = p.c.ReLexTemplateSubstitutionTail()
		parts = append(parts, p.b.LeafText(ast.TemplateElement, tok.Span, tok.Text))
		p.c.Bump()
	}
	return p.b.Node(ast.TemplateLiteral, p.c.SpanSince(start), parts...)
}

// parseBindingIdentifier parses an identifier in binding position, flagging
// reserved-word misuse through the diagnostic bag rather than rejecting it
// outright, since recovery still wants a usable node.
func (p *exprParser) parseBindingIdentifier() ast.NodeID {
	tok := p.c.Cur()
	start := tok.Span.Start
	if !tok.CanBeBindingIdentifier(p.c.GCtx.IsStrict()) {
		p.c.Fault(diag.SynReservedWordAsIdentifier, tok.Span, "reserved word used as a binding name")
	}
	p.c.Bump()
	return p.b.LeafText(ast.Identifier, p.c.SpanSince(start), tok.Text)
}
