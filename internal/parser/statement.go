package parser

import (
	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/gctx"
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/recovery"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

// parseStatementList drives the statement-list recovery loop shared by block
// bodies, function bodies, and (via the driver) the program itself. It also
// recognizes the directive prologue: a leading run of expression statements
// whose expression is a string literal starting at the statement's own
// offset, setting StrictMode the moment "use strict" is recognized among
// them.
func parseStatementList(c *Cursor, b *ast.Builder, ctx pctx.Context) []ast.NodeID {
	prologueActive := true
	return ParseList(c, ctx,
		func(k token.Kind) bool {
			return recovery.IsContextElementStart(ctx, k, false) || (k == token.Percent && c.opts.AllowV8Intrinsics)
		},
		func() (ast.NodeID, bool) {
			start := c.StartMark()
			stmt := parseStatement(c, b)
			if prologueActive {
				if text, ok := directiveText(b, stmt, start); ok {
					if text == "use strict" {
						c.GCtx = c.GCtx.With(gctx.StrictMode)
					}
				} else {
					prologueActive = false
				}
			}
			return stmt, true
		})
}

// directiveText reports the unquoted text of stmt if it qualifies as a
// directive prologue entry: an ExprStmt whose sole child is a StringLiteral
// starting at exactly the statement's own offset (ruling out a parenthesized
// string, which is not a directive).
func directiveText(b *ast.Builder, stmt ast.NodeID, stmtStart uint32) (string, bool) {
	n := b.Get(stmt)
	if n == nil || n.Kind != ast.ExprStmt || len(n.Children) != 1 {
		return "", false
	}
	lit := b.Get(n.Children[0])
	if lit == nil || lit.Kind != ast.StringLiteral || lit.Span.Start != stmtStart {
		return "", false
	}
	raw := b.Text(lit.Str)
	if len(raw) < 2 {
		return "", false
	}
	return raw[1 : len(raw)-1], true
}

// parseStatement dispatches on the current token to the matching statement
// or declaration production. Every branch consumes at least the keyword that
// identified it, guaranteeing forward progress even when the remainder of
// the production later hits a mismatch recovery must absorb.
func parseStatement(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	switch c.Cur().Kind {
	case token.LBrace:
		return parseBlockStatement(c, b)
	case token.Semicolon:
		c.Bump()
		return b.Leaf(ast.EmptyStmt, c.SpanSince(start))
	case token.KwVar, token.KwConst:
		return parseVarDeclStatement(c, b, start)
	case token.KwLet:
		if letStartsDeclaration(c) {
			return parseVarDeclStatement(c, b, start)
		}
	case token.KwUsing:
		if usingStartsDeclaration(c) {
			return parseVarDeclStatement(c, b, start)
		}
	case token.KwFunction:
		return parseFunctionDeclaration(c, b, start, false)
	case token.KwAsync:
		if c.PeekKind() == token.KwFunction && !c.PeekOnNewLine() {
			c.Bump()
			return parseFunctionDeclaration(c, b, start, true)
		}
	case token.KwClass:
		return parseClassDeclaration(c, b, start)
	case token.At:
		return parseDecoratedStatement(c, b, start)
	case token.KwIf:
		return parseIfStatement(c, b, start)
	case token.KwFor:
		return parseForStatement(c, b, start)
	case token.KwWhile:
		return parseWhileStatement(c, b, start)
	case token.KwDo:
		return parseDoWhileStatement(c, b, start)
	case token.KwSwitch:
		return parseSwitchStatement(c, b, start)
	case token.KwTry:
		return parseTryStatement(c, b, start)
	case token.KwThrow:
		return parseThrowStatement(c, b, start)
	case token.KwReturn:
		return parseReturnStatement(c, b, start)
	case token.KwBreak, token.KwContinue:
		return parseBreakOrContinue(c, b, start)
	case token.KwDebugger:
		c.Bump()
		c.Asi()
		return b.Leaf(ast.DebuggerStmt, c.SpanSince(start))
	case token.KwImport:
		if stmt, ok := tryParseImportDeclaration(c, b, start); ok {
			return stmt
		}
	case token.KwExport:
		return parseExportDeclaration(c, b, start)
	case token.KwInterface:
		if c.TS {
			return parseInterfaceDeclaration(c, b, start)
		}
	case token.KwEnum:
		if c.TS {
			return parseEnumDeclaration(c, b, start)
		}
	case token.KwDeclare:
		if c.TS {
			return parseDeclareStatement(c, b, start)
		}
	case token.KwType:
		if c.TS && typeAliasStartsHere(c) {
			return parseTypeAliasDeclaration(c, b, start)
		}
	case token.KwNamespace, token.KwModule:
		if c.TS && moduleDeclStartsHere(c) {
			return parseModuleDeclaration(c, b, start)
		}
	}

	if c.Cur().Kind.IsIdentifierName() && c.PeekKind() == token.Colon {
		return parseLabeledStatement(c, b, start)
	}

	return parseExpressionStatement(c, b, start)
}

// letStartsDeclaration distinguishes `let` introducing a LexicalDeclaration
// from `let` spelled as an ordinary (sloppy-mode) identifier in expression
// position, by checking what follows it.
func letStartsDeclaration(c *Cursor) bool {
	switch c.PeekKind() {
	case token.LBracket, token.LBrace:
		return true
	default:
		return c.PeekKind().IsIdentifierName()
	}
}

// usingStartsDeclaration distinguishes a `using` resource declaration from
// `using` spelled as an ordinary identifier: the declaration form requires
// a binding identifier on the same line.
func usingStartsDeclaration(c *Cursor) bool {
	return c.PeekKind().IsIdentifierName() && !c.PeekOnNewLine()
}

func typeAliasStartsHere(c *Cursor) bool {
	return c.PeekKind().IsIdentifierName()
}

func moduleDeclStartsHere(c *Cursor) bool {
	return c.PeekKind().IsIdentifierName() || c.PeekKind() == token.StringLit
}

func parseBlockStatement(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	opening := c.Expect(token.LBrace)
	stmts := parseStatementList(c, b, pctx.BlockStatements)
	c.ExpectClosing(token.RBrace, opening)
	return b.Node(ast.BlockStmt, c.SpanSince(start), stmts...)
}

// parseVarDeclStatement parses `(var|let|const) declarator (',' declarator)* ;`.
func parseVarDeclStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	kw := c.Bump().Kind
	decls := parseVarDeclaratorList(c, b)
	c.Asi()
	return b.OpNode(ast.VarDeclStmt, c.SpanSince(start), kw, 0, decls...)
}

func parseVarDeclaratorList(c *Cursor, b *ast.Builder) []ast.NodeID {
	var out []ast.NodeID
	for {
		out = append(out, parseVarDeclarator(c, b))
		if !c.At(token.Comma) {
			break
		}
		c.Bump()
	}
	return out
}

func parseVarDeclarator(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	target := parseBindingTarget(c, b)
	if c.TS && c.At(token.Bang) {
		c.Bump() // definite-assignment assertion
	}
	if c.TS && c.At(token.Colon) {
		target = parseTypeAnnotation(c, b, target, start)
	}
	var init ast.NodeID
	if c.At(token.Assign) {
		c.Bump()
		ep := &exprParser{c: c, b: b}
		init = ep.ParseAssignment()
	}
	children := []ast.NodeID{target}
	if init.IsValid() {
		children = append(children, init)
	}
	return b.Node(ast.VarDeclarator, c.SpanSince(start), children...)
}

func parseFunctionDeclaration(c *Cursor, b *ast.Builder, start uint32, isAsync bool) ast.NodeID {
	c.Bump() // 'function'
	isGenerator := false
	if c.At(token.Star) {
		isGenerator = true
		c.Bump()
	}
	var name ast.NodeID
	ep := &exprParser{c: c, b: b}
	if c.Cur().Kind.IsIdentifierName() {
		name = ep.parseBindingIdentifier()
	} else {
		c.Fault(diag.SynExpectedToken, c.Cur().Span, "expected a function name")
		name = b.Dummy(c.Cur().Span)
	}
	var typeParams ast.NodeID
	if c.TS && c.At(token.Lt) {
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
	} else if c.GCtx.IsAmbient() || c.TS {
		c.Asi()
	} else {
		body = b.DummyFunctionBody(c.Cur().Span.Before())
	}
	c.GCtx = savedGCtx

	flags := uint32(0)
	if isAsync {
		flags |= ast.FlagAsync
	}
	if isGenerator {
		flags |= ast.FlagGenerator
	}
	children := []ast.NodeID{name}
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
	return b.FlaggedNode(ast.FunctionDecl, c.SpanSince(start), flags, children...)
}

func parseClassDeclaration(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'class'
	return parseClassTail(c, b, start, ast.ClassDecl, true)
}

// parseDecoratedStatement parses a run of `@decorator` expressions preceding
// a class declaration (the only statement-level position decorators attach
// to in this grammar), attaching them to the class node positionally. An
// `export`/`export default` between the decorators and the class is
// threaded through so the decorators still land on the inner class node
// rather than the export wrapper.
func parseDecoratedStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	var decorators []ast.NodeID
	for c.At(token.At) {
		decorators = append(decorators, parseDecorator(c, b))
	}

	attach := func(cls ast.NodeID) ast.NodeID {
		for _, d := range decorators {
			cls = attachDecorator(b, cls, d)
		}
		return cls
	}

	switch {
	case c.At(token.KwClass):
		c.Bump()
		return attach(parseClassTail(c, b, start, ast.ClassDecl, true))
	case c.At(token.KwExport):
		c.Bump()
		c.State.SawModuleSyntax = true
		if c.At(token.KwDefault) {
			c.Bump()
			declStart := c.StartMark()
			c.Expect(token.KwClass)
			cls := attach(parseClassTail(c, b, declStart, ast.ClassDecl, false))
			return b.Node(ast.ExportDefaultDecl, c.SpanSince(start), cls)
		}
		declStart := c.StartMark()
		c.Expect(token.KwClass)
		cls := attach(parseClassTail(c, b, declStart, ast.ClassDecl, true))
		return b.Node(ast.ExportNamedDecl, c.SpanSince(start), cls)
	default:
		c.Fault(diag.SynExpectedToken, c.Cur().Span, "expected a class declaration after decorator")
		return attach(b.Dummy(c.Cur().Span))
	}
}

func parseIfStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'if'
	opening := c.Expect(token.LParen)
	ep := &exprParser{c: c, b: b}
	test := ep.ParseExpression()
	c.ExpectClosing(token.RParen, opening)
	cons := parseStatement(c, b)
	children := []ast.NodeID{test, cons}
	if c.At(token.KwElse) {
		c.Bump()
		children = append(children, parseStatement(c, b))
	}
	return b.Node(ast.IfStmt, c.SpanSince(start), children...)
}

// parseForStatement disambiguates `for (;;)`, `for (... in ...)`, and
// `for (... of ...)` by parsing the head under [?In]=false and checking what
// follows it — the one place the [In] grammar parameter is turned off.
func parseForStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'for'
	isAwait := false
	if c.At(token.KwAwait) {
		isAwait = true
		c.Bump()
	}
	opening := c.Expect(token.LParen)

	savedGCtx := c.GCtx
	c.GCtx = c.GCtx.WithIn(false)

	var init ast.NodeID
	switch {
	case c.At(token.Semicolon):
		// no initializer
	case c.At(token.KwVar), c.At(token.KwConst), c.At(token.KwLet) && letStartsDeclaration(c):
		declStart := c.StartMark()
		kw := c.Bump().Kind
		target := parseBindingTarget(c, b)
		if c.TS && c.At(token.Colon) {
			target = parseTypeAnnotation(c, b, target, declStart)
		}
		if c.At(token.KwIn) || c.At(token.KwOf) {
			c.GCtx = savedGCtx
			return finishForInOf(c, b, start, opening, kw, target, declStart, isAwait)
		}
		var initExpr ast.NodeID
		if c.At(token.Assign) {
			c.Bump()
			ep := &exprParser{c: c, b: b}
			initExpr = ep.ParseAssignment()
		}
		children := []ast.NodeID{target}
		if initExpr.IsValid() {
			children = append(children, initExpr)
		}
		decl := b.Node(ast.VarDeclarator, c.SpanSince(declStart), children...)
		if c.At(token.Comma) {
			c.Bump()
			rest := parseVarDeclaratorList(c, b)
			init = b.OpNode(ast.VarDeclStmt, c.SpanSince(declStart), kw, 0, append([]ast.NodeID{decl}, rest...)...)
		} else {
			init = b.OpNode(ast.VarDeclStmt, c.SpanSince(declStart), kw, 0, decl)
		}
	default:
		exprStart := c.StartMark()
		ep := &exprParser{c: c, b: b}
		init = ep.ParseExpression()
		if c.At(token.KwIn) || c.At(token.KwOf) {
			c.GCtx = savedGCtx
			return finishForInOf(c, b, start, opening, token.Ident, init, exprStart, isAwait)
		}
	}

	c.Expect(token.Semicolon)
	var test ast.NodeID
	if !c.At(token.Semicolon) {
		ep := &exprParser{c: c, b: b}
		test = ep.ParseExpression()
	}
	c.Expect(token.Semicolon)
	var update ast.NodeID
	if !c.At(token.RParen) {
		ep := &exprParser{c: c, b: b}
		update = ep.ParseExpression()
	}
	c.GCtx = savedGCtx
	c.ExpectClosing(token.RParen, opening)
	body := parseStatement(c, b)

	children := []ast.NodeID{}
	if init.IsValid() {
		children = append(children, init)
	} else {
		children = append(children, ast.NoNodeID)
	}
	if test.IsValid() {
		children = append(children, test)
	} else {
		children = append(children, ast.NoNodeID)
	}
	if update.IsValid() {
		children = append(children, update)
	} else {
		children = append(children, ast.NoNodeID)
	}
	children = append(children, body)
	return b.Node(ast.ForStmt, c.SpanSince(start), children...)
}

// finishForInOf parses the shared `in`/`of` tail once the head of a
// for-statement has committed to that shape; left is either a declarator
// target (declKind != token.Ident) or a plain expression used as the
// assignment target.
func finishForInOf(c *Cursor, b *ast.Builder, start uint32, opening source.Span, declKind token.Kind, left ast.NodeID, leftStart uint32, isAwait bool) ast.NodeID {
	isOf := c.At(token.KwOf)
	c.Bump() // 'in' | 'of'
	ep := &exprParser{c: c, b: b}
	var right ast.NodeID
	if isOf {
		right = ep.ParseAssignment()
	} else {
		right = ep.ParseExpression()
	}
	c.ExpectClosing(token.RParen, opening)
	body := parseStatement(c, b)

	var leftNode ast.NodeID
	if declKind == token.Ident {
		leftNode = left
	} else {
		decl := b.Node(ast.VarDeclarator, c.SpanSince(leftStart), left)
		leftNode = b.OpNode(ast.VarDeclStmt, c.SpanSince(leftStart), declKind, 0, decl)
	}
	kind := ast.ForInStmt
	flags := uint32(0)
	if isOf {
		kind = ast.ForOfStmt
		if isAwait {
			flags |= ast.FlagAsync
		}
	}
	return b.FlaggedNode(kind, c.SpanSince(start), flags, leftNode, right, body)
}

func parseWhileStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'while'
	opening := c.Expect(token.LParen)
	ep := &exprParser{c: c, b: b}
	test := ep.ParseExpression()
	c.ExpectClosing(token.RParen, opening)
	body := parseStatement(c, b)
	return b.Node(ast.WhileStmt, c.SpanSince(start), test, body)
}

func parseDoWhileStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'do'
	body := parseStatement(c, b)
	c.Expect(token.KwWhile)
	opening := c.Expect(token.LParen)
	ep := &exprParser{c: c, b: b}
	test := ep.ParseExpression()
	c.ExpectClosing(token.RParen, opening)
	c.Asi()
	return b.Node(ast.DoWhileStmt, c.SpanSince(start), body, test)
}

func parseSwitchStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'switch'
	opening := c.Expect(token.LParen)
	ep := &exprParser{c: c, b: b}
	disc := ep.ParseExpression()
	c.ExpectClosing(token.RParen, opening)
	bodyOpening := c.Expect(token.LBrace)
	cases := ParseList(c, pctx.SwitchClauses,
		func(k token.Kind) bool { return k == token.KwCase || k == token.KwDefault },
		func() (ast.NodeID, bool) { return parseSwitchCase(c, b), true })
	c.ExpectClosing(token.RBrace, bodyOpening)
	return b.Node(ast.SwitchStmt, c.SpanSince(start), append([]ast.NodeID{disc}, cases...)...)
}

func parseSwitchCase(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	var test ast.NodeID
	if c.At(token.KwCase) {
		c.Bump()
		ep := &exprParser{c: c, b: b}
		test = ep.ParseExpression()
	} else {
		c.Expect(token.KwDefault)
	}
	c.Expect(token.Colon)
	// The clause body is a statement list whose additional, silent
	// terminators are the next `case`/`default` — a ParseList over
	// BlockStatements would mistake those for an unexpected token and
	// report before aborting, so the loop is spelled out here.
	var stmts []ast.NodeID
	for {
		if c.Fatal() || c.AtAny(token.KwCase, token.KwDefault) ||
			recovery.IsContextTerminator(pctx.BlockStatements, c.Cur().Kind) {
			break
		}
		if !recovery.IsContextElementStart(pctx.BlockStatements, c.Cur().Kind, false) {
			reportUnexpectedListToken(c, pctx.BlockStatements)
			decision := recovery.Synchronize(c.opts.RecoverFromErrors, c.Stack, pctx.BlockStatements, c.Cur().Kind, func() { c.Bump() })
			c.traceSync(pctx.BlockStatements, decision)
			if decision == recovery.Abort {
				break
			}
			continue
		}
		if c.At(token.KwUsing) && usingStartsDeclaration(c) {
			c.Fault(diag.SynUsingInSwitchCase, c.Cur().Span, "a using declaration must be inside a block within a switch case")
		}
		stmts = append(stmts, parseStatement(c, b))
	}
	children := []ast.NodeID{}
	if test.IsValid() {
		children = append(children, test)
	} else {
		children = append(children, ast.NoNodeID)
	}
	children = append(children, stmts...)
	return b.Node(ast.SwitchCase, c.SpanSince(start), children...)
}

func parseTryStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'try'
	block := parseBlockStatement(c, b)
	children := []ast.NodeID{block}

	hasCatch, hasFinally := false, false
	if c.At(token.KwCatch) {
		hasCatch = true
		children = append(children, parseCatchClause(c, b))
	}
	if c.At(token.KwFinally) {
		hasFinally = true
		c.Bump()
		children = append(children, parseBlockStatement(c, b))
	}
	if !hasCatch && !hasFinally {
		if c.opts.RecoverFromErrors {
			sp := c.Cur().Span.Before()
			c.ReportError(diag.SynOrphanCatchOrFinally, sp, "missing catch or finally after try")
			children = append(children, b.DummyCatchClause(sp))
		} else {
			c.Fault(diag.SynOrphanCatchOrFinally, c.Cur().Span, "missing catch or finally after try")
		}
	}
	return b.Node(ast.TryStmt, c.SpanSince(start), children...)
}

func parseCatchClause(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	c.Bump() // 'catch'
	var param ast.NodeID
	if c.At(token.LParen) {
		opening := c.Expect(token.LParen)
		param = parseCatchParameter(c, b)
		c.ExpectClosing(token.RParen, opening)
	}
	body := parseBlockStatement(c, b)
	children := []ast.NodeID{}
	if param.IsValid() {
		children = append(children, param)
	}
	children = append(children, body)
	return b.Node(ast.CatchClause, c.SpanSince(start), children...)
}

// parseCatchParameter fabricates the identifier `e` standing in for an
// invalid catch parameter (e.g. a numeric literal) so the catch clause
// keeps a well-formed binding.
func parseCatchParameter(c *Cursor, b *ast.Builder) ast.NodeID {
	switch {
	case c.At(token.LBrace):
		return parseObjectBindingPattern(c, b)
	case c.At(token.LBracket):
		return parseArrayBindingPattern(c, b)
	case c.Cur().Kind.IsIdentifierName():
		ep := &exprParser{c: c, b: b}
		return ep.parseBindingIdentifier()
	default:
		sp := c.Cur().Span
		c.Fault(diag.SynInvalidCatchParameter, sp, "invalid catch clause parameter")
		if c.opts.RecoverFromErrors {
			c.Bump()
			return b.DummyCatchParam(sp)
		}
		return b.DummyCatchParam(sp)
	}
}

func parseThrowStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'throw'
	if c.Cur().OnNewLine {
		c.Fault(diag.SynExpectedToken, c.Cur().Span, "no line break allowed after 'throw'")
		return b.Leaf(ast.ThrowStmt, c.SpanSince(start))
	}
	ep := &exprParser{c: c, b: b}
	arg := ep.ParseExpression()
	c.Asi()
	return b.Node(ast.ThrowStmt, c.SpanSince(start), arg)
}

func parseReturnStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'return'
	if !c.GCtx.HasReturn() && !c.opts.AllowReturnOutsideFunction {
		c.Fault(diag.SynReturnOutsideFunction, c.SpanSince(start), "return statement outside of a function")
	}
	var arg ast.NodeID
	if !c.Cur().OnNewLine && !c.AtAny(token.Semicolon, token.RBrace, token.EOF) {
		ep := &exprParser{c: c, b: b}
		arg = ep.ParseExpression()
	}
	c.Asi()
	if arg.IsValid() {
		return b.Node(ast.ReturnStmt, c.SpanSince(start), arg)
	}
	return b.Leaf(ast.ReturnStmt, c.SpanSince(start))
}

func parseBreakOrContinue(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	kind := ast.BreakStmt
	if c.Cur().Kind == token.KwContinue {
		kind = ast.ContinueStmt
	}
	c.Bump()
	var label ast.NodeID
	if !c.Cur().OnNewLine && c.Cur().Kind == token.Ident {
		tok := c.Bump()
		label = b.LeafText(ast.Identifier, tok.Span, tok.Text)
	}
	c.Asi()
	if label.IsValid() {
		return b.Node(kind, c.SpanSince(start), label)
	}
	return b.Leaf(kind, c.SpanSince(start))
}

func parseLabeledStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	tok := c.Bump()
	label := b.LeafText(ast.Identifier, tok.Span, tok.Text)
	c.Bump() // ':'
	body := parseStatement(c, b)
	return b.Node(ast.LabeledStmt, c.SpanSince(start), label, body)
}

func parseExpressionStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	ep := &exprParser{c: c, b: b}
	expr := ep.ParseExpression()
	c.Asi()
	return b.Node(ast.ExprStmt, c.SpanSince(start), expr)
}

// ---------------------------------------------------------------------
// Modules: import/export declarations
// ---------------------------------------------------------------------

// tryParseImportDeclaration attempts the declaration reading of a leading
// `import`, falling back (ok=false) when what follows can only be the
// dynamic-import/import.meta expression forms, which parseExpressionStatement
// handles through the ordinary expression grammar.
func tryParseImportDeclaration(c *Cursor, b *ast.Builder, start uint32) (ast.NodeID, bool) {
	if c.PeekKind() == token.LParen || c.PeekKind() == token.Dot {
		return ast.NoNodeID, false
	}
	c.Bump() // 'import'
	c.State.SawModuleSyntax = true

	if c.TS && c.Cur().Kind.IsIdentifierName() && c.PeekKind() == token.Assign {
		return parseImportEquals(c, b, start), true
	}

	var children []ast.NodeID
	isTypeOnly := false
	if c.TS && c.At(token.KwType) && c.PeekKind() != token.KwFrom && c.PeekKind() != token.Comma {
		isTypeOnly = true
		c.Bump()
	}

	switch {
	case c.Cur().Kind == token.StringLit:
		// import "module";
	case c.Cur().Kind.IsIdentifierName() && c.Cur().Kind != token.LBrace:
		tok := c.Bump()
		name := b.LeafText(ast.Identifier, tok.Span, tok.Text)
		children = append(children, b.Node(ast.ImportDefaultSpecifier, tok.Span, name))
		if c.At(token.Comma) {
			c.Bump()
		}
	}
	if c.At(token.Star) {
		starStart := c.StartMark()
		c.Bump()
		c.Expect(token.KwAs)
		ep := &exprParser{c: c, b: b}
		name := ep.parseBindingIdentifier()
		children = append(children, b.Node(ast.ImportNamespaceSpecifier, c.SpanSince(starStart), name))
	} else if c.At(token.LBrace) {
		opening := c.Expect(token.LBrace)
		specs := ParseCommaList(c, pctx.ImportSpecifiers, token.RBrace,
			func(k token.Kind) bool { return k.IsIdentifierName() },
			func() (ast.NodeID, bool) { return parseImportSpecifier(c, b), true })
		c.ExpectClosing(token.RBrace, opening)
		children = append(children, specs...)
	}

	var source ast.NodeID
	if len(children) > 0 {
		c.Expect(token.KwFrom)
	}
	if c.At(token.StringLit) {
		tok := c.Bump()
		source = b.LeafText(ast.StringLiteral, tok.Span, tok.Text)
	} else {
		c.Fault(diag.SynImportRequiresSpecifer, c.Cur().Span, "expected a module specifier")
		source = b.Dummy(c.Cur().Span)
	}
	children = append(children, source)
	c.Asi()

	flags := uint32(0)
	if isTypeOnly {
		flags |= ast.FlagReadonly
	}
	return b.FlaggedNode(ast.ImportDecl, c.SpanSince(start), flags, children...), true
}

func parseImportSpecifier(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	tok := c.Bump()
	imported := b.LeafText(ast.Identifier, tok.Span, tok.Text)
	if c.At(token.KwAs) {
		c.Bump()
		ep := &exprParser{c: c, b: b}
		local := ep.parseBindingIdentifier()
		return b.Node(ast.ImportSpecifier, c.SpanSince(start), imported, local)
	}
	return b.Node(ast.ImportSpecifier, c.SpanSince(start), imported)
}

// parseImportEquals parses TypeScript's `import X = require("mod")` /
// `import X = A.B.C` form.
func parseImportEquals(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	ep := &exprParser{c: c, b: b}
	name := ep.parseBindingIdentifier()
	c.Bump() // '='
	var ref ast.NodeID
	if c.At(token.KwRequire) && c.PeekKind() == token.LParen {
		c.Bump()
		args := ep.parseArguments()
		if len(args) > 0 {
			ref = args[0]
		}
	} else {
		ref = parseEntityName(c, b)
	}
	c.Asi()
	children := []ast.NodeID{name}
	if ref.IsValid() {
		children = append(children, ref)
	}
	return b.Node(ast.TSImportEqualsDecl, c.SpanSince(start), children...)
}

func parseExportDeclaration(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'export'
	c.State.SawModuleSyntax = true

	if c.At(token.KwDefault) {
		c.Bump()
		var decl ast.NodeID
		switch {
		case c.At(token.KwFunction):
			decl = parseFunctionDeclaration(c, b, c.StartMark(), false)
		case c.At(token.KwAsync) && c.PeekKind() == token.KwFunction:
			c.Bump()
			decl = parseFunctionDeclaration(c, b, c.StartMark(), true)
		case c.At(token.KwClass):
			declStart := c.StartMark()
			c.Bump()
			decl = parseClassTail(c, b, declStart, ast.ClassDecl, false)
		default:
			ep := &exprParser{c: c, b: b}
			decl = ep.ParseAssignment()
			c.Asi()
		}
		return b.Node(ast.ExportDefaultDecl, c.SpanSince(start), decl)
	}

	if c.At(token.Star) {
		c.Bump()
		var exported ast.NodeID
		if c.At(token.KwAs) {
			c.Bump()
			ep := &exprParser{c: c, b: b}
			exported = ep.parseBindingIdentifier()
		}
		c.Expect(token.KwFrom)
		srcTok := c.Cur()
		c.Expect(token.StringLit)
		src := b.LeafText(ast.StringLiteral, srcTok.Span, srcTok.Text)
		c.Asi()
		children := []ast.NodeID{}
		if exported.IsValid() {
			children = append(children, exported)
		}
		children = append(children, src)
		return b.Node(ast.ExportAllDecl, c.SpanSince(start), children...)
	}

	if c.At(token.LBrace) {
		opening := c.Expect(token.LBrace)
		specs := ParseCommaList(c, pctx.ExportSpecifiers, token.RBrace,
			func(k token.Kind) bool { return k.IsIdentifierName() },
			func() (ast.NodeID, bool) { return parseExportSpecifier(c, b), true })
		c.ExpectClosing(token.RBrace, opening)
		children := specs
		if c.At(token.KwFrom) {
			c.Bump()
			srcTok := c.Cur()
			c.Expect(token.StringLit)
			children = append(children, b.LeafText(ast.StringLiteral, srcTok.Span, srcTok.Text))
		}
		c.Asi()
		return b.Node(ast.ExportNamedDecl, c.SpanSince(start), children...)
	}

	if c.At(token.KwUsing) {
		c.Fault(diag.SynExportUsing, c.Cur().Span, "a using declaration cannot be exported")
	}

	decl := parseStatement(c, b)
	return b.Node(ast.ExportNamedDecl, c.SpanSince(start), decl)
}

func parseExportSpecifier(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	tok := c.Bump()
	local := b.LeafText(ast.Identifier, tok.Span, tok.Text)
	if c.At(token.KwAs) {
		c.Bump()
		exportedTok := c.Bump()
		exported := b.LeafText(ast.Identifier, exportedTok.Span, exportedTok.Text)
		return b.Node(ast.ExportSpecifier, c.SpanSince(start), local, exported)
	}
	return b.Node(ast.ExportSpecifier, c.SpanSince(start), local)
}

// ---------------------------------------------------------------------
// TypeScript-only declarations
// ---------------------------------------------------------------------

func parseInterfaceDeclaration(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'interface'
	ep := &exprParser{c: c, b: b}
	name := ep.parseBindingIdentifier()
	children := []ast.NodeID{name}
	if c.At(token.Lt) {
		children = append(children, parseTypeParameterDecl(c, b))
	}
	if c.At(token.KwExtends) {
		hStart := c.StartMark()
		c.Bump()
		refs := ParseCommaList(c, pctx.TypeMembers, token.LBrace,
			func(k token.Kind) bool { return k.IsIdentifierName() },
			func() (ast.NodeID, bool) { return parseTypeReference(c, b), true })
		children = append(children, b.Node(ast.TSHeritageClause, c.SpanSince(hStart), refs...))
	}
	if c.At(token.KwImplements) {
		c.Fault(diag.SynImplementsOnInterface, c.Cur().Span, "an interface cannot have an implements clause")
	}
	bodyStart := c.StartMark()
	opening := c.Expect(token.LBrace)
	members := ParseList(c, pctx.TypeMembers,
		func(k token.Kind) bool { return k != token.RBrace && k != token.Semicolon && k != token.Comma },
		func() (ast.NodeID, bool) { return parseTypeMember(c, b) })
	c.ExpectClosing(token.RBrace, opening)
	body := b.Node(ast.TSInterfaceBody, c.SpanSince(bodyStart), members...)
	children = append(children, body)
	return b.Node(ast.TSInterfaceDecl, c.SpanSince(start), children...)
}

func parseTypeAliasDeclaration(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'type'
	ep := &exprParser{c: c, b: b}
	name := ep.parseBindingIdentifier()
	children := []ast.NodeID{name}
	if c.At(token.Lt) {
		children = append(children, parseTypeParameterDecl(c, b))
	}
	c.Expect(token.Assign)
	children = append(children, parseType(c, b))
	c.Asi()
	return b.Node(ast.TSTypeAliasDecl, c.SpanSince(start), children...)
}

func parseEnumDeclaration(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'enum'
	ep := &exprParser{c: c, b: b}
	name := ep.parseBindingIdentifier()
	opening := c.Expect(token.LBrace)
	members := ParseCommaList(c, pctx.EnumMembers, token.RBrace,
		func(k token.Kind) bool { return k.IsIdentifierName() || k == token.NumericLit || k == token.StringLit || k == token.LBracket },
		func() (ast.NodeID, bool) { return parseEnumMember(c, b), true })
	c.ExpectClosing(token.RBrace, opening)
	return b.Node(ast.TSEnumDecl, c.SpanSince(start), append([]ast.NodeID{name}, members...)...)
}

// parseEnumMember substitutes a placeholder identifier (`_N`,
// `__computed__`, `__template__`) when the member name's syntax doesn't
// admit a plain identifier/string spelling.
func parseEnumMember(c *Cursor, b *ast.Builder) ast.NodeID {
	start := c.StartMark()
	var name ast.NodeID
	switch {
	case c.At(token.NumericLit):
		tok := c.Bump()
		c.Fault(diag.SynNumericEnumMemberName, tok.Span, "enum member name cannot be numeric")
		name = b.DummyEnumMemberName(tok.Span, "_"+tok.Text)
	case c.At(token.LBracket):
		sp := c.Cur().Span
		c.Bump()
		ep := &exprParser{c: c, b: b}
		ep.ParseAssignment()
		c.ExpectClosing(token.RBracket, sp)
		c.Fault(diag.SynComputedEnumMemberName, sp, "enum member name cannot be computed")
		name = b.DummyEnumMemberName(c.SpanSince(sp.Start), "__computed__")
	case c.At(token.NoSubstitutionTemplateLit), c.At(token.TemplateHead):
		sp := c.Cur().Span
		ep := &exprParser{c: c, b: b}
		ep.parseTemplateLiteral()
		c.Fault(diag.SynComputedEnumMemberName, sp, "enum member name cannot be a template literal")
		name = b.DummyEnumMemberName(c.SpanSince(sp.Start), "__template__")
	case c.At(token.StringLit):
		tok := c.Bump()
		name = b.LeafText(ast.StringLiteral, tok.Span, tok.Text)
	default:
		ep := &exprParser{c: c, b: b}
		name = ep.parseBindingIdentifier()
	}
	var init ast.NodeID
	if c.At(token.Assign) {
		c.Bump()
		ep := &exprParser{c: c, b: b}
		init = ep.ParseAssignment()
	}
	if init.IsValid() {
		return b.Node(ast.TSEnumMember, c.SpanSince(start), name, init)
	}
	return b.Node(ast.TSEnumMember, c.SpanSince(start), name)
}

// parseModuleDeclaration parses `namespace Foo.Bar { ... }` or
// `module "foo" { ... }`, nesting Ambient correctly across repeated
// `declare namespace` chains.
func parseModuleDeclaration(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'namespace' | 'module'
	var name ast.NodeID
	if c.At(token.StringLit) {
		tok := c.Bump()
		name = b.LeafText(ast.StringLiteral, tok.Span, tok.Text)
	} else {
		name = parseEntityName(c, b)
	}
	var body ast.NodeID
	if c.At(token.LBrace) {
		bodyStart := c.StartMark()
		opening := c.Expect(token.LBrace)
		stmts := parseStatementList(c, b, pctx.BlockStatements)
		c.ExpectClosing(token.RBrace, opening)
		body = b.Node(ast.TSModuleBlock, c.SpanSince(bodyStart), stmts...)
	} else {
		c.Asi()
	}
	children := []ast.NodeID{name}
	if body.IsValid() {
		children = append(children, body)
	}
	return b.Node(ast.TSModuleDecl, c.SpanSince(start), children...)
}

// parseDeclareStatement sets Ambient for the declaration that follows,
// restoring the previous value afterward so nested `declare namespace`
// chains nest properly rather than leaking Ambient past their own block.
func parseDeclareStatement(c *Cursor, b *ast.Builder, start uint32) ast.NodeID {
	c.Bump() // 'declare'
	savedGCtx := c.GCtx
	c.GCtx = c.GCtx.With(gctx.Ambient)
	inner := parseStatement(c, b)
	c.GCtx = savedGCtx
	n := b.Get(inner)
	n.Flags |= ast.FlagDeclare
	return inner
}
