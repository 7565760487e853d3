// Package parser implements the grammar-level Cursor, the statement/
// expression/type/class/JSX production parsers, dummy-node fabrication, and
// the program-level driver — "core of the core" plus the
// mechanical grammar surface it recovers around.
package parser

import (
	"fmt"

	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/fix"
	"ecmaparser/internal/gctx"
	"ecmaparser/internal/lexer"
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/recovery"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
	"ecmaparser/internal/trace"
)

// FatalError is set the first time a non-recoverable mismatch occurs while
// RecoverFromErrors is false. ErrorsLenAtFault records the diagnostic bag's
// length at that moment so finalization can discard anything recorded after
// it — "a checkpoint can discard later errors on rewind" applies
// equally to the one-shot fatal path.
type FatalError struct {
	Diagnostic       diag.Diagnostic
	ErrorsLenAtFault int
}

// Cursor is the token-stream abstraction every production parses against:
// current token/previous-end bookkeeping, at/eat/bump/expect/expect_closing,
// checkpoint/rewind/try-parse/lookahead, and the re-lex escape hatches.
// Exactly one Cursor exists per parse.
type Cursor struct {
	lx     *lexer.Lexer
	file   *source.File
	opts   Options
	bag    *diag.Bag
	tracer trace.Tracer

	tok     token.Token
	prevEnd uint32
	fatal   *FatalError

	Stack *pctx.Stack
	GCtx  gctx.Context
	State *State

	// JSX reports whether the active SourceType recognizes JSX syntax at
	// expression-start position (a lone `<` otherwise always begins a
	// relational/generic-instantiation expression).
	JSX bool

	// TS reports whether the active SourceType is TypeScript or a
	// TypeScript declaration file, gating interface/type-alias/enum/
	// `declare`/ambient-module statements and type annotations throughout
	// the statement and class grammar.
	TS bool
}

// NewCursor primes the cursor with the first token from lx.
func NewCursor(file *source.File, lx *lexer.Lexer, opts Options, bag *diag.Bag, tr trace.Tracer) *Cursor {
	if tr == nil {
		tr = trace.Nop
	}
	c := &Cursor{
		lx:     lx,
		file:   file,
		opts:   opts,
		bag:    bag,
		tracer: tr,
		Stack:  pctx.NewStack(),
		GCtx:   gctx.Default,
		State:  NewState(),
	}
	c.tok = lx.Next()
	return c
}

// PeekKind returns the kind of the token after the current one without
// consuming either. Implemented through the lexer's own single-token
// lookahead buffer, so it is safe to call at most once between Bumps.
func (c *Cursor) PeekKind() token.Kind { return c.lx.Peek().Kind }

// PeekOnNewLine reports whether the token after the current one began on a
// new line, used by `async`/`get`/`set` contextual-keyword disambiguation
// where a following line break rules out the contextual reading.
func (c *Cursor) PeekOnNewLine() bool { return c.lx.Peek().OnNewLine }

// Cur returns the current token.
func (c *Cursor) Cur() token.Token { return c.tok }

// PrevEnd returns the byte offset immediately after the previously consumed
// token — every AST span closes here.
func (c *Cursor) PrevEnd() uint32 { return c.prevEnd }

// FileID returns the file identity used to build spans.
func (c *Cursor) FileID() source.FileID { return c.file.ID }

// Span builds a span in the current file.
func (c *Cursor) Span(start, end uint32) source.Span {
	return source.Span{File: c.file.ID, Start: start, End: end}
}

// StartMark returns the start offset of the current token, the
// conventional opening mark for a production about to be parsed.
func (c *Cursor) StartMark() uint32 { return c.tok.Span.Start }

// SpanSince closes a span from start to the current prevEnd.
func (c *Cursor) SpanSince(start uint32) source.Span { return c.Span(start, c.prevEnd) }

// Fatal reports whether a non-recoverable error has occurred.
func (c *Cursor) Fatal() bool { return c.fatal != nil }

// Bag exposes the diagnostic bag for read-only inspection (finalization,
// try_parse bookkeeping).
func (c *Cursor) Bag() *diag.Bag { return c.bag }

// Options returns the active parse configuration.
func (c *Cursor) Options() Options { return c.opts }

// Tracer returns the tracer instrumented call sites emit into.
func (c *Cursor) Tracer() trace.Tracer { return c.tracer }

// traceSync records one synchronization decision as a recovery-scope point
// event: which context it happened in, whether the token was skipped or
// the context aborted, and the byte offset of the offending token.
func (c *Cursor) traceSync(ctx pctx.Context, decision recovery.Decision) {
	name := "sync:skip"
	if decision == recovery.Abort {
		name = "sync:abort"
	}
	trace.Point(c.tracer, trace.ScopeRecovery, name, ctx.String(), c.tok.Span.Start)
}

// ---------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------

// At reports whether the current token is of kind k.
func (c *Cursor) At(k token.Kind) bool { return c.tok.Kind == k }

// AtAny reports whether the current token is any of ks.
func (c *Cursor) AtAny(ks ...token.Kind) bool {
	for _, k := range ks {
		if c.tok.Kind == k {
			return true
		}
	}
	return false
}

// advance pulls the next token, closing the current one at prevEnd.
func (c *Cursor) advance() {
	c.prevEnd = c.tok.Span.End
	c.tok = c.lx.Next()
}

// Bump advances unconditionally and returns the token that was current.
func (c *Cursor) Bump() token.Token {
	prev := c.tok
	c.advance()
	return prev
}

// Eat advances iff the current token matches k, reporting an
// escaped-keyword diagnostic first if the matched token was an escape
// spelling of a keyword.
func (c *Cursor) Eat(k token.Kind) bool {
	if c.tok.Kind != k {
		return false
	}
	if c.tok.Escaped && c.tok.Kind.IsKeyword() {
		c.ReportError(diag.SynEscapedKeyword, c.tok.Span, "keyword written with an escape sequence")
	}
	c.Bump()
	return true
}

// Expect advances past k, reporting (recovery) or faulting (non-recovery)
// if the current token does not match; either way the cursor still
// advances, guaranteeing forward progress for the caller. Expecting `(`
// while recovery is enabled pushes the token's span onto ParenStack before
// advancing, matched or not.
func (c *Cursor) Expect(k token.Kind) source.Span {
	sp := c.tok.Span
	if k == token.LParen && c.opts.RecoverFromErrors {
		c.State.ParenStack = append(c.State.ParenStack, sp)
	}
	if c.tok.Kind == k {
		c.Bump()
		return sp
	}
	c.handleExpectFailure(k)
	c.Bump()
	return sp
}

func (c *Cursor) handleExpectFailure(k token.Kind) {
	msg := fmt.Sprintf("expected %s but found %s", k, c.tok.Kind)
	d := diag.NewError(diag.SynExpectedToken, c.tok.Span, msg)
	if c.opts.RecoverFromErrors {
		c.emit(d)
		return
	}
	c.setFatal(d)
}

// ExpectClosing expects k as the matching closer of a construct opened at
// opening. In recovery mode, a `)` closer always pops ParenStack, matched
// or not — an absent close is treated as implicit and the stack must still
// shrink. A mismatch reports but does not consume the current token: the
// closer is treated as implicitly present, and whatever actually stands
// here belongs to the enclosing production (the `{` of a function body
// after an unterminated parameter list must survive for the body parse).
func (c *Cursor) ExpectClosing(k token.Kind, opening source.Span) {
	if c.opts.RecoverFromErrors && k == token.RParen {
		if n := len(c.State.ParenStack); n > 0 {
			c.State.ParenStack = c.State.ParenStack[:n-1]
		}
	}
	if c.tok.Kind == k {
		c.Bump()
		return
	}
	msg := fmt.Sprintf("expected closing %s", k)
	d := diag.NewError(diag.SynExpectedClosing, c.tok.Span, msg).WithLabel(opening, "unclosed delimiter opened here")
	if lit := delimiterText(k); lit != "" {
		at := c.Span(c.prevEnd, c.prevEnd)
		d = d.WithFixSuggestion(fix.InsertText("insert missing "+lit, at, lit, ""))
	}
	if c.opts.RecoverFromErrors {
		c.emit(d)
		return
	}
	c.setFatal(d)
}

// delimiterText returns the literal spelling of a closing delimiter kind,
// or "" when the kind has no single canonical spelling to insert.
func delimiterText(k token.Kind) string {
	switch k {
	case token.RParen:
		return ")"
	case token.RBracket:
		return "]"
	case token.RBrace:
		return "}"
	case token.Gt:
		return ">"
	default:
		return ""
	}
}

// Asi implements Automatic Semicolon Insertion: silent
// acceptance before `;` (consumed), `}`, EOF, or a token that began on a
// new line; otherwise a diagnostic at the zero-length span immediately
// after the previous token.
func (c *Cursor) Asi() {
	if c.tok.Kind == token.Semicolon {
		c.Bump()
		return
	}
	if c.tok.Kind == token.RBrace || c.tok.Kind == token.EOF || c.tok.OnNewLine {
		return
	}
	sp := c.Span(c.prevEnd, c.prevEnd)
	d := diag.NewError(diag.SynExpectedSemicolon, sp, "expected a semicolon").
		WithFixSuggestion(fix.InsertText("insert ';'", sp, ";", ""))
	if c.opts.RecoverFromErrors {
		c.emit(d)
	} else {
		c.setFatal(d)
	}
}

// ---------------------------------------------------------------------
// Diagnostics
// ---------------------------------------------------------------------

func (c *Cursor) emit(d diag.Diagnostic) {
	c.bag.Add(&d)
}

// ReportError records a SevError diagnostic. In non-recovery mode callers
// that need fatal semantics should use Fault instead.
func (c *Cursor) ReportError(code diag.Code, sp source.Span, msg string) {
	c.emit(diag.NewError(code, sp, msg))
}

// Fault records a diagnostic and, when recovery is disabled, sets fatal.
func (c *Cursor) Fault(code diag.Code, sp source.Span, msg string) {
	d := diag.NewError(code, sp, msg)
	if c.opts.RecoverFromErrors {
		c.emit(d)
		return
	}
	c.setFatal(d)
}

func (c *Cursor) setFatal(d diag.Diagnostic) {
	if c.fatal != nil {
		return
	}
	c.fatal = &FatalError{Diagnostic: d, ErrorsLenAtFault: c.bag.Len()}
}

// TakeFatal returns the fatal error, if any, for driver finalization.
func (c *Cursor) TakeFatal() *FatalError { return c.fatal }

// ---------------------------------------------------------------------
// Checkpoint / rewind / speculation
// ---------------------------------------------------------------------

// Checkpoint is the savepoint names ParserCheckpoint.
type Checkpoint struct {
	lexerOff  uint32
	tok       token.Token
	prevEnd   uint32
	errorsLen int
	fatal     *FatalError
	stack     []pctx.Context
	gctx      gctx.Context
}

// Mark takes a savepoint of all cursor-observable state.
func (c *Cursor) Mark() Checkpoint {
	return Checkpoint{
		lexerOff:  c.lx.Offset(),
		tok:       c.tok,
		prevEnd:   c.prevEnd,
		errorsLen: c.bag.Len(),
		fatal:     c.fatal,
		stack:     c.Stack.Snapshot(),
		gctx:      c.GCtx,
	}
}

// Rewind restores cursor-observable state to a prior Mark, discarding any
// diagnostics recorded since, per "a checkpoint can discard later
// errors on rewind".
func (c *Cursor) Rewind(ck Checkpoint) {
	c.lx.SeekTo(ck.lexerOff)
	c.tok = ck.tok
	c.prevEnd = ck.prevEnd
	c.bag.Truncate(ck.errorsLen)
	c.fatal = ck.fatal
	c.Stack.Restore(ck.stack)
	c.GCtx = ck.gctx
}

// TryParse runs f under a checkpoint. It commits (returns v, true) only if
// neither a fatal error nor any new diagnostic was recorded; otherwise it
// rewinds and returns the zero value and false. Diagnostic count, not just
// fatal, gates the commit — otherwise a speculative branch that recorded a
// recoverable error would irreversibly pollute the output.
func TryParse[T any](c *Cursor, f func() T) (T, bool) {
	ck := c.Mark()
	v := f()
	if c.fatal != nil || c.bag.Len() != ck.errorsLen {
		c.Rewind(ck)
		var zero T
		return zero, false
	}
	return v, true
}

// TryParseNode is TryParse for sub-parsers that signal "this isn't my
// production" by returning ast.NoNodeID after having already consumed
// tokens: an invalid result rewinds exactly like a new diagnostic would,
// so the caller's alternative interpretation starts from unmoved state.
func TryParseNode(c *Cursor, f func() ast.NodeID) (ast.NodeID, bool) {
	ck := c.Mark()
	v := f()
	if !v.IsValid() || c.fatal != nil || c.bag.Len() != ck.errorsLen {
		c.Rewind(ck)
		return ast.NoNodeID, false
	}
	return v, true
}

// Lookahead is a pure oracle: it always rewinds, regardless of outcome.
// Callers must ensure f has no side effects beyond consuming tokens and
// emitting diagnostics, both of which are rewound.
func Lookahead[T any](c *Cursor, f func() T) T {
	ck := c.Mark()
	v := f()
	c.Rewind(ck)
	return v
}

// ---------------------------------------------------------------------
// Re-lexing
// ---------------------------------------------------------------------

type angleSplit struct{ Single, Rest token.Kind }

var angleSplits = map[token.Kind]angleSplit{
	token.Shr:        {token.Gt, token.Gt},
	token.UShr:       {token.Gt, token.Shr},
	token.ShrAssign:  {token.Gt, token.GtEq},
	token.GtEq:       {token.Gt, token.Assign},
	token.UShrAssign: {token.Gt, token.ShrAssign},
	token.Shl:        {token.Lt, token.Lt},
	token.ShlAssign:  {token.Lt, token.LtEq},
	token.LtEq:       {token.Lt, token.Assign},
}

// splitLeadingAngle splits a composite operator token into a lone `<`/`>`
// plus whatever remains, pushing the remainder back as lookahead. A no-op
// (returns false) once fatal is set, matching the other re-lex hooks.
func (c *Cursor) splitLeadingAngle() bool {
	if c.fatal != nil {
		return false
	}
	pair, ok := angleSplits[c.tok.Kind]
	if !ok {
		return false
	}
	sp := c.tok.Span
	text := c.tok.Text
	firstText, restText := "", ""
	if len(text) > 0 {
		firstText = text[:1]
	}
	if len(text) > 1 {
		restText = text[1:]
	}
	restSpan := source.Span{File: sp.File, Start: sp.Start + 1, End: sp.End}
	c.lx.Push(token.Token{Kind: pair.Rest, Span: restSpan, Text: restText, OnNewLine: false})
	c.tok = token.Token{Kind: pair.Single, Span: source.Span{File: sp.File, Start: sp.Start, End: sp.Start + 1}, Text: firstText, OnNewLine: c.tok.OnNewLine}
	return true
}

// ReLexRightAngle asks the lexer to reinterpret the current token as a
// lone `>` closing a type-argument list, splitting `>>`/`>>>`/`>=`/… as
// needed. Returns true if the current token is now (or already was) `>`.
func (c *Cursor) ReLexRightAngle() bool {
	if c.tok.Kind == token.Gt {
		return true
	}
	return c.splitLeadingAngle()
}

// ReLexTSRAngle is an alias used by the type-argument-list parser for
// ReLexRightAngle, matching convention.
func (c *Cursor) ReLexTSRAngle() bool { return c.ReLexRightAngle() }

// ReLexTSLAngle is the symmetric hook for `<<`/`<<=`/`<=` composite tokens.
func (c *Cursor) ReLexTSLAngle() bool {
	if c.tok.Kind == token.Lt {
		return true
	}
	return c.splitLeadingAngle()
}

// ReLexTemplateSubstitutionTail is invoked once the cursor's current token
// is the `}` closing a template substitution expression: it replaces that
// token in place with the TemplateMiddle/TemplateTail chunk that follows,
// since the underlying lexer position is already past the `}`.
func (c *Cursor) ReLexTemplateSubstitutionTail() token.Token {
	if c.fatal != nil {
		return c.tok
	}
	c.prevEnd = c.tok.Span.End
	c.lx.SeekTo(c.prevEnd)
	c.tok = c.lx.ReLexTemplateSubstitutionTail()
	return c.tok
}

// ReLexRegExp re-lexes the current `/` or `/=` token as a regular
// expression literal, used at expression-start position.
func (c *Cursor) ReLexRegExp() token.Token {
	if c.fatal != nil {
		return c.tok
	}
	c.tok = c.lx.ScanRegExp(c.tok.Span.Start)
	return c.tok
}

// ReLexJSXIdentifier re-lexes the current token's start as a JSX
// element/attribute name, splicing together what a normal scan would have
// returned as several dash-separated identifiers/operators.
func (c *Cursor) ReLexJSXIdentifier() token.Token {
	if c.fatal != nil {
		return c.tok
	}
	c.tok = c.lx.ScanJSXIdentifier(c.tok.Span.Start)
	return c.tok
}

// SetJSXTextMode switches the lexer between ordinary token scanning and raw
// JSX child-text scanning, refilling the current token from the new mode.
// Switching on seeks the lexer back to the end of the last consumed token —
// undoing whatever ordinary-mode lookahead had already been taken past a
// JSX opening tag's `>` — and refills the current token as the JsxText run
// up to the next `<` or `{`. Switching off closes that text token at its own
// span (it was never consumed through Bump) and refills the current token
// as whatever ordinary token starts at the unconsumed `<`/`{` boundary.
func (c *Cursor) SetJSXTextMode(on bool) token.Token {
	if c.fatal != nil {
		return c.tok
	}
	if on {
		c.lx.SeekTo(c.prevEnd)
	} else {
		c.prevEnd = c.tok.Span.End
	}
	c.lx.SetJSXTextMode(on)
	c.tok = c.lx.Next()
	return c.tok
}
