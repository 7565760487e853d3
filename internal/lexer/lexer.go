package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

const maxTokenLength = 64 * 1024 // hard limit in bytes to avoid pathological tokens

// lexMode controls which family of scan routines Next dispatches into. The
// parser switches modes explicitly around constructs the grammar itself is
// context-sensitive about (regex vs divide, JSX text vs expression, template
// substitution tails) — the lexer never guesses.
type lexMode uint8

const (
	modeNormal lexMode = iota
	modeJSXText
)

// Lexer converts source content into a stream of tokens. It holds exactly
// one token of lookahead and the accumulated leading trivia of the token not
// yet returned, matching the parser's single-current-token Cursor contract.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	mode   lexMode

	look      *token.Token
	lookStart uint32
	hold      []token.Trivia
	last      token.Token
	hasLast   bool

	pendingNewLine      bool
	irregularWhitespace []source.Span
}

// New creates a new Lexer for the provided file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		mode:   modeNormal,
	}
}

// SetJSXTextMode switches the lexer between normal token scanning and JSX
// child-text scanning; the parser flips this around `>`...`<` boundaries
// inside a JSX element.
func (lx *Lexer) SetJSXTextMode(on bool) {
	if on {
		lx.mode = modeJSXText
	} else {
		lx.mode = modeNormal
	}
	lx.look = nil
}

// IrregularWhitespace returns the spans of non-ASCII whitespace code points
// encountered so far, surfaced on the final parse result.
func (lx *Lexer) IrregularWhitespace() []source.Span {
	return lx.irregularWhitespace
}

// Next returns the next significant token with its leading trivia already
// attached. After EOF it always returns an EOF token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		lx.last = tok
		lx.hasLast = true
		return tok
	}

	if lx.mode == modeJSXText {
		tok := lx.scanJSXText()
		lx.last = tok
		lx.hasLast = true
		return tok
	}

	lx.collectLeadingTrivia()
	onNewLine := lx.pendingNewLine

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan(), OnNewLine: onNewLine}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case ch == '\\' && lx.startsUnicodeEscape():
		// An identifier may begin with a `\uXXXX` escape (`if`).
		tok = lx.scanIdentOrKeyword()
	case ch == '#':
		tok = lx.scanPrivateIdent()
	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)
	case ch == '`':
		tok = lx.scanTemplate(true)
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	tok.OnNewLine = onNewLine
	lx.hold = nil

	lx.enforceTokenLength(&tok)

	lx.last = tok
	lx.hasLast = true
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	start := lx.cursor.Off
	t := lx.Next()
	lx.look = &t
	lx.lookStart = start
	return t
}

// Push injects a token back into the lookahead buffer, used by re-lex hooks
// that need to hand the cursor a replacement token. Any token already
// buffered is un-peeked first so it is re-scanned rather than lost.
func (lx *Lexer) Push(tok token.Token) {
	lx.Unpeek()
	lx.look = &tok
	lx.lookStart = tok.Span.Start
}

// Unpeek discards buffered lookahead, rewinding the scan position to where
// the buffered token's leading trivia began so the token is produced again
// by the next call to Next.
func (lx *Lexer) Unpeek() {
	if lx.look == nil {
		return
	}
	lx.cursor.Off = lx.lookStart
	lx.look = nil
	lx.hold = nil
}

// Offset returns the byte offset the next scan would start from — the
// position the buffered lookahead's leading trivia began at when one is
// held — used to build checkpoints that survive a Peek.
func (lx *Lexer) Offset() uint32 {
	if lx.look != nil {
		return lx.lookStart
	}
	return lx.cursor.Off
}

// SeekTo repositions the lexer to a previously observed offset, discarding
// any buffered lookahead and trivia — used by checkpoint rewind and the
// re-lex hooks. Checkpoints are only ever taken in normal mode, so a seek
// also drops any JSX-text mode a rewound speculation left switched on.
func (lx *Lexer) SeekTo(off uint32) {
	lx.cursor.Off = off
	lx.look = nil
	lx.hold = nil
	lx.mode = modeNormal
}

// startsUnicodeEscape reports whether the cursor sits on `\u`, the only
// backslash form that can begin an IdentifierName.
func (lx *Lexer) startsUnicodeEscape() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '\\' && b1 == 'u'
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) enforceTokenLength(tok *token.Token) {
	if tok == nil {
		return
	}
	length := tok.Span.End - tok.Span.Start
	if length <= maxTokenLength {
		return
	}
	msg := fmt.Sprintf("token length %d exceeds limit %d", length, maxTokenLength)
	lx.errLex(diag.LexTokenTooLong, tok.Span, msg)
	tok.Kind = token.Invalid
	if tok.Text == "" && tok.Span.End > tok.Span.Start && int(tok.Span.End) <= len(lx.file.Content) {
		tok.Text = lx.text(tok.Span)
	}
	if off, err := safecast.Conv[uint32](len(lx.file.Content)); err == nil {
		lx.cursor.Off = off
	}
}
