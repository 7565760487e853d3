package lexer

import (
	"ecmaparser/internal/diag"
	"ecmaparser/internal/token"
)

// scanString scans a single- or double-quoted string literal starting at
// the opening quote ch. Escape sequences are validated but not decoded —
// Token.Text keeps the raw source spelling, matching the rest of the lexer.
func (lx *Lexer) scanString(ch byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}

		b := lx.cursor.Peek()

		if b == ch {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}

		if b == '\n' || b == '\r' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}

		if b == '\\' {
			lx.scanStringEscape()
			continue
		}

		if b >= utf8RuneSelf {
			if _, sz := lx.peekRune(); sz > 0 {
				lx.cursor.Off += uint32(sz)
				continue
			}
		}

		lx.cursor.Bump()
	}
}

// scanStringEscape consumes a backslash escape inside a string or template
// literal, reporting diag.LexInvalidEscapeSequence / LexInvalidUnicodeEscape
// on malformed forms. A backslash immediately followed by a line terminator
// is a line continuation, legal and silently consumed.
func (lx *Lexer) scanStringEscape() {
	escStart := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'

	if lx.cursor.EOF() {
		return
	}

	b := lx.cursor.Peek()
	switch b {
	case 'n', 't', 'r', 'b', 'f', 'v', '0', '\'', '"', '`', '\\':
		lx.cursor.Bump()
		return
	case '\n':
		lx.cursor.Bump()
		return
	case '\r':
		lx.cursor.Bump()
		if lx.cursor.Peek() == '\n' {
			lx.cursor.Bump()
		}
		return
	case 'x':
		lx.cursor.Bump()
		digitsStart := lx.cursor.Mark()
		for i := 0; i < 2 && isHex(lx.cursor.Peek()); i++ {
			lx.cursor.Bump()
		}
		if lx.cursor.Off-uint32(digitsStart) != 2 {
			sp := lx.cursor.SpanFrom(escStart)
			lx.errLex(diag.LexInvalidEscapeSequence, sp, "invalid hex escape sequence")
		}
		return
	case 'u':
		lx.cursor.Reset(escStart)
		// scanUnicodeEscapeValue reports malformed escapes itself and always
		// leaves the cursor past whatever it consumed.
		lx.scanUnicodeEscapeValue()
		return
	default:
		if b >= utf8RuneSelf {
			if r, sz := lx.peekRune(); sz > 0 && isExtraLineTerminatorRune(r) {
				lx.cursor.Off += uint32(sz)
				return
			}
		}
		lx.cursor.Bump()
		return
	}
}
