package lexer

import (
	"ecmaparser/internal/diag"
	"ecmaparser/internal/token"
)

// scanTemplate scans one chunk of a template literal. When atHead is true
// the cursor sits on the opening backtick and the chunk is either a
// NoSubstitutionTemplateLit (no `${` found) or a TemplateHead. When atHead
// is false the cursor sits immediately after the `}` that closed a prior
// substitution expression — ReLexTemplateSubstitutionTail calls this to
// produce the following TemplateMiddle/TemplateTail.
func (lx *Lexer) scanTemplate(atHead bool) token.Token {
	start := lx.cursor.Mark()
	if atHead {
		lx.cursor.Bump() // opening '`'
	}

	unterminated := func() token.Token {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
		kind := token.TemplateTail
		if atHead {
			kind = token.NoSubstitutionTemplateLit
		}
		return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
	}

	for {
		if lx.cursor.EOF() {
			return unterminated()
		}
		b := lx.cursor.Peek()
		switch b {
		case '`':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			kind := token.TemplateTail
			if atHead {
				kind = token.NoSubstitutionTemplateLit
			}
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		case '$':
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '$' && b1 == '{' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				kind := token.TemplateMiddle
				if atHead {
					kind = token.TemplateHead
				}
				return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
			}
			lx.cursor.Bump()
		case '\\':
			lx.scanStringEscape()
		default:
			if b >= utf8RuneSelf {
				if _, sz := lx.peekRune(); sz > 0 {
					lx.cursor.Off += uint32(sz)
					continue
				}
			}
			lx.cursor.Bump()
		}
	}
}

// ReLexTemplateSubstitutionTail is invoked by the parser right after it
// consumes the `}` that closes a template substitution expression. The
// lexer reinterprets everything from the current position as template text
// instead of as a fresh statement/expression token, producing the next
// TemplateMiddle or TemplateTail. The lexer keeps no fatal state and always
// scans; the parser's Cursor.ReLexTemplateSubstitutionTail skips this call
// and keeps its current token once a fatal error is set.
func (lx *Lexer) ReLexTemplateSubstitutionTail() token.Token {
	lx.look = nil
	lx.hold = nil
	tok := lx.scanTemplate(false)
	lx.last = tok
	lx.hasLast = true
	return tok
}

// ScanRegExp re-lexes starting at a previously produced `/` or `/=` token's
// start offset as a regular expression literal. The lexer never guesses
// between division and a regex literal on its own; the parser decides from
// grammar position and asks for this explicitly.
func (lx *Lexer) ScanRegExp(slashStart uint32) token.Token {
	lx.cursor.Off = slashStart
	lx.look = nil
	lx.hold = nil
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	inClass := false
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedRegExp, sp, "unterminated regular expression literal")
			tok := token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			lx.last = tok
			lx.hasLast = true
			return tok
		}
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			lx.cursor.Bump()
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			tok := token.Token{Kind: token.RegExpLit, Span: sp, Text: lx.text(sp)}
			lx.last = tok
			lx.hasLast = true
			return tok
		case isLineTerminatorByte(b):
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedRegExp, sp, "unterminated regular expression literal")
			tok := token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			lx.last = tok
			lx.hasLast = true
			return tok
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
