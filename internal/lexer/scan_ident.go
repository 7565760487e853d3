package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an IdentifierName, decoding any `\uXXXX` /
// `\u{XXXXXX}` Unicode escapes so keyword lookup and Token.Text always see
// the identifier's literal spelling rather than its source form.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	var decoded strings.Builder
	escaped := false

	first := true
	for {
		if lx.cursor.Peek() == '\\' {
			if b0, b1, ok := lx.cursor.Peek2(); !ok || b0 != '\\' || b1 != 'u' {
				break
			}
			r, ok := lx.scanUnicodeEscapeValue()
			if !ok {
				break
			}
			valid := first && isIdentStartRune(r) || !first && isIdentContinueRune(r)
			if !valid {
				break
			}
			escaped = true
			decoded.WriteRune(r)
			first = false
			continue
		}

		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if first {
			if !isIdentStartRune(r) {
				if decoded.Len() == 0 {
					return lx.scanOperatorOrPunct()
				}
				break
			}
		} else if !isIdentContinueRune(r) {
			break
		}
		decoded.WriteRune(r)
		lx.cursor.Off += uint32(sz)
		first = false
	}

	sp := lx.cursor.SpanFrom(start)
	text := decoded.String()
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text, Escaped: escaped}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text, Escaped: escaped}
}

// scanPrivateIdent scans a class private name: `#` followed by an
// IdentifierName, e.g. `#field`.
func (lx *Lexer) scanPrivateIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	if !isIdentStartByte(lx.cursor.Peek()) && lx.cursor.Peek() < utf8RuneSelf {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Hash, Span: sp, Text: lx.text(sp)}
	}
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.cursor.Off += uint32(sz)
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.PrivateIdent, Span: sp, Text: lx.text(sp)}
}

// scanUnicodeEscapeValue decodes a `\uXXXX` or `\u{XXXXXX}` escape at the
// cursor and advances past it, returning the decoded rune. The caller has
// already confirmed the next two bytes are `\u`.
func (lx *Lexer) scanUnicodeEscapeValue() (rune, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	lx.cursor.Bump() // 'u'

	if lx.cursor.Peek() == '{' {
		lx.cursor.Bump()
		digitsStart := lx.cursor.Mark()
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		digits := lx.text(lx.cursor.SpanFrom(digitsStart))
		if digits == "" || lx.cursor.Peek() != '}' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexInvalidUnicodeEscape, sp, "invalid Unicode escape sequence")
			return 0, false
		}
		lx.cursor.Bump() // '}'
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || v > utf8.MaxRune {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexInvalidUnicodeEscape, sp, "invalid Unicode escape sequence")
			return 0, false
		}
		return rune(v), true
	}

	digitsStart := lx.cursor.Mark()
	for i := 0; i < 4 && isHex(lx.cursor.Peek()); i++ {
		lx.cursor.Bump()
	}
	digits := lx.text(lx.cursor.SpanFrom(digitsStart))
	if len(digits) != 4 {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexInvalidUnicodeEscape, sp, "invalid Unicode escape sequence")
		return 0, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexInvalidUnicodeEscape, sp, "invalid Unicode escape sequence")
		return 0, false
	}
	return rune(v), true
}
