package lexer

import (
	"unicode"
	"unicode/utf8"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

// collectLeadingTrivia gathers whitespace, line terminators, comments, and
// (at the very start of the file only) a hashbang line into lx.hold, and
// records whether a LineTerminator was seen so the next token's OnNewLine
// can be set, which drives ASI and the no-LineTerminator-here rules.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	sawLineTerminator := false

	if lx.cursor.Off == 0 && !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '#' && b1 == '!' {
			start := lx.cursor.Mark()
			for !lx.cursor.EOF() && !isLineTerminatorByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaHashbang, Span: sp, Text: lx.text(sp)})
		}
	}

	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if isHorizontalSpaceByte(b) {
			for isHorizontalSpaceByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaWhitespace, Span: sp, Text: lx.text(sp)})
			continue
		}

		if b == '\n' || b == '\r' {
			lx.cursor.Bump()
			if b == '\r' && lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaLineTerminator, Span: sp, Text: lx.text(sp)})
			sawLineTerminator = true
			continue
		}

		if b >= utf8.RuneSelf {
			r, sz := lx.peekRune()
			if isExtraLineTerminatorRune(r) {
				lx.cursor.Off += uint32(sz)
				sp := lx.cursor.SpanFrom(start)
				lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaLineTerminator, Span: sp, Text: lx.text(sp)})
				sawLineTerminator = true
				continue
			}
			if unicode.IsSpace(r) {
				lx.cursor.Off += uint32(sz)
				sp := lx.cursor.SpanFrom(start)
				lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaWhitespace, Span: sp, Text: lx.text(sp)})
				lx.irregularWhitespace = append(lx.irregularWhitespace, sp)
				continue
			}
		}

		if b == '/' {
			if lx.scanCommentIntoHold(&sawLineTerminator) {
				continue
			}
		}

		break
	}

	lx.pendingNewLine = sawLineTerminator
}

func (lx *Lexer) scanCommentIntoHold(sawLineTerminator *bool) bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && !isLineTerminatorByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaLineComment, Span: sp, Text: lx.text(sp)})
		return true

	case '*':
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			if isLineTerminatorByte(lx.cursor.Peek()) {
				*sawLineTerminator = true
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaBlockComment, Span: sp, Text: lx.text(sp)})
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func isHorizontalSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}

func isLineTerminatorByte(b byte) bool {
	return b == '\n' || b == '\r'
}

// isExtraLineTerminatorRune reports the two non-ASCII LineTerminator code
// points the ECMAScript grammar recognizes beyond \n and \r (11.3): LINE
// SEPARATOR and PARAGRAPH SEPARATOR.
func isExtraLineTerminatorRune(r rune) bool {
	return r == ' ' || r == ' '
}
