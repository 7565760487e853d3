package lexer

import (
	"ecmaparser/internal/diag"
	"ecmaparser/internal/token"
)

// scanNumber scans a NumericLiteral per ECMA-262 12.8.3: decimal integers and
// decimals with an optional fractional part and exponent, binary (0b),
// octal (0o), legacy octal (0NNN), and hexadecimal (0x) integers, numeric
// separators (`1_000`), and the BigInt suffix `n` on any integer form
// (never on a literal with a fractional part or exponent). The literal must
// not be immediately followed by an IdentifierStart or DecimalDigit; that
// case is reported as an invalid numeric literal and yields one Invalid
// token spanning the numeric part together with the identifier characters
// and digits that follow it.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.NumericLit
	canBigInt := true

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump() // '.'
		lx.scanDecimalDigits()
		canBigInt = false
		return lx.finishNumber(start, kind, canBigInt, true)
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			lx.scanRadixDigits(isBinDigit)
			return lx.finishNumber(start, kind, canBigInt, false)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.scanRadixDigits(isOctDigit)
			return lx.finishNumber(start, kind, canBigInt, false)
		case 'x', 'X':
			lx.cursor.Bump()
			lx.scanRadixDigits(isHex)
			return lx.finishNumber(start, kind, canBigInt, false)
		default:
			// Leading '0': either a lone zero, a legacy octal ("0755"), or the
			// integer part of a decimal float ("0.5", "0e10").
		}
	}

	lx.scanDecimalDigits()

	sawFraction := false
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		sawFraction = true
		lx.scanDecimalDigits()
	}

	sawExponent := false
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexInvalidNumericLiteral, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		sawExponent = true
		lx.scanDecimalDigits()
	}

	if sawFraction || sawExponent {
		canBigInt = false
	}
	return lx.finishNumber(start, kind, canBigInt, sawFraction || sawExponent)
}

// scanDecimalDigits consumes DecimalDigits with numeric separators
// (`DecimalDigits NumericLiteralSeparator? DecimalDigit`).
func (lx *Lexer) scanDecimalDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// scanRadixDigits consumes digits (plus numeric separators) of a non-decimal
// integer literal using the supplied digit predicate.
func (lx *Lexer) scanRadixDigits(isDigit func(byte) bool) {
	for isDigit(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func isBinDigit(b byte) bool { return b == '0' || b == '1' }
func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }

// finishNumber optionally consumes a BigInt `n` suffix and validates that the
// literal is not immediately followed by an IdentifierStart or DecimalDigit
// (ECMA-262 12.8.3: "The SourceCharacter immediately following a
// NumericLiteral must not be an IdentifierStart or DecimalDigit").
func (lx *Lexer) finishNumber(start Mark, kind token.Kind, canBigInt, hasFractionOrExponent bool) token.Token {
	if canBigInt && !hasFractionOrExponent && lx.cursor.Peek() == 'n' {
		lx.cursor.Bump()
		kind = token.BigIntLit
	}

	if b := lx.cursor.Peek(); isIdentStartByte(b) || isDec(b) {
		for {
			r, sz := lx.peekRune()
			if sz == 0 {
				break
			}
			if !isIdentContinueRune(r) && !isDec(lx.cursor.Peek()) {
				break
			}
			lx.cursor.Off += uint32(sz)
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexInvalidNumericLiteral, sp, "numeric literal must not be immediately followed by an identifier or digit")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
