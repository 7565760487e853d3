package parser

import "ecmaparser/internal/token"

// binaryPrecedence returns the binding power of a binary/logical operator, or 0 if
// k does not start one. Larger binds tighter. `in` is excluded when the
// grammar's [In] parameter is off (for-statement heads).
func binaryPrecedence(k token.Kind, allowIn bool) int {
	switch k {
	case token.PipePipe, token.QuestionQuestion:
		return 1
	case token.AmpAmp:
		return 2
	case token.Pipe:
		return 3
	case token.Caret:
		return 4
	case token.Amp:
		return 5
	case token.EqEq, token.NotEq, token.EqEqEq, token.NotEqEq:
		return 6
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.KwInstanceof:
		return 7
	case token.KwIn:
		if !allowIn {
			return 0
		}
		return 7
	case token.Shl, token.Shr, token.UShr:
		return 8
	case token.Plus, token.Minus:
		return 9
	case token.Star, token.Slash, token.Percent:
		return 10
	case token.StarStar:
		return 11
	default:
		return 0
	}
}

// isLogicalOp reports whether k produces a LogicalExpr node instead of a
// plain BinaryExpr.
func isLogicalOp(k token.Kind) bool {
	switch k {
	case token.PipePipe, token.AmpAmp, token.QuestionQuestion:
		return true
	default:
		return false
	}
}

// rightAssociative reports whether binary operator k associates
// right-to-left; only `**` does here. Assignment operators, also
// right-associative, are handled separately in ParseAssignment.
func rightAssociative(k token.Kind) bool {
	return k == token.StarStar
}
