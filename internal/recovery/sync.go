// Package recovery implements the synchronization engine: the decision
// procedure that, on an unexpected token inside a delimited construct,
// chooses whether to skip the token and keep parsing the current construct,
// or abort the construct and let an enclosing production handle it.
//
// Every predicate here is a pure function of (ParsingContext, token kind,
// active context stack); none of them touches the cursor or advances
// anything except Synchronize itself, which calls the supplied bump
// function exactly when it decides to Skip.
package recovery

import (
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/token"
)

// Decision is the outcome of a synchronization attempt.
type Decision int

const (
	// Skip means the current token means nothing to any active context; it
	// has been consumed and the caller should retry the current production.
	Skip Decision = iota
	// Abort means the current context should be exited; the caller pops its
	// ParsingContext and returns control to the enclosing production.
	Abort
)

// IsContextTerminator reports whether cur is a structural end of ctx.
func IsContextTerminator(ctx pctx.Context, cur token.Kind) bool {
	switch ctx {
	case pctx.TopLevel:
		return cur == token.EOF
	case pctx.BlockStatements, pctx.FunctionBody:
		return cur == token.RBrace || cur == token.EOF
	case pctx.Parameters:
		return cur == token.RParen || cur == token.LBrace ||
			cur == token.KwExtends || cur == token.KwImplements || cur == token.EOF
	case pctx.ArgumentExpressions:
		return cur == token.RParen || cur == token.Semicolon || cur == token.EOF
	case pctx.ClassMembers, pctx.TypeMembers, pctx.EnumMembers, pctx.ObjectLiteralMembers:
		return cur == token.RBrace || cur == token.EOF
	case pctx.ArrayLiteralMembers:
		return cur == token.RBracket || cur == token.EOF
	case pctx.SwitchClauses:
		return cur == token.RBrace || cur == token.KwCase || cur == token.KwDefault || cur == token.EOF
	case pctx.ImportSpecifiers, pctx.ExportSpecifiers:
		return cur == token.RBrace || cur == token.KwFrom || cur == token.Semicolon || cur == token.EOF
	case pctx.TypeParameters:
		return cur == token.Gt || cur == token.LBrace || cur == token.KwExtends || cur == token.EOF
	case pctx.TypeArguments:
		return cur == token.Gt || cur == token.RParen || cur == token.LBrace || cur == token.EOF
	case pctx.TypeAnnotation:
		return cur == token.Assign || cur == token.Semicolon || cur == token.Comma ||
			cur == token.RParen || cur == token.RBrace || cur == token.EOF
	case pctx.JsxAttributes:
		return cur == token.Gt || cur == token.Slash || cur == token.EOF
	case pctx.JsxChildren:
		return cur == token.Lt || cur == token.EOF
	default:
		return false
	}
}

func isStatementStart(cur token.Kind) bool {
	switch cur {
	case token.KwLet, token.KwConst, token.KwVar, token.KwFunction, token.KwClass,
		token.KwIf, token.KwFor, token.KwWhile, token.KwDo, token.KwSwitch,
		token.KwReturn, token.KwBreak, token.KwContinue, token.KwThrow, token.KwTry,
		token.LBrace, token.At:
		return true
	default:
		return isExpressionStart(cur)
	}
}

func isExpressionStart(cur token.Kind) bool {
	switch cur {
	case token.KwThis, token.KwSuper, token.KwNull, token.KwTrue, token.KwFalse,
		token.StringLit, token.TemplateHead, token.NoSubstitutionTemplateLit,
		token.NumericLit, token.BigIntLit,
		token.LParen, token.LBracket, token.LBrace,
		token.KwFunction, token.KwClass, token.KwNew,
		token.Slash, token.Plus, token.Minus, token.Bang, token.Tilde,
		token.PlusPlus, token.MinusMinus,
		token.KwTypeof, token.KwVoid, token.KwDelete, token.KwAwait,
		token.Lt:
		return true
	default:
		return cur.IsIdentifierName()
	}
}

func isClassMemberStart(cur token.Kind) bool {
	switch cur {
	case token.KwPublic, token.KwPrivate, token.KwProtected, token.KwStatic,
		token.KwReadonly, token.KwAsync, token.KwGet, token.KwSet, token.Star,
		token.LBracket, token.At, token.Hash:
		return true
	default:
		return cur.IsIdentifierName()
	}
}

// IsContextElementStart reports whether cur can begin a fresh element of
// ctx. inRecovery narrows the answer for contexts where a token is
// ambiguous enough that guessing wrong would cascade (e.g. a bare `;` inside
// BlockStatements recovery is not treated as the start of an empty
// statement, unlike in normal list parsing).
func IsContextElementStart(ctx pctx.Context, cur token.Kind, inRecovery bool) bool {
	switch ctx {
	case pctx.TopLevel, pctx.BlockStatements, pctx.FunctionBody:
		if inRecovery {
			return isStatementStart(cur)
		}
		return isStatementStart(cur) || cur == token.Semicolon
	case pctx.Parameters:
		return cur == token.Ellipsis || cur == token.LBrace || cur == token.LBracket ||
			cur.IsIdentifierName()
	case pctx.ArgumentExpressions, pctx.ArrayLiteralMembers:
		return cur == token.Ellipsis || isExpressionStart(cur)
	case pctx.ClassMembers:
		if inRecovery {
			return isClassMemberStart(cur)
		}
		return isClassMemberStart(cur) || cur == token.Semicolon
	case pctx.TypeMembers:
		return cur.IsIdentifierName() || cur == token.LBracket || cur == token.LParen ||
			cur == token.KwNew || cur == token.KwReadonly
	case pctx.EnumMembers:
		return cur.IsIdentifierName() || cur == token.LBracket
	case pctx.ObjectLiteralMembers:
		return cur == token.LBracket || cur == token.Star || cur == token.Ellipsis ||
			cur.IsIdentifierName()
	case pctx.SwitchClauses:
		return cur == token.KwCase || cur == token.KwDefault
	case pctx.ImportSpecifiers, pctx.ExportSpecifiers:
		return cur.IsIdentifierName()
	default:
		return false
	}
}

// IsInSomeParsingContext walks the active context stack from innermost to
// outermost and reports whether cur terminates or could start an element of
// any of them — i.e. whether the token "means something" to an ancestor.
func IsInSomeParsingContext(stack *pctx.Stack, cur token.Kind) bool {
	for _, ctx := range stack.Active() {
		if IsContextTerminator(ctx, cur) {
			return true
		}
		if IsContextElementStart(ctx, cur, true) {
			return true
		}
	}
	return false
}

// Synchronize is the main entry point. recoveryEnabled mirrors
// ParseOptions.recover_from_errors: when false it always returns Abort,
// which is the safe behavior for the non-recovery fatal-on-first-error
// path. bump is invoked exactly once, only on a Skip decision, to consume
// the meaningless token and guarantee forward progress.
func Synchronize(recoveryEnabled bool, stack *pctx.Stack, ctx pctx.Context, cur token.Kind, bump func()) Decision {
	if !recoveryEnabled {
		return Abort
	}
	if IsContextTerminator(ctx, cur) {
		return Abort
	}
	if IsInSomeParsingContext(stack, cur) {
		return Abort
	}
	bump()
	return Skip
}
