package token

import (
	"ecmaparser/internal/source"
)

// Token represents a single lexed token together with the trivia and
// line-break information the parser needs for ASI and recovery decisions.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia

	// OnNewLine reports whether a LineTerminator appeared in the trivia
	// preceding this token, i.e. between it and the previous token. This
	// drives Automatic Semicolon Insertion and the no-LineTerminator-here
	// restrictions (postfix ++/--, arrow function bodies, etc).
	OnNewLine bool

	// Escaped reports whether an identifier-shaped token contains a Unicode
	// escape sequence (e.g. async). An escaped spelling that matches a
	// keyword is never treated as that keyword by the grammar, but it is
	// still rejected wherever a plain reserved word would be rejected.
	Escaped bool
}

// IsLiteral reports whether the token is a numeric, string, regexp, boolean,
// null, or template literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsIdent reports whether the token is a plain identifier (not a keyword).
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsIdentifierName reports whether the token's spelling is legal wherever the
// grammar accepts an IdentifierName (property keys, member names): any
// identifier or keyword, escaped or not.
func (t Token) IsIdentifierName() bool { return t.Kind.IsIdentifierName() }

// CanBeBindingIdentifier reports whether the token may name a binding in the
// given strict-mode context. It decides by Kind alone: an escaped spelling
// of a reserved word keeps its keyword Kind, so it is barred from binding
// position just like the plain spelling, and Escaped is not consulted.
func (t Token) CanBeBindingIdentifier(strict bool) bool {
	if t.Kind == Ident || t.Kind.IsContextualKeyword() {
		return true
	}
	if IsReservedWord(t.Kind) {
		return false
	}
	if IsStrictReservedWord(t.Kind) {
		return !strict
	}
	return false
}
