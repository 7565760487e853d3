package token_test

import (
	"testing"

	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.NumericLit, token.BigIntLit, token.StringLit, token.RegExpLit,
		token.NoSubstitutionTemplateLit, token.TemplateHead,
		token.KwTrue, token.KwFalse, token.KwNull,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsAssignmentOperator(t *testing.T) {
	ops := []token.Kind{
		token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.StarStarAssign, token.SlashAssign, token.PercentAssign,
		token.ShlAssign, token.ShrAssign, token.UShrAssign, token.AmpAssign,
		token.PipeAssign, token.CaretAssign, token.AmpAmpAssign,
		token.PipePipeAssign, token.QuestionQuestionAssign,
	}
	for _, k := range ops {
		if !k.IsAssignmentOperator() {
			t.Fatalf("%v should be an assignment operator", k)
		}
	}
	non := []token.Kind{token.Plus, token.EqEq, token.Ident, token.NumericLit}
	for _, k := range non {
		if k.IsAssignmentOperator() {
			t.Fatalf("%v must NOT be an assignment operator", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwFunction).IsIdent() {
		t.Fatalf("KwFunction must not be ident")
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwBreak, token.KwCase, token.KwCatch, token.KwClass, token.KwConst,
		token.KwContinue, token.KwDebugger, token.KwDefault, token.KwDelete, token.KwDo,
		token.KwElse, token.KwEnum, token.KwExport, token.KwExtends, token.KwFalse,
		token.KwFinally, token.KwFor, token.KwFunction, token.KwIf, token.KwImport,
		token.KwIn, token.KwInstanceof, token.KwNew, token.KwNull, token.KwReturn,
		token.KwSuper, token.KwSwitch, token.KwThis, token.KwThrow, token.KwTrue,
		token.KwTry, token.KwTypeof, token.KwVar, token.KwVoid, token.KwWhile, token.KwWith,
		token.KwImplements, token.KwInterface, token.KwLet, token.KwPackage,
		token.KwPrivate, token.KwProtected, token.KwPublic, token.KwStatic, token.KwYield,
	}
	for _, k := range keywords {
		if !k.IsKeyword() {
			t.Fatalf("%v should be a keyword", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwAs, token.Plus, token.NumericLit}
	for _, k := range non {
		if k.IsKeyword() {
			t.Fatalf("%v must NOT be a keyword", k)
		}
	}
}

func TestIsContextualKeyword(t *testing.T) {
	contextual := []token.Kind{
		token.KwAs, token.KwAsync, token.KwAwait, token.KwFrom, token.KwGet, token.KwSet,
		token.KwOf, token.KwAbstract, token.KwDeclare, token.KwIs, token.KwKeyof,
		token.KwModule, token.KwNamespace, token.KwReadonly, token.KwType, token.KwUnique,
		token.KwInfer, token.KwAsserts, token.KwSatisfies, token.KwOverride,
	}
	for _, k := range contextual {
		if !k.IsContextualKeyword() {
			t.Fatalf("%v should be a contextual keyword", k)
		}
	}
	if token.KwIf.IsContextualKeyword() {
		t.Fatalf("KwIf is a reserved word, not a contextual keyword")
	}
}

func TestIsIdentifierName(t *testing.T) {
	names := []token.Kind{token.Ident, token.KwAs, token.KwIf, token.KwAsync}
	for _, k := range names {
		if !k.IsIdentifierName() {
			t.Fatalf("%v should satisfy IsIdentifierName", k)
		}
	}
	if token.Plus.IsIdentifierName() {
		t.Fatalf("Plus must NOT satisfy IsIdentifierName")
	}
}
