package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token produced by the lexer.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token that is not a keyword; contextual
	// keywords carry their own Kw kinds below.
	Ident
	// PrivateIdent represents a class private name, e.g. #field.
	PrivateIdent

	// Reserved words (ECMA-262 11.6.2.1, always keywords).
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwDebugger
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwEnum
	KwExport
	KwExtends
	KwFalse
	KwFinally
	KwFor
	KwFunction
	KwIf
	KwImport
	KwIn
	KwInstanceof
	KwNew
	KwNull
	KwReturn
	KwSuper
	KwSwitch
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwTypeof
	KwVar
	KwVoid
	KwWhile
	KwWith

	// Reserved only in strict mode / as binding restrictions.
	KwImplements
	KwInterface
	KwLet
	KwPackage
	KwPrivate
	KwProtected
	KwPublic
	KwStatic
	KwYield

	// Contextual keywords: Ident-like but significant to specific productions.
	KwAs
	KwAsync
	KwAwait
	KwFrom
	KwGet
	KwSet
	KwOf
	KwAbstract
	KwDeclare
	KwIs
	KwKeyof
	KwModule
	KwNamespace
	KwReadonly
	KwRequire
	KwType
	KwUnique
	KwInfer
	KwAsserts
	KwSatisfies
	KwOverride
	KwOut
	KwGlobal
	KwIntrinsic
	KwUsing
	KwAny
	KwUnknown
	KwNever
	KwObject
	KwBoolean
	KwString
	KwNumber
	KwBigintKw
	KwSymbolKw
	KwUndefined

	// Literals.
	NumericLit
	BigIntLit
	StringLit
	RegExpLit
	NoSubstitutionTemplateLit
	TemplateHead
	TemplateMiddle
	TemplateTail

	// Punctuators.
	LBrace     // {
	RBrace     // }
	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	Dot        // .
	Ellipsis   // ...
	Semicolon  // ;
	Comma      // ,
	Lt         // <
	Gt         // >
	LtEq       // <=
	GtEq       // >=
	EqEq       // ==
	NotEq      // !=
	EqEqEq     // ===
	NotEqEq    // !==
	Plus       // +
	Minus      // -
	Star       // *
	Percent    // %
	StarStar   // **
	PlusPlus   // ++
	MinusMinus // --
	Shl        // <<
	Shr        // >>
	UShr       // >>>
	Amp        // &
	Pipe       // |
	Caret      // ^
	Bang       // !
	Tilde      // ~
	AmpAmp     // &&
	PipePipe   // ||
	Question   // ?
	QuestionDot      // ?.
	QuestionQuestion // ??
	Colon            // :
	Assign           // =
	PlusAssign
	MinusAssign
	StarAssign
	StarStarAssign
	SlashAssign
	PercentAssign
	ShlAssign
	ShrAssign
	UShrAssign
	AmpAssign
	PipeAssign
	CaretAssign
	AmpAmpAssign
	PipePipeAssign
	QuestionQuestionAssign
	Arrow // =>
	Slash // /
	At    // @
	Hash  // #

	// JSX-only kinds, produced while the lexer is in JSX text/child mode.
	JsxText
	JsxIdentifier

	kindCount
)

// String renders a human-readable name for diagnostics and tests.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsKeyword reports whether the token is a reserved or strict-mode reserved word.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwBreak, KwCase, KwCatch, KwClass, KwConst, KwContinue, KwDebugger, KwDefault,
		KwDelete, KwDo, KwElse, KwEnum, KwExport, KwExtends, KwFalse, KwFinally, KwFor,
		KwFunction, KwIf, KwImport, KwIn, KwInstanceof, KwNew, KwNull, KwReturn, KwSuper,
		KwSwitch, KwThis, KwThrow, KwTrue, KwTry, KwTypeof, KwVar, KwVoid, KwWhile, KwWith,
		KwImplements, KwInterface, KwLet, KwPackage, KwPrivate, KwProtected, KwPublic,
		KwStatic, KwYield:
		return true
	default:
		return false
	}
}

// IsContextualKeyword reports whether the token is an Ident-shaped keyword whose
// meaning depends entirely on grammatical position (e.g. "as", "async", "of").
func (k Kind) IsContextualKeyword() bool {
	switch k {
	case KwAs, KwAsync, KwAwait, KwFrom, KwGet, KwSet, KwOf, KwAbstract, KwDeclare, KwIs,
		KwKeyof, KwModule, KwNamespace, KwReadonly, KwRequire, KwType, KwUnique, KwInfer,
		KwAsserts, KwSatisfies, KwOverride, KwOut, KwGlobal, KwIntrinsic, KwUsing,
		KwAny, KwUnknown, KwNever, KwObject, KwBoolean, KwString, KwNumber, KwBigintKw,
		KwSymbolKw, KwUndefined:
		return true
	default:
		return false
	}
}

// IsIdentifierName reports whether the token may be spelled as an IdentifierName,
// i.e. an Ident or any keyword that the grammar permits to stand in for one.
func (k Kind) IsIdentifierName() bool {
	return k == Ident || k.IsKeyword() || k.IsContextualKeyword()
}

// IsLiteral reports whether the token is a numeric, string, regexp, or template literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case NumericLit, BigIntLit, StringLit, RegExpLit, NoSubstitutionTemplateLit,
		TemplateHead, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsAssignmentOperator reports whether the token is one of the `=`-family operators.
func (k Kind) IsAssignmentOperator() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, StarStarAssign, SlashAssign,
		PercentAssign, ShlAssign, ShrAssign, UShrAssign, AmpAssign, PipeAssign,
		CaretAssign, AmpAmpAssign, PipePipeAssign, QuestionQuestionAssign:
		return true
	default:
		return false
	}
}
