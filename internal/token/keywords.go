package token

// keywords maps the spelling of every reserved, strict-mode-reserved, and
// contextual keyword to its Kind. Contextual keywords are still looked up
// here so the lexer always attaches the most specific Kind to an identifier;
// callers that need the bare identifier spelling back out of a contextual
// keyword use Kind.IsContextualKeyword together with the token's Text.
var keywords = map[string]Kind{
	"break": KwBreak, "case": KwCase, "catch": KwCatch, "class": KwClass,
	"const": KwConst, "continue": KwContinue, "debugger": KwDebugger,
	"default": KwDefault, "delete": KwDelete, "do": KwDo, "else": KwElse,
	"enum": KwEnum, "export": KwExport, "extends": KwExtends, "false": KwFalse,
	"finally": KwFinally, "for": KwFor, "function": KwFunction, "if": KwIf,
	"import": KwImport, "in": KwIn, "instanceof": KwInstanceof, "new": KwNew,
	"null": KwNull, "return": KwReturn, "super": KwSuper, "switch": KwSwitch,
	"this": KwThis, "throw": KwThrow, "true": KwTrue, "try": KwTry,
	"typeof": KwTypeof, "var": KwVar, "void": KwVoid, "while": KwWhile,
	"with": KwWith,

	"implements": KwImplements, "interface": KwInterface, "let": KwLet,
	"package": KwPackage, "private": KwPrivate, "protected": KwProtected,
	"public": KwPublic, "static": KwStatic, "yield": KwYield,

	"as": KwAs, "async": KwAsync, "await": KwAwait, "from": KwFrom,
	"get": KwGet, "set": KwSet, "of": KwOf, "abstract": KwAbstract,
	"declare": KwDeclare, "is": KwIs, "keyof": KwKeyof, "module": KwModule,
	"namespace": KwNamespace, "readonly": KwReadonly, "require": KwRequire,
	"type": KwType, "unique": KwUnique, "infer": KwInfer, "asserts": KwAsserts,
	"satisfies": KwSatisfies, "override": KwOverride, "out": KwOut,
	"global": KwGlobal, "intrinsic": KwIntrinsic, "using": KwUsing,
	"any": KwAny, "unknown": KwUnknown, "never": KwNever, "object": KwObject,
	"boolean": KwBoolean, "string": KwString, "number": KwNumber,
	"bigint": KwBigintKw, "symbol": KwSymbolKw, "undefined": KwUndefined,
}

// LookupKeyword returns the Kind for an exact, case-sensitive spelling and
// whether the spelling names any keyword (reserved, strict-mode, or
// contextual). Identifiers written with Unicode escapes are never looked up
// here: the lexer resolves escapes to their literal spelling first, per the
// grammar rule that a reserved word written with an escape is still reserved.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// reservedWords are keywords forbidden as a BindingIdentifier unconditionally,
// independent of strict mode.
var reservedWords = map[Kind]bool{
	KwBreak: true, KwCase: true, KwCatch: true, KwClass: true, KwConst: true,
	KwContinue: true, KwDebugger: true, KwDefault: true, KwDelete: true,
	KwDo: true, KwElse: true, KwEnum: true, KwExport: true, KwExtends: true,
	KwFalse: true, KwFinally: true, KwFor: true, KwFunction: true, KwIf: true,
	KwImport: true, KwIn: true, KwInstanceof: true, KwNew: true, KwNull: true,
	KwReturn: true, KwSuper: true, KwSwitch: true, KwThis: true, KwThrow: true,
	KwTrue: true, KwTry: true, KwTypeof: true, KwVar: true, KwVoid: true,
	KwWhile: true, KwWith: true,
}

// strictReservedWords are additionally forbidden as a BindingIdentifier only
// while the parser is operating under strict mode.
var strictReservedWords = map[Kind]bool{
	KwImplements: true, KwInterface: true, KwLet: true, KwPackage: true,
	KwPrivate: true, KwProtected: true, KwPublic: true, KwStatic: true,
	KwYield: true,
}

// IsReservedWord reports whether k can never be a BindingIdentifier.
func IsReservedWord(k Kind) bool { return reservedWords[k] }

// IsStrictReservedWord reports whether k is forbidden as a BindingIdentifier
// only under strict mode.
func IsStrictReservedWord(k Kind) bool { return strictReservedWords[k] }
