package token

var kindNames = map[Kind]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	PrivateIdent: "PrivateIdent",

	KwBreak: "break", KwCase: "case", KwCatch: "catch", KwClass: "class",
	KwConst: "const", KwContinue: "continue", KwDebugger: "debugger",
	KwDefault: "default", KwDelete: "delete", KwDo: "do", KwElse: "else",
	KwEnum: "enum", KwExport: "export", KwExtends: "extends", KwFalse: "false",
	KwFinally: "finally", KwFor: "for", KwFunction: "function", KwIf: "if",
	KwImport: "import", KwIn: "in", KwInstanceof: "instanceof", KwNew: "new",
	KwNull: "null", KwReturn: "return", KwSuper: "super", KwSwitch: "switch",
	KwThis: "this", KwThrow: "throw", KwTrue: "true", KwTry: "try",
	KwTypeof: "typeof", KwVar: "var", KwVoid: "void", KwWhile: "while",
	KwWith: "with",

	KwImplements: "implements", KwInterface: "interface", KwLet: "let",
	KwPackage: "package", KwPrivate: "private", KwProtected: "protected",
	KwPublic: "public", KwStatic: "static", KwYield: "yield",

	KwAs: "as", KwAsync: "async", KwAwait: "await", KwFrom: "from",
	KwGet: "get", KwSet: "set", KwOf: "of", KwAbstract: "abstract",
	KwDeclare: "declare", KwIs: "is", KwKeyof: "keyof", KwModule: "module",
	KwNamespace: "namespace", KwReadonly: "readonly", KwRequire: "require",
	KwType: "type", KwUnique: "unique", KwInfer: "infer", KwAsserts: "asserts",
	KwSatisfies: "satisfies", KwOverride: "override", KwOut: "out",
	KwGlobal: "global", KwIntrinsic: "intrinsic", KwUsing: "using",
	KwAny: "any", KwUnknown: "unknown", KwNever: "never", KwObject: "object",
	KwBoolean: "boolean", KwString: "string", KwNumber: "number",
	KwBigintKw: "bigint", KwSymbolKw: "symbol", KwUndefined: "undefined",

	NumericLit: "NumericLit", BigIntLit: "BigIntLit", StringLit: "StringLit",
	RegExpLit: "RegExpLit", NoSubstitutionTemplateLit: "NoSubstitutionTemplateLit",
	TemplateHead: "TemplateHead", TemplateMiddle: "TemplateMiddle", TemplateTail: "TemplateTail",

	LBrace: "{", RBrace: "}", LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	Dot: ".", Ellipsis: "...", Semicolon: ";", Comma: ",",
	Lt: "<", Gt: ">", LtEq: "<=", GtEq: ">=", EqEq: "==", NotEq: "!=",
	EqEqEq: "===", NotEqEq: "!==", Plus: "+", Minus: "-", Star: "*", Percent: "%",
	StarStar: "**", PlusPlus: "++", MinusMinus: "--", Shl: "<<", Shr: ">>", UShr: ">>>",
	Amp: "&", Pipe: "|", Caret: "^", Bang: "!", Tilde: "~", AmpAmp: "&&", PipePipe: "||",
	Question: "?", QuestionDot: "?.", QuestionQuestion: "??", Colon: ":", Assign: "=",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", StarStarAssign: "**=",
	SlashAssign: "/=", PercentAssign: "%=", ShlAssign: "<<=", ShrAssign: ">>=",
	UShrAssign: ">>>=", AmpAssign: "&=", PipeAssign: "|=", CaretAssign: "^=",
	AmpAmpAssign: "&&=", PipePipeAssign: "||=", QuestionQuestionAssign: "??=",
	Arrow: "=>", Slash: "/", At: "@", Hash: "#",

	JsxText: "JsxText", JsxIdentifier: "JsxIdentifier",
}
