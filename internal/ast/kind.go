package ast

// Kind tags the variant a Node holds. This module names the shape of every
// node the parser in internal/parser produces, including the dummy
// catalogue fabricated during error recovery, without elaborating a fully
// attributed tree. Downstream semantic passes are expected to re-derive
// anything more specific from Kind + Children + the token-level fields
// below.
type Kind uint16

const (
	Invalid Kind = iota

	// Program is the root of a parsed file.
	Program

	// Statements.
	BlockStmt
	VarDeclStmt // var/let/const; Children = declarators, Op carries the keyword kind
	VarDeclarator
	ExprStmt
	EmptyStmt
	DebuggerStmt
	IfStmt
	ForStmt
	ForInStmt
	ForOfStmt
	WhileStmt
	DoWhileStmt
	ReturnStmt
	BreakStmt
	ContinueStmt
	ThrowStmt
	TryStmt
	CatchClause
	SwitchStmt
	SwitchCase
	LabeledStmt
	FunctionDecl
	ClassDecl
	ImportDecl
	ImportSpecifier
	ImportDefaultSpecifier
	ImportNamespaceSpecifier
	ExportNamedDecl
	ExportDefaultDecl
	ExportAllDecl
	ExportSpecifier

	// Expressions.
	Identifier
	PrivateIdentifier
	NumericLiteral
	BigIntLiteral
	StringLiteral
	BooleanLiteral
	NullLiteral
	RegExpLiteral
	TemplateLiteral
	TemplateElement
	TaggedTemplateExpr
	ArrayExpr
	ObjectExpr
	Property
	FunctionExpr
	ArrowFunctionExpr
	ClassExpr
	UnaryExpr
	UpdateExpr
	BinaryExpr
	LogicalExpr
	ConditionalExpr
	AssignmentExpr
	SequenceExpr
	CallExpr
	NewExpr
	MemberExpr
	SpreadElement
	ThisExpr
	SuperExpr
	ImportExpr
	AwaitExpr
	YieldExpr
	ParenthesizedExpr
	V8IntrinsicExpr

	// Patterns.
	ObjectPattern
	ArrayPattern
	AssignmentPattern
	RestElement
	Param

	// Classes.
	ClassBody
	ClassMethod
	ClassProperty
	StaticBlock
	Decorator

	// TypeScript.
	TSTypeAnnotation
	TSKeywordType
	TSTypeReference
	TSUnionType
	TSIntersectionType
	TSArrayType
	TSIndexedAccessType
	TSTupleType
	TSLiteralType
	TSFunctionType
	TSConstructorType
	TSTypeLiteral
	TSPropertySignature
	TSMethodSignature
	TSIndexSignature
	TSCallSignature
	TSConditionalType
	TSMappedType
	TSTypeOperator
	TSParenthesizedType
	TSTypeParameter
	TSTypeParameterDecl
	TSTypeArgumentInstantiation
	TSInterfaceDecl
	TSInterfaceBody
	TSHeritageClause
	TSTypeAliasDecl
	TSEnumDecl
	TSEnumMember
	TSModuleDecl
	TSModuleBlock
	TSAsExpr
	TSSatisfiesExpr
	TSNonNullExpr
	TSTypeAssertion
	TSImportEqualsDecl

	// JSX.
	JSXElement
	JSXFragment
	JSXOpeningElement
	JSXClosingElement
	JSXAttribute
	JSXSpreadAttribute
	JSXExpressionContainer
	JSXText
	JSXIdentifier
	JSXMemberExpr
	JSXEmptyExpr

	// Fabricated placeholder used when recovery must substitute a node
	// whose real grammar position demanded something else; always carries
	// a real span from the surrounding tokens.
	Dummy

	kindCount
)

var kindNames = [...]string{
	Invalid:                     "Invalid",
	Program:                     "Program",
	BlockStmt:                   "BlockStmt",
	VarDeclStmt:                 "VarDeclStmt",
	VarDeclarator:               "VarDeclarator",
	ExprStmt:                    "ExprStmt",
	EmptyStmt:                   "EmptyStmt",
	DebuggerStmt:                "DebuggerStmt",
	IfStmt:                      "IfStmt",
	ForStmt:                     "ForStmt",
	ForInStmt:                   "ForInStmt",
	ForOfStmt:                   "ForOfStmt",
	WhileStmt:                   "WhileStmt",
	DoWhileStmt:                 "DoWhileStmt",
	ReturnStmt:                  "ReturnStmt",
	BreakStmt:                   "BreakStmt",
	ContinueStmt:                "ContinueStmt",
	ThrowStmt:                   "ThrowStmt",
	TryStmt:                     "TryStmt",
	CatchClause:                 "CatchClause",
	SwitchStmt:                  "SwitchStmt",
	SwitchCase:                  "SwitchCase",
	LabeledStmt:                 "LabeledStmt",
	FunctionDecl:                "FunctionDecl",
	ClassDecl:                   "ClassDecl",
	ImportDecl:                  "ImportDecl",
	ImportSpecifier:             "ImportSpecifier",
	ImportDefaultSpecifier:      "ImportDefaultSpecifier",
	ImportNamespaceSpecifier:    "ImportNamespaceSpecifier",
	ExportNamedDecl:             "ExportNamedDecl",
	ExportDefaultDecl:           "ExportDefaultDecl",
	ExportAllDecl:               "ExportAllDecl",
	ExportSpecifier:             "ExportSpecifier",
	Identifier:                  "Identifier",
	PrivateIdentifier:           "PrivateIdentifier",
	NumericLiteral:              "NumericLiteral",
	BigIntLiteral:               "BigIntLiteral",
	StringLiteral:               "StringLiteral",
	BooleanLiteral:              "BooleanLiteral",
	NullLiteral:                 "NullLiteral",
	RegExpLiteral:               "RegExpLiteral",
	TemplateLiteral:             "TemplateLiteral",
	TemplateElement:             "TemplateElement",
	TaggedTemplateExpr:          "TaggedTemplateExpr",
	ArrayExpr:                   "ArrayExpr",
	ObjectExpr:                  "ObjectExpr",
	Property:                    "Property",
	FunctionExpr:                "FunctionExpr",
	ArrowFunctionExpr:           "ArrowFunctionExpr",
	ClassExpr:                   "ClassExpr",
	UnaryExpr:                   "UnaryExpr",
	UpdateExpr:                  "UpdateExpr",
	BinaryExpr:                  "BinaryExpr",
	LogicalExpr:                 "LogicalExpr",
	ConditionalExpr:             "ConditionalExpr",
	AssignmentExpr:              "AssignmentExpr",
	SequenceExpr:                "SequenceExpr",
	CallExpr:                    "CallExpr",
	NewExpr:                     "NewExpr",
	MemberExpr:                  "MemberExpr",
	SpreadElement:               "SpreadElement",
	ThisExpr:                    "ThisExpr",
	SuperExpr:                   "SuperExpr",
	ImportExpr:                  "ImportExpr",
	AwaitExpr:                   "AwaitExpr",
	YieldExpr:                   "YieldExpr",
	ParenthesizedExpr:           "ParenthesizedExpr",
	V8IntrinsicExpr:             "V8IntrinsicExpr",
	ObjectPattern:               "ObjectPattern",
	ArrayPattern:                "ArrayPattern",
	AssignmentPattern:           "AssignmentPattern",
	RestElement:                 "RestElement",
	Param:                       "Param",
	ClassBody:                   "ClassBody",
	ClassMethod:                 "ClassMethod",
	ClassProperty:               "ClassProperty",
	StaticBlock:                 "StaticBlock",
	Decorator:                   "Decorator",
	TSTypeAnnotation:            "TSTypeAnnotation",
	TSKeywordType:               "TSKeywordType",
	TSTypeReference:             "TSTypeReference",
	TSUnionType:                 "TSUnionType",
	TSIntersectionType:          "TSIntersectionType",
	TSArrayType:                 "TSArrayType",
	TSIndexedAccessType:         "TSIndexedAccessType",
	TSTupleType:                 "TSTupleType",
	TSLiteralType:               "TSLiteralType",
	TSFunctionType:              "TSFunctionType",
	TSConstructorType:           "TSConstructorType",
	TSTypeLiteral:               "TSTypeLiteral",
	TSPropertySignature:         "TSPropertySignature",
	TSMethodSignature:           "TSMethodSignature",
	TSIndexSignature:            "TSIndexSignature",
	TSCallSignature:             "TSCallSignature",
	TSConditionalType:           "TSConditionalType",
	TSMappedType:                "TSMappedType",
	TSTypeOperator:              "TSTypeOperator",
	TSParenthesizedType:         "TSParenthesizedType",
	TSTypeParameter:             "TSTypeParameter",
	TSTypeParameterDecl:         "TSTypeParameterDecl",
	TSTypeArgumentInstantiation: "TSTypeArgumentInstantiation",
	TSInterfaceDecl:             "TSInterfaceDecl",
	TSInterfaceBody:             "TSInterfaceBody",
	TSHeritageClause:            "TSHeritageClause",
	TSTypeAliasDecl:             "TSTypeAliasDecl",
	TSEnumDecl:                  "TSEnumDecl",
	TSEnumMember:                "TSEnumMember",
	TSModuleDecl:                "TSModuleDecl",
	TSModuleBlock:               "TSModuleBlock",
	TSAsExpr:                    "TSAsExpr",
	TSSatisfiesExpr:             "TSSatisfiesExpr",
	TSNonNullExpr:               "TSNonNullExpr",
	TSTypeAssertion:             "TSTypeAssertion",
	TSImportEqualsDecl:          "TSImportEqualsDecl",
	JSXElement:                  "JSXElement",
	JSXFragment:                 "JSXFragment",
	JSXOpeningElement:           "JSXOpeningElement",
	JSXClosingElement:           "JSXClosingElement",
	JSXAttribute:                "JSXAttribute",
	JSXSpreadAttribute:          "JSXSpreadAttribute",
	JSXExpressionContainer:      "JSXExpressionContainer",
	JSXText:                     "JSXText",
	JSXIdentifier:               "JSXIdentifier",
	JSXMemberExpr:               "JSXMemberExpr",
	JSXEmptyExpr:                "JSXEmptyExpr",
	Dummy:                       "Dummy",
}

// String renders a stable name for diagnostics, tracing and tests.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
