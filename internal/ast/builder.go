package ast

import (
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

// Builder is a thin convenience wrapper over Tree: every constructor method
// allocates one node and returns its id (DummyCatchClause also allocates the
// parameter and body it wraps). internal/parser calls
// these instead of touching Tree.New directly so the shape of each grammar
// construct has one named call site.
type Builder struct {
	*Tree
}

// NewBuilder wraps a Tree.
func NewBuilder(t *Tree) *Builder { return &Builder{Tree: t} }

// Leaf allocates a childless node (identifiers, literals, `this`, …).
func (b *Builder) Leaf(kind Kind, sp source.Span) NodeID {
	return b.New(Node{Kind: kind, Span: sp})
}

// LeafText allocates a childless node carrying interned text, e.g. an
// Identifier or a StringLiteral.
func (b *Builder) LeafText(kind Kind, sp source.Span, text string) NodeID {
	return b.New(Node{Kind: kind, Span: sp, Str: b.Intern(text)})
}

// Node allocates a node with children and no auxiliary fields.
func (b *Builder) Node(kind Kind, sp source.Span, children ...NodeID) NodeID {
	return b.New(Node{Kind: kind, Span: sp, Children: append([]NodeID(nil), children...)})
}

// OpNode allocates a node whose variant depends on an operator/keyword kind
// (BinaryExpr, LogicalExpr, UnaryExpr, UpdateExpr, AssignmentExpr,
// VarDeclStmt, TSKeywordType, …).
func (b *Builder) OpNode(kind Kind, sp source.Span, op token.Kind, flags uint32, children ...NodeID) NodeID {
	return b.New(Node{Kind: kind, Span: sp, Op: op, Flags: flags, Children: append([]NodeID(nil), children...)})
}

// FlaggedNode allocates a node with children and a flag bitset but no
// operator (class members, parameters, properties, …).
func (b *Builder) FlaggedNode(kind Kind, sp source.Span, flags uint32, children ...NodeID) NodeID {
	return b.New(Node{Kind: kind, Span: sp, Flags: flags, Children: append([]NodeID(nil), children...)})
}

// ---------------------------------------------------------------------
// Dummy-node fabrication. Every constructor here carries the real span of
// the tokens it replaces — never a synthetic invalid span — and sets
// FlagDummy so a caller can tell a fabricated node from a parsed one
// without inspecting Children.
// ---------------------------------------------------------------------

// DummyFunctionBody fabricates an empty function body at sp when a
// mandatory body was required but missing.
func (b *Builder) DummyFunctionBody(sp source.Span) NodeID {
	return b.FlaggedNode(BlockStmt, sp, FlagDummy)
}

// DummyCatchClause fabricates `catch (e) {}` at sp when a `try` has neither
// a `catch` nor a `finally`.
func (b *Builder) DummyCatchClause(sp source.Span) NodeID {
	param := b.FlaggedNode(Identifier, sp.Before(), FlagDummy)
	b.Get(param).Str = b.Intern("e")
	body := b.DummyFunctionBody(sp.After())
	return b.FlaggedNode(CatchClause, sp, FlagDummy, param, body)
}

// DummyCatchParam fabricates the identifier `e` standing in for an invalid
// catch-clause parameter (e.g. a numeric literal in binding position).
func (b *Builder) DummyCatchParam(sp source.Span) NodeID {
	id := b.FlaggedNode(Identifier, sp, FlagDummy)
	b.Get(id).Str = b.Intern("e")
	return id
}

// DummyEnumMemberName fabricates a substitute identifier for an enum member
// whose declared name was syntactically invalid: `_N` for a numeric literal
// name, `__computed__` for a computed name, `__template__` for a template
// literal name.
func (b *Builder) DummyEnumMemberName(sp source.Span, substitute string) NodeID {
	id := b.FlaggedNode(Identifier, sp, FlagDummy)
	b.Get(id).Str = b.Intern(substitute)
	return id
}

// Dummy fabricates a generic placeholder of the given span when no more
// specific substitution applies.
func (b *Builder) Dummy(sp source.Span) NodeID {
	return b.FlaggedNode(Dummy, sp, FlagDummy)
}

// DummyProgram fabricates an empty Program, substituted for the real parse
// tree at finalization when a fatal, non-recoverable error fired or when
// the source exceeds the 4 GiB hard limit.
func (b *Builder) DummyProgram(sp source.Span) NodeID {
	return b.FlaggedNode(Program, sp, FlagDummy)
}
