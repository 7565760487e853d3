package parser

import (
	"ecmaparser/internal/ast"
	"ecmaparser/internal/source"
)

// State is the auxiliary bookkeeping a parse carries alongside the Cursor:
// resolving cover grammars (parenthesized expression vs. arrow parameter
// list, object literal vs. object binding pattern) and tracking unclosed
// parens for recovery-mode diagnostics. Every map is keyed by the byte
// offset of the node/token it annotates, since NodeID is not assigned until
// the surrounding production commits to one interpretation.
type State struct {
	// NotParenthesizedArrow is keyed by the start offsets of parenthesized
	// expressions; no production in this package writes or reads it, so a
	// failed speculative arrow-function parse is retried wherever it recurs.
	NotParenthesizedArrow map[uint32]struct{}
	// CoverInitializedName records `{a = 1}`-shaped object literal
	// properties parsed under the object/pattern cover grammar, keyed by
	// the property's start offset, so a later refinement to
	// AssignmentPattern can find the initializer again.
	CoverInitializedName map[uint32]ast.NodeID
	// TrailingCommas records the span of a trailing comma inside a list,
	// keyed by the start offset of the element it follows, consulted when a rest element
	// turns out to have been followed by one (an invalid position).
	TrailingCommas map[uint32]source.Span
	// ParenStack holds the opening span of every `(` expected but not yet
	// closed; only maintained while RecoverFromErrors is set.
	ParenStack []source.Span
	// SawModuleSyntax records whether an import or export declaration was
	// parsed at any point, consulted by the driver's Unambiguous
	// module-kind promotion.
	SawModuleSyntax bool
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		NotParenthesizedArrow: make(map[uint32]struct{}),
		CoverInitializedName:  make(map[uint32]ast.NodeID),
		TrailingCommas:        make(map[uint32]source.Span),
	}
}
