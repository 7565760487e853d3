package ast

import (
	"testing"

	"ecmaparser/internal/source"
)

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena(8)
	if got := a.Get(0); got != nil {
		t.Fatalf("ID 0 is NoNodeID and must resolve to nil")
	}
	id := a.Allocate(Node{Kind: Identifier})
	if id != 1 {
		t.Fatalf("first ID = %d, want 1", id)
	}
	if a.Get(id).Kind != Identifier {
		t.Fatalf("Get(1) did not return the allocated node")
	}
	if a.Get(2) != nil {
		t.Fatalf("an unallocated ID must resolve to nil")
	}
}

// Pointers handed out by Get must survive later growth — the parser mutates
// a just-allocated node (decorator attachment, accessor op) through such a
// pointer while allocation continues.
func TestArenaPointersStableAcrossBlocks(t *testing.T) {
	a := NewArena(arenaBlockSize)
	first := a.Allocate(Node{Kind: Program})
	held := a.Get(first)

	// Force several new blocks.
	for i := 0; i < arenaBlockSize*3; i++ {
		a.Allocate(Node{Kind: ExprStmt, Span: source.Span{Start: uint32(i)}})
	}

	held.Flags |= FlagDummy
	if !a.Get(first).Has(FlagDummy) {
		t.Fatalf("mutation through a held pointer must be visible via Get")
	}
	if a.Len() != uint32(arenaBlockSize*3+1) {
		t.Fatalf("Len() = %d", a.Len())
	}

	// Every node is still addressable and holds its own data.
	for i := uint32(2); i <= a.Len(); i++ {
		n := a.Get(i)
		if n == nil || n.Span.Start != i-2 {
			t.Fatalf("node %d = %+v", i, n)
		}
	}
}

func TestTreeInterning(t *testing.T) {
	tr := NewTree(4, nil)
	b := NewBuilder(tr)
	id := b.LeafText(Identifier, source.Span{Start: 0, End: 3}, "foo")
	again := b.LeafText(Identifier, source.Span{Start: 10, End: 13}, "foo")

	n1, n2 := b.Get(id), b.Get(again)
	if n1.Str != n2.Str {
		t.Fatalf("the same spelling must intern to one StringID: %d vs %d", n1.Str, n2.Str)
	}
	if b.Text(n1.Str) != "foo" {
		t.Fatalf("Text round-trip = %q", b.Text(n1.Str))
	}
}

func TestDummyConstructorsCarryRealSpans(t *testing.T) {
	b := NewBuilder(NewTree(8, nil))
	sp := source.Span{Start: 5, End: 9}

	cases := []struct {
		name string
		id   NodeID
	}{
		{"function body", b.DummyFunctionBody(sp)},
		{"catch clause", b.DummyCatchClause(sp)},
		{"catch param", b.DummyCatchParam(sp)},
		{"enum member name", b.DummyEnumMemberName(sp, "_123")},
		{"generic", b.Dummy(sp)},
	}
	for _, tt := range cases {
		n := b.Get(tt.id)
		if !n.Has(FlagDummy) {
			t.Errorf("%s: fabricated node must carry FlagDummy", tt.name)
		}
		if n.Span.Start > n.Span.End || n.Span.End > 9 || n.Span.Start < 5 {
			t.Errorf("%s: span %v must derive from the replaced tokens", tt.name, n.Span)
		}
	}
}
