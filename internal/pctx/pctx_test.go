package pctx

import "testing"

func TestStackStartsAtTopLevel(t *testing.T) {
	s := NewStack()
	if s.Current() != TopLevel {
		t.Fatalf("new stack must start at TopLevel, got %v", s.Current())
	}
	if !s.AtTopLevel() {
		t.Fatalf("new stack must report AtTopLevel")
	}
}

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	s.Push(BlockStatements)
	if s.Current() != BlockStatements || s.Depth() != 2 {
		t.Fatalf("push did not enter BlockStatements: %v depth=%d", s.Current(), s.Depth())
	}
	if !s.Pop() {
		t.Fatalf("pop from depth 2 must succeed")
	}
	if !s.AtTopLevel() {
		t.Fatalf("popping the only pushed frame must return to TopLevel")
	}
}

func TestStackPopAtTopLevelIsNoOp(t *testing.T) {
	s := NewStack()
	if s.Pop() {
		t.Fatalf("pop at TopLevel must return false")
	}
	if s.Current() != TopLevel || s.Depth() != 1 {
		t.Fatalf("pop at TopLevel must not mutate the stack")
	}
}

func TestStackContainsAndActiveOrder(t *testing.T) {
	s := NewStack()
	s.Push(ClassMembers)
	s.Push(Parameters)
	if !s.Contains(ClassMembers) || !s.Contains(TopLevel) {
		t.Fatalf("Contains must see every pushed frame")
	}
	active := s.Active()
	want := []Context{Parameters, ClassMembers, TopLevel}
	if len(active) != len(want) {
		t.Fatalf("unexpected active length: %v", active)
	}
	for i, c := range want {
		if active[i] != c {
			t.Fatalf("active[%d] = %v, want %v", i, active[i], c)
		}
	}
}
