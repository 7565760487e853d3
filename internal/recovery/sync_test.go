package recovery

import (
	"testing"

	"ecmaparser/internal/pctx"
	"ecmaparser/internal/token"
)

func TestIsContextTerminatorTable(t *testing.T) {
	cases := []struct {
		ctx  pctx.Context
		kind token.Kind
		want bool
	}{
		{pctx.TopLevel, token.EOF, true},
		{pctx.TopLevel, token.Ident, false},
		{pctx.BlockStatements, token.RBrace, true},
		{pctx.Parameters, token.RParen, true},
		{pctx.Parameters, token.KwExtends, true},
		{pctx.ArgumentExpressions, token.Semicolon, true},
		{pctx.SwitchClauses, token.KwCase, true},
		{pctx.JsxChildren, token.Lt, true},
		{pctx.JsxChildren, token.Gt, false},
	}
	for _, c := range cases {
		if got := IsContextTerminator(c.ctx, c.kind); got != c.want {
			t.Errorf("IsContextTerminator(%v, %v) = %v, want %v", c.ctx, c.kind, got, c.want)
		}
	}
}

func TestSynchronizeSkipAdvancesAndReportsSkip(t *testing.T) {
	stack := pctx.NewStack()
	stack.Push(pctx.BlockStatements)
	bumped := false
	bump := func() { bumped = true }

	// A token meaningless in BlockStatements and in TopLevel: e.g. `)`.
	decision := Synchronize(true, stack, pctx.BlockStatements, token.RParen, bump)
	if decision != Skip {
		t.Fatalf("expected Skip, got %v", decision)
	}
	if !bumped {
		t.Fatalf("Skip decision must call bump exactly once")
	}
}

func TestSynchronizeAbortsOnTerminator(t *testing.T) {
	stack := pctx.NewStack()
	stack.Push(pctx.BlockStatements)
	bumped := false
	decision := Synchronize(true, stack, pctx.BlockStatements, token.RBrace, func() { bumped = true })
	if decision != Abort {
		t.Fatalf("expected Abort on terminator, got %v", decision)
	}
	if bumped {
		t.Fatalf("Abort must not advance the cursor")
	}
}

func TestSynchronizeAbortsWhenMeaningfulToParent(t *testing.T) {
	stack := pctx.NewStack()
	stack.Push(pctx.ClassMembers)
	stack.Push(pctx.Parameters)
	// `)` terminates Parameters itself, so that's covered by the terminator
	// check; use a token that only an ancestor (ClassMembers) would want: an
	// identifier is an element start of ClassMembers, which would also be
	// an element start of Parameters, so pick `}` which only terminates
	// ClassMembers, not Parameters.
	decision := Synchronize(true, stack, pctx.Parameters, token.RBrace, func() {})
	if decision != Abort {
		t.Fatalf("expected Abort when token terminates an ancestor context, got %v", decision)
	}
}

func TestSynchronizeDisabledAlwaysAborts(t *testing.T) {
	stack := pctx.NewStack()
	decision := Synchronize(false, stack, pctx.TopLevel, token.Ident, func() {
		t.Fatalf("bump must not be called when recovery is disabled")
	})
	if decision != Abort {
		t.Fatalf("recovery disabled must always Abort")
	}
}
