package trace

import (
	"strings"
	"testing"
)

func TestLevelScopeFilter(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeFile, false},
		{LevelPhase, ScopeFile, true},
		{LevelPhase, ScopeProduction, false},
		{LevelDetail, ScopeProduction, true},
		{LevelDetail, ScopeRecovery, true},
		{LevelDetail, ScopeToken, false},
		{LevelDebug, ScopeToken, true},
	}
	for _, tt := range cases {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestRingKeepsNewestEvents(t *testing.T) {
	ring := NewRingTracer(4, LevelDetail)
	for i := 0; i < 6; i++ {
		ring.Emit(&Event{Kind: KindPoint, Scope: ScopeRecovery, Name: "sync:skip", Offset: uint32(i)})
	}
	snap := ring.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("snapshot len = %d, want ring capacity", len(snap))
	}
	for i, ev := range snap {
		if want := uint32(i + 2); ev.Offset != want {
			t.Fatalf("snapshot[%d].Offset = %d, want %d (oldest first)", i, ev.Offset, want)
		}
	}
}

func TestRingFiltersByScope(t *testing.T) {
	ring := NewRingTracer(4, LevelPhase)
	ring.Emit(&Event{Kind: KindPoint, Scope: ScopeRecovery, Name: "sync:abort"})
	if got := len(ring.Snapshot()); got != 0 {
		t.Fatalf("phase level must drop recovery events, kept %d", got)
	}
}

func TestStreamSpanLifecycle(t *testing.T) {
	var sb strings.Builder
	st := NewStreamTracer(&sb, LevelDetail, FormatText)

	sp := Begin(st, ScopeProduction, "ClassMembers", 0)
	Point(st, ScopeRecovery, "sync:skip", "ClassMembers", 17)
	sp.End("3 members")

	out := sb.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected begin/point/end lines, got %d:\n%s", len(lines), out)
	}
	for _, want := range []string{"begin", "point", "sync:skip", "@17", "end", "(3 members)", "ClassMembers"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBeginFilteredScopeIsInert(t *testing.T) {
	var sb strings.Builder
	st := NewStreamTracer(&sb, LevelPhase, FormatText)

	sp := Begin(st, ScopeProduction, "Parameters", 0)
	sp.End("")
	if sb.Len() != 0 {
		t.Fatalf("a filtered-out span must emit nothing, got %q", sb.String())
	}
	if sp.ID() != 0 {
		t.Fatalf("an inert span has no ID")
	}
}

func TestNDJSONFormat(t *testing.T) {
	var sb strings.Builder
	st := NewStreamTracer(&sb, LevelDetail, FormatNDJSON)
	Point(st, ScopeRecovery, "sync:abort", "Parameters", 9)

	line := sb.String()
	for _, want := range []string{`"kind":"point"`, `"scope":"recovery"`, `"name":"sync:abort"`, `"offset":9`} {
		if !strings.Contains(line, want) {
			t.Errorf("ndjson missing %s: %s", want, line)
		}
	}
}
