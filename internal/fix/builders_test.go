package fix

import (
	"testing"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
)

func TestInsertTextDefaults(t *testing.T) {
	at := source.Span{File: 0, Start: 10, End: 10}
	f := InsertText("insert ';'", at, ";", "")

	if f.Kind != diag.FixKindQuickFix {
		t.Errorf("Kind = %v, want quick fix", f.Kind)
	}
	if f.Applicability != diag.FixApplicabilityAlwaysSafe {
		t.Errorf("Applicability = %v, want always safe", f.Applicability)
	}
	if len(f.Edits) != 1 || f.Edits[0].NewText != ";" || !f.Edits[0].Span.Empty() {
		t.Errorf("edits = %+v, want one zero-width insert of \";\"", f.Edits)
	}
	if !f.Materialized() {
		t.Errorf("a built fix must be materialized")
	}
}

func TestDeleteAndReplaceCarryGuards(t *testing.T) {
	span := source.Span{Start: 4, End: 7}

	del := DeleteSpan("remove extra comma", span, ",,,")
	if del.Edits[0].OldText != ",,," || del.Edits[0].NewText != "" {
		t.Errorf("delete edit = %+v", del.Edits[0])
	}

	rep := ReplaceSpan("spell keyword correctly", span, "let", "lte")
	if rep.Edits[0].OldText != "lte" || rep.Edits[0].NewText != "let" {
		t.Errorf("replace edit = %+v", rep.Edits[0])
	}
}

func TestOptionsCompose(t *testing.T) {
	f := InsertText("insert missing )", source.Span{Start: 3, End: 3}, ")", "",
		WithID("paren-1"),
		WithKind(diag.FixKindRefactor),
		WithApplicability(diag.FixApplicabilityManualReview),
		Preferred(),
	)
	if f.ID != "paren-1" {
		t.Errorf("ID = %q", f.ID)
	}
	if f.Kind != diag.FixKindRefactor {
		t.Errorf("Kind = %v", f.Kind)
	}
	if f.Applicability != diag.FixApplicabilityManualReview {
		t.Errorf("Applicability = %v", f.Applicability)
	}
	if !f.IsPreferred {
		t.Errorf("Preferred() must set IsPreferred")
	}
}

type stubThunk struct{ built diag.Fix }

func (s stubThunk) ID() string                                 { return "stub" }
func (s stubThunk) Build(diag.FixBuildContext) (diag.Fix, error) { return s.built, nil }

func TestWithThunkDefersEdits(t *testing.T) {
	built := ReplaceSpan("built later", source.Span{Start: 0, End: 1}, "x", "")
	f := diag.Fix{Title: "lazy"}
	WithThunk(stubThunk{built: built})(&f)

	if f.Materialized() {
		t.Fatalf("a thunk-only fix must not be materialized")
	}
	resolved, err := f.Resolve(diag.FixBuildContext{})
	if err != nil {
		t.Fatal(err)
	}
	if !resolved.Materialized() || resolved.Title != "built later" {
		t.Fatalf("resolved = %+v", resolved)
	}
}
