package fix

import (
	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
)

// Option adjusts a built fix's metadata.
type Option func(*diag.Fix)

// WithApplicability overrides the default always-safe applicability.
func WithApplicability(app diag.FixApplicability) Option {
	return func(f *diag.Fix) { f.Applicability = app }
}

// WithKind overrides the default quick-fix kind.
func WithKind(kind diag.FixKind) Option {
	return func(f *diag.Fix) { f.Kind = kind }
}

// Preferred marks the fix as the one a UI should offer first.
func Preferred() Option {
	return func(f *diag.Fix) { f.IsPreferred = true }
}

// WithID pins an explicit fix ID, for --fix-id style targeting.
func WithID(id string) Option {
	return func(f *diag.Fix) { f.ID = id }
}

// WithThunk attaches a lazy builder expanded at apply time.
func WithThunk(thunk diag.FixThunk) Option {
	return func(f *diag.Fix) { f.Thunk = thunk }
}

func build(title string, edits []diag.TextEdit, opts []Option) diag.Fix {
	f := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Edits:         edits,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

// InsertText builds a fix inserting text at a zero-width position — the
// shape behind "insert ';'" and "insert missing )". guard, when non-empty,
// must match the text already at the position for the fix to apply.
func InsertText(title string, at source.Span, text string, guard string, opts ...Option) diag.Fix {
	return build(title, []diag.TextEdit{{Span: at, NewText: text, OldText: guard}}, opts)
}

// DeleteSpan builds a fix removing the covered text; expect, when
// non-empty, guards that the span still holds the text being removed.
func DeleteSpan(title string, span source.Span, expect string, opts ...Option) diag.Fix {
	return build(title, []diag.TextEdit{{Span: span, OldText: expect}}, opts)
}

// ReplaceSpan builds a fix swapping the covered text for newText.
func ReplaceSpan(title string, span source.Span, newText, expect string, opts ...Option) diag.Fix {
	return build(title, []diag.TextEdit{{Span: span, NewText: newText, OldText: expect}}, opts)
}
