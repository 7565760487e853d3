package diag

import "ecmaparser/internal/source"

// Reporter is the sink the lexer and driver hand diagnostics to when they
// don't own a Bag directly. The parser itself appends straight into its
// Bag (recovery-order matters there); Reporter exists for the collaborators
// around it.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, labels []Label, fixes []Fix)
}

// BagReporter forwards every reported diagnostic into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, labels []Label, fixes []Fix) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(&Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Labels:   labels,
		Fixes:    fixes,
	})
}

// NopReporter discards everything, for callers that only care about the
// token/tree output and not the diagnostics.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Label, []Fix) {}
