package diag

import "ecmaparser/internal/source"

// New builds a diagnostic value of the given severity. The parser's
// recoverable-error paths construct diagnostics with these helpers and
// chain WithLabel/WithFix before handing the value to a Bag or setting it
// as the one fatal diagnostic.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	}
}

// NewError builds a SevError diagnostic, the severity every syntax error
// carries.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewWarning builds a SevWarning diagnostic.
func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}
