package parser

// Options configures a parse. The zero value is not a usable configuration
// — use DefaultOptions and override individual fields.
type Options struct {
	// RecoverFromErrors enables the error-recovery machinery: the context
	// stack, synchronization, and dummy-node fabrication. With it off, the
	// first mismatch sets Cursor.fatal and every enclosing loop exits at
	// its next fatal check.
	RecoverFromErrors bool
	// ParseRegularExpression is not consulted by the parser: a `/.../flags`
	// literal at expression-start position is always re-lexed into one
	// RegExpLiteral whose body is kept as opaque text, and no AST of the
	// pattern is built in either setting.
	ParseRegularExpression bool
	// AllowReturnOutsideFunction suppresses the return-outside-function
	// diagnostic, for embedders that splice top-level code into a function.
	AllowReturnOutsideFunction bool
	// PreserveParens emits ParenthesizedExpression / TSParenthesizedType
	// nodes instead of inlining the wrapped expression/type.
	PreserveParens bool
	// AllowV8Intrinsics accepts `%Identifier(...)` as an expression.
	AllowV8Intrinsics bool
	// MaxDiagnostics bounds the diagnostic bag; additional diagnostics are
	// silently dropped by Bag.Add once the limit is reached.
	MaxDiagnostics int
}

// DefaultOptions returns the recovery-enabled configuration used by the CLI
// and test harness unless overridden.
func DefaultOptions() Options {
	return Options{
		RecoverFromErrors:      true,
		ParseRegularExpression: true,
		MaxDiagnostics:         4096,
	}
}
