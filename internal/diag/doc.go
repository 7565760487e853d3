// Package diag defines the diagnostic model the parser, lexer, and driver
// share.
//
// # Data model
//
// Diagnostic is the central record: a Severity, a stable Code (see
// codes.go for the lexical and syntactic catalogues), a short Message, the
// Primary span the problem sits at, and optional Labels — secondary
// span/message pairs such as "unclosed delimiter opened here". Every
// diagnostic carries at least one span inside the source; "something is
// missing" diagnostics use a zero-width primary at the insertion point.
//
// Labels should be used sparingly: each label must add new context rather
// than restating the message.
//
// # Recovery and ordering
//
// The Bag is an ordered collection. In recovery mode the parser appends
// diagnostics in source order as it encounters them; speculative parses
// truncate the Bag back to a checkpointed length on rewind, which is why
// Bag.Truncate exists and why nothing in this package reorders entries
// behind the producer's back. The Bag itself offers no sorting or
// deduplication: FormatGoldenDiagnostics sorts its own rendered copy, and a
// DedupReporter drops repeats before they ever reach a Bag.
//
// # Fix suggestions
//
// Fix models an automated correction as data: a title, a kind, an
// applicability level, and concrete TextEdits (or a lazy Thunk expanded via
// Resolve/MaterializeFixes). The parser attaches always-safe fixes to a few
// diagnostics — inserting a missing semicolon or closing delimiter — and
// internal/fix applies them.
//
// # Emitting
//
// The parser appends into its Bag directly. The lexer and driver go through
// the Reporter interface (BagReporter, DedupReporter, NopReporter) so they
// stay decoupled from storage. Rendering is out of scope here: the CLI's
// plain printer and the golden-format helpers in golden.go are the only
// consumers of the rendered form.
package diag
