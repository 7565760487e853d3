// Package trace records what the parser did, for diagnosing slow or
// surprising parses without attaching a debugger.
//
// Three kinds of signal exist, matched to the parser's own structure:
//
//   - file spans: one begin/end pair per file-level pass (parse, tokenize);
//   - production spans: begin/end around a delimited production's member
//     list (a class body, a parameter list), named by its parsing context;
//   - recovery points: one instant event per synchronization decision,
//     recording whether the engine skipped the offending token or aborted
//     the context, and at which byte offset.
//
// Verbosity is controlled by Level: LevelPhase emits only file spans,
// LevelDetail adds production spans and recovery points, LevelDebug adds
// token-scope events. Storage is a StreamTracer (immediate write, text or
// NDJSON), a RingTracer (last-N buffer dumped on demand), or both.
//
// Enable from the CLI:
//
//	ecmaparse parse --trace=- --trace-level=detail myfile.ts
package trace
