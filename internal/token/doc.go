// Package token defines the lexical token kinds, trivia, and keyword tables
// for ECMAScript and TypeScript source.
// Invariants:
//   - Token.Span matches Text exactly (Start..End), in byte offsets.
//   - Reserved words, strict-mode reserved words, and contextual keywords
//     each carry a distinct Kind; the parser decides per grammar position
//     whether a contextual-keyword kind reads as a plain identifier.
//   - Comments, whitespace, line terminators, and a leading hashbang are
//     leading Trivia and never appear in the main token stream.
//   - An escape-spelled keyword (`if`) keeps its keyword Kind with
//     Escaped set; the grammar rejects it wherever the plain spelling
//     would be accepted as a keyword.
package token
