package token

import "ecmaparser/internal/source"

// TriviaKind classifies a span of non-token source text.
type TriviaKind uint8

const (
	// TriviaWhitespace represents horizontal whitespace (not a LineTerminator).
	TriviaWhitespace TriviaKind = iota
	// TriviaLineTerminator represents a single LineTerminatorSequence.
	TriviaLineTerminator
	// TriviaLineComment represents a `//` comment.
	TriviaLineComment
	// TriviaBlockComment represents a `/* ... */` comment.
	TriviaBlockComment
	// TriviaHashbang represents a leading `#!` hashbang line (only legal as
	// the very first trivia of a Script or Module).
	TriviaHashbang
)

// Trivia represents a single piece of skipped, non-semantic source text
// attached as the Leading trivia of the token that follows it.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// ContainsLineTerminator reports whether any trivia in the slice carries a
// line terminator, either as its own kind or embedded in a block comment.
func ContainsLineTerminator(trivia []Trivia) bool {
	for _, t := range trivia {
		if t.Kind == TriviaLineTerminator {
			return true
		}
		if t.Kind == TriviaBlockComment {
			for _, r := range t.Text {
				if r == '\n' || r == '\r' || r == ' ' || r == ' ' {
					return true
				}
			}
		}
	}
	return false
}
