package token_test

import (
	"testing"

	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

func TestTriviaAttachedToToken(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaLineComment,
		Span: source.Span{Start: 0, End: 17},
		Text: "// leading remark",
	}
	tok := token.Token{
		Kind:    token.KwFunction,
		Span:    source.Span{Start: 18, End: 26},
		Text:    "function",
		Leading: []token.Trivia{tv},
	}
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("line comment trivia must be present and structured")
	}
}

func TestContainsLineTerminator(t *testing.T) {
	trivia := []token.Trivia{
		{Kind: token.TriviaWhitespace},
		{Kind: token.TriviaLineComment},
	}
	if token.ContainsLineTerminator(trivia) {
		t.Fatalf("trivia with no LineTerminator must report false")
	}
	trivia = append(trivia, token.Trivia{Kind: token.TriviaLineTerminator})
	if !token.ContainsLineTerminator(trivia) {
		t.Fatalf("trivia containing a LineTerminator must report true")
	}
}
