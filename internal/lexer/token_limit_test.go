package lexer

import (
	"strings"
	"testing"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

// A single token longer than maxTokenLength is reported once and replaced
// by Invalid, and the lexer fast-forwards to EOF so a pathological input
// (a megabyte-long identifier, an unterminated generated string) cannot
// make the parser grind through it byte by byte.
func TestTokenLengthLimit(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		wantKind token.Kind
		wantErrs int
	}{
		{"over the limit", strings.Repeat("a", maxTokenLength+1), token.Invalid, 1},
		{"exactly at the limit", strings.Repeat("b", maxTokenLength), token.Ident, 0},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("limit.ts", []byte(tt.content)))
			bag := diag.NewBag(4)
			lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}})

			tok := lx.Next()
			if tok.Kind != tt.wantKind {
				t.Fatalf("kind = %v, want %v", tok.Kind, tt.wantKind)
			}
			if got := bag.Len(); got != tt.wantErrs {
				t.Fatalf("diagnostics = %d, want %d", got, tt.wantErrs)
			}
			if tt.wantErrs > 0 {
				if bag.Items()[0].Code != diag.LexTokenTooLong {
					t.Fatalf("code = %v, want LexTokenTooLong", bag.Items()[0].Code)
				}
				if next := lx.Next(); next.Kind != token.EOF {
					t.Fatalf("lexer must fast-forward to EOF, got %v", next.Kind)
				}
			}
		})
	}
}
