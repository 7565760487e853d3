package source

import "fmt"

// Span is a half-open byte range [Start, End) in one source file. The
// lexer stamps every token with one, the parser closes every AST node's
// span at the previous token's end, and diagnostics carry them unchanged —
// nothing downstream ever re-measures text. Offsets are uint32, which is
// what caps parseable input at 4 GiB.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Empty reports whether the span covers no bytes — the shape of the spans
// automatic semicolon insertion and missing-delimiter fixes anchor to.
func (s Span) Empty() bool { return s.Start == s.End }

// Len returns the span's length in bytes.
func (s Span) Len() uint32 { return s.End - s.Start }

// Before returns the zero-width span immediately before the first byte,
// where a fabricated node standing in for a missing construct is anchored.
func (s Span) Before() Span {
	return Span{File: s.File, Start: s.Start, End: s.Start}
}

// After returns the zero-width span immediately after the last byte — the
// position an inserted semicolon or closing delimiter would occupy.
func (s Span) After() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}

// To returns the span from the start of s through the end of other, the
// opener-to-closer merge a delimited production closes its node with. Spans
// from different files don't merge; s is returned unchanged.
func (s Span) To(other Span) Span {
	if s.File != other.File || other.End < s.End {
		return s
	}
	return Span{File: s.File, Start: s.Start, End: other.End}
}

// Contains reports whether the byte offset off falls inside the span.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
