package lexer

import "ecmaparser/internal/source"

// Cursor is the byte-level position the scan routines advance over a
// file's conditioned content. It deals in raw bytes only — multi-byte
// runes, tokens, and trivia are the Lexer's business. Each scan routine
// brackets the bytes it consumes between Mark and SpanFrom, which is how
// every token span ends up measuring exactly the source it was lexed from.
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor positions a cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f}
}

// EOF reports whether the content is exhausted.
func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.File.Content)
}

// Peek returns the current byte without consuming it, or 0 at EOF. The
// zero return doubles as a harmless sentinel: no scan routine treats NUL
// as a start byte.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the next two bytes, reporting ok=false when fewer remain —
// what the `//`, `/*`, `${`, and `\u` two-byte dispatches look at.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if int(c.Off)+1 >= len(c.File.Content) {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Peek3 returns the next three bytes, for the three-byte operator heads
// (`===`, `>>>`, `...`) and the `?.digit` carve-out.
func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	if int(c.Off)+2 >= len(c.File.Content) {
		return 0, 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], c.File.Content[c.Off+2], true
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the current byte iff it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark is a saved scan position, cheap enough to take at the start of
// every token.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom closes the span from a mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset rewinds to a mark, undoing everything consumed since.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
