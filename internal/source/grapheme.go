package source

import "github.com/clipperhouse/uax29/v2/graphemes"

// GraphemeCol is a 1-based grapheme-cluster column, distinct from LineCol's
// byte-offset-derived Col: a diagnostic label rendered over source text
// containing astral code points or combining marks undercounts columns if it
// measures bytes or even runes, so label rendering resolves this alongside
// the byte-offset Span that stays authoritative for all position math.
func GraphemeCol(line []byte, byteCol uint32) uint32 {
	if byteCol == 0 {
		return 1
	}
	limit := byteCol
	if limit > uint32(len(line)) {
		limit = uint32(len(line))
	}
	seg := graphemes.FromBytes(line[:limit])
	var n uint32
	for seg.Next() {
		n++
	}
	return n + 1
}

// ResolveGraphemeCol resolves a span's start position to a 1-based
// grapheme-cluster column on its line, for label rendering over source
// containing combining marks or astral code points. The byte-offset LineCol
// from Resolve remains authoritative for span arithmetic.
func (fileSet *FileSet) ResolveGraphemeCol(span Span) uint32 {
	f := &fileSet.files[span.File]
	lc := toLineCol(f.LineIdx, span.Start)

	lineStart := uint32(0)
	if lc.Line > 1 && int(lc.Line-2) < len(f.LineIdx) {
		lineStart = f.LineIdx[lc.Line-2] + 1
	}
	byteCol := span.Start - lineStart
	lineEnd := uint32(len(f.Content))
	if int(lc.Line-1) < len(f.LineIdx) {
		lineEnd = f.LineIdx[lc.Line-1]
	}
	if lineStart > lineEnd || lineStart > uint32(len(f.Content)) {
		return lc.Col
	}
	return GraphemeCol(f.Content[lineStart:lineEnd], byteCol)
}
