package source

import (
	"bytes"
	"path/filepath"
	"sort"
)

// normalizeCRLF collapses \r\n to \n so the lexer's line-terminator logic
// (OnNewLine, ASI) sees one byte per Windows line break. Lone \r is left
// alone — it is a LineTerminator of its own in the grammar and the lexer
// handles it directly. Reports whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content, false
	}
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			continue
		}
		out = append(out, content[i])
	}
	return out, true
}

// removeBOM strips a leading UTF-8 byte-order mark. The grammar treats a
// BOM as format-control trivia; stripping it up front keeps the lexer's
// offset-0 hashbang check simple.
func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}) {
		return content[3:], true
	}
	return content, false
}

// buildLineIndex records the byte offset of every '\n'. Line 1 starts at
// byte 0; line k > 1 starts at LineIdx[k-2] + 1.
func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol converts a byte offset to a 1-based line/column against a line
// index. An offset sitting exactly on a '\n' counts as the end of the line
// it terminates, which is where a diagnostic about a missing semicolon at
// end-of-line wants to render.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// The first '\n' at or after off also counts the lines before it; an
	// offset sitting exactly on a '\n' therefore resolves as the end of the
	// line that '\n' terminates.
	line := sort.Search(len(lineIdx), func(k int) bool { return lineIdx[k] >= off })
	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1}
}

// normalizePath gives every stored path one canonical, slash-separated
// spelling. FileSet.Add does not deduplicate: loading the same file twice
// registers it twice, under the same normalized path.
func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the normalized absolute form of path.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	return normalizePath(abs), nil
}

// RelativePath returns path relative to base, falling back to the
// normalized absolute path when no relative form exists (different
// volumes, unresolvable base).
func RelativePath(path, base string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return normalizePath(abs), nil
	}
	rel, err := filepath.Rel(absBase, abs)
	if err != nil {
		return normalizePath(abs), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the final path element, normalized.
func BaseName(path string) string {
	return normalizePath(filepath.Base(path))
}
