package source

// FileID names one file inside a FileSet. Spans embed it, so a diagnostic
// from a multi-file parse resolves against the right content without
// carrying the path around.
type FileID uint32

// FileFlags records how a file's content was conditioned before lexing.
// Normalization happens exactly once, at load time, because token and AST
// spans are byte offsets into the conditioned buffer — re-normalizing later
// would shift every span in the tree.
type FileFlags uint8

const (
	// FileVirtual marks content that never touched disk: tests, stdin,
	// editor buffers.
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM records that a UTF-8 byte-order mark was stripped; offsets
	// in the conditioned buffer are 3 smaller than in the raw file.
	FileHadBOM
	// FileNormalizedCRLF records that \r\n sequences were collapsed to \n.
	FileNormalizedCRLF
)

// File is one source buffer plus the line index diagnostics resolve
// against. Content is immutable for the lifetime of the parse; the lexer
// borrows it and never copies.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n', ascending
	Flags   FileFlags
}

// LineCol is a 1-based human-readable position, derived from a byte offset
// on demand. Only diagnostic rendering uses it; all parser arithmetic stays
// in byte offsets.
type LineCol struct {
	Line uint32
	Col  uint32
}
