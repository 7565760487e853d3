// Package ecmaparser is the public facade over the internal recursive-
// descent ECMAScript/TypeScript parser: construct a Parser from a source
// buffer and a SourceType, call Parse (or
// ParseExpression), and inspect the returned tree, diagnostics, and module
// record. Callers never import internal/parser directly.
package ecmaparser

import (
	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/parser"
	"ecmaparser/internal/source"
	"ecmaparser/internal/trace"
)

// Re-exported dialect/configuration types, so callers only ever see this
// package's names.
type (
	Language     = parser.Language
	ModuleKind   = parser.ModuleKind
	SourceType   = parser.SourceType
	Options      = parser.Options
	ParserReturn = parser.ParserReturn
	ModuleRecord = parser.ModuleRecord
)

const (
	JavaScript           = parser.JavaScript
	TypeScript           = parser.TypeScript
	TypeScriptDefinition = parser.TypeScriptDefinition
)

const (
	Script      = parser.Script
	Module      = parser.Module
	Unambiguous = parser.Unambiguous
)

// DefaultOptions returns the recovery-enabled configuration used unless a
// caller overrides it with WithOptions.
func DefaultOptions() Options { return parser.DefaultOptions() }

// Parser holds a source buffer, its dialect, and the parse configuration.
// The AST arena is constructed internally per parse rather than supplied
// by the caller; only its shape (NodeID-indexed, bump-allocated, a dummy
// per node kind) matters to recovery, not its allocation policy.
type Parser struct {
	file       *source.File
	sourceType SourceType
	opts       Options
	tracer     trace.Tracer
	interner   *source.Interner
}

// New constructs a Parser over a named in-memory source buffer. name is
// used only for diagnostic display, not resolved from disk.
func New(name string, content []byte, sourceType SourceType) *Parser {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return &Parser{file: fs.Get(id), sourceType: sourceType, opts: DefaultOptions()}
}

// NewFromFile loads path from disk and returns a Parser over its content.
func NewFromFile(path string, sourceType SourceType) (*Parser, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return &Parser{file: fs.Get(id), sourceType: sourceType, opts: DefaultOptions()}, nil
}

// WithOptions overrides the parse configuration.
func (p *Parser) WithOptions(opts Options) *Parser {
	p.opts = opts
	return p
}

// WithTracer attaches a trace.Tracer that Parse emits the parser's file,
// production and recovery events into; ParseExpression and the lexer emit
// no events.
func (p *Parser) WithTracer(tr trace.Tracer) *Parser {
	p.tracer = tr
	return p
}

// WithInterner shares a string interner across several Parser instances,
// e.g. a driver parsing many files into one logical symbol space.
func (p *Parser) WithInterner(in *source.Interner) *Parser {
	p.interner = in
	return p
}

// File exposes the underlying source.File, e.g. to resolve a diagnostic's
// span to line/column via a source.FileSet built around the same file.
func (p *Parser) File() *source.File { return p.file }

// Parse runs the full program-level parse, returning the AST builder that
// owns the resulting tree, the ParserReturn envelope, and the diagnostic
// bag it was filled into.
func (p *Parser) Parse() (*ast.Builder, ParserReturn, *diag.Bag) {
	bag := diag.NewBag(p.maxDiagnostics())
	b, ret := parser.ParseProgram(p.file, p.sourceType, p.opts, bag, p.interner, p.tracer)
	return b, ret, bag
}

// ParseExpression parses a single Expression production over the whole
// buffer, independent of the
// statement/program driver and its directive-prologue handling.
func (p *Parser) ParseExpression() (*ast.Builder, ast.NodeID, *diag.Bag, bool) {
	bag := diag.NewBag(p.maxDiagnostics())
	b, expr, ok := parser.ParseExpressionOnly(p.file, p.sourceType, p.opts, bag, p.interner)
	return b, expr, bag, ok
}

func (p *Parser) maxDiagnostics() int {
	if p.opts.MaxDiagnostics > 0 {
		return p.opts.MaxDiagnostics
	}
	return 4096
}
