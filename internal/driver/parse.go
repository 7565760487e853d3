// Package driver wires the public ecmaparser facade to real files: a
// single-file entry point, a disk cache keyed by content hash, and a
// bounded-parallel multi-file entry point. The CLI and any embedder that
// doesn't want to touch internal/parser directly go through here.
package driver

import (
	"strings"

	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
	"ecmaparser/pkg/ecmaparser"
)

// Result is one file's parse outcome: enough to report diagnostics and, on
// a cache miss, to inspect the tree itself.
type Result struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder // nil on a cache hit
	Return  ecmaparser.ParserReturn
	Bag     *diag.Bag
	Cached  bool
}

// InferSourceType derives a SourceType from a file's extension, the
// convention every JS/TS tool in the ecosystem follows: `.ts`/`.tsx` select
// TypeScript, `.d.ts` selects TypeScript-definition (implementations
// disallowed, ambient by default), `.jsx` enables JSX on plain JavaScript,
// `.mjs`/`.cjs`/`.mts`/`.cts` pin the module kind, and everything else is
// Unambiguous (promoted by the driver once any import/export is seen).
func InferSourceType(path string) ecmaparser.SourceType {
	lower := strings.ToLower(path)
	st := ecmaparser.SourceType{ModuleKind: ecmaparser.Unambiguous}

	switch {
	case strings.HasSuffix(lower, ".d.ts"), strings.HasSuffix(lower, ".d.mts"), strings.HasSuffix(lower, ".d.cts"):
		st.Language = ecmaparser.TypeScriptDefinition
	case strings.HasSuffix(lower, ".ts"), strings.HasSuffix(lower, ".mts"), strings.HasSuffix(lower, ".cts"):
		st.Language = ecmaparser.TypeScript
	case strings.HasSuffix(lower, ".tsx"):
		st.Language = ecmaparser.TypeScript
		st.JSX = true
	case strings.HasSuffix(lower, ".jsx"):
		st.Language = ecmaparser.JavaScript
		st.JSX = true
	default:
		st.Language = ecmaparser.JavaScript
	}

	switch {
	case strings.HasSuffix(lower, ".mjs"), strings.HasSuffix(lower, ".mts"):
		st.ModuleKind = ecmaparser.Module
	case strings.HasSuffix(lower, ".cjs"), strings.HasSuffix(lower, ".cts"):
		st.ModuleKind = ecmaparser.Script
	}
	return st
}

// Parse loads path, parses it with opts (SourceType inferred from the
// extension unless the caller wants something else — use ParseWithType),
// and returns its Result.
func Parse(path string, opts ecmaparser.Options) (*source.FileSet, Result, error) {
	return ParseWithType(path, InferSourceType(path), opts)
}

// ParseWithType is Parse with an explicit SourceType, for callers that
// already know the dialect (e.g. a project config pinning every file to
// Module regardless of extension).
func ParseWithType(path string, st ecmaparser.SourceType, opts ecmaparser.Options) (*source.FileSet, Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, Result{}, err
	}
	file := fs.Get(id)

	p := ecmaparser.New(path, file.Content, st).WithOptions(opts)
	b, ret, bag := p.Parse()

	return fs, Result{
		Path:    path,
		FileID:  id,
		Builder: b,
		Return:  ret,
		Bag:     bag,
	}, nil
}
