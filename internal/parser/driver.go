package parser

import (
	"strings"

	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/gctx"
	"ecmaparser/internal/lexer"
	"ecmaparser/internal/pctx"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
	"ecmaparser/internal/trace"
)

// maxSourceLength caps parseable input: spans are uint32 byte offsets, so
// anything past 4 GiB cannot be addressed by a diagnostic or AST node.
const maxSourceLength = 1<<32 - 1

// ModuleRecord is the minimal record a downstream module-graph pass needs:
// whether a file is a module and which specifiers it references, without
// resolving any of them.
type ModuleRecord struct {
	IsModule bool
	Imports  []string
	Exports  []string
}

// ParserReturn is the complete outcome of a program parse: the parsed
// program, its (minimal) module record, the promoted SourceType,
// irregular-whitespace spans, and the two finalization flags.
type ParserReturn struct {
	Program             ast.NodeID
	ModuleRecord         ModuleRecord
	SourceType           SourceType
	IrregularWhitespace []source.Span
	Panicked            bool
	IsFlowLanguage      bool
}

// ParseProgram is the program-level driver: it primes the cursor (which
// itself consumes a leading hashbang as trivia), parses the directive-and-
// statement list under TopLevel, and finalizes — fatal truncation and
// program replacement, the source-length check, Unambiguous module-kind
// promotion, and Flow-pragma detection.
func ParseProgram(file *source.File, src SourceType, opts Options, bag *diag.Bag, interner *source.Interner, tr trace.Tracer) (*ast.Builder, ParserReturn) {
	if tr == nil {
		tr = trace.Nop
	}
	span := trace.Begin(tr, trace.ScopeFile, "parse", 0)
	defer span.End("")

	tree := ast.NewTree(256, interner)
	b := ast.NewBuilder(tree)

	if len(file.Content) > maxSourceLength {
		bag.Add(&diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynSourceExceedsLimit,
			Message:  "source exceeds the 4 GiB limit",
			Primary:  source.Span{File: file.ID},
		})
		return b, ParserReturn{
			Program:    b.DummyProgram(source.Span{File: file.ID}),
			SourceType: src,
			Panicked:   true,
		}
	}

	lx := lexer.New(file, lexer.Options{JSX: src.JSX, Reporter: diag.BagReporter{Bag: bag}})
	c := NewCursor(file, lx, opts, bag, tr)
	c.TS = src.IsTypeScript()
	c.JSX = src.JSX
	if src.ModuleKind == Module {
		// ES modules are always strict and permit top-level await.
		c.GCtx = c.GCtx.With(gctx.StrictMode).With(gctx.Await)
	}
	if src.IsAmbientByDefault() {
		c.GCtx = c.GCtx.With(gctx.Ambient)
	}

	isFlowCandidate := src.Language == JavaScript && hasFlowPragma(c.Cur().Leading)

	start := c.StartMark()
	body := parseStatementList(c, b, pctx.TopLevel)
	program := b.Node(ast.Program, c.SpanSince(start), body...)

	ret := ParserReturn{
		Program:             program,
		SourceType:          src,
		IrregularWhitespace: lx.IrregularWhitespace(),
	}

	if fatal := c.TakeFatal(); fatal != nil {
		bag.Truncate(fatal.ErrorsLenAtFault)
		bag.Add(&fatal.Diagnostic)
		ret.Program = b.DummyProgram(c.Span(0, 0))
		ret.Panicked = true
		return b, ret
	}

	if src.ModuleKind == Unambiguous {
		if c.State.SawModuleSyntax {
			ret.SourceType.ModuleKind = Module
		} else {
			ret.SourceType.ModuleKind = Script
		}
	}
	ret.ModuleRecord = buildModuleRecord(b, body, ret.SourceType.ModuleKind == Module)

	if isFlowCandidate && bag.Len() > 0 {
		bag.Filter(func(*diag.Diagnostic) bool { return false })
		bag.Add(&diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynFlowNotSupported,
			Message:  "Flow syntax is not supported",
			Primary:  source.Span{File: file.ID},
		})
		ret.IsFlowLanguage = true
	}

	return b, ret
}

// hasFlowPragma reports whether any leading comment trivia of the program's
// very first token contains the `@flow` pragma marking the file as
// Flow-typed rather than plain JavaScript.
func hasFlowPragma(leading []token.Trivia) bool {
	for _, t := range leading {
		if (t.Kind == token.TriviaLineComment || t.Kind == token.TriviaBlockComment) && strings.Contains(t.Text, "@flow") {
			return true
		}
	}
	return false
}

// buildModuleRecord walks the top-level statement list, recording the
// source specifier of every import/export declaration that names one. It
// does not resolve specifiers against a file system or module graph; that
// is a later pass's concern.
func buildModuleRecord(b *ast.Builder, body []ast.NodeID, isModule bool) ModuleRecord {
	rec := ModuleRecord{IsModule: isModule}
	for _, id := range body {
		n := b.Get(id)
		if n == nil {
			continue
		}
		switch n.Kind {
		case ast.ImportDecl, ast.TSImportEqualsDecl:
			if spec, ok := lastStringLiteral(b, n); ok {
				rec.Imports = append(rec.Imports, spec)
			}
		case ast.ExportAllDecl, ast.ExportNamedDecl:
			if spec, ok := lastStringLiteral(b, n); ok {
				rec.Exports = append(rec.Exports, spec)
			}
		}
	}
	return rec
}

func lastStringLiteral(b *ast.Builder, n *ast.Node) (string, bool) {
	if len(n.Children) == 0 {
		return "", false
	}
	last := b.Get(n.Children[len(n.Children)-1])
	if last == nil || last.Kind != ast.StringLiteral {
		return "", false
	}
	raw := b.Text(last.Str)
	if len(raw) < 2 {
		return "", false
	}
	return raw[1 : len(raw)-1], true
}

// ParseExpressionOnly parses a single Expression production over the whole
// cursor, independent of the statement/program driver, for embedders that
// only need an isolated expression (e.g. a JSX attribute value evaluated by
// a host tool).
func ParseExpressionOnly(file *source.File, src SourceType, opts Options, bag *diag.Bag, interner *source.Interner) (*ast.Builder, ast.NodeID, bool) {
	tree := ast.NewTree(64, interner)
	b := ast.NewBuilder(tree)
	lx := lexer.New(file, lexer.Options{JSX: src.JSX, Reporter: diag.BagReporter{Bag: bag}})
	c := NewCursor(file, lx, opts, bag, trace.Nop)
	c.TS = src.IsTypeScript()
	c.JSX = src.JSX

	ep := &exprParser{c: c, b: b}
	expr := ep.ParseExpression()
	if !c.At(token.EOF) {
		c.Fault(diag.SynExpectedToken, c.Cur().Span, "unexpected trailing input after expression")
	}
	if fatal := c.TakeFatal(); fatal != nil {
		bag.Truncate(fatal.ErrorsLenAtFault)
		bag.Add(&fatal.Diagnostic)
		return b, ast.NoNodeID, false
	}
	return b, expr, true
}
