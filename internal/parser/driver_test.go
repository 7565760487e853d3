package parser

import (
	"testing"

	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
)

func parseSource(t *testing.T, src string, st SourceType) (*ast.Builder, ParserReturn, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(src))
	bag := diag.NewBag(64)
	b, ret := ParseProgram(fs.Get(id), st, DefaultOptions(), bag, nil, nil)
	return b, ret, bag
}

func tsSourceType() SourceType {
	return SourceType{Language: TypeScript, ModuleKind: Script}
}

func scriptSourceType() SourceType {
	return SourceType{Language: JavaScript, ModuleKind: Script}
}

// S1: a reserved word used as a binding identifier recovers with exactly
// one diagnostic and both statements still present in the body.
func TestParseProgram_S1_ReservedWordBinding(t *testing.T) {
	b, ret, bag := parseSource(t, "let import = 5; let x = 10;", scriptSourceType())
	if bag.Len() != 1 {
		t.Fatalf("errors.len() = %d, want 1", bag.Len())
	}
	prog := b.Get(ret.Program)
	if len(prog.Children) != 2 {
		t.Fatalf("program.body.len() = %d, want 2", len(prog.Children))
	}
	if ret.Panicked {
		t.Fatalf("panicked = true, want false")
	}
}

// S2: an unterminated array literal recovers without panicking.
func TestParseProgram_S2_UnterminatedArray(t *testing.T) {
	_, ret, bag := parseSource(t, "let a = [1, 2, 3; let b = 10;", scriptSourceType())
	if bag.Len() < 1 {
		t.Fatalf("errors.len() = %d, want >= 1", bag.Len())
	}
	if ret.Panicked {
		t.Fatalf("panicked = true, want false")
	}
}

// S3: a missing index-signature annotation recovers with exactly one
// diagnostic, and the interface keeps both of its other members.
func TestParseProgram_S3_IndexSignatureMissingAnnotation(t *testing.T) {
	b, ret, bag := parseSource(t, "interface Config { [key: string] other: string; value: number; }", tsSourceType())
	if bag.Len() != 1 {
		t.Fatalf("errors.len() = %d, want 1", bag.Len())
	}
	if ret.Panicked {
		t.Fatalf("panicked = true, want false")
	}
	prog := b.Get(ret.Program)
	if len(prog.Children) != 1 {
		t.Fatalf("program.body.len() = %d, want 1 (the interface decl)", len(prog.Children))
	}
	iface := b.Get(prog.Children[0])
	if iface.Kind != ast.TSInterfaceDecl {
		t.Fatalf("top-level decl kind = %v, want TSInterfaceDecl", iface.Kind)
	}
}

// S4: numeric enum member names are substituted with `_N` identifiers and
// reported once per offending member.
func TestParseProgram_S4_NumericEnumMemberNames(t *testing.T) {
	b, ret, bag := parseSource(t, `enum E { 123 = "a", Valid = "b", 456 = "c" }`, tsSourceType())
	if bag.Len() != 2 {
		t.Fatalf("errors.len() = %d, want 2", bag.Len())
	}
	if ret.Panicked {
		t.Fatalf("panicked = true, want false")
	}
	prog := b.Get(ret.Program)
	if len(prog.Children) != 1 {
		t.Fatalf("program.body.len() = %d, want 1", len(prog.Children))
	}
	enumDecl := b.Get(prog.Children[0])
	// Children[0] is the enum's own name ("E"); the three members follow.
	if len(enumDecl.Children) != 4 {
		t.Fatalf("enum decl children = %d, want 4 (name + 3 members)", len(enumDecl.Children))
	}
	wantNames := []string{"_123", "Valid", "_456"}
	for i, memberID := range enumDecl.Children[1:] {
		member := b.Get(memberID)
		name := b.Get(member.Children[0])
		if got := b.Text(name.Str); got != wantNames[i] {
			t.Errorf("member[%d] name = %q, want %q", i, got, wantNames[i])
		}
	}
}

// S5: a bare `import()` call with no specifier recovers with exactly one
// diagnostic and leaves both statements in the body.
func TestParseProgram_S5_ImportCallRequiresSpecifier(t *testing.T) {
	b, ret, bag := parseSource(t, "import();\nlet x = 5;", scriptSourceType())
	if bag.Len() != 1 {
		t.Fatalf("errors.len() = %d, want 1", bag.Len())
	}
	prog := b.Get(ret.Program)
	if len(prog.Children) != 2 {
		t.Fatalf("program.body.len() = %d, want 2", len(prog.Children))
	}
}

// S6: a malformed type parameter list does not cascade into more than
// three diagnostics, and the function declaration with its body survives.
func TestParseProgram_S6_MalformedTypeParameterNoCascade(t *testing.T) {
	b, ret, bag := parseSource(t, "function identity<T>(arg: T: T { return arg; }", tsSourceType())
	if bag.Len() > 3 {
		t.Fatalf("errors.len() = %d, want <= 3", bag.Len())
	}
	if ret.Panicked {
		t.Fatalf("panicked = true, want false")
	}
	prog := b.Get(ret.Program)
	if len(prog.Children) != 1 {
		t.Fatalf("program.body.len() = %d, want 1", len(prog.Children))
	}
	fn := b.Get(prog.Children[0])
	if fn.Kind != ast.FunctionDecl {
		t.Fatalf("top-level decl kind = %v, want FunctionDecl", fn.Kind)
	}
}

// Property 4: valid source produces no diagnostics and does not panic.
func TestParseProgram_ValidSourceHasNoDiagnostics(t *testing.T) {
	_, ret, bag := parseSource(t, "function add(a, b) { return a + b; }\nconst x = add(1, 2);", scriptSourceType())
	if bag.Len() != 0 {
		t.Fatalf("errors.len() = %d, want 0", bag.Len())
	}
	if ret.Panicked {
		t.Fatalf("panicked = true, want false")
	}
}

// Property 3: every span is within [0, len(source)] with start <= end.
func TestParseProgram_SpansWithinSource(t *testing.T) {
	src := "let a = 1; function f(x) { return x * 2; } class C { m() {} }"
	b, ret, _ := parseSource(t, src, scriptSourceType())
	limit := uint32(len(src))

	var walk func(id ast.NodeID)
	walk = func(id ast.NodeID) {
		if id == ast.NoNodeID {
			return
		}
		n := b.Get(id)
		if n == nil {
			return
		}
		if n.Span.Start > n.Span.End {
			t.Errorf("node %v has start %d > end %d", n.Kind, n.Span.Start, n.Span.End)
		}
		if n.Span.End > limit {
			t.Errorf("node %v end %d exceeds source length %d", n.Kind, n.Span.End, limit)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(ret.Program)
}

// Unambiguous module-kind promotion: any import/export statement at top
// level promotes the final SourceType to Module.
func TestParseProgram_UnambiguousPromotesToModule(t *testing.T) {
	_, ret, _ := parseSource(t, `import { x } from "mod"; x();`, SourceType{Language: JavaScript, ModuleKind: Unambiguous})
	if ret.SourceType.ModuleKind != Module {
		t.Fatalf("ModuleKind = %v, want Module", ret.SourceType.ModuleKind)
	}
	if !ret.ModuleRecord.IsModule {
		t.Fatalf("ModuleRecord.IsModule = false, want true")
	}
	if len(ret.ModuleRecord.Imports) != 1 || ret.ModuleRecord.Imports[0] != "mod" {
		t.Fatalf("ModuleRecord.Imports = %v, want [mod]", ret.ModuleRecord.Imports)
	}
}

func TestParseProgram_UnambiguousPromotesToScriptWithoutModuleSyntax(t *testing.T) {
	_, ret, _ := parseSource(t, "let x = 1;", SourceType{Language: JavaScript, ModuleKind: Unambiguous})
	if ret.SourceType.ModuleKind != Script {
		t.Fatalf("ModuleKind = %v, want Script", ret.SourceType.ModuleKind)
	}
	if ret.ModuleRecord.IsModule {
		t.Fatalf("ModuleRecord.IsModule = true, want false")
	}
}

func TestParseProgram_FlowPragmaFlagged(t *testing.T) {
	_, ret, bag := parseSource(t, "// @flow\nconst x: number = 1;", scriptSourceType())
	if !ret.IsFlowLanguage {
		t.Fatalf("IsFlowLanguage = false, want true")
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynFlowNotSupported {
		t.Fatalf("expected exactly one SynFlowNotSupported diagnostic, got %d diagnostics", bag.Len())
	}
}
