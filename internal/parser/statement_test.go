package parser

import (
	"testing"

	"ecmaparser/internal/ast"
	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

func parseClean(t *testing.T, src string, st SourceType) (*ast.Builder, ParserReturn) {
	t.Helper()
	b, ret, bag := parseSource(t, src, st)
	if bag.Len() != 0 {
		for _, d := range bag.Items() {
			t.Logf("diagnostic: %v %s", d.Code, d.Message)
		}
		t.Fatalf("expected a clean parse of %q, got %d diagnostics", src, bag.Len())
	}
	if ret.Panicked {
		t.Fatalf("panicked on valid source %q", src)
	}
	return b, ret
}

func topLevelKinds(b *ast.Builder, ret ParserReturn) []ast.Kind {
	prog := b.Get(ret.Program)
	kinds := make([]ast.Kind, len(prog.Children))
	for i, id := range prog.Children {
		kinds[i] = b.Get(id).Kind
	}
	return kinds
}

func TestVarDeclarationKeywords(t *testing.T) {
	b, ret := parseClean(t, `var a = 1; let b; const c = "x";`, scriptSourceType())
	prog := b.Get(ret.Program)
	if len(prog.Children) != 3 {
		t.Fatalf("body len = %d, want 3", len(prog.Children))
	}
	wantOps := []token.Kind{token.KwVar, token.KwLet, token.KwConst}
	for i, id := range prog.Children {
		n := b.Get(id)
		if n.Kind != ast.VarDeclStmt || n.Op != wantOps[i] {
			t.Errorf("stmt[%d] = %v/%v, want VarDeclStmt/%v", i, n.Kind, n.Op, wantOps[i])
		}
	}
}

func TestControlFlowStatements(t *testing.T) {
	src := `
if (a) b; else c;
while (x) { y; }
do { z; } while (w);
for (let i = 0; i < 10; i++) {}
for (const k in obj) {}
for (const v of list) {}
switch (q) { case 1: r; break; default: s; }
try { t1; } catch (e) { t2; } finally { t3; }
label: for (;;) { break label; }
throw new Error("boom");
`
	b, ret := parseClean(t, src, scriptSourceType())
	want := []ast.Kind{
		ast.IfStmt, ast.WhileStmt, ast.DoWhileStmt, ast.ForStmt,
		ast.ForInStmt, ast.ForOfStmt, ast.SwitchStmt, ast.TryStmt,
		ast.LabeledStmt, ast.ThrowStmt,
	}
	got := topLevelKinds(b, ret)
	if len(got) != len(want) {
		t.Fatalf("body len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stmt[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// A `try` with neither catch nor finally recovers with one diagnostic and a
// fabricated catch clause binding `e`.
func TestTryWithoutHandlersFabricatesCatch(t *testing.T) {
	b, ret, bag := parseSource(t, "try { a; }", scriptSourceType())
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynOrphanCatchOrFinally {
		t.Fatalf("expected exactly one SynOrphanCatchOrFinally, got %d", bag.Len())
	}
	tryStmt := b.Get(b.Get(ret.Program).Children[0])
	if len(tryStmt.Children) != 2 {
		t.Fatalf("try children = %d, want block + fabricated catch", len(tryStmt.Children))
	}
	catch := b.Get(tryStmt.Children[1])
	if catch.Kind != ast.CatchClause || !catch.Has(ast.FlagDummy) {
		t.Fatalf("fabricated clause = %v (dummy=%v), want dummy CatchClause", catch.Kind, catch.Has(ast.FlagDummy))
	}
	param := b.Get(catch.Children[0])
	if b.Text(param.Str) != "e" {
		t.Fatalf("fabricated catch binding = %q, want e", b.Text(param.Str))
	}
}

func TestInvalidCatchParameterSubstituted(t *testing.T) {
	b, ret, bag := parseSource(t, "try { a; } catch (123) { b; }", scriptSourceType())
	if bag.Len() < 1 {
		t.Fatalf("expected at least one diagnostic for a numeric catch parameter")
	}
	if ret.Panicked {
		t.Fatalf("must not panic")
	}
	tryStmt := b.Get(b.Get(ret.Program).Children[0])
	catch := b.Get(tryStmt.Children[1])
	param := b.Get(catch.Children[0])
	if param.Kind != ast.Identifier || b.Text(param.Str) != "e" {
		t.Fatalf("catch parameter = %v %q, want substituted identifier e", param.Kind, b.Text(param.Str))
	}
}

func TestFunctionsAndArrows(t *testing.T) {
	src := `
function plain(a, b) { return a + b; }
async function af() { await g(); }
function* gen() { yield 1; yield* inner(); }
const arrow = (a, b) => a + b;
const asyncArrow = async x => { return x; };
`
	b, ret := parseClean(t, src, scriptSourceType())
	prog := b.Get(ret.Program)

	af := b.Get(prog.Children[1])
	if af.Kind != ast.FunctionDecl || !af.Has(ast.FlagAsync) {
		t.Errorf("async function flags = %v", af.Flags)
	}
	gen := b.Get(prog.Children[2])
	if gen.Kind != ast.FunctionDecl || !gen.Has(ast.FlagGenerator) {
		t.Errorf("generator flags = %v", gen.Flags)
	}

	arrowDecl := b.Get(b.Get(prog.Children[3]).Children[0])
	arrow := b.Get(arrowDecl.Children[1])
	if arrow.Kind != ast.ArrowFunctionExpr {
		t.Errorf("arrow initializer = %v, want ArrowFunctionExpr", arrow.Kind)
	}
	asyncArrowDecl := b.Get(b.Get(prog.Children[4]).Children[0])
	asyncArrow := b.Get(asyncArrowDecl.Children[1])
	if asyncArrow.Kind != ast.ArrowFunctionExpr || !asyncArrow.Has(ast.FlagAsync) {
		t.Errorf("async arrow = %v flags %v", asyncArrow.Kind, asyncArrow.Flags)
	}
}

// A failed arrow speculation must leave no trace: `a + b` starts like an
// arrow parameter but continues as a binary expression.
func TestArrowSpeculationLeavesNoTrace(t *testing.T) {
	b, ret := parseClean(t, "a + b;", scriptSourceType())
	stmt := b.Get(b.Get(ret.Program).Children[0])
	expr := b.Get(stmt.Children[0])
	if expr.Kind != ast.BinaryExpr || expr.Op != token.Plus {
		t.Fatalf("expression = %v/%v, want BinaryExpr/Plus", expr.Kind, expr.Op)
	}
	left := b.Get(expr.Children[0])
	if left.Kind != ast.Identifier || b.Text(left.Str) != "a" {
		t.Fatalf("left operand = %v %q, want identifier a", left.Kind, b.Text(left.Str))
	}
}

func TestClassDeclaration(t *testing.T) {
	src := `
class Point extends Base {
	x = 0;
	static origin = null;
	#secret;
	constructor(x) { this.x = x; }
	get coord() { return this.x; }
	static { init(); }
}
`
	b, ret := parseClean(t, src, scriptSourceType())
	cls := b.Get(b.Get(ret.Program).Children[0])
	if cls.Kind != ast.ClassDecl {
		t.Fatalf("decl = %v, want ClassDecl", cls.Kind)
	}
	body := b.Get(cls.Children[len(cls.Children)-1])
	if body.Kind != ast.ClassBody || len(body.Children) != 6 {
		t.Fatalf("class body = %v with %d members, want 6", body.Kind, len(body.Children))
	}
	static := b.Get(body.Children[1])
	if static.Kind != ast.ClassProperty || !static.Has(ast.FlagStatic) {
		t.Errorf("static property = %v flags %v", static.Kind, static.Flags)
	}
	private := b.Get(body.Children[2])
	if b.Get(private.Children[0]).Kind != ast.PrivateIdentifier {
		t.Errorf("private member key = %v, want PrivateIdentifier", b.Get(private.Children[0]).Kind)
	}
	getter := b.Get(body.Children[4])
	if getter.Kind != ast.ClassMethod || getter.Op != token.KwGet {
		t.Errorf("getter = %v op %v", getter.Kind, getter.Op)
	}
	if b.Get(body.Children[5]).Kind != ast.StaticBlock {
		t.Errorf("last member = %v, want StaticBlock", b.Get(body.Children[5]).Kind)
	}
}

func TestImportExportForms(t *testing.T) {
	src := `import d from "a";
import * as ns from "b";
import { x, y as z } from "c";
import "d";
export { x };
export { y } from "e";
export * from "f";
export default 1;
export const q = 2;`
	b, ret, bag := parseSource(t, src, SourceType{Language: JavaScript, ModuleKind: Module})
	if bag.Len() != 0 {
		t.Fatalf("expected a clean parse, got %d diagnostics: %v", bag.Len(), bag.Items()[0].Message)
	}
	want := []ast.Kind{
		ast.ImportDecl, ast.ImportDecl, ast.ImportDecl, ast.ImportDecl,
		ast.ExportNamedDecl, ast.ExportNamedDecl, ast.ExportAllDecl,
		ast.ExportDefaultDecl, ast.ExportNamedDecl,
	}
	got := topLevelKinds(b, ret)
	if len(got) != len(want) {
		t.Fatalf("body len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stmt[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if len(ret.ModuleRecord.Imports) != 4 {
		t.Errorf("module record imports = %v, want 4 specifiers", ret.ModuleRecord.Imports)
	}
	if len(ret.ModuleRecord.Exports) != 2 {
		t.Errorf("module record exports = %v, want [e f]", ret.ModuleRecord.Exports)
	}
}

func TestTypeScriptDeclarations(t *testing.T) {
	src := `
interface Shape<T extends object> extends Base {
	area(): number;
	readonly name: string;
	[key: string]: unknown;
}
type Pair<A, B = A> = [first: A, second: B];
type Cond<T> = T extends string ? "s" : "o";
type Mapped = { [K in keyof Shape]?: Shape[K] };
enum Color { Red = 1, Green, Blue }
namespace Geo { export const pi = 3; }
declare function area(s: Shape): number;
declare namespace Ambient { interface Inner {} }
`
	b, ret := parseClean(t, src, tsSourceType())
	want := []ast.Kind{
		ast.TSInterfaceDecl, ast.TSTypeAliasDecl, ast.TSTypeAliasDecl,
		ast.TSTypeAliasDecl, ast.TSEnumDecl, ast.TSModuleDecl,
		ast.FunctionDecl, ast.TSModuleDecl,
	}
	got := topLevelKinds(b, ret)
	if len(got) != len(want) {
		t.Fatalf("body len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("decl[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	declared := b.Get(b.Get(ret.Program).Children[6])
	if !declared.Has(ast.FlagDeclare) {
		t.Errorf("declare function must carry FlagDeclare")
	}
}

func TestGenericFunctionAndCalls(t *testing.T) {
	src := `
function identity<T>(arg: T): T { return arg; }
function pair<A, B>(a: A, b: B): [A, B] { return [a, b]; }
let m: Map<string, number[]> = new Map();
`
	parseClean(t, src, tsSourceType())
}

// `>>` inside nested type arguments must split into two closers.
func TestNestedTypeArgumentsSplitShr(t *testing.T) {
	parseClean(t, "let x: Promise<Array<number>> = y;", tsSourceType())
}

func TestExpressionsParseClean(t *testing.T) {
	srcs := []string{
		"a?.b?.[c]?.(d);",
		"x ??= y ?? z;",
		"tag`a${b}c${d}e`; f();",
		"new a.b.C(1, 2).m();",
		"[1, , 2, ...rest];",
		"({ a, b: 2, [k]: 3, ...spread, m() {}, get p() { return 1; } });",
		"x = cond ? a : b;",
		"p **= 2 ** 3;",
		"delete obj.prop, void 0, typeof sym;",
		"let re = /ab+c/gi;",
		"i++; --j;",
	}
	for _, src := range srcs {
		parseClean(t, src, scriptSourceType())
	}
}

func TestTemplateLiteralResumesStatementStream(t *testing.T) {
	b, ret := parseClean(t, "let x = `a${b}c`; let y = 1;", scriptSourceType())
	prog := b.Get(ret.Program)
	if len(prog.Children) != 2 {
		t.Fatalf("body len = %d, want 2 — template tail must not swallow the next statement", len(prog.Children))
	}
}

func TestUsingDeclaration(t *testing.T) {
	b, ret := parseClean(t, "using f = open();", scriptSourceType())
	stmt := b.Get(b.Get(ret.Program).Children[0])
	if stmt.Kind != ast.VarDeclStmt || stmt.Op != token.KwUsing {
		t.Fatalf("stmt = %v/%v, want VarDeclStmt/KwUsing", stmt.Kind, stmt.Op)
	}
}

func TestUsingDirectlyInSwitchCaseReported(t *testing.T) {
	_, _, bag := parseSource(t, "switch (x) { case 1: using f = open(); }", scriptSourceType())
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynUsingInSwitchCase {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynUsingInSwitchCase, got %d other diagnostics", bag.Len())
	}
}

func TestRestElementPositionDiagnostics(t *testing.T) {
	t.Run("not last", func(t *testing.T) {
		_, _, bag := parseSource(t, "function f(...a, b) {}", scriptSourceType())
		if bag.Len() != 1 || bag.Items()[0].Code != diag.SynRestElementNotLast {
			t.Fatalf("want exactly one SynRestElementNotLast, got %d", bag.Len())
		}
	})
	t.Run("trailing comma", func(t *testing.T) {
		_, _, bag := parseSource(t, "function f(...a,) {}", scriptSourceType())
		if bag.Len() != 1 || bag.Items()[0].Code != diag.SynTrailingCommaAfterRest {
			t.Fatalf("want exactly one SynTrailingCommaAfterRest, got %d", bag.Len())
		}
	})
	t.Run("object rest target", func(t *testing.T) {
		_, _, bag := parseSource(t, "let { ...{ a } } = obj;", scriptSourceType())
		if bag.Len() != 1 || bag.Items()[0].Code != diag.SynRestInNestedPattern {
			t.Fatalf("want exactly one SynRestInNestedPattern, got %d", bag.Len())
		}
	})
}

func TestAwaitOutsideAsyncReported(t *testing.T) {
	_, _, bag := parseSource(t, "function f() { await x; }", scriptSourceType())
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynAwaitOutsideAsync {
		t.Fatalf("want exactly one SynAwaitOutsideAsync, got %d", bag.Len())
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	_, _, bag := parseSource(t, "return 1;", scriptSourceType())
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynReturnOutsideFunction {
		t.Fatalf("want exactly one SynReturnOutsideFunction, got %d", bag.Len())
	}

	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte("return 1;"))
	bag2 := diag.NewBag(16)
	opts := DefaultOptions()
	opts.AllowReturnOutsideFunction = true
	_, ret := ParseProgram(fs.Get(id), scriptSourceType(), opts, bag2, nil, nil)
	if bag2.Len() != 0 || ret.Panicked {
		t.Fatalf("AllowReturnOutsideFunction must suppress the diagnostic, got %d", bag2.Len())
	}
}

func TestNonRecoveryFirstErrorIsFatal(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte("let a = ; let ok = 1;"))
	bag := diag.NewBag(16)
	opts := DefaultOptions()
	opts.RecoverFromErrors = false
	b, ret := ParseProgram(fs.Get(id), scriptSourceType(), opts, bag, nil, nil)
	if !ret.Panicked {
		t.Fatalf("non-recovery parse of invalid source must panic")
	}
	if bag.Len() != 1 {
		t.Fatalf("panicked parse must surface exactly one diagnostic, got %d", bag.Len())
	}
	prog := b.Get(ret.Program)
	if !prog.Has(ast.FlagDummy) || len(prog.Children) != 0 {
		t.Fatalf("panicked parse must return an empty dummy program")
	}
}

func TestDirectivePrologueSetsStrictMode(t *testing.T) {
	// In strict mode `yield` outside a generator is reserved; without the
	// directive the same source parses clean.
	_, _, strictBag := parseSource(t, `"use strict"; let x = yield;`, scriptSourceType())
	if strictBag.Len() == 0 {
		t.Fatalf("strict prologue must make `yield` in expression position a diagnostic")
	}
	_, _, sloppyBag := parseSource(t, `let x = yield;`, scriptSourceType())
	if sloppyBag.Len() != 0 {
		t.Fatalf("sloppy-mode `yield` as identifier must parse clean, got %d", sloppyBag.Len())
	}
}

func TestJSXElement(t *testing.T) {
	st := SourceType{Language: TypeScript, ModuleKind: Script, JSX: true}
	src := `let el = <div className="box" {...rest}>hello {name}<br/></div>;`
	b, ret := parseClean(t, src, st)
	decl := b.Get(b.Get(b.Get(ret.Program).Children[0]).Children[0])
	el := b.Get(decl.Children[1])
	if el.Kind != ast.JSXElement {
		t.Fatalf("initializer = %v, want JSXElement", el.Kind)
	}
	opening := b.Get(el.Children[0])
	if opening.Kind != ast.JSXOpeningElement {
		t.Fatalf("first child = %v, want JSXOpeningElement", opening.Kind)
	}
	// name + className attribute + spread attribute
	if len(opening.Children) != 3 {
		t.Fatalf("opening children = %d, want name + 2 attributes", len(opening.Children))
	}
	closing := b.Get(el.Children[len(el.Children)-1])
	if closing.Kind != ast.JSXClosingElement {
		t.Fatalf("last child = %v, want JSXClosingElement", closing.Kind)
	}
}

func TestJSXFragmentAndNesting(t *testing.T) {
	st := SourceType{Language: JavaScript, ModuleKind: Script, JSX: true}
	parseClean(t, "let f = <>{items.map(i => <li key={i}>{i}</li>)}</>;", st)
}

func TestHashbangIsConsumed(t *testing.T) {
	b, ret := parseClean(t, "#!/usr/bin/env node\nlet x = 1;", scriptSourceType())
	prog := b.Get(ret.Program)
	if len(prog.Children) != 1 {
		t.Fatalf("body len = %d, want 1", len(prog.Children))
	}
}

func TestIrregularWhitespaceSurfaced(t *testing.T) {
	_, ret, bag := parseSource(t, "let a = 1;", scriptSourceType())
	if bag.Len() != 0 {
		t.Fatalf("no-break space is trivia, not an error; got %d diagnostics", bag.Len())
	}
	if len(ret.IrregularWhitespace) != 1 {
		t.Fatalf("irregular whitespace spans = %d, want 1", len(ret.IrregularWhitespace))
	}
}

func TestPreserveParens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte("(a);"))
	bag := diag.NewBag(16)
	opts := DefaultOptions()
	opts.PreserveParens = true
	b, ret := ParseProgram(fs.Get(id), scriptSourceType(), opts, bag, nil, nil)
	stmt := b.Get(ret.Program)
	expr := b.Get(b.Get(stmt.Children[0]).Children[0])
	if expr.Kind != ast.ParenthesizedExpr {
		t.Fatalf("with PreserveParens: %v, want ParenthesizedExpr", expr.Kind)
	}

	bag2 := diag.NewBag(16)
	b2, ret2 := ParseProgram(fs.Get(id), scriptSourceType(), DefaultOptions(), bag2, nil, nil)
	expr2 := b2.Get(b2.Get(b2.Get(ret2.Program).Children[0]).Children[0])
	if expr2.Kind != ast.Identifier {
		t.Fatalf("without PreserveParens: %v, want inlined Identifier", expr2.Kind)
	}
}

func TestV8IntrinsicsOption(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte("%DebugPrint(x);"))
	bag := diag.NewBag(16)
	opts := DefaultOptions()
	opts.AllowV8Intrinsics = true
	b, ret := ParseProgram(fs.Get(id), scriptSourceType(), opts, bag, nil, nil)
	if bag.Len() != 0 {
		t.Fatalf("intrinsic call must parse clean with the option on, got %d diagnostics", bag.Len())
	}
	expr := b.Get(b.Get(b.Get(ret.Program).Children[0]).Children[0])
	if expr.Kind != ast.V8IntrinsicExpr {
		t.Fatalf("expression = %v, want V8IntrinsicExpr", expr.Kind)
	}

	bag2 := diag.NewBag(16)
	ParseProgram(fs.Get(id), scriptSourceType(), DefaultOptions(), bag2, nil, nil)
	if bag2.Len() == 0 {
		t.Fatalf("intrinsic call must be a diagnostic with the option off")
	}
}
