package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/lexer"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, labels []diag.Label, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Labels:   labels,
		Fixes:    fixes,
	})
}

// HasErrors возвращает true, если были зарегистрированы ошибки
func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// ErrorCount возвращает количество ошибок
func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	opts := lexer.Options{Reporter: reporter}
	lx := lexer.New(file, opts)

	return lx, reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность токенов
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v (input %q)", expectedKind, tok.Kind, input)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== Идентификаторы и ключевые слова ======

func TestIdentifiers_ASCII(t *testing.T) {
	for _, input := range []string{"x", "foo", "_private", "$jquery", "camelCase", "CONST_LIKE", "a1b2", "_"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestKeywords_Reserved(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"break", token.KwBreak},
		{"case", token.KwCase},
		{"catch", token.KwCatch},
		{"class", token.KwClass},
		{"const", token.KwConst},
		{"continue", token.KwContinue},
		{"debugger", token.KwDebugger},
		{"default", token.KwDefault},
		{"delete", token.KwDelete},
		{"do", token.KwDo},
		{"else", token.KwElse},
		{"enum", token.KwEnum},
		{"export", token.KwExport},
		{"extends", token.KwExtends},
		{"false", token.KwFalse},
		{"finally", token.KwFinally},
		{"for", token.KwFor},
		{"function", token.KwFunction},
		{"if", token.KwIf},
		{"import", token.KwImport},
		{"in", token.KwIn},
		{"instanceof", token.KwInstanceof},
		{"new", token.KwNew},
		{"null", token.KwNull},
		{"return", token.KwReturn},
		{"super", token.KwSuper},
		{"switch", token.KwSwitch},
		{"this", token.KwThis},
		{"throw", token.KwThrow},
		{"true", token.KwTrue},
		{"try", token.KwTry},
		{"typeof", token.KwTypeof},
		{"var", token.KwVar},
		{"void", token.KwVoid},
		{"while", token.KwWhile},
		{"let", token.KwLet},
		{"static", token.KwStatic},
		{"yield", token.KwYield},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestKeywords_Contextual(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"async", token.KwAsync},
		{"await", token.KwAwait},
		{"as", token.KwAs},
		{"from", token.KwFrom},
		{"of", token.KwOf},
		{"get", token.KwGet},
		{"set", token.KwSet},
		{"declare", token.KwDeclare},
		{"namespace", token.KwNamespace},
		{"readonly", token.KwReadonly},
		{"keyof", token.KwKeyof},
		{"using", token.KwUsing},
		{"infer", token.KwInfer},
		{"unknown", token.KwUnknown},
		{"never", token.KwNever},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
			if !tt.kind.IsContextualKeyword() {
				t.Errorf("%q must classify as a contextual keyword", tt.input)
			}
			if !tt.kind.IsIdentifierName() {
				t.Errorf("%q must still qualify as an IdentifierName", tt.input)
			}
		})
	}
}

// Ключевые слова регистрозависимые: капитализированные версии — идентификаторы
func TestKeywords_CapitalizedAreIdents(t *testing.T) {
	for _, input := range []string{"If", "IF", "Return", "Function", "CLASS", "Await", "Let"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestIdentifiers_Unicode(t *testing.T) {
	for _, input := range []string{"π", "переменная", "变量", "café"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

// An escape-spelled keyword keeps the keyword kind with Escaped set; the
// grammar layer decides where to reject it.
func TestIdentifiers_EscapedKeyword(t *testing.T) {
	lx, reporter := makeTestLexer("\\u0069f")
	tok := lx.Next()
	if tok.Kind != token.KwIf || !tok.Escaped {
		t.Fatalf("expected escaped KwIf, got %v (escaped=%v, text=%q)", tok.Kind, tok.Escaped, tok.Text)
	}
	if tok.Text != "if" {
		t.Errorf("decoded text = %q, want if", tok.Text)
	}
	if reporter.HasErrors() {
		t.Errorf("valid escape must not report: %v", reporter.ErrorMessages())
	}
}

func TestIdentifiers_InvalidUnicodeEscape(t *testing.T) {
	lx, reporter := makeTestLexer("\\u00")
	collectAllTokens(lx)
	if !reporter.HasErrors() {
		t.Fatalf("malformed \\u escape must report")
	}
}

func TestPrivateIdentifier(t *testing.T) {
	expectSingleToken(t, "#field", token.PrivateIdent, "#field")
}

// ====== Числовые литералы ======

func TestNumbers_Decimal(t *testing.T) {
	for _, input := range []string{"0", "7", "42", "1_000_000"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.NumericLit, input)
		})
	}
}

func TestNumbers_Radix(t *testing.T) {
	for _, input := range []string{"0b1010", "0B11", "0o755", "0O17", "0xDEAD", "0Xbeef", "0xFF_FF"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.NumericLit, input)
		})
	}
}

func TestNumbers_Float(t *testing.T) {
	for _, input := range []string{"3.14", "0.5", ".25", "10.", "1e10", "1E-5", "2.5e+3"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.NumericLit, input)
		})
	}
}

func TestNumbers_BigInt(t *testing.T) {
	for _, input := range []string{"0n", "123n", "0xFFn", "0b11n"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.BigIntLit, input)
		})
	}
}

// The BigInt suffix is illegal after a fraction or exponent; the stray `n`
// then trips the no-identifier-after-numeric rule.
func TestNumbers_BigIntSuffixNotAllowedOnFloat(t *testing.T) {
	lx, reporter := makeTestLexer("1.5n")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid for 1.5n, got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected one error, got %v", reporter.ErrorMessages())
	}
}

func TestNumbers_InvalidExponent(t *testing.T) {
	lx, reporter := makeTestLexer("1e")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid for 1e, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Errorf("expected an invalid-numeric-literal diagnostic")
	}
}

func TestNumbers_NoTrailingIdentifier(t *testing.T) {
	lx, reporter := makeTestLexer("123abc")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid for 123abc, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Errorf("expected an invalid-numeric-literal diagnostic")
	}
}

// `1.toString` reads the dot as a fraction; `1 .toString` and `1..toString`
// are the member-access spellings.
func TestNumbers_MemberAccessAfterIntegerLiteral(t *testing.T) {
	expectTokens(t, "1 .toString", []token.Kind{token.NumericLit, token.Dot, token.Ident})
	expectTokens(t, "1..toString", []token.Kind{token.NumericLit, token.Dot, token.Ident})
}

// ====== Строковые литералы ======

func TestString_Simple(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
	expectSingleToken(t, `'world'`, token.StringLit, `'world'`)
	expectSingleToken(t, `""`, token.StringLit, `""`)
}

func TestString_Escapes(t *testing.T) {
	for _, input := range []string{
		`"a\nb"`, `"tab\there"`, `"quote\""`, `'it\'s'`, `"\x41"`, `"\u0041"`, `"\u{1F600}"`, `"back\\slash"`,
	} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.StringLit, input)
		})
	}
}

func TestString_LineContinuation(t *testing.T) {
	input := "\"a\\\nb\""
	expectSingleToken(t, input, token.StringLit, input)
}

func TestString_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer(`"never closed`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected one unterminated-string error, got %v", reporter.ErrorMessages())
	}
}

func TestString_NewlineTerminates(t *testing.T) {
	lx, reporter := makeTestLexer("\"broken\nrest")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid before the newline, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Errorf("expected an unterminated-string diagnostic")
	}
	next := lx.Next()
	if next.Kind != token.Ident || next.Text != "rest" {
		t.Errorf("lexing must resume after the line break, got %v %q", next.Kind, next.Text)
	}
}

func TestString_InvalidEscapeMakesProgress(t *testing.T) {
	lx, reporter := makeTestLexer(`"\u00ZZ still here" tail`)
	lx.Next()
	if !reporter.HasErrors() {
		t.Errorf("malformed unicode escape inside a string must report")
	}
	tokens := collectAllTokens(lx)
	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		t.Fatalf("scan must reach EOF, ended at %v", last.Kind)
	}
}

// ====== Шаблонные литералы ======

func TestTemplate_NoSubstitution(t *testing.T) {
	expectSingleToken(t, "`plain text`", token.NoSubstitutionTemplateLit, "`plain text`")
}

func TestTemplate_HeadAndTail(t *testing.T) {
	lx, reporter := makeTestLexer("`a${b}c`")
	head := lx.Next()
	if head.Kind != token.TemplateHead || head.Text != "`a${" {
		t.Fatalf("head = %v %q", head.Kind, head.Text)
	}
	ident := lx.Next()
	if ident.Kind != token.Ident || ident.Text != "b" {
		t.Fatalf("substitution = %v %q", ident.Kind, ident.Text)
	}
	rbrace := lx.Next()
	if rbrace.Kind != token.RBrace {
		t.Fatalf("closer = %v, want RBrace", rbrace.Kind)
	}
	tail := lx.ReLexTemplateSubstitutionTail()
	if tail.Kind != token.TemplateTail || tail.Text != "}c`" {
		t.Fatalf("tail = %v %q", tail.Kind, tail.Text)
	}
	if reporter.HasErrors() {
		t.Errorf("unexpected errors: %v", reporter.ErrorMessages())
	}
}

func TestTemplate_Middle(t *testing.T) {
	lx, _ := makeTestLexer("`a${x}b${y}c`")
	if k := lx.Next().Kind; k != token.TemplateHead {
		t.Fatalf("head = %v", k)
	}
	lx.Next() // x
	lx.Next() // }
	middle := lx.ReLexTemplateSubstitutionTail()
	if middle.Kind != token.TemplateMiddle || middle.Text != "}b${" {
		t.Fatalf("middle = %v %q", middle.Kind, middle.Text)
	}
}

func TestTemplate_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer("`no close")
	tok := lx.Next()
	if tok.Kind != token.NoSubstitutionTemplateLit {
		t.Fatalf("got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected one unterminated-template error, got %v", reporter.ErrorMessages())
	}
}

// ====== Регулярные выражения ======

func TestRegExp_ReLex(t *testing.T) {
	lx, reporter := makeTestLexer("/ab+c/gi")
	slash := lx.Next()
	if slash.Kind != token.Slash {
		t.Fatalf("initial scan = %v, want Slash (division reading)", slash.Kind)
	}
	re := lx.ScanRegExp(slash.Span.Start)
	if re.Kind != token.RegExpLit || re.Text != "/ab+c/gi" {
		t.Fatalf("re-lex = %v %q", re.Kind, re.Text)
	}
	if reporter.HasErrors() {
		t.Errorf("unexpected errors: %v", reporter.ErrorMessages())
	}
}

func TestRegExp_ClassWithSlash(t *testing.T) {
	lx, _ := makeTestLexer("/[a/b]/")
	slash := lx.Next()
	re := lx.ScanRegExp(slash.Span.Start)
	if re.Kind != token.RegExpLit || re.Text != "/[a/b]/" {
		t.Fatalf("a `/` inside a character class must not terminate: %v %q", re.Kind, re.Text)
	}
}

func TestRegExp_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer("/never")
	slash := lx.Next()
	re := lx.ScanRegExp(slash.Span.Start)
	if re.Kind != token.Invalid {
		t.Fatalf("got %v", re.Kind)
	}
	if !reporter.HasErrors() {
		t.Errorf("expected an unterminated-regexp diagnostic")
	}
}

// ====== Операторы и пунктуация ======

func TestOperators_Punctuators(t *testing.T) {
	expectTokens(t, "{ } ( ) [ ] ; , . < > + - * / % & | ^ ! ~ ? :", []token.Kind{
		token.LBrace, token.RBrace, token.LParen, token.RParen,
		token.LBracket, token.RBracket, token.Semicolon, token.Comma,
		token.Dot, token.Lt, token.Gt, token.Plus, token.Minus, token.Star,
		token.Slash, token.Percent, token.Amp, token.Pipe, token.Caret,
		token.Bang, token.Tilde, token.Question, token.Colon,
	})
}

func TestOperators_Compound(t *testing.T) {
	expectTokens(t, "=> === !== == != <= >= << >> >>> && || ?? ?. ++ -- ** ...", []token.Kind{
		token.Arrow, token.EqEqEq, token.NotEqEq, token.EqEq, token.NotEq,
		token.LtEq, token.GtEq, token.Shl, token.Shr, token.UShr,
		token.AmpAmp, token.PipePipe, token.QuestionQuestion, token.QuestionDot,
		token.PlusPlus, token.MinusMinus, token.StarStar, token.Ellipsis,
	})
}

func TestOperators_Assignment(t *testing.T) {
	expectTokens(t, "= += -= *= /= %= <<= >>= >>>= &= |= ^= &&= ||= ??= **=", []token.Kind{
		token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.ShlAssign, token.ShrAssign,
		token.UShrAssign, token.AmpAssign, token.PipeAssign, token.CaretAssign,
		token.AmpAmpAssign, token.PipePipeAssign, token.QuestionQuestionAssign,
		token.StarStarAssign,
	})
}

// Жадный матчинг: самый длинный оператор побеждает
func TestOperators_Greedy(t *testing.T) {
	expectTokens(t, "a>>>=b", []token.Kind{token.Ident, token.UShrAssign, token.Ident})
	expectTokens(t, "a===b", []token.Kind{token.Ident, token.EqEqEq, token.Ident})
	expectTokens(t, "x??=y", []token.Kind{token.Ident, token.QuestionQuestionAssign, token.Ident})
}

// `?.` followed by a digit is a conditional (`a ? .5 : b`), not optional
// chaining.
func TestOperators_QuestionDotBeforeDigit(t *testing.T) {
	expectTokens(t, "a?.5:b", []token.Kind{
		token.Ident, token.Question, token.NumericLit, token.Colon, token.Ident,
	})
}

// ====== Тривия ======

func TestTrivia_CommentsAttachedLeading(t *testing.T) {
	lx, _ := makeTestLexer("// line\n/* block */ x")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("token = %v %q", tok.Kind, tok.Text)
	}
	var sawLine, sawBlock bool
	for _, tr := range tok.Leading {
		switch tr.Kind {
		case token.TriviaLineComment:
			sawLine = true
		case token.TriviaBlockComment:
			sawBlock = true
		}
	}
	if !sawLine || !sawBlock {
		t.Errorf("expected both comment kinds in leading trivia, got %d items", len(tok.Leading))
	}
	if !tok.OnNewLine {
		t.Errorf("a line terminator in the trivia must set OnNewLine")
	}
}

func TestTrivia_UnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/* never closed")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected one unterminated-comment error, got %v", reporter.ErrorMessages())
	}
}

func TestTrivia_Hashbang(t *testing.T) {
	lx, _ := makeTestLexer("#!/usr/bin/env node\nlet")
	tok := lx.Next()
	if tok.Kind != token.KwLet {
		t.Fatalf("token after hashbang = %v", tok.Kind)
	}
	found := false
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaHashbang {
			found = true
		}
	}
	if !found {
		t.Errorf("hashbang must be leading trivia of the first token")
	}
}

// `#!` не в нулевой позиции — это не hashbang
func TestTrivia_HashbangOnlyAtStart(t *testing.T) {
	lx, _ := makeTestLexer("x #!y")
	lx.Next() // x
	tok := lx.Next()
	if tok.Kind != token.Hash {
		t.Fatalf("mid-file #! = %v, want a bare Hash token", tok.Kind)
	}
}

func TestOnNewLine(t *testing.T) {
	lx, _ := makeTestLexer("a\nb c")
	a := lx.Next()
	b := lx.Next()
	c := lx.Next()
	if a.OnNewLine {
		t.Errorf("first token is not preceded by a line terminator")
	}
	if !b.OnNewLine {
		t.Errorf("b follows a newline")
	}
	if c.OnNewLine {
		t.Errorf("c is on the same line as b")
	}
}

// U+00A0 — irregular whitespace; U+2028 — LineTerminator, не irregular.
func TestIrregularWhitespace(t *testing.T) {
	lx, reporter := makeTestLexer("a b c")
	tokens := collectAllTokens(lx)
	if len(tokens) != 4 { // a b c EOF
		t.Fatalf("tokens = %v", tokensToString(tokens))
	}
	if reporter.HasErrors() {
		t.Errorf("irregular whitespace is not an error: %v", reporter.ErrorMessages())
	}
	if got := len(lx.IrregularWhitespace()); got != 1 {
		t.Errorf("irregular whitespace spans = %d, want 1", got)
	}
	if !tokens[2].OnNewLine {
		t.Errorf("U+2028 must count as a line terminator")
	}
}

// ====== JSX ======

func TestJSXTextMode(t *testing.T) {
	lx, _ := makeTestLexer("hello {x}")
	lx.SetJSXTextMode(true)
	text := lx.Next()
	if text.Kind != token.JsxText || text.Text != "hello " {
		t.Fatalf("jsx text = %v %q", text.Kind, text.Text)
	}
	lx.SetJSXTextMode(false)
	if k := lx.Next().Kind; k != token.LBrace {
		t.Fatalf("after text mode = %v, want LBrace", k)
	}
}

func TestJSXIdentifier_Dashes(t *testing.T) {
	lx, _ := makeTestLexer("data-foo")
	first := lx.Next()
	if first.Kind != token.Ident || first.Text != "data" {
		t.Fatalf("normal scan = %v %q", first.Kind, first.Text)
	}
	jsx := lx.ScanJSXIdentifier(first.Span.Start)
	if jsx.Kind != token.JsxIdentifier || jsx.Text != "data-foo" {
		t.Fatalf("jsx re-lex = %v %q", jsx.Kind, jsx.Text)
	}
}

// ====== Lookahead ======

func TestLexer_PeekBehavior(t *testing.T) {
	lx, _ := makeTestLexer("a b c")

	// Peek не должен потреблять токен
	peek1 := lx.Peek()
	if peek1.Kind != token.Ident || peek1.Text != "a" {
		t.Errorf("First peek: expected Ident 'a', got %v '%s'", peek1.Kind, peek1.Text)
	}

	peek2 := lx.Peek()
	if peek2.Kind != peek1.Kind || peek2.Text != peek1.Text {
		t.Error("Second peek should return the same token")
	}

	next1 := lx.Next()
	if next1.Kind != peek1.Kind || next1.Text != peek1.Text {
		t.Error("Next should return the peeked token")
	}

	next2 := lx.Next()
	if next2.Text != "b" {
		t.Errorf("Expected 'b', got '%s'", next2.Text)
	}
}

// Offset/SeekTo must survive buffered lookahead: seeking to an Offset taken
// mid-peek re-produces the peeked token instead of skipping it.
func TestLexer_OffsetSurvivesPeek(t *testing.T) {
	lx, _ := makeTestLexer("a b c")
	lx.Next()     // a
	_ = lx.Peek() // buffers b
	off := lx.Offset()
	lx.SeekTo(off)
	tok := lx.Next()
	if tok.Text != "b" {
		t.Fatalf("after seek got %q, want b", tok.Text)
	}
}

// ====== Целые фрагменты ======

func TestLexer_StatementStream(t *testing.T) {
	expectTokens(t, `const answer = 40 + 2;`, []token.Kind{
		token.KwConst, token.Ident, token.Assign,
		token.NumericLit, token.Plus, token.NumericLit, token.Semicolon,
	})
	expectTokens(t, "if (a?.b ?? c) { return `ok`; }", []token.Kind{
		token.KwIf, token.LParen, token.Ident, token.QuestionDot, token.Ident,
		token.QuestionQuestion, token.Ident, token.RParen, token.LBrace,
		token.KwReturn, token.NoSubstitutionTemplateLit, token.Semicolon,
		token.RBrace,
	})
}

func BenchmarkLexer_TokenStream(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, "const value%d = compute(%d) + %d;\n", i, i, i*2)
	}
	input := sb.String()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.ts", []byte(input))
	file := fs.Get(fileID)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx := lexer.New(file, lexer.Options{})
		for {
			if lx.Next().Kind == token.EOF {
				break
			}
		}
	}
}
