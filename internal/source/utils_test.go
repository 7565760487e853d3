package source

import (
	"path/filepath"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	cases := []struct {
		in, want string
		changed  bool
	}{
		{"a();\r\nb();\r\n", "a();\nb();\n", true},
		{"a();\nb();\n", "a();\nb();\n", false},
		{"lone\rcarriage", "lone\rcarriage", false}, // \r alone is its own LineTerminator
		{"\r\n\r\n", "\n\n", true},
		{"", "", false},
	}
	for _, tt := range cases {
		out, changed := normalizeCRLF([]byte(tt.in))
		if string(out) != tt.want || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = %q, %v; want %q, %v", tt.in, out, changed, tt.want, tt.changed)
		}
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("let x;")...)
	out, had := removeBOM(withBOM)
	if !had || string(out) != "let x;" {
		t.Fatalf("removeBOM = %q, %v", out, had)
	}
	out, had = removeBOM([]byte("let x;"))
	if had || string(out) != "let x;" {
		t.Fatalf("no-BOM input must pass through")
	}
	// Shorter than a BOM.
	if _, had := removeBOM([]byte{0xEF}); had {
		t.Fatalf("a partial BOM prefix is content, not a BOM")
	}
}

func TestToLineCol(t *testing.T) {
	idx := buildLineIndex([]byte("ab\ncd\nef"))
	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // on the first '\n': end of line 1
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{3, 2}},
	}
	for _, tt := range cases {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
	// No newlines at all: everything is line 1.
	if got := toLineCol(nil, 5); got != (LineCol{1, 6}) {
		t.Errorf("toLineCol without index = %+v", got)
	}
}

func TestRelativePath(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "src", "main.ts")
	rel, err := RelativePath(target, base)
	if err != nil {
		t.Fatal(err)
	}
	if rel != "src/main.ts" {
		t.Errorf("RelativePath = %q, want src/main.ts", rel)
	}
}

func TestBaseName(t *testing.T) {
	if got := BaseName(filepath.Join("a", "b", "c.tsx")); got != "c.tsx" {
		t.Errorf("BaseName = %q", got)
	}
}
