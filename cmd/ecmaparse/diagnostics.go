package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
)

// colorCode returns the ANSI SGR sequence for a severity, or "" when color
// is disabled. The CLI's printer stays a plain, dependency-free fallback;
// rich diagnostic rendering belongs to downstream tooling.
func colorCode(sev diag.Severity, enabled bool) (code, reset string) {
	if !enabled {
		return "", ""
	}
	switch sev {
	case diag.SevError:
		return "\x1b[31;1m", "\x1b[0m"
	case diag.SevWarning:
		return "\x1b[33;1m", "\x1b[0m"
	default:
		return "\x1b[36m", "\x1b[0m"
	}
}

// printDiagnostics writes one line per diagnostic: path:line:col: SEVERITY
// [CODE] message. Plain-text only, matching the out-of-scope note on fancy
// diagnostic formatting.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, useColor bool) {
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		path := fs.Get(d.Primary.File).FormatPath("auto", fs.BaseDir())
		code, reset := colorCode(d.Severity, useColor)
		fmt.Fprintf(w, "%s:%d:%d: %s%s%s [%s] %s\n",
			path, start.Line, start.Col, code, d.Severity, reset, d.Code.ID(), d.Message)
	}
}

func wantColor(cmd *cobra.Command, w io.Writer) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		f, ok := w.(interface{ Fd() uintptr })
		return ok && isTerminal(f)
	}
}
