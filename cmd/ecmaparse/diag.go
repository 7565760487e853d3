package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/driver"
	"ecmaparser/internal/fix"
	"ecmaparser/internal/source"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file>",
	Short: "Print every diagnostic for a file, regardless of severity",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiag,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	diagCmd.Flags().Bool("fix", false, "apply always-safe fixes (inserted semicolons, missing closers) to the file")
}

type diagOutput struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
}

func runDiag(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	opts, err := parseOptionsFromFlags(cmd, path)
	if err != nil {
		return err
	}
	st, err := sourceTypeOverride(cmd, path)
	if err != nil {
		return err
	}
	fs, res, err := driver.ParseWithType(path, st, opts)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	switch format {
	case "pretty":
		printDiagnostics(os.Stdout, res.Bag, fs, wantColor(cmd, os.Stdout))
	case "json":
		if err := writeDiagJSON(os.Stdout, res.Bag, fs); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	applyFix, err := cmd.Flags().GetBool("fix")
	if err != nil {
		return err
	}
	if applyFix {
		items := res.Bag.Items()
		diags := make([]diag.Diagnostic, len(items))
		for i, d := range items {
			diags[i] = *d
		}
		result, applyErr := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
		switch {
		case errors.Is(applyErr, fix.ErrNoFixes):
			fmt.Fprintln(os.Stderr, "no applicable fixes")
		case applyErr != nil:
			return applyErr
		default:
			for _, change := range result.FileChanges {
				fmt.Fprintf(os.Stderr, "fixed %s (%d edits)\n", change.Path, change.EditCount)
			}
		}
	}

	if res.Bag.HasErrors() {
		cmd.SilenceUsage = true
		return fmt.Errorf("%s: parse completed with errors", path)
	}
	return nil
}

func writeDiagJSON(w *os.File, bag *diag.Bag, fs *source.FileSet) error {
	out := make([]diagOutput, 0, bag.Len())
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		out = append(out, diagOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Line:     start.Line,
			Col:      start.Col,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
