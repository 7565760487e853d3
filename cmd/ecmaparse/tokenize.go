package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/driver"
	"ecmaparser/internal/lexer"
	"ecmaparser/internal/source"
	"ecmaparser/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Print the raw token stream for a single source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	jsxFlag, err := cmd.Root().PersistentFlags().GetBool("jsx")
	if err != nil {
		return err
	}
	if !jsxFlag {
		jsxFlag = driver.InferSourceType(path).JSX
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(id)

	bag := diag.NewBag(4096)
	lx := lexer.New(file, lexer.Options{JSX: jsxFlag, Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag})})

	for {
		tok := lx.Next()
		fmt.Fprintf(os.Stdout, "%s %s %q\n", tok.Span, tok.Kind, tok.Text)
		if tok.Kind == token.EOF {
			break
		}
	}

	if bag.HasErrors() || bag.HasWarnings() {
		printDiagnostics(os.Stderr, bag, fs, wantColor(cmd, os.Stderr))
	}
	if bag.HasErrors() {
		cmd.SilenceUsage = true
		return fmt.Errorf("%s: tokenization completed with errors", path)
	}
	return nil
}
