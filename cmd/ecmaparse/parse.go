package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecmaparser/internal/driver"
	"ecmaparser/pkg/ecmaparser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|directory>",
	Short: "Parse a source file or directory and report diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("stats", false, "print a node-count summary per file")
	parseCmd.Flags().Bool("cache", false, "consult/populate the on-disk parse cache for directory input")
}

func parseOptionsFromFlags(cmd *cobra.Command, dir string) (ecmaparser.Options, error) {
	opts := ecmaparser.DefaultOptions()

	cfg := resolveProjectConfig(dir)
	if cfg.MaxDiagnostics > 0 {
		opts.MaxDiagnostics = cfg.MaxDiagnostics
	}
	if cfg.Recover != nil {
		opts.RecoverFromErrors = *cfg.Recover
	}

	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		if err != nil {
			return opts, err
		}
		if n > 0 {
			opts.MaxDiagnostics = n
		}
	}
	if cmd.Root().PersistentFlags().Changed("recover") {
		recoverFlag, err := cmd.Root().PersistentFlags().GetBool("recover")
		if err != nil {
			return opts, err
		}
		opts.RecoverFromErrors = recoverFlag
	}
	return opts, nil
}

// sourceTypeOverride computes driver.InferSourceType(path), then applies any
// --jsx/--ts/--module overrides the user passed explicitly.
func sourceTypeOverride(cmd *cobra.Command, path string) (ecmaparser.SourceType, error) {
	st := driver.InferSourceType(path)
	flags := cmd.Root().PersistentFlags()

	if flags.Changed("jsx") {
		jsx, err := flags.GetBool("jsx")
		if err != nil {
			return st, err
		}
		st.JSX = jsx
	}
	if flags.Changed("ts") {
		ts, err := flags.GetBool("ts")
		if err != nil {
			return st, err
		}
		if ts {
			st.Language = ecmaparser.TypeScript
		} else {
			st.Language = ecmaparser.JavaScript
		}
	}
	if flags.Changed("module") {
		kind, err := flags.GetString("module")
		if err != nil {
			return st, err
		}
		switch kind {
		case "script":
			st.ModuleKind = ecmaparser.Script
		case "module":
			st.ModuleKind = ecmaparser.Module
		case "unambiguous":
			st.ModuleKind = ecmaparser.Unambiguous
		default:
			return st, fmt.Errorf("unknown --module value %q (must be script|module|unambiguous)", kind)
		}
	}
	return st, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	opts, err := parseOptionsFromFlags(cmd, path)
	if err != nil {
		return err
	}
	stats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return err
	}

	if !st.IsDir() {
		return parseSingleFile(cmd, path, opts, stats)
	}
	return parseDirectory(cmd, path, opts, stats)
}

func parseSingleFile(cmd *cobra.Command, path string, opts ecmaparser.Options, stats bool) error {
	st, err := sourceTypeOverride(cmd, path)
	if err != nil {
		return err
	}
	fs, res, err := driver.ParseWithType(path, st, opts)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	useColor := wantColor(cmd, os.Stderr)
	if res.Bag.HasErrors() || res.Bag.HasWarnings() {
		printDiagnostics(os.Stderr, res.Bag, fs, useColor)
	}
	if stats {
		printParseStats(os.Stdout, path, res)
	}
	if res.Bag.HasErrors() {
		cmd.SilenceUsage = true
		return fmt.Errorf("%s: parse completed with errors", path)
	}
	return nil
}

func parseDirectory(cmd *cobra.Command, dir string, opts ecmaparser.Options, stats bool) error {
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("ecmaparse")
		if err != nil {
			return fmt.Errorf("failed to open parse cache: %w", err)
		}
	}

	fs, results, err := driver.ParseFiles(cmd.Context(), dir, driver.ParseFilesOptions{
		Options: opts,
		Jobs:    jobs,
		Cache:   cache,
	})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	useColor := wantColor(cmd, os.Stderr)
	hadErrors := false
	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			printDiagnostics(os.Stderr, r.Bag, fs, useColor)
		}
		hadErrors = hadErrors || r.Bag.HasErrors()
		if stats {
			printParseStats(os.Stdout, r.Path, r)
		}
	}
	if hadErrors {
		cmd.SilenceUsage = true
		return fmt.Errorf("%s: parse completed with errors", dir)
	}
	return nil
}

func printParseStats(w *os.File, path string, res driver.Result) {
	if res.Builder == nil {
		fmt.Fprintf(w, "%s: %d diagnostics (cached)\n", path, res.Bag.Len())
		return
	}
	fmt.Fprintf(w, "%s: %d nodes, %d diagnostics, module=%v\n",
		path, res.Builder.Arena.Len(), res.Bag.Len(), res.Return.SourceType.ModuleKind)
}
