package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ecmaparser/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ecmaparse",
	Short: "Error-recovering ECMAScript/TypeScript parser",
	Long:  `ecmaparse parses JavaScript, TypeScript, and JSX/TSX source, recovering from syntax errors instead of stopping at the first one.`,
}

var (
	timeoutCancel context.CancelFunc
	traceCleanup  func() error
)

func main() {
	rootCmd.Version = version.VersionString()
	rootCmd.PersistentPreRunE = preRun
	rootCmd.PersistentPostRun = postRun

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum diagnostics to collect (0 = use ecmaparse.toml or default)")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers for directory input (0=auto)")
	rootCmd.PersistentFlags().Int("timeout", 60, "command timeout in seconds")

	rootCmd.PersistentFlags().Bool("recover", true, "enable error-recovery (synchronization + dummy nodes)")
	rootCmd.PersistentFlags().Bool("jsx", false, "force-enable JSX parsing regardless of extension")
	rootCmd.PersistentFlags().String("module", "unambiguous", "module kind (script|module|unambiguous)")
	rootCmd.PersistentFlags().Bool("ts", false, "force TypeScript parsing regardless of extension")

	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr, empty to disable)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "ring", "trace storage mode (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "ring buffer capacity for trace events")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func preRun(cmd *cobra.Command, _ []string) error {
	secs, err := cmd.Root().PersistentFlags().GetInt("timeout")
	if err != nil {
		return fmt.Errorf("failed to read timeout flag: %w", err)
	}
	if secs <= 0 {
		return fmt.Errorf("timeout must be greater than zero")
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(secs)*time.Second)
	timeoutCancel = cancel
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	go func() {
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			fmt.Fprintln(os.Stderr, "ecmaparse: command timed out")
			os.Exit(1)
		}
	}()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	traceCleanup = cleanup
	return nil
}

func postRun(*cobra.Command, []string) {
	if timeoutCancel != nil {
		timeoutCancel()
		timeoutCancel = nil
	}
	if traceCleanup != nil {
		_ = traceCleanup()
		traceCleanup = nil
	}
}
