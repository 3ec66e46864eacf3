// Package main provides the entry point for the veritas CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version       = "0.1.0-dev"
	globalVerbose bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "veritas",
		Short:   "A structural, temporal, and logical validator for knowledge-graph relationships",
		Version: version,
	}

	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newValidateCmd(),
		newReportCmd(),
		newSuggestCmd(),
		newPredicatesCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
