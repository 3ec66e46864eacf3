package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type suggestFlags struct {
	input  string
	format string
}

func newSuggestCmd() *cobra.Command {
	var flags suggestFlags

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "List auto-fix suggestions for a snapshot",
		Long:  "Collects suggested repairs, such as missing inverse relationships, across a snapshot.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Snapshot file (.json, .csv, .db)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format (text, json)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runSuggest(cmd *cobra.Command, flags suggestFlags) error {
	if !contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	ctx := cmd.Context()

	return withDeps(func(deps *Deps) error {
		source, err := openSource(flags.input)
		if err != nil {
			return fmt.Errorf("opening snapshot: %w", err)
		}
		defer source.Close()

		suggestions, err := deps.Handler.HandleSuggestions(ctx, source)
		if err != nil {
			return err
		}

		if flags.format == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(suggestions)
		}

		if len(suggestions) == 0 {
			fmt.Println("No suggestions.")
			return nil
		}

		fmt.Printf("%d suggestion(s):\n\n", len(suggestions))
		for _, s := range suggestions {
			printSuggestion(s)
		}
		return nil
	})
}
