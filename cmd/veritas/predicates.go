package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/veritas/internal/domain/schema"
)

type predicatesFlags struct {
	format string
}

func newPredicatesCmd() *cobra.Command {
	var flags predicatesFlags

	cmd := &cobra.Command{
		Use:   "predicates",
		Short: "List known predicates and their schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredicates(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format (text, json)")

	return cmd
}

func runPredicates(flags predicatesFlags) error {
	if !contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	registry := schema.Default()
	schemas := registry.Predicates()

	if flags.format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(schemas)
	}

	fmt.Printf("%d predicates:\n\n", len(schemas))
	for _, s := range schemas {
		fmt.Printf("%s\n", s.Predicate)
		fmt.Printf("  subject: %s\n", joinTypes(s.SubjectTypes))
		fmt.Printf("  object:  %s\n", joinTypes(s.ObjectTypes))
		if s.Symmetric {
			fmt.Println("  symmetric")
		} else if s.Bidirectional {
			fmt.Printf("  inverse: %s\n", s.Inverse)
		}
		if s.Acyclic {
			fmt.Println("  acyclic")
		}
		if s.Description != "" {
			fmt.Printf("  %s\n", s.Description)
		}
	}
	return nil
}

func joinTypes[T ~string](types []T) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
