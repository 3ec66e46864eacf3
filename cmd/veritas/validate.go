package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/veritas/internal/domain/entities"
)

type validateFlags struct {
	input  string
	format string
}

func newValidateCmd() *cobra.Command {
	var flags validateFlags

	cmd := &cobra.Command{
		Use:   "validate <relationship-id>",
		Short: "Validate a single relationship",
		Long:  "Validates one relationship against the schema, temporal, logical, and cross-reference checks.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Snapshot file (.json, .csv, .db)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format (text, json)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runValidate(cmd *cobra.Command, flags validateFlags, relationshipID string) error {
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

		result, err := deps.Handler.HandleValidateOne(ctx, source, relationshipID)
		if err != nil {
			return err
		}

		if flags.format == "json" {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		printResult(result)
		return nil
	})
}

func printResult(result *entities.ValidationResult) {
	status := "VALID"
	if !result.Valid {
		status = "INVALID"
	}

	fmt.Printf("Relationship: %s\n", result.RelationshipID)
	fmt.Printf("Status:       %s\n", status)
	fmt.Printf("Confidence:   %.2f (was %.2f)\n", result.Confidence, result.OriginalConfidence)

	if len(result.Issues) > 0 {
		fmt.Println("\nIssues:")
		for _, issue := range result.Issues {
			printIssue(issue)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, issue := range result.Warnings {
			printIssue(issue)
		}
	}
	if len(result.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range result.Suggestions {
			printSuggestion(s)
		}
	}
}

func printIssue(issue entities.ValidationIssue) {
	fmt.Printf("  [%s/%s] %s: %s\n", issue.Severity, issue.Category, issue.Code, issue.Message)
}

func printSuggestion(s entities.Suggestion) {
	auto := ""
	if s.AutoApply {
		auto = " (auto-applicable)"
	}
	fmt.Printf("  %s%s: %s\n", s.Kind, auto, s.Reason)
	if s.Relationship != nil {
		fmt.Printf("    %s --%s--> %s\n", s.Relationship.SubjectID, s.Relationship.Predicate, s.Relationship.ObjectID)
	}
}
