package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/veritas/internal/domain/entities"
)

type reportFlags struct {
	input  string
	format string
	output string
	all    bool
}

func newReportCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Validate every relationship in a snapshot",
		Long:  "Runs all checks across a snapshot and prints an aggregate quality report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Snapshot file (.json, .csv, .db)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format (text, json)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Include clean relationships in text output")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runReport(cmd *cobra.Command, flags reportFlags) error {
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

		report, err := deps.Handler.HandleReport(ctx, source)
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if flags.output != "" {
			f, err := os.OpenFile(flags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("creating file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if flags.format == "json" {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		printReport(w, report, flags.all)
		return nil
	})
}

func printReport(w io.Writer, report *entities.ValidationReport, showAll bool) {
	fmt.Fprintf(w, "Relationships: %d\n", report.TotalRelationships)
	fmt.Fprintf(w, "Invalid:       %d\n", report.InvalidRelationships)
	fmt.Fprintf(w, "Total issues:  %d\n", report.TotalIssues)

	fmt.Fprintln(w, "\nBy category:")
	for _, cat := range entities.AllCategories {
		fmt.Fprintf(w, "  %-10s %d\n", cat, report.IssuesByCategory[cat])
	}

	fmt.Fprintln(w, "\nBy severity:")
	for _, sev := range entities.AllSeverities {
		fmt.Fprintf(w, "  %-10s %d\n", sev, report.IssuesBySeverity[sev])
	}

	for _, result := range report.Results {
		if !showAll && len(result.Issues) == 0 && len(result.Warnings) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s (confidence %.2f)\n", result.RelationshipID, result.Confidence)
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  [%s/%s] %s: %s\n", issue.Severity, issue.Category, issue.Code, issue.Message)
		}
		for _, issue := range result.Warnings {
			fmt.Fprintf(w, "  [%s/%s] %s: %s\n", issue.Severity, issue.Category, issue.Code, issue.Message)
		}
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}
}
