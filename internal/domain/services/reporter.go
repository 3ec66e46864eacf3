package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/ersonp/veritas/internal/domain/entities"
	"github.com/ersonp/veritas/internal/domain/schema"
)

// BatchValidationReporter validates an entire relationship set and aggregates
// a ValidationReport.
//
// Validation over N relationships is a parallel map: every call reads, never
// writes, the shared entity and relationship snapshots, so a fixed-size
// worker pool runs without locks. Per-relationship results keep input order.
type BatchValidationReporter struct {
	validator *RelationshipValidator
	registry  *schema.Registry
	workers   int
	log       *slog.Logger
}

// NewBatchValidationReporter creates a reporter. workers <= 0 selects one
// worker per CPU; a nil logger discards debug output.
func NewBatchValidationReporter(validator *RelationshipValidator, registry *schema.Registry, workers int, log *slog.Logger) *BatchValidationReporter {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &BatchValidationReporter{
		validator: validator,
		registry:  registry,
		workers:   workers,
		log:       log,
	}
}

// ValidateAll validates every relationship against the snapshot and
// aggregates the findings. The full relationship list is always passed into
// each validation so logical and cross-reference checks see the whole graph.
// Bad relationships never abort the batch. Cancelling ctx stops the run
// early; the returned report then covers only the prefix validated before
// cancellation.
func (r *BatchValidationReporter) ValidateAll(
	ctx context.Context,
	relationships []*entities.Relationship,
	entitiesByID map[string]*entities.Entity,
) *entities.ValidationReport {
	start := time.Now()

	// Shared checkers: indexes are primed before the workers start, so all
	// subsequent access is read-only.
	logical := NewLogicalChecker(r.registry, relationships)
	logical.Prime()
	crossref := NewCrossRefChecker(r.registry, relationships)

	results := make([]entities.ValidationResult, len(relationships))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.validator.validateWith(relationships[i], entitiesByID, logical, crossref)
			}
		}()
	}

	dispatched := 0
feed:
	for i := range relationships {
		select {
		case jobs <- i:
			dispatched++
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	// On cancellation only the dispatched prefix was validated; the report
	// covers exactly that prefix so every included result is a real verdict.
	report := r.aggregate(results[:dispatched])
	if dispatched < len(relationships) {
		r.log.Warn("batch validation cancelled",
			"validated", dispatched,
			"remaining", len(relationships)-dispatched)
	}

	r.log.Debug("batch validation complete",
		"relationships", report.TotalRelationships,
		"invalid", report.InvalidRelationships,
		"issues", report.TotalIssues,
		"elapsed", time.Since(start))

	return report
}

// aggregate folds per-relationship results into report counters and derives
// recommendations. Category and severity maps are filled in declaration
// order so repeated runs serialize identically.
func (r *BatchValidationReporter) aggregate(results []entities.ValidationResult) *entities.ValidationReport {
	report := &entities.ValidationReport{
		TotalRelationships: len(results),
		IssuesByCategory:   make(map[entities.Category]int, len(entities.AllCategories)),
		IssuesBySeverity:   make(map[entities.Severity]int, len(entities.AllSeverities)),
		Results:            results,
	}
	for _, cat := range entities.AllCategories {
		report.IssuesByCategory[cat] = 0
	}
	for _, sev := range entities.AllSeverities {
		report.IssuesBySeverity[sev] = 0
	}

	codeCounts := make(map[string]int)
	for i := range results {
		res := &results[i]
		if !res.Valid {
			report.InvalidRelationships++
		}
		for _, issue := range res.Issues {
			report.TotalIssues++
			report.IssuesByCategory[issue.Category]++
			report.IssuesBySeverity[issue.Severity]++
			codeCounts[issue.Code]++
		}
		for _, warning := range res.Warnings {
			report.TotalIssues++
			report.IssuesByCategory[warning.Category]++
			report.IssuesBySeverity[warning.Severity]++
			codeCounts[warning.Code]++
		}
	}

	report.Recommendations = recommendations(report, codeCounts)
	return report
}

// recommendations derives deterministic triage guidance from aggregate
// counts, in a fixed order.
func recommendations(report *entities.ValidationReport, codeCounts map[string]int) []string {
	var recs []string

	if n := codeCounts[entities.CodeMissingInverse]; n > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d relationships are missing inverse edges; the suggested fixes can be applied automatically", n))
	}
	if n := report.IssuesByCategory[entities.CategoryType]; n > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d type constraint violations found; review entity typing in the upstream extraction", n))
	}
	if n := report.IssuesByCategory[entities.CategoryTemporal]; n > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d chronological inconsistencies found; review extracted dates before accepting these relationships", n))
	}
	if n := codeCounts[entities.CodeCircularRelationship]; n > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d relationships close cycles in hierarchical predicates; check edge directions", n))
	}
	if n := codeCounts[entities.CodeSelfRelationship]; n > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d self-relationships found; these records should be dropped", n))
	}

	if len(recs) == 0 && report.TotalRelationships > 0 {
		recs = append(recs, "no structural problems detected")
	}
	return recs
}
