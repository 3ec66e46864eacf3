package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/veritas/internal/domain/entities"
	"github.com/ersonp/veritas/internal/domain/schema"
)

func setupReporterTest(workers int) (*BatchValidationReporter, map[string]*entities.Entity) {
	registry := schema.Default()
	validator := NewRelationshipValidator(registry, nil)
	reporter := NewBatchValidationReporter(validator, registry, workers, nil)
	byID := entities.IndexByID([]*entities.Entity{
		testPerson("marpa", "Marpa", 1012, 1097),
		testPerson("milarepa", "Milarepa", 1052, 1135),
		testPlace("lhasa", "Lhasa"),
	})
	return reporter, byID
}

func TestBatchValidationReporter_ValidateAll(t *testing.T) {
	t.Run("mixed batch", func(t *testing.T) {
		reporter, byID := setupReporterTest(2)

		clean := testRel("r-1", "marpa", entities.PredicateTeacherOf, "milarepa")
		cleanInverse := testRel("r-2", "milarepa", entities.PredicateStudentOf, "marpa")
		badType := testRel("r-3", "lhasa", entities.PredicateTeacherOf, "milarepa")
		// Marpa died 1097, so teaching in 1200 is a temporal error.
		badDate := testDatedRel("r-4", "marpa", entities.PredicateTeacherOf, "milarepa", 1200)
		set := []*entities.Relationship{clean, cleanInverse, badType, badDate}

		report := reporter.ValidateAll(context.Background(), set, byID)

		assert.Equal(t, 4, report.TotalRelationships)
		assert.GreaterOrEqual(t, report.InvalidRelationships, 2)
		require.Len(t, report.Results, 4)

		// Results stay aligned with the input order.
		assert.Equal(t, "r-1", report.Results[0].RelationshipID)
		assert.True(t, report.Results[0].Valid)
		assert.Equal(t, "r-3", report.Results[2].RelationshipID)
		assert.False(t, report.Results[2].Valid)
		assert.True(t, report.Results[3].HasCode(entities.CodeActionAfterDeath))
		assert.Less(t, report.Results[3].Confidence, report.Results[3].OriginalConfidence)

		assert.Greater(t, report.IssuesByCategory[entities.CategoryType], 0)
		assert.Greater(t, report.IssuesByCategory[entities.CategoryTemporal], 0)
		assert.Greater(t, report.IssuesBySeverity[entities.SeverityError], 0)
		assert.NotEmpty(t, report.Recommendations)
	})

	t.Run("clean batch recommends nothing to fix", func(t *testing.T) {
		reporter, byID := setupReporterTest(2)

		forward := testRel("r-1", "marpa", entities.PredicateTeacherOf, "milarepa")
		backward := testRel("r-2", "milarepa", entities.PredicateStudentOf, "marpa")
		report := reporter.ValidateAll(context.Background(), []*entities.Relationship{forward, backward}, byID)

		assert.Equal(t, 0, report.InvalidRelationships)
		assert.Equal(t, 0, report.TotalIssues)
		assert.Equal(t, []string{"no structural problems detected"}, report.Recommendations)
	})

	t.Run("empty batch", func(t *testing.T) {
		reporter, byID := setupReporterTest(2)

		report := reporter.ValidateAll(context.Background(), nil, byID)
		assert.Equal(t, 0, report.TotalRelationships)
		assert.Empty(t, report.Recommendations)
		assert.Zero(t, report.IssuesByCategory[entities.CategoryType])
	})

	t.Run("cycle detected across batch", func(t *testing.T) {
		reporter, _ := setupReporterTest(4)

		byID := entities.IndexByID([]*entities.Entity{
			testPerson("a", "A", 1000, 1070),
			testPerson("b", "B", 1020, 1090),
			testPerson("c", "C", 1040, 1110),
		})
		set := []*entities.Relationship{
			testRel("r-1", "a", entities.PredicateTeacherOf, "b"),
			testRel("r-2", "b", entities.PredicateTeacherOf, "c"),
			testRel("r-3", "c", entities.PredicateTeacherOf, "a"),
		}

		report := reporter.ValidateAll(context.Background(), set, byID)
		assert.Equal(t, 3, report.InvalidRelationships)
		for _, res := range report.Results {
			assert.True(t, res.HasCode(entities.CodeCircularRelationship), res.RelationshipID)
			assert.Equal(t, 0.0, res.Confidence)
		}
	})

	t.Run("deterministic across runs and worker counts", func(t *testing.T) {
		single, byID := setupReporterTest(1)
		many, _ := setupReporterTest(8)

		set := []*entities.Relationship{
			testRel("r-1", "marpa", entities.PredicateTeacherOf, "milarepa"),
			testRel("r-2", "lhasa", entities.PredicateTeacherOf, "milarepa"),
			testDatedRel("r-3", "marpa", entities.PredicateFounded, "ghost", 1200),
		}

		a := single.ValidateAll(context.Background(), set, byID)
		b := many.ValidateAll(context.Background(), set, byID)

		assert.Equal(t, a.TotalIssues, b.TotalIssues)
		assert.Equal(t, a.InvalidRelationships, b.InvalidRelationships)
		assert.Equal(t, a.IssuesByCategory, b.IssuesByCategory)
		assert.Equal(t, a.Recommendations, b.Recommendations)
		for i := range a.Results {
			assert.Equal(t, a.Results[i].RelationshipID, b.Results[i].RelationshipID)
			assert.Equal(t, a.Results[i].Confidence, b.Results[i].Confidence)
		}
	})

	t.Run("cancelled context reports only the validated prefix", func(t *testing.T) {
		reporter, byID := setupReporterTest(1)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		set := make([]*entities.Relationship, 100)
		for i := range set {
			set[i] = testRel(fmt.Sprintf("r-%d", i), "marpa", entities.PredicateTeacherOf, "milarepa")
		}
		// Every relationship is clean, so any invalid count would expose a
		// placeholder result for work that never ran.
		report := reporter.ValidateAll(ctx, set, byID)
		require.NotNil(t, report)
		assert.Less(t, report.TotalRelationships, 100)
		assert.Equal(t, 0, report.InvalidRelationships)
		require.Len(t, report.Results, report.TotalRelationships)
		for i, res := range report.Results {
			assert.Equal(t, set[i].ID, res.RelationshipID)
			assert.True(t, res.Valid)
		}
	})
}
