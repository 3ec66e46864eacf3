package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/veritas/internal/domain/entities"
	"github.com/ersonp/veritas/internal/domain/schema"
)

func TestTypeChecker_Check(t *testing.T) {
	checker := NewTypeChecker(schema.Default())

	marpa := testPerson("marpa", "Marpa", 1012, 1097)
	milarepa := testPerson("milarepa", "Milarepa", 1052, 1135)
	lhasa := testPlace("lhasa", "Lhasa")

	t.Run("valid relationship has no issues", func(t *testing.T) {
		rel := testRel("r-1", "marpa", entities.PredicateTeacherOf, "milarepa")
		issues := checker.Check(rel, marpa, milarepa)
		assert.Empty(t, issues)
	})

	t.Run("unknown predicate", func(t *testing.T) {
		rel := testRel("r-2", "marpa", "apprenticed_under", "milarepa")
		issues := checker.Check(rel, marpa, milarepa)
		require.Len(t, issues, 1)
		assert.Equal(t, entities.CodeUnknownPredicate, issues[0].Code)
		assert.Equal(t, entities.SeverityError, issues[0].Severity)
		assert.Equal(t, entities.CategoryType, issues[0].Category)
	})

	t.Run("missing subject entity", func(t *testing.T) {
		rel := testRel("r-3", "ghost", entities.PredicateTeacherOf, "milarepa")
		issues := checker.Check(rel, nil, milarepa)
		require.Len(t, issues, 1)
		assert.Equal(t, entities.CodeMissingSubjectEntity, issues[0].Code)
	})

	t.Run("missing both entities", func(t *testing.T) {
		rel := testRel("r-4", "ghost", entities.PredicateTeacherOf, "phantom")
		issues := checker.Check(rel, nil, nil)
		require.Len(t, issues, 2)
		assert.Equal(t, entities.CodeMissingSubjectEntity, issues[0].Code)
		assert.Equal(t, entities.CodeMissingObjectEntity, issues[1].Code)
	})

	t.Run("invalid subject type", func(t *testing.T) {
		rel := testRel("r-5", "lhasa", entities.PredicateTeacherOf, "milarepa")
		issues := checker.Check(rel, lhasa, milarepa)
		require.Len(t, issues, 1)
		assert.Equal(t, entities.CodeInvalidSubjectType, issues[0].Code)
		assert.Contains(t, issues[0].Message, "teacher_of")
	})

	t.Run("invalid object type", func(t *testing.T) {
		rel := testRel("r-6", "marpa", entities.PredicateTeacherOf, "lhasa")
		issues := checker.Check(rel, marpa, lhasa)
		require.Len(t, issues, 1)
		assert.Equal(t, entities.CodeInvalidObjectType, issues[0].Code)
	})

	t.Run("both types invalid reports both", func(t *testing.T) {
		text := testText("tantra", "Hevajra Tantra", 900)
		rel := testRel("r-7", "lhasa", entities.PredicateTeacherOf, "tantra")
		issues := checker.Check(rel, lhasa, text)
		require.Len(t, issues, 2)
		assert.Equal(t, entities.CodeInvalidSubjectType, issues[0].Code)
		assert.Equal(t, entities.CodeInvalidObjectType, issues[1].Code)
	})
}
