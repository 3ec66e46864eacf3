package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEntityType(t *testing.T) {
	for _, et := range AllEntityTypes {
		assert.True(t, IsValidEntityType(et), string(et))
	}
	assert.False(t, IsValidEntityType("dragon"))
	assert.False(t, IsValidEntityType(""))
}

func TestDatePrecision_Usable(t *testing.T) {
	assert.True(t, PrecisionExact.Usable())
	assert.True(t, PrecisionCirca.Usable())
	assert.True(t, PrecisionEstimated.Usable())
	assert.False(t, PrecisionDisputed.Usable())
	assert.False(t, PrecisionUnknown.Usable())
	assert.False(t, DatePrecision("").Usable())
}

func TestDatePrecision_Tolerance(t *testing.T) {
	assert.Equal(t, 0, PrecisionExact.Tolerance())
	assert.Equal(t, 10, PrecisionCirca.Tolerance())
	assert.Equal(t, 25, PrecisionEstimated.Tolerance())
	assert.Equal(t, 0, PrecisionDisputed.Tolerance())
}

func TestEntity_UsableYear(t *testing.T) {
	e := &Entity{
		ID:   "p-1",
		Type: EntityPerson,
		Dates: map[DateKind]DateInfo{
			DateBirth: {Year: 1017, Precision: PrecisionExact, Confidence: 0.9},
			DateDeath: {Year: 1137, Precision: PrecisionDisputed, Confidence: 0.3},
		},
	}

	t.Run("usable date", func(t *testing.T) {
		year, precision, ok := e.UsableYear(DateBirth)
		require.True(t, ok)
		assert.Equal(t, 1017, year)
		assert.Equal(t, PrecisionExact, precision)
	})

	t.Run("disputed is not usable", func(t *testing.T) {
		_, _, ok := e.UsableYear(DateDeath)
		assert.False(t, ok)
	})

	t.Run("missing kind", func(t *testing.T) {
		_, _, ok := e.UsableYear(DateComposed)
		assert.False(t, ok)
	})

	t.Run("nil dates map", func(t *testing.T) {
		empty := &Entity{ID: "p-2", Type: EntityPerson}
		_, _, ok := empty.UsableYear(DateBirth)
		assert.False(t, ok)
	})
}

func TestIndexByID(t *testing.T) {
	list := []*Entity{
		{ID: "a", Type: EntityPerson},
		{ID: "b", Type: EntityText},
	}
	byID := IndexByID(list)
	require.Len(t, byID, 2)
	assert.Same(t, list[0], byID["a"])
	assert.Same(t, list[1], byID["b"])
	assert.Nil(t, byID["missing"])
}

func TestRelationship_Validate(t *testing.T) {
	valid := &Relationship{ID: "r-1", SubjectID: "a", Predicate: PredicateTeacherOf, ObjectID: "b"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		rel  Relationship
		want error
	}{
		{"empty id", Relationship{SubjectID: "a", Predicate: PredicateTeacherOf, ObjectID: "b"}, ErrEmptyID},
		{"empty subject", Relationship{ID: "r", Predicate: PredicateTeacherOf, ObjectID: "b"}, ErrEmptySubjectID},
		{"empty predicate", Relationship{ID: "r", SubjectID: "a", ObjectID: "b"}, ErrEmptyPredicate},
		{"empty object", Relationship{ID: "r", SubjectID: "a", Predicate: PredicateTeacherOf}, ErrEmptyObjectID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.rel.Validate(), tt.want)
		})
	}
}

func TestRelationship_Date(t *testing.T) {
	t.Run("no properties", func(t *testing.T) {
		rel := &Relationship{ID: "r", SubjectID: "a", Predicate: PredicateFounded, ObjectID: "b"}
		_, ok := rel.Date()
		assert.False(t, ok)
	})

	t.Run("int year", func(t *testing.T) {
		rel := &Relationship{
			ID: "r", SubjectID: "a", Predicate: PredicateFounded, ObjectID: "b",
			Properties: map[string]any{PropertyYear: 1073},
		}
		d, ok := rel.Date()
		require.True(t, ok)
		assert.Equal(t, 1073, d.Year)
		assert.Equal(t, PrecisionExact, d.Precision)
	})

	t.Run("json decoded float year with precision", func(t *testing.T) {
		// encoding/json decodes numbers into float64.
		rel := &Relationship{
			ID: "r", SubjectID: "a", Predicate: PredicateFounded, ObjectID: "b",
			Properties: map[string]any{
				PropertyYear:           float64(1073),
				PropertyDatePrecision:  "circa",
				PropertyDateConfidence: 0.8,
			},
		}
		d, ok := rel.Date()
		require.True(t, ok)
		assert.Equal(t, 1073, d.Year)
		assert.Equal(t, PrecisionCirca, d.Precision)
		assert.InDelta(t, 0.8, d.Confidence, 1e-9)
	})

	t.Run("non numeric year", func(t *testing.T) {
		rel := &Relationship{
			ID: "r", SubjectID: "a", Predicate: PredicateFounded, ObjectID: "b",
			Properties: map[string]any{PropertyYear: "eleventh century"},
		}
		_, ok := rel.Date()
		assert.False(t, ok)
	})
}

func TestValidationResult_AddIssue(t *testing.T) {
	result := &ValidationResult{RelationshipID: "r-1"}

	result.AddIssue(ValidationIssue{Severity: SeverityError, Category: CategoryType, Code: CodeInvalidSubjectType})
	result.AddIssue(ValidationIssue{Severity: SeverityWarning, Category: CategoryReference, Code: CodeMissingInverse})

	assert.Len(t, result.Issues, 1)
	assert.Len(t, result.Warnings, 1)
	assert.True(t, result.HasCode(CodeInvalidSubjectType))
	assert.True(t, result.HasCode(CodeMissingInverse))
	assert.False(t, result.HasCode(CodeSelfRelationship))
}
