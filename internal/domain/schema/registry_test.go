package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/veritas/internal/domain/entities"
)

func TestDefault_Size(t *testing.T) {
	r := Default()
	assert.Equal(t, 43, r.Len())
	assert.Len(t, r.Predicates(), r.Len())
}

func TestDefault_InverseSymmetry(t *testing.T) {
	r := Default()
	for _, s := range r.Predicates() {
		if !s.Bidirectional {
			continue
		}
		t.Run(string(s.Predicate), func(t *testing.T) {
			inverse, ok := r.InverseOf(s.Predicate)
			require.True(t, ok)

			if s.Symmetric {
				assert.Equal(t, s.Predicate, inverse)
				return
			}

			// The inverse of the inverse must lead back.
			back, ok := r.InverseOf(inverse)
			require.True(t, ok)
			assert.Equal(t, s.Predicate, back)
			assert.NotEqual(t, s.Predicate, inverse)
		})
	}
}

func TestDefault_KnownPairs(t *testing.T) {
	r := Default()

	pairs := map[entities.Predicate]entities.Predicate{
		entities.PredicateTeacherOf: entities.PredicateStudentOf,
		entities.PredicateParentOf:  entities.PredicateChildOf,
		entities.PredicateWrote:     entities.PredicateWrittenBy,
		entities.PredicateFounded:   entities.PredicateFoundedBy,
	}
	for p, want := range pairs {
		inverse, ok := r.InverseOf(p)
		require.True(t, ok, string(p))
		assert.Equal(t, want, inverse, string(p))
	}

	symmetric := []entities.Predicate{
		entities.PredicateSiblingOf,
		entities.PredicateSpouseOf,
		entities.PredicateDebatedWith,
		entities.PredicateCorrespondedWith,
		entities.PredicateContemporaryWith,
		entities.PredicateRivalOf,
		entities.PredicateNear,
	}
	for _, p := range symmetric {
		s, err := r.Lookup(p)
		require.NoError(t, err, string(p))
		assert.True(t, s.Symmetric, string(p))
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := Default()

	s, err := r.Lookup(entities.PredicateTeacherOf)
	require.NoError(t, err)
	assert.Equal(t, entities.PredicateTeacherOf, s.Predicate)
	assert.True(t, s.Acyclic)

	_, err = r.Lookup("owns_a_yacht")
	assert.ErrorIs(t, err, ErrUnknownPredicate)
}

func TestRegistry_CheckTypes(t *testing.T) {
	r := Default()

	tests := []struct {
		name      string
		predicate entities.Predicate
		subject   entities.EntityType
		object    entities.EntityType
		ok        bool
	}{
		{"teacher_of person person", entities.PredicateTeacherOf, entities.EntityPerson, entities.EntityPerson, true},
		{"teacher_of place subject", entities.PredicateTeacherOf, entities.EntityPlace, entities.EntityPerson, false},
		{"wrote person text", entities.PredicateWrote, entities.EntityPerson, entities.EntityText, true},
		{"wrote person place", entities.PredicateWrote, entities.EntityPerson, entities.EntityPlace, false},
		{"founded person institution", entities.PredicateFounded, entities.EntityPerson, entities.EntityInstitution, true},
		{"within place place", entities.PredicateWithin, entities.EntityPlace, entities.EntityPlace, true},
		{"cites text text", entities.PredicateCites, entities.EntityText, entities.EntityText, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mismatch, err := r.CheckTypes(tt.predicate, tt.subject, tt.object)
			require.NoError(t, err)
			if tt.ok {
				assert.Nil(t, mismatch)
			} else {
				require.NotNil(t, mismatch)
				assert.False(t, mismatch.SubjectOK && mismatch.ObjectOK)
			}
		})
	}

	t.Run("unknown predicate", func(t *testing.T) {
		_, err := r.CheckTypes("owns_a_yacht", entities.EntityPerson, entities.EntityPerson)
		assert.ErrorIs(t, err, ErrUnknownPredicate)
	})
}

func TestRegistry_PredicatesStableOrder(t *testing.T) {
	r := Default()
	first := r.Predicates()
	second := r.Predicates()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Predicate, second[i].Predicate)
	}
}
