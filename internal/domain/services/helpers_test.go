package services

import (
	"github.com/ersonp/veritas/internal/domain/entities"
)

// Test fixture builders shared by the checker tests.

func testPerson(id, name string, birth, death int) *entities.Entity {
	e := &entities.Entity{
		ID:            id,
		Type:          entities.EntityPerson,
		CanonicalName: name,
		Confidence:    0.9,
		Dates:         make(map[entities.DateKind]entities.DateInfo),
	}
	if birth != 0 {
		e.Dates[entities.DateBirth] = entities.DateInfo{Year: birth, Precision: entities.PrecisionExact, Confidence: 0.9}
	}
	if death != 0 {
		e.Dates[entities.DateDeath] = entities.DateInfo{Year: death, Precision: entities.PrecisionExact, Confidence: 0.9}
	}
	return e
}

func testText(id, name string, composed int) *entities.Entity {
	e := &entities.Entity{
		ID:            id,
		Type:          entities.EntityText,
		CanonicalName: name,
		Confidence:    0.9,
		Dates:         make(map[entities.DateKind]entities.DateInfo),
	}
	if composed != 0 {
		e.Dates[entities.DateComposed] = entities.DateInfo{Year: composed, Precision: entities.PrecisionExact, Confidence: 0.9}
	}
	return e
}

func testPlace(id, name string) *entities.Entity {
	return &entities.Entity{
		ID:            id,
		Type:          entities.EntityPlace,
		CanonicalName: name,
		Confidence:    0.9,
	}
}

func testRel(id, subject string, predicate entities.Predicate, object string) *entities.Relationship {
	return &entities.Relationship{
		ID:         id,
		SubjectID:  subject,
		Predicate:  predicate,
		ObjectID:   object,
		Confidence: 0.8,
	}
}

func testDatedRel(id, subject string, predicate entities.Predicate, object string, year int) *entities.Relationship {
	rel := testRel(id, subject, predicate, object)
	rel.Properties = map[string]any{entities.PropertyYear: year}
	return rel
}
