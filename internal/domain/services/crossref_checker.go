package services

import (
	"fmt"
	"time"

	"github.com/ersonp/veritas/internal/domain/entities"
	"github.com/ersonp/veritas/internal/domain/schema"
	"github.com/google/uuid"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// CrossRefChecker detects missing inverse edges for bidirectional,
// non-symmetric predicates and proposes auto-fixable suggestions carrying the
// fully-formed inverse. Symmetric predicates are exempt: one edge states the
// relation for both parties.
//
// Findings are advisory only: an absent inverse usually reflects an
// incomplete extraction rather than a logical error, so they never affect
// validity or confidence. A checker built without the full relationship set
// skips silently rather than false-flagging.
type CrossRefChecker struct {
	registry *schema.Registry
	// present indexes subject|predicate|object triples of the full set.
	present map[tripleKey]bool
	enabled bool
}

type tripleKey struct {
	subject   string
	predicate entities.Predicate
	object    string
}

// NewCrossRefChecker creates a checker over the supplied relationship set.
// A nil set disables the checker.
func NewCrossRefChecker(registry *schema.Registry, relationships []*entities.Relationship) *CrossRefChecker {
	c := &CrossRefChecker{
		registry: registry,
		enabled:  relationships != nil,
	}
	if !c.enabled {
		return c
	}
	c.present = make(map[tripleKey]bool, len(relationships))
	for _, rel := range relationships {
		c.present[tripleKey{rel.SubjectID, rel.Predicate, rel.ObjectID}] = true
	}
	return c
}

// Check returns reference-category warnings and suggestions for the
// relationship.
func (c *CrossRefChecker) Check(rel *entities.Relationship) ([]entities.ValidationIssue, []entities.Suggestion) {
	if !c.enabled {
		return nil, nil
	}
	predSchema, err := c.registry.Lookup(rel.Predicate)
	if err != nil || !predSchema.Bidirectional || predSchema.Symmetric {
		// A symmetric edge carries its own inverse; only paired predicates
		// expect a distinct partner edge.
		return nil, nil
	}

	inverse := predSchema.Inverse
	if c.present[tripleKey{rel.ObjectID, inverse, rel.SubjectID}] {
		return nil, nil
	}

	issue := entities.ValidationIssue{
		Severity:    entities.SeverityWarning,
		Category:    entities.CategoryReference,
		Code:        entities.CodeMissingInverse,
		AutoFixable: true,
		Message: fmt.Sprintf("bidirectional %s has no %s edge from %q back to %q",
			rel.Predicate, inverse, rel.ObjectID, rel.SubjectID),
	}

	suggestion := entities.Suggestion{
		Kind:         entities.SuggestionAddRelationship,
		AutoApply:    true,
		Relationship: c.buildInverse(rel, inverse),
		Reason:       fmt.Sprintf("complete the bidirectional %s/%s pair", rel.Predicate, inverse),
	}

	return []entities.ValidationIssue{issue}, []entities.Suggestion{suggestion}
}

// buildInverse assembles the proposed inverse edge. It inherits the
// original's confidence, date properties, and provenance, so applying it
// preserves the evidence trail of the edge it mirrors.
func (c *CrossRefChecker) buildInverse(rel *entities.Relationship, inverse entities.Predicate) *entities.Relationship {
	now := timeNow()

	var props map[string]any
	if len(rel.Properties) > 0 {
		props = make(map[string]any, len(rel.Properties))
		for k, v := range rel.Properties {
			props[k] = v
		}
	}

	return &entities.Relationship{
		ID:         uuid.New().String(),
		SubjectID:  rel.ObjectID,
		Predicate:  inverse,
		ObjectID:   rel.SubjectID,
		Properties: props,
		Confidence: rel.Confidence,
		Provenance: rel.Provenance,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
