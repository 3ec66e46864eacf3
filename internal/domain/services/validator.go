package services

import (
	"github.com/ersonp/veritas/internal/domain/entities"
	"github.com/ersonp/veritas/internal/domain/schema"
)

// RelationshipValidator runs every checker over one relationship and
// assembles a complete ValidationResult.
//
// Checkers run unconditionally in a fixed order (type, temporal, logical,
// cross-reference): cheap failures never short-circuit expensive checks,
// because callers need every finding, not just the first. The temporal
// checker alone is skipped when an entity ID does not resolve, since it has
// nothing to reason over.
type RelationshipValidator struct {
	registry *schema.Registry
	types    *TypeChecker
	temporal *TemporalChecker
	adjuster *ConfidenceAdjuster
}

// NewRelationshipValidator creates a validator. A nil adjuster selects the
// default penalty factors.
func NewRelationshipValidator(registry *schema.Registry, adjuster *ConfidenceAdjuster) *RelationshipValidator {
	if adjuster == nil {
		adjuster = NewConfidenceAdjuster(nil)
	}
	return &RelationshipValidator{
		registry: registry,
		types:    NewTypeChecker(registry),
		temporal: NewTemporalChecker(),
		adjuster: adjuster,
	}
}

// Validate checks one relationship against the entity snapshot. When
// allRelationships is non-nil, cycle detection and cross-reference checks see
// the whole graph; when nil, both are skipped rather than false-flagging.
func (v *RelationshipValidator) Validate(
	rel *entities.Relationship,
	entitiesByID map[string]*entities.Entity,
	allRelationships []*entities.Relationship,
) entities.ValidationResult {
	logical := NewLogicalChecker(v.registry, allRelationships)
	crossref := NewCrossRefChecker(v.registry, allRelationships)
	return v.validateWith(rel, entitiesByID, logical, crossref)
}

// validateWith runs the checkers using pre-built logical and cross-reference
// checkers, letting batch runs share their subgraph indexes.
func (v *RelationshipValidator) validateWith(
	rel *entities.Relationship,
	entitiesByID map[string]*entities.Entity,
	logical *LogicalChecker,
	crossref *CrossRefChecker,
) entities.ValidationResult {
	result := entities.ValidationResult{
		RelationshipID:     rel.ID,
		OriginalConfidence: rel.Confidence,
	}

	subject := entitiesByID[rel.SubjectID]
	object := entitiesByID[rel.ObjectID]

	for _, issue := range v.types.Check(rel, subject, object) {
		result.AddIssue(issue)
	}

	if subject != nil && object != nil {
		for _, issue := range v.temporal.Check(rel, subject, object) {
			result.AddIssue(issue)
		}
	}

	for _, issue := range logical.Check(rel) {
		result.AddIssue(issue)
	}

	refIssues, suggestions := crossref.Check(rel)
	for _, issue := range refIssues {
		result.AddIssue(issue)
	}
	result.Suggestions = append(result.Suggestions, suggestions...)

	result.Valid = len(result.Issues) == 0
	result.Confidence = v.adjuster.Adjust(rel.Confidence, result.Issues)

	return result
}
