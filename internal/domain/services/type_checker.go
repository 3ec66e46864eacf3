// Package services implements the relationship validation engine: the
// individual constraint checkers, the confidence adjustment policy, the
// per-relationship validator facade, and the batch reporter.
package services

import (
	"fmt"

	"github.com/ersonp/veritas/internal/domain/entities"
	"github.com/ersonp/veritas/internal/domain/schema"
)

// TypeChecker verifies that a relationship's subject and object entity types
// are legal for its predicate. Unknown predicates and unresolved entity IDs
// are reported here too: both mean the relationship cannot exist as modeled.
type TypeChecker struct {
	registry *schema.Registry
}

// NewTypeChecker creates a new TypeChecker.
func NewTypeChecker(registry *schema.Registry) *TypeChecker {
	return &TypeChecker{registry: registry}
}

// Check returns type-category findings for the relationship. The subject and
// object may be nil when the entity ID did not resolve against the snapshot.
func (c *TypeChecker) Check(rel *entities.Relationship, subject, object *entities.Entity) []entities.ValidationIssue {
	var issues []entities.ValidationIssue

	predSchema, err := c.registry.Lookup(rel.Predicate)
	if err != nil {
		issues = append(issues, entities.ValidationIssue{
			Severity: entities.SeverityError,
			Category: entities.CategoryType,
			Code:     entities.CodeUnknownPredicate,
			Message:  fmt.Sprintf("predicate %q is not in the schema registry", rel.Predicate),
		})
		return issues
	}

	if subject == nil {
		issues = append(issues, entities.ValidationIssue{
			Severity: entities.SeverityError,
			Category: entities.CategoryType,
			Code:     entities.CodeMissingSubjectEntity,
			Message:  fmt.Sprintf("subject entity %q not found in snapshot", rel.SubjectID),
		})
	}
	if object == nil {
		issues = append(issues, entities.ValidationIssue{
			Severity: entities.SeverityError,
			Category: entities.CategoryType,
			Code:     entities.CodeMissingObjectEntity,
			Message:  fmt.Sprintf("object entity %q not found in snapshot", rel.ObjectID),
		})
	}
	if subject == nil || object == nil {
		return issues
	}

	if !predSchema.AllowsSubject(subject.Type) {
		issues = append(issues, entities.ValidationIssue{
			Severity: entities.SeverityError,
			Category: entities.CategoryType,
			Code:     entities.CodeInvalidSubjectType,
			Message: fmt.Sprintf("%s requires subject of type %v, got %s (%s)",
				rel.Predicate, predSchema.SubjectTypes, subject.Type, subject.CanonicalName),
		})
	}
	if !predSchema.AllowsObject(object.Type) {
		issues = append(issues, entities.ValidationIssue{
			Severity: entities.SeverityError,
			Category: entities.CategoryType,
			Code:     entities.CodeInvalidObjectType,
			Message: fmt.Sprintf("%s requires object of type %v, got %s (%s)",
				rel.Predicate, predSchema.ObjectTypes, object.Type, object.CanonicalName),
		})
	}

	return issues
}
