// Package handlers bridges the CLI to the domain services.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/veritas/internal/domain/entities"
	"github.com/ersonp/veritas/internal/domain/ports"
	"github.com/ersonp/veritas/internal/domain/services"
)

// ValidationHandler handles snapshot validation operations.
type ValidationHandler struct {
	validator *services.RelationshipValidator
	reporter  *services.BatchValidationReporter
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(validator *services.RelationshipValidator, reporter *services.BatchValidationReporter) *ValidationHandler {
	return &ValidationHandler{
		validator: validator,
		reporter:  reporter,
	}
}

// HandleReport validates the whole snapshot and returns the aggregate report.
func (h *ValidationHandler) HandleReport(ctx context.Context, source ports.SnapshotSource) (*entities.ValidationReport, error) {
	entitiesByID, relationships, err := h.loadSnapshot(ctx, source)
	if err != nil {
		return nil, err
	}
	return h.reporter.ValidateAll(ctx, relationships, entitiesByID), nil
}

// HandleValidateOne validates a single relationship by ID. The full
// relationship set is still supplied so cycle and cross-reference checks see
// the whole graph.
func (h *ValidationHandler) HandleValidateOne(ctx context.Context, source ports.SnapshotSource, relationshipID string) (*entities.ValidationResult, error) {
	entitiesByID, relationships, err := h.loadSnapshot(ctx, source)
	if err != nil {
		return nil, err
	}

	for _, rel := range relationships {
		if rel.ID == relationshipID {
			result := h.validator.Validate(rel, entitiesByID, relationships)
			return &result, nil
		}
	}
	return nil, fmt.Errorf("relationship not found: %s", relationshipID)
}

// HandleSuggestions validates the whole snapshot and returns only the
// auto-fixable suggestions, for downstream application.
func (h *ValidationHandler) HandleSuggestions(ctx context.Context, source ports.SnapshotSource) ([]entities.Suggestion, error) {
	report, err := h.HandleReport(ctx, source)
	if err != nil {
		return nil, err
	}

	var suggestions []entities.Suggestion
	for i := range report.Results {
		suggestions = append(suggestions, report.Results[i].Suggestions...)
	}
	return suggestions, nil
}

// loadSnapshot reads the snapshot and builds the entity lookup.
func (h *ValidationHandler) loadSnapshot(ctx context.Context, source ports.SnapshotSource) (map[string]*entities.Entity, []*entities.Relationship, error) {
	entityList, err := source.Entities(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading entities: %w", err)
	}
	relationships, err := source.Relationships(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading relationships: %w", err)
	}
	return entities.IndexByID(entityList), relationships, nil
}
