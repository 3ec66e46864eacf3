package services

import "github.com/ersonp/veritas/internal/domain/entities"

// Default penalty factors applied per temporal rule code. A harder
// contradiction (acting after death) is penalized more than a borderline
// one (a teacher a few years younger than their student). Callers can
// override any of these through configuration.
const (
	DefaultPenaltyActionAfterDeath  = 0.4
	DefaultPenaltyActionBeforeBirth = 0.5
	DefaultPenaltyCitesFutureText   = 0.6
	DefaultPenaltyTeacherYounger    = 0.7

	// fallbackPenalty covers temporal codes with no configured factor.
	fallbackPenalty = 0.7

	// confidenceFloor keeps temporal-only violations distinguishable from
	// the hard zero of a type or logical failure.
	confidenceFloor = 0.05
)

// PenaltyFactors maps temporal issue codes to multiplicative penalty factors
// in (0,1).
type PenaltyFactors map[string]float64

// DefaultPenalties returns the hand-tuned default factors.
func DefaultPenalties() PenaltyFactors {
	return PenaltyFactors{
		entities.CodeActionAfterDeath:          DefaultPenaltyActionAfterDeath,
		entities.CodeActionBeforeBirth:         DefaultPenaltyActionBeforeBirth,
		entities.CodeCitesFutureText:           DefaultPenaltyCitesFutureText,
		entities.CodeTeacherYoungerThanStudent: DefaultPenaltyTeacherYounger,
	}
}

// ConfidenceAdjuster folds validation findings into an adjusted confidence
// score. It is a pure function of its inputs: the same issues in any order
// yield the same result.
type ConfidenceAdjuster struct {
	penalties PenaltyFactors
}

// NewConfidenceAdjuster creates an adjuster with the given factors; nil
// selects the defaults.
func NewConfidenceAdjuster(penalties PenaltyFactors) *ConfidenceAdjuster {
	if penalties == nil {
		penalties = DefaultPenalties()
	}
	return &ConfidenceAdjuster{penalties: penalties}
}

// Adjust computes the confidence-adjusted score for a relationship given the
// issues discovered about it. Policy, in priority order:
//
//  1. any type-category error forces exactly 0
//  2. any logical-category error forces exactly 0
//  3. each temporal error multiplies by a rule-specific factor, softened for
//     small magnitudes
//  4. reference warnings never change confidence
//
// The result never exceeds the original.
func (a *ConfidenceAdjuster) Adjust(original float64, issues []entities.ValidationIssue) float64 {
	for _, issue := range issues {
		if issue.Severity != entities.SeverityError {
			continue
		}
		if issue.Category == entities.CategoryType || issue.Category == entities.CategoryLogical {
			return 0
		}
	}

	adjusted := original
	hadTemporal := false
	for _, issue := range issues {
		if issue.Severity != entities.SeverityError || issue.Category != entities.CategoryTemporal {
			continue
		}
		hadTemporal = true
		adjusted *= a.factor(issue)
	}

	if hadTemporal && original > 0 && adjusted < confidenceFloor {
		adjusted = confidenceFloor
	}
	return adjusted
}

// factor resolves the penalty for one temporal issue. Small violations are
// softened toward 1.0: a few years off is weaker evidence of error than a
// decades-wide contradiction.
func (a *ConfidenceAdjuster) factor(issue entities.ValidationIssue) float64 {
	base, ok := a.penalties[issue.Code]
	if !ok {
		base = fallbackPenalty
	}

	if issue.Magnitude > 0 {
		switch {
		case issue.Magnitude <= 5:
			base += 0.2
		case issue.Magnitude <= 15:
			base += 0.1
		}
		if base > 0.9 {
			base = 0.9
		}
	}
	return base
}
