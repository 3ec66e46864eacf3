package entities

import (
	"errors"
	"time"
)

// Validation errors for malformed records. These signal unusable input (no
// IDs at all), not domain findings; domain findings are ValidationIssues.
var (
	ErrEmptyID        = errors.New("id cannot be empty")
	ErrEmptySubjectID = errors.New("subject_id cannot be empty")
	ErrEmptyObjectID  = errors.New("object_id cannot be empty")
	ErrEmptyPredicate = errors.New("predicate cannot be empty")
)

// Predicate is the labeled, directed kind of a relationship edge.
type Predicate string

// Person-to-person predicates.
const (
	PredicateTeacherOf        Predicate = "teacher_of"
	PredicateStudentOf        Predicate = "student_of"
	PredicateParentOf         Predicate = "parent_of"
	PredicateChildOf          Predicate = "child_of"
	PredicateSiblingOf        Predicate = "sibling_of"
	PredicateSpouseOf         Predicate = "spouse_of"
	PredicateDebatedWith      Predicate = "debated_with"
	PredicateCorrespondedWith Predicate = "corresponded_with"
	PredicateContemporaryWith Predicate = "contemporary_with"
	PredicateRivalOf          Predicate = "rival_of"
)

// Authorship and textual predicates.
const (
	PredicateWrote         Predicate = "wrote"
	PredicateWrittenBy     Predicate = "written_by"
	PredicateTranslated    Predicate = "translated"
	PredicateCompiled      Predicate = "compiled"
	PredicateEdited        Predicate = "edited"
	PredicateStudied       Predicate = "studied"
	PredicateCites         Predicate = "cites"
	PredicateCommentaryOn  Predicate = "commentary_on"
	PredicateTranslationOf Predicate = "translation_of"
	PredicateDiscusses     Predicate = "discusses"
)

// Geographic and institutional predicates.
const (
	PredicateLivedAt    Predicate = "lived_at"
	PredicateBornIn     Predicate = "born_in"
	PredicateDiedIn     Predicate = "died_in"
	PredicateTraveledTo Predicate = "traveled_to"
	PredicateStudiedAt  Predicate = "studied_at"
	PredicateMemberOf   Predicate = "member_of"
	PredicatePatronOf   Predicate = "patron_of"
	PredicateFounded    Predicate = "founded"
	PredicateFoundedBy  Predicate = "founded_by"
	PredicateWithin     Predicate = "within"
	PredicateNear       Predicate = "near"
	PredicatePartOf     Predicate = "part_of"
	PredicateLocatedIn  Predicate = "located_in"
)

// Lineage, event, and doctrinal predicates.
const (
	PredicateReceivedTransmission Predicate = "received_transmission"
	PredicateHoldsLineage         Predicate = "holds_lineage"
	PredicateBranchOf             Predicate = "branch_of"
	PredicateParticipatedIn       Predicate = "participated_in"
	PredicatePresidedOver         Predicate = "presided_over"
	PredicateOccurredAt           Predicate = "occurred_at"
	PredicatePreceded             Predicate = "preceded"
	PredicateHadVisionOf          Predicate = "had_vision_of"
	PredicateDevotedTo            Predicate = "devoted_to"
	PredicateExpounded            Predicate = "expounded"
)

// Property keys recognized on relationships. A relationship-level date is
// stored in Properties under these keys by the upstream extractor.
const (
	PropertyYear           = "year"
	PropertyDatePrecision  = "date_precision"
	PropertyDateConfidence = "date_confidence"
)

// Provenance records where a relationship claim came from.
type Provenance struct {
	SourceQuote string `json:"source_quote,omitempty"`
	Document    string `json:"document,omitempty"`
	Page        int    `json:"page,omitempty"`
}

// Relationship represents a directed, typed edge between two entities.
// Records are supplied externally and never mutated by the validation engine;
// the engine only suggests revised confidence values and additional edges.
type Relationship struct {
	ID         string         `json:"id"`
	SubjectID  string         `json:"subject_id"`
	Predicate  Predicate      `json:"predicate"`
	ObjectID   string         `json:"object_id"`
	Properties map[string]any `json:"properties,omitempty"`
	Confidence float64        `json:"confidence"`
	Verified   bool           `json:"verified"`
	Provenance Provenance     `json:"provenance,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Validate checks that the relationship carries the fields every record needs.
func (r *Relationship) Validate() error {
	if r.ID == "" {
		return ErrEmptyID
	}
	if r.SubjectID == "" {
		return ErrEmptySubjectID
	}
	if r.ObjectID == "" {
		return ErrEmptyObjectID
	}
	if r.Predicate == "" {
		return ErrEmptyPredicate
	}
	return nil
}

// Date extracts the relationship-level date from Properties, if one exists.
// Values may arrive as JSON-decoded float64 or as native ints.
func (r *Relationship) Date() (DateInfo, bool) {
	raw, ok := r.Properties[PropertyYear]
	if !ok {
		return DateInfo{}, false
	}

	year, ok := asInt(raw)
	if !ok {
		return DateInfo{}, false
	}

	info := DateInfo{Year: year, Precision: PrecisionExact, Confidence: 1.0}
	if p, ok := r.Properties[PropertyDatePrecision].(string); ok && p != "" {
		info.Precision = DatePrecision(p)
	}
	if c, ok := asFloat(r.Properties[PropertyDateConfidence]); ok {
		info.Confidence = c
	}
	return info, true
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
