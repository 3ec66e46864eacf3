package entities

// Severity grades a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category groups validation findings by the checker that produced them.
type Category string

const (
	CategoryType      Category = "type"
	CategoryTemporal  Category = "temporal"
	CategoryLogical   Category = "logical"
	CategoryReference Category = "reference"
)

// AllCategories lists categories in report iteration order.
var AllCategories = []Category{
	CategoryType,
	CategoryTemporal,
	CategoryLogical,
	CategoryReference,
}

// AllSeverities lists severities in report iteration order.
var AllSeverities = []Severity{SeverityError, SeverityWarning}

// Issue codes emitted by the checkers. Every rejection carries exactly one of
// these machine-readable codes.
const (
	CodeUnknownPredicate          = "UNKNOWN_PREDICATE"
	CodeMissingSubjectEntity      = "MISSING_SUBJECT_ENTITY"
	CodeMissingObjectEntity       = "MISSING_OBJECT_ENTITY"
	CodeInvalidSubjectType        = "INVALID_SUBJECT_TYPE"
	CodeInvalidObjectType         = "INVALID_OBJECT_TYPE"
	CodeSelfRelationship          = "SELF_RELATIONSHIP"
	CodeCircularRelationship      = "CIRCULAR_RELATIONSHIP"
	CodeActionBeforeBirth         = "ACTION_BEFORE_BIRTH"
	CodeActionAfterDeath          = "ACTION_AFTER_DEATH"
	CodeTeacherYoungerThanStudent = "TEACHER_YOUNGER_THAN_STUDENT"
	CodeCitesFutureText           = "CITES_FUTURE_TEXT"
	CodeMissingInverse            = "MISSING_INVERSE_RELATIONSHIP"
)

// ValidationIssue is a single machine-readable finding about a relationship.
type ValidationIssue struct {
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	AutoFixable bool     `json:"auto_fixable"`
	// Magnitude carries the size of a temporal violation in years, when the
	// rule can quantify it. Zero otherwise.
	Magnitude int `json:"magnitude,omitempty"`
}

// SuggestionKind names the corrective actions the engine can propose.
type SuggestionKind string

const (
	// SuggestionAddRelationship proposes creating a missing edge, typically
	// the inverse of a bidirectional relationship.
	SuggestionAddRelationship SuggestionKind = "add_relationship"
)

// Suggestion is a concrete corrective action proposed by the engine. It is
// plain data: callers decide whether to apply it, the engine never does.
type Suggestion struct {
	Kind         SuggestionKind `json:"kind"`
	Relationship *Relationship  `json:"relationship,omitempty"`
	AutoApply    bool           `json:"auto_apply"`
	Reason       string         `json:"reason,omitempty"`
}

// ValidationResult is the complete, explainable verdict for one relationship.
type ValidationResult struct {
	RelationshipID     string            `json:"relationship_id"`
	Valid              bool              `json:"valid"`
	Issues             []ValidationIssue `json:"issues"`
	Warnings           []ValidationIssue `json:"warnings"`
	Suggestions        []Suggestion      `json:"suggestions,omitempty"`
	Confidence         float64           `json:"confidence"`
	OriginalConfidence float64           `json:"original_confidence"`
}

// AddIssue routes a finding into Issues or Warnings by severity.
func (r *ValidationResult) AddIssue(issue ValidationIssue) {
	if issue.Severity == SeverityWarning {
		r.Warnings = append(r.Warnings, issue)
		return
	}
	r.Issues = append(r.Issues, issue)
}

// HasCode reports whether any issue or warning carries the given code.
func (r *ValidationResult) HasCode(code string) bool {
	for _, i := range r.Issues {
		if i.Code == code {
			return true
		}
	}
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// ValidationReport aggregates batch validation over a relationship set.
type ValidationReport struct {
	TotalRelationships   int                `json:"total_relationships"`
	InvalidRelationships int                `json:"invalid_relationships"`
	TotalIssues          int                `json:"total_issues"`
	IssuesByCategory     map[Category]int   `json:"issues_by_category"`
	IssuesBySeverity     map[Severity]int   `json:"issues_by_severity"`
	Recommendations      []string           `json:"recommendations"`
	Results              []ValidationResult `json:"results"`
}
