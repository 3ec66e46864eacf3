// Package entities contains core domain data structures.
package entities

import "time"

// EntityType categorizes the subjects that can appear in the knowledge graph.
// The set is closed: the schema registry only admits these types.
type EntityType string

const (
	EntityPerson      EntityType = "person"
	EntityPlace       EntityType = "place"
	EntityText        EntityType = "text"
	EntityEvent       EntityType = "event"
	EntityLineage     EntityType = "lineage"
	EntityConcept     EntityType = "concept"
	EntityInstitution EntityType = "institution"
	EntityDeity       EntityType = "deity"
)

// AllEntityTypes lists every valid entity type in declaration order.
var AllEntityTypes = []EntityType{
	EntityPerson,
	EntityPlace,
	EntityText,
	EntityEvent,
	EntityLineage,
	EntityConcept,
	EntityInstitution,
	EntityDeity,
}

// IsValidEntityType reports whether t is one of the closed set of types.
func IsValidEntityType(t EntityType) bool {
	for _, v := range AllEntityTypes {
		if v == t {
			return true
		}
	}
	return false
}

// DatePrecision expresses how firmly a year is known.
type DatePrecision string

const (
	PrecisionExact     DatePrecision = "exact"
	PrecisionCirca     DatePrecision = "circa"
	PrecisionEstimated DatePrecision = "estimated"
	PrecisionDisputed  DatePrecision = "disputed"
	PrecisionUnknown   DatePrecision = "unknown"
)

// Usable reports whether a date with this precision can support temporal
// reasoning. Disputed and unknown dates never fire a temporal rule.
func (p DatePrecision) Usable() bool {
	switch p {
	case PrecisionExact, PrecisionCirca, PrecisionEstimated:
		return true
	default:
		return false
	}
}

// Tolerance returns the slack in years granted before a temporal rule fires
// against a date of this precision.
func (p DatePrecision) Tolerance() int {
	switch p {
	case PrecisionCirca:
		return 10
	case PrecisionEstimated:
		return 25
	default:
		return 0
	}
}

// DateKind names the biographical or compositional date slots an entity may carry.
type DateKind string

const (
	DateBirth    DateKind = "birth"
	DateDeath    DateKind = "death"
	DateComposed DateKind = "composed"
	DateFounded  DateKind = "founded"
	DateOccurred DateKind = "occurred"
)

// DateInfo is a partially-known year attached to an entity or relationship.
type DateInfo struct {
	Year       int           `json:"year"`
	Precision  DatePrecision `json:"precision"`
	Confidence float64       `json:"confidence"`
}

// Usable reports whether this date can participate in temporal checks.
func (d DateInfo) Usable() bool {
	return d.Precision.Usable()
}

// Entity represents a typed subject (person, place, text, ...) supplied by an
// upstream extraction process. Entities are read-only to the validation engine.
type Entity struct {
	ID            string                `json:"id"`
	Type          EntityType            `json:"type"`
	CanonicalName string                `json:"canonical_name"`
	Dates         map[DateKind]DateInfo `json:"dates,omitempty"`
	Confidence    float64               `json:"confidence"`
	Verified      bool                  `json:"verified"`
	Attributes    map[string]any        `json:"attributes,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// Date returns the entity's date of the given kind, if present.
func (e *Entity) Date(kind DateKind) (DateInfo, bool) {
	d, ok := e.Dates[kind]
	return d, ok
}

// UsableYear returns the year of the given kind when it exists with a
// precision firm enough for temporal reasoning.
func (e *Entity) UsableYear(kind DateKind) (int, DatePrecision, bool) {
	d, ok := e.Dates[kind]
	if !ok || !d.Usable() {
		return 0, PrecisionUnknown, false
	}
	return d.Year, d.Precision, true
}

// IndexByID builds the entity lookup the validators consume. Later
// duplicates win, matching the upstream extractor's overwrite semantics.
func IndexByID(list []*Entity) map[string]*Entity {
	byID := make(map[string]*Entity, len(list))
	for _, e := range list {
		byID[e.ID] = e
	}
	return byID
}
