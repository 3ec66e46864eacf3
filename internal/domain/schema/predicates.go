package schema

import "github.com/ersonp/veritas/internal/domain/entities"

// Shorthand type sets used by the schema table.
var (
	persons      = []entities.EntityType{entities.EntityPerson}
	places       = []entities.EntityType{entities.EntityPlace}
	texts        = []entities.EntityType{entities.EntityText}
	events       = []entities.EntityType{entities.EntityEvent}
	lineages     = []entities.EntityType{entities.EntityLineage}
	institutions = []entities.EntityType{entities.EntityInstitution}
	deities      = []entities.EntityType{entities.EntityDeity}

	orgs          = []entities.EntityType{entities.EntityInstitution, entities.EntityLineage}
	residences    = []entities.EntityType{entities.EntityPlace, entities.EntityInstitution}
	studyMatter   = []entities.EntityType{entities.EntityText, entities.EntityConcept}
	patronTargets = []entities.EntityType{entities.EntityInstitution, entities.EntityPerson}
	transmissions = []entities.EntityType{entities.EntityLineage, entities.EntityText, entities.EntityPerson}
	concepts      = []entities.EntityType{entities.EntityConcept}
	collectives   = []entities.EntityType{entities.EntityPerson, entities.EntityInstitution, entities.EntityLineage}
	composites    = []entities.EntityType{entities.EntityText, entities.EntityPlace, entities.EntityInstitution, entities.EntityLineage}
	topics        = []entities.EntityType{entities.EntityConcept, entities.EntityDeity, entities.EntityPerson, entities.EntityPlace, entities.EntityEvent}
	venues        = []entities.EntityType{entities.EntityPlace, entities.EntityInstitution}
)

// schemaTable is the full predicate contract table. Entries are grouped as:
// explicit bidirectional pairs, symmetric predicates, then one-way predicates.
var schemaTable = []PredicateSchema{
	// Bidirectional pairs. Each direction is a distinct entry; the
	// cross-reference checker expects both edges to exist.
	{
		Predicate:     entities.PredicateTeacherOf,
		SubjectTypes:  persons,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateStudentOf,
		Acyclic:       true,
		Description:   "Subject taught the object",
	},
	{
		Predicate:     entities.PredicateStudentOf,
		SubjectTypes:  persons,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateTeacherOf,
		Acyclic:       true,
		Description:   "Subject studied under the object",
	},
	{
		Predicate:     entities.PredicateParentOf,
		SubjectTypes:  persons,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateChildOf,
		Acyclic:       true,
		Description:   "Subject is a parent of the object",
	},
	{
		Predicate:     entities.PredicateChildOf,
		SubjectTypes:  persons,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateParentOf,
		Acyclic:       true,
		Description:   "Subject is a child of the object",
	},
	{
		Predicate:     entities.PredicateWrote,
		SubjectTypes:  persons,
		ObjectTypes:   texts,
		Bidirectional: true,
		Inverse:       entities.PredicateWrittenBy,
		Description:   "Subject composed the text",
	},
	{
		Predicate:     entities.PredicateWrittenBy,
		SubjectTypes:  texts,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateWrote,
		Description:   "Text was composed by the person",
	},
	{
		Predicate:     entities.PredicateFounded,
		SubjectTypes:  persons,
		ObjectTypes:   orgs,
		Bidirectional: true,
		Inverse:       entities.PredicateFoundedBy,
		Description:   "Subject established the institution or lineage",
	},
	{
		Predicate:     entities.PredicateFoundedBy,
		SubjectTypes:  orgs,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateFounded,
		Description:   "Institution or lineage was established by the person",
	},

	// Symmetric predicates: the inverse is the predicate itself, so a single
	// edge in either direction states the relation for both parties and the
	// cross-reference checker never demands a mirror.
	{
		Predicate:     entities.PredicateSiblingOf,
		SubjectTypes:  persons,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateSiblingOf,
		Symmetric:     true,
		Description:   "Subject and object are siblings",
	},
	{
		Predicate:     entities.PredicateSpouseOf,
		SubjectTypes:  persons,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateSpouseOf,
		Symmetric:     true,
		Description:   "Subject and object are married",
	},
	{
		Predicate:     entities.PredicateDebatedWith,
		SubjectTypes:  persons,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateDebatedWith,
		Symmetric:     true,
		Description:   "Subject and object held a formal debate",
	},
	{
		Predicate:     entities.PredicateCorrespondedWith,
		SubjectTypes:  persons,
		ObjectTypes:   persons,
		Bidirectional: true,
		Inverse:       entities.PredicateCorrespondedWith,
		Symmetric:     true,
		Description:   "Subject and object exchanged letters",
	},
	{
		Predicate:     entities.PredicateContemporaryWith,
		SubjectTypes:  collectives,
		ObjectTypes:   collectives,
		Bidirectional: true,
		Inverse:       entities.PredicateContemporaryWith,
		Symmetric:     true,
		Description:   "Subject and object were active in the same period",
	},
	{
		Predicate:     entities.PredicateRivalOf,
		SubjectTypes:  collectives,
		ObjectTypes:   collectives,
		Bidirectional: true,
		Inverse:       entities.PredicateRivalOf,
		Symmetric:     true,
		Description:   "Subject and object were rivals",
	},
	{
		Predicate:     entities.PredicateNear,
		SubjectTypes:  places,
		ObjectTypes:   places,
		Bidirectional: true,
		Inverse:       entities.PredicateNear,
		Symmetric:     true,
		Description:   "Places are geographically close",
	},

	// One-way predicates.
	{
		Predicate:    entities.PredicateTranslated,
		SubjectTypes: persons,
		ObjectTypes:  texts,
		Description:  "Subject translated the text",
	},
	{
		Predicate:    entities.PredicateCompiled,
		SubjectTypes: persons,
		ObjectTypes:  texts,
		Description:  "Subject compiled the text",
	},
	{
		Predicate:    entities.PredicateEdited,
		SubjectTypes: persons,
		ObjectTypes:  texts,
		Description:  "Subject edited the text",
	},
	{
		Predicate:    entities.PredicateStudied,
		SubjectTypes: persons,
		ObjectTypes:  studyMatter,
		Description:  "Subject studied the text or doctrine",
	},
	{
		Predicate:    entities.PredicateCites,
		SubjectTypes: texts,
		ObjectTypes:  texts,
		Description:  "Text quotes or references another text",
	},
	{
		Predicate:    entities.PredicateCommentaryOn,
		SubjectTypes: texts,
		ObjectTypes:  texts,
		Acyclic:      true,
		Description:  "Text is a commentary on another text",
	},
	{
		Predicate:    entities.PredicateTranslationOf,
		SubjectTypes: texts,
		ObjectTypes:  texts,
		Acyclic:      true,
		Description:  "Text is a translation of another text",
	},
	{
		Predicate:    entities.PredicateDiscusses,
		SubjectTypes: texts,
		ObjectTypes:  topics,
		Description:  "Text treats a topic, figure, place, or event",
	},
	{
		Predicate:    entities.PredicateLivedAt,
		SubjectTypes: persons,
		ObjectTypes:  residences,
		Description:  "Subject resided at the place or institution",
	},
	{
		Predicate:    entities.PredicateBornIn,
		SubjectTypes: persons,
		ObjectTypes:  places,
		Description:  "Subject was born at the place",
	},
	{
		Predicate:    entities.PredicateDiedIn,
		SubjectTypes: persons,
		ObjectTypes:  places,
		Description:  "Subject died at the place",
	},
	{
		Predicate:    entities.PredicateTraveledTo,
		SubjectTypes: persons,
		ObjectTypes:  places,
		Description:  "Subject journeyed to the place",
	},
	{
		Predicate:    entities.PredicateStudiedAt,
		SubjectTypes: persons,
		ObjectTypes:  institutions,
		Description:  "Subject trained at the institution",
	},
	{
		Predicate:    entities.PredicateMemberOf,
		SubjectTypes: persons,
		ObjectTypes:  orgs,
		Description:  "Subject belonged to the institution or lineage",
	},
	{
		Predicate:    entities.PredicatePatronOf,
		SubjectTypes: persons,
		ObjectTypes:  patronTargets,
		Description:  "Subject financially supported the object",
	},
	{
		Predicate:    entities.PredicateWithin,
		SubjectTypes: places,
		ObjectTypes:  places,
		Acyclic:      true,
		Description:  "Place is contained in a larger place",
	},
	{
		Predicate:    entities.PredicatePartOf,
		SubjectTypes: composites,
		ObjectTypes:  composites,
		Acyclic:      true,
		Description:  "Subject is a component of a larger whole",
	},
	{
		Predicate:    entities.PredicateLocatedIn,
		SubjectTypes: institutions,
		ObjectTypes:  places,
		Description:  "Institution sits at the place",
	},
	{
		Predicate:    entities.PredicateReceivedTransmission,
		SubjectTypes: persons,
		ObjectTypes:  transmissions,
		Description:  "Subject received a teaching transmission",
	},
	{
		Predicate:    entities.PredicateHoldsLineage,
		SubjectTypes: persons,
		ObjectTypes:  lineages,
		Description:  "Subject is a holder of the lineage",
	},
	{
		Predicate:    entities.PredicateBranchOf,
		SubjectTypes: lineages,
		ObjectTypes:  lineages,
		Acyclic:      true,
		Description:  "Lineage branched from another lineage",
	},
	{
		Predicate:    entities.PredicateParticipatedIn,
		SubjectTypes: persons,
		ObjectTypes:  events,
		Description:  "Subject took part in the event",
	},
	{
		Predicate:    entities.PredicatePresidedOver,
		SubjectTypes: persons,
		ObjectTypes:  events,
		Description:  "Subject led or officiated the event",
	},
	{
		Predicate:    entities.PredicateOccurredAt,
		SubjectTypes: events,
		ObjectTypes:  venues,
		Description:  "Event took place at the place or institution",
	},
	{
		Predicate:    entities.PredicatePreceded,
		SubjectTypes: events,
		ObjectTypes:  events,
		Acyclic:      true,
		Description:  "Event happened before another event",
	},
	{
		Predicate:    entities.PredicateHadVisionOf,
		SubjectTypes: persons,
		ObjectTypes:  deities,
		Description:  "Subject reported a vision of the deity",
	},
	{
		Predicate:    entities.PredicateDevotedTo,
		SubjectTypes: persons,
		ObjectTypes:  deities,
		Description:  "Subject practiced devotion to the deity",
	},
	{
		Predicate:    entities.PredicateExpounded,
		SubjectTypes: persons,
		ObjectTypes:  concepts,
		Description:  "Subject taught or systematized the doctrine",
	},
}
