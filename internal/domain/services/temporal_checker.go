package services

import (
	"fmt"

	"github.com/ersonp/veritas/internal/domain/entities"
)

// TemporalChecker verifies chronological plausibility of a relationship
// against the lifespans and composition dates of the entities it connects.
//
// Every rule fires only when the relevant dates exist on both sides with a
// usable precision. Absence of evidence is not evidence of inconsistency:
// missing, disputed, or unknown dates never produce a violation. Circa and
// estimated dates grant a tolerance window before a rule fires.
type TemporalChecker struct{}

// NewTemporalChecker creates a new TemporalChecker.
func NewTemporalChecker() *TemporalChecker {
	return &TemporalChecker{}
}

// Check returns temporal-category findings for the relationship. Subject and
// object must already be resolved; callers skip this checker when either is
// missing.
func (c *TemporalChecker) Check(rel *entities.Relationship, subject, object *entities.Entity) []entities.ValidationIssue {
	var issues []entities.ValidationIssue

	issues = append(issues, c.checkLifespan(rel, subject)...)
	issues = append(issues, c.checkTeacherAge(rel, subject, object)...)
	issues = append(issues, c.checkCitationOrder(rel, subject, object)...)

	return issues
}

// checkLifespan compares the relationship-level date against the acting
// entity's birth and death years.
func (c *TemporalChecker) checkLifespan(rel *entities.Relationship, subject *entities.Entity) []entities.ValidationIssue {
	if subject.Type != entities.EntityPerson {
		return nil
	}
	relDate, ok := rel.Date()
	if !ok || !relDate.Usable() {
		return nil
	}

	var issues []entities.ValidationIssue

	if birth, precision, ok := subject.UsableYear(entities.DateBirth); ok {
		slack := precision.Tolerance() + relDate.Precision.Tolerance()
		if gap := birth - relDate.Year; gap > slack {
			issues = append(issues, entities.ValidationIssue{
				Severity:  entities.SeverityError,
				Category:  entities.CategoryTemporal,
				Code:      entities.CodeActionBeforeBirth,
				Magnitude: gap - slack,
				Message: fmt.Sprintf("%s dated %d predates the birth of %s (%d)",
					rel.Predicate, relDate.Year, subject.CanonicalName, birth),
			})
		}
	}

	if death, precision, ok := subject.UsableYear(entities.DateDeath); ok {
		slack := precision.Tolerance() + relDate.Precision.Tolerance()
		if gap := relDate.Year - death; gap > slack {
			issues = append(issues, entities.ValidationIssue{
				Severity:  entities.SeverityError,
				Category:  entities.CategoryTemporal,
				Code:      entities.CodeActionAfterDeath,
				Magnitude: gap - slack,
				Message: fmt.Sprintf("%s dated %d postdates the death of %s (%d)",
					rel.Predicate, relDate.Year, subject.CanonicalName, death),
			})
		}
	}

	return issues
}

// checkTeacherAge verifies that a teacher was born before their student. The
// rule covers both edge directions: teacher_of reads subject-as-teacher,
// student_of reads object-as-teacher.
func (c *TemporalChecker) checkTeacherAge(rel *entities.Relationship, subject, object *entities.Entity) []entities.ValidationIssue {
	var teacher, student *entities.Entity
	switch rel.Predicate {
	case entities.PredicateTeacherOf:
		teacher, student = subject, object
	case entities.PredicateStudentOf:
		teacher, student = object, subject
	default:
		return nil
	}

	teacherBirth, teacherPrecision, ok := teacher.UsableYear(entities.DateBirth)
	if !ok {
		return nil
	}
	studentBirth, studentPrecision, ok := student.UsableYear(entities.DateBirth)
	if !ok {
		return nil
	}

	slack := teacherPrecision.Tolerance() + studentPrecision.Tolerance()
	gap := teacherBirth - studentBirth
	if gap <= slack {
		return nil
	}

	return []entities.ValidationIssue{{
		Severity:  entities.SeverityError,
		Category:  entities.CategoryTemporal,
		Code:      entities.CodeTeacherYoungerThanStudent,
		Magnitude: gap - slack,
		Message: fmt.Sprintf("teacher %s (b. %d) is younger than student %s (b. %d)",
			teacher.CanonicalName, teacherBirth, student.CanonicalName, studentBirth),
	}}
}

// checkCitationOrder verifies that a text does not cite, comment on, or
// translate a work composed after it.
func (c *TemporalChecker) checkCitationOrder(rel *entities.Relationship, subject, object *entities.Entity) []entities.ValidationIssue {
	switch rel.Predicate {
	case entities.PredicateCites, entities.PredicateCommentaryOn, entities.PredicateTranslationOf:
	default:
		return nil
	}

	citing, citingPrecision, ok := subject.UsableYear(entities.DateComposed)
	if !ok {
		return nil
	}
	cited, citedPrecision, ok := object.UsableYear(entities.DateComposed)
	if !ok {
		return nil
	}

	slack := citingPrecision.Tolerance() + citedPrecision.Tolerance()
	gap := cited - citing
	if gap <= slack {
		return nil
	}

	return []entities.ValidationIssue{{
		Severity:  entities.SeverityError,
		Category:  entities.CategoryTemporal,
		Code:      entities.CodeCitesFutureText,
		Magnitude: gap - slack,
		Message: fmt.Sprintf("%s (composed %d) cannot reference %s (composed %d)",
			subject.CanonicalName, citing, object.CanonicalName, cited),
	}}
}
