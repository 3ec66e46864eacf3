// Package schema holds the immutable contract table for relationship
// predicates: which entity types each predicate connects, whether an inverse
// edge is expected, and which predicates form acyclic hierarchies.
//
// The table is built once at package init and never mutated; every lookup is
// a read against process-lifetime data.
package schema

import (
	"errors"
	"fmt"

	"github.com/ersonp/veritas/internal/domain/entities"
)

// ErrUnknownPredicate is returned when a predicate has no schema entry.
var ErrUnknownPredicate = errors.New("unknown predicate")

// PredicateSchema describes the contract of a single predicate.
type PredicateSchema struct {
	Predicate    entities.Predicate
	SubjectTypes []entities.EntityType
	ObjectTypes  []entities.EntityType
	// Bidirectional means the semantic partner edge is expected to exist
	// explicitly. For symmetric predicates the inverse is the predicate itself.
	Bidirectional bool
	Inverse       entities.Predicate
	Symmetric     bool
	// Acyclic marks predicates that compose transitively in one direction;
	// a directed cycle restricted to such a predicate is a modeling error.
	Acyclic     bool
	Description string
}

// AllowsSubject reports whether t is a legal subject type for this predicate.
func (s *PredicateSchema) AllowsSubject(t entities.EntityType) bool {
	return containsType(s.SubjectTypes, t)
}

// AllowsObject reports whether t is a legal object type for this predicate.
func (s *PredicateSchema) AllowsObject(t entities.EntityType) bool {
	return containsType(s.ObjectTypes, t)
}

func containsType(set []entities.EntityType, t entities.EntityType) bool {
	for _, v := range set {
		if v == t {
			return true
		}
	}
	return false
}

// TypeMismatch describes a subject or object type violation, carrying the
// type sets the schema expected so rejections are explainable.
type TypeMismatch struct {
	SubjectOK        bool
	ObjectOK         bool
	ExpectedSubjects []entities.EntityType
	ExpectedObjects  []entities.EntityType
}

// Registry is the immutable predicate schema table.
type Registry struct {
	byPredicate map[entities.Predicate]*PredicateSchema
	ordered     []*PredicateSchema
}

// defaultRegistry is built once at process start from the schema table.
var defaultRegistry = newRegistry(schemaTable)

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

func newRegistry(table []PredicateSchema) *Registry {
	r := &Registry{
		byPredicate: make(map[entities.Predicate]*PredicateSchema, len(table)),
		ordered:     make([]*PredicateSchema, 0, len(table)),
	}
	for i := range table {
		s := &table[i]
		if _, dup := r.byPredicate[s.Predicate]; dup {
			panic(fmt.Sprintf("schema: duplicate predicate entry %q", s.Predicate))
		}
		r.byPredicate[s.Predicate] = s
		r.ordered = append(r.ordered, s)
	}
	// A symmetric predicate's inverse is itself; any other bidirectional
	// predicate must declare a distinct, registered inverse.
	for _, s := range r.ordered {
		if s.Symmetric && s.Inverse != s.Predicate {
			panic(fmt.Sprintf("schema: symmetric predicate %q must be its own inverse", s.Predicate))
		}
		if s.Bidirectional && !s.Symmetric {
			inv, ok := r.byPredicate[s.Inverse]
			if !ok {
				panic(fmt.Sprintf("schema: predicate %q declares unregistered inverse %q", s.Predicate, s.Inverse))
			}
			if inv.Inverse != s.Predicate {
				panic(fmt.Sprintf("schema: inverse of %q does not point back", s.Predicate))
			}
		}
	}
	return r
}

// Lookup returns the schema for a predicate.
func (r *Registry) Lookup(p entities.Predicate) (*PredicateSchema, error) {
	s, ok := r.byPredicate[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPredicate, p)
	}
	return s, nil
}

// IsBidirectional reports whether the predicate expects a partner edge.
// Unknown predicates report false.
func (r *Registry) IsBidirectional(p entities.Predicate) bool {
	s, ok := r.byPredicate[p]
	return ok && s.Bidirectional
}

// InverseOf returns the predicate's inverse, when it has one. Symmetric
// predicates return themselves.
func (r *Registry) InverseOf(p entities.Predicate) (entities.Predicate, bool) {
	s, ok := r.byPredicate[p]
	if !ok || s.Inverse == "" {
		return "", false
	}
	return s.Inverse, true
}

// CheckTypes verifies that the subject and object entity types are legal for
// the predicate. A nil TypeMismatch means both sides are legal.
func (r *Registry) CheckTypes(p entities.Predicate, subject, object entities.EntityType) (*TypeMismatch, error) {
	s, err := r.Lookup(p)
	if err != nil {
		return nil, err
	}

	subjectOK := s.AllowsSubject(subject)
	objectOK := s.AllowsObject(object)
	if subjectOK && objectOK {
		return nil, nil
	}
	return &TypeMismatch{
		SubjectOK:        subjectOK,
		ObjectOK:         objectOK,
		ExpectedSubjects: s.SubjectTypes,
		ExpectedObjects:  s.ObjectTypes,
	}, nil
}

// Predicates returns every schema entry in declaration order.
func (r *Registry) Predicates() []*PredicateSchema {
	out := make([]*PredicateSchema, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of schema entries.
func (r *Registry) Len() int {
	return len(r.ordered)
}
