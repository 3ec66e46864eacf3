package services

import (
	"fmt"

	"github.com/ersonp/veritas/internal/domain/entities"
	"github.com/ersonp/veritas/internal/domain/schema"
)

// LogicalChecker detects self-relationships and directed cycles inside a
// predicate's relationship subgraph.
//
// Cycle detection only runs for predicates the schema marks acyclic, and only
// when the checker was built with the full relationship set. The checker
// indexes each predicate's subgraph once and reuses it for every edge, so a
// batch run over E edges costs O(V+E) per predicate instead of O(E*(V+E)).
//
// Indexes are built lazily; call Prime before sharing a checker across
// goroutines.
type LogicalChecker struct {
	registry      *schema.Registry
	relationships []*entities.Relationship
	indexes       map[entities.Predicate]*predicateIndex
}

// predicateIndex is the adjacency and strongly-connected-component view of a
// single predicate's subgraph.
type predicateIndex struct {
	adjacency map[string][]string
	sccID     map[string]int
	// edges records subject->object pairs present in the set, so the checker
	// knows whether the edge under test participated in the SCC computation.
	edges map[[2]string]bool
}

// NewLogicalChecker creates a checker over the supplied relationship set.
// A nil set disables cycle detection; self-relationships are still caught.
func NewLogicalChecker(registry *schema.Registry, relationships []*entities.Relationship) *LogicalChecker {
	return &LogicalChecker{
		registry:      registry,
		relationships: relationships,
		indexes:       make(map[entities.Predicate]*predicateIndex),
	}
}

// Prime eagerly builds subgraph indexes for every acyclic predicate present
// in the relationship set. After Prime the checker is safe for concurrent
// use by multiple goroutines.
func (c *LogicalChecker) Prime() {
	for _, rel := range c.relationships {
		s, err := c.registry.Lookup(rel.Predicate)
		if err != nil || !s.Acyclic {
			continue
		}
		c.index(rel.Predicate)
	}
}

// Check returns logical-category findings for the relationship.
func (c *LogicalChecker) Check(rel *entities.Relationship) []entities.ValidationIssue {
	var issues []entities.ValidationIssue

	if rel.SubjectID == rel.ObjectID {
		issues = append(issues, entities.ValidationIssue{
			Severity: entities.SeverityError,
			Category: entities.CategoryLogical,
			Code:     entities.CodeSelfRelationship,
			Message:  fmt.Sprintf("entity %q cannot have a %s relationship with itself", rel.SubjectID, rel.Predicate),
		})
		return issues
	}

	if c.relationships == nil {
		return issues
	}
	predSchema, err := c.registry.Lookup(rel.Predicate)
	if err != nil || !predSchema.Acyclic {
		return issues
	}

	if c.closesCycle(rel) {
		issues = append(issues, entities.ValidationIssue{
			Severity: entities.SeverityError,
			Category: entities.CategoryLogical,
			Code:     entities.CodeCircularRelationship,
			Message: fmt.Sprintf("%s edge from %q to %q closes a cycle",
				rel.Predicate, rel.SubjectID, rel.ObjectID),
		})
	}

	return issues
}

// closesCycle reports whether following rel's edge leads back to its own
// subject through the predicate's subgraph.
func (c *LogicalChecker) closesCycle(rel *entities.Relationship) bool {
	idx := c.index(rel.Predicate)

	// When the edge belongs to the indexed set, the SCC view answers
	// directly: the edge closes a cycle iff both endpoints share a component.
	if idx.edges[[2]string{rel.SubjectID, rel.ObjectID}] {
		return idx.sccID[rel.SubjectID] == idx.sccID[rel.ObjectID]
	}

	// Hypothetical edge not in the set: walk from the object looking for the
	// subject.
	return c.reaches(idx.adjacency, rel.ObjectID, rel.SubjectID)
}

// reaches runs an iterative depth-first search from start looking for target.
func (c *LogicalChecker) reaches(adjacency map[string][]string, start, target string) bool {
	visited := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adjacency[node] {
			if next == target {
				return true
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// index returns the memoized subgraph index for a predicate, building it on
// first use.
func (c *LogicalChecker) index(p entities.Predicate) *predicateIndex {
	if idx, ok := c.indexes[p]; ok {
		return idx
	}

	idx := &predicateIndex{
		adjacency: make(map[string][]string),
		edges:     make(map[[2]string]bool),
	}
	for _, rel := range c.relationships {
		if rel.Predicate != p || rel.SubjectID == rel.ObjectID {
			continue
		}
		key := [2]string{rel.SubjectID, rel.ObjectID}
		if idx.edges[key] {
			continue
		}
		idx.edges[key] = true
		idx.adjacency[rel.SubjectID] = append(idx.adjacency[rel.SubjectID], rel.ObjectID)
		if _, ok := idx.adjacency[rel.ObjectID]; !ok {
			idx.adjacency[rel.ObjectID] = nil
		}
	}
	idx.sccID = stronglyConnected(idx.adjacency)

	c.indexes[p] = idx
	return idx
}

// stronglyConnected assigns a component id to every node using an iterative
// Tarjan traversal. Nodes in the same component lie on a common cycle.
func stronglyConnected(adjacency map[string][]string) map[string]int {
	const unvisited = -1

	index := 0
	nextSCC := 0
	indexOf := make(map[string]int, len(adjacency))
	lowlink := make(map[string]int, len(adjacency))
	onStack := make(map[string]bool, len(adjacency))
	sccID := make(map[string]int, len(adjacency))
	var tarjanStack []string

	for node := range adjacency {
		indexOf[node] = unvisited
	}

	type frame struct {
		node string
		next int
	}

	for root := range adjacency {
		if indexOf[root] != unvisited {
			continue
		}

		callStack := []frame{{node: root}}
		indexOf[root] = index
		lowlink[root] = index
		index++
		tarjanStack = append(tarjanStack, root)
		onStack[root] = true

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			neighbors := adjacency[top.node]

			if top.next < len(neighbors) {
				next := neighbors[top.next]
				top.next++
				if indexOf[next] == unvisited {
					indexOf[next] = index
					lowlink[next] = index
					index++
					tarjanStack = append(tarjanStack, next)
					onStack[next] = true
					callStack = append(callStack, frame{node: next})
				} else if onStack[next] {
					if indexOf[next] < lowlink[top.node] {
						lowlink[top.node] = indexOf[next]
					}
				}
				continue
			}

			// All neighbors explored: close out this node.
			if lowlink[top.node] == indexOf[top.node] {
				for {
					n := len(tarjanStack) - 1
					popped := tarjanStack[n]
					tarjanStack = tarjanStack[:n]
					onStack[popped] = false
					sccID[popped] = nextSCC
					if popped == top.node {
						break
					}
				}
				nextSCC++
			}

			finished := top.node
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowlink[finished] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[finished]
				}
			}
		}
	}

	return sccID
}
