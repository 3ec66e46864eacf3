// Package mocks provides hand-written mock implementations of the domain ports.
package mocks

import (
	"context"

	"github.com/ersonp/veritas/internal/domain/entities"
)

// SnapshotSource is a mock implementation of ports.SnapshotSource.
type SnapshotSource struct {
	EntityList       []*entities.Entity
	RelationshipList []*entities.Relationship
	Err              error
	Closed           bool
}

// NewSnapshotSource creates a new mock SnapshotSource.
func NewSnapshotSource() *SnapshotSource {
	return &SnapshotSource{}
}

// Entities returns the configured entity list.
func (m *SnapshotSource) Entities(_ context.Context) ([]*entities.Entity, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.EntityList, nil
}

// Relationships returns the configured relationship list.
func (m *SnapshotSource) Relationships(_ context.Context) ([]*entities.Relationship, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.RelationshipList, nil
}

// Close marks the source closed.
func (m *SnapshotSource) Close() error {
	m.Closed = true
	return nil
}
