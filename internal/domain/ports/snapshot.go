// Package ports defines interfaces between the domain and infrastructure.
package ports

import (
	"context"

	"github.com/ersonp/veritas/internal/domain/entities"
)

// SnapshotSource supplies a read-only snapshot of the knowledge graph as
// produced by the upstream extraction pipeline. The validation engine never
// writes through this interface.
type SnapshotSource interface {
	// Entities returns every entity in the snapshot.
	Entities(ctx context.Context) ([]*entities.Entity, error)

	// Relationships returns every relationship in the snapshot.
	Relationships(ctx context.Context) ([]*entities.Relationship, error)

	// Close releases any resources held by the source.
	Close() error
}
