package parsers

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/veritas/internal/domain/entities"
)

// FileSource adapts a parsed snapshot file to ports.SnapshotSource.
type FileSource struct {
	snapshot *Snapshot
}

// OpenFile parses the snapshot file at path, picking the parser from the
// file extension.
func OpenFile(path string) (*FileSource, error) {
	parser := ForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported snapshot format: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()

	snapshot, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &FileSource{snapshot: snapshot}, nil
}

// Entities returns the snapshot's entities.
func (s *FileSource) Entities(_ context.Context) ([]*entities.Entity, error) {
	return s.snapshot.Entities, nil
}

// Relationships returns the snapshot's relationships.
func (s *FileSource) Relationships(_ context.Context) ([]*entities.Relationship, error) {
	return s.snapshot.Relationships, nil
}

// Close is a no-op: the underlying file is closed after parsing.
func (s *FileSource) Close() error {
	return nil
}
