// Package sqlite provides a read-only SnapshotSource over the extraction
// pipeline's SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ersonp/veritas/internal/domain/entities"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Source implements ports.SnapshotSource against an extractor database. The
// engine only reads; the extractor owns the schema and all writes.
type Source struct {
	db   *sql.DB
	path string
}

// NewSource opens the extractor database at the given path.
func NewSource(path string) (*Source, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Read-only workload; avoid "database is locked" when the extractor is
	// still writing.
	if _, err := db.Exec("PRAGMA query_only = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling query-only mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Source{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Source) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Source) Path() string {
	return s.path
}

// Entities loads every entity together with its dated attributes.
func (s *Source) Entities(ctx context.Context) ([]*entities.Entity, error) {
	query := `
		SELECT id, type, canonical_name, confidence, verified, attributes, created_at, updated_at
		FROM entities
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	var result []*entities.Entity
	byID := make(map[string]*entities.Entity)
	for rows.Next() {
		var entity entities.Entity
		var verified int
		var attributes sql.NullString
		if err := rows.Scan(
			&entity.ID,
			&entity.Type,
			&entity.CanonicalName,
			&entity.Confidence,
			&verified,
			&attributes,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		entity.Verified = verified != 0
		if attributes.Valid && attributes.String != "" {
			if err := json.Unmarshal([]byte(attributes.String), &entity.Attributes); err != nil {
				return nil, fmt.Errorf("decoding attributes for entity %s: %w", entity.ID, err)
			}
		}
		result = append(result, &entity)
		byID[entity.ID] = &entity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entities: %w", err)
	}

	if err := s.loadDates(ctx, byID); err != nil {
		return nil, err
	}
	return result, nil
}

// loadDates attaches entity_dates rows to their entities.
func (s *Source) loadDates(ctx context.Context, byID map[string]*entities.Entity) error {
	query := `
		SELECT entity_id, kind, year, precision, confidence
		FROM entity_dates
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying entity dates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entityID string
		var kind entities.DateKind
		var info entities.DateInfo
		if err := rows.Scan(&entityID, &kind, &info.Year, &info.Precision, &info.Confidence); err != nil {
			return fmt.Errorf("scanning entity date: %w", err)
		}
		entity, ok := byID[entityID]
		if !ok {
			continue
		}
		if entity.Dates == nil {
			entity.Dates = make(map[entities.DateKind]entities.DateInfo)
		}
		entity.Dates[kind] = info
	}
	return rows.Err()
}

// Relationships loads every relationship.
func (s *Source) Relationships(ctx context.Context) ([]*entities.Relationship, error) {
	query := `
		SELECT id, subject_id, predicate, object_id, properties, confidence, verified,
		       source_quote, document, page, created_at, updated_at
		FROM relationships
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying relationships: %w", err)
	}
	defer rows.Close()

	var result []*entities.Relationship
	for rows.Next() {
		var rel entities.Relationship
		var verified int
		var properties, sourceQuote, document sql.NullString
		var page sql.NullInt64
		if err := rows.Scan(
			&rel.ID,
			&rel.SubjectID,
			&rel.Predicate,
			&rel.ObjectID,
			&properties,
			&rel.Confidence,
			&verified,
			&sourceQuote,
			&document,
			&page,
			&rel.CreatedAt,
			&rel.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning relationship: %w", err)
		}
		rel.Verified = verified != 0
		if properties.Valid && properties.String != "" {
			if err := json.Unmarshal([]byte(properties.String), &rel.Properties); err != nil {
				return nil, fmt.Errorf("decoding properties for relationship %s: %w", rel.ID, err)
			}
		}
		rel.Provenance = entities.Provenance{
			SourceQuote: sourceQuote.String,
			Document:    document.String,
			Page:        int(page.Int64),
		}
		result = append(result, &rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relationships: %w", err)
	}
	return result, nil
}
