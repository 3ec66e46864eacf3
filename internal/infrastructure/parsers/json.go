package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/veritas/internal/domain/entities"
)

// JSONParser parses snapshots from the extractor's JSON export format:
// a single object with "entities" and "relationships" arrays.
type JSONParser struct{}

type jsonSnapshot struct {
	Entities      []*entities.Entity       `json:"entities"`
	Relationships []*entities.Relationship `json:"relationships"`
}

// Parse reads JSON from the reader and returns the parsed snapshot.
func (p *JSONParser) Parse(r io.Reader) (*Snapshot, error) {
	var doc jsonSnapshot

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	for i, rel := range doc.Relationships {
		if err := rel.Validate(); err != nil {
			return nil, fmt.Errorf("relationship %d: %w", i+1, err)
		}
	}

	return &Snapshot{
		Entities:      doc.Entities,
		Relationships: doc.Relationships,
	}, nil
}
