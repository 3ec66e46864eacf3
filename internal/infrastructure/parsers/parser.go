// Package parsers provides parsers for loading graph snapshots from files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/veritas/internal/domain/entities"
)

// Snapshot is a parsed graph snapshot ready for validation.
type Snapshot struct {
	Entities      []*entities.Entity
	Relationships []*entities.Relationship
}

// Parser defines the interface for parsing snapshots from various formats.
type Parser interface {
	Parse(r io.Reader) (*Snapshot, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
