package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ersonp/veritas/internal/domain/entities"
)

// CSVParser parses snapshots from CSV: one relationship per row, with the
// subject and object entities declared inline.
// Expected columns: id, subject_id, subject_type, subject_name, predicate,
// object_id, object_type, object_name; optional: year, date_precision,
// confidence.
type CSVParser struct{}

// Parse reads CSV from the reader and returns the parsed snapshot. Entities
// referenced by multiple rows are emitted once.
func (p *CSVParser) Parse(r io.Reader) (*Snapshot, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[col] = i
	}

	requiredCols := []string{"id", "subject_id", "subject_type", "predicate", "object_id", "object_type"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and assembles the snapshot.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) (*Snapshot, error) {
	snapshot := &Snapshot{}
	seen := make(map[string]bool)
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		rel, subject, object, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}

		snapshot.Relationships = append(snapshot.Relationships, rel)
		for _, e := range []*entities.Entity{subject, object} {
			if !seen[e.ID] {
				seen[e.ID] = true
				snapshot.Entities = append(snapshot.Entities, e)
			}
		}
	}

	return snapshot, nil
}

// parseRecord converts one CSV row into a relationship plus its two inline
// entity declarations.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (*entities.Relationship, *entities.Entity, *entities.Entity, error) {
	subject := &entities.Entity{
		ID:            getColumn(record, colIndex, "subject_id"),
		Type:          entities.EntityType(getColumn(record, colIndex, "subject_type")),
		CanonicalName: getColumn(record, colIndex, "subject_name"),
		Confidence:    1.0,
	}
	object := &entities.Entity{
		ID:            getColumn(record, colIndex, "object_id"),
		Type:          entities.EntityType(getColumn(record, colIndex, "object_type")),
		CanonicalName: getColumn(record, colIndex, "object_name"),
		Confidence:    1.0,
	}

	rel := &entities.Relationship{
		ID:         getColumn(record, colIndex, "id"),
		SubjectID:  subject.ID,
		Predicate:  entities.Predicate(getColumn(record, colIndex, "predicate")),
		ObjectID:   object.ID,
		Confidence: 1.0,
	}

	if yearStr := getColumn(record, colIndex, "year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("line %d: invalid year value %q: %w", lineNum, yearStr, err)
		}
		rel.Properties = map[string]any{entities.PropertyYear: year}
		if precision := getColumn(record, colIndex, "date_precision"); precision != "" {
			rel.Properties[entities.PropertyDatePrecision] = precision
		}
	}

	if confStr := getColumn(record, colIndex, "confidence"); confStr != "" {
		conf, err := strconv.ParseFloat(confStr, 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("line %d: invalid confidence value %q: %w", lineNum, confStr, err)
		}
		rel.Confidence = conf
	}

	if err := rel.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("line %d: %w", lineNum, err)
	}

	return rel, subject, object, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
