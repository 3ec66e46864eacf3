package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/veritas/internal/domain/entities"
)

func TestJSONParser_Parse(t *testing.T) {
	t.Run("valid snapshot", func(t *testing.T) {
		input := `{
			"entities": [
				{
					"id": "marpa",
					"type": "person",
					"canonical_name": "Marpa Lotsawa",
					"confidence": 0.95,
					"dates": {
						"birth": {"year": 1012, "precision": "circa", "confidence": 0.8},
						"death": {"year": 1097, "precision": "circa", "confidence": 0.8}
					}
				},
				{"id": "milarepa", "type": "person", "canonical_name": "Milarepa", "confidence": 0.9}
			],
			"relationships": [
				{
					"id": "r-1",
					"subject_id": "marpa",
					"predicate": "teacher_of",
					"object_id": "milarepa",
					"confidence": 0.9,
					"properties": {"year": 1080}
				}
			]
		}`

		snapshot, err := (&JSONParser{}).Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, snapshot.Entities, 2)
		require.Len(t, snapshot.Relationships, 1)

		marpa := snapshot.Entities[0]
		assert.Equal(t, entities.EntityPerson, marpa.Type)
		birth, ok := marpa.Date(entities.DateBirth)
		require.True(t, ok)
		assert.Equal(t, 1012, birth.Year)
		assert.Equal(t, entities.PrecisionCirca, birth.Precision)

		rel := snapshot.Relationships[0]
		assert.Equal(t, entities.PredicateTeacherOf, rel.Predicate)
		d, ok := rel.Date()
		require.True(t, ok)
		assert.Equal(t, 1080, d.Year)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := (&JSONParser{}).Parse(strings.NewReader("{not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing JSON")
	})

	t.Run("relationship missing subject id", func(t *testing.T) {
		input := `{"relationships": [{"id": "r-1", "predicate": "cites", "object_id": "b"}]}`
		_, err := (&JSONParser{}).Parse(strings.NewReader(input))
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptySubjectID)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		snapshot, err := (&JSONParser{}).Parse(strings.NewReader("{}"))
		require.NoError(t, err)
		assert.Empty(t, snapshot.Entities)
		assert.Empty(t, snapshot.Relationships)
	})
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("json"))
	assert.IsType(t, &CSVParser{}, ForFormat("CSV"))
	assert.Nil(t, ForFormat("xml"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("snapshot.json"))
	assert.IsType(t, &CSVParser{}, ForFile("export.CSV"))
	assert.Nil(t, ForFile("graph.parquet"))
}
