package seedmodels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data, err := Parse([]byte(`{
		"categories": [{"id": 1, "type": "Science"}],
		"questions": [{"question": "Who discovered penicillin?", "answer": "Alexander Fleming", "difficulty": 3, "category": 1}]
	}`))

	require.NoError(t, err)
	assert.Len(t, data.Categories, 1)
	require.Len(t, data.Questions, 1)
	assert.Equal(t, "Alexander Fleming", data.Questions[0].ToDomain().Answer)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"malformed":          `{"categories":`,
		"bad category":       `{"categories":[{"id":0,"type":"x"}]}`,
		"duplicate category": `{"categories":[{"id":1,"type":"a"},{"id":1,"type":"b"}]}`,
		"unknown category":   `{"categories":[{"id":1,"type":"a"}],"questions":[{"question":"q","answer":"a","difficulty":1,"category":2}]}`,
		"invalid question":   `{"categories":[{"id":1,"type":"a"}],"questions":[{"question":"q","answer":"a","difficulty":7,"category":1}]}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad_BundledSeedFile(t *testing.T) {
	path := filepath.Join("..", "..", "..", "..", "configs", "seed_data", "trivia.json")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("seed file not available: %v", err)
	}

	data, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, data.Categories, 6)
	assert.GreaterOrEqual(t, len(data.Questions), 10)
}
