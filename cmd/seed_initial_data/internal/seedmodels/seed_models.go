package seedmodels

import (
	"encoding/json"
	"fmt"
	"os"

	"trivia-api/internal/domain"
)

// SeedCategory defines a category in the JSON seed file. IDs are kept as-is.
type SeedCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// SeedQuestion defines a question in the JSON seed file.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// SeedData is the root of the JSON seed file.
type SeedData struct {
	Categories []SeedCategory `json:"categories"`
	Questions  []SeedQuestion `json:"questions"`
}

// Load reads and validates a seed file.
func Load(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes seed data and checks that every question is valid and
// references a category from the same file.
func Parse(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}

	known := make(map[int64]bool, len(data.Categories))
	for _, c := range data.Categories {
		if c.ID < 1 || c.Type == "" {
			return nil, fmt.Errorf("invalid seed category %+v", c)
		}
		if known[c.ID] {
			return nil, fmt.Errorf("duplicate seed category id %d", c.ID)
		}
		known[c.ID] = true
	}

	for i, q := range data.Questions {
		if err := q.ToDomain().Validate(); err != nil {
			return nil, fmt.Errorf("seed question %d: %w", i, err)
		}
		if !known[q.Category] {
			return nil, fmt.Errorf("seed question %d references unknown category %d", i, q.Category)
		}
	}
	return &data, nil
}

func (c SeedCategory) ToDomain() *domain.Category {
	return &domain.Category{ID: c.ID, Type: c.Type}
}

func (q SeedQuestion) ToDomain() *domain.Question {
	return domain.NewQuestion(q.Question, q.Answer, q.Difficulty, q.Category)
}
