package domain

import (
	"fmt"
	"strings"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Category is a named grouping of questions. Categories are seeded out-of-band
// and read-only for the API.
type Category struct {
	ID   int64
	Type string
}

// Question is a trivia question. It is immutable once created; the store assigns ID.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Difficulty int
	Category   int64
}

// NewQuestion creates a new Question instance with trimmed text fields
func NewQuestion(question, answer string, difficulty int, category int64) *Question {
	return &Question{
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		Difficulty: difficulty,
		Category:   category,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return NewValidationError("question is required").WithContext("field", "question")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return NewValidationError("answer is required").WithContext("field", "answer")
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return NewValidationError(fmt.Sprintf("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)).
			WithContext("field", "difficulty")
	}
	if q.Category <= 0 {
		return NewValidationError("category is required").WithContext("field", "category")
	}
	return nil
}

// CategoryMap converts categories to the id -> display name mapping served by the API.
func CategoryMap(categories []Category) map[int64]string {
	out := make(map[int64]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
