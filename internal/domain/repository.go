package domain

import "context"

// QuestionRepository defines the interface for question persistence.
// Every listing is ordered by question id ascending so pages are stable.
type QuestionRepository interface {
	// ListQuestions returns all questions
	ListQuestions(ctx context.Context) ([]Question, error)

	// ListQuestionsByCategory returns the questions of one category
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error)

	// SearchQuestions returns questions whose text contains term, case-insensitively
	SearchQuestions(ctx context.Context, term string) ([]Question, error)

	// GetQuestionByID returns nil, nil when no question has the id
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)

	// CreateQuestion persists a new question and sets its store-assigned ID
	CreateQuestion(ctx context.Context, question *Question) error

	DeleteQuestion(ctx context.Context, id int64) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	GetAllCategories(ctx context.Context) ([]Category, error)

	// GetCategoryByID returns nil, nil when no category has the id
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)

	// SaveCategory inserts a category with an explicit id. Used by the seeder only.
	SaveCategory(ctx context.Context, category *Category) error
}

// TransactionManager runs fn inside a transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
