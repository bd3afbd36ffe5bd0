package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id "id", question "question", answer "answer", difficulty "difficulty", category "category"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// ListQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id`
	rows, err := selectQuestions(ctx, exec, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return rows, nil
}

// ListQuestionsByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	query := exec.Rebind(`SELECT ` + questionColumns + ` FROM questions WHERE category = ? ORDER BY id`)
	rows, err := selectQuestions(ctx, exec, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}
	return rows, nil
}

// SearchQuestions implements domain.QuestionRepository. LIKE wildcards in term
// are matched literally.
func (a *QuestionDatabaseAdapter) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	query := exec.Rebind(`SELECT ` + questionColumns + ` FROM questions WHERE LOWER(question) LIKE ? ESCAPE '\' ORDER BY id`)
	rows, err := selectQuestions(ctx, exec, query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return rows, nil
}

// GetQuestionByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Question
	query := exec.Rebind(`SELECT ` + questionColumns + ` FROM questions WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %d: %w", id, err)
	}

	q := toDomainQuestion(&row)
	return &q, nil
}

// CreateQuestion implements domain.QuestionRepository. The id comes from the
// questions sequence so it is never reused.
func (a *QuestionDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	exec := GetExecutor(ctx, a.db)

	var id int64
	if err := exec.GetContext(ctx, &id, nextQuestionIDQuery(exec.DriverName())); err != nil {
		return fmt.Errorf("failed to allocate question id: %w", err)
	}

	m := toModelQuestion(question)
	m.ID = id
	query := exec.Rebind(`INSERT INTO questions (id, question, answer, difficulty, category) VALUES (?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query, m.ID, m.Question, m.Answer, m.Difficulty, m.Category); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = id
	return nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)

	query := exec.Rebind(`DELETE FROM questions WHERE id = ?`)
	if _, err := exec.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

func selectQuestions(ctx context.Context, exec DBTX, query string, args ...interface{}) ([]domain.Question, error) {
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Question, len(rows))
	for i := range rows {
		out[i] = toDomainQuestion(&rows[i])
	}
	return out, nil
}

func nextQuestionIDQuery(driverName string) string {
	if driverName == config.DriverOracle {
		return `SELECT questions_seq.NEXTVAL FROM dual`
	}
	return `SELECT nextval('questions_id_seq')`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-folded substring pattern for LIKE ... ESCAPE '\'.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func toDomainQuestion(m *models.Question) domain.Question {
	return domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Difficulty: m.Difficulty,
		Category:   m.Category,
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}
