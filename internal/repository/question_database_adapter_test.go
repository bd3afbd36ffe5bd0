package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a sqlx.DB backed by sqlmock. The "pgx" driver name makes
// Rebind produce $n placeholders.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "pgx"), mock
}

var questionRowColumns = []string{"id", "question", "answer", "difficulty", "category"}

func TestListQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(2, "What boxer's original name is Cassius Clay?", "Muhammad Ali", 1, 4).
		AddRow(5, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 2, 4)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions ORDER BY id`)).WillReturnRows(rows)

	result, err := repo.ListQuestions(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.Question{ID: 2, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Difficulty: 1, Category: 4}, result[0])
	assert.Equal(t, int64(5), result[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuestions_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions ORDER BY id`)).WillReturnRows(sqlmock.NewRows(questionRowColumns))

	result, err := repo.ListQuestions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuestions_DBError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	dbErr := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions ORDER BY id`)).WillReturnError(dbErr)

	result, err := repo.ListQuestions(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuestionsByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(20, "What is the heaviest organ in the human body?", "The Liver", 4, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE category = $1 ORDER BY id`)).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	result, err := repo.ListQuestionsByCategory(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(1), result[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchQuestions_EscapesAndLowercases(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(9, "What is 100% of the title?", "All", 1, 5)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE LOWER(question) LIKE $1 ESCAPE '\' ORDER BY id`)).
		WithArgs(`%100\% of\_\_%`).
		WillReturnRows(rows)

	result, err := repo.SearchQuestions(context.Background(), "100% OF__")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(9), result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{term: "", want: "%%"},
		{term: "Title", want: "%title%"},
		{term: "a_b", want: `%a\_b%`},
		{term: "50%", want: `%50\%%`},
		{term: `back\slash`, want: `%back\\slash%`},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.term))
		})
	}
}

func TestGetQuestionByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).AddRow(10, "Which is the only team to play in every soccer World Cup tournament?", "Brazil", 3, 6)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE id = $1`)).WithArgs(int64(10)).WillReturnRows(rows)

	result, err := repo.GetQuestionByID(context.Background(), 10)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Brazil", result.Answer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE id = $1`)).WithArgs(int64(999)).WillReturnError(sql.ErrNoRows)

	result, err := repo.GetQuestionByID(context.Background(), 999)

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT nextval('questions_id_seq')`)).
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(24))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO questions (id, question, answer, difficulty, category) VALUES ($1, $2, $3, $4, $5)`)).
		WithArgs(int64(24), "What is the capital of France?", "Paris", 1, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	q := domain.NewQuestion("What is the capital of France?", "Paris", 1, 3)
	err := repo.CreateQuestion(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, int64(24), q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateQuestion_InsertFails(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT nextval('questions_id_seq')`)).
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(25))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO questions`)).
		WillReturnError(errors.New("foreign key violation"))

	q := domain.NewQuestion("q", "a", 1, 42)
	err := repo.CreateQuestion(context.Background(), q)

	assert.Error(t, err)
	assert.Zero(t, q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextQuestionIDQuery(t *testing.T) {
	assert.Equal(t, `SELECT nextval('questions_id_seq')`, nextQuestionIDQuery("pgx"))
	assert.Equal(t, `SELECT questions_seq.NEXTVAL FROM dual`, nextQuestionIDQuery("oracle"))
}

func TestDeleteQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM questions WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteQuestion(context.Background(), 5)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
