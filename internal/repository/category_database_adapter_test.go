package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllCategories(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "type"}).
		AddRow(1, "Science").
		AddRow(2, "Art").
		AddRow(3, "Geography")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories ORDER BY id`)).WillReturnRows(rows)

	result, err := repo.GetAllCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}, {ID: 3, Type: "Geography"}}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCategories_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories ORDER BY id`)).WillReturnRows(sqlmock.NewRows([]string{"id", "type"}))

	result, err := repo.GetAllCategories(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE id = $1`)).
		WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow(6, "Sports"))

	result, err := repo.GetCategoryByID(context.Background(), 6)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Sports", result.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE id = $1`)).
		WithArgs(int64(1000)).
		WillReturnError(sql.ErrNoRows)

	result, err := repo.GetCategoryByID(context.Background(), 1000)

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO categories (id, type) VALUES ($1, $2)`)).
		WithArgs(int64(4), "History").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveCategory(context.Background(), &domain.Category{ID: 4, Type: "History"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCategory_Nil(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	assert.Error(t, repo.SaveCategory(context.Background(), nil))
}
