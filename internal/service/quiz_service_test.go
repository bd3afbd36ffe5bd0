package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNextQuestion_AllCategories(t *testing.T) {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	svc := NewQuizService(questions, categories, fixedSource{v: 1})
	ctx := context.Background()

	questions.On("ListQuestions", ctx).Return(questionsWithIDs(1, 1, 2, 3, 4), nil).Once()

	resp, err := svc.NextQuestion(ctx, &dto.QuizRequest{
		PreviousQuestions: []int64{1, 3},
		QuizCategory:      &dto.QuizCategory{ID: 0, Type: "click"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	// remaining is [2 4]; index 1 is id 4
	assert.Equal(t, int64(4), resp.Question.ID)
	categories.AssertNotCalled(t, "GetCategoryByID", mock.Anything, mock.Anything)
}

func TestNextQuestion_SingleCategory(t *testing.T) {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	svc := NewQuizService(questions, categories, fixedSource{v: 0})
	ctx := context.Background()

	categories.On("GetCategoryByID", ctx, int64(6)).Return(&domain.Category{ID: 6, Type: "Sports"}, nil)
	questions.On("ListQuestionsByCategory", ctx, int64(6)).Return(questionsWithIDs(6, 10, 11), nil)

	resp, err := svc.NextQuestion(ctx, &dto.QuizRequest{
		PreviousQuestions: []int64{},
		QuizCategory:      &dto.QuizCategory{ID: 6, Type: "Sports"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.Question.ID)
	assert.Equal(t, int64(6), resp.Question.Category)
}

func TestNextQuestion_Exhausted(t *testing.T) {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	svc := NewQuizService(questions, categories, nil)
	ctx := context.Background()

	categories.On("GetCategoryByID", ctx, int64(6)).Return(&domain.Category{ID: 6, Type: "Sports"}, nil)
	questions.On("ListQuestionsByCategory", ctx, int64(6)).Return(questionsWithIDs(6, 10, 11), nil)

	_, err := svc.NextQuestion(ctx, &dto.QuizRequest{
		PreviousQuestions: []int64{10, 11},
		QuizCategory:      &dto.QuizCategory{ID: 6},
	})

	assert.ErrorIs(t, err, domain.ErrExhausted)
}

func TestNextQuestion_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  *dto.QuizRequest
	}{
		{name: "nil request", req: nil},
		{name: "missing previous_questions", req: &dto.QuizRequest{QuizCategory: &dto.QuizCategory{ID: 1}}},
		{name: "missing quiz_category", req: &dto.QuizRequest{PreviousQuestions: []int64{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := new(MockQuestionRepository)
			svc := NewQuizService(questions, new(MockCategoryRepository), fixedSource{})

			_, err := svc.NextQuestion(context.Background(), tt.req)

			assertDomainCode(t, err, domain.CodeBadRequest)
			questions.AssertNotCalled(t, "ListQuestions", mock.Anything)
		})
	}
}

func TestNextQuestion_UnknownCategory(t *testing.T) {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	svc := NewQuizService(questions, categories, fixedSource{})
	ctx := context.Background()

	categories.On("GetCategoryByID", ctx, int64(77)).Return(nil, nil)

	_, err := svc.NextQuestion(ctx, &dto.QuizRequest{
		PreviousQuestions: []int64{},
		QuizCategory:      &dto.QuizCategory{ID: 77},
	})

	assertDomainCode(t, err, domain.CodeInvalidCategory)
}

func TestNextQuestion_RepoError(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewQuizService(questions, new(MockCategoryRepository), fixedSource{})
	ctx := context.Background()

	questions.On("ListQuestions", ctx).Return(nil, errors.New("db down"))

	_, err := svc.NextQuestion(ctx, &dto.QuizRequest{
		PreviousQuestions: []int64{},
		QuizCategory:      &dto.QuizCategory{ID: 0},
	})

	assertDomainCode(t, err, domain.CodeInternal)
}

func TestLockedRandSource_ConcurrentUse(t *testing.T) {
	src := NewLockedRandSource(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				v := src.Intn(5)
				if v < 0 || v >= 5 {
					t.Errorf("Intn(5) = %d", v)
				}
			}
		}()
	}
	wg.Wait()
}
