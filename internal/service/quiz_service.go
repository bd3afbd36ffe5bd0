package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// QuizService serves the next unseen quiz question
type QuizService interface {
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	rnd        domain.RandomSource
}

// NewQuizService creates a quiz service. A nil rnd uses a time-seeded source
// safe for concurrent use.
func NewQuizService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	rnd domain.RandomSource,
) QuizService {
	if rnd == nil {
		rnd = NewLockedRandSource(time.Now().UnixNano())
	}
	return &quizService{
		questions:  questions,
		categories: categories,
		rnd:        rnd,
	}
}

// NextQuestion picks a random question from the chosen category (or all
// categories for id 0) that is not in previous_questions.
func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if req == nil || req.PreviousQuestions == nil || req.QuizCategory == nil {
		return nil, domain.NewBadRequestError("previous_questions and quiz_category are required")
	}

	categoryID := req.QuizCategory.ID

	var (
		candidates []domain.Question
		err        error
	)
	if categoryID > 0 {
		category, err := s.categories.GetCategoryByID(ctx, categoryID)
		if err != nil {
			return nil, domain.NewInternalError("failed to get category", err)
		}
		if category == nil {
			return nil, domain.NewInvalidCategoryError(categoryID)
		}
		candidates, err = s.questions.ListQuestionsByCategory(ctx, categoryID)
		if err != nil {
			return nil, domain.NewInternalError("failed to load quiz questions", err)
		}
	} else {
		candidates, err = s.questions.ListQuestions(ctx)
		if err != nil {
			return nil, domain.NewInternalError("failed to load quiz questions", err)
		}
	}

	next, err := domain.SelectNext(candidates, req.PreviousQuestions, s.rnd)
	if err != nil {
		if errors.Is(err, domain.ErrExhausted) {
			logger.Get().Debug("Quiz exhausted",
				zap.Int64("category_id", categoryID),
				zap.Int("seen", len(req.PreviousQuestions)),
				zap.Int("candidates", len(candidates)))
		}
		return nil, err
	}

	return &dto.QuizResponse{
		Success:  true,
		Question: toQuestionResponse(next),
	}, nil
}

// LockedRandSource is a math/rand source guarded by a mutex.
type LockedRandSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewLockedRandSource(seed int64) *LockedRandSource {
	return &LockedRandSource{rnd: rand.New(rand.NewSource(seed))}
}

func (l *LockedRandSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}
