package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionService defines the listing, search and CRUD operations on questions
type QuestionService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestions(ctx context.Context, page int) (*dto.QuestionsResponse, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

type questionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	txManager  domain.TransactionManager
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	txManager domain.TransactionManager,
) QuestionService {
	return &questionService{
		questions:  questions,
		categories: categories,
		txManager:  txManager,
	}
}

func (s *questionService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to get categories", err)
	}
	return &dto.CategoriesResponse{
		Success:    true,
		Categories: domain.CategoryMap(categories),
	}, nil
}

// ListQuestions returns one page of all questions. An empty page is NOT_FOUND.
func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionsResponse, error) {
	var (
		questions  []domain.Question
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questions.ListQuestions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.GetAllCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}

	current, err := domain.Paginate(page, questions)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, domain.NewNotFoundError("no questions on this page").WithContext("page", page)
	}

	return &dto.QuestionsResponse{
		Success:        true,
		Questions:      toQuestionResponses(current),
		TotalQuestions: len(questions),
		Categories:     domain.CategoryMap(categories),
	}, nil
}

// ListQuestionsByCategory pages over one category. An empty page is returned as-is.
func (s *questionService) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewInvalidCategoryError(categoryID)
	}

	questions, err := s.questions.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list questions by category", err)
	}

	current, err := domain.Paginate(page, questions)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       toQuestionResponses(current),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// SearchQuestions pages over case-insensitive substring matches. No matches is an
// empty page; matches with nothing on the requested page is NOT_FOUND.
func (s *questionService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	matches, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		return nil, domain.NewInternalError("failed to search questions", err)
	}

	current, err := domain.Paginate(page, matches)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 && len(current) == 0 {
		return nil, domain.NewNotFoundError("no search results on this page").WithContext("page", page)
	}

	logger.Get().Debug("Search completed",
		zap.String("term", term),
		zap.Int("matches", len(matches)),
		zap.Int("page", page))

	return &dto.SearchQuestionsResponse{
		Success:         true,
		Questions:       toQuestionResponses(current),
		TotalQuestions:  len(matches),
		CurrentCategory: nil,
	}, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	if req == nil {
		return nil, domain.NewValidationError("request body is required")
	}

	question := domain.NewQuestion(req.Question, req.Answer, req.Difficulty, req.Category)
	if err := question.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.GetCategoryByID(ctx, question.Category)
	if err != nil {
		return nil, domain.NewInternalError("failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewValidationError("category does not exist").WithContext("category_id", question.Category)
	}

	if err := s.questions.CreateQuestion(ctx, question); err != nil {
		return nil, domain.NewInternalError("failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.Int64("question_id", question.ID),
		zap.Int64("category_id", question.Category))

	return &dto.CreateQuestionResponse{
		Success: true,
		Created: toQuestionResponse(*question),
	}, nil
}

// DeleteQuestion checks existence and deletes in one transaction.
func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		question, err := s.questions.GetQuestionByID(txCtx, id)
		if err != nil {
			return domain.NewInternalError("failed to get question", err)
		}
		if question == nil {
			return domain.NewQuestionNotFoundError(id)
		}
		if err := s.questions.DeleteQuestion(txCtx, id); err != nil {
			return domain.NewInternalError("failed to delete question", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Question deleted", zap.Int64("question_id", id))
	return &dto.DeleteQuestionResponse{Success: true, Deleted: id}, nil
}

func toQuestionResponse(q domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

// toQuestionResponses never returns nil so empty pages encode as [].
func toQuestionResponses(questions []domain.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = toQuestionResponse(q)
	}
	return out
}
