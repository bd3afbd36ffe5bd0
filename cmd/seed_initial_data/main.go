package main

import (
	"context"
	"fmt"
	"os"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"

	"go.uber.org/zap"
)

const (
	seedFilePath = "configs/seed_data/trivia.json"
)

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	path := seedFilePath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log.Info("Loading seed data from file", zap.String("path", path))
	data, err := seedmodels.Load(path)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}

	db, err := database.NewSQLXDB(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	seeder := &seeder{
		tx:         repository.NewTransactionManagerAdapter(db),
		categories: repository.NewCategoryDatabaseAdapter(db),
		questions:  repository.NewQuestionDatabaseAdapter(db),
		log:        log,
	}
	created, err := seeder.Seed(ctx, data)
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Initial data seeding process completed.",
		zap.Int("categories_created", created.categories),
		zap.Int("questions_created", created.questions))
}

type seedResult struct {
	categories int
	questions  int
}

// seeder inserts seed data idempotently: categories are matched by id and
// questions by exact text within their category.
type seeder struct {
	tx         domain.TransactionManager
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	log        *zap.Logger
}

func (s *seeder) Seed(ctx context.Context, data *seedmodels.SeedData) (seedResult, error) {
	var result seedResult
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		result = seedResult{}

		for _, sc := range data.Categories {
			existing, err := s.categories.GetCategoryByID(ctx, sc.ID)
			if err != nil {
				return fmt.Errorf("error checking category %d: %w", sc.ID, err)
			}
			if existing != nil {
				s.log.Info("Category exists.", zap.Int64("id", existing.ID), zap.String("type", existing.Type))
				continue
			}
			if err := s.categories.SaveCategory(ctx, sc.ToDomain()); err != nil {
				return err
			}
			result.categories++
			s.log.Info("Created category.", zap.Int64("id", sc.ID), zap.String("type", sc.Type))
		}

		for _, sq := range data.Questions {
			q := sq.ToDomain()
			exists, err := s.questionExists(ctx, q)
			if err != nil {
				return err
			}
			if exists {
				s.log.Debug("Question exists.", zap.String("question_preview", firstN(q.Question, 30)))
				continue
			}
			if err := s.questions.CreateQuestion(ctx, q); err != nil {
				return fmt.Errorf("failed to save question '%s': %w", firstN(q.Question, 50), err)
			}
			result.questions++
			s.log.Info("Created question.", zap.Int64("id", q.ID), zap.String("question_preview", firstN(q.Question, 30)))
		}
		return nil
	})
	return result, err
}

func (s *seeder) questionExists(ctx context.Context, q *domain.Question) (bool, error) {
	matches, err := s.questions.SearchQuestions(ctx, q.Question)
	if err != nil {
		return false, fmt.Errorf("error checking question '%s': %w", firstN(q.Question, 50), err)
	}
	for _, m := range matches {
		if m.Question == q.Question && m.Category == q.Category {
			return true, nil
		}
	}
	return false, nil
}
