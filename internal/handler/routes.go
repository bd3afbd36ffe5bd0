package handler

import (
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler registered by SetupRoutes
type Handlers struct {
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// SetupRoutes registers the API routes on router
func SetupRoutes(router fiber.Router, h Handlers) {
	page := middleware.ValidatePageParam()
	id := middleware.ValidateIDParam("id")

	router.Get("/categories", h.Question.GetCategories)
	router.Get("/categories/:id/questions", id, page, h.Question.GetCategoryQuestions)

	router.Get("/questions", page, h.Question.GetQuestions)
	router.Post("/questions", h.Question.PostQuestions)
	router.Post("/questions/search", h.Question.SearchQuestions)
	router.Delete("/questions/:id", id, h.Question.DeleteQuestion)

	router.Post("/quizzes", h.Quiz.NextQuestion)

	if h.Health != nil {
		router.Get("/health", h.Health.Health)
	}
}
