package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuestionHandler handles category and question HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as an id to name map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *QuestionHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns one page (10 per page) of all questions ordered by id
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), middleware.PageFromLocals(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCategoryQuestions godoc
// @Summary List questions of a category
// @Description Returns one page of the questions in a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *QuestionHandler) GetCategoryQuestions(c *fiber.Ctx) error {
	categoryID, ok := middleware.IDFromLocals(c)
	if !ok {
		return domain.NewNotFoundError("category id missing")
	}

	resp, err := h.service.ListQuestionsByCategory(c.UserContext(), categoryID, middleware.PageFromLocals(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	questionID, ok := middleware.IDFromLocals(c)
	if !ok {
		return domain.NewNotFoundError("question id missing")
	}

	resp, err := h.service.DeleteQuestion(c.UserContext(), questionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PostQuestions godoc
// @Summary Create or search questions
// @Description With search_term, returns a page of questions whose text contains it
// @Description (case-insensitive). Otherwise creates a question from question, answer,
// @Description difficulty (1-5) and category. The two shapes cannot be mixed.
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number for search" default(1)
// @Param request body dto.QuestionsRequest true "Create or search request"
// @Success 200 {object} dto.SearchQuestionsResponse
// @Success 201 {object} dto.CreateQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) PostQuestions(c *fiber.Ctx) error {
	var req dto.QuestionsRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		logger.Get().Debug("Invalid questions request body", zap.Error(err))
		return domain.NewValidationError("invalid request body")
	}

	if req.IsSearch() {
		if req.HasCreateFields() {
			return domain.NewValidationError("search_term cannot be combined with question fields")
		}
		return h.search(c, *req.SearchTerm)
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), req.ToCreateRequest())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Returns a page of questions whose text contains search_term (case-insensitive)
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param request body dto.SearchQuestionsRequest true "Search request"
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := decodeStrict(c.Body(), &req); err != nil || req.SearchTerm == nil {
		return domain.NewValidationError("search_term is required")
	}
	return h.search(c, *req.SearchTerm)
}

// search reads the page itself since create requests on the same route ignore it.
func (h *QuestionHandler) search(c *fiber.Ctx, term string) error {
	page, err := domain.ParsePage(c.Query("page"))
	if err != nil {
		return err
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), term, page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
