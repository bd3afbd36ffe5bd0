package dto

// QuestionResponse represents a question in the API response
// @Description Question information
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// CategoriesResponse is returned by GET /categories
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionsResponse is a page of all questions plus the category map
type QuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	Categories     map[int64]string   `json:"categories"`
}

// CategoryQuestionsResponse is a page of questions scoped to one category
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

// SearchQuestionsResponse is a page of search matches. CurrentCategory is always null.
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

type CreateQuestionResponse struct {
	Success bool             `json:"success"`
	Created QuestionResponse `json:"created"`
}

type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

type QuizResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

// HealthResponse reports per-dependency status ("ok", "disabled" or "unavailable")
type HealthResponse struct {
	Success bool              `json:"success"`
	Checks  map[string]string `json:"checks"`
}

// ErrorResponse is the uniform error body
// @Description Error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// QuestionsRequest is the body of POST /questions. It is either a create request
// (question, answer, difficulty, category) or a search request (search_term),
// never both. Pointers distinguish absent keys from zero values.
// @Description Create or search request
type QuestionsRequest struct {
	Question   *string `json:"question,omitempty"`
	Answer     *string `json:"answer,omitempty"`
	Difficulty *int    `json:"difficulty,omitempty"`
	Category   *int64  `json:"category,omitempty"`
	SearchTerm *string `json:"search_term,omitempty"`
}

// IsSearch reports whether the body is a search request.
func (r *QuestionsRequest) IsSearch() bool {
	return r.SearchTerm != nil
}

// HasCreateFields reports whether any create key is present.
func (r *QuestionsRequest) HasCreateFields() bool {
	return r.Question != nil || r.Answer != nil || r.Difficulty != nil || r.Category != nil
}

// ToCreateRequest converts the body into a create request; absent keys become zero values.
func (r *QuestionsRequest) ToCreateRequest() *CreateQuestionRequest {
	req := &CreateQuestionRequest{}
	if r.Question != nil {
		req.Question = *r.Question
	}
	if r.Answer != nil {
		req.Answer = *r.Answer
	}
	if r.Difficulty != nil {
		req.Difficulty = *r.Difficulty
	}
	if r.Category != nil {
		req.Category = *r.Category
	}
	return req
}

// CreateQuestionRequest holds the fields needed to create a question
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// SearchQuestionsRequest is the body of POST /questions/search
// @Description Search request
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"search_term"`
}

// QuizCategory selects the quiz pool; ID 0 means every category
type QuizCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// QuizRequest is the body of POST /quizzes. A nil PreviousQuestions or
// QuizCategory means the key was absent (or null).
// @Description Quiz request
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}
