package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeInternal    ErrorCode = "INTERNAL_ERROR"
	CodeUnavailable ErrorCode = "UNAVAILABLE"
	CodeNotFound    ErrorCode = "NOT_FOUND"
	CodeBadRequest  ErrorCode = "BAD_REQUEST"
	CodeValidation  ErrorCode = "VALIDATION_ERROR"

	CodeInvalidPage     ErrorCode = "INVALID_PAGE"
	CodeInvalidCategory ErrorCode = "INVALID_CATEGORY"
	CodeExhausted       ErrorCode = "EXHAUSTED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError carrying the same code, so errors.Is(err, ErrExhausted)
// works for wrapped or re-created errors.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithContext attaches a key/value pair used for logging.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidPage = NewError(CodeInvalidPage, "page must be a positive integer", nil)
	ErrExhausted   = NewError(CodeExhausted, "no unseen questions remain", nil)
)

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewBadRequestError(message string) *DomainError {
	return NewError(CodeBadRequest, message, nil)
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnavailableError(message string, err error) *DomainError {
	return NewError(CodeUnavailable, message, err)
}

func NewInvalidPageError(raw string) *DomainError {
	return NewError(CodeInvalidPage, fmt.Sprintf("invalid page: %q", raw), nil)
}

func NewInvalidCategoryError(categoryID int64) *DomainError {
	return NewError(CodeInvalidCategory, fmt.Sprintf("category not found with ID: %d", categoryID), nil).
		WithContext("category_id", categoryID)
}

func NewQuestionNotFoundError(questionID int64) *DomainError {
	return NewNotFoundError(fmt.Sprintf("question not found with ID: %d", questionID)).
		WithContext("question_id", questionID)
}
