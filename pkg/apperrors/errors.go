package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services up to the HTTP
// boundary. HTTPCode and Err never leak into the JSON body.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Domain:  e.Domain,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined domain errors. Messages for the request lifecycle are part
// of the API contract and match what clients already parse.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 8 characters", http.StatusBadRequest)

	// Directories
	ErrUserNotFound       = New(CodeNotFound, "users", "User not found", http.StatusNotFound)
	ErrLawyerNotFound     = New(CodeNotFound, "lawyers", "Lawyer not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email already exists", http.StatusConflict)

	// Request lifecycle
	ErrRequestNotFound        = New(CodeNotFound, "requests", "Notification not found", http.StatusNotFound)
	ErrRequestAlreadyAccepted = New(CodeInvalidStatus, "requests", "Request already accepted", http.StatusBadRequest)
	ErrNoAcceptedRequests     = New(CodeNotFound, "requests", "No accepted notifications found", http.StatusNotFound)
	ErrNoAcceptedUsers        = New(CodeNotFound, "requests", "No accepted users found", http.StatusNotFound)
	ErrNoRequests             = New(CodeNotFound, "requests", "No notifications found", http.StatusNotFound)
)

// InternalError wraps an unexpected system error.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// ValidationError builds a validation error with field details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}
