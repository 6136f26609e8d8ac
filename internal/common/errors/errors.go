package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCode classifies an application error by where it is handled.
type ErrorCode string

const (
	ErrCodeInternal    ErrorCode = "INTERNAL_ERROR"
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrCodeForbidden   ErrorCode = "FORBIDDEN"
	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeTelegramAPI ErrorCode = "TELEGRAM_API_ERROR"
)

// AppError is the typed error carried from handlers to the top-level
// error path. Failures are differentiated by code, not by subtype.
type AppError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"user_id,omitempty"`
	Cause     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the error is a "not found" condition,
// which is reported inline rather than escalated.
func (e *AppError) IsNotFound() bool {
	return e.Code == ErrCodeNotFound
}

// IsForbidden reports whether the error is an access-control denial.
func (e *AppError) IsForbidden() bool {
	return e.Code == ErrCodeForbidden
}

// WithUserID attaches the acting user to the error.
func (e *AppError) WithUserID(userID int64) *AppError {
	e.UserID = userID
	return e
}

// New creates a new application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap annotates an existing error with a code and message.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// Wrapf annotates an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// NewForbiddenError creates an access-denied error.
func NewForbiddenError(userID int64) *AppError {
	return New(ErrCodeForbidden, fmt.Sprintf("user %d lacks admin privileges", userID)).
		WithUserID(userID)
}

// NewNotFoundError creates a "not found" error for a resource.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found: %v", resource, id))
}

// NewDatabaseError wraps a storage fault.
func NewDatabaseError(operation string, err error) *AppError {
	return Wrapf(err, ErrCodeDatabase, "database operation failed: %s", operation)
}

// NewTelegramAPIError wraps an outbound Bot API fault.
func NewTelegramAPIError(operation string, err error) *AppError {
	return Wrapf(err, ErrCodeTelegramAPI, "telegram API operation failed: %s", operation)
}

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
