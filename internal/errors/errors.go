// Package errors provides custom error types for the Paisabook API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid account number or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound     = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAccount = &AppError{Code: "DUPLICATE_ACCOUNT", Message: "A user with this account number already exists", StatusCode: http.StatusConflict}
)

// Group errors.
var (
	ErrGroupNotFound    = &AppError{Code: "GROUP_NOT_FOUND", Message: "Group not found", StatusCode: http.StatusNotFound}
	ErrNotGroupCreator  = &AppError{Code: "FORBIDDEN", Message: "Only the group creator can perform this action", StatusCode: http.StatusForbidden}
	ErrNotGroupMember   = &AppError{Code: "FORBIDDEN", Message: "Not a member of this group", StatusCode: http.StatusForbidden}
	ErrCreatorImmutable = &AppError{Code: "VALIDATION_ERROR", Message: "The group creator cannot be removed", StatusCode: http.StatusBadRequest}
	ErrPayerNotMember   = &AppError{Code: "VALIDATION_ERROR", Message: "paidBy must be a group member", StatusCode: http.StatusBadRequest}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)

// Tracker errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Budget category not found", StatusCode: http.StatusNotFound}
	ErrUnknownCategory  = &AppError{Code: "VALIDATION_ERROR", Message: "Unknown expense category", StatusCode: http.StatusBadRequest}
	ErrAlertNotFound    = &AppError{Code: "ALERT_NOT_FOUND", Message: "Alert not found", StatusCode: http.StatusNotFound}
)
