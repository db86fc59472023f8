package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
	ErrCodeUnknownEntity     = "UNKNOWN_ENTITY"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	ErrCodeAlreadyOwned      = "ALREADY_OWNED"
	ErrCodeSessionConflict   = "SESSION_CONFLICT"
	ErrCodeSessionAbsent     = "SESSION_ABSENT"
	ErrCodeNotClaimable      = "QUEST_NOT_CLAIMABLE"
	ErrCodeNotEquippable     = "NOT_EQUIPPABLE"
)

// Sentinels for errors.Is. Matching is by code, so a specific AppError such as
// NewInsufficientFundsError(...) satisfies errors.Is(err, ErrInsufficientFunds).
var (
	ErrInvalidAmount     = &AppError{Code: ErrCodeInvalidAmount, Status: http.StatusBadRequest}
	ErrUnknownEntity     = &AppError{Code: ErrCodeUnknownEntity, Status: http.StatusNotFound}
	ErrInsufficientFunds = &AppError{Code: ErrCodeInsufficientFunds, Status: http.StatusConflict}
	ErrAlreadyOwned      = &AppError{Code: ErrCodeAlreadyOwned, Status: http.StatusConflict}
	ErrSessionConflict   = &AppError{Code: ErrCodeSessionConflict, Status: http.StatusConflict}
	ErrSessionAbsent     = &AppError{Code: ErrCodeSessionAbsent, Status: http.StatusConflict}
	ErrNotClaimable      = &AppError{Code: ErrCodeNotClaimable, Status: http.StatusConflict}
	ErrNotEquippable     = &AppError{Code: ErrCodeNotEquippable, Status: http.StatusBadRequest}
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "SESSION_CONFLICT")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// As extracts an *AppError from err, if there is one in its chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is is a convenience wrapper so callers do not need to import the stdlib package too.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  http.StatusBadRequest,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewInvalidAmountError rejects non-positive reward or charge values.
func NewInvalidAmountError(field string, amount int) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("%s must be positive, got %d", field, amount),
		Status:  http.StatusBadRequest,
	}
}

// NewUnknownEntityError reports an operation on a quest, item or agenda entry that does not exist.
func NewUnknownEntityError(kind string, id string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownEntity,
		Message: fmt.Sprintf("unknown %s: %s", kind, id),
		Status:  http.StatusNotFound,
	}
}

func NewInsufficientFundsError(itemID string, price, balance int) *AppError {
	return &AppError{
		Code:    ErrCodeInsufficientFunds,
		Message: fmt.Sprintf("%s costs %d coins, balance is %d", itemID, price, balance),
		Status:  http.StatusConflict,
	}
}

func NewAlreadyOwnedError(itemID string) *AppError {
	return &AppError{
		Code:    ErrCodeAlreadyOwned,
		Message: fmt.Sprintf("item already owned: %s", itemID),
		Status:  http.StatusConflict,
	}
}

func NewSessionConflictError(subject string) *AppError {
	return &AppError{
		Code:    ErrCodeSessionConflict,
		Message: fmt.Sprintf("a study session for %q is already active", subject),
		Status:  http.StatusConflict,
	}
}

func NewSessionAbsentError() *AppError {
	return &AppError{
		Code:    ErrCodeSessionAbsent,
		Message: "no study session is active",
		Status:  http.StatusConflict,
	}
}

func NewNotClaimableError(questID string, progress, target int) *AppError {
	return &AppError{
		Code:    ErrCodeNotClaimable,
		Message: fmt.Sprintf("quest %s is at %d/%d", questID, progress, target),
		Status:  http.StatusConflict,
	}
}

func NewNotEquippableError(itemID string, category string) *AppError {
	return &AppError{
		Code:    ErrCodeNotEquippable,
		Message: fmt.Sprintf("%s items cannot be equipped: %s", category, itemID),
		Status:  http.StatusBadRequest,
	}
}
