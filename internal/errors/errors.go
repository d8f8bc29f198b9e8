package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Staff account errors
	ErrUserNotFound       = NewDomainError("USER_NOT_FOUND", "user not found")
	ErrEmailExists        = NewDomainError("EMAIL_EXISTS", "email already exists")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "invalid credentials")
	ErrAccountDisabled    = NewDomainError("ACCOUNT_DISABLED", "account is disabled")
	ErrSelfDeletion       = NewDomainError("SELF_DELETION", "users cannot delete themselves")

	// Session errors
	ErrUnauthorized   = NewDomainError("UNAUTHORIZED", "unauthorized")
	ErrInvalidToken   = NewDomainError("INVALID_TOKEN", "invalid or expired token")
	ErrTokenExpired   = NewDomainError("TOKEN_EXPIRED", "token has expired")
	ErrSessionRevoked = NewDomainError("SESSION_REVOKED", "session has been revoked")

	// Catalog errors
	ErrCategoryNotFound = NewDomainError("CATEGORY_NOT_FOUND", "category not found")
	ErrProductNotFound  = NewDomainError("PRODUCT_NOT_FOUND", "product not found")
	ErrPlanNotFound     = NewDomainError("PLAN_NOT_FOUND", "rental plan not found")
	ErrSlugExists       = NewDomainError("SLUG_EXISTS", "slug already exists")

	// Order errors
	ErrOrderNotFound      = NewDomainError("ORDER_NOT_FOUND", "order not found")
	ErrInvalidStatus      = NewDomainError("INVALID_STATUS", "unknown order status")
	ErrIllegalTransition  = NewDomainError("ILLEGAL_TRANSITION", "order status transition not permitted")
	ErrApplicationMissing = NewDomainError("APPLICATION_NOT_FOUND", "career application not found")

	// File errors
	ErrInvalidFilename    = NewDomainError("INVALID_FILENAME", "invalid file name")
	ErrFileNotFound       = NewDomainError("FILE_NOT_FOUND", "file not found")
	ErrUnsupportedFile    = NewDomainError("UNSUPPORTED_FILE", "unsupported file type")
	ErrFileTooLarge       = NewDomainError("FILE_TOO_LARGE", "file exceeds the maximum allowed size")

	// Validation errors
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "invalid input")
	ErrPasswordMismatch  = NewDomainError("PASSWORD_MISMATCH", "new password and confirmation do not match")
	ErrIncorrectPassword = NewDomainError("INCORRECT_PASSWORD", "current password is incorrect")

	// System errors
	ErrInternal           = NewDomainError("INTERNAL_ERROR", "internal server error")
	ErrServiceUnavailable = NewDomainError("SERVICE_UNAVAILABLE", "service unavailable")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "INVALID_INPUT", "PASSWORD_MISMATCH", "INVALID_FILENAME",
		"UNSUPPORTED_FILE", "INVALID_STATUS":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "INVALID_TOKEN",
		"TOKEN_EXPIRED", "SESSION_REVOKED", "ACCOUNT_DISABLED",
		"INCORRECT_PASSWORD":
		return http.StatusUnauthorized

	// 403 Forbidden
	case "SELF_DELETION":
		return http.StatusForbidden

	// 404 Not Found
	case "USER_NOT_FOUND", "CATEGORY_NOT_FOUND", "PRODUCT_NOT_FOUND",
		"PLAN_NOT_FOUND", "ORDER_NOT_FOUND", "APPLICATION_NOT_FOUND",
		"FILE_NOT_FOUND":
		return http.StatusNotFound

	// 409 Conflict
	case "EMAIL_EXISTS", "SLUG_EXISTS", "ILLEGAL_TRANSITION":
		return http.StatusConflict

	// 413 Payload Too Large
	case "FILE_TOO_LARGE":
		return http.StatusRequestEntityTooLarge

	// 503 Service Unavailable
	case "SERVICE_UNAVAILABLE":
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
