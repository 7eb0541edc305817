package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/service"
	"github.com/phrazzld/foldertasks/internal/service/auth"
	"github.com/phrazzld/foldertasks/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors. A malformed path ID addresses nothing, and a task
	// addressed through the wrong folder is indistinguishable from a missing one.
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Validation errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, errMalformedBody):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly message for err that never
// includes internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Please log in"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"

	case errors.Is(err, store.ErrFolderNotFound):
		return "Folder not found"

	case errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, service.ErrTaskFolderMismatch):
		return "Task not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, domain.ErrInvalidID):
		return "Page not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, domain.ErrValidation):
		return SanitizeValidationError(err)

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, errMalformedBody):
		return "Invalid request format"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError returns a user-friendly summary of a validation
// failure naming the first offending field.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("%s %s", fieldLabel(fe.Field()), getValidationTagMessage(fe.Tag(), fe.Param()))
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return fmt.Sprintf("%s %s", fieldLabel(domainErr.Field), domainErr.Message)
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly messages.
func getValidationTagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", param)
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	case "oneof":
		return "has an invalid value"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "notpast":
		return "must be today or later"
	default:
		return "is invalid"
	}
}

var fieldLabels = map[string]string{
	"title":    "Title",
	"status":   "Status",
	"due_date": "Due date",
	"email":    "Email",
	"password": "Password",
}

// fieldLabel returns the label a form shows for a field.
func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
