package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/store"
)

// Service errors. The not-found family all match store.ErrNotFound with
// errors.Is, so callers can treat a missing folder, a foreign folder and a
// task addressed through the wrong folder alike.
var (
	// ErrFolderNotFound indicates the folder does not exist or is owned by another user.
	ErrFolderNotFound = store.ErrFolderNotFound

	// ErrTaskNotFound indicates the task does not exist in the requested folder.
	ErrTaskNotFound = store.ErrTaskNotFound

	// ErrTaskFolderMismatch indicates the task exists but is stored in a different folder.
	ErrTaskFolderMismatch = fmt.Errorf("%w: task is not stored in the requested folder", store.ErrNotFound)

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken indicates a registration with an email that is already in use.
	ErrEmailTaken = store.ErrEmailExists
)

// ServiceError is a custom error type carrying the failed operation.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// fieldErrors maps domain validation failures onto the form field that caused them.
var fieldErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrEmptyTaskTitle, "title", "is required"},
	{domain.ErrTaskTitleLength, "title", fmt.Sprintf("must be at most %d characters", domain.MaxTaskTitleLength)},
	{domain.ErrEmptyDueDate, "due_date", "is required"},
	{domain.ErrInvalidTaskStatus, "status", "is not a valid status"},
	{domain.ErrEmptyFolderTitle, "title", "is required"},
	{domain.ErrFolderTitleLength, "title", fmt.Sprintf("must be at most %d characters", domain.MaxFolderTitleLength)},
	{domain.ErrEmptyEmail, "email", "is required"},
	{domain.ErrInvalidEmail, "email", "is not a valid email address"},
	{domain.ErrEmptyPassword, "password", "is required"},
	{domain.ErrPasswordTooShort, "password", fmt.Sprintf("must be at least %d characters", domain.MinPasswordLength)},
	{domain.ErrPasswordTooLong, "password", fmt.Sprintf("must be at most %d characters", domain.MaxPasswordLength)},
}

// asValidationError converts a domain validation failure into a
// *domain.ValidationError naming the offending field. Other errors are
// returned unchanged.
func asValidationError(err error) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return domain.NewValidationError(fe.field, fe.message, err)
		}
	}
	return err
}
