package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/service"
	"github.com/phrazzld/foldertasks/internal/service/auth"
	"github.com/phrazzld/foldertasks/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"folder not found", service.ErrFolderNotFound, http.StatusNotFound},
		{"task not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"relation mismatch", service.ErrTaskFolderMismatch, http.StatusNotFound},
		{"wrapped not found", service.NewServiceError("get_task", "task not found", service.ErrTaskNotFound), http.StatusNotFound},
		{"invalid path id", domain.NewValidationError("folder", "has invalid format", domain.ErrInvalidID), http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"validation", domain.NewValidationError("title", "is required", domain.ErrEmptyTaskTitle), http.StatusUnprocessableEntity},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"malformed body", fmt.Errorf("%w: eof", errMalformedBody), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"folder not found", service.ErrFolderNotFound, "Folder not found"},
		{"task not found", service.ErrTaskNotFound, "Task not found"},
		{"relation mismatch", service.ErrTaskFolderMismatch, "Task not found"},
		{"invalid credentials", service.ErrInvalidCredentials, "Invalid email or password"},
		{"validation", domain.NewValidationError("due_date", "is required", domain.ErrEmptyDueDate), "Due date is required"},
		{"internal error text never leaks", errors.New("pq: relation \"tasks\" does not exist"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	forms := newTestForms()

	_, err := forms.Validate(&CreateTaskRequest{DueDate: "2024-01-10"})
	assert.Equal(t, "Title is required", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something")))
}
