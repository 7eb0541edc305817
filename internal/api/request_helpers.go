package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/api/middleware"
	"github.com/phrazzld/foldertasks/internal/domain"
)

// Path parameter names.
const (
	folderParam = "folder"
	taskParam   = "task"
)

// getUserIDFromContext extracts the authenticated user's UUID placed in the
// request context by the authentication middleware.
func getUserIDFromContext(r *http.Request) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// getPathUUID extracts and parses a UUID path parameter. A missing or
// malformed value wraps domain.ErrInvalidID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// folderRequest carries the identity and folder of a folder-scoped request.
type folderRequest struct {
	userID   uuid.UUID
	folderID uuid.UUID
}

// taskRequest additionally carries the addressed task.
type taskRequest struct {
	folderRequest
	taskID uuid.UUID
}

func parseFolderRequest(r *http.Request) (folderRequest, error) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		return folderRequest{}, err
	}
	folderID, err := getPathUUID(r, folderParam)
	if err != nil {
		return folderRequest{}, err
	}
	return folderRequest{userID: userID, folderID: folderID}, nil
}

func parseTaskRequest(r *http.Request) (taskRequest, error) {
	fr, err := parseFolderRequest(r)
	if err != nil {
		return taskRequest{}, err
	}
	taskID, err := getPathUUID(r, taskParam)
	if err != nil {
		return taskRequest{}, err
	}
	return taskRequest{folderRequest: fr, taskID: taskID}, nil
}
