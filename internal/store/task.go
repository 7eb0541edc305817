package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task into task.FolderID.
	// Returns ErrInvalidEntity if the folder does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// ListByFolder returns the tasks stored in folderID ordered by due date.
	ListByFolder(ctx context.Context, folderID uuid.UUID) ([]*domain.Task, error)

	// GetByID retrieves a task by ID without any folder scope. Callers must
	// compare the returned FolderID with the folder they resolved.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)

	// Update writes title, status and due date of a task stored in folderID.
	// Returns ErrTaskNotFound if no such task exists in that folder.
	Update(ctx context.Context, folderID uuid.UUID, task *domain.Task) error

	// Delete removes taskID from folderID.
	// Returns ErrTaskNotFound if no such task exists in that folder.
	Delete(ctx context.Context, folderID, taskID uuid.UUID) error
}
