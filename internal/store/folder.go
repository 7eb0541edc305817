package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
)

// FolderStore defines the interface for folder data persistence.
type FolderStore interface {
	// Create saves a new folder.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, folder *domain.Folder) error

	// ListByOwner returns the folders owned by ownerID, oldest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Folder, error)

	// GetForOwner retrieves folderID only if ownerID owns it.
	// Returns ErrFolderNotFound if the folder is missing or owned by someone else.
	GetForOwner(ctx context.Context, ownerID, folderID uuid.UUID) (*domain.Folder, error)
}
