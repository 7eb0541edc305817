package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/platform/logger"
	"github.com/phrazzld/foldertasks/internal/store"
)

// FolderService manages the folders a user owns.
type FolderService interface {
	// ListFolders returns the folders owned by userID, oldest first.
	ListFolders(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error)

	// CreateFolder creates a folder owned by userID.
	CreateFolder(ctx context.Context, userID uuid.UUID, title string) (*domain.Folder, error)

	// FirstFolder returns the oldest folder of userID, or ErrFolderNotFound
	// when the user has none yet.
	FirstFolder(ctx context.Context, userID uuid.UUID) (*domain.Folder, error)
}

type folderServiceImpl struct {
	folders store.FolderStore
	logger  *slog.Logger
}

// NewFolderService creates a new FolderService.
func NewFolderService(folders store.FolderStore, logger *slog.Logger) (FolderService, error) {
	if folders == nil {
		return nil, domain.NewValidationError("folders", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &folderServiceImpl{
		folders: folders,
		logger:  logger.With(slog.String("component", "folder_service")),
	}, nil
}

// ListFolders implements FolderService.ListFolders
func (s *folderServiceImpl) ListFolders(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	const op = "list_folders"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == uuid.Nil {
		return nil, NewServiceError(op, "no authenticated user", domain.ErrUnauthorized)
	}

	folders, err := s.folders.ListByOwner(ctx, userID)
	if err != nil {
		return nil, failWith(log, op, "failed to list folders", err)
	}
	return folders, nil
}

// CreateFolder implements FolderService.CreateFolder
func (s *folderServiceImpl) CreateFolder(ctx context.Context, userID uuid.UUID, title string) (*domain.Folder, error) {
	const op = "create_folder"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == uuid.Nil {
		return nil, NewServiceError(op, "no authenticated user", domain.ErrUnauthorized)
	}

	folder, err := domain.NewFolder(userID, title)
	if err != nil {
		return nil, NewServiceError(op, "invalid folder", asValidationError(err))
	}

	if err := s.folders.Create(ctx, folder); err != nil {
		return nil, failWith(log, op, "failed to save folder", err)
	}

	log.Info("folder created",
		slog.String("folder_id", folder.ID.String()),
		slog.String("user_id", userID.String()))
	return folder, nil
}

// FirstFolder implements FolderService.FirstFolder
func (s *folderServiceImpl) FirstFolder(ctx context.Context, userID uuid.UUID) (*domain.Folder, error) {
	folders, err := s.ListFolders(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, NewServiceError("first_folder", "user has no folders", ErrFolderNotFound)
	}
	return folders[0], nil
}
