package orm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/platform/logger"
	"github.com/phrazzld/foldertasks/internal/store"
	"gorm.io/gorm"
)

// FolderStore implements store.FolderStore with gorm.
type FolderStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewFolderStore creates a gorm backed folder store.
func NewFolderStore(db *gorm.DB, logger *slog.Logger) *FolderStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FolderStore{db: db, logger: logger.With(slog.String("component", "orm_folder_store"))}
}

var _ store.FolderStore = (*FolderStore)(nil)

// Create implements store.FolderStore.Create
func (s *FolderStore) Create(ctx context.Context, folder *domain.Folder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := folder.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	db := s.db.WithContext(ctx)

	var owners int64
	if err := db.Model(&userRow{}).Where("id = ?", folder.UserID).Count(&owners).Error; err != nil {
		log.Error("failed to check folder owner", slog.String("error", err.Error()))
		return storeError("folder", "create", err)
	}
	if owners == 0 {
		return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, folder.UserID)
	}

	if err := db.Create(newFolderRow(folder)).Error; err != nil {
		log.Error("failed to create folder", slog.String("error", err.Error()))
		return storeError("folder", "create", err)
	}

	log.Info("folder created successfully",
		slog.String("folder_id", folder.ID.String()),
		slog.String("user_id", folder.UserID.String()))
	return nil
}

// ListByOwner implements store.FolderStore.ListByOwner
func (s *FolderStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Folder, error) {
	var rows []folderRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list folders",
			slog.String("error", err.Error()))
		return nil, storeError("folder", "list", err)
	}

	folders := make([]*domain.Folder, 0, len(rows))
	for i := range rows {
		folders = append(folders, rows[i].toDomain())
	}
	return folders, nil
}

// GetForOwner implements store.FolderStore.GetForOwner
func (s *FolderStore) GetForOwner(ctx context.Context, ownerID, folderID uuid.UUID) (*domain.Folder, error) {
	var row folderRow
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", folderID, ownerID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrFolderNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get folder",
			slog.String("error", err.Error()))
		return nil, storeError("folder", "get", err)
	}
	return row.toDomain(), nil
}
