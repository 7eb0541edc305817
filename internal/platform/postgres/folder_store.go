package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/platform/logger"
	"github.com/phrazzld/foldertasks/internal/store"
)

// PostgresFolderStore implements the store.FolderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFolderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFolderStore creates a new PostgreSQL implementation of the FolderStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresFolderStore(db store.DBTX, logger *slog.Logger) *PostgresFolderStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFolderStore{
		db:     db,
		logger: logger.With(slog.String("component", "folder_store")),
	}
}

// Ensure PostgresFolderStore implements store.FolderStore interface
var _ store.FolderStore = (*PostgresFolderStore)(nil)

// Create implements store.FolderStore.Create
func (s *PostgresFolderStore) Create(ctx context.Context, folder *domain.Folder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := folder.Validate(); err != nil {
		log.Debug("folder validation failed during create", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO folders (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		folder.ID,
		folder.UserID,
		folder.Title,
		folder.CreatedAt,
		folder.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during folder creation",
				slog.String("folder_id", folder.ID.String()),
				slog.String("user_id", folder.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, folder.UserID)
		}
		log.Error("failed to create folder",
			slog.String("error", err.Error()),
			slog.String("folder_id", folder.ID.String()))
		return storeError("folder", "create", err)
	}

	log.Info("folder created successfully",
		slog.String("folder_id", folder.ID.String()),
		slog.String("user_id", folder.UserID.String()))
	return nil
}

// ListByOwner implements store.FolderStore.ListByOwner
func (s *PostgresFolderStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Folder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, created_at, updated_at
		FROM folders
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to query folders",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, storeError("folder", "list", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	folders := []*domain.Folder{}
	for rows.Next() {
		var folder domain.Folder
		if err := rows.Scan(
			&folder.ID,
			&folder.UserID,
			&folder.Title,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		); err != nil {
			log.Error("failed to scan folder row", slog.String("error", err.Error()))
			return nil, storeError("folder", "list", err)
		}
		folders = append(folders, &folder)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, storeError("folder", "list", err)
	}

	log.Debug("listed folders",
		slog.String("user_id", ownerID.String()),
		slog.Int("count", len(folders)))
	return folders, nil
}

// GetForOwner implements store.FolderStore.GetForOwner
func (s *PostgresFolderStore) GetForOwner(ctx context.Context, ownerID, folderID uuid.UUID) (*domain.Folder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, created_at, updated_at
		FROM folders
		WHERE id = $1 AND user_id = $2
	`
	var folder domain.Folder
	err := s.db.QueryRowContext(ctx, query, folderID, ownerID).Scan(
		&folder.ID,
		&folder.UserID,
		&folder.Title,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			log.Debug("folder not found for owner",
				slog.String("folder_id", folderID.String()),
				slog.String("user_id", ownerID.String()))
			return nil, store.ErrFolderNotFound
		}
		log.Error("failed to get folder",
			slog.String("error", err.Error()),
			slog.String("folder_id", folderID.String()))
		return nil, storeError("folder", "get", err)
	}

	return &folder, nil
}
