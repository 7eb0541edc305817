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

// TaskStore implements store.TaskStore with gorm.
type TaskStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewTaskStore creates a gorm backed task store.
func NewTaskStore(db *gorm.DB, logger *slog.Logger) *TaskStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{db: db, logger: logger.With(slog.String("component", "orm_task_store"))}
}

var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	db := s.db.WithContext(ctx)

	var folders int64
	if err := db.Model(&folderRow{}).Where("id = ?", task.FolderID).Count(&folders).Error; err != nil {
		log.Error("failed to check task folder", slog.String("error", err.Error()))
		return storeError("task", "create", err)
	}
	if folders == 0 {
		return fmt.Errorf("%w: folder with ID %s not found", store.ErrInvalidEntity, task.FolderID)
	}

	if err := db.Create(newTaskRow(task)).Error; err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return storeError("task", "create", err)
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("folder_id", task.FolderID.String()))
	return nil
}

// ListByFolder implements store.TaskStore.ListByFolder
func (s *TaskStore) ListByFolder(ctx context.Context, folderID uuid.UUID) ([]*domain.Task, error) {
	var rows []taskRow
	err := s.db.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order("due_date, created_at, id").
		Find(&rows).Error
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", err.Error()))
		return nil, storeError("task", "list", err)
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, rows[i].toDomain())
	}
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	var row taskRow
	if err := s.db.WithContext(ctx).Where("id = ?", taskID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrTaskNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
			slog.String("error", err.Error()))
		return nil, storeError("task", "get", err)
	}
	return row.toDomain(), nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, folderID uuid.UUID, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	result := s.db.WithContext(ctx).
		Model(&taskRow{}).
		Where("id = ? AND folder_id = ?", task.ID, folderID).
		Updates(map[string]any{
			"title":      task.Title,
			"status":     string(task.Status),
			"due_date":   task.DueDate,
			"updated_at": task.UpdatedAt,
		})
	if result.Error != nil {
		log.Error("failed to update task", slog.String("error", result.Error.Error()))
		return storeError("task", "update", result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	log.Info("task updated successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("status", string(task.Status)))
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, folderID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result := s.db.WithContext(ctx).
		Where("id = ? AND folder_id = ?", taskID, folderID).
		Delete(&taskRow{})
	if result.Error != nil {
		log.Error("failed to delete task", slog.String("error", result.Error.Error()))
		return storeError("task", "delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	log.Info("task deleted successfully", slog.String("task_id", taskID.String()))
	return nil
}
