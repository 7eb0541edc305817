package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/platform/logger"
	"github.com/phrazzld/foldertasks/internal/store"
)

// TaskList is everything the task list page shows.
type TaskList struct {
	// Folders are all folders of the user, for navigation.
	Folders []*domain.Folder
	// Folder is the folder being listed.
	Folder *domain.Folder
	// FolderID is Folder.ID.
	FolderID uuid.UUID
	Tasks    []*domain.Task
}

// CreateTaskInput carries a validated create payload.
type CreateTaskInput struct {
	Title   string
	DueDate time.Time
}

// UpdateTaskInput carries a validated edit payload.
type UpdateTaskInput struct {
	Title   string
	Status  domain.TaskStatus
	DueDate time.Time
}

// TaskService performs task operations inside folders owned by userID.
//
// Every operation resolves the folder with an owner-scoped lookup first, so a
// folder owned by someone else is reported as ErrFolderNotFound before any
// task data is read. Operations addressing a task then verify the task is
// stored in that folder and report ErrTaskFolderMismatch otherwise.
type TaskService interface {
	// ListTasks returns the user's folders and the tasks of folderID.
	ListTasks(ctx context.Context, userID, folderID uuid.UUID) (*TaskList, error)

	// PrepareCreate returns the folder a new task would be created in.
	PrepareCreate(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)

	// CreateTask stores a new task with the default status in folderID.
	CreateTask(ctx context.Context, userID, folderID uuid.UUID, input CreateTaskInput) (*domain.Task, error)

	// GetTask returns a task for the edit and delete forms.
	GetTask(ctx context.Context, userID, folderID, taskID uuid.UUID) (*domain.Task, error)

	// UpdateTask overwrites title, status and due date of a task.
	UpdateTask(
		ctx context.Context,
		userID, folderID, taskID uuid.UUID,
		input UpdateTaskInput,
	) (*domain.Task, error)

	// DeleteTask removes a task and returns it as it was before deletion.
	DeleteTask(ctx context.Context, userID, folderID, taskID uuid.UUID) (*domain.Task, error)
}

type taskServiceImpl struct {
	folders store.FolderStore
	tasks   store.TaskStore
	logger  *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(folders store.FolderStore, tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if folders == nil {
		return nil, domain.NewValidationError("folders", "cannot be nil", domain.ErrValidation)
	}
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		folders: folders,
		tasks:   tasks,
		logger:  logger.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context, userID, folderID uuid.UUID) (*TaskList, error) {
	const op = "list_tasks"

	folder, err := s.ownedFolder(ctx, op, userID, folderID)
	if err != nil {
		return nil, err
	}

	folders, err := s.folders.ListByOwner(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, op, "failed to list folders", err)
	}

	tasks, err := s.tasks.ListByFolder(ctx, folder.ID)
	if err != nil {
		return nil, s.fail(ctx, op, "failed to list tasks", err)
	}

	return &TaskList{
		Folders:  folders,
		Folder:   folder,
		FolderID: folder.ID,
		Tasks:    tasks,
	}, nil
}

// PrepareCreate implements TaskService.PrepareCreate
func (s *taskServiceImpl) PrepareCreate(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	return s.ownedFolder(ctx, "show_create_form", userID, folderID)
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	userID, folderID uuid.UUID,
	input CreateTaskInput,
) (*domain.Task, error) {
	const op = "create_task"
	log := logger.FromContextOrDefault(ctx, s.logger)

	folder, err := s.ownedFolder(ctx, op, userID, folderID)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(folder.ID, input.Title, input.DueDate)
	if err != nil {
		return nil, NewServiceError(op, "invalid task", asValidationError(err))
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, s.fail(ctx, op, "failed to save task", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("folder_id", folder.ID.String()),
		slog.String("user_id", userID.String()))
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, userID, folderID, taskID uuid.UUID) (*domain.Task, error) {
	_, task, err := s.resolve(ctx, "get_task", userID, folderID, taskID)
	return task, err
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	userID, folderID, taskID uuid.UUID,
	input UpdateTaskInput,
) (*domain.Task, error) {
	const op = "edit_task"
	log := logger.FromContextOrDefault(ctx, s.logger)

	folder, task, err := s.resolve(ctx, op, userID, folderID, taskID)
	if err != nil {
		return nil, err
	}

	if err := task.Apply(input.Title, input.Status, input.DueDate); err != nil {
		return nil, NewServiceError(op, "invalid task", asValidationError(err))
	}

	if err := s.tasks.Update(ctx, folder.ID, task); err != nil {
		return nil, s.fail(ctx, op, "failed to update task", err)
	}

	log.Info("task updated",
		slog.String("task_id", task.ID.String()),
		slog.String("folder_id", folder.ID.String()),
		slog.String("status", string(task.Status)))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, folderID, taskID uuid.UUID) (*domain.Task, error) {
	const op = "delete_task"
	log := logger.FromContextOrDefault(ctx, s.logger)

	folder, task, err := s.resolve(ctx, op, userID, folderID, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Delete(ctx, folder.ID, task.ID); err != nil {
		return nil, s.fail(ctx, op, "failed to delete task", err)
	}

	log.Info("task deleted",
		slog.String("task_id", task.ID.String()),
		slog.String("folder_id", folder.ID.String()))
	return task, nil
}

// resolve walks the ownership chain: user owns folder, folder holds task.
func (s *taskServiceImpl) resolve(
	ctx context.Context,
	op string,
	userID, folderID, taskID uuid.UUID,
) (*domain.Folder, *domain.Task, error) {
	folder, err := s.ownedFolder(ctx, op, userID, folderID)
	if err != nil {
		return nil, nil, err
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil, s.fail(ctx, op, "task not found", ErrTaskNotFound)
		}
		return nil, nil, s.fail(ctx, op, "failed to retrieve task", err)
	}

	if err := checkRelation(folder, task); err != nil {
		return nil, nil, s.fail(ctx, op, "task does not belong to folder", err)
	}

	return folder, task, nil
}

func (s *taskServiceImpl) ownedFolder(ctx context.Context, op string, userID, folderID uuid.UUID) (*domain.Folder, error) {
	if userID == uuid.Nil {
		return nil, NewServiceError(op, "no authenticated user", domain.ErrUnauthorized)
	}

	folder, err := s.folders.GetForOwner(ctx, userID, folderID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, s.fail(ctx, op, "folder not found", ErrFolderNotFound)
		}
		return nil, s.fail(ctx, op, "failed to retrieve folder", err)
	}
	return folder, nil
}

// checkRelation rejects a task addressed through a folder it is not stored in.
func checkRelation(folder *domain.Folder, task *domain.Task) error {
	if !task.BelongsTo(folder.ID) {
		return ErrTaskFolderMismatch
	}
	return nil
}

// fail logs err at a level matching its kind and wraps it in a ServiceError.
func (s *taskServiceImpl) fail(ctx context.Context, op, msg string, err error) error {
	return failWith(logger.FromContextOrDefault(ctx, s.logger), op, msg, err)
}

func failWith(log *slog.Logger, op, msg string, err error) error {
	attrs := []any{slog.String("operation", op), slog.String("error", err.Error())}
	switch {
	case store.IsNotFoundError(err), errors.Is(err, domain.ErrValidation):
		log.Debug(msg, attrs...)
	default:
		log.Error(msg, attrs...)
	}
	return NewServiceError(op, msg, err)
}
