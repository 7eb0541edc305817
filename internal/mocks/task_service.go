package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	ListTasksFn     func(ctx context.Context, userID, folderID uuid.UUID) (*service.TaskList, error)
	PrepareCreateFn func(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)
	CreateTaskFn    func(ctx context.Context, userID, folderID uuid.UUID, input service.CreateTaskInput) (*domain.Task, error)
	GetTaskFn       func(ctx context.Context, userID, folderID, taskID uuid.UUID) (*domain.Task, error)
	UpdateTaskFn    func(
		ctx context.Context,
		userID, folderID, taskID uuid.UUID,
		input service.UpdateTaskInput,
	) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, userID, folderID, taskID uuid.UUID) (*domain.Task, error)

	// Err is returned by methods without a function set.
	Err error
}

var _ service.TaskService = (*MockTaskService)(nil)

// ListTasks implements service.TaskService
func (m *MockTaskService) ListTasks(ctx context.Context, userID, folderID uuid.UUID) (*service.TaskList, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, userID, folderID)
	}
	return nil, m.Err
}

// PrepareCreate implements service.TaskService
func (m *MockTaskService) PrepareCreate(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	if m.PrepareCreateFn != nil {
		return m.PrepareCreateFn(ctx, userID, folderID)
	}
	return nil, m.Err
}

// CreateTask implements service.TaskService
func (m *MockTaskService) CreateTask(
	ctx context.Context,
	userID, folderID uuid.UUID,
	input service.CreateTaskInput,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, userID, folderID, input)
	}
	return nil, m.Err
}

// GetTask implements service.TaskService
func (m *MockTaskService) GetTask(ctx context.Context, userID, folderID, taskID uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, userID, folderID, taskID)
	}
	return nil, m.Err
}

// UpdateTask implements service.TaskService
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	userID, folderID, taskID uuid.UUID,
	input service.UpdateTaskInput,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, userID, folderID, taskID, input)
	}
	return nil, m.Err
}

// DeleteTask implements service.TaskService
func (m *MockTaskService) DeleteTask(ctx context.Context, userID, folderID, taskID uuid.UUID) (*domain.Task, error) {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, userID, folderID, taskID)
	}
	return nil, m.Err
}
