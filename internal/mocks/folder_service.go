package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/service"
)

// MockFolderService implements service.FolderService for testing
type MockFolderService struct {
	ListFoldersFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error)
	CreateFolderFn func(ctx context.Context, userID uuid.UUID, title string) (*domain.Folder, error)
	FirstFolderFn  func(ctx context.Context, userID uuid.UUID) (*domain.Folder, error)

	Err error
}

var _ service.FolderService = (*MockFolderService)(nil)

// ListFolders implements service.FolderService
func (m *MockFolderService) ListFolders(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	if m.ListFoldersFn != nil {
		return m.ListFoldersFn(ctx, userID)
	}
	return nil, m.Err
}

// CreateFolder implements service.FolderService
func (m *MockFolderService) CreateFolder(ctx context.Context, userID uuid.UUID, title string) (*domain.Folder, error) {
	if m.CreateFolderFn != nil {
		return m.CreateFolderFn(ctx, userID, title)
	}
	return nil, m.Err
}

// FirstFolder implements service.FolderService
func (m *MockFolderService) FirstFolder(ctx context.Context, userID uuid.UUID) (*domain.Folder, error) {
	if m.FirstFolderFn != nil {
		return m.FirstFolderFn(ctx, userID)
	}
	return nil, m.Err
}
