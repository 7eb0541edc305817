package orm

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
)

type userRow struct {
	ID             uuid.UUID `gorm:"type:text;primaryKey"`
	Email          string    `gorm:"size:255;not null;uniqueIndex"`
	HashedPassword string    `gorm:"size:255;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (userRow) TableName() string { return "users" }

func newUserRow(u *domain.User) *userRow {
	return &userRow{
		ID:             u.ID,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (r *userRow) toDomain() *domain.User {
	return &domain.User{
		ID:             r.ID,
		Email:          r.Email,
		HashedPassword: r.HashedPassword,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

type folderRow struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	UserID    uuid.UUID `gorm:"type:text;not null;index"`
	Title     string    `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (folderRow) TableName() string { return "folders" }

func newFolderRow(f *domain.Folder) *folderRow {
	return &folderRow{
		ID:        f.ID,
		UserID:    f.UserID,
		Title:     f.Title,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (r *folderRow) toDomain() *domain.Folder {
	return &domain.Folder{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type taskRow struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	FolderID  uuid.UUID `gorm:"type:text;not null;index"`
	Title     string    `gorm:"size:100;not null"`
	Status    string    `gorm:"size:20;not null;default:not_started"`
	DueDate   time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (taskRow) TableName() string { return "tasks" }

func newTaskRow(t *domain.Task) *taskRow {
	return &taskRow{
		ID:        t.ID,
		FolderID:  t.FolderID,
		Title:     t.Title,
		Status:    string(t.Status),
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *taskRow) toDomain() *domain.Task {
	return &domain.Task{
		ID:        r.ID,
		FolderID:  r.FolderID,
		Title:     r.Title,
		Status:    domain.TaskStatus(r.Status),
		DueDate:   domain.DateOf(r.DueDate.UTC()),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
