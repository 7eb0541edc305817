package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxFolderTitleLength is the longest folder title accepted, in characters.
const MaxFolderTitleLength = 20

// Folder validation errors
var (
	ErrEmptyFolderID     = errors.New("folder ID cannot be empty")
	ErrEmptyFolderUserID = errors.New("folder user ID cannot be empty")
	ErrEmptyFolderTitle  = errors.New("folder title cannot be empty")
	ErrFolderTitleLength = errors.New("folder title is too long")
)

// Folder is a named container of tasks owned by exactly one user.
type Folder struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFolder creates a folder owned by userID.
func NewFolder(userID uuid.UUID, title string) (*Folder, error) {
	now := time.Now().UTC()
	folder := &Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := folder.Validate(); err != nil {
		return nil, err
	}

	return folder, nil
}

// Validate checks if the Folder has valid data.
func (f *Folder) Validate() error {
	if f.ID == uuid.Nil {
		return ErrEmptyFolderID
	}
	if f.UserID == uuid.Nil {
		return ErrEmptyFolderUserID
	}
	if f.Title == "" {
		return ErrEmptyFolderTitle
	}
	if utf8.RuneCountInString(f.Title) > MaxFolderTitleLength {
		return ErrFolderTitleLength
	}
	return nil
}

// OwnedBy reports whether userID owns the folder.
func (f *Folder) OwnedBy(userID uuid.UUID) bool {
	return f.UserID == userID
}
