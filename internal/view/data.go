package view

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
)

// FolderLink is a folder entry of the task list navigation.
type FolderLink struct {
	ID     uuid.UUID
	Title  string
	Active bool
}

// TaskIndexData feeds tasks/index.
type TaskIndexData struct {
	Folders  []FolderLink
	FolderID uuid.UUID
	Tasks    []*domain.Task
}

// NewTaskIndexData marks the folder being listed in the navigation.
func NewTaskIndexData(folders []*domain.Folder, folderID uuid.UUID, tasks []*domain.Task) TaskIndexData {
	links := make([]FolderLink, 0, len(folders))
	for _, f := range folders {
		links = append(links, FolderLink{ID: f.ID, Title: f.Title, Active: f.ID == folderID})
	}
	return TaskIndexData{Folders: links, FolderID: folderID, Tasks: tasks}
}

// TaskFormData feeds tasks/create, tasks/edit and tasks/delete.
type TaskFormData struct {
	FolderID         uuid.UUID
	TaskID           uuid.UUID
	Title            string
	Status           string
	DueDate          string
	FormattedDueDate string
	Statuses         []domain.TaskStatus
	Errors           map[string]string
}

// NewTaskFormData fills a form from a stored task. A nil task yields an
// empty create form.
func NewTaskFormData(folderID uuid.UUID, task *domain.Task) TaskFormData {
	data := TaskFormData{
		FolderID: folderID,
		Statuses: domain.TaskStatuses(),
		Errors:   map[string]string{},
	}
	if task != nil {
		data.TaskID = task.ID
		data.Title = task.Title
		data.Status = string(task.Status)
		data.DueDate = task.DueDateValue()
		data.FormattedDueDate = task.FormattedDueDate()
	}
	return data
}

// FolderFormData feeds folders/create.
type FolderFormData struct {
	Title  string
	Errors map[string]string
}

// AuthFormData feeds auth/login and auth/register.
type AuthFormData struct {
	Email  string
	Errors map[string]string
}

// ErrorData feeds errors/error.
type ErrorData struct {
	Status  int
	Message string
}

// StatusText returns the standard reason phrase of Status.
func (d ErrorData) StatusText() string {
	return http.StatusText(d.Status)
}
