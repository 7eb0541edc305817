package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TaskStatus represents the progress state of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusNotStarted TaskStatus = "not_started"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// MaxTaskTitleLength is the longest task title accepted, in characters.
const MaxTaskTitleLength = 100

// DueDateLayout is the wire format of due dates in forms and JSON bodies.
const DueDateLayout = "2006-01-02"

// Task validation errors
var (
	ErrEmptyTaskID       = errors.New("task ID cannot be empty")
	ErrEmptyTaskFolderID = errors.New("task folder ID cannot be empty")
	ErrEmptyTaskTitle    = errors.New("task title cannot be empty")
	ErrTaskTitleLength   = errors.New("task title is too long")
	ErrEmptyDueDate      = errors.New("task due date cannot be empty")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

var taskStatusLabels = map[TaskStatus]string{
	TaskStatusNotStarted: "Not started",
	TaskStatusInProgress: "In progress",
	TaskStatusDone:       "Done",
}

var taskStatusClasses = map[TaskStatus]string{
	TaskStatusNotStarted: "label-danger",
	TaskStatusInProgress: "label-info",
	TaskStatusDone:       "",
}

// TaskStatuses returns every status in display order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusNotStarted, TaskStatusInProgress, TaskStatusDone}
}

// ParseTaskStatus converts a raw value into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.Valid() {
		return "", ErrInvalidTaskStatus
	}
	return status, nil
}

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

// Label returns the human readable name of the status.
func (s TaskStatus) Label() string {
	if label, ok := taskStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// CSSClass returns the label class used by the task list.
func (s TaskStatus) CSSClass() string {
	return taskStatusClasses[s]
}

// Task is a unit of work belonging to exactly one folder.
type Task struct {
	ID        uuid.UUID  `json:"id"`
	FolderID  uuid.UUID  `json:"folder_id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	DueDate   time.Time  `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewTask creates a task in folderID. Status starts as TaskStatusNotStarted.
func NewTask(folderID uuid.UUID, title string, dueDate time.Time) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.New(),
		FolderID:  folderID,
		Title:     title,
		Status:    TaskStatusNotStarted,
		DueDate:   DateOf(dueDate),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.FolderID == uuid.Nil {
		return ErrEmptyTaskFolderID
	}
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if utf8.RuneCountInString(t.Title) > MaxTaskTitleLength {
		return ErrTaskTitleLength
	}
	if t.DueDate.IsZero() {
		return ErrEmptyDueDate
	}
	if !t.Status.Valid() {
		return ErrInvalidTaskStatus
	}
	return nil
}

// Apply overwrites the editable fields. Applying the same values twice
// leaves the task in the same state.
func (t *Task) Apply(title string, status TaskStatus, dueDate time.Time) error {
	next := *t
	next.Title = title
	next.Status = status
	next.DueDate = DateOf(dueDate)
	if err := next.Validate(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now().UTC()
	*t = next
	return nil
}

// BelongsTo reports whether the task is stored in folderID.
func (t *Task) BelongsTo(folderID uuid.UUID) bool {
	return t.FolderID == folderID
}

// FormattedDueDate renders the due date as shown in the task list.
func (t *Task) FormattedDueDate() string {
	return t.DueDate.Format("2006/01/02")
}

// DueDateValue renders the due date for an HTML date input.
func (t *Task) DueDateValue() string {
	return t.DueDate.Format(DueDateLayout)
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
