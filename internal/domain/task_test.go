package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	t.Parallel()
	folderID := uuid.New()
	due := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

	task, err := NewTask(folderID, "Draft report", due)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if task.FolderID != folderID {
		t.Errorf("Expected folder ID %s, got %s", folderID, task.FolderID)
	}
	if task.Title != "Draft report" {
		t.Errorf("Expected title %q, got %q", "Draft report", task.Title)
	}
	if task.Status != TaskStatusNotStarted {
		t.Errorf("Expected status %s, got %s", TaskStatusNotStarted, task.Status)
	}
	if !task.DueDate.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected due date truncated to the day, got %s", task.DueDate)
	}

	if _, err := NewTask(uuid.Nil, "x", due); err != ErrEmptyTaskFolderID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskFolderID, err)
	}
	if _, err := NewTask(folderID, "", due); err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}
	if _, err := NewTask(folderID, strings.Repeat("a", MaxTaskTitleLength+1), due); err != ErrTaskTitleLength {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleLength, err)
	}
	if _, err := NewTask(folderID, "x", time.Time{}); err != ErrEmptyDueDate {
		t.Errorf("Expected error %v, got %v", ErrEmptyDueDate, err)
	}
}

func TestTaskApply(t *testing.T) {
	t.Parallel()
	task, err := NewTask(uuid.New(), "Draft report", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	due := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	if err := task.Apply("Final report", TaskStatusDone, due); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	first := *task

	if err := task.Apply("Final report", TaskStatusDone, due); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != first.Title || task.Status != first.Status || !task.DueDate.Equal(first.DueDate) {
		t.Errorf("Expected repeated apply to keep %+v, got %+v", first, *task)
	}
	if task.Title != "Final report" || task.Status != TaskStatusDone || !task.DueDate.Equal(due) {
		t.Errorf("Unexpected task after apply: %+v", *task)
	}
}

func TestTaskApplyRejectsInvalidValues(t *testing.T) {
	t.Parallel()
	task, err := NewTask(uuid.New(), "Draft report", time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	before := *task

	if err := task.Apply("Draft report", TaskStatus("archived"), time.Now()); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}
	if err := task.Apply("", TaskStatusDone, time.Now()); err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}
	if *task != before {
		t.Errorf("Expected task to be unchanged after failed apply")
	}
}

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()
	for _, status := range TaskStatuses() {
		got, err := ParseTaskStatus(string(status))
		if err != nil {
			t.Errorf("ParseTaskStatus(%q) returned error %v", status, err)
		}
		if got != status {
			t.Errorf("ParseTaskStatus(%q) = %q", status, got)
		}
		if status.Label() == string(status) {
			t.Errorf("Expected a human label for %q", status)
		}
	}

	if _, err := ParseTaskStatus("1"); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}
}

func TestTaskFormatting(t *testing.T) {
	t.Parallel()
	task := Task{DueDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}

	if got := task.FormattedDueDate(); got != "2024/01/05" {
		t.Errorf("FormattedDueDate() = %q", got)
	}
	if got := task.DueDateValue(); got != "2024-01-05" {
		t.Errorf("DueDateValue() = %q", got)
	}
}
