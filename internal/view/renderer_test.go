package view

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateRenderer_ParsesAllViews(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	for _, name := range []string{TaskIndex, TaskCreate, TaskEdit, TaskDelete, FolderCreate, Login, Register, Error} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRender_TaskIndex(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	owner := uuid.New()
	work, _ := domain.NewFolder(owner, "Work")
	home, _ := domain.NewFolder(owner, "Home")
	task, _ := domain.NewTask(work.ID, "<b>Draft report</b>", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	rec := httptest.NewRecorder()
	data := NewTaskIndexData([]*domain.Folder{work, home}, work.ID, []*domain.Task{task})
	require.NoError(t, r.Render(rec, http.StatusOK, TaskIndex, data))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "&lt;b&gt;Draft report&lt;/b&gt;")
	assert.Contains(t, body, "2024/01/10")
	assert.Contains(t, body, "Not started")
	assert.Contains(t, body, `href="/folders/`+work.ID.String()+`/tasks" class="active"`)
	assert.Contains(t, body, "/folders/"+work.ID.String()+"/tasks/"+task.ID.String()+"/edit")
	assert.Contains(t, body, `action="/logout"`)
}

func TestRender_TaskEditSelectsStatus(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	task, _ := domain.NewTask(uuid.New(), "Report", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, task.Apply("Report", domain.TaskStatusInProgress, task.DueDate))

	rec := httptest.NewRecorder()
	data := NewTaskFormData(task.FolderID, task)
	data.Errors["title"] = "title is required"
	require.NoError(t, r.Render(rec, http.StatusUnprocessableEntity, TaskEdit, data))

	body := rec.Body.String()
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body, `<option value="in_progress" selected>In progress</option>`)
	assert.Contains(t, body, `value="2024-01-10"`)
	assert.Contains(t, body, "title is required")
}

func TestRender_ErrorPageHasNoLogout(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, http.StatusNotFound, Error, ErrorData{Status: http.StatusNotFound, Message: "missing"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
	assert.NotContains(t, rec.Body.String(), `action="/logout"`)
}

func TestRender_UnknownView(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "tasks/missing", nil)
	assert.Error(t, err)
	assert.Equal(t, 0, rec.Body.Len())
}
