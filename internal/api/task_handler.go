package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/api/shared"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/service"
	"github.com/phrazzld/foldertasks/internal/view"
)

// TaskHandler serves the task pages of a folder.
type TaskHandler struct {
	tasks service.TaskService
	forms *FormDecoder
	pages
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(
	tasks service.TaskService,
	renderer view.Renderer,
	forms *FormDecoder,
	logger *slog.Logger,
) *TaskHandler {
	if tasks == nil {
		panic("tasks cannot be nil") // ALLOW-PANIC: constructor enforcing required dependency
	}
	if renderer == nil {
		panic("renderer cannot be nil") // ALLOW-PANIC: constructor enforcing required dependency
	}
	if forms == nil {
		forms = NewFormDecoder(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		tasks: tasks,
		forms: forms,
		pages: pages{
			renderer: renderer,
			logger:   logger.With(slog.String("component", "task_handler")),
		},
	}
}

// Routes registers the task routes on a router mounted at /folders/{folder}/tasks.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Get("/", h.ListTasks)
	r.Get("/create", h.ShowCreateForm)
	r.Post("/create", h.CreateTask)
	r.Route("/{task}", func(r chi.Router) {
		r.Get("/edit", h.ShowEditForm)
		r.Post("/edit", h.EditTask)
		r.Get("/delete", h.ShowDeleteForm)
		r.Post("/delete", h.DeleteTask)
	})
}

// TaskListPath is the task list URL of a folder.
func TaskListPath(folderID uuid.UUID) string {
	return "/folders/" + folderID.String() + "/tasks"
}

// ListTasks handles GET /folders/{folder}/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	const op = "list_tasks"

	req, err := parseFolderRequest(r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	list, err := h.tasks.ListTasks(r.Context(), req.userID, req.folderID)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	h.render(w, r, http.StatusOK, view.TaskIndex, view.NewTaskIndexData(list.Folders, list.FolderID, list.Tasks))
}

// ShowCreateForm handles GET /folders/{folder}/tasks/create.
func (h *TaskHandler) ShowCreateForm(w http.ResponseWriter, r *http.Request) {
	const op = "show_create_form"

	req, err := parseFolderRequest(r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	folder, err := h.tasks.PrepareCreate(r.Context(), req.userID, req.folderID)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	h.render(w, r, http.StatusOK, view.TaskCreate, view.NewTaskFormData(folder.ID, nil))
}

// CreateTask handles POST /folders/{folder}/tasks/create.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	const op = "create_task"

	req, err := parseFolderRequest(r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	var body CreateTaskRequest
	messages, err := h.forms.Decode(w, r, &body)
	if err == nil {
		var task *domain.Task
		if task, err = h.createTask(r, req, body); err == nil {
			redirect(w, r, TaskListPath(task.FolderID))
			return
		}
		messages = fieldMessages(err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		h.fail(w, r, op, err)
		return
	}

	// The form is only shown again inside a folder the user owns.
	if _, ferr := h.tasks.PrepareCreate(r.Context(), req.userID, req.folderID); ferr != nil {
		h.fail(w, r, op, ferr)
		return
	}
	h.invalidCreate(w, r, op, req.folderID, body, messages, err)
}

func (h *TaskHandler) createTask(r *http.Request, req folderRequest, body CreateTaskRequest) (*domain.Task, error) {
	dueDate, err := parseDueDate(body.DueDate)
	if err != nil {
		return nil, err
	}
	return h.tasks.CreateTask(r.Context(), req.userID, req.folderID, service.CreateTaskInput{
		Title:   body.Title,
		DueDate: dueDate,
	})
}

// parseDueDate reads a form due date as a validation error on bad input.
func parseDueDate(value string) (time.Time, error) {
	due, err := time.Parse(domain.DueDateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError("due_date", "must be a date in YYYY-MM-DD format", err)
	}
	return due, nil
}

func (h *TaskHandler) invalidCreate(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	folderID uuid.UUID,
	body CreateTaskRequest,
	messages map[string]string,
	err error,
) {
	shared.LogErrorResponse(r, http.StatusUnprocessableEntity, "Validation error", err, shared.WithOperation(op))

	data := view.NewTaskFormData(folderID, nil)
	data.Title = body.Title
	data.DueDate = body.DueDate
	data.Errors = messages
	h.render(w, r, http.StatusUnprocessableEntity, view.TaskCreate, data)
}

// ShowEditForm handles GET /folders/{folder}/tasks/{task}/edit.
func (h *TaskHandler) ShowEditForm(w http.ResponseWriter, r *http.Request) {
	h.showTask(w, r, "show_edit_form", view.TaskEdit)
}

// ShowDeleteForm handles GET /folders/{folder}/tasks/{task}/delete.
func (h *TaskHandler) ShowDeleteForm(w http.ResponseWriter, r *http.Request) {
	h.showTask(w, r, "show_delete_form", view.TaskDelete)
}

func (h *TaskHandler) showTask(w http.ResponseWriter, r *http.Request, op, name string) {
	req, err := parseTaskRequest(r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	task, err := h.tasks.GetTask(r.Context(), req.userID, req.folderID, req.taskID)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	h.render(w, r, http.StatusOK, name, view.NewTaskFormData(req.folderID, task))
}

// EditTask handles POST /folders/{folder}/tasks/{task}/edit.
func (h *TaskHandler) EditTask(w http.ResponseWriter, r *http.Request) {
	const op = "edit_task"

	req, err := parseTaskRequest(r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	var body EditTaskRequest
	messages, err := h.forms.Decode(w, r, &body)
	if err == nil {
		var task *domain.Task
		if task, err = h.updateTask(r, req, body); err == nil {
			redirect(w, r, TaskListPath(task.FolderID))
			return
		}
		messages = fieldMessages(err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		h.fail(w, r, op, err)
		return
	}

	// Walk the ownership chain before echoing anything about the task.
	task, terr := h.tasks.GetTask(r.Context(), req.userID, req.folderID, req.taskID)
	if terr != nil {
		h.fail(w, r, op, terr)
		return
	}
	h.invalidEdit(w, r, op, task, body, messages, err)
}

func (h *TaskHandler) updateTask(r *http.Request, req taskRequest, body EditTaskRequest) (*domain.Task, error) {
	status, err := domain.ParseTaskStatus(body.Status)
	if err != nil {
		return nil, domain.NewValidationError("status", "is not a valid status", err)
	}
	dueDate, err := parseDueDate(body.DueDate)
	if err != nil {
		return nil, err
	}

	return h.tasks.UpdateTask(r.Context(), req.userID, req.folderID, req.taskID, service.UpdateTaskInput{
		Title:   body.Title,
		Status:  status,
		DueDate: dueDate,
	})
}

func (h *TaskHandler) invalidEdit(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	task *domain.Task,
	body EditTaskRequest,
	messages map[string]string,
	err error,
) {
	shared.LogErrorResponse(r, http.StatusUnprocessableEntity, "Validation error", err, shared.WithOperation(op))

	data := view.NewTaskFormData(task.FolderID, task)
	data.Title = body.Title
	data.Status = body.Status
	data.DueDate = body.DueDate
	data.Errors = messages
	h.render(w, r, http.StatusUnprocessableEntity, view.TaskEdit, data)
}

// DeleteTask handles POST /folders/{folder}/tasks/{task}/delete.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	const op = "delete_task"

	req, err := parseTaskRequest(r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	task, err := h.tasks.DeleteTask(r.Context(), req.userID, req.folderID, req.taskID)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	redirect(w, r, TaskListPath(task.FolderID))
}
