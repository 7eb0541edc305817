package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/foldertasks/internal/api/shared"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/service"
	"github.com/phrazzld/foldertasks/internal/view"
)

// FolderCreatePath is the folder creation form.
const FolderCreatePath = "/folders/create"

// FolderHandler serves the home redirect and folder creation.
type FolderHandler struct {
	folders service.FolderService
	forms   *FormDecoder
	pages
}

// NewFolderHandler creates a new FolderHandler.
func NewFolderHandler(
	folders service.FolderService,
	renderer view.Renderer,
	forms *FormDecoder,
	logger *slog.Logger,
) *FolderHandler {
	if folders == nil {
		panic("folders cannot be nil") // ALLOW-PANIC: constructor enforcing required dependency
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

	return &FolderHandler{
		folders: folders,
		forms:   forms,
		pages: pages{
			renderer: renderer,
			logger:   logger.With(slog.String("component", "folder_handler")),
		},
	}
}

// Home handles GET /. It opens the user's first folder, or the folder form
// when there is none yet.
func (h *FolderHandler) Home(w http.ResponseWriter, r *http.Request) {
	const op = "home"

	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	folder, err := h.folders.FirstFolder(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrFolderNotFound) {
			redirect(w, r, FolderCreatePath)
			return
		}
		h.fail(w, r, op, err)
		return
	}

	redirect(w, r, TaskListPath(folder.ID))
}

// ShowCreateForm handles GET /folders/create.
func (h *FolderHandler) ShowCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.FolderCreate, view.FolderFormData{})
}

// CreateFolder handles POST /folders/create.
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	const op = "create_folder"

	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	var body FolderRequest
	messages, err := h.forms.Decode(w, r, &body)
	if err == nil {
		var folder *domain.Folder
		if folder, err = h.folders.CreateFolder(r.Context(), userID, body.Title); err == nil {
			redirect(w, r, TaskListPath(folder.ID))
			return
		}
		messages = fieldMessages(err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		h.fail(w, r, op, err)
		return
	}

	shared.LogErrorResponse(r, http.StatusUnprocessableEntity, "Validation error", err, shared.WithOperation(op))
	h.render(w, r, http.StatusUnprocessableEntity, view.FolderCreate, view.FolderFormData{
		Title:  body.Title,
		Errors: messages,
	})
}
