package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/foldertasks/internal/api/middleware"
	"github.com/phrazzld/foldertasks/internal/api/shared"
	"github.com/phrazzld/foldertasks/internal/platform/logger"
	"github.com/phrazzld/foldertasks/internal/view"
)

// pages writes views and error pages for the HTML handlers.
type pages struct {
	renderer view.Renderer
	logger   *slog.Logger
}

// render writes a view. A template failure falls back to a plain 500.
func (p pages) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := p.renderer.Render(w, status, name, data); err != nil {
		logger.FromContextOrDefault(r.Context(), p.logger).Error("failed to render view",
			slog.String("view", name),
			slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// fail answers a failed operation. Unauthenticated requests are sent to the
// login page; everything else gets the error page with a safe message.
func (p pages) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	shared.LogErrorResponse(r, status, message, err, shared.WithOperation(op))

	if status == http.StatusUnauthorized {
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	}

	p.render(w, r, status, view.Error, view.ErrorData{Status: status, Message: message})
}

// redirect answers a successful post with a 303 so a reload never repeats it.
func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// NotFoundHandler renders the error page for unmatched routes.
func NotFoundHandler(renderer view.Renderer, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	p := pages{renderer: renderer, logger: logger}
	return func(w http.ResponseWriter, r *http.Request) {
		p.render(w, r, http.StatusNotFound, view.Error, view.ErrorData{
			Status:  http.StatusNotFound,
			Message: "Page not found",
		})
	}
}
