package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/api/middleware"
	"github.com/phrazzld/foldertasks/internal/api/shared"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/service"
	"github.com/phrazzld/foldertasks/internal/service/auth"
	"github.com/phrazzld/foldertasks/internal/view"
)

// SessionCookie configures the cookie carrying the session token.
type SessionCookie = middleware.SessionCookie

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	users      service.UserService
	jwtService auth.JWTService
	cookie     SessionCookie
	forms      *FormDecoder
	pages
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	users service.UserService,
	jwtService auth.JWTService,
	cookie SessionCookie,
	renderer view.Renderer,
	forms *FormDecoder,
	logger *slog.Logger,
) *AuthHandler {
	if users == nil {
		panic("users cannot be nil") // ALLOW-PANIC: constructor enforcing required dependency
	}
	if jwtService == nil {
		panic("jwtService cannot be nil") // ALLOW-PANIC: constructor enforcing required dependency
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

	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		cookie:     cookie,
		forms:      forms,
		pages: pages{
			renderer: renderer,
			logger:   logger.With(slog.String("component", "auth_handler")),
		},
	}
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.Login, view.AuthFormData{})
}

// ShowRegister handles GET /register.
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.Register, view.AuthFormData{})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "login"

	var body CredentialsRequest
	messages, err := h.forms.Decode(w, r, &body)
	if err != nil {
		h.invalidCredentials(w, r, op, view.Login, body, messages, err)
		return
	}

	user, err := h.users.Authenticate(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.LogErrorResponse(r, http.StatusUnauthorized, "Invalid email or password", err,
				shared.WithOperation(op), shared.WithElevatedLogLevel())
			h.render(w, r, http.StatusUnauthorized, view.Login, view.AuthFormData{
				Email:  body.Email,
				Errors: map[string]string{"form": "Invalid email or password"},
			})
			return
		}
		h.fail(w, r, op, err)
		return
	}

	h.startSession(w, r, op, user.ID)
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "register"

	var body CredentialsRequest
	messages, err := h.forms.Decode(w, r, &body)
	if err == nil {
		var user *domain.User
		if user, err = h.users.Register(r.Context(), body.Email, body.Password); err == nil {
			h.startSession(w, r, op, user.ID)
			return
		}
		messages = fieldMessages(err)
	}

	if errors.Is(err, service.ErrEmailTaken) {
		shared.LogErrorResponse(r, http.StatusConflict, "Email already exists", err, shared.WithOperation(op))
		h.render(w, r, http.StatusConflict, view.Register, view.AuthFormData{
			Email:  body.Email,
			Errors: map[string]string{"email": "Email is already registered"},
		})
		return
	}
	h.invalidCredentials(w, r, op, view.Register, body, messages, err)
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookie.Clear(w)
	redirect(w, r, middleware.LoginPath)
}

// invalidCredentials re-renders a credentials form for validation failures
// and falls back to the error page for anything else.
func (h *AuthHandler) invalidCredentials(
	w http.ResponseWriter,
	r *http.Request,
	op, name string,
	body CredentialsRequest,
	messages map[string]string,
	err error,
) {
	if !errors.Is(err, domain.ErrValidation) {
		h.fail(w, r, op, err)
		return
	}

	shared.LogErrorResponse(r, http.StatusUnprocessableEntity, "Validation error", err, shared.WithOperation(op))
	h.render(w, r, http.StatusUnprocessableEntity, name, view.AuthFormData{
		Email:  body.Email,
		Errors: messages,
	})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, op string, userID uuid.UUID) {
	token, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	h.cookie.Set(w, token, int(h.jwtService.TokenLifetime().Seconds()))
	redirect(w, r, "/")
}
