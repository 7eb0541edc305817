package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/api/shared"
	"github.com/phrazzld/foldertasks/internal/platform/logger"
	"github.com/phrazzld/foldertasks/internal/redact"
	"github.com/phrazzld/foldertasks/internal/service/auth"
)

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// SessionCookie configures the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set writes the session cookie. A negative maxAge expires it.
func (c SessionCookie) Set(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	c.Set(w, "", -1)
}

// AuthMiddleware resolves the session token of a request into the
// authenticated user's ID.
type AuthMiddleware struct {
	jwtService auth.JWTService
	cookie     SessionCookie
	logger     *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware reading the session from
// the session cookie or an Authorization header.
func NewAuthMiddleware(jwtService auth.JWTService, cookie SessionCookie, logger *slog.Logger) *AuthMiddleware {
	if jwtService == nil {
		panic("jwtService cannot be nil") // ALLOW-PANIC: constructor enforcing required dependency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		cookie:     cookie,
		logger:     logger.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate validates the session token and adds the user ID to the
// request context. Requests without a valid token are redirected to the
// login page.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), m.logger)

		token, err := m.tokenFromRequest(r)
		if err == nil {
			var claims *auth.Claims
			claims, err = m.jwtService.ValidateToken(r.Context(), token)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(shared.WithUserID(r.Context(), claims.UserID)))
				return
			}
		}

		switch {
		case errors.Is(err, auth.ErrMissingToken):
			log.Debug("no session token", slog.String("path", r.URL.Path))
		case errors.Is(err, auth.ErrExpiredToken),
			errors.Is(err, auth.ErrTokenNotYetValid),
			errors.Is(err, auth.ErrInvalidToken):
			log.Debug("rejected session token",
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()))
			m.cookie.Clear(w)
		default:
			log.Error("failed to validate session token", slog.String("error", redact.Error(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, LoginPath, http.StatusSeeOther)
	})
}

// tokenFromRequest prefers the session cookie and falls back to a Bearer token.
func (m *AuthMiddleware) tokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(m.cookie.Name); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.UserIDFromContext(r.Context())
}
