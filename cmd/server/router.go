package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/foldertasks/internal/api"
	apiMiddleware "github.com/phrazzld/foldertasks/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	forms := api.NewFormDecoder(nil)
	cookie := api.SessionCookie{Name: app.config.Auth.CookieName, Secure: app.config.Auth.CookieSecure}

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, cookie, app.renderer, forms, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, cookie, app.logger)
	folderHandler := api.NewFolderHandler(app.folderService, app.renderer, forms, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.renderer, forms, app.logger)
	healthHandler := api.NewHealthHandler(app.db.sqlDB)

	r.NotFound(api.NotFoundHandler(app.renderer, app.logger))
	r.Get("/health", healthHandler.Check)

	// Session endpoints (public)
	r.Get("/login", authHandler.ShowLogin)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.ShowRegister)
	r.Post("/register", authHandler.Register)
	r.Post("/logout", authHandler.Logout)

	// Protected pages
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/", folderHandler.Home)
		r.Get("/folders/create", folderHandler.ShowCreateForm)
		r.Post("/folders/create", folderHandler.CreateFolder)
		r.Route("/folders/{folder}/tasks", taskHandler.Routes)
	})

	return r
}
