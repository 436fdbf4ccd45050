package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public pages, the login entry points and the
// admin-only management routes.
func setupRoutes(r chi.Router, handlers *routeHandlers, guard sessionMiddleware, dashboardCache *pageCache) {
	// Public pages
	r.Get("/", handlers.projectHandler.home())
	r.Get("/projects/{projectID}", handlers.projectHandler.viewProject())
	r.Get("/api/projects", handlers.projectHandler.listProjects())

	// Login entry points
	r.Get("/admin/login", handlers.authHandler.loginForm())
	r.Post("/admin/login", handlers.authHandler.login())

	// Requires any active session
	r.Group(func(r chi.Router) {
		r.Use(guard.requireSession)

		r.Get("/admin/logout", handlers.authHandler.logout())
	})

	// Admin-only routes. The session check runs first, the role check second;
	// each redirects to the login page on its own.
	r.Group(func(r chi.Router) {
		r.Use(guard.requireSession)
		r.Use(guard.requireAdmin)

		r.With(dashboardCache.middleware).Get("/admin/dashboard", handlers.projectHandler.dashboard())

		r.Get("/projects/add", handlers.projectHandler.addProjectForm())
		r.Post("/projects/add", handlers.projectHandler.addProject())
		r.Get("/projects/edit/{projectID}", handlers.projectHandler.editProjectForm())
		r.Post("/projects/edit/{projectID}", handlers.projectHandler.editProject())
		r.Post("/projects/delete/{projectID}", handlers.projectHandler.deleteProject())
	})
}
