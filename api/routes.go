package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public pages, the contact submission path, and the
// administrative endpoints.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public pages
		r.Get("/", handlers.pageHandler.home())
		r.Get("/about", handlers.pageHandler.about())
		r.Get("/projects", handlers.pageHandler.projects())
		r.Get("/contact", handlers.contactHandler.showForm())
		r.Post("/contact", handlers.contactHandler.submit())

		// Administrative path; no UI sits in front of these
		r.Get("/admin/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/admin/project", handlers.projectHandler.createProject())
		r.Put("/admin/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/admin/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/admin/skill", handlers.skillHandler.createSkill())
		r.Put("/admin/skill/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/admin/skill/{skillID}", handlers.skillHandler.deleteSkill())
	})
}
