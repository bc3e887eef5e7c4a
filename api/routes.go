package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read/track endpoints and the admin-only
// management endpoints
func setupRoutes(r chi.Router, handlers *routeHandlers, adminMiddleware adminMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getPublishedProjects())
		r.Get("/projects/{slug}", handlers.projectHandler.getProjectBySlug())
		r.Post("/engagement", handlers.engagementHandler.recordEvent())
		r.Post("/inquiries", handlers.inquiryHandler.createInquiry())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(adminMiddleware.requireAdmin)

		r.Get("/admin/projects", handlers.projectHandler.getAllProjects())
		r.Post("/admin/projects", handlers.projectHandler.createProject())
		r.Get("/admin/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/admin/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/admin/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/admin/engagement", handlers.engagementHandler.getEngagementTotals())
		r.Get("/admin/inquiries", handlers.inquiryHandler.getAllInquiries())
	})
}
