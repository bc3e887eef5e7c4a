package api

import (
	"github.com/rpupo63/design-portfolio-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler    projectHandler
	engagementHandler engagementHandler
	inquiryHandler    inquiryHandler
}

// ProjectCollection wraps a list of projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
}

// ProjectEnvelope wraps a single project
type ProjectEnvelope struct {
	Project *models.Project `json:"project"`
}

// EngagementReport is the admin analytics response: the window actually used
// and the per-project totals within it.
type EngagementReport struct {
	WindowDays float64                   `json:"windowDays"`
	Totals     []models.EngagementTotals `json:"totals"`
}

// Ack acknowledges a write-only request
type Ack struct {
	OK bool `json:"ok"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error string `json:"error" example:"project not found"`
	Field string `json:"field,omitempty" example:"title"`
}
