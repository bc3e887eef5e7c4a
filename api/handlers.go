package api

import (
	"github.com/rpupo63/design-portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, config map[string]string) *routeHandlers {
	return &routeHandlers{
		projectHandler:    newProjectHandler(database.ProjectRepo()),
		engagementHandler: newEngagementHandler(database.EngagementRepo()),
		inquiryHandler:    newInquiryHandler(database.InquiryRepo(), config),
	}
}
