package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rpupo63/design-portfolio-backend/database"
	"github.com/rpupo63/design-portfolio-backend/errs"
	"github.com/rpupo63/design-portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	validate    *validator.Validate
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		validate:    validator.New(),
	}
}

// writeProjectError routes repository failures: validation/conflict errors
// pass through with their own status, everything else is classified as a
// database failure.
func (h projectHandler) writeProjectError(w http.ResponseWriter, operation string, err error) {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		h.responder.WriteError(w, apiErr)
		return
	}
	h.responder.WriteError(w, wrapDatabaseError(operation, "project", err))
}

// getPublishedProjects retrieves the public project list
// @Summary List projects
// @Description Retrieves projects ordered by featured flag, sort order, and recency. Defaults to published projects only.
// @Tags Projects
// @Produce json
// @Param publishedOnly query bool false "Filter to published projects (default true)"
// @Param limit query int false "Maximum number of projects"
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) getPublishedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publishedOnly := true
		if raw := r.URL.Query().Get("publishedOnly"); raw != "" {
			if parsed, err := strconv.ParseBool(raw); err == nil {
				publishedOnly = parsed
			}
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				limit = parsed
			}
		}

		projects, err := h.projectRepo.FindAll(publishedOnly, limit)
		if err != nil {
			h.writeProjectError(w, "find projects", err)
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects})
	}
}

// getProjectBySlug retrieves one published project by its slug
// @Summary Get project by slug
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} ProjectEnvelope "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{slug} [get]
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projectRepo.FindBySlug(slug, true)
		if err != nil {
			h.writeProjectError(w, "find project", err)
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, ProjectEnvelope{Project: project})
	}
}

// getAllProjects retrieves every project for the admin dashboard, including
// unpublished ones
// @Summary Get all projects (admin)
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectCollection "List of all projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /admin/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(false, 0)
		if err != nil {
			h.writeProjectError(w, "find projects", err)
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects})
	}
}

// createProject creates a new project
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.ProjectInput true "Project data"
// @Success 201 {object} ProjectEnvelope "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Router /admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ProjectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := h.validate.Struct(input); err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		project, err := h.projectRepo.Create(input)
		if err != nil {
			h.writeProjectError(w, "create project", err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, ProjectEnvelope{Project: project})
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project (admin)
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} ProjectEnvelope "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /admin/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.writeProjectError(w, "find project", err)
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, ProjectEnvelope{Project: project})
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body models.ProjectInput true "Updated project data"
// @Success 200 {object} ProjectEnvelope "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /admin/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		var input models.ProjectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := h.validate.Struct(input); err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		project, err := h.projectRepo.Update(projectID, input)
		if err != nil {
			h.writeProjectError(w, "update project", err)
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, ProjectEnvelope{Project: project})
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /admin/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		removed, err := h.projectRepo.Delete(projectID)
		if err != nil {
			h.writeProjectError(w, "delete project", err)
			return
		}
		if !removed {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

func (h projectHandler) parseProjectID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
		return uuid.Nil, false
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return uuid.Nil, false
	}
	return projectID, true
}
