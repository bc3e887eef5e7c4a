package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/design-portfolio-backend/database"
	"github.com/rpupo63/design-portfolio-backend/errs"
	"github.com/rpupo63/design-portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultWindowDays is the trailing aggregation window used when the caller
// passes nothing usable.
const defaultWindowDays = 30

type engagementHandler struct {
	responder      Responder
	logger         zerolog.Logger
	engagementRepo *database.EngagementRepo
	validate       *validator.Validate
}

func newEngagementHandler(engagementRepo *database.EngagementRepo) engagementHandler {
	logger := log.With().Str("handlerName", "engagementHandler").Logger()

	return engagementHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		engagementRepo: engagementRepo,
		validate:       validator.New(),
	}
}

// recordEvent appends one engagement event. Called fire-and-forget from the
// browser, so the response carries nothing beyond an acknowledgement.
// @Summary Record engagement event
// @Tags Engagement
// @Accept json
// @Produce json
// @Param event body models.EngagementInput true "Engagement event"
// @Success 200 {object} Ack "Event recorded"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid event type or missing slug"
// @Router /engagement [post]
func (h engagementHandler) recordEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.EngagementInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("engagement", err))
			return
		}

		input.Normalize()
		if err := h.validate.Struct(input); err != nil {
			if input.ProjectSlug == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("projectSlug"))
				return
			}
			h.responder.WriteError(w, errs.NewInvalidFieldError("eventType", "must be one of view, inquiry, click"))
			return
		}

		event := input.ToEvent()
		if err := h.engagementRepo.Record(&event); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("record event", "engagement event", err))
			return
		}

		h.responder.WriteJSON(w, Ack{OK: true})
	}
}

// getEngagementTotals aggregates events over a trailing window into per-project totals
// @Summary Engagement totals (admin)
// @Tags Engagement
// @Produce json
// @Param days query number false "Trailing window in days (default 30)"
// @Success 200 {object} EngagementReport "Per-project totals"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error aggregating events"
// @Router /admin/engagement [get]
func (h engagementHandler) getEngagementTotals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := float64(defaultWindowDays)
		if raw := r.URL.Query().Get("days"); raw != "" {
			// Anything non-positive or non-finite silently falls back
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 && !math.IsInf(parsed, 0) {
				days = parsed
			}
		}

		since := time.Now().Add(-time.Duration(days * float64(24*time.Hour)))
		totals, err := h.engagementRepo.TotalsSince(since)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate events", "engagement events", err))
			return
		}
		if totals == nil {
			totals = []models.EngagementTotals{}
		}

		h.responder.WriteJSON(w, EngagementReport{WindowDays: days, Totals: totals})
	}
}
