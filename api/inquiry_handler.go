package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/design-portfolio-backend/database"
	"github.com/rpupo63/design-portfolio-backend/errs"
	"github.com/rpupo63/design-portfolio-backend/models"
	"github.com/rpupo63/design-portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type inquiryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	inquiryRepo *database.InquiryRepo
	config      map[string]string
	validate    *validator.Validate
}

func newInquiryHandler(inquiryRepo *database.InquiryRepo, config map[string]string) inquiryHandler {
	logger := log.With().Str("handlerName", "inquiryHandler").Logger()

	return inquiryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		inquiryRepo: inquiryRepo,
		config:      config,
		validate:    validator.New(),
	}
}

// createInquiry stores a contact-form submission and notifies the portfolio
// owner by email. The notification is best effort: once the row is stored,
// a delivery failure is logged, not surfaced.
// @Summary Submit inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param inquiry body models.InquiryInput true "Inquiry data"
// @Success 200 {object} Ack "Inquiry recorded"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing name, email, or message"
// @Router /inquiries [post]
func (h inquiryHandler) createInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.InquiryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("inquiry", err))
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		input.Email = strings.TrimSpace(input.Email)
		input.Message = strings.TrimSpace(input.Message)
		input.Project = strings.TrimSpace(input.Project)

		if err := h.validate.Struct(input); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("name, email, and message are required"))
			return
		}

		inquiry := input.ToInquiry()
		if err := h.inquiryRepo.Add(&inquiry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create inquiry", "inquiry", err))
			return
		}

		if err := services.NotifyInquiry(h.config, inquiry); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to send inquiry notification")
		}

		h.responder.WriteJSON(w, Ack{OK: true})
	}
}

// getAllInquiries lists inquiries newest first for the admin dashboard
// @Summary List inquiries (admin)
// @Tags Inquiries
// @Produce json
// @Success 200 {object} map[string][]models.Inquiry "List of inquiries"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching inquiries"
// @Router /admin/inquiries [get]
func (h inquiryHandler) getAllInquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiries, err := h.inquiryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find inquiries", "inquiries", err))
			return
		}
		if inquiries == nil {
			inquiries = []*models.Inquiry{}
		}

		h.responder.WriteJSON(w, map[string][]*models.Inquiry{"inquiries": inquiries})
	}
}
