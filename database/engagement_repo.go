package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/design-portfolio-backend/models"
	"gorm.io/gorm"
)

type EngagementRepo struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) *EngagementRepo {
	return &EngagementRepo{db}
}

// Record appends one event row. Delivery is at-most-once: a single insert,
// no retry.
func (r *EngagementRepo) Record(event *models.EngagementEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return r.db.Create(event).Error
}

// TotalsSince reduces the events recorded at or after since into per-slug
// totals, ordered by first appearance. Rows without a slug are skipped
// entirely; rows without a session id count toward the totals but not toward
// unique sessions.
func (r *EngagementRepo) TotalsSince(since time.Time) ([]models.EngagementTotals, error) {
	var events []models.EngagementEvent
	err := r.db.
		Select("project_slug", "event_type", "session_id").
		Where("created_at >= ?", since).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	totalsBySlug := make(map[string]*models.EngagementTotals)
	sessionsBySlug := make(map[string]map[string]struct{})
	var order []string

	for _, event := range events {
		slug := event.ProjectSlug
		if slug == "" {
			continue
		}

		record, ok := totalsBySlug[slug]
		if !ok {
			record = &models.EngagementTotals{Slug: slug}
			totalsBySlug[slug] = record
			order = append(order, slug)
		}

		record.Total++
		switch event.EventType {
		case models.EventView:
			record.Views++
		case models.EventInquiry:
			record.Inquiries++
		case models.EventClick:
			record.Clicks++
		}

		if event.SessionID != nil && *event.SessionID != "" {
			sessions, ok := sessionsBySlug[slug]
			if !ok {
				sessions = make(map[string]struct{})
				sessionsBySlug[slug] = sessions
			}
			sessions[*event.SessionID] = struct{}{}
		}
	}

	totals := make([]models.EngagementTotals, 0, len(order))
	for _, slug := range order {
		record := totalsBySlug[slug]
		record.UniqueSessions = len(sessionsBySlug[slug])
		totals = append(totals, *record)
	}
	return totals, nil
}
