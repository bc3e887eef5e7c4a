package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates the tracked user actions.
type EventType string

const (
	EventView    EventType = "view"
	EventInquiry EventType = "inquiry"
	EventClick   EventType = "click"
)

func (e EventType) Valid() bool {
	switch e {
	case EventView, EventInquiry, EventClick:
		return true
	}
	return false
}

// EngagementEvent is one recorded user interaction against a project. Rows
// are append-only; totals are derived on read.
type EngagementEvent struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectSlug string     `json:"projectSlug" db:"project_slug" gorm:"type:text;not null;index"`
	ProjectID   *uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid"`
	EventType   EventType  `json:"eventType" db:"event_type" gorm:"type:text;not null"`
	SessionID   *string    `json:"sessionId" db:"session_id" gorm:"type:text"`
	Pathname    *string    `json:"pathname" db:"pathname" gorm:"type:text"`
	Referrer    *string    `json:"referrer" db:"referrer" gorm:"type:text"`
	UserAgent   *string    `json:"userAgent" db:"user_agent" gorm:"type:text"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"index"`
}

// EngagementTotals is the derived per-project view over a trailing window.
// Never persisted.
type EngagementTotals struct {
	Slug           string `json:"slug"`
	Total          int    `json:"total"`
	Views          int    `json:"views"`
	Inquiries      int    `json:"inquiries"`
	Clicks         int    `json:"clicks"`
	UniqueSessions int    `json:"uniqueSessions"`
}

// EngagementInput is the public tracking payload, sent fire-and-forget from
// the browser.
type EngagementInput struct {
	ProjectSlug string `json:"projectSlug" validate:"required"`
	ProjectID   string `json:"projectId"`
	EventType   string `json:"eventType" validate:"required,oneof=view inquiry click"`
	SessionID   string `json:"sessionId"`
	Pathname    string `json:"pathname"`
	Referrer    string `json:"referrer"`
	UserAgent   string `json:"userAgent"`
}

// Normalize trims the slug and lowercases the event type so validation and
// storage see canonical values.
func (in *EngagementInput) Normalize() {
	in.ProjectSlug = strings.TrimSpace(in.ProjectSlug)
	in.EventType = strings.ToLower(strings.TrimSpace(in.EventType))
}

// ToEvent builds the row to append. The project id is kept only when it
// parses as a UUID.
func (in EngagementInput) ToEvent() EngagementEvent {
	event := EngagementEvent{
		ProjectSlug: in.ProjectSlug,
		EventType:   EventType(in.EventType),
		SessionID:   optionalText(in.SessionID),
		Pathname:    optionalText(in.Pathname),
		Referrer:    optionalText(in.Referrer),
		UserAgent:   optionalText(in.UserAgent),
	}
	if parsed, err := uuid.Parse(strings.TrimSpace(in.ProjectID)); err == nil {
		event.ProjectID = &parsed
	}
	return event
}
