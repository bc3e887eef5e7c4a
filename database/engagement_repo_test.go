package database

import (
	"testing"
	"time"

	"github.com/rpupo63/design-portfolio-backend/models"
)

func recordEvent(t *testing.T, repo *EngagementRepo, slug string, eventType models.EventType, sessionID string, createdAt time.Time) {
	t.Helper()

	event := models.EngagementEvent{
		ProjectSlug: slug,
		EventType:   eventType,
		CreatedAt:   createdAt,
	}
	if sessionID != "" {
		event.SessionID = &sessionID
	}
	if err := repo.Record(&event); err != nil {
		t.Fatalf("record: %v", err)
	}
}

func TestTotalsSinceCountsPerSlug(t *testing.T) {
	repo := NewEngagementRepo(openTestDB(t))
	now := time.Now()

	// 3 views for "x" across 2 distinct sessions
	recordEvent(t, repo, "x", models.EventView, "sess-1", now)
	recordEvent(t, repo, "x", models.EventView, "sess-1", now)
	recordEvent(t, repo, "x", models.EventView, "sess-2", now)
	// mixed events for "y"; one row has no session id
	recordEvent(t, repo, "y", models.EventInquiry, "sess-3", now)
	recordEvent(t, repo, "y", models.EventClick, "", now)

	totals, err := repo.TotalsSince(now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("slug count = %d, want 2", len(totals))
	}

	bySlug := make(map[string]models.EngagementTotals, len(totals))
	for _, record := range totals {
		bySlug[record.Slug] = record
	}

	x := bySlug["x"]
	if x.Total != 3 || x.Views != 3 || x.Inquiries != 0 || x.Clicks != 0 {
		t.Errorf("x = %+v", x)
	}
	if x.UniqueSessions != 2 {
		t.Errorf("x.uniqueSessions = %d, want 2", x.UniqueSessions)
	}

	y := bySlug["y"]
	if y.Total != 2 || y.Inquiries != 1 || y.Clicks != 1 {
		t.Errorf("y = %+v", y)
	}
	// The sessionless click still counts toward the total, not the uniques.
	if y.UniqueSessions != 1 {
		t.Errorf("y.uniqueSessions = %d, want 1", y.UniqueSessions)
	}
}

func TestTotalsSinceHonorsWindow(t *testing.T) {
	repo := NewEngagementRepo(openTestDB(t))
	now := time.Now()

	recordEvent(t, repo, "x", models.EventView, "sess-1", now)
	recordEvent(t, repo, "x", models.EventView, "sess-1", now.Add(-40*24*time.Hour))

	totals, err := repo.TotalsSince(now.Add(-30 * 24 * time.Hour))
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(totals) != 1 || totals[0].Total != 1 {
		t.Fatalf("totals = %+v, want only the recent event", totals)
	}
}

func TestTotalsSinceEmpty(t *testing.T) {
	repo := NewEngagementRepo(openTestDB(t))

	totals, err := repo.TotalsSince(time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("totals = %+v, want none", totals)
	}
}
