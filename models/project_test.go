package models

import (
	"testing"
)

func TestApplyToNormalizesOptionalStrings(t *testing.T) {
	input := ProjectInput{
		Title:  "  Lounge App  ",
		Client: "  CIRIS  ",
		Year:   "   ",
	}

	var project Project
	input.ApplyTo(&project, "lounge-app")

	if project.Title != "Lounge App" {
		t.Errorf("title = %q, want trimmed", project.Title)
	}
	if project.Client == nil || *project.Client != "CIRIS" {
		t.Errorf("client = %v, want trimmed value", project.Client)
	}
	if project.Year != nil {
		t.Errorf("year = %v, want nil for whitespace-only input", project.Year)
	}
	if project.Summary != nil {
		t.Errorf("summary = %v, want nil when absent", project.Summary)
	}
}

func TestApplyToDefaultsCollections(t *testing.T) {
	input := ProjectInput{Title: "Bare"}

	var project Project
	input.ApplyTo(&project, "bare")

	if project.Tools == nil || len(project.Tools) != 0 {
		t.Errorf("tools = %v, want empty sequence", project.Tools)
	}
	if project.Tags == nil || len(project.Tags) != 0 {
		t.Errorf("tags = %v, want empty sequence", project.Tags)
	}
	if project.Approach == nil || len(project.Approach) != 0 {
		t.Errorf("approach = %v, want empty sequence", project.Approach)
	}
}

func TestApplyToDropsIncompleteRows(t *testing.T) {
	input := ProjectInput{
		Title: "Metrics",
		Metrics: []Metric{
			{Value: "+38%", Label: "booking completion"},
			{Value: "", Label: "orphan label"},
			{Value: "  ", Label: "whitespace value"},
		},
		Approach: []ApproachStep{
			{Title: "Discover", Detail: "Interviews"},
			{Title: "No detail", Detail: ""},
		},
	}

	var project Project
	input.ApplyTo(&project, "metrics")

	if len(project.Metrics) != 1 || project.Metrics[0].Value != "+38%" {
		t.Errorf("metrics = %v, want only the complete row", project.Metrics)
	}
	if len(project.Approach) != 1 || project.Approach[0].Title != "Discover" {
		t.Errorf("approach = %v, want only the complete row", project.Approach)
	}
}

func TestApplyToCoverDefault(t *testing.T) {
	var withDefault Project
	ProjectInput{Title: "A"}.ApplyTo(&withDefault, "a")
	if withDefault.Cover.Data() != DefaultCover() {
		t.Errorf("cover = %+v, want default gradient", withDefault.Cover.Data())
	}

	custom := Cover{Background: "#000", Foreground: "#fff"}
	var withCustom Project
	ProjectInput{Title: "B", Cover: &custom}.ApplyTo(&withCustom, "b")
	if withCustom.Cover.Data() != custom {
		t.Errorf("cover = %+v, want supplied cover", withCustom.Cover.Data())
	}
}

func TestApplyToPublishedDefault(t *testing.T) {
	var defaulted Project
	ProjectInput{Title: "A"}.ApplyTo(&defaulted, "a")
	if !defaulted.IsPublished {
		t.Error("isPublished should default to true")
	}

	published := false
	var explicit Project
	ProjectInput{Title: "B", IsPublished: &published}.ApplyTo(&explicit, "b")
	if explicit.IsPublished {
		t.Error("explicit isPublished=false should be kept")
	}
}

func TestEngagementInputNormalize(t *testing.T) {
	input := EngagementInput{ProjectSlug: "  lounge-app ", EventType: " VIEW "}
	input.Normalize()

	if input.ProjectSlug != "lounge-app" {
		t.Errorf("projectSlug = %q", input.ProjectSlug)
	}
	if input.EventType != "view" {
		t.Errorf("eventType = %q", input.EventType)
	}
}

func TestEngagementInputToEvent(t *testing.T) {
	event := EngagementInput{
		ProjectSlug: "lounge-app",
		ProjectID:   "not-a-uuid",
		EventType:   "view",
		SessionID:   "sess-1",
	}.ToEvent()

	if event.ProjectID != nil {
		t.Errorf("projectId = %v, want nil for unparsable input", event.ProjectID)
	}
	if event.SessionID == nil || *event.SessionID != "sess-1" {
		t.Errorf("sessionId = %v", event.SessionID)
	}
	if !event.EventType.Valid() {
		t.Errorf("eventType %q should be valid", event.EventType)
	}
}
