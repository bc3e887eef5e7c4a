package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Metric is a headline result shown on a case study, e.g. {"+38%", "booking completion"}.
type Metric struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ApproachStep is one titled step of the design process narrative.
type ApproachStep struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Cover holds the CSS colors used to render a project card when no cover
// image is set.
type Cover struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// DefaultCover returns the gradient used when a project supplies no cover.
func DefaultCover() Cover {
	return Cover{
		Background: "linear-gradient(135deg, #0f172a 0%, #1d4ed8 60%, #93c5fd 100%)",
		Foreground: "#ffffff",
	}
}

// Project represents a single case study
type Project struct {
	ID               uuid.UUID                         `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Slug             string                            `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Title            string                            `json:"title" db:"title" gorm:"type:text;not null"`
	Client           *string                           `json:"client" db:"client" gorm:"type:text"`
	Year             *string                           `json:"year" db:"year" gorm:"type:text"`
	Category         *string                           `json:"category" db:"category" gorm:"type:text"`
	Role             *string                           `json:"role" db:"role" gorm:"type:text"`
	Duration         *string                           `json:"duration" db:"duration" gorm:"type:text"`
	Tools            datatypes.JSONSlice[string]       `json:"tools" db:"tools"`
	Team             *string                           `json:"team" db:"team" gorm:"type:text"`
	Summary          *string                           `json:"summary" db:"summary" gorm:"type:text"`
	Overview         *string                           `json:"overview" db:"overview" gorm:"type:text"`
	Problem          *string                           `json:"problem" db:"problem" gorm:"type:text"`
	Goals            datatypes.JSONSlice[string]       `json:"goals" db:"goals"`
	Responsibilities datatypes.JSONSlice[string]       `json:"responsibilities" db:"responsibilities"`
	Approach         datatypes.JSONSlice[ApproachStep] `json:"approach" db:"approach"`
	Solution         *string                           `json:"solution" db:"solution" gorm:"type:text"`
	Outcome          *string                           `json:"outcome" db:"outcome" gorm:"type:text"`
	Highlights       datatypes.JSONSlice[string]       `json:"highlights" db:"highlights"`
	Metrics          datatypes.JSONSlice[Metric]       `json:"metrics" db:"metrics"`
	Tags             datatypes.JSONSlice[string]       `json:"tags" db:"tags"`
	Cover            datatypes.JSONType[Cover]         `json:"cover" db:"cover"`
	CoverImageURL    *string                           `json:"coverImageUrl" db:"cover_image_url" gorm:"type:text"`
	FigmaEmbed       *string                           `json:"figmaEmbed" db:"figma_embed" gorm:"type:text"`
	// No column defaults here: gorm skips zero-valued fields that carry a
	// default tag on insert, which would silently flip isPublished=false to
	// true. ApplyTo always sets all three.
	IsFeatured       bool                              `json:"isFeatured" db:"is_featured" gorm:"not null"`
	IsPublished      bool                              `json:"isPublished" db:"is_published" gorm:"not null"`
	SortOrder        int                               `json:"sortOrder" db:"sort_order" gorm:"not null"`
	CreatedAt        time.Time                         `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time                         `json:"updatedAt" db:"updated_at"`
}

// ProjectInput is the admin payload for create and update. The slug is
// optional; when absent it is derived from the title.
type ProjectInput struct {
	Slug             string         `json:"slug"`
	Title            string         `json:"title" validate:"required"`
	Client           string         `json:"client"`
	Year             string         `json:"year"`
	Category         string         `json:"category"`
	Role             string         `json:"role"`
	Duration         string         `json:"duration"`
	Tools            []string       `json:"tools"`
	Team             string         `json:"team"`
	Summary          string         `json:"summary"`
	Overview         string         `json:"overview"`
	Problem          string         `json:"problem"`
	Goals            []string       `json:"goals"`
	Responsibilities []string       `json:"responsibilities"`
	Approach         []ApproachStep `json:"approach"`
	Solution         string         `json:"solution"`
	Outcome          string         `json:"outcome"`
	Highlights       []string       `json:"highlights"`
	Metrics          []Metric       `json:"metrics"`
	Tags             []string       `json:"tags"`
	Cover            *Cover         `json:"cover"`
	CoverImageURL    string         `json:"coverImageUrl"`
	FigmaEmbed       string         `json:"figmaEmbed"`
	IsFeatured       bool           `json:"isFeatured"`
	IsPublished      *bool          `json:"isPublished"`
	SortOrder        int            `json:"sortOrder"`
}

// ApplyTo normalizes the input and writes it onto project, leaving identity
// and timestamp fields untouched. Optional strings are trimmed and stored as
// NULL when empty; collections default to empty sequences; metric and
// approach rows missing either half are dropped.
func (in ProjectInput) ApplyTo(project *Project, slug string) {
	project.Slug = slug
	project.Title = strings.TrimSpace(in.Title)
	project.Client = optionalText(in.Client)
	project.Year = optionalText(in.Year)
	project.Category = optionalText(in.Category)
	project.Role = optionalText(in.Role)
	project.Duration = optionalText(in.Duration)
	project.Tools = stringList(in.Tools)
	project.Team = optionalText(in.Team)
	project.Summary = optionalText(in.Summary)
	project.Overview = optionalText(in.Overview)
	project.Problem = optionalText(in.Problem)
	project.Goals = stringList(in.Goals)
	project.Responsibilities = stringList(in.Responsibilities)
	project.Approach = datatypes.JSONSlice[ApproachStep](completeApproach(in.Approach))
	project.Solution = optionalText(in.Solution)
	project.Outcome = optionalText(in.Outcome)
	project.Highlights = stringList(in.Highlights)
	project.Metrics = datatypes.JSONSlice[Metric](completeMetrics(in.Metrics))
	project.Tags = stringList(in.Tags)

	cover := DefaultCover()
	if in.Cover != nil {
		cover = *in.Cover
	}
	project.Cover = datatypes.NewJSONType(cover)

	project.CoverImageURL = optionalText(in.CoverImageURL)
	project.FigmaEmbed = optionalText(in.FigmaEmbed)
	project.IsFeatured = in.IsFeatured
	project.IsPublished = in.IsPublished == nil || *in.IsPublished
	project.SortOrder = in.SortOrder
}

func optionalText(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func stringList(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		values = []string{}
	}
	return datatypes.JSONSlice[string](values)
}

func completeMetrics(rows []Metric) []Metric {
	kept := make([]Metric, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Value) == "" || strings.TrimSpace(row.Label) == "" {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

func completeApproach(rows []ApproachStep) []ApproachStep {
	kept := make([]ApproachStep, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Title) == "" || strings.TrimSpace(row.Detail) == "" {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}
