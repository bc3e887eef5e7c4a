package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/design-portfolio-backend/errs"
	"github.com/rpupo63/design-portfolio-backend/models"
	"github.com/rpupo63/design-portfolio-backend/slug"
	"gorm.io/gorm"
)

// fallbackSlug is used when neither the explicit slug nor the title
// normalizes to a usable token.
const fallbackSlug = "project"

// slugAttempts bounds the retry loop for writes that lose the probe/insert
// race against the unique index on slug.
const slugAttempts = 5

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects ordered by featured flag, sort order, then
// recency. With publishedOnly set, unpublished rows are filtered out.
// A non-positive limit means no limit.
func (r *ProjectRepo) FindAll(publishedOnly bool, limit int) ([]*models.Project, error) {
	query := r.db.Order("is_featured DESC, sort_order DESC, created_at DESC")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var projects []*models.Project
	err := query.Find(&projects).Error
	return projects, err
}

// FindBySlug returns the project with the given slug, or nil when absent.
func (r *ProjectRepo) FindBySlug(slugValue string, publishedOnly bool) (*models.Project, error) {
	query := r.db.Where("slug = ?", slugValue)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var project models.Project
	err := query.First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByID returns the project with the given id, or nil when absent.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Create validates and normalizes the input, allocates a unique slug, and
// inserts the row. The returned project carries the store-assigned id and
// timestamps.
func (r *ProjectRepo) Create(input models.ProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}

	base := baseSlug(input)
	project := &models.Project{ID: uuid.New()}

	for attempt := 0; attempt < slugAttempts; attempt++ {
		candidate, err := r.ensureUniqueSlug(base, uuid.Nil)
		if err != nil {
			return nil, err
		}

		input.ApplyTo(project, candidate)
		err = r.db.Create(project).Error
		if err == nil {
			return project, nil
		}
		if !errs.IsUniqueViolation(err) {
			return nil, err
		}
		// Lost the probe/insert race; re-probe for the next free suffix.
	}

	return nil, errs.NewConflictError("could not allocate a unique slug")
}

// Update applies the same validation and slug handling as Create, excluding
// the record's own id from the uniqueness probe so a project keeping its slug
// does not collide with itself. Returns nil when the id does not exist.
func (r *ProjectRepo) Update(id uuid.UUID, input models.ProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}

	var existing models.Project
	err := r.db.First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	base := baseSlug(input)

	for attempt := 0; attempt < slugAttempts; attempt++ {
		candidate, err := r.ensureUniqueSlug(base, id)
		if err != nil {
			return nil, err
		}

		input.ApplyTo(&existing, candidate)
		err = r.db.Save(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errs.IsUniqueViolation(err) {
			return nil, err
		}
	}

	return nil, errs.NewConflictError("could not allocate a unique slug")
}

// Delete hard-deletes by id and reports whether a row was removed.
func (r *ProjectRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// ensureUniqueSlug probes for the smallest suffix that makes base unique,
// skipping excludeID when set. The unique index on slug backstops the
// time-of-check gap; callers retry on a unique violation.
func (r *ProjectRepo) ensureUniqueSlug(base string, excludeID uuid.UUID) (string, error) {
	candidate := base
	for suffix := 1; ; suffix++ {
		query := r.db.Model(&models.Project{}).Where("slug = ?", candidate)
		if excludeID != uuid.Nil {
			query = query.Where("id <> ?", excludeID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

func baseSlug(input models.ProjectInput) string {
	source := strings.TrimSpace(input.Slug)
	if source == "" {
		source = input.Title
	}
	base := slug.Make(source)
	if base == "" {
		base = fallbackSlug
	}
	return base
}
