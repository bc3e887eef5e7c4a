package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/design-portfolio-backend/models"
	"gorm.io/gorm"
)

type InquiryRepo struct {
	db *gorm.DB
}

func NewInquiryRepo(db *gorm.DB) *InquiryRepo {
	return &InquiryRepo{db}
}

// Add inserts a new inquiry into the database
func (r *InquiryRepo) Add(inquiry *models.Inquiry) error {
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	return r.db.Create(inquiry).Error
}

// FindAll returns inquiries newest first, for the admin dashboard.
func (r *InquiryRepo) FindAll() ([]*models.Inquiry, error) {
	var inquiries []*models.Inquiry
	err := r.db.Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}
