package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a contact-form submission, optionally tied to a project.
type Inquiry struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Project   *string   `json:"project" db:"project" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type InquiryInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
	Project string `json:"project"`
}

func (in InquiryInput) ToInquiry() Inquiry {
	return Inquiry{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		Project: optionalText(in.Project),
	}
}
