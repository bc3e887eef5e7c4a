package database

import (
	"github.com/rpupo63/design-portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo    *ProjectRepo
	engagementRepo *EngagementRepo
	inquiryRepo    *InquiryRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:    NewProjectRepo(db),
		engagementRepo: NewEngagementRepo(db),
		inquiryRepo:    NewInquiryRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) EngagementRepo() *EngagementRepo {
	return d.engagementRepo
}

func (d Database) InquiryRepo() *InquiryRepo {
	return d.inquiryRepo
}

// Migrate creates or updates the backing tables. Run once at startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.EngagementEvent{},
		&models.Inquiry{},
	)
}
