package api

import (
	"net/http"
	"testing"

	"github.com/rpupo63/design-portfolio-backend/models"
)

func TestCreateInquiryRequiresFields(t *testing.T) {
	router, db := newTestRouter(t, adminVerifier(), adminConfig())

	resp := doJSON(t, router, http.MethodPost, "/inquiries", models.InquiryInput{
		Name:  "Visitor",
		Email: "visitor@example.com",
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without message", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPost, "/inquiries", models.InquiryInput{
		Name:    "Visitor",
		Email:   "not-an-email",
		Message: "Hello",
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for invalid email", resp.Code)
	}

	var count int64
	if err := db.Model(&models.Inquiry{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("row count = %d, want 0", count)
	}
}

func TestCreateInquiryPersistsRow(t *testing.T) {
	router, db := newTestRouter(t, adminVerifier(), adminConfig())

	resp := doJSON(t, router, http.MethodPost, "/inquiries", models.InquiryInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Love the lounge app case study.",
		Project: "lounge-app",
	}, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}

	var inquiries []models.Inquiry
	if err := db.Find(&inquiries).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(inquiries) != 1 {
		t.Fatalf("row count = %d, want 1", len(inquiries))
	}
	if inquiries[0].Project == nil || *inquiries[0].Project != "lounge-app" {
		t.Errorf("project = %v", inquiries[0].Project)
	}
}

func TestAdminInquiryListRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t, adminVerifier(), adminConfig())

	resp := doJSON(t, router, http.MethodGet, "/admin/inquiries", nil, "")
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.Code)
	}
}
