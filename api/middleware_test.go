package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/design-portfolio-backend/database"
	"github.com/rpupo63/design-portfolio-backend/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubVerifier struct {
	identity services.Identity
	err      error
}

func (s stubVerifier) GetUser(ctx context.Context, token string) (services.Identity, error) {
	if s.err != nil {
		return services.Identity{}, s.err
	}
	return s.identity, nil
}

func adminVerifier() stubVerifier {
	return stubVerifier{identity: services.Identity{UserID: "u-1", Email: "admin@example.com"}}
}

func adminConfig() map[string]string {
	return map[string]string{"ADMIN_EMAIL": "admin@example.com"}
}

func newTestRouter(t *testing.T, verifier TokenVerifier, cfg map[string]string) (*chi.Mux, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return newRouter(database.New(db), verifier, withConfig(cfg)), db
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAdminGuardMissingToken(t *testing.T) {
	router, _ := newTestRouter(t, adminVerifier(), adminConfig())

	resp := doJSON(t, router, http.MethodGet, "/admin/projects", nil, "")
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.Code)
	}
}

func TestAdminGuardWrongEmail(t *testing.T) {
	verifier := stubVerifier{identity: services.Identity{UserID: "u-2", Email: "intruder@example.com"}}
	router, _ := newTestRouter(t, verifier, adminConfig())

	resp := doJSON(t, router, http.MethodGet, "/admin/projects", nil, "token")
	if resp.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.Code)
	}
}

func TestAdminGuardEmailComparisonIsCaseInsensitive(t *testing.T) {
	verifier := stubVerifier{identity: services.Identity{UserID: "u-1", Email: "Admin@Example.COM"}}
	router, _ := newTestRouter(t, verifier, adminConfig())

	resp := doJSON(t, router, http.MethodGet, "/admin/projects", nil, "token")
	if resp.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.Code)
	}
}

func TestAdminGuardMisconfigured(t *testing.T) {
	router, _ := newTestRouter(t, adminVerifier(), map[string]string{})

	resp := doJSON(t, router, http.MethodGet, "/admin/projects", nil, "token")
	if resp.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.Code)
	}
}

func TestAdminGuardVerifierFailure(t *testing.T) {
	verifier := stubVerifier{err: errors.New("gotrue unreachable")}
	router, _ := newTestRouter(t, verifier, adminConfig())

	resp := doJSON(t, router, http.MethodGet, "/admin/projects", nil, "token")
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.Code)
	}
}

func TestAdminGuardAllowsConfiguredAdmin(t *testing.T) {
	router, _ := newTestRouter(t, adminVerifier(), adminConfig())

	resp := doJSON(t, router, http.MethodGet, "/admin/projects", nil, "token")
	if resp.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.Code)
	}
}
