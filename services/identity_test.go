package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/design-portfolio-backend/errs"
)

func newGoTrueStub(t *testing.T, hits *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		if r.URL.Path != "/auth/v1/user" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("apikey") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "u-1", "email": "admin@example.com"})
	}))
}

func TestGetUserResolvesIdentity(t *testing.T) {
	var hits int
	server := newGoTrueStub(t, &hits)
	defer server.Close()

	auth := NewSupabaseAuth(server.URL, "service-key")
	identity, err := auth.GetUser(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if identity.Email != "admin@example.com" || identity.UserID != "u-1" {
		t.Errorf("identity = %+v", identity)
	}
}

func TestGetUserRejectedToken(t *testing.T) {
	var hits int
	server := newGoTrueStub(t, &hits)
	defer server.Close()

	auth := NewSupabaseAuth(server.URL, "service-key")
	_, err := auth.GetUser(context.Background(), "revoked-token")
	if err == nil {
		t.Fatal("expected error for rejected token")
	}
	if !errs.IsUnauthorized(err) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetUserScreensExpiredTokenLocally(t *testing.T) {
	var hits int
	server := newGoTrueStub(t, &hits)
	defer server.Close()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	token, err := expired.SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	auth := NewSupabaseAuth(server.URL, "service-key")
	_, err = auth.GetUser(context.Background(), token)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
	if !errs.IsUnauthorized(err) {
		t.Errorf("unexpected error: %v", err)
	}
	if hits != 0 {
		t.Errorf("expired token reached the server %d times, want 0", hits)
	}
}

func TestGetUserMisconfigured(t *testing.T) {
	auth := NewSupabaseAuth("", "")
	_, err := auth.GetUser(context.Background(), "token")
	if err == nil {
		t.Fatal("expected misconfiguration error")
	}
	if !errs.IsMisconfiguration(err) {
		t.Errorf("unexpected error: %v", err)
	}
}
