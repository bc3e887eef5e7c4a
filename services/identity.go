package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/design-portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Identity is the resolved user behind an access token.
type Identity struct {
	UserID string
	Email  string
}

// SupabaseAuth resolves access tokens against the Supabase GoTrue user
// endpoint using the service-role key. Construct once and share; the client
// holds no mutable state.
type SupabaseAuth struct {
	baseURL    string
	serviceKey string
	client     *http.Client
	logger     zerolog.Logger
}

func NewSupabaseAuth(baseURL, serviceRoleKey string) *SupabaseAuth {
	return &SupabaseAuth{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		serviceKey: serviceRoleKey,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     log.With().Str("service", "supabaseAuth").Logger(),
	}
}

type gotrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetUser resolves an access token to the user it belongs to. Any rejection
// by GoTrue surfaces as an unauthorized error; transport failures surface
// as-is for the caller to classify.
func (s *SupabaseAuth) GetUser(ctx context.Context, accessToken string) (Identity, error) {
	if s.baseURL == "" || s.serviceKey == "" {
		return Identity{}, errs.NewMisconfigurationError("SUPABASE_URL / SUPABASE_SERVICE_ROLE_KEY")
	}

	// Screen obviously-expired tokens before the network hop. The signature
	// is not checked here; GoTrue stays the authority, so revoked sessions
	// are still rejected remotely.
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err == nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			return Identity{}, errs.NewUnauthorizedError("session expired")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to create GoTrue request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to reach GoTrue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Debug().Int("status", resp.StatusCode).Msg("GoTrue rejected access token")
		return Identity{}, errs.NewUnauthorizedError("invalid session")
	}

	var user gotrueUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return Identity{}, fmt.Errorf("failed to decode GoTrue response: %w", err)
	}
	if user.Email == "" {
		return Identity{}, errs.NewUnauthorizedError("invalid session")
	}

	return Identity{UserID: user.ID, Email: user.Email}, nil
}
