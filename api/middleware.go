package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rpupo63/design-portfolio-backend/errs"
	"github.com/rpupo63/design-portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TokenVerifier resolves a bearer token to the identity it belongs to.
// Satisfied by services.SupabaseAuth.
type TokenVerifier interface {
	GetUser(ctx context.Context, accessToken string) (services.Identity, error)
}

type adminMiddleware struct {
	responder  Responder
	verifier   TokenVerifier
	adminEmail string
}

func newAdminMiddleware(verifier TokenVerifier, adminEmail string) adminMiddleware {
	logger := log.With().Str("handlerName", "adminMiddleware").Logger()
	return adminMiddleware{
		responder:  NewResponder(logger),
		verifier:   verifier,
		adminEmail: adminEmail,
	}
}

// requireAdmin gates a route group behind the single configured admin
// principal: 401 without a resolvable token, 403 for any other user, 500 when
// ADMIN_EMAIL is missing from the environment.
func (m adminMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewUnauthorizedError("missing access token"))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			m.responder.WriteError(w, errs.NewUnauthorizedError("missing access token"))
			return
		}

		if m.adminEmail == "" {
			m.responder.WriteError(w, errs.NewMisconfigurationError("ADMIN_EMAIL"))
			return
		}

		identity, err := m.verifier.GetUser(r.Context(), token)
		if err != nil {
			var apiErr *errs.ApiErr
			if errors.As(err, &apiErr) {
				m.responder.WriteError(w, apiErr)
				return
			}
			log.Warn().Err(err).Msg("Token resolution failed")
			m.responder.WriteError(w, errs.NewUnauthorizedError("invalid session"))
			return
		}

		if !strings.EqualFold(identity.Email, m.adminEmail) {
			m.responder.WriteError(w, errs.NewForbiddenError("not authorized"))
			return
		}

		updatedCtx := ctxWithAdminEmail(r.Context(), identity.Email)
		next.ServeHTTP(w, r.WithContext(updatedCtx))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Optionally log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	// Set up colored console writer for development
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		// Color-code based on HTTP status codes
		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
