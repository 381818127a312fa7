package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/bostel-e/christshop/internal/errors"
	"github.com/bostel-e/christshop/internal/metrics"
	"github.com/bostel-e/christshop/internal/model"
	"github.com/bostel-e/christshop/internal/service"
)

const AdminTokenCookie = "admin_token"

type contextKey string

const AdminContextKey contextKey = "admin"

func GetAdmin(ctx context.Context) *model.Admin {
	if admin, ok := ctx.Value(AdminContextKey).(*model.Admin); ok {
		return admin
	}
	return nil
}

// AuthMiddleware guards admin routes. It reads the token cookie and runs the
// full verification chain: token signature, session row, admin record.
type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(AdminTokenCookie)
		if err != nil || cookie.Value == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "Unauthorized",
			})
			return
		}

		admin, err := m.auth.Verify(r.Context(), cookie.Value)
		if err != nil {
			WriteAuthError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), AdminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WriteAuthError maps verification failures to responses. Clients get the
// same wording for an invalid token and a revoked session; the distinction
// only shows up in server logs.
func WriteAuthError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	metrics.RecordAuthFailure(string(code))

	switch code {
	case apperrors.ErrCodeNotFound:
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "Admin not found",
		})
	case apperrors.ErrCodeDatabase, apperrors.ErrCodeInternal:
		log.Error().Err(err).Msg("auth middleware: verification failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Authentication failed",
		})
	default:
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}
}

// SetAuthCookie writes the admin token cookie. SameSite=Lax keeps the cookie
// off cross-site POSTs, which is the CSRF posture for this API.
func SetAuthCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
