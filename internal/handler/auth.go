package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	apperrors "github.com/bostel-e/christshop/internal/errors"
	"github.com/bostel-e/christshop/internal/metrics"
	"github.com/bostel-e/christshop/internal/middleware"
	"github.com/bostel-e/christshop/internal/service"
)

type AuthHandler struct {
	authService  *service.AuthService
	requireAdmin func(http.Handler) http.Handler
	loginLimiter func(http.Handler) http.Handler
	isProduction bool
}

func NewAuthHandler(
	authService *service.AuthService,
	requireAdmin func(http.Handler) http.Handler,
	loginLimiter func(http.Handler) http.Handler,
	isProduction bool,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		requireAdmin: requireAdmin,
		loginLimiter: loginLimiter,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(h.loginLimiter).Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.With(h.requireAdmin).Get("/verify", h.Verify)

	return r
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	admin, token, expiresAt, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.RecordLogin("failure")
		if apperrors.GetCode(err) != apperrors.ErrCodeInvalidCredentials {
			log.Error().Err(err).Msg("login failed")
		}
		writeError(w, err)
		return
	}

	metrics.RecordLogin("success")
	log.Info().Str("adminId", admin.ID).Msg("admin logged in")

	middleware.SetAuthCookie(w, token, time.Until(expiresAt), h.isProduction)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"admin":   admin.PublicProfile(),
	})
}

// Logout revokes the session behind the cookie and clears the cookie. It
// succeeds even when no valid session exists.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.AdminTokenCookie)
	if err == nil && cookie.Value != "" {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			log.Error().Err(err).Msg("logout failed")
		}
	}

	middleware.ClearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Verify runs behind the auth middleware, so reaching here means the token
// passed the full chain.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetAdmin(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"admin":         admin.PublicProfile(),
	})
}
