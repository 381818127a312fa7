package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/bostel-e/christshop/internal/errors"
	"github.com/bostel-e/christshop/internal/model"
	"github.com/bostel-e/christshop/internal/repository"
	"github.com/bostel-e/christshop/internal/token"
	"github.com/bostel-e/christshop/internal/util"
)

// AuthService is the auth gateway: it combines the stateless token check
// with the session store, which is the sole revocation mechanism. A token
// that verifies cryptographically but has no live session row is rejected.
type AuthService struct {
	adminRepo   repository.AdminRepository
	sessionRepo repository.AdminSessionRepository
	tokens      *token.Service
	sessionTTL  time.Duration
}

func NewAuthService(
	adminRepo repository.AdminRepository,
	sessionRepo repository.AdminSessionRepository,
	tokens *token.Service,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
	}
}

// Login authenticates an admin and creates a session. Unknown email and
// wrong password both come back as INVALID_CREDENTIALS. Concurrent logins
// simply create independent session rows.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Admin, string, time.Time, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.Database(err)
	}
	if admin == nil {
		return nil, "", time.Time{}, apperrors.InvalidCredentials()
	}

	if !util.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, "", time.Time{}, apperrors.InvalidCredentials()
	}

	tokenStr, _, err := s.tokens.Issue(admin.ID, admin.Email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.Internal("Failed to issue token").WithCause(err)
	}

	expiresAt := time.Now().Add(s.sessionTTL)
	_, err = s.sessionRepo.Create(ctx, model.CreateAdminSessionParams{
		AdminID:   admin.ID,
		TokenHash: util.HashToken(tokenStr),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, "", time.Time{}, apperrors.Database(err)
	}

	return admin, tokenStr, expiresAt, nil
}

// Verify validates a token end to end: signature and embedded expiry first
// (no store access on failure), then the session row, then the admin record.
// An expired session row is deleted on the way out so a later verify with
// the same token finds the store already empty.
func (s *AuthService) Verify(ctx context.Context, tokenStr string) (*model.Admin, error) {
	claims, err := s.tokens.Verify(tokenStr)
	if err != nil {
		return nil, apperrors.InvalidToken().WithCause(err)
	}

	tokenHash := util.HashToken(tokenStr)
	session, err := s.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if session == nil {
		return nil, apperrors.SessionExpired()
	}
	if session.IsExpired(time.Now()) {
		if err := s.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
			log.Error().Err(err).Msg("failed to delete expired admin session")
		}
		return nil, apperrors.SessionExpired()
	}

	admin, err := s.adminRepo.FindByID(ctx, claims.AdminID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if admin == nil {
		// Admin deleted after the token was issued.
		return nil, apperrors.NotFound("Admin")
	}

	return admin, nil
}

// Logout revokes the session for the given token. Deleting a token that has
// no session row is a success: logout never fails the caller.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	if err := s.sessionRepo.DeleteByTokenHash(ctx, util.HashToken(tokenStr)); err != nil {
		return apperrors.Database(err)
	}
	return nil
}
