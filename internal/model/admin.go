package model

import (
	"time"
)

type Admin struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         *string   `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// PublicProfile is the shape returned by login and verify responses.
// The password hash never leaves the server.
func (a *Admin) PublicProfile() map[string]any {
	return map[string]any{
		"id":    a.ID,
		"email": a.Email,
		"name":  a.Name,
	}
}

type AdminSession struct {
	ID        string    `db:"id" json:"id"`
	AdminID   string    `db:"admin_id" json:"adminId"`
	TokenHash string    `db:"token_hash" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (s *AdminSession) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

type CreateAdminSessionParams struct {
	AdminID   string
	TokenHash string
	ExpiresAt time.Time
}
