package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bostel-e/christshop/internal/model"
)

type AdminRepository interface {
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
}

type adminRepo struct {
	db sqlxDB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.GetContext(ctx, &admin, `
		SELECT * FROM admins WHERE id = $1
	`, id)
	return HandleNotFound(&admin, err)
}

func (r *adminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.GetContext(ctx, &admin, `
		SELECT * FROM admins WHERE email = $1
	`, email)
	return HandleNotFound(&admin, err)
}
