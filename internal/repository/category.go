package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bostel-e/christshop/internal/model"
)

type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

const categoryColumns = `
	c.id, c.name, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id) AS product_count
`

type categoryRepo struct {
	db sqlxDB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	err := r.db.GetContext(ctx, &category, `
		SELECT `+categoryColumns+`
		FROM categories c WHERE c.id = $1
	`, id)
	return HandleNotFound(&category, err)
}

func (r *categoryRepo) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.GetContext(ctx, &category, `
		SELECT `+categoryColumns+`
		FROM categories c WHERE c.name = $1
	`, name)
	return HandleNotFound(&category, err)
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.SelectContext(ctx, &categories, `
		SELECT `+categoryColumns+`
		FROM categories c
		ORDER BY c.name ASC
	`)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) Create(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.GetContext(ctx, &category, `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at, 0 AS product_count
	`, name)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}
