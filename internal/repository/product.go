package repository

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/bostel-e/christshop/internal/model"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	FindByCategoryID(ctx context.Context, categoryID string) ([]model.Product, error)
	Create(ctx context.Context, params model.CreateProductParams) (*model.Product, error)
	Update(ctx context.Context, id string, params model.UpdateProductParams) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

const productColumns = `
	p.id, p.name, p.description, p.price, p.image, p.in_stock,
	p.category_id, c.name AS category_name, p.created_at, p.updated_at
`

type productRepo struct {
	db sqlxDB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.GetContext(ctx, &product, `
		SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id)
	return HandleNotFound(&product, err)
}

func (r *productRepo) FindAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filter.CategoryID != "" {
		query += ` AND p.category_id = $` + strconv.Itoa(argIndex)
		args = append(args, filter.CategoryID)
		argIndex++
	}

	if filter.Search != "" {
		query += ` AND (p.name ILIKE $` + strconv.Itoa(argIndex) +
			` OR p.description ILIKE $` + strconv.Itoa(argIndex) + `)`
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if filter.InStock != nil {
		query += ` AND p.in_stock = $` + strconv.Itoa(argIndex)
		args = append(args, *filter.InStock)
		argIndex++
	}

	query += ` ORDER BY p.created_at DESC`

	var products []model.Product
	err := r.db.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) FindByCategoryID(ctx context.Context, categoryID string) ([]model.Product, error) {
	return r.FindAll(ctx, model.ProductFilter{CategoryID: categoryID})
}

func (r *productRepo) Create(ctx context.Context, params model.CreateProductParams) (*model.Product, error) {
	var id string
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO products (name, description, price, image, in_stock, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, params.Name, params.Description, params.Price, params.Image, params.InStock, params.CategoryID)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *productRepo) Update(ctx context.Context, id string, params model.UpdateProductParams) (*model.Product, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE products SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			image = COALESCE($5, image),
			in_stock = COALESCE($6, in_stock),
			category_id = COALESCE($7, category_id),
			updated_at = NOW()
		WHERE id = $1
	`, id, params.Name, params.Description, params.Price, params.Image, params.InStock, params.CategoryID)
	if err != nil {
		return nil, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
