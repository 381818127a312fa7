package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bostel-e/christshop/internal/model"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, params model.UpsertCustomerParams) (*model.Customer, error)
	UpdateName(ctx context.Context, phone, name string) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
}

type customerRepo struct {
	db sqlxDB
}

func NewCustomerRepository(db *sqlx.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.GetContext(ctx, &customer, `
		SELECT * FROM customers WHERE id = $1
	`, id)
	return HandleNotFound(&customer, err)
}

func (r *customerRepo) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.GetContext(ctx, &customer, `
		SELECT * FROM customers WHERE phone = $1
	`, phone)
	return HandleNotFound(&customer, err)
}

func (r *customerRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.SelectContext(ctx, &customers, `
		SELECT * FROM customers
		ORDER BY registered_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepo) Create(ctx context.Context, params model.UpsertCustomerParams) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.GetContext(ctx, &customer, `
		INSERT INTO customers (name, phone)
		VALUES ($1, $2)
		RETURNING *
	`, params.Name, params.Phone)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) UpdateName(ctx context.Context, phone, name string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.GetContext(ctx, &customer, `
		UPDATE customers SET name = $2
		WHERE phone = $1
		RETURNING *
	`, phone, name)
	return HandleNotFound(&customer, err)
}

func (r *customerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}
