package model

import (
	"time"
)

type Category struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	ProductCount int       `db:"product_count" json:"productCount"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type Product struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Price        float64   `db:"price" json:"price"`
	Image        *string   `db:"image" json:"image"`
	InStock      bool      `db:"in_stock" json:"inStock"`
	CategoryID   string    `db:"category_id" json:"categoryId"`
	CategoryName string    `db:"category_name" json:"category"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateProductParams struct {
	Name        string
	Description string
	Price       float64
	Image       *string
	InStock     bool
	CategoryID  string
}

// UpdateProductParams uses nil to mean "leave unchanged".
type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	InStock     *bool
	CategoryID  *string
}

// ProductFilter narrows catalog listings. Zero values mean no filtering.
type ProductFilter struct {
	CategoryID string
	Search     string
	InStock    *bool
}
