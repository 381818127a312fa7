package model

import (
	"time"
)

type Customer struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Phone        string    `db:"phone" json:"phone"`
	RegisteredAt time.Time `db:"registered_at" json:"registeredAt"`
}

// UpsertCustomerParams carries a storefront opt-in. Phone must already be
// normalized (whitespace and hyphens stripped) before it reaches the repository.
type UpsertCustomerParams struct {
	Name  string
	Phone string
}
