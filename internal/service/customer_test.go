package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bostel-e/christshop/internal/errors"
	"github.com/bostel-e/christshop/internal/model"
)

func TestRegisterCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("creates new customer with normalized phone", func(t *testing.T) {
		var createdParams model.UpsertCustomerParams
		repo := &mockCustomerRepo{
			createFunc: func(ctx context.Context, params model.UpsertCustomerParams) (*model.Customer, error) {
				createdParams = params
				return &model.Customer{ID: "customer-1", Name: params.Name, Phone: params.Phone}, nil
			},
		}
		svc := NewCustomerService(repo)

		customer, created, err := svc.Register(ctx, "Marie", "+237 6 99-88-77-66")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "+237699887766", createdParams.Phone)
		assert.Equal(t, "Marie", customer.Name)
	})

	t.Run("updates name for existing phone", func(t *testing.T) {
		repo := &mockCustomerRepo{
			findByPhoneFunc: func(ctx context.Context, phone string) (*model.Customer, error) {
				return &model.Customer{ID: "customer-1", Name: "Marie", Phone: phone}, nil
			},
			updateNameFunc: func(ctx context.Context, phone, name string) (*model.Customer, error) {
				return &model.Customer{ID: "customer-1", Name: name, Phone: phone}, nil
			},
			createFunc: func(ctx context.Context, params model.UpsertCustomerParams) (*model.Customer, error) {
				t.Fatal("Create should not be called for an existing phone")
				return nil, nil
			},
		}
		svc := NewCustomerService(repo)

		customer, created, err := svc.Register(ctx, "Marie Claire", "+237699887766")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "Marie Claire", customer.Name)
	})

	t.Run("falls back to create when row vanishes mid-update", func(t *testing.T) {
		repo := &mockCustomerRepo{
			findByPhoneFunc: func(ctx context.Context, phone string) (*model.Customer, error) {
				return &model.Customer{ID: "customer-1", Name: "Marie", Phone: phone}, nil
			},
			updateNameFunc: func(ctx context.Context, phone, name string) (*model.Customer, error) {
				return nil, nil
			},
		}
		svc := NewCustomerService(repo)

		customer, created, err := svc.Register(ctx, "Marie", "+237699887766")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "+237699887766", customer.Phone)
	})

	t.Run("wraps lookup errors", func(t *testing.T) {
		repo := &mockCustomerRepo{
			findByPhoneFunc: func(ctx context.Context, phone string) (*model.Customer, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := NewCustomerService(repo)

		_, _, err := svc.Register(ctx, "Marie", "+237699887766")
		assert.Equal(t, apperrors.ErrCodeDatabase, apperrors.GetCode(err))
	})
}

func TestGetCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing customer", func(t *testing.T) {
		repo := &mockCustomerRepo{
			findByIDFunc: func(ctx context.Context, id string) (*model.Customer, error) {
				return &model.Customer{ID: id, Name: "Marie"}, nil
			},
		}
		svc := NewCustomerService(repo)

		customer, err := svc.Get(ctx, "customer-1")
		require.NoError(t, err)
		assert.Equal(t, "Marie", customer.Name)
	})

	t.Run("returns not found for missing customer", func(t *testing.T) {
		svc := NewCustomerService(&mockCustomerRepo{})

		_, err := svc.Get(ctx, "missing")
		assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
	})
}

func TestDeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing customer", func(t *testing.T) {
		repo := &mockCustomerRepo{
			findByIDFunc: func(ctx context.Context, id string) (*model.Customer, error) {
				return &model.Customer{ID: id}, nil
			},
		}
		svc := NewCustomerService(repo)

		require.NoError(t, svc.Delete(ctx, "customer-1"))
		assert.Equal(t, []string{"customer-1"}, repo.deletedIDs)
	})

	t.Run("returns not found for missing customer", func(t *testing.T) {
		repo := &mockCustomerRepo{}
		svc := NewCustomerService(repo)

		err := svc.Delete(ctx, "missing")
		assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
		assert.Empty(t, repo.deletedIDs)
	})
}
