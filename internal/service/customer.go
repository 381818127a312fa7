package service

import (
	"context"

	apperrors "github.com/bostel-e/christshop/internal/errors"
	"github.com/bostel-e/christshop/internal/model"
	"github.com/bostel-e/christshop/internal/repository"
	"github.com/bostel-e/christshop/internal/util"
)

// CustomerService manages storefront opt-ins. The phone number, not the id,
// is the natural key: registering an existing phone refreshes the name.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Register upserts a customer by normalized phone. The second return value
// reports whether a new row was created.
func (s *CustomerService) Register(ctx context.Context, name, phone string) (*model.Customer, bool, error) {
	normalized := util.NormalizePhone(phone)

	existing, err := s.customerRepo.FindByPhone(ctx, normalized)
	if err != nil {
		return nil, false, apperrors.Database(err)
	}

	if existing != nil {
		customer, err := s.customerRepo.UpdateName(ctx, normalized, name)
		if err != nil {
			return nil, false, apperrors.Database(err)
		}
		if customer == nil {
			// Row deleted between lookup and update; treat as a fresh opt-in.
			customer, err = s.customerRepo.Create(ctx, model.UpsertCustomerParams{Name: name, Phone: normalized})
			if err != nil {
				return nil, false, apperrors.Database(err)
			}
			return customer, true, nil
		}
		return customer, false, nil
	}

	customer, err := s.customerRepo.Create(ctx, model.UpsertCustomerParams{Name: name, Phone: normalized})
	if err != nil {
		return nil, false, apperrors.Database(err)
	}
	return customer, true, nil
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if customer == nil {
		return nil, apperrors.NotFound("Customer")
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if customer == nil {
		return apperrors.NotFound("Customer")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return apperrors.Database(err)
	}
	return nil
}
