package service

import (
	"context"
	"fmt"

	apperrors "github.com/bostel-e/christshop/internal/errors"
	"github.com/bostel-e/christshop/internal/model"
	"github.com/bostel-e/christshop/internal/repository"
)

// CatalogService manages products and their categories.
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Products

func (s *CatalogService) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if product == nil {
		return nil, apperrors.NotFound("Product")
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, params model.CreateProductParams) (*model.Product, error) {
	category, err := s.categoryRepo.FindByID(ctx, params.CategoryID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if category == nil {
		return nil, apperrors.NotFound("Category")
	}

	product, err := s.productRepo.Create(ctx, params)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, params model.UpdateProductParams) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("Product")
	}

	if params.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *params.CategoryID)
		if err != nil {
			return nil, apperrors.Database(err)
		}
		if category == nil {
			return nil, apperrors.NotFound("Category")
		}
	}

	product, err := s.productRepo.Update(ctx, id, params)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if product == nil {
		return nil, apperrors.NotFound("Product")
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if existing == nil {
		return apperrors.NotFound("Product")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return apperrors.Database(err)
	}
	return nil
}

// Categories

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return categories, nil
}

// GetCategory returns a category together with its products.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*model.Category, []model.Product, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, apperrors.Database(err)
	}
	if category == nil {
		return nil, nil, apperrors.NotFound("Category")
	}

	products, err := s.productRepo.FindByCategoryID(ctx, id)
	if err != nil {
		return nil, nil, apperrors.Database(err)
	}
	return category, products, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if existing != nil {
		return nil, apperrors.AlreadyExists("Category")
	}

	category, err := s.categoryRepo.Create(ctx, name)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return category, nil
}

// DeleteCategory refuses to delete a category that still has products; the
// conflict carries the product count so the client can explain the refusal.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if category == nil {
		return apperrors.NotFound("Category")
	}

	if category.ProductCount > 0 {
		return apperrors.Conflict(
			fmt.Sprintf("Category still has %d product(s)", category.ProductCount),
		).WithDetails(map[string]int{"productCount": category.ProductCount})
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return apperrors.Database(err)
	}
	return nil
}
