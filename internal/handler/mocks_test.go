package handler

import (
	"context"
	"strconv"
	"sync"

	"github.com/bostel-e/christshop/internal/model"
)

// memSessionRepo is an in-memory session store so handler tests can run the
// real login/verify/logout chain.
type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.AdminSession
	nextID   int
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*model.AdminSession)}
}

func (m *memSessionRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.AdminSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[tokenHash]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (m *memSessionRepo) Create(ctx context.Context, params model.CreateAdminSessionParams) (*model.AdminSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	session := &model.AdminSession{
		ID:        "session-" + strconv.Itoa(m.nextID),
		AdminID:   params.AdminID,
		TokenHash: params.TokenHash,
		ExpiresAt: params.ExpiresAt,
	}
	m.sessions[params.TokenHash] = session
	return session, nil
}

func (m *memSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, tokenHash)
	return nil
}

func (m *memSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockAdminRepo struct {
	admin *model.Admin
}

func (m *mockAdminRepo) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	if m.admin != nil && m.admin.ID == id {
		return m.admin, nil
	}
	return nil, nil
}

func (m *mockAdminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	if m.admin != nil && m.admin.Email == email {
		return m.admin, nil
	}
	return nil, nil
}

type mockProductRepo struct {
	findByIDFunc func(ctx context.Context, id string) (*model.Product, error)
	findAllFunc  func(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	createFunc   func(ctx context.Context, params model.CreateProductParams) (*model.Product, error)
	updateFunc   func(ctx context.Context, id string, params model.UpdateProductParams) (*model.Product, error)
	deletedIDs   []string
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockProductRepo) FindByCategoryID(ctx context.Context, categoryID string) ([]model.Product, error) {
	return m.FindAll(ctx, model.ProductFilter{CategoryID: categoryID})
}

func (m *mockProductRepo) Create(ctx context.Context, params model.CreateProductParams) (*model.Product, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Product{ID: "product-1", Name: params.Name, CategoryID: params.CategoryID}, nil
}

func (m *mockProductRepo) Update(ctx context.Context, id string, params model.UpdateProductParams) (*model.Product, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockCategoryRepo struct {
	findByIDFunc   func(ctx context.Context, id string) (*model.Category, error)
	findByNameFunc func(ctx context.Context, name string) (*model.Category, error)
	findAllFunc    func(ctx context.Context) ([]model.Category, error)
	deletedIDs     []string
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id string) (*model.Category, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*model.Category, error) {
	if m.findByNameFunc != nil {
		return m.findByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepo) Create(ctx context.Context, name string) (*model.Category, error) {
	return &model.Category{ID: "category-1", Name: name}, nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockCustomerRepo struct {
	findByIDFunc    func(ctx context.Context, id string) (*model.Customer, error)
	findByPhoneFunc func(ctx context.Context, phone string) (*model.Customer, error)
	findAllFunc     func(ctx context.Context) ([]model.Customer, error)
	createFunc      func(ctx context.Context, params model.UpsertCustomerParams) (*model.Customer, error)
	updateNameFunc  func(ctx context.Context, phone, name string) (*model.Customer, error)
	deletedIDs      []string
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepo) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	if m.findByPhoneFunc != nil {
		return m.findByPhoneFunc(ctx, phone)
	}
	return nil, nil
}

func (m *mockCustomerRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCustomerRepo) Create(ctx context.Context, params model.UpsertCustomerParams) (*model.Customer, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Customer{ID: "customer-1", Name: params.Name, Phone: params.Phone}, nil
}

func (m *mockCustomerRepo) UpdateName(ctx context.Context, phone, name string) (*model.Customer, error) {
	if m.updateNameFunc != nil {
		return m.updateNameFunc(ctx, phone, name)
	}
	return nil, nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}
