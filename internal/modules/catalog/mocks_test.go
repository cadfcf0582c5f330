package catalog

import (
	"context"
	"errors"

	"github.com/arvandbazaar/storefront-backend/internal/modules/sheets"
)

// Common test errors
var (
	errMockStore  = errors.New("mock store error")
	errMockSource = errors.New("mock source error")
)

// mockRepository implements Repository for testing. Unset Func fields
// behave as empty successes.
type mockRepository struct {
	ListAllFunc        func(ctx context.Context) ([]*StoreProduct, error)
	ListByCategoryFunc func(ctx context.Context, category string) ([]*StoreProduct, error)
	ListCategoriesFunc func(ctx context.Context) ([]string, error)
	GetByIDFunc        func(ctx context.Context, id string) (*StoreProduct, error)
	UpsertBatchFunc    func(ctx context.Context, items []*StoreProduct) error
	DeactivateFunc     func(ctx context.Context, ids []string) error
	DeleteFunc         func(ctx context.Context, ids []string) error

	ListAllCalls     int
	UpsertBatchCalls int
}

func (m *mockRepository) ListAll(ctx context.Context) ([]*StoreProduct, error) {
	m.ListAllCalls++
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) ListByCategory(ctx context.Context, category string) ([]*StoreProduct, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockRepository) ListCategories(ctx context.Context) ([]string, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*StoreProduct, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (m *mockRepository) UpsertBatch(ctx context.Context, items []*StoreProduct) error {
	m.UpsertBatchCalls++
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, items)
	}
	return nil
}

func (m *mockRepository) Deactivate(ctx context.Context, ids []string) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, ids)
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, ids []string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ids)
	}
	return nil
}

func (m *mockRepository) Exists(ctx context.Context) (bool, error) { return true, nil }

func (m *mockRepository) EnsureSchema(ctx context.Context) error { return nil }

// mockReader implements sheets.Reader for testing.
type mockReader struct {
	SheetNamesFunc    func(ctx context.Context) ([]string, error)
	FetchProductsFunc func(ctx context.Context, category string) ([]sheets.Product, error)

	FetchCalls int
}

func (m *mockReader) SheetNames(ctx context.Context) ([]string, error) {
	if m.SheetNamesFunc != nil {
		return m.SheetNamesFunc(ctx)
	}
	return nil, nil
}

func (m *mockReader) FetchProducts(ctx context.Context, category string) ([]sheets.Product, error) {
	m.FetchCalls++
	if m.FetchProductsFunc != nil {
		return m.FetchProductsFunc(ctx, category)
	}
	return nil, nil
}
