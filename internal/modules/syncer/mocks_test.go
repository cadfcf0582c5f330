package syncer

import (
	"context"
	"errors"
	"sort"

	"github.com/arvandbazaar/storefront-backend/internal/modules/catalog"
	"github.com/arvandbazaar/storefront-backend/internal/modules/sheets"
)

// Common test errors
var (
	errMockSource = errors.New("mock source error")
	errMockStore  = errors.New("mock store error")
)

// mockReader implements sheets.Reader for testing.
type mockReader struct {
	SheetNamesFunc    func(ctx context.Context) ([]string, error)
	FetchProductsFunc func(ctx context.Context, category string) ([]sheets.Product, error)

	FetchCalls []string
}

func (m *mockReader) SheetNames(ctx context.Context) ([]string, error) {
	if m.SheetNamesFunc != nil {
		return m.SheetNamesFunc(ctx)
	}
	return nil, nil
}

func (m *mockReader) FetchProducts(ctx context.Context, category string) ([]sheets.Product, error) {
	m.FetchCalls = append(m.FetchCalls, category)
	if m.FetchProductsFunc != nil {
		return m.FetchProductsFunc(ctx, category)
	}
	return nil, nil
}

// memoryRepo is an in-memory catalog.Repository honoring the store
// contract: upsert inserts new ids and overwrites existing ones while
// preserving created_at and custom_data; deactivation keeps rows but
// hides them from listings.
type memoryRepo struct {
	products map[string]*catalog.StoreProduct

	UpsertErr     error
	UpsertBatches [][]*catalog.StoreProduct
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{products: make(map[string]*catalog.StoreProduct)}
}

func (m *memoryRepo) ListAll(ctx context.Context) ([]*catalog.StoreProduct, error) {
	return m.listWhere(func(p *catalog.StoreProduct) bool { return p.IsActive }), nil
}

func (m *memoryRepo) ListByCategory(ctx context.Context, category string) ([]*catalog.StoreProduct, error) {
	return m.listWhere(func(p *catalog.StoreProduct) bool {
		return p.IsActive && p.Category == category
	}), nil
}

func (m *memoryRepo) listWhere(keep func(*catalog.StoreProduct) bool) []*catalog.StoreProduct {
	var out []*catalog.StoreProduct
	for _, p := range m.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memoryRepo) ListCategories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var categories []string
	for _, p := range m.products {
		if p.IsActive && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id string) (*catalog.StoreProduct, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, catalog.ErrNotFound
}

func (m *memoryRepo) UpsertBatch(ctx context.Context, items []*catalog.StoreProduct) error {
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	m.UpsertBatches = append(m.UpsertBatches, items)
	for _, item := range items {
		stored := *item
		if existing, ok := m.products[item.ID]; ok {
			stored.CreatedAt = existing.CreatedAt
			stored.CustomData = existing.CustomData
		}
		m.products[item.ID] = &stored
	}
	return nil
}

func (m *memoryRepo) Deactivate(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			p.IsActive = false
		}
	}
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(m.products, id)
	}
	return nil
}

func (m *memoryRepo) Exists(ctx context.Context) (bool, error) { return true, nil }

func (m *memoryRepo) EnsureSchema(ctx context.Context) error { return nil }
