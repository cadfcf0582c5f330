package catalog

import "context"

// Repository defines the interface for the persisted product mirror.
type Repository interface {
	// ListAll returns every active product, ordered by category.
	ListAll(ctx context.Context) ([]*StoreProduct, error)
	// ListByCategory returns active products of one category, ordered
	// by name.
	ListByCategory(ctx context.Context, category string) ([]*StoreProduct, error)
	// ListCategories returns the distinct categories among active
	// products.
	ListCategories(ctx context.Context) ([]string, error)
	// GetByID is an administrative raw lookup: it also returns
	// deactivated products.
	GetByID(ctx context.Context, id string) (*StoreProduct, error)
	// UpsertBatch inserts new products and overwrites existing ones by
	// id, preserving created_at and custom_data. The batch is
	// de-duplicated by id (last occurrence wins) and written in fixed
	// size chunks; a chunk failure aborts the rest and surfaces a
	// *WriteError carrying the number of chunks already committed.
	UpsertBatch(ctx context.Context, items []*StoreProduct) error
	// Deactivate soft-deletes the given ids. Unknown ids are ignored.
	Deactivate(ctx context.Context, ids []string) error
	// Delete hard-deletes the given ids. Administrative only; routine
	// sync never calls it.
	Delete(ctx context.Context, ids []string) error
	// Exists reports whether the products table has been provisioned.
	// Used by setup, not by the runtime paths.
	Exists(ctx context.Context) (bool, error)
	// EnsureSchema creates the products table and its indexes when
	// missing.
	EnsureSchema(ctx context.Context) error
}
