package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// upsertChunkSize bounds how many rows go into one upsert statement.
// Chunks are written sequentially; a failure aborts the remainder.
const upsertChunkSize = 10

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id,name,url,image_url1,image_url2,original_price,price,stock_status,description,
	       category,is_active,sync_source,created_at,updated_at,last_synced_at,custom_data`

func scanProduct(scan func(...interface{}) error) (*StoreProduct, error) {
	p := &StoreProduct{}
	var custom []byte
	err := scan(&p.ID, &p.Name, &p.URL, &p.ImageURL1, &p.ImageURL2,
		&p.OriginalPrice, &p.Price, &p.StockStatus, &p.Description,
		&p.Category, &p.IsActive, &p.SyncSource,
		&p.CreatedAt, &p.UpdatedAt, &p.LastSyncedAt, &custom)
	if err != nil {
		return nil, err
	}
	if custom != nil {
		p.CustomData = json.RawMessage(custom)
	}
	return p, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]*StoreProduct, error) {
	return r.list(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE is_active=true ORDER BY category, name`)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]*StoreProduct, error) {
	return r.list(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE category=$1 AND is_active=true ORDER BY name`, category)
}

func (r *postgresRepo) list(ctx context.Context, query string, args ...interface{}) ([]*StoreProduct, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*StoreProduct
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT category FROM products WHERE is_active=true ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetByID deliberately skips the is_active filter so operators can
// inspect soft-deleted rows.
func (r *postgresRepo) GetByID(ctx context.Context, id string) (*StoreProduct, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE id=$1`, id)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) UpsertBatch(ctx context.Context, items []*StoreProduct) error {
	unique := dedupeByID(items)
	chunks := chunkProducts(unique, upsertChunkSize)
	for i, chunk := range chunks {
		if err := r.upsertChunk(ctx, chunk); err != nil {
			return &WriteError{ChunksCommitted: i, Err: err}
		}
	}
	return nil
}

// dedupeByID drops earlier occurrences of a repeated id so one upsert
// statement never touches the same key twice. Order of first
// appearance is kept, the last occurrence's values win.
func dedupeByID(items []*StoreProduct) []*StoreProduct {
	out := make([]*StoreProduct, 0, len(items))
	pos := make(map[string]int, len(items))
	for _, item := range items {
		if i, seen := pos[item.ID]; seen {
			out[i] = item
			continue
		}
		pos[item.ID] = len(out)
		out = append(out, item)
	}
	return out
}

func chunkProducts(items []*StoreProduct, size int) [][]*StoreProduct {
	var chunks [][]*StoreProduct
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// upsertChunk writes one multi-row INSERT ... ON CONFLICT statement.
// created_at and custom_data are never overwritten on conflict.
func (r *postgresRepo) upsertChunk(ctx context.Context, chunk []*StoreProduct) error {
	const cols = 15
	placeholders := make([]string, 0, len(chunk))
	args := make([]interface{}, 0, len(chunk)*cols)
	for i, p := range chunk {
		row := make([]string, cols)
		for j := range row {
			row[j] = fmt.Sprintf("$%d", i*cols+j+1)
		}
		placeholders = append(placeholders, "("+strings.Join(row, ",")+")")
		args = append(args,
			p.ID, p.Name, p.URL, p.ImageURL1, p.ImageURL2,
			p.OriginalPrice, p.Price, p.StockStatus, p.Description,
			p.Category, p.IsActive, p.SyncSource,
			p.CreatedAt, p.UpdatedAt, p.LastSyncedAt)
	}

	query := `
		INSERT INTO products
		  (id, name, url, image_url1, image_url2, original_price, price, stock_status, description,
		   category, is_active, sync_source, created_at, updated_at, last_synced_at)
		VALUES ` + strings.Join(placeholders, ",") + `
		ON CONFLICT (id) DO UPDATE SET
		  name=EXCLUDED.name, url=EXCLUDED.url,
		  image_url1=EXCLUDED.image_url1, image_url2=EXCLUDED.image_url2,
		  original_price=EXCLUDED.original_price, price=EXCLUDED.price,
		  stock_status=EXCLUDED.stock_status, description=EXCLUDED.description,
		  category=EXCLUDED.category, is_active=EXCLUDED.is_active,
		  sync_source=EXCLUDED.sync_source,
		  updated_at=EXCLUDED.updated_at, last_synced_at=EXCLUDED.last_synced_at`

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *postgresRepo) Deactivate(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE products SET is_active=false, updated_at=NOW() WHERE id = ANY($1)`,
		pq.Array(ids))
	if err != nil {
		return &WriteError{Err: fmt.Errorf("deactivate products: %w", err)}
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return &WriteError{Err: fmt.Errorf("delete products: %w", err)}
	}
	return nil
}

func (r *postgresRepo) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema='public' AND table_name='products'
		)`).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			url TEXT,
			image_url1 TEXT,
			image_url2 TEXT,
			original_price NUMERIC NOT NULL DEFAULT 0,
			price NUMERIC NOT NULL DEFAULT 0,
			stock_status TEXT,
			description TEXT,
			category TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			sync_source TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_synced_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			custom_data JSONB
		);
		CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
		CREATE INDEX IF NOT EXISTS idx_products_is_active ON products(is_active);`)
	if err != nil {
		return fmt.Errorf("ensure products schema: %w", err)
	}
	return nil
}
