package sheets

import "context"

// staticReader serves a small fixed catalog without touching the
// network. It backs local development (SHEETS_FAKE=1) and demos where
// no spreadsheet credentials exist.
type staticReader struct{}

func NewStaticReader() Reader { return staticReader{} }

func (staticReader) SheetNames(ctx context.Context) ([]string, error) {
	return []string{"Electronics"}, nil
}

func (staticReader) FetchProducts(ctx context.Context, category string) ([]Product, error) {
	if category != "Electronics" {
		return []Product{}, nil
	}
	return []Product{
		{
			ID:            "P001",
			Name:          "Premium Laptop",
			URL:           "https://example.com/laptop",
			ImageURL1:     "https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
			OriginalPrice: 1299.99,
			Price:         999.99,
			StockStatus:   "In Stock",
			Description:   "High-performance laptop with 16GB RAM and 512GB SSD",
		},
		{
			ID:            "P002",
			Name:          "Smartphone Pro",
			URL:           "https://example.com/smartphone",
			ImageURL1:     "https://images.unsplash.com/photo-1511707171634-5f897ff02ff9",
			OriginalPrice: 899.99,
			Price:         699.99,
			StockStatus:   "In Stock",
			Description:   "Latest smartphone with advanced camera system",
		},
		{
			ID:            "P003",
			Name:          "Wireless Headphones",
			URL:           "https://example.com/headphones",
			ImageURL1:     "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
			OriginalPrice: 249.99,
			Price:         199.99,
			StockStatus:   "Low Stock",
			Description:   "Premium wireless headphones with noise cancellation",
		},
		{
			ID:            "P004",
			Name:          "Smart Watch",
			URL:           "https://example.com/smartwatch",
			ImageURL1:     "https://images.unsplash.com/photo-1523275335684-37898b6baf30",
			OriginalPrice: 399.99,
			Price:         349.99,
			StockStatus:   "In Stock",
			Description:   "Smart watch with health monitoring features",
		},
		{
			ID:            "P005",
			Name:          "Tablet Pro",
			URL:           "https://example.com/tablet",
			ImageURL1:     "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0",
			OriginalPrice: 599.99,
			Price:         499.99,
			StockStatus:   "In Stock",
			Description:   "10-inch tablet with high-resolution display",
		},
	}, nil
}
