package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/arvandbazaar/storefront-backend/internal/modules/sheets"
)

// Service is the storefront read path.
type Service interface {
	// GetCatalog serves the listing for one category, or the whole
	// catalog when category is empty. The store mirror is tried first;
	// on any store error the whole read falls back to the live
	// spreadsheet. Only when both fail does it return
	// ErrReadUnavailable.
	GetCatalog(ctx context.Context, category string) (*Catalog, error)
	// GetProduct is the administrative raw lookup; it also returns
	// deactivated products.
	GetProduct(ctx context.Context, id string) (*StoreProduct, error)
}

type service struct {
	repo   Repository
	reader sheets.Reader
}

func NewService(repo Repository, reader sheets.Reader) Service {
	return &service{repo: repo, reader: reader}
}

func (s *service) GetCatalog(ctx context.Context, category string) (*Catalog, error) {
	catalog, storeErr := s.fromStore(ctx, category)
	if storeErr == nil {
		return catalog, nil
	}
	log.Printf("catalog: store read failed, falling back to spreadsheet: %v", storeErr)

	catalog, sourceErr := s.fromSheets(ctx, category)
	if sourceErr != nil {
		return nil, fmt.Errorf("%w: store: %v; source: %v", ErrReadUnavailable, storeErr, sourceErr)
	}
	catalog.FallbackReason = storeErr.Error()
	return catalog, nil
}

// fromStore reads the persisted mirror. An empty result set from a
// healthy store is a valid catalog, not a reason to fall back.
func (s *service) fromStore(ctx context.Context, category string) (*Catalog, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	var stored []*StoreProduct
	if category != "" {
		stored, err = s.repo.ListByCategory(ctx, category)
	} else {
		stored, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	products := make([]sheets.Product, len(stored))
	for i, p := range stored {
		products[i] = p.Product
	}

	selected := category
	if selected == "" && len(categories) > 0 {
		selected = categories[0]
	}
	return &Catalog{
		Products:         products,
		Categories:       categories,
		SelectedCategory: selected,
		Origin:           OriginStore,
	}, nil
}

func (s *service) fromSheets(ctx context.Context, category string) (*Catalog, error) {
	names, err := s.reader.SheetNames(ctx)
	if err != nil {
		// Tab discovery is recoverable on the read path: the rows may
		// still be reachable under the default tab list.
		log.Printf("catalog: tab discovery failed, trying default tabs: %v", err)
		names = sheets.FallbackSheetNames()
	}

	selected := category
	if selected == "" && len(names) > 0 {
		selected = names[0]
	}
	if selected == "" {
		return &Catalog{Products: []sheets.Product{}, Categories: names, Origin: OriginSheets}, nil
	}

	products, err := s.reader.FetchProducts(ctx, selected)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		Products:         products,
		Categories:       names,
		SelectedCategory: selected,
		Origin:           OriginSheets,
	}, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*StoreProduct, error) {
	return s.repo.GetByID(ctx, id)
}
