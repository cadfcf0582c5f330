package sheets

import (
	"context"
	"errors"
)

var (
	// ErrSourceUnavailable means the spreadsheet service could not be
	// reached or refused our credentials. Callers should treat it as
	// recoverable: the read path falls back, sync reports failure.
	ErrSourceUnavailable = errors.New("spreadsheet source unavailable")

	// ErrCategoryNotFound means the requested tab does not exist.
	// Distinct from a tab that exists but holds no rows.
	ErrCategoryNotFound = errors.New("category tab not found")
)

// Reader retrieves category tabs and their product rows from the
// storefront's source-of-truth spreadsheet. Implementations are
// read-only against the source.
type Reader interface {
	// SheetNames returns tab names in spreadsheet order. Each tab is
	// one catalog category.
	SheetNames(ctx context.Context) ([]string, error)
	// FetchProducts returns the products of one category tab. An
	// empty tab yields an empty slice and no error.
	FetchProducts(ctx context.Context, category string) ([]Product, error)
}

// FallbackSheetNames is the fixed category list callers may substitute
// when SheetNames fails with ErrSourceUnavailable.
func FallbackSheetNames() []string {
	return []string{"Sheet1"}
}
