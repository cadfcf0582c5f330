package catalog

import (
	"encoding/json"
	"time"

	"github.com/arvandbazaar/storefront-backend/internal/modules/sheets"
)

// StoreProduct is a catalog product as persisted in the Postgres
// mirror. It extends the spreadsheet product with the grouping key and
// sync bookkeeping fields.
type StoreProduct struct {
	sheets.Product
	Category     string          `json:"category"`
	IsActive     bool            `json:"is_active"`
	SyncSource   string          `json:"sync_source"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	LastSyncedAt time.Time       `json:"last_synced_at"`
	CustomData   json.RawMessage `json:"custom_data,omitempty"`
}

// Sync provenance tags recorded in sync_source.
const (
	SyncSourceSheets = "external_sheet"
	SyncSourceSetup  = "setup"
)

// Catalog origin values reported by the read path.
const (
	OriginStore  = "store"
	OriginSheets = "source"
)

// Catalog is the read-path result: a product listing plus the
// category tabs and where the data came from.
type Catalog struct {
	Products         []sheets.Product `json:"products"`
	Categories       []string         `json:"categories"`
	SelectedCategory string           `json:"selected_category"`
	Origin           string           `json:"origin"`
	FallbackReason   string           `json:"fallback_reason,omitempty"`
}
