package syncer

import "github.com/google/uuid"

// Report is the outcome of one sync run. Partial failure is carried
// in Errors rather than raised: only a run that cannot even enumerate
// categories reports Success=false with nothing attempted.
type Report struct {
	RunID               uuid.UUID       `json:"run_id"`
	Success             bool            `json:"success"`
	Message             string          `json:"message"`
	SyncedCategories    []string        `json:"synced_categories"`
	TotalProductsSynced int             `json:"total_products_synced"`
	Errors              []CategoryError `json:"errors,omitempty"`
}

// CategoryError records one category whose sync failed without
// stopping the rest of the run.
type CategoryError struct {
	Category string `json:"category"`
	Error    string `json:"error"`
}

// RemovalPolicy says what happens to persisted products that are no
// longer present on the spreadsheet.
type RemovalPolicy string

const (
	// PolicyDeactivate soft-deletes removed products. The default:
	// rows stay for audit and can be reactivated by a later sync.
	PolicyDeactivate RemovalPolicy = "deactivate"
	// PolicyDelete hard-deletes removed products. Administrative only.
	PolicyDelete RemovalPolicy = "delete"
)
