package syncer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arvandbazaar/storefront-backend/internal/modules/catalog"
	"github.com/arvandbazaar/storefront-backend/internal/modules/sheets"
)

// ErrSyncInProgress is returned when a run is requested while another
// run holds the engine.
var ErrSyncInProgress = errors.New("a sync run is already in progress")

// Engine reconciles the spreadsheet source of truth into the store
// mirror, one category at a time. Overlapping runs are rejected, not
// queued: scheduled and manual triggers may race and interleaved
// upserts would be hard to reason about.
type Engine struct {
	reader sheets.Reader
	repo   catalog.Repository
	mu     sync.Mutex
}

func NewEngine(reader sheets.Reader, repo catalog.Repository) *Engine {
	return &Engine{reader: reader, repo: repo}
}

// SyncAll refreshes every category. Categories are processed
// sequentially in spreadsheet order; one category's failure is
// recorded and does not stop the rest. Category discovery failure
// fails the whole run with nothing attempted.
func (e *Engine) SyncAll(ctx context.Context) *Report {
	if !e.mu.TryLock() {
		return failureReport(ErrSyncInProgress.Error())
	}
	defer e.mu.Unlock()

	names, err := e.reader.SheetNames(ctx)
	if err != nil {
		return failureReport(fmt.Sprintf("failed to list categories: %v", err))
	}

	report := &Report{RunID: uuid.New()}
	for _, name := range names {
		synced, err := e.syncCategory(ctx, name)
		if err != nil {
			log.Printf("sync: category %q failed: %v", name, err)
			report.Errors = append(report.Errors, CategoryError{Category: name, Error: err.Error()})
			continue
		}
		report.SyncedCategories = append(report.SyncedCategories, name)
		report.TotalProductsSynced += synced
	}

	report.Success = len(report.Errors) == 0
	if report.Success {
		report.Message = fmt.Sprintf("synced %d products from %d categories",
			report.TotalProductsSynced, len(names))
	} else {
		report.Message = fmt.Sprintf("synced with errors: %d of %d categories failed",
			len(report.Errors), len(names))
	}
	return report
}

// SyncCategory refreshes a single category. Unlike SyncAll, failures
// propagate to the caller: the isolation boundary is the SyncAll
// loop, not the per-category sync itself.
func (e *Engine) SyncCategory(ctx context.Context, category string) (*Report, error) {
	if !e.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer e.mu.Unlock()

	synced, err := e.syncCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return &Report{
		RunID:               uuid.New(),
		Success:             true,
		Message:             fmt.Sprintf("synced %d products for category %q", synced, category),
		SyncedCategories:    []string{category},
		TotalProductsSynced: synced,
	}, nil
}

func (e *Engine) syncCategory(ctx context.Context, category string) (int, error) {
	products, err := e.reader.FetchProducts(ctx, category)
	if err != nil {
		return 0, fmt.Errorf("fetch category %q: %w", category, err)
	}
	// A tab with no rows is a valid zero state.
	if len(products) == 0 {
		return 0, nil
	}

	now := time.Now()
	batch := make([]*catalog.StoreProduct, len(products))
	for i, p := range products {
		batch[i] = &catalog.StoreProduct{
			Product:      p,
			Category:     category,
			IsActive:     true,
			SyncSource:   catalog.SyncSourceSheets,
			CreatedAt:    now,
			UpdatedAt:    now,
			LastSyncedAt: now,
		}
	}

	if err := e.repo.UpsertBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("upsert category %q: %w", category, err)
	}
	return len(batch), nil
}

// HandleRemovedProducts applies the removal policy to products that
// are persisted for the category but absent from liveIDs. Routine
// sync runs never call this: absence in a single fetch may be
// transient, so pruning happens only on explicit request.
func (e *Engine) HandleRemovedProducts(ctx context.Context, category string, liveIDs []string, policy RemovalPolicy) ([]string, error) {
	stored, err := e.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list stored products for %q: %w", category, err)
	}

	live := make(map[string]bool, len(liveIDs))
	for _, id := range liveIDs {
		live[id] = true
	}
	var removed []string
	for _, p := range stored {
		if !live[p.ID] {
			removed = append(removed, p.ID)
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}

	switch policy {
	case PolicyDelete:
		err = e.repo.Delete(ctx, removed)
	default:
		err = e.repo.Deactivate(ctx, removed)
	}
	if err != nil {
		return nil, fmt.Errorf("apply %s policy for %q: %w", policy, category, err)
	}
	log.Printf("sync: applied %s to %d removed products in %q", policy, len(removed), category)
	return removed, nil
}

// PruneCategory fetches the live id set for the category and applies
// the removal policy against it.
func (e *Engine) PruneCategory(ctx context.Context, category string, policy RemovalPolicy) ([]string, error) {
	products, err := e.reader.FetchProducts(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("fetch category %q: %w", category, err)
	}
	liveIDs := make([]string, len(products))
	for i, p := range products {
		liveIDs[i] = p.ID
	}
	return e.HandleRemovedProducts(ctx, category, liveIDs, policy)
}

func failureReport(message string) *Report {
	return &Report{
		RunID:            uuid.New(),
		Success:          false,
		Message:          message,
		SyncedCategories: []string{},
	}
}
