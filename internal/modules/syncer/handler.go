package syncer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the on-demand and scheduled sync triggers. Manual
// triggers sit behind the admin gate; the cron route carries its own
// shared token so an external scheduler can call it without a login.
type Handler struct {
	engine    *Engine
	cronToken string
}

func NewHandler(engine *Engine, cronToken string) *Handler {
	return &Handler{engine: engine, cronToken: cronToken}
}

func (h *Handler) RegisterRoutes(r *chi.Mux, gate func(http.Handler) http.Handler) {
	r.Route("/api/v1/sync", func(r chi.Router) {
		r.Use(gate)
		r.Post("/", h.syncAll)
		r.Post("/{category}", h.syncCategory)
		r.Post("/{category}/prune", h.pruneCategory)
	})
	r.Get("/api/v1/cron/sync", h.cronSync)
}

func (h *Handler) syncAll(w http.ResponseWriter, r *http.Request) {
	// The report always comes back; partial failure is in its body.
	report := h.engine.SyncAll(r.Context())
	respond(w, http.StatusOK, report)
}

func (h *Handler) syncCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	report, err := h.engine.SyncCategory(r.Context(), category)
	if err != nil {
		if errors.Is(err, ErrSyncInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		respond(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": err.Error(),
		})
		return
	}
	respond(w, http.StatusOK, report)
}

func (h *Handler) pruneCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	policy := RemovalPolicy(r.URL.Query().Get("action"))
	if policy == "" {
		policy = PolicyDeactivate
	}
	if policy != PolicyDeactivate && policy != PolicyDelete {
		http.Error(w, "action must be deactivate or delete", http.StatusBadRequest)
		return
	}

	removed, err := h.engine.PruneCategory(r.Context(), category, policy)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if removed == nil {
		removed = []string{}
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"action":   policy,
		"removed":  removed,
	})
}

// cronSync mirrors the external scheduled trigger: bearer-token
// checked when a token is configured, skipped in development.
func (h *Handler) cronSync(w http.ResponseWriter, r *http.Request) {
	if h.cronToken != "" && r.Header.Get("Authorization") != "Bearer "+h.cronToken {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	report := h.engine.SyncAll(r.Context())
	respond(w, http.StatusOK, report)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
