package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes catalog HTTP endpoints. The product listing goes
// through the category cache; cache invalidation sits behind the
// admin gate.
type Handler struct {
	service Service
	cache   *CategoryCache
}

func NewHandler(service Service, cache *CategoryCache) *Handler {
	return &Handler{service: service, cache: cache}
}

func (h *Handler) RegisterRoutes(r *chi.Mux, gate func(http.Handler) http.Handler) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.getCatalog)
		r.Get("/products/{id}", h.getProduct)
		r.With(gate).Post("/cache/invalidate", h.invalidateCache)
	})
}

type catalogResponse struct {
	*Catalog
	Cached bool `json:"cached"`
}

func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	if catalog, ok := h.cache.Get(category); ok {
		respond(w, http.StatusOK, catalogResponse{Catalog: catalog, Cached: true})
		return
	}

	catalog, err := h.service.GetCatalog(r.Context(), category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	h.cache.Put(category, catalog)
	respond(w, http.StatusOK, catalogResponse{Catalog: catalog})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) invalidateCache(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		h.cache.InvalidateAll()
	} else {
		h.cache.Invalidate(category)
	}
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
