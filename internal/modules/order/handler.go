package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the order submission endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/orders", h.submitOrder)
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	o, err := h.service.Submit(r.Context(), req)
	if err != nil {
		code := http.StatusBadGateway
		if errors.Is(err, ErrInvalidOrder) {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]interface{}{"success": false, "error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{"success": true, "order": o})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
