package accessory

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
)

type Handler struct {
	svc *accessory.Service
}

func NewHandler(svc *accessory.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/next-id", h.nextID)
	r.Get("/types", h.listTypes)
	r.Get("/statistics", h.statistics)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/stock", h.adjustStock)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.deactivate)
}

type createAccessoryRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccessoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Create(r.Context(), accessory.CreateParams{
		ID:    req.ID,
		Name:  req.Name,
		Type:  req.Type,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(acc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := accessory.ListFilter{}

	if s := r.URL.Query().Get("state"); s != "" {
		state := accessory.State(s)
		filter.State = &state
	}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = &s
	}

	if s := r.URL.Query().Get("q"); s != "" {
		filter.Query = &s
	}

	accs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(accs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(acc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) nextID(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.NextID(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]string{"id": id}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListTypes(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(types); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := statisticsResponse{
		TotalProducts: stats.TotalProducts,
		TotalValue:    stats.TotalValue,
		LowStockCount: stats.LowStockCount,
		Types:         stats.Types,
		AveragePrice:  stats.AveragePrice,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateAccessoryRequest struct {
	Name  *string          `json:"name,omitempty"`
	Type  *string          `json:"type,omitempty"`
	Price *int64           `json:"price,omitempty"`
	Stock *int             `json:"stock,omitempty"`
	State *accessory.State `json:"state,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateAccessoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), accessory.UpdateParams{
		Name:  req.Name,
		Type:  req.Type,
		Price: req.Price,
		Stock: req.Stock,
		State: req.State,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(acc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type adjustStockRequest struct {
	Operation string `json:"operation"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")

	var (
		acc *accessory.Accessory
		err error
	)

	switch req.Operation {
	case "increase":
		acc, err = h.svc.IncreaseStock(r.Context(), id, req.Quantity)
	case "reduce":
		acc, err = h.svc.ReduceStock(r.Context(), id, req.Quantity)
	default:
		http.Error(w, "operation must be increase or reduce", http.StatusBadRequest)
		return
	}

	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(acc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accessory.ErrNotFound):
		http.Error(w, "accessory not found", http.StatusNotFound)
	case errors.Is(err, accessory.ErrDuplicateID):
		http.Error(w, "accessory id already exists", http.StatusConflict)
	case errors.Is(err, accessory.ErrValidation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
