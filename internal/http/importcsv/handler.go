package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
	"github.com/Santiagox01/VeterinariaFinal/internal/importer"
)

type Handler struct {
	importSvc    *importer.Service
	accessorySvc *accessory.Service
}

func NewHandler(importSvc *importer.Service, accessorySvc *accessory.Service) *Handler {
	return &Handler{
		importSvc:    importSvc,
		accessorySvc: accessorySvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type accessoryResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Price     int64           `json:"price"`
	Stock     int             `json:"stock"`
	State     accessory.State `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
}

type importSuccessResponse struct {
	Imported    int                 `json:"imported"`
	Accessories []accessoryResponse `json:"accessories"`
}

type createParamsDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

type conflictDTO struct {
	Incoming createParamsDTO   `json:"incoming"`
	Existing accessoryResponse `json:"existing"`
}

type importConflictResponse struct {
	Imported  []accessoryResponse `json:"imported"`
	Conflicts []conflictDTO       `json:"conflicts"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		http.Error(w, "source field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.accessorySvc.ImportBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			Imported:  make([]accessoryResponse, 0, len(result.Imported)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}

		for _, acc := range result.Imported {
			resp.Imported = append(resp.Imported, toAccResponse(acc))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toAccResponse(c.Existing),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(result.Imported)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(accs []*accessory.Accessory) importSuccessResponse {
	responses := make([]accessoryResponse, 0, len(accs))
	for _, acc := range accs {
		responses = append(responses, toAccResponse(acc))
	}

	return importSuccessResponse{
		Imported:    len(accs),
		Accessories: responses,
	}
}

func toAccResponse(acc *accessory.Accessory) accessoryResponse {
	return accessoryResponse{
		ID:        acc.ID,
		Name:      acc.Name,
		Type:      acc.Type,
		Price:     acc.Price,
		Stock:     acc.Stock,
		State:     acc.State,
		CreatedAt: acc.CreatedAt,
	}
}

func toParamsDTO(p accessory.CreateParams) createParamsDTO {
	return createParamsDTO{
		ID:    p.ID,
		Name:  p.Name,
		Type:  p.Type,
		Price: p.Price,
		Stock: p.Stock,
	}
}
