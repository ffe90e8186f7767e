package accessory

import (
	"time"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
)

type accessoryResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Price     int64           `json:"price"`
	Stock     int             `json:"stock"`
	State     accessory.State `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

type statisticsResponse struct {
	TotalProducts int     `json:"total_products"`
	TotalValue    int64   `json:"total_value"`
	LowStockCount int     `json:"low_stock_count"`
	Types         int     `json:"types"`
	AveragePrice  float64 `json:"average_price"`
}

func toResponse(acc *accessory.Accessory) accessoryResponse {
	return accessoryResponse{
		ID:        acc.ID,
		Name:      acc.Name,
		Type:      acc.Type,
		Price:     acc.Price,
		Stock:     acc.Stock,
		State:     acc.State,
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}
}

func toResponseList(accs []*accessory.Accessory) []accessoryResponse {
	resp := make([]accessoryResponse, len(accs))
	for i, acc := range accs {
		resp[i] = toResponse(acc)
	}

	return resp
}
