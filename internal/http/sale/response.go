package sale

import (
	"time"

	"github.com/Santiagox01/VeterinariaFinal/internal/sale"
)

type saleResponse struct {
	ID        string             `json:"id"`
	Customer  string             `json:"customer"`
	Total     int64              `json:"total"`
	State     sale.State         `json:"state"`
	SoldAt    time.Time          `json:"sold_at"`
	Items     []lineItemResponse `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty"`
}

type lineItemResponse struct {
	ID          string `json:"id"`
	AccessoryID string `json:"accessory_id"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Subtotal    int64  `json:"subtotal"`
}

func toResponse(s *sale.Sale) saleResponse {
	items := make([]lineItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = lineItemResponse{
			ID:          item.ID,
			AccessoryID: item.AccessoryID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		}
	}

	return saleResponse{
		ID:        s.ID,
		Customer:  s.Customer,
		Total:     s.Total,
		State:     s.State,
		SoldAt:    s.SoldAt,
		Items:     items,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toResponse(s)
	}

	return resp
}
