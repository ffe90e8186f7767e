package sale

import (
	"errors"
	"fmt"
	"time"
)

// State represents the lifecycle state of a sale.
type State string

const (
	StateActive   State = "active"
	StateInactive State = "inactive"
)

var (
	ErrNotFound = errors.New("sale not found")

	// ErrDuplicateID surfaces a collision of the time-derived sale id.
	// Collisions are not retried; the caller simply sees the conflict.
	ErrDuplicateID = errors.New("sale id already exists")

	ErrValidation = errors.New("validation")

	ErrEmptyCustomer   = fmt.Errorf("%w: customer name is required", ErrValidation)
	ErrEmptyCart       = fmt.Errorf("%w: at least one line item is required", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	ErrNegativePrice   = fmt.Errorf("%w: unit price must be zero or positive", ErrValidation)
)

// Sale represents a completed transaction with one customer.
type Sale struct {
	ID       string // time-derived code, e.g. VTA483920
	Customer string
	Total    int64 // Σ line subtotals, frozen at creation
	State    State
	SoldAt   time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time

	Items []LineItem
}

// LineItem is one product-quantity entry within a sale. UnitPrice is a
// snapshot taken at sale time and never follows later catalog changes.
type LineItem struct {
	ID          string // {saleID}-NN, 1-based
	SaleID      string
	AccessoryID string
	Quantity    int
	UnitPrice   int64
	Subtotal    int64

	CreatedAt time.Time
}
