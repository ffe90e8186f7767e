package accessory

import (
	"errors"
	"fmt"
	"time"
)

// State represents the lifecycle state of an accessory.
type State string

const (
	StateActive   State = "active"
	StateInactive State = "inactive"
)

// LowStockThreshold is the stock level below which an accessory counts as
// low stock in the dashboard statistics.
const LowStockThreshold = 5

var (
	ErrNotFound    = errors.New("accessory not found")
	ErrDuplicateID = errors.New("accessory id already exists")

	// ErrValidation is the base error wrapped by all input validation
	// failures, so callers can classify with errors.Is.
	ErrValidation = errors.New("validation")

	ErrMissingField    = fmt.Errorf("%w: required field is empty", ErrValidation)
	ErrNegativePrice   = fmt.Errorf("%w: price must be zero or positive", ErrValidation)
	ErrNegativeStock   = fmt.Errorf("%w: stock must be zero or positive", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
)

// Accessory represents a catalog item sold by the business.
type Accessory struct {
	ID    string // business code, e.g. ACC001
	Name  string
	Type  string
	Price int64 // unit price in minor currency units
	Stock int
	State State

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Active reports whether the accessory is sellable.
func (a *Accessory) Active() bool {
	return a.State == StateActive
}

// Statistics aggregates the active catalog for the dashboard.
type Statistics struct {
	TotalProducts int
	TotalValue    int64 // Σ price × stock
	LowStockCount int
	Types         int
	AveragePrice  float64
}
