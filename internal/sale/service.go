package sale

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	GetSale(ctx context.Context, id string) (*Sale, error)
	ListSales(ctx context.Context, filter ListFilter) ([]*Sale, error)
	ListSalesByAccessory(ctx context.Context, accessoryID string) ([]*Sale, error)
	DeactivateSale(ctx context.Context, id string) error

	Begin(ctx context.Context) (Tx, error)
}

// Tx covers the multi-step sale write: header, line items, and the stock
// decrements, committed or rolled back as one unit.
type Tx interface {
	CreateSale(ctx context.Context, s *Sale) error
	CreateLineItems(ctx context.Context, items []LineItem) error
	ReduceStock(ctx context.Context, accessoryID string, qty int) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LineParams is one cart line as submitted at checkout. UnitPrice is the
// price displayed to the customer, snapshotted into the sale.
type LineParams struct {
	AccessoryID string
	Quantity    int
	UnitPrice   int64
}

type ListFilter struct {
	State *State
}

// Create persists a sale with its line items and decrements stock for each
// line inside a single storage transaction. Stock decrements clamp at zero;
// any other failure rolls the whole sale back.
func (s *Service) Create(ctx context.Context, customer string, lines []LineParams) (*Sale, error) {
	if strings.TrimSpace(customer) == "" {
		return nil, ErrEmptyCustomer
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64

	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		if l.UnitPrice < 0 {
			return nil, ErrNegativePrice
		}

		total += int64(l.Quantity) * l.UnitPrice
	}

	now := time.Now()

	sale := &Sale{
		ID:       newID(now),
		Customer: customer,
		Total:    total,
		State:    StateActive,
		SoldAt:   now,
	}

	items := make([]LineItem, len(lines))
	for i, l := range lines {
		items[i] = LineItem{
			ID:          fmt.Sprintf("%s-%02d", sale.ID, i+1),
			SaleID:      sale.ID,
			AccessoryID: l.AccessoryID,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    int64(l.Quantity) * l.UnitPrice,
		}
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin sale: %w", err)
	}
	defer tx.Rollback()

	if err := tx.CreateSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	if err := tx.CreateLineItems(ctx, items); err != nil {
		return nil, fmt.Errorf("create line items: %w", err)
	}

	for _, item := range items {
		if err := tx.ReduceStock(ctx, item.AccessoryID, item.Quantity); err != nil {
			return nil, fmt.Errorf("reduce stock for %s: %w", item.AccessoryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sale: %w", err)
	}

	sale.Items = items

	return sale, nil
}

// newID derives the sale id from the last six digits of the Unix-milli
// timestamp. Collisions are possible and surface as ErrDuplicateID.
func newID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return "VTA" + ms[len(ms)-6:]
}

func (s *Service) Get(ctx context.Context, id string) (*Sale, error) {
	return s.repo.GetSale(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Sale, error) {
	return s.repo.ListSales(ctx, filter)
}

// ListByAccessory returns the sales containing at least one line item for
// the given accessory, newest first.
func (s *Service) ListByAccessory(ctx context.Context, accessoryID string) ([]*Sale, error) {
	return s.repo.ListSalesByAccessory(ctx, accessoryID)
}

// Deactivate soft-deletes a sale. Stock decremented by the sale is not
// restored.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.repo.DeactivateSale(ctx, id)
}
