package accessory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=accessory
type Repository interface {
	CreateAccessory(ctx context.Context, acc *Accessory) error
	GetAccessory(ctx context.Context, id string) (*Accessory, error)
	ListAccessories(ctx context.Context, filter ListFilter) ([]*Accessory, error)
	UpdateAccessory(ctx context.Context, acc *Accessory) error
	UpdateStock(ctx context.Context, id string, stock int) (*Accessory, error)
	ListTypes(ctx context.Context) ([]string, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ID    string
	Name  string
	Type  string
	Price int64
	Stock int
}

type UpdateParams struct {
	Name  *string
	Type  *string
	Price *int64
	Stock *int
	State *State
}

// ListFilter narrows catalog queries. Query matches name or type as a
// case-insensitive substring; Type is an exact match.
type ListFilter struct {
	State *State
	Type  *string
	Query *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Accessory, error) {
	if strings.TrimSpace(params.ID) == "" ||
		strings.TrimSpace(params.Name) == "" ||
		strings.TrimSpace(params.Type) == "" {
		return nil, ErrMissingField
	}

	if params.Price < 0 {
		return nil, ErrNegativePrice
	}

	if params.Stock < 0 {
		return nil, ErrNegativeStock
	}

	acc := &Accessory{
		ID:    params.ID,
		Name:  params.Name,
		Type:  params.Type,
		Price: params.Price,
		Stock: params.Stock,
		State: StateActive,
	}
	if err := s.repo.CreateAccessory(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Accessory, error) {
	return s.repo.GetAccessory(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Accessory, error) {
	return s.repo.ListAccessories(ctx, filter)
}

// Search matches active accessories whose name or type contains the query,
// case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]*Accessory, error) {
	state := StateActive
	return s.repo.ListAccessories(ctx, ListFilter{State: &state, Query: &query})
}

func (s *Service) FilterByType(ctx context.Context, typ string) ([]*Accessory, error) {
	state := StateActive
	return s.repo.ListAccessories(ctx, ListFilter{State: &state, Type: &typ})
}

// NextID derives the next free ACCnnn code from the highest numeric suffix
// in the catalog, including inactive entries so codes are never reused.
func (s *Service) NextID(ctx context.Context) (string, error) {
	accs, err := s.repo.ListAccessories(ctx, ListFilter{})
	if err != nil {
		return "", fmt.Errorf("listing accessories: %w", err)
	}

	last := 0

	for _, acc := range accs {
		n, err := strconv.Atoi(strings.TrimPrefix(acc.ID, "ACC"))
		if err != nil {
			continue
		}

		if n > last {
			last = n
		}
	}

	return fmt.Sprintf("ACC%03d", last+1), nil
}

func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*Accessory, error) {
	acc, err := s.repo.GetAccessory(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, ErrMissingField
		}

		acc.Name = *params.Name
	}

	if params.Type != nil {
		if strings.TrimSpace(*params.Type) == "" {
			return nil, ErrMissingField
		}

		acc.Type = *params.Type
	}

	if params.Price != nil {
		if *params.Price < 0 {
			return nil, ErrNegativePrice
		}

		acc.Price = *params.Price
	}

	if params.Stock != nil {
		if *params.Stock < 0 {
			return nil, ErrNegativeStock
		}

		acc.Stock = *params.Stock
	}

	if params.State != nil {
		acc.State = *params.State
	}

	if err := s.repo.UpdateAccessory(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// ReduceStock lowers stock by qty, flooring at zero. Requests beyond the
// available stock clamp silently rather than failing.
func (s *Service) ReduceStock(ctx context.Context, id string, qty int) (*Accessory, error) {
	acc, err := s.repo.GetAccessory(ctx, id)
	if err != nil {
		return nil, err
	}

	newStock := acc.Stock - qty
	if newStock < 0 {
		newStock = 0
	}

	return s.repo.UpdateStock(ctx, id, newStock)
}

func (s *Service) IncreaseStock(ctx context.Context, id string, qty int) (*Accessory, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	acc, err := s.repo.GetAccessory(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateStock(ctx, id, acc.Stock+qty)
}

// ListTypes returns the distinct types among active accessories in
// ascending order.
func (s *Service) ListTypes(ctx context.Context) ([]string, error) {
	raw, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(raw))
	types := make([]string, 0, len(raw))

	for _, t := range raw {
		if _, ok := seen[t]; ok {
			continue
		}

		seen[t] = struct{}{}
		types = append(types, t)
	}

	sort.Strings(types)

	return types, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	state := StateInactive
	_, err := s.Update(ctx, id, UpdateParams{State: &state})

	return err
}

// Statistics aggregates the active catalog. The average price keeps the
// historical formula totalValue / count / count so reports stay comparable
// with older exports.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	state := StateActive

	accs, err := s.repo.ListAccessories(ctx, ListFilter{State: &state})
	if err != nil {
		return nil, err
	}

	stats := &Statistics{TotalProducts: len(accs)}
	types := make(map[string]struct{})

	for _, acc := range accs {
		stats.TotalValue += acc.Price * int64(acc.Stock)

		if acc.Stock < LowStockThreshold {
			stats.LowStockCount++
		}

		types[acc.Type] = struct{}{}
	}

	stats.Types = len(types)

	if len(accs) > 0 {
		stats.AveragePrice = float64(stats.TotalValue) / float64(len(accs)) / float64(len(accs))
	}

	return stats, nil
}

type ImportResult struct {
	Imported  []*Accessory
	Conflicts []Conflict
}

type Conflict struct {
	Incoming CreateParams
	Existing *Accessory
}

// ImportBatch creates the given accessories, reporting rows whose id is
// already in the catalog as conflicts instead of overwriting them.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	result := &ImportResult{}

	for _, p := range params {
		acc, err := s.Create(ctx, p)
		if err == nil {
			result.Imported = append(result.Imported, acc)
			continue
		}

		if errors.Is(err, ErrDuplicateID) {
			existing, getErr := s.repo.GetAccessory(ctx, p.ID)
			if getErr != nil {
				return nil, fmt.Errorf("loading conflicting accessory %s: %w", p.ID, getErr)
			}

			result.Conflicts = append(result.Conflicts, Conflict{Incoming: p, Existing: existing})

			continue
		}

		return nil, fmt.Errorf("importing accessory %s: %w", p.ID, err)
	}

	return result, nil
}
