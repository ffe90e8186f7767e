package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Santiagox01/VeterinariaFinal/internal/sale"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, customer, total, state, sold_at, created_at, updated_at
func scanSale(s scanner) (*sale.Sale, error) {
	var sl sale.Sale

	var stateStr string

	if err := s.Scan(
		&sl.ID, &sl.Customer, &sl.Total, &stateStr, &sl.SoldAt,
		&sl.CreatedAt, &sl.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sl.State = sale.State(stateStr)

	return &sl, nil
}

const (
	selectSaleColumns = `id, customer, total, state, sold_at, created_at, updated_at`
	selectItemColumns = `id, sale_id, accessory_id, quantity, unit_price, subtotal, created_at`
)

func (s *Store) GetSale(ctx context.Context, id string) (*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + ` FROM sales WHERE id = $1`

	sl, err := scanSale(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sale.ErrNotFound
		}

		return nil, fmt.Errorf("getting sale: %w", err)
	}

	if err := s.attachItems(ctx, []*sale.Sale{sl}); err != nil {
		return nil, err
	}

	return sl, nil
}

func (s *Store) ListSales(ctx context.Context, filter sale.ListFilter) ([]*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + ` FROM sales`

	var args []any

	if filter.State != nil {
		query += " WHERE state = $1"

		args = append(args, *filter.State)
	}

	query += " ORDER BY sold_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	sales, err := collectSales(rows)
	if err != nil {
		return nil, err
	}

	if err := s.attachItems(ctx, sales); err != nil {
		return nil, err
	}

	return sales, nil
}

// ListSalesByAccessory resolves sales in two phases: line items referencing
// the accessory first, then their parent sales.
func (s *Store) ListSalesByAccessory(ctx context.Context, accessoryID string) ([]*sale.Sale, error) {
	idQuery := `SELECT DISTINCT sale_id FROM sale_items WHERE accessory_id = $1`

	idRows, err := s.db.QueryContext(ctx, idQuery, accessoryID)
	if err != nil {
		return nil, fmt.Errorf("finding sales for accessory: %w", err)
	}
	defer idRows.Close()

	var saleIDs []string

	for idRows.Next() {
		var id string
		if err := idRows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning sale id: %w", err)
		}

		saleIDs = append(saleIDs, id)
	}

	if err := idRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale ids: %w", err)
	}

	if len(saleIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(saleIDs))
	args := make([]any, len(saleIDs))

	for i, id := range saleIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `SELECT ` + selectSaleColumns + ` FROM sales WHERE id IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY sold_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales by accessory: %w", err)
	}
	defer rows.Close()

	sales, err := collectSales(rows)
	if err != nil {
		return nil, err
	}

	if err := s.attachItems(ctx, sales); err != nil {
		return nil, err
	}

	return sales, nil
}

func (s *Store) DeactivateSale(ctx context.Context, id string) error {
	query := `
		UPDATE sales
		SET state = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, sale.StateInactive, id)
	if err != nil {
		return fmt.Errorf("deactivating sale: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sale.ErrNotFound
	}

	return nil
}

func collectSales(rows *sql.Rows) ([]*sale.Sale, error) {
	var sales []*sale.Sale

	for rows.Next() {
		sl, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		sales = append(sales, sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale rows: %w", err)
	}

	return sales, nil
}

// attachItems loads the line items for all given sales in one query and
// distributes them to their owners.
func (s *Store) attachItems(ctx context.Context, sales []*sale.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	placeholders := make([]string, len(sales))
	args := make([]any, len(sales))
	byID := make(map[string]*sale.Sale, len(sales))

	for i, sl := range sales {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = sl.ID
		byID[sl.ID] = sl
	}

	query := `SELECT ` + selectItemColumns + ` FROM sale_items WHERE sale_id IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("listing sale items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item sale.LineItem
		if err := rows.Scan(
			&item.ID, &item.SaleID, &item.AccessoryID, &item.Quantity,
			&item.UnitPrice, &item.Subtotal, &item.CreatedAt,
		); err != nil {
			return fmt.Errorf("scanning sale item: %w", err)
		}

		if owner, ok := byID[item.SaleID]; ok {
			owner.Items = append(owner.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating sale item rows: %w", err)
	}

	return nil
}

type saleTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (sale.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning sale tx: %w", err)
	}

	return &saleTx{tx: dbTx}, nil
}

func (stx *saleTx) Commit() error   { return stx.tx.Commit() }
func (stx *saleTx) Rollback() error { return stx.tx.Rollback() }

func (stx *saleTx) CreateSale(ctx context.Context, sl *sale.Sale) error {
	query := `
		INSERT INTO sales (id, customer, total, state, sold_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := stx.tx.QueryRowContext(ctx, query,
		sl.ID,
		sl.Customer,
		sl.Total,
		sl.State,
		sl.SoldAt,
	).Scan(&sl.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sale.ErrDuplicateID
		}

		return fmt.Errorf("creating sale: %w", err)
	}

	return nil
}

func (stx *saleTx) CreateLineItems(ctx context.Context, items []sale.LineItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, accessory_id, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	for i := range items {
		err := stx.tx.QueryRowContext(ctx, query,
			items[i].ID,
			items[i].SaleID,
			items[i].AccessoryID,
			items[i].Quantity,
			items[i].UnitPrice,
			items[i].Subtotal,
		).Scan(&items[i].CreatedAt)
		if err != nil {
			return fmt.Errorf("creating line item %s: %w", items[i].ID, err)
		}
	}

	return nil
}

// ReduceStock clamps at zero in SQL so an oversell never drives stock
// negative.
func (stx *saleTx) ReduceStock(ctx context.Context, accessoryID string, qty int) error {
	query := `
		UPDATE accessories
		SET stock = GREATEST(stock - $1, 0), updated_at = NOW()
		WHERE id = $2
	`

	res, err := stx.tx.ExecContext(ctx, query, qty, accessoryID)
	if err != nil {
		return fmt.Errorf("reducing stock: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("reducing stock: accessory %s not found", accessoryID)
	}

	return nil
}
