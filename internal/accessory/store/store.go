package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanAccessory reads an accessory row from the scanner.
// Expected column order: id, name, type, price, stock, state, created_at, updated_at
func scanAccessory(s scanner) (*accessory.Accessory, error) {
	var acc accessory.Accessory

	var stateStr string

	if err := s.Scan(
		&acc.ID, &acc.Name, &acc.Type, &acc.Price, &acc.Stock, &stateStr,
		&acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.State = accessory.State(stateStr)

	return &acc, nil
}

const selectAccessoryColumns = `id, name, type, price, stock, state, created_at, updated_at`

func (s *Store) CreateAccessory(ctx context.Context, acc *accessory.Accessory) error {
	query := `
		INSERT INTO accessories (id, name, type, price, stock, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acc.ID,
		acc.Name,
		acc.Type,
		acc.Price,
		acc.Stock,
		acc.State,
	).Scan(&acc.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return accessory.ErrDuplicateID
		}

		return fmt.Errorf("creating accessory: %w", err)
	}

	return nil
}

func (s *Store) GetAccessory(ctx context.Context, id string) (*accessory.Accessory, error) {
	query := `SELECT ` + selectAccessoryColumns + ` FROM accessories WHERE id = $1`

	acc, err := scanAccessory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, accessory.ErrNotFound
		}

		return nil, fmt.Errorf("getting accessory: %w", err)
	}

	return acc, nil
}

func (s *Store) ListAccessories(ctx context.Context, filter accessory.ListFilter) ([]*accessory.Accessory, error) {
	query := `SELECT ` + selectAccessoryColumns + ` FROM accessories WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.State != nil {
		query += fmt.Sprintf(" AND state = $%d", argIdx)

		args = append(args, *filter.State)
		argIdx++
	}

	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.Query != nil {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR type ILIKE $%d)", argIdx, argIdx)

		args = append(args, "%"+*filter.Query+"%")
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accessories: %w", err)
	}
	defer rows.Close()

	var accs []*accessory.Accessory

	for rows.Next() {
		acc, err := scanAccessory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning accessory: %w", err)
		}

		accs = append(accs, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accessory rows: %w", err)
	}

	return accs, nil
}

func (s *Store) UpdateAccessory(ctx context.Context, acc *accessory.Accessory) error {
	query := `
		UPDATE accessories
		SET name = $1, type = $2, price = $3, stock = $4, state = $5, updated_at = NOW()
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		acc.Name,
		acc.Type,
		acc.Price,
		acc.Stock,
		acc.State,
		acc.ID,
	)
	if err != nil {
		return fmt.Errorf("updating accessory: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return accessory.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateStock(ctx context.Context, id string, stock int) (*accessory.Accessory, error) {
	query := `
		UPDATE accessories
		SET stock = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + selectAccessoryColumns

	acc, err := scanAccessory(s.db.QueryRowContext(ctx, query, stock, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, accessory.ErrNotFound
		}

		return nil, fmt.Errorf("updating stock: %w", err)
	}

	return acc, nil
}

// ListTypes returns the type of every active accessory; deduplication is the
// service's concern.
func (s *Store) ListTypes(ctx context.Context) ([]string, error) {
	query := `SELECT type FROM accessories WHERE state = $1`

	rows, err := s.db.QueryContext(ctx, query, accessory.StateActive)
	if err != nil {
		return nil, fmt.Errorf("listing types: %w", err)
	}
	defer rows.Close()

	var types []string

	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scanning type: %w", err)
		}

		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating type rows: %w", err)
	}

	return types, nil
}
