// README: Add-on catalogue store backed by PostgreSQL.
package addon

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roadready/internal/modules/pricing"
	"roadready/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context, testType pricing.TestType) ([]Addon, error) {
	query := `
        SELECT id, name, kind, test_type, price, duration_min, active, created_at
        FROM addons
        WHERE active`
	args := []any{}
	if testType != "" {
		query += ` AND test_type = $1`
		args = append(args, string(testType))
	}
	query += ` ORDER BY name`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Addon
	for rows.Next() {
		var a Addon
		if err := rows.Scan(&a.ID, &a.Name, &a.Kind, &a.TestType,
			&a.Price, &a.DurationMin, &a.Active, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Addon, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, name, kind, test_type, price, duration_min, active, created_at
        FROM addons
        WHERE id = $1`, string(id))

	var a Addon
	err := row.Scan(&a.ID, &a.Name, &a.Kind, &a.TestType,
		&a.Price, &a.DurationMin, &a.Active, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
