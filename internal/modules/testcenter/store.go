// README: Test center store backed by PostgreSQL.
package testcenter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roadready/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context) ([]TestCenter, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, name, address, city, province, base_price, active, created_at
        FROM test_centers
        WHERE active
        ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TestCenter
	for rows.Next() {
		var tc TestCenter
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.Address, &tc.City, &tc.Province,
			&tc.BasePrice, &tc.Active, &tc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id types.ID) (*TestCenter, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, name, address, city, province, base_price, active, created_at
        FROM test_centers
        WHERE id = $1`, string(id))

	var tc TestCenter
	err := row.Scan(&tc.ID, &tc.Name, &tc.Address, &tc.City, &tc.Province,
		&tc.BasePrice, &tc.Active, &tc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tc, nil
}
