// README: Pickup rate store backed by PostgreSQL.
package pricing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadRates reads the current pickup tier rates. Falls back to the defaults
// when no row has been configured yet.
func (s *Store) LoadRates(ctx context.Context) (PickupRates, error) {
	row := s.db.QueryRow(ctx, `
        SELECT tier_km, first_tier_cents_km, excess_tier_cents_km
        FROM pickup_rates
        ORDER BY updated_at DESC
        LIMIT 1`)

	var r PickupRates
	err := row.Scan(&r.TierKm, &r.FirstCentsKm, &r.ExcessCentsKm)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultPickupRates(), nil
	}
	if err != nil {
		return PickupRates{}, err
	}
	return r, nil
}

// SaveRates upserts the pickup tier rates (admin settings page).
func (s *Store) SaveRates(ctx context.Context, r PickupRates) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO pickup_rates (id, tier_km, first_tier_cents_km, excess_tier_cents_km, updated_at)
        VALUES (1, $1, $2, $3, NOW())
        ON CONFLICT (id) DO UPDATE
        SET tier_km = EXCLUDED.tier_km,
            first_tier_cents_km = EXCLUDED.first_tier_cents_km,
            excess_tier_cents_km = EXCLUDED.excess_tier_cents_km,
            updated_at = NOW()`,
		r.TierKm, r.FirstCentsKm, r.ExcessCentsKm,
	)
	return err
}
