// README: Coupon store backed by PostgreSQL with a Redis verification cache.
package coupon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	verifiedKeyPrefix = "coupon:verified:%s"
	// Verified coupons rarely change mid-session; a short TTL keeps admin
	// edits visible within minutes.
	verifiedTTL = 10 * time.Minute
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, code, discount_amount, description, active, valid_from, valid_to
        FROM coupons
        WHERE UPPER(code) = UPPER($1)`, code)

	var c Coupon
	err := row.Scan(&c.ID, &c.Code, &c.DiscountAmount, &c.Description,
		&c.Active, &c.ValidFrom, &c.ValidTo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Cache holds recently verified coupons in Redis keyed by uppercase code.
type Cache struct {
	redis *redis.Client
}

func NewCache(redis *redis.Client) *Cache {
	return &Cache{redis: redis}
}

func (c *Cache) Get(ctx context.Context, code string) (*Coupon, error) {
	val, err := c.redis.Get(ctx, verifiedKey(code)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cp Coupon
	if err := json.Unmarshal([]byte(val), &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (c *Cache) Set(ctx context.Context, cp *Coupon) error {
	raw, err := json.Marshal(cp)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, verifiedKey(cp.Code), raw, verifiedTTL).Err()
}

func verifiedKey(code string) string {
	return fmt.Sprintf(verifiedKeyPrefix, strings.ToUpper(code))
}
