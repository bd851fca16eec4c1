// README: Coupon verification service.
package coupon

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound   = errors.New("coupon not found")
	ErrInactive   = errors.New("coupon is not active")
	ErrBadRequest = errors.New("bad request")
)

// Repository and VerifiedCache are satisfied by Store and Cache; they exist
// so verification logic can be tested without Postgres or Redis.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*Coupon, error)
}

type VerifiedCache interface {
	Get(ctx context.Context, code string) (*Coupon, error)
	Set(ctx context.Context, c *Coupon) error
}

type Service struct {
	repo  Repository
	cache VerifiedCache
	now   func() time.Time
}

func NewService(repo Repository, cache VerifiedCache) *Service {
	return &Service{repo: repo, cache: cache, now: time.Now}
}

// Verify resolves a code to a usable coupon. The cache only ever holds
// coupons that passed verification, but validity is re-checked on hits so a
// coupon cannot outlive its window by cache TTL.
func (s *Service) Verify(ctx context.Context, code string) (*Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrBadRequest
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, code); err == nil && cached != nil {
			if cached.ValidAt(s.now()) {
				return cached, nil
			}
			return nil, ErrInactive
		}
		// Cache errors fall through to the store; verification must not
		// depend on Redis being up.
	}

	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !c.ValidAt(s.now()) {
		return nil, ErrInactive
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, c)
	}
	return c, nil
}
