package coupon

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRepo struct {
	byCode map[string]*Coupon
	calls  int
}

func (f *fakeRepo) GetByCode(_ context.Context, code string) (*Coupon, error) {
	f.calls++
	if c, ok := f.byCode[code]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, ErrNotFound
}

type fakeCache struct {
	entries map[string]*Coupon
}

func (f *fakeCache) Get(_ context.Context, code string) (*Coupon, error) {
	if c, ok := f.entries[code]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCache) Set(_ context.Context, c *Coupon) error {
	cp := *c
	f.entries[c.Code] = &cp
	return nil
}

func newTestService(repo Repository, cache VerifiedCache, at time.Time) *Service {
	s := NewService(repo, cache)
	s.now = func() time.Time { return at }
	return s
}

func TestVerify_HappyPath(t *testing.T) {
	repo := &fakeRepo{byCode: map[string]*Coupon{
		"WELCOME10": {ID: "c1", Code: "WELCOME10", DiscountAmount: 1000, Active: true},
	}}
	cache := &fakeCache{entries: map[string]*Coupon{}}
	svc := newTestService(repo, cache, time.Now())

	c, err := svc.Verify(context.Background(), "WELCOME10")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if c.DiscountAmount != 1000 {
		t.Errorf("discount = %d, want 1000", c.DiscountAmount)
	}
	if _, ok := cache.entries["WELCOME10"]; !ok {
		t.Error("expected verified coupon to be cached")
	}
}

func TestVerify_CacheHitSkipsStore(t *testing.T) {
	repo := &fakeRepo{byCode: map[string]*Coupon{}}
	cache := &fakeCache{entries: map[string]*Coupon{
		"SPRING": {ID: "c2", Code: "SPRING", DiscountAmount: 500, Active: true},
	}}
	svc := newTestService(repo, cache, time.Now())

	c, err := svc.Verify(context.Background(), "SPRING")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if c.DiscountAmount != 500 {
		t.Errorf("discount = %d, want 500", c.DiscountAmount)
	}
	if repo.calls != 0 {
		t.Errorf("store called %d times on cache hit, want 0", repo.calls)
	}
}

func TestVerify_CachedCouponPastWindowRejected(t *testing.T) {
	ended := time.Now().Add(-time.Hour)
	cache := &fakeCache{entries: map[string]*Coupon{
		"OLD": {ID: "c3", Code: "OLD", DiscountAmount: 500, Active: true, ValidTo: &ended},
	}}
	svc := newTestService(&fakeRepo{byCode: map[string]*Coupon{}}, cache, time.Now())

	if _, err := svc.Verify(context.Background(), "OLD"); !errors.Is(err, ErrInactive) {
		t.Fatalf("expected ErrInactive for cached expired coupon, got %v", err)
	}
}

func TestVerify_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{byCode: map[string]*Coupon{}}, nil, time.Now())
	if _, err := svc.Verify(context.Background(), "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVerify_InactiveCoupon(t *testing.T) {
	repo := &fakeRepo{byCode: map[string]*Coupon{
		"PAUSED": {ID: "c4", Code: "PAUSED", DiscountAmount: 500, Active: false},
	}}
	svc := newTestService(repo, nil, time.Now())
	if _, err := svc.Verify(context.Background(), "PAUSED"); !errors.Is(err, ErrInactive) {
		t.Fatalf("expected ErrInactive, got %v", err)
	}
}

func TestVerify_BlankCode(t *testing.T) {
	svc := newTestService(&fakeRepo{byCode: map[string]*Coupon{}}, nil, time.Now())
	if _, err := svc.Verify(context.Background(), "   "); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}
