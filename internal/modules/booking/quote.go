// README: Quote aggregator — resolves reference data and runs the pricing engine.
package booking

import (
	"context"
	"errors"

	"roadready/internal/modules/addon"
	"roadready/internal/modules/coupon"
	"roadready/internal/modules/pricing"
	"roadready/internal/modules/testcenter"
	"roadready/internal/types"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("booking not found")
	ErrInvalidState = errors.New("invalid state transition")
	ErrConflict     = errors.New("booking state conflict")
)

// Directory interfaces are satisfied by the module services; they exist so
// the aggregator can be tested without Postgres or Redis.
type TestCenters interface {
	Get(ctx context.Context, id types.ID) (*testcenter.TestCenter, error)
}

type Addons interface {
	Get(ctx context.Context, id types.ID) (*addon.Addon, error)
}

type Coupons interface {
	Verify(ctx context.Context, code string) (*coupon.Coupon, error)
}

// QuoteRequest is the admin's booking draft. AddonID and CouponCode are
// optional; absence means the engine runs its no-addon/no-discount branch.
type QuoteRequest struct {
	TestCenterID   types.ID
	TestType       pricing.TestType
	LocationOption pricing.LocationOption
	DistanceKm     float64
	AddonID        types.ID
	CouponCode     string
}

// Quoter composes the pricing engine with the reference-data services. It is
// stateless; every call re-resolves inputs and re-runs the engine.
type Quoter struct {
	engine      *pricing.Engine
	testCenters TestCenters
	addons      Addons
	coupons     Coupons
}

func NewQuoter(engine *pricing.Engine, tcs TestCenters, addons Addons, coupons Coupons) *Quoter {
	return &Quoter{engine: engine, testCenters: tcs, addons: addons, coupons: coupons}
}

// Quote prices a booking draft. A named addon or coupon that fails to resolve
// is an error, not a silent no-addon quote: admin typos must surface instead
// of producing a cheaper breakdown.
func (q *Quoter) Quote(ctx context.Context, req QuoteRequest) (pricing.Breakdown, error) {
	if req.TestCenterID == "" {
		return pricing.Breakdown{}, ErrBadRequest
	}
	if req.TestType != pricing.TestTypeG2 && req.TestType != pricing.TestTypeG {
		return pricing.Breakdown{}, ErrBadRequest
	}
	if req.LocationOption != pricing.LocationPickup && req.LocationOption != pricing.LocationTestCentre {
		return pricing.Breakdown{}, ErrBadRequest
	}

	tc, err := q.testCenters.Get(ctx, req.TestCenterID)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	in := pricing.QuoteInput{
		TestCenter:     &pricing.TestCenterInfo{Name: tc.Name, BasePrice: tc.BasePrice},
		LocationOption: req.LocationOption,
		DistanceKm:     req.DistanceKm,
		Perks:          pricing.ResolvePerks(req.LocationOption, req.DistanceKm),
	}

	if req.AddonID != "" {
		a, err := q.addons.Get(ctx, req.AddonID)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		if a.TestType != req.TestType {
			return pricing.Breakdown{}, ErrBadRequest
		}
		info := a.Info()
		in.Addon = &info
	}

	if req.CouponCode != "" {
		c, err := q.coupons.Verify(ctx, req.CouponCode)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		in.Coupon = &pricing.CouponInfo{
			Code:           c.Code,
			DiscountAmount: c.DiscountAmount,
			Description:    c.Description,
		}
	}

	return q.engine.Assemble(in)
}
