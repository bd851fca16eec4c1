// README: Pricing engine — pickup fees, free perks, and breakdown assembly.
package pricing

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("invalid pricing input")

const (
	labelTestCenterFee   = "Test Center Fee"
	labelPickupService   = "Pickup Service"
	labelFreeDropoff     = "Free Dropoff Service"
	labelFree30MinLesson = "Free 30-minute Driving Lesson"
	labelFree1HourLesson = "Free 1-hour Driving Lesson"
	labelTotalPayment    = "Total Payment"
)

// Engine computes price breakdowns. It holds no mutable state and is safe to
// call concurrently.
type Engine struct {
	rates    PickupRates
	currency string
}

func NewEngine(rates PickupRates, currency string) *Engine {
	return &Engine{rates: rates, currency: currency}
}

// PickupFee converts a pickup distance into cents using the tiered per-km
// rates: the first TierKm kilometres at the full rate, the excess at the
// reduced rate, rounded half-up to a whole cent. Negative distance is a
// caller error, never clamped.
func (e *Engine) PickupFee(distanceKm float64) (int64, error) {
	if distanceKm < 0 {
		return 0, fmt.Errorf("%w: negative distance %.1f km", ErrInvalidInput, distanceKm)
	}
	r := e.rates
	raw := math.Min(distanceKm, r.TierKm)*float64(r.FirstCentsKm) +
		math.Max(distanceKm-r.TierKm, 0)*float64(r.ExcessCentsKm)
	return roundHalfUp(raw), nil
}

// ResolvePerks determines the complimentary services a booking qualifies for.
// Perks apply only to pickup bookings: meet-at-centre gets nothing regardless
// of address. Boundary convention follows the admin dashboard's comparisons
// (>50 and <=100): exactly 50 km earns nothing, exactly 100 km still earns
// the 30-minute lesson.
func ResolvePerks(option LocationOption, distanceKm float64) FreePerks {
	if option != LocationPickup || distanceKm <= 0 {
		return FreePerks{}
	}
	return FreePerks{
		FreeDropoff:     distanceKm > 50,
		Free30MinLesson: distanceKm > 50 && distanceKm <= 100,
		Free1HourLesson: distanceKm > 100,
	}
}

// Assemble produces the ordered breakdown and grand total for a booking
// draft. Line order is part of the contract: the admin reconciles the total
// against the rows top-to-bottom. Identical inputs always yield identical
// output; an absent test center yields an empty breakdown, not an error.
func (e *Engine) Assemble(in QuoteInput) (Breakdown, error) {
	b := Breakdown{Currency: e.currency}
	if in.TestCenter == nil {
		return b, nil
	}
	if in.TestCenter.BasePrice < 0 {
		return b, fmt.Errorf("%w: negative base price", ErrInvalidInput)
	}
	if in.Addon != nil && in.Addon.Price < 0 {
		return b, fmt.Errorf("%w: negative addon price", ErrInvalidInput)
	}
	if in.Coupon != nil && in.Coupon.DiscountAmount < 0 {
		return b, fmt.Errorf("%w: negative coupon discount", ErrInvalidInput)
	}

	b.Lines = append(b.Lines, Line{Label: labelTestCenterFee, Amount: in.TestCenter.BasePrice})

	if in.LocationOption == LocationPickup && in.DistanceKm != 0 {
		fee, err := e.PickupFee(in.DistanceKm)
		if err != nil {
			return Breakdown{Currency: e.currency}, err
		}
		b.Lines = append(b.Lines, Line{
			Label:  labelPickupService,
			Amount: fee,
			Note:   e.rates.describe(),
		})
		if in.Perks.FreeDropoff {
			b.Lines = append(b.Lines, Line{Label: labelFreeDropoff, IsFree: true})
		}
	}

	if in.Addon != nil {
		line := Line{Label: in.Addon.Name, Amount: in.Addon.Price}
		if up, ok := UpgradeFor(*in.Addon, in.Perks); ok {
			line.Amount = up.ActualPrice
			line.Note = fmt.Sprintf("upgraded from %s", up.UpgradeFrom)
		}
		b.Lines = append(b.Lines, line)
	} else if in.Perks.Free30MinLesson {
		b.Lines = append(b.Lines, Line{Label: labelFree30MinLesson, IsFree: true})
	} else if in.Perks.Free1HourLesson {
		b.Lines = append(b.Lines, Line{Label: labelFree1HourLesson, IsFree: true})
	}

	if in.Coupon != nil {
		b.Lines = append(b.Lines, Line{
			Label:      fmt.Sprintf("Discount (%s)", in.Coupon.Code),
			Amount:     in.Coupon.DiscountAmount,
			IsDiscount: true,
			Note:       in.Coupon.Description,
		})
	}

	for _, l := range b.Lines {
		switch {
		case l.IsDiscount:
			b.Discount += l.Amount
		case !l.IsFree:
			b.Subtotal += l.Amount
		}
	}
	b.Total = b.Subtotal - b.Discount
	if b.Total < 0 {
		b.Total = 0
	}
	b.Lines = append(b.Lines, Line{Label: labelTotalPayment, Amount: b.Total, IsTotal: true})
	return b, nil
}

func (r PickupRates) describe() string {
	return fmt.Sprintf("first %.0f km at %d¢/km, then %d¢/km", r.TierKm, r.FirstCentsKm, r.ExcessCentsKm)
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
