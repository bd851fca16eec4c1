// README: Booking aggregate and status definitions.
package booking

import (
	"time"

	"roadready/internal/modules/pricing"
	"roadready/internal/types"
)

type Status string

const (
	StatusNone      Status = "none"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Booking is a priced driving-test booking. The breakdown is snapshotted at
// creation time; later rate or coupon edits never reprice an existing
// booking.
type Booking struct {
	ID             types.ID
	CustomerName   string
	CustomerEmail  string
	TestType       pricing.TestType
	TestCenterID   types.ID
	LocationOption pricing.LocationOption
	PickupAddress  string
	DistanceKm     float64
	AddonID        *types.ID
	CouponCode     *string
	Status         Status
	StatusVersion  int
	Total          types.Money
	Breakdown      pricing.Breakdown
	RefundAmount   *types.Money
	CreatedAt      time.Time
	ConfirmedAt    *time.Time
	CompletedAt    *time.Time
	CancelledAt    *time.Time
	CancelReason   *string
}

type Event struct {
	ID         int64
	BookingID  types.ID
	FromStatus Status
	ToStatus   Status
	ActorType  string
	CreatedAt  time.Time
}

// AllowedTransitions represents the booking state flow as code.
var AllowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
