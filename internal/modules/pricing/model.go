// README: Pricing engine input and breakdown definitions.
package pricing

type TestType string

const (
	TestTypeG2 TestType = "G2"
	TestTypeG  TestType = "G"
)

type AddonKind string

const (
	AddonMockTest AddonKind = "mock_test"
	AddonLesson1H AddonKind = "lesson_1h"
)

type LocationOption string

const (
	LocationPickup     LocationOption = "pickup"
	LocationTestCentre LocationOption = "test-centre"
)

// PickupRates defines the tiered per-kilometre pickup pricing: the first
// TierKm kilometres at FirstCentsKm, anything beyond at ExcessCentsKm.
type PickupRates struct {
	TierKm        float64
	FirstCentsKm  int64
	ExcessCentsKm int64
}

func DefaultPickupRates() PickupRates {
	return PickupRates{TierKm: 50, FirstCentsKm: 100, ExcessCentsKm: 50}
}

// FreePerks is derived purely from pickup distance and never stored.
type FreePerks struct {
	FreeDropoff     bool `json:"free_dropoff"`
	Free30MinLesson bool `json:"free_30min_lesson"`
	Free1HourLesson bool `json:"free_1hour_lesson"`
}

// TestCenterInfo carries the engine-facing slice of a test center.
type TestCenterInfo struct {
	Name      string
	BasePrice int64
}

// AddonInfo carries the engine-facing slice of a catalogue add-on.
type AddonInfo struct {
	Name     string
	Kind     AddonKind
	TestType TestType
	Price    int64
}

// CouponInfo is a backend-verified discount. The engine treats it as opaque
// input and only applies the amount it is given.
type CouponInfo struct {
	Code           string
	DiscountAmount int64
	Description    string
}

// QuoteInput is everything the assembler needs for one breakdown.
type QuoteInput struct {
	TestCenter     *TestCenterInfo
	LocationOption LocationOption
	DistanceKm     float64
	Addon          *AddonInfo
	Coupon         *CouponInfo
	Perks          FreePerks
}

// Line is a single breakdown row. Amounts are always non-negative integer
// cents; discount lines are tagged rather than negated.
type Line struct {
	Label      string `json:"label"`
	Amount     int64  `json:"amount"`
	IsFree     bool   `json:"is_free"`
	IsDiscount bool   `json:"is_discount"`
	IsTotal    bool   `json:"is_total"`
	Note       string `json:"note,omitempty"`
}

// Breakdown is the ordered line sequence shown to the admin before a booking
// is created. It always terminates in exactly one total line (unless empty).
type Breakdown struct {
	Lines    []Line `json:"lines"`
	Subtotal int64  `json:"subtotal"`
	Discount int64  `json:"discount"`
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
}
