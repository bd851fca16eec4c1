// README: Coupon definitions and validity rules.
package coupon

import (
	"time"

	"roadready/internal/types"
)

// Coupon is a fixed amount-off discount. DiscountAmount is integer cents.
type Coupon struct {
	ID             types.ID   `json:"id"`
	Code           string     `json:"code"`
	DiscountAmount int64      `json:"discount_amount"`
	Description    string     `json:"description"`
	Active         bool       `json:"active"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidTo        *time.Time `json:"valid_to,omitempty"`
}

// ValidAt reports whether the coupon can be applied at the given time.
func (c *Coupon) ValidAt(t time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ValidFrom != nil && t.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidTo != nil && t.After(*c.ValidTo) {
		return false
	}
	return true
}
