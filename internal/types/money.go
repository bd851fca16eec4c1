// README: Common value objects shared across modules.
package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ID string

// Money is an integer count of the smallest currency unit (cents).
// Amounts are never negative; discount lines are tagged, not sign-flipped.
type Money struct {
	Amount   int64
	Currency string
}

var ErrBadAmount = errors.New("malformed money amount")

// FormatDollars renders integer cents as a decimal dollar string ("55.00").
// Conversion to dollars happens only at the display boundary; everything
// upstream stays in integer cents.
func FormatDollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseDollars converts a decimal dollar string back to integer cents,
// rounding half-up beyond two decimals so editable price fields round-trip
// without cent drift.
func ParseDollars(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrBadAmount
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, ErrBadAmount
	}
	return int64(math.Floor(f*100 + 0.5)), nil
}
