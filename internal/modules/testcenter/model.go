// README: Test center reference data.
package testcenter

import (
	"time"

	"roadready/internal/types"
)

// TestCenter is immutable reference data for a physical test location.
// BasePrice is integer cents.
type TestCenter struct {
	ID        types.ID
	Name      string
	Address   string
	City      string
	Province  string
	BasePrice int64
	Active    bool
	CreatedAt time.Time
}
