// README: Add-on catalogue definitions.
package addon

import (
	"time"

	"roadready/internal/modules/pricing"
	"roadready/internal/types"
)

// Addon is an optional add-on service (mock test or driving lesson) tied to a
// licence test type. Price is integer cents.
type Addon struct {
	ID          types.ID
	Name        string
	Kind        pricing.AddonKind
	TestType    pricing.TestType
	Price       int64
	DurationMin int
	Active      bool
	CreatedAt   time.Time
}

// Info projects the catalogue row onto the engine-facing shape.
func (a *Addon) Info() pricing.AddonInfo {
	return pricing.AddonInfo{
		Name:     a.Name,
		Kind:     a.Kind,
		TestType: a.TestType,
		Price:    a.Price,
	}
}
