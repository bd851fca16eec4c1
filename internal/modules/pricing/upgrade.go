// README: Fixed add-on upgrade pricing grid.
package pricing

// Upgrade describes the discounted price for taking a paid add-on instead of
// an active free lesson perk.
type Upgrade struct {
	UpgradeFrom   string
	OriginalPrice int64
	ActualPrice   int64
}

type activePerk string

const (
	perkNone  activePerk = ""
	perk30Min activePerk = "free_30min_lesson"
	perk1Hour activePerk = "free_1hour_lesson"
)

type upgradeKey struct {
	perk     activePerk
	kind     AddonKind
	testType TestType
}

type upgradePrices struct {
	original int64
	actual   int64
}

// upgradeGrid is static business configuration, kept as an explicit table so
// the grid is auditable instead of scattered across conditionals. The
// (perk1Hour, AddonLesson1H) rows are deliberately absent: the perk already
// grants the lesson outright, so no paid upgrade exists.
var upgradeGrid = map[upgradeKey]upgradePrices{
	{perk30Min, AddonMockTest, TestTypeG2}: {original: 5499, actual: 2999},
	{perk30Min, AddonMockTest, TestTypeG}:  {original: 6499, actual: 3499},
	{perk30Min, AddonLesson1H, TestTypeG2}: {original: 5000, actual: 2500},
	{perk30Min, AddonLesson1H, TestTypeG}:  {original: 6000, actual: 3000},
	{perk1Hour, AddonMockTest, TestTypeG2}: {original: 5499, actual: 499},
	{perk1Hour, AddonMockTest, TestTypeG}:  {original: 6499, actual: 499},
}

func (p FreePerks) active() activePerk {
	switch {
	case p.Free1HourLesson:
		return perk1Hour
	case p.Free30MinLesson:
		return perk30Min
	default:
		return perkNone
	}
}

// UpgradeFor returns the upgrade pricing for the addon under the active free
// perk, or false when no upgrade applies and the listed price stands.
func UpgradeFor(addon AddonInfo, perks FreePerks) (Upgrade, bool) {
	perk := perks.active()
	if perk == perkNone {
		return Upgrade{}, false
	}
	prices, ok := upgradeGrid[upgradeKey{perk, addon.Kind, addon.TestType}]
	if !ok {
		return Upgrade{}, false
	}
	return Upgrade{
		UpgradeFrom:   perkLabel(perk),
		OriginalPrice: prices.original,
		ActualPrice:   prices.actual,
	}, true
}

func perkLabel(p activePerk) string {
	if p == perk1Hour {
		return labelFree1HourLesson
	}
	return labelFree30MinLesson
}
