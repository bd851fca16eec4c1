package pricing

import "testing"

func TestUpgradeFor_Grid(t *testing.T) {
	perks30 := FreePerks{FreeDropoff: true, Free30MinLesson: true}
	perks1h := FreePerks{FreeDropoff: true, Free1HourLesson: true}

	tests := []struct {
		name         string
		addon        AddonInfo
		perks        FreePerks
		wantUpgrade  bool
		wantOriginal int64
		wantActual   int64
	}{
		{"30min perk, G2 mock test", AddonInfo{Kind: AddonMockTest, TestType: TestTypeG2}, perks30, true, 5499, 2999},
		{"30min perk, G mock test", AddonInfo{Kind: AddonMockTest, TestType: TestTypeG}, perks30, true, 6499, 3499},
		{"30min perk, G2 1-hour lesson", AddonInfo{Kind: AddonLesson1H, TestType: TestTypeG2}, perks30, true, 5000, 2500},
		{"30min perk, G 1-hour lesson", AddonInfo{Kind: AddonLesson1H, TestType: TestTypeG}, perks30, true, 6000, 3000},
		{"1h perk, G2 mock test", AddonInfo{Kind: AddonMockTest, TestType: TestTypeG2}, perks1h, true, 5499, 499},
		{"1h perk, G mock test", AddonInfo{Kind: AddonMockTest, TestType: TestTypeG}, perks1h, true, 6499, 499},
		// The lesson itself is already free under the 1-hour perk; no paid
		// upgrade exists and the listed price stands.
		{"1h perk, G2 1-hour lesson not applicable", AddonInfo{Kind: AddonLesson1H, TestType: TestTypeG2}, perks1h, false, 0, 0},
		{"1h perk, G 1-hour lesson not applicable", AddonInfo{Kind: AddonLesson1H, TestType: TestTypeG}, perks1h, false, 0, 0},
		{"no perk, mock test", AddonInfo{Kind: AddonMockTest, TestType: TestTypeG2}, FreePerks{}, false, 0, 0},
		{"dropoff only, mock test", AddonInfo{Kind: AddonMockTest, TestType: TestTypeG2}, FreePerks{FreeDropoff: true}, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, ok := UpgradeFor(tt.addon, tt.perks)
			if ok != tt.wantUpgrade {
				t.Fatalf("UpgradeFor() upgrade = %v, want %v", ok, tt.wantUpgrade)
			}
			if !ok {
				return
			}
			if up.OriginalPrice != tt.wantOriginal || up.ActualPrice != tt.wantActual {
				t.Errorf("UpgradeFor() = %d/%d, want %d/%d",
					up.OriginalPrice, up.ActualPrice, tt.wantOriginal, tt.wantActual)
			}
			if up.UpgradeFrom == "" {
				t.Error("UpgradeFor() missing upgrade-from label")
			}
		})
	}
}
