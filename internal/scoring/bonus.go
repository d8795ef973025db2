package scoring

import (
	"strconv"
	"strings"

	"github.com/zonewatch/uprising-bot/internal/catalog"
	"github.com/zonewatch/uprising-bot/internal/domain"
)

// Bonus computes the total equipment bonus for a roll. It is additive over
// items: flat bonus, one of the parity tables, every threshold table the
// roll meets (thresholds stack, they are not exclusive tiers), the last-digit
// table, the contains-9 table, minus the unlucky penalty on a roll of
// exactly 100. Items absent from a table contribute zero; negative totals
// are legal and never clamped.
//
// A roll ending in 9 collects the ends-in-9 and contains-9 tables once each;
// the contains-9 table is never counted twice for the same item.
func Bonus(equipment domain.ItemSet, roll int) int {
	even := roll%2 == 0
	lastDigit := roll % 10
	containsNine := strings.Contains(strconv.Itoa(roll), "9")

	bonus := 0
	for item := range equipment {
		bonus += catalog.FlatBonuses[item]

		if even {
			bonus += catalog.EvenRollBonuses[item]
		} else {
			bonus += catalog.OddRollBonuses[item]
		}

		if roll >= 70 {
			bonus += catalog.AtLeast70Bonuses[item]
		}
		if roll >= 75 {
			bonus += catalog.AtLeast75Bonuses[item]
		}
		if roll >= 80 {
			bonus += catalog.AtLeast80Bonuses[item]
		}
		if roll >= 85 {
			bonus += catalog.AtLeast85Bonuses[item]
		}
		if roll >= 90 {
			bonus += catalog.AtLeast90Bonuses[item]
		}

		switch lastDigit {
		case 0:
			bonus += catalog.EndsIn0Bonuses[item]
		case 5:
			bonus += catalog.EndsIn5Bonuses[item]
		case 7:
			bonus += catalog.EndsIn7Bonuses[item]
		case 9:
			bonus += catalog.EndsIn9Bonuses[item]
		}

		if containsNine {
			bonus += catalog.Contains9Bonuses[item]
		}

		if roll == 100 {
			bonus -= catalog.Unlucky100Penalties[item]
		}
	}
	return bonus
}
