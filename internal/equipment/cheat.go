package equipment

import (
	"github.com/zonewatch/uprising-bot/internal/catalog"
	"github.com/zonewatch/uprising-bot/internal/domain"
)

// CheckCheating compares a player's claimed equipment against the loot
// ledger. Every claimed item absent from the player's ledger entry is
// reported as missing; the player is cheating iff anything is missing.
//
// Exception: exactly one missing item that belongs to either Faction Wars 24
// armor set is treated as harmless ambiguity, not fraud - the label is
// assumed to be a leftover from the previous event cycle.
func CheckCheating(equipped domain.ItemSet, playerID string, ledger domain.Ledger) (bool, []string) {
	owned := ledger.Owned(playerID)

	var missing []string
	for _, item := range equipped.Sorted() {
		if !owned.Has(item) {
			missing = append(missing, item)
		}
	}

	if len(missing) == 1 &&
		(catalog.FactionWars24MonolithArmor.Has(missing[0]) || catalog.FactionWars24StalkerArmor.Has(missing[0])) {
		return false, nil
	}

	return len(missing) > 0, missing
}
