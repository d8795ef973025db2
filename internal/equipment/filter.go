package equipment

import (
	"fmt"
	"strings"

	"github.com/zonewatch/uprising-bot/internal/catalog"
	"github.com/zonewatch/uprising-bot/internal/domain"
)

// FilterRedundantArmor removes equipment labels dragged in from the 2024
// Faction Wars cycle and collapses duplicate weapon/armor slots for
// transitioned factions. Ambiguous legacy-armor cases that the cheat check
// cannot condemn are appended to review for manual validation instead of
// being silently trusted.
//
// The equipped set is mutated in place and returned.
func FilterRedundantArmor(equipped domain.ItemSet, labels []string, playerID string, roll int, faction domain.Faction, ledger domain.Ledger, review *domain.Review) domain.ItemSet {
	priorCycleRoles := make(domain.ItemSet)
	for _, label := range labels {
		for role := range catalog.FactionWars24Roles {
			if LabelMatches(label, role) {
				priorCycleRoles.Add(role)
			}
		}
	}

	equippedArmor := equipped.Intersect(catalog.AllArmor)

	switch {
	case faction.IsTransitioned():
		// A transitioned player keeps both catalogs selectable; holding more
		// than one weapon or armor slot means the legacy one was never
		// deselected.
		equippedWeapons := equipped.Intersect(catalog.AllWeapons)
		if len(equippedWeapons) > 1 {
			for item := range equippedWeapons {
				if catalog.StalkerWeapons.Has(item) {
					equipped.Remove(item)
				}
			}
		}
		if len(equippedArmor) > 1 {
			for item := range equippedArmor {
				if catalog.StalkerArmor.Has(item) {
					equipped.Remove(item)
				}
			}
			equippedArmor = equipped.Intersect(catalog.AllArmor)
		}
		if len(equippedArmor) > 0 && len(priorCycleRoles) > 0 &&
			(len(equippedArmor.Intersect(catalog.FactionWars24StalkerArmor)) > 0 ||
				len(equippedArmor.Intersect(catalog.FactionWars24MonolithArmor)) > 0) {
			flagForReview(equipped, equippedArmor, playerID, roll, faction, ledger, review)
		}

	case faction.IsMonolithSide():
		if len(equippedArmor) > 0 {
			// Stalker legacy armor can never be legitimate monolith gear.
			for item := range equippedArmor {
				if catalog.FactionWars24StalkerArmor.Has(item) {
					equipped.Remove(item)
				}
			}
			if len(priorCycleRoles) > 0 && len(equippedArmor.Intersect(catalog.FactionWars24MonolithArmor)) > 0 {
				flagForReview(equipped, equippedArmor, playerID, roll, faction, ledger, review)
			}
		}

	default:
		if len(equippedArmor) > 0 {
			for item := range equippedArmor {
				if catalog.FactionWars24MonolithArmor.Has(item) {
					equipped.Remove(item)
				}
			}
			if len(priorCycleRoles) > 0 && len(equippedArmor.Intersect(catalog.FactionWars24StalkerArmor)) > 0 {
				flagForReview(equipped, equippedArmor, playerID, roll, faction, ledger, review)
			}
		}
	}

	return equipped
}

// flagForReview asks the cheat detector about the ambiguous gear; only a
// clean verdict produces a manual-review flag. A cheating verdict is handled
// by the regular cheat path downstream, so no flag is emitted here.
func flagForReview(equipped, equippedArmor domain.ItemSet, playerID string, roll int, faction domain.Faction, ledger domain.Ledger, review *domain.Review) {
	cheating, _ := CheckCheating(equipped, playerID, ledger)
	if cheating {
		return
	}
	review.Append(domain.ReviewFlag(fmt.Sprintf(
		"Please, validate `%s`(%s) for following gear: %s. Affected roll: %d",
		playerID, faction, strings.Join(equippedArmor.Sorted(), ", "), roll,
	)))
}
