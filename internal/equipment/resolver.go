// Package equipment derives a player's faction and equipped items from their
// role labels, disambiguates leftovers from the previous event cycle, and
// checks claimed equipment against the loot ledger.
//
// Matching contract: server roles carry decorative emoji prefixes, so a
// capability is present iff the trimmed label ends with the canonical
// literal. Only the suffix is guaranteed stable.
package equipment

import (
	"strings"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

// monolithFactions lists the faction literals that score into the monolith
// total, in match-priority order.
var monolithFactions = []domain.Faction{domain.FactionMonolith, domain.FactionNoon}

// LabelMatches reports whether a decorated role label denotes the literal.
func LabelMatches(label, literal string) bool {
	return strings.HasSuffix(strings.TrimSpace(label), literal)
}

// ResolveFaction derives the player's faction from their role labels. The
// first label matching a monolith-side faction wins; without any match the
// player scores as a stalker.
func ResolveFaction(labels []string) domain.Faction {
	for _, label := range labels {
		for _, f := range monolithFactions {
			if LabelMatches(label, string(f)) {
				return f
			}
		}
	}
	return domain.FactionStalkers
}

// ResolveEquipped returns the subset of candidates the player's labels mark
// as equipped. Multiple labels matching the same item collapse into one set
// member.
func ResolveEquipped(labels []string, candidates domain.ItemSet) domain.ItemSet {
	equipped := make(domain.ItemSet)
	for _, label := range labels {
		for item := range candidates {
			if LabelMatches(label, item) {
				equipped.Add(item)
			}
		}
	}
	return equipped
}
