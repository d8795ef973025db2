// Package catalog holds the immutable equipment data for the uprising event:
// faction item sets, bonus tables keyed by roll predicates, and the alias
// table that maps loot-message spellings to role spellings.
package catalog

import "github.com/zonewatch/uprising-bot/internal/domain"

// Scoring constants.
const (
	// MonolithMultiplier is applied to the monolith total for display only;
	// it never feeds back into the ledger or cache.
	MonolithMultiplier = 2

	// WeirdFlowerPairRoll is the effective roll for both carriers of a
	// resolved Weird Flower pair.
	WeirdFlowerPairRoll = 96

	// WeirdBoltLowRoll replaces a carrier's roll of 1 or 2 when they also
	// hold the Weird Bolt.
	WeirdBoltLowRoll = 100
)

// Special artifact names.
const (
	WeirdFlower = "Weird Flower"
	WeirdBolt   = "Weird Bolt"
)

// Faction item sets.
var (
	MonolithWeapons = domain.NewItemSet(
		"UDP", "Fora230", "M860Monolith", "G37", "M701", "SPSA", "GP3a", "RPG", "Gauss Rifle",
	)
	MonolithArmor = domain.NewItemSet(
		"Monolith Battle Armor", "Exoskeleton", "Improved Exoskeleton",
	)
	StalkerWeapons = domain.NewItemSet(
		"PTM", "TOZ-34", "Kora", "AKM-74U", "Fora", "M860", "Rhino", "Dnipro", "SVU",
	)
	StalkerArmor = domain.NewItemSet(
		"OZK Explorer suit", "PSZ-20W Convoy", "Marauder Suit", "Leather Jacket",
		"Sunrise Suit", "PSZ-5V Guardian of Freedom", "SEVA suit", "PSZ-7 Military Armor",
		"Berill-5M Armored Suit",
	)
	Attachments = domain.NewItemSet("Silencer", "Tactical Scope")
	Artifacts   = domain.NewItemSet("Jellyfish", WeirdBolt, WeirdFlower)
)

// Derived combined sets.
var (
	MonolithEquipment = MonolithWeapons.Union(MonolithArmor).Union(Attachments).Union(Artifacts)
	StalkerEquipment  = StalkerWeapons.Union(StalkerArmor).Union(Attachments).Union(Artifacts)
	AllWeapons        = MonolithWeapons.Union(StalkerWeapons)
	AllArmor          = MonolithArmor.Union(StalkerArmor)
)

// FlatBonuses apply on every roll regardless of value.
var FlatBonuses = map[string]int{
	"UDP":                        3,
	"Fora230":                    3,
	"M860Monolith":               3,
	"G37":                        4,
	"M701":                       4,
	"SPSA":                       6,
	"GP3a":                       6,
	"RPG":                        6,
	"Gauss Rifle":                7,
	"Monolith Battle Armor":      2,
	"Exoskeleton":                4,
	"Improved Exoskeleton":       5,
	"PTM":                        2,
	"Kora":                       2,
	"AKM-74U":                    3,
	"Fora":                       5,
	"M860":                       6,
	"Rhino":                      6,
	"Dnipro":                     4,
	"Leather Jacket":             2,
	"Sunrise Suit":               2,
	"PSZ-5V Guardian of Freedom": 2,
	"SEVA suit":                  3,
	"PSZ-7 Military Armor":       2,
	"Berill-5M Armored Suit":     4,
	"Silencer":                   2,
	"Jellyfish":                  3,
}

// OddRollBonuses apply when the roll is odd.
var OddRollBonuses = map[string]int{
	"TOZ-34":               4,
	"PSZ-7 Military Armor": 3,
	"Tactical Scope":       3,
}

// EvenRollBonuses apply when the roll is even.
var EvenRollBonuses = map[string]int{
	"M860Monolith":  3,
	"Dnipro":        5,
	"Marauder Suit": 3,
}

// Threshold bonuses stack: a roll of 93 collects the 70, 75, 80, 85 and 90
// tables for every item that appears in them.
var (
	AtLeast70Bonuses = map[string]int{
		"PSZ-20W Convoy": 5,
		"SVU":            5,
	}
	AtLeast75Bonuses = map[string]int{
		"Exoskeleton": 4,
	}
	AtLeast80Bonuses = map[string]int{
		"G37":                    3,
		"GP3a":                   6,
		"Improved Exoskeleton":   6,
		"Monolith Battle Armor":  3,
		"AKM-74U":                1,
		"Berill-5M Armored Suit": 4,
	}
	AtLeast85Bonuses = map[string]int{
		"RPG":  7,
		"M701": 6,
	}
	AtLeast90Bonuses = map[string]int{
		"Gauss Rifle":                10,
		"Fora":                       2,
		"PSZ-5V Guardian of Freedom": 5,
		"SVU":                        3,
	}
)

// Last-digit bonuses.
var (
	EndsIn0Bonuses = map[string]int{
		"Fora230": 5,
		"Kora":    4,
	}
	EndsIn5Bonuses = map[string]int{
		"PTM":          2,
		"Sunrise Suit": 3,
	}
	EndsIn7Bonuses = map[string]int{
		"UDP": 3,
	}
	EndsIn9Bonuses = map[string]int{
		"SPSA":      4,
		"Rhino":     4,
		"SEVA suit": 2,
	}
)

// Contains9Bonuses apply when the decimal representation of the roll contains
// a 9 anywhere. A trailing 9 collects this once, not twice, even though both
// the last-digit rule and the contains rule fire.
var Contains9Bonuses = map[string]int{
	"OZK Explorer suit": 4,
}

// Unlucky100Penalties are subtracted when the roll is exactly 100.
var Unlucky100Penalties = map[string]int{
	"Berill-5M Armored Suit": 4,
	"PSZ-20W Convoy":         5,
}

// LootAliases maps item spellings used by the loot-channel bot to the
// canonical role spellings. Every alias target is a member of some faction
// item set.
var LootAliases = map[string]string{
	"Improved  Exoskeleton": "Improved Exoskeleton",
	"PSZ-7 Millitary":       "PSZ-7 Military Armor",
	"Berill-5M Armored":     "Berill-5M Armored Suit",
	"OZK Explorer Suit":     "OZK Explorer suit",
	"SEVA Suit":             "SEVA suit",
	"M860 Monolith":         "M860Monolith",
}

// Canonical resolves a loot-message item spelling to its role spelling.
func Canonical(item string) string {
	if canon, ok := LootAliases[item]; ok {
		return canon
	}
	return item
}

// Roles and armor sets left over from the 2024 Faction Wars event. They
// collide with this year's role names and need disambiguation.
var (
	FactionWars24StalkerArmor  = domain.NewItemSet("Sunrise Suit", "Leather Jacket")
	FactionWars24MonolithArmor = domain.NewItemSet("Exoskeleton")
	FactionWars24Roles         = domain.NewItemSet(
		"FactionWars24", "Your Inventory", "AKM", "Sawn-off", "VS Vintar",
	)
)

// FactionEquipment returns the candidate equipment set for a faction. A
// transitioned faction may equip its own and the legacy faction's catalog.
func FactionEquipment(f domain.Faction) domain.ItemSet {
	if f.IsMonolithSide() {
		if f.IsTransitioned() {
			return MonolithEquipment.Union(StalkerEquipment)
		}
		return MonolithEquipment.Clone()
	}
	return StalkerEquipment.Clone()
}
