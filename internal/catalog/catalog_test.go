package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

func TestAliasTargetsAreCatalogItems(t *testing.T) {
	all := MonolithEquipment.Union(StalkerEquipment)
	for alias, canon := range LootAliases {
		assert.True(t, all.Has(canon), "alias %q resolves to unknown item %q", alias, canon)
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "SEVA suit", Canonical("SEVA Suit"))
	assert.Equal(t, "M860Monolith", Canonical("M860 Monolith"))
	// Unknown spellings pass through untouched.
	assert.Equal(t, "SVU", Canonical("SVU"))
}

func TestBonusTableKeysAreCatalogItems(t *testing.T) {
	all := MonolithEquipment.Union(StalkerEquipment)

	tables := map[string]map[string]int{
		"flat":       FlatBonuses,
		"odd":        OddRollBonuses,
		"even":       EvenRollBonuses,
		"atLeast70":  AtLeast70Bonuses,
		"atLeast75":  AtLeast75Bonuses,
		"atLeast80":  AtLeast80Bonuses,
		"atLeast85":  AtLeast85Bonuses,
		"atLeast90":  AtLeast90Bonuses,
		"endsIn0":    EndsIn0Bonuses,
		"endsIn5":    EndsIn5Bonuses,
		"endsIn7":    EndsIn7Bonuses,
		"endsIn9":    EndsIn9Bonuses,
		"contains9":  Contains9Bonuses,
		"unlucky100": Unlucky100Penalties,
	}

	for name, table := range tables {
		for item := range table {
			assert.True(t, all.Has(item), "table %s references unknown item %q", name, item)
		}
	}
}

func TestFactionEquipment(t *testing.T) {
	assert.True(t, FactionEquipment(domain.FactionMonolith).Has("Gauss Rifle"))
	assert.False(t, FactionEquipment(domain.FactionMonolith).Has("SVU"))

	assert.True(t, FactionEquipment(domain.FactionStalkers).Has("SVU"))
	assert.False(t, FactionEquipment(domain.FactionStalkers).Has("Gauss Rifle"))

	// Transitioned factions may equip both catalogs.
	noon := FactionEquipment(domain.FactionNoon)
	assert.True(t, noon.Has("SVU"))
	assert.True(t, noon.Has("Gauss Rifle"))
}

func TestFactionEquipmentReturnsCopies(t *testing.T) {
	got := FactionEquipment(domain.FactionStalkers)
	got.Add("Not A Real Item")

	assert.False(t, StalkerEquipment.Has("Not A Real Item"))
}

func TestLegacyArmorSetsAreCurrentCatalogItems(t *testing.T) {
	for item := range FactionWars24StalkerArmor {
		assert.True(t, StalkerArmor.Has(item), "legacy stalker armor %q missing from catalog", item)
	}
	for item := range FactionWars24MonolithArmor {
		assert.True(t, MonolithArmor.Has(item), "legacy monolith armor %q missing from catalog", item)
	}
}
