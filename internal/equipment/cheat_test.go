package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

func TestCheckCheatingAllOwned(t *testing.T) {
	ledger := domain.Ledger{"p1": domain.NewItemSet("SVU", "Leather Jacket")}

	cheating, missing := CheckCheating(domain.NewItemSet("SVU"), "p1", ledger)

	assert.False(t, cheating)
	assert.Empty(t, missing)
}

func TestCheckCheatingMissingItem(t *testing.T) {
	ledger := domain.Ledger{"p1": domain.NewItemSet("SVU")}

	cheating, missing := CheckCheating(domain.NewItemSet("SVU", "Gauss Rifle"), "p1", ledger)

	assert.True(t, cheating)
	assert.Equal(t, []string{"Gauss Rifle"}, missing)
}

func TestCheckCheatingUnknownPlayer(t *testing.T) {
	ledger := domain.Ledger{}

	cheating, missing := CheckCheating(domain.NewItemSet("SVU"), "ghost", ledger)

	assert.True(t, cheating)
	assert.Equal(t, []string{"SVU"}, missing)
}

func TestCheckCheatingSingleLegacyArmorExempt(t *testing.T) {
	ledger := domain.Ledger{"p1": domain.NewItemSet("SVU")}

	// Exactly one missing item that is Faction Wars 24 armor: harmless
	// ambiguity, not fraud.
	cheating, missing := CheckCheating(domain.NewItemSet("SVU", "Sunrise Suit"), "p1", ledger)
	assert.False(t, cheating)
	assert.Empty(t, missing)

	cheating, missing = CheckCheating(domain.NewItemSet("SVU", "Exoskeleton"), "p1", ledger)
	assert.False(t, cheating)
	assert.Empty(t, missing)
}

func TestCheckCheatingLegacyArmorPlusAnother(t *testing.T) {
	ledger := domain.Ledger{"p1": domain.NewItemSet("SVU")}

	// The exemption is strictly single-item: legacy armor plus any other
	// missing item reports both.
	cheating, missing := CheckCheating(domain.NewItemSet("SVU", "Sunrise Suit", "Gauss Rifle"), "p1", ledger)

	assert.True(t, cheating)
	assert.ElementsMatch(t, []string{"Sunrise Suit", "Gauss Rifle"}, missing)
}

func TestCheckCheatingEmptyEquipment(t *testing.T) {
	cheating, missing := CheckCheating(domain.ItemSet{}, "p1", domain.Ledger{})

	assert.False(t, cheating)
	assert.Empty(t, missing)
}
