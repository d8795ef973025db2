package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zonewatch/uprising-bot/internal/catalog"
	"github.com/zonewatch/uprising-bot/internal/domain"
)

func TestResolveFaction(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   domain.Faction
	}{
		{"plain monolith role", []string{"Monolith"}, domain.FactionMonolith},
		{"decorated monolith role", []string{"🗿 Monolith"}, domain.FactionMonolith},
		{"noon role", []string{"SVU", "☀️ Noon"}, domain.FactionNoon},
		{"no faction role defaults to stalkers", []string{"SVU", "Leather Jacket"}, domain.FactionStalkers},
		{"empty labels", nil, domain.FactionStalkers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveFaction(tt.labels))
		})
	}
}

func TestResolveEquipped(t *testing.T) {
	labels := []string{"🔫 SVU", "  Leather Jacket ", "Unrelated Role", "SVU"}

	equipped := ResolveEquipped(labels, catalog.StalkerEquipment)

	// Duplicate labels collapse; unrelated roles are ignored.
	assert.Equal(t, []string{"Leather Jacket", "SVU"}, equipped.Sorted())
}

func TestResolveEquippedSuffixContract(t *testing.T) {
	// A capability is present iff the trimmed label ends with the literal.
	assert.True(t, LabelMatches("🔫 Gauss Rifle", "Gauss Rifle"))
	assert.True(t, LabelMatches("Gauss Rifle", "Gauss Rifle"))
	assert.False(t, LabelMatches("Gauss Rifle Owner", "Gauss Rifle"))
}
