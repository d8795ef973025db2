package domain

// Faction is a scoring category a player belongs to, derived from role labels.
type Faction string

const (
	// FactionMonolith is the main monolith-side faction.
	FactionMonolith Faction = "Monolith"
	// FactionNoon is the transitioned monolith-side faction. Noon players may
	// legitimately carry both Noon and legacy stalker equipment at once.
	FactionNoon Faction = "Noon"
	// FactionStalkers is the default faction for anyone without a monolith role.
	FactionStalkers Faction = "STALKERS"
)

// FactionTag identifies a loot channel group and names snapshot files.
type FactionTag string

const (
	TagMonolith FactionTag = "monolith"
	TagStalkers FactionTag = "stalkers"
)

// IsMonolithSide reports whether the faction scores into the monolith total.
func (f Faction) IsMonolithSide() bool {
	return f == FactionMonolith || f == FactionNoon
}

// IsTransitioned reports whether the faction may hold both its own and the
// legacy faction's equipment simultaneously.
func (f Faction) IsTransitioned() bool {
	return f == FactionNoon
}
