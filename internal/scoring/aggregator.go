package scoring

import (
	"github.com/zonewatch/uprising-bot/internal/catalog"
	"github.com/zonewatch/uprising-bot/internal/domain"
)

// Cheater identifies one flagged player and the faction they rolled under.
type Cheater struct {
	PlayerID string
	Faction  domain.Faction
}

// Result is the outcome of one full channel scan.
type Result struct {
	MonolithTotal int
	StalkersTotal int

	// Cheaters in first-seen order, no duplicates. MissingByCheater maps each
	// cheater to the deduplicated, first-seen-ordered list of items they
	// claimed but never looted.
	Cheaters         []Cheater
	MissingByCheater map[string][]string

	// FlowerPairs describes resolved Weird Flower pairs in detection order.
	FlowerPairs []string

	// ReviewFlags are the manual-review requests accumulated by the legacy
	// armor filter during this scan.
	ReviewFlags []domain.ReviewFlag

	Scanned int
	Matched int
}

// MonolithDisplayTotal is the monolith total with the event multiplier
// applied. Display only; it never feeds back into ledger or cache.
func (r *Result) MonolithDisplayTotal() int {
	return r.MonolithTotal * catalog.MonolithMultiplier
}

// aggregator folds resolved roll records into the two faction totals and
// collects cheater reports.
type aggregator struct {
	monolithTotal int
	stalkersTotal int

	cheaters    []Cheater
	missing     map[string][]string
	missingSeen map[string]domain.ItemSet
	cheaterSeen map[string]struct{}
}

func newAggregator() *aggregator {
	return &aggregator{
		missing:     make(map[string][]string),
		missingSeen: make(map[string]domain.ItemSet),
		cheaterSeen: make(map[string]struct{}),
	}
}

// addScore adds roll+bonus points to the faction group total.
func (a *aggregator) addScore(faction domain.Faction, points int) {
	if faction.IsMonolithSide() {
		a.monolithTotal += points
		return
	}
	a.stalkersTotal += points
}

// addCheater records a cheating verdict, preserving first-seen order and
// deduplicating both the player and their missing items.
func (a *aggregator) addCheater(playerID string, faction domain.Faction, missingItems []string) {
	if _, seen := a.cheaterSeen[playerID]; !seen {
		a.cheaterSeen[playerID] = struct{}{}
		a.cheaters = append(a.cheaters, Cheater{PlayerID: playerID, Faction: faction})
		a.missingSeen[playerID] = make(domain.ItemSet)
	}

	seen := a.missingSeen[playerID]
	for _, item := range missingItems {
		if !seen.Has(item) {
			seen.Add(item)
			a.missing[playerID] = append(a.missing[playerID], item)
		}
	}
}

func (a *aggregator) result() *Result {
	return &Result{
		MonolithTotal:    a.monolithTotal,
		StalkersTotal:    a.stalkersTotal,
		Cheaters:         a.cheaters,
		MissingByCheater: a.missing,
	}
}
