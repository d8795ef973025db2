package scoring

import (
	"fmt"

	"github.com/zonewatch/uprising-bot/internal/catalog"
	"github.com/zonewatch/uprising-bot/internal/domain"
)

// Carrier is a non-cheating roll record whose equipment includes the Weird
// Flower, waiting in a slot for a partner with the same roll value.
type Carrier struct {
	PlayerID string
	Faction  domain.Faction
	Equipped domain.ItemSet
}

// Resolution is a carrier released from the state machine together with the
// roll value it must be scored at.
type Resolution struct {
	Carrier       Carrier
	EffectiveRoll int
}

// PairTracker is the Weird Flower pairing state machine. Each roll value
// keys one slot that is either empty or holds exactly one unpaired carrier;
// a second arrival at the same value consumes the slot and releases both
// carriers for scoring.
type PairTracker struct {
	slots map[int]Carrier
	pairs []string
}

// NewPairTracker creates a tracker with every slot empty.
func NewPairTracker() *PairTracker {
	return &PairTracker{slots: make(map[int]Carrier)}
}

// Add feeds one carrier into the slot for roll. When the slot is empty the
// carrier is held (held=true, no resolutions) and its scoring is suspended
// until a partner arrives or the scan ends. When the slot is occupied both
// carriers resolve: the pairing roll is fixed at 96, except that on an
// original roll of 1 or 2 a carrier holding the Weird Bolt individually
// overrides its own roll to 100 - each of the two carriers independently.
func (t *PairTracker) Add(roll int, c Carrier) (resolved []Resolution, held bool) {
	partner, occupied := t.slots[roll]
	if !occupied {
		t.slots[roll] = c
		return nil, true
	}

	delete(t.slots, roll)
	t.pairs = append(t.pairs, fmt.Sprintf("(roll %d): `%s`, `%s`", roll, c.PlayerID, partner.PlayerID))

	return []Resolution{
		{Carrier: c, EffectiveRoll: pairEffectiveRoll(roll, c)},
		{Carrier: partner, EffectiveRoll: pairEffectiveRoll(roll, partner)},
	}, false
}

// Flush releases every carrier still waiting in an occupied slot. Unpaired
// carriers score at their original roll; the bolt override for rolls of 1
// and 2 still applies, but no pair is recorded.
func (t *PairTracker) Flush() []Resolution {
	var out []Resolution
	for roll, c := range t.slots {
		out = append(out, Resolution{Carrier: c, EffectiveRoll: flushEffectiveRoll(roll, c)})
	}
	t.slots = make(map[int]Carrier)
	return out
}

// Pairs returns descriptions of the resolved pairs in detection order.
func (t *PairTracker) Pairs() []string {
	return t.pairs
}

func pairEffectiveRoll(originalRoll int, c Carrier) int {
	if boltOverrides(originalRoll, c.Equipped) {
		return catalog.WeirdBoltLowRoll
	}
	return catalog.WeirdFlowerPairRoll
}

func flushEffectiveRoll(originalRoll int, c Carrier) int {
	if boltOverrides(originalRoll, c.Equipped) {
		return catalog.WeirdBoltLowRoll
	}
	return originalRoll
}

// boltOverrides reports whether the Weird Bolt turns this roll into 100.
func boltOverrides(roll int, equipped domain.ItemSet) bool {
	return (roll == 1 || roll == 2) && equipped.Has(catalog.WeirdBolt)
}
