package scoring

import (
	"context"
	"fmt"

	"github.com/zonewatch/uprising-bot/internal/catalog"
	"github.com/zonewatch/uprising-bot/internal/domain"
	"github.com/zonewatch/uprising-bot/internal/equipment"
	"github.com/zonewatch/uprising-bot/internal/logger"
	"github.com/zonewatch/uprising-bot/internal/metrics"
)

// Ledgers holds the per-faction ownership ledgers consulted read-only during
// a scan. Merged is the union used for transitioned players, who may carry
// gear looted on either side.
type Ledgers struct {
	Monolith domain.Ledger
	Stalkers domain.Ledger
	Merged   domain.Ledger
}

// NewLedgers builds the ledger triple from the two faction ledgers.
func NewLedgers(monolith, stalkers domain.Ledger) Ledgers {
	return Ledgers{
		Monolith: monolith,
		Stalkers: stalkers,
		Merged:   domain.MergeLedgers(monolith, stalkers),
	}
}

// ledgerFor picks the ledger a player of this faction is checked against.
func (l Ledgers) ledgerFor(f domain.Faction) domain.Ledger {
	if f.IsTransitioned() {
		return l.Merged
	}
	if f.IsMonolithSide() {
		return l.Monolith
	}
	return l.Stalkers
}

// Engine scores a stream of roll announcements against the loot ledgers.
type Engine struct {
	roles domain.RoleResolver
}

// NewEngine creates a scoring engine resolving player roles via roles.
func NewEngine(roles domain.RoleResolver) *Engine {
	return &Engine{roles: roles}
}

// CountRolls consumes src oldest-first and folds every roll announcement
// posted by authorID into faction totals. Malformed messages are skipped;
// unresolvable players score with an empty equipment set. The fold is
// strictly sequential: both the flower pairing tie-break and the ledger
// cutoff depend on chronological order.
func (e *Engine) CountRolls(ctx context.Context, src domain.MessageSource, authorID string, ledgers Ledgers) (*Result, error) {
	log := logger.FromContext(ctx)

	agg := newAggregator()
	tracker := NewPairTracker()
	review := &domain.Review{}
	scanned, matched := 0, 0

	for {
		msg, err := src.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading roll channel: %w", err)
		}
		if msg == nil {
			break
		}

		scanned++
		metrics.MessagesScanned.WithLabelValues("rolls").Inc()
		if msg.AuthorID != authorID {
			continue
		}
		matched++

		roll, playerID, err := ParseRoll(msg)
		if err != nil {
			// Not a roll announcement; exclude from scoring and move on.
			metrics.MalformedRolls.Inc()
			continue
		}

		labels, err := e.roles.Labels(ctx, playerID)
		if err != nil {
			// Lookup failure is not fatal: the player scores bare-handed.
			log.Debug("role lookup failed", "player", playerID, "error", err)
			labels = nil
		}

		record := e.resolve(roll, playerID, labels, ledgers, review)

		cheating, missing := equipment.CheckCheating(record.Equipped, record.PlayerID, ledgers.ledgerFor(record.Faction))
		if cheating {
			metrics.CheatersDetected.Inc()
			agg.addCheater(record.PlayerID, record.Faction, missing)
			continue
		}

		e.score(agg, tracker, record)
	}

	for _, res := range tracker.Flush() {
		settle(agg, res)
	}

	result := agg.result()
	result.FlowerPairs = tracker.Pairs()
	result.ReviewFlags = review.Flags()
	result.Scanned = scanned
	result.Matched = matched

	log.Info("roll scan complete",
		"scanned", scanned,
		"matched", matched,
		"monolith_total", result.MonolithTotal,
		"stalkers_total", result.StalkersTotal,
		"cheaters", len(result.Cheaters))
	return result, nil
}

// resolve derives the faction and the filtered equipped set for one roll.
func (e *Engine) resolve(roll int, playerID string, labels []string, ledgers Ledgers, review *domain.Review) domain.RollRecord {
	faction := equipment.ResolveFaction(labels)
	candidates := catalog.FactionEquipment(faction)

	equipped := equipment.ResolveEquipped(labels, candidates)
	equipped = equipment.FilterRedundantArmor(equipped, labels, playerID, roll, faction, ledgers.ledgerFor(faction), review)

	return domain.RollRecord{
		Roll:     roll,
		PlayerID: playerID,
		Faction:  faction,
		Equipped: equipped,
	}
}

// score settles one clean record, routing flower carriers through the
// pairing state machine.
func (e *Engine) score(agg *aggregator, tracker *PairTracker, record domain.RollRecord) {
	if record.Equipped.Has(catalog.WeirdFlower) {
		carrier := Carrier{PlayerID: record.PlayerID, Faction: record.Faction, Equipped: record.Equipped}
		resolved, held := tracker.Add(record.Roll, carrier)
		if held {
			return
		}
		for _, res := range resolved {
			settle(agg, res)
		}
		return
	}

	roll := record.Roll
	if boltOverrides(roll, record.Equipped) {
		roll = catalog.WeirdBoltLowRoll
	}
	points := roll + Bonus(record.Equipped, roll)
	agg.addScore(record.Faction, points)
	metrics.RollsScored.WithLabelValues(string(record.Faction)).Inc()
}

// settle scores one resolved flower carrier at its effective roll.
func settle(agg *aggregator, res Resolution) {
	points := res.EffectiveRoll + Bonus(res.Carrier.Equipped, res.EffectiveRoll)
	agg.addScore(res.Carrier.Faction, points)
	metrics.RollsScored.WithLabelValues(string(res.Carrier.Faction)).Inc()
}
