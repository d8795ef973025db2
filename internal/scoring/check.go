package scoring

import (
	"context"

	"github.com/zonewatch/uprising-bot/internal/domain"
	"github.com/zonewatch/uprising-bot/internal/equipment"
)

// PlayerVerdict is the outcome of an on-demand cheat check for one player,
// based on their currently equipped roles rather than a specific roll.
type PlayerVerdict struct {
	PlayerID string
	Faction  domain.Faction
	Equipped domain.ItemSet
	Cheating bool
	Missing  []string
}

// CheckPlayer resolves the player's current roles and runs the same
// faction/equipment/filter/cheat pipeline as a scan, with no roll context.
// Review flags raised by the filter are scoped to this call and dropped.
func (e *Engine) CheckPlayer(ctx context.Context, playerID string, ledgers Ledgers) (*PlayerVerdict, error) {
	labels, err := e.roles.Labels(ctx, playerID)
	if err != nil {
		labels = nil
	}

	review := &domain.Review{}
	record := e.resolve(0, playerID, labels, ledgers, review)

	cheating, missing := equipment.CheckCheating(record.Equipped, playerID, ledgers.ledgerFor(record.Faction))
	return &PlayerVerdict{
		PlayerID: playerID,
		Faction:  record.Faction,
		Equipped: record.Equipped,
		Cheating: cheating,
		Missing:  missing,
	}, nil
}
