package lootcache

import (
	"context"
	"time"

	"github.com/zonewatch/uprising-bot/internal/domain"
	"github.com/zonewatch/uprising-bot/internal/logger"
)

// HarvestFunc collects fresh ownership facts posted strictly after the given
// cutoff. A zero cutoff means the full channel history.
type HarvestFunc func(ctx context.Context, after time.Time) (domain.Ledger, error)

// BuildLedger produces the current ownership ledger for community+faction:
// it loads the newest snapshot, harvests only the messages newer than its
// cutoff, merges both sides, persists the result as the new live snapshot
// and returns it. The snapshot is written only after a fully successful
// harvest, so an abandoned scan never persists a partial ledger.
func (s *Store) BuildLedger(ctx context.Context, community string, tag domain.FactionTag, harvest HarvestFunc) (domain.Ledger, error) {
	log := logger.FromContext(ctx)

	cached, cutoff, err := s.LoadLatest(community, tag)
	if err != nil {
		return nil, err
	}

	fresh, err := harvest(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	merged := domain.MergeLedgers(cached, fresh)

	path, err := s.Save(ctx, merged, community, tag, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	log.Info("ledger snapshot updated",
		"community", community,
		"faction", tag,
		"owners", len(merged),
		"path", path)
	return merged, nil
}
