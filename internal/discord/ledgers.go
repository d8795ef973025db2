package discord

import (
	"context"
	"time"

	"github.com/zonewatch/uprising-bot/internal/domain"
	"github.com/zonewatch/uprising-bot/internal/loot"
	"github.com/zonewatch/uprising-bot/internal/lootcache"
)

const (
	tagMonolith = domain.TagMonolith
	tagStalkers = domain.TagStalkers
)

// lootHarvester binds the generic loot harvester to the two faction channel
// groups and their grammars.
type lootHarvester struct {
	harvester *loot.Harvester
}

func newLootHarvester(scanner loot.ChannelScanner, lootAuthorID string) *lootHarvester {
	return &lootHarvester{harvester: loot.NewHarvester(scanner, lootAuthorID)}
}

func (lh *lootHarvester) monolith(channels []string) lootcache.HarvestFunc {
	return func(ctx context.Context, after time.Time) (domain.Ledger, error) {
		return lh.harvester.Harvest(ctx, channels, loot.ParseMonolithLoot, after, tagMonolith)
	}
}

func (lh *lootHarvester) stalkers(channels []string) lootcache.HarvestFunc {
	return func(ctx context.Context, after time.Time) (domain.Ledger, error) {
		return lh.harvester.Harvest(ctx, channels, loot.ParseStalkerLoot, after, tagStalkers)
	}
}
