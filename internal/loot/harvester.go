package loot

import (
	"context"
	"fmt"
	"time"

	"github.com/zonewatch/uprising-bot/internal/catalog"
	"github.com/zonewatch/uprising-bot/internal/domain"
	"github.com/zonewatch/uprising-bot/internal/logger"
	"github.com/zonewatch/uprising-bot/internal/metrics"
)

// ChannelScanner opens an oldest-first message stream over one channel,
// bounded to the half-open window (after, before). A zero time leaves that
// side of the window unbounded.
type ChannelScanner interface {
	Scan(ctx context.Context, channelID string, after, before time.Time) (domain.MessageSource, error)
}

// Harvester folds loot-channel histories into an ownership ledger. Only
// messages posted by the designated loot-bot author are considered.
type Harvester struct {
	scanner  ChannelScanner
	authorID string
}

// NewHarvester creates a harvester reading via scanner and trusting only
// messages authored by authorID.
func NewHarvester(scanner ChannelScanner, authorID string) *Harvester {
	return &Harvester{scanner: scanner, authorID: authorID}
}

// Harvest scans the given channels for messages strictly after the cutoff,
// parses each with parse, canonicalizes item spellings through the alias
// table, and accumulates the facts into a ledger.
func (h *Harvester) Harvest(ctx context.Context, channels []string, parse ParseFunc, after time.Time, tag domain.FactionTag) (domain.Ledger, error) {
	log := logger.FromContext(ctx)
	ledger := make(domain.Ledger)

	for _, channelID := range channels {
		src, err := h.scanner.Scan(ctx, channelID, after, time.Time{})
		if err != nil {
			return nil, fmt.Errorf("scanning loot channel %s: %w", channelID, err)
		}

		scanned := 0
		for {
			msg, err := src.Next(ctx)
			if err != nil {
				return nil, fmt.Errorf("reading loot channel %s: %w", channelID, err)
			}
			if msg == nil {
				break
			}

			scanned++
			metrics.MessagesScanned.WithLabelValues(string(tag)).Inc()
			if msg.AuthorID != h.authorID {
				continue
			}

			fact, ok := parse(msg.Content)
			if !ok {
				continue
			}

			ledger.Record(fact.PlayerID, catalog.Canonical(fact.Item))
			metrics.LootFactsParsed.WithLabelValues(string(tag)).Inc()
		}

		log.Debug("loot channel scanned", "channel", channelID, "messages", scanned)
	}

	return ledger, nil
}
