package loot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

const lootBotID = "999999999999999999"

// fakeSource replays a fixed message sequence.
type fakeSource struct {
	messages []*domain.Message
	pos      int
}

func (f *fakeSource) Next(ctx context.Context) (*domain.Message, error) {
	if f.pos >= len(f.messages) {
		return nil, nil
	}
	msg := f.messages[f.pos]
	f.pos++
	return msg, nil
}

// fakeScanner serves one canned source per channel ID.
type fakeScanner struct {
	channels map[string][]*domain.Message
}

func (f *fakeScanner) Scan(ctx context.Context, channelID string, after, before time.Time) (domain.MessageSource, error) {
	return &fakeSource{messages: f.channels[channelID]}, nil
}

func stalkerMsg(author, playerID, item string) *domain.Message {
	return &domain.Message{
		AuthorID: author,
		Content:  "<@" + playerID + ">, Foray Successful\nYou Got " + item,
	}
}

func TestHarvestAccumulatesFacts(t *testing.T) {
	scanner := &fakeScanner{channels: map[string][]*domain.Message{
		"cordon": {
			stalkerMsg(lootBotID, "111111111111111111", "SVU"),
			stalkerMsg(lootBotID, "111111111111111111", "PTM"),
			stalkerMsg("someone-else", "111111111111111111", "Gauss Rifle"), // wrong author
			{AuthorID: lootBotID, Content: "not a loot message"},
		},
		"yantar": {
			stalkerMsg(lootBotID, "222222222222222222", "SEVA Suit"), // alias spelling
		},
	}}

	h := NewHarvester(scanner, lootBotID)
	ledger, err := h.Harvest(context.Background(), []string{"cordon", "yantar"}, ParseStalkerLoot, time.Time{}, domain.TagStalkers)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"PTM", "SVU"}, ledger.Owned("111111111111111111").Sorted())
	// Loot spelling canonicalized to the role spelling.
	assert.Equal(t, []string{"SEVA suit"}, ledger.Owned("222222222222222222").Sorted())
	assert.Len(t, ledger, 2)
}
