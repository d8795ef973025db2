package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

const (
	rollBotID = "900000000000000009"

	playerSVU     = "100000000000000001"
	playerGauss   = "100000000000000002"
	playerRhino   = "100000000000000003"
	playerFlowerA = "100000000000000004"
	playerFlowerB = "100000000000000005"
	playerFlowerC = "100000000000000006"
	playerBolt    = "100000000000000007"
)

type scriptedSource struct {
	messages []*domain.Message
	pos      int
}

func (s *scriptedSource) Next(ctx context.Context) (*domain.Message, error) {
	if s.pos >= len(s.messages) {
		return nil, nil
	}
	msg := s.messages[s.pos]
	s.pos++
	return msg, nil
}

type mapRoles struct {
	labels map[string][]string
	err    error
}

func (m *mapRoles) Labels(ctx context.Context, playerID string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.labels[playerID], nil
}

func rollMsg(author, playerID, title string) *domain.Message {
	return &domain.Message{
		AuthorID: author,
		Embeds: []domain.Embed{{
			Title:       title,
			Description: "<@" + playerID + "> rolls the dice",
		}},
	}
}

func TestCountRollsFullScan(t *testing.T) {
	src := &scriptedSource{messages: []*domain.Message{
		rollMsg(rollBotID, playerSVU, "90"),
		rollMsg(rollBotID, playerGauss, "97"),
		rollMsg(rollBotID, playerRhino, "60"),
		rollMsg(rollBotID, playerRhino, "61"), // same cheater again
		rollMsg(rollBotID, playerFlowerA, "50"),
		rollMsg(rollBotID, playerFlowerB, "50"), // completes the pair
		rollMsg(rollBotID, playerFlowerC, "42"), // stays unpaired
		rollMsg(rollBotID, playerBolt, "2"),
		{AuthorID: rollBotID, Content: "not a roll"},             // malformed, skipped
		rollMsg("someone-else", playerSVU, "100"),                // wrong author
		{AuthorID: rollBotID, Embeds: []domain.Embed{{Title: "x", Description: "<@" + playerSVU + ">"}}}, // non-numeric title
	}}

	roles := &mapRoles{labels: map[string][]string{
		playerSVU:     {"SVU"},
		playerGauss:   {"🗿 Monolith", "Gauss Rifle"},
		playerRhino:   {"Rhino"},
		playerFlowerA: {"Weird Flower"},
		playerFlowerB: {"Weird Flower"},
		playerFlowerC: {"Weird Flower"},
		playerBolt:    {"Weird Bolt"},
	}}

	ledgers := NewLedgers(
		domain.Ledger{playerGauss: domain.NewItemSet("Gauss Rifle")},
		domain.Ledger{
			playerSVU:     domain.NewItemSet("SVU"),
			playerFlowerA: domain.NewItemSet("Weird Flower"),
			playerFlowerB: domain.NewItemSet("Weird Flower"),
			playerFlowerC: domain.NewItemSet("Weird Flower"),
			playerBolt:    domain.NewItemSet("Weird Bolt"),
		},
	)

	engine := NewEngine(roles)
	result, err := engine.CountRolls(context.Background(), src, rollBotID, ledgers)
	require.NoError(t, err)

	// Stalkers: SVU at 90 scores 90+8, the flower pair scores 96+96, the
	// unpaired carrier flushes at 42, and the bolt holder's roll of 2 becomes
	// 100.
	assert.Equal(t, 98+96+96+42+100, result.StalkersTotal)
	// Monolith: Gauss Rifle at 97 scores 97+17.
	assert.Equal(t, 114, result.MonolithTotal)
	assert.Equal(t, 228, result.MonolithDisplayTotal())

	// One cheater despite two rolls.
	require.Len(t, result.Cheaters, 1)
	assert.Equal(t, playerRhino, result.Cheaters[0].PlayerID)
	assert.Equal(t, domain.FactionStalkers, result.Cheaters[0].Faction)
	assert.Equal(t, []string{"Rhino"}, result.MissingByCheater[playerRhino])

	require.Len(t, result.FlowerPairs, 1)
	assert.Equal(t, "(roll 50): `"+playerFlowerB+"`, `"+playerFlowerA+"`", result.FlowerPairs[0])

	assert.Equal(t, 11, result.Scanned)
	assert.Equal(t, 10, result.Matched)
	assert.Empty(t, result.ReviewFlags)
}

func TestCountRollsRoleLookupFailureScoresBareHanded(t *testing.T) {
	src := &scriptedSource{messages: []*domain.Message{
		rollMsg(rollBotID, playerSVU, "73"),
	}}
	roles := &mapRoles{err: errors.New("member fetch failed")}

	engine := NewEngine(roles)
	result, err := engine.CountRolls(context.Background(), src, rollBotID, NewLedgers(domain.Ledger{}, domain.Ledger{}))
	require.NoError(t, err)

	// No equipment resolves, so the roll counts at face value for the
	// default faction.
	assert.Equal(t, 73, result.StalkersTotal)
	assert.Empty(t, result.Cheaters)
}

func TestCountRollsSourceError(t *testing.T) {
	engine := NewEngine(&mapRoles{})

	_, err := engine.CountRolls(context.Background(), &failingSource{}, rollBotID, NewLedgers(domain.Ledger{}, domain.Ledger{}))
	assert.Error(t, err)
}

type failingSource struct{}

func (f *failingSource) Next(ctx context.Context) (*domain.Message, error) {
	return nil, errors.New("gateway timeout")
}

func TestCheckPlayerCleanVerdict(t *testing.T) {
	roles := &mapRoles{labels: map[string][]string{
		playerSVU: {"SVU", "Leather Jacket"},
	}}
	ledgers := NewLedgers(
		domain.Ledger{},
		domain.Ledger{playerSVU: domain.NewItemSet("SVU", "Leather Jacket")},
	)

	engine := NewEngine(roles)
	verdict, err := engine.CheckPlayer(context.Background(), playerSVU, ledgers)
	require.NoError(t, err)

	assert.False(t, verdict.Cheating)
	assert.Equal(t, domain.FactionStalkers, verdict.Faction)
	assert.Equal(t, []string{"Leather Jacket", "SVU"}, verdict.Equipped.Sorted())
	assert.Empty(t, verdict.Missing)
}

func TestCheckPlayerCheatingVerdict(t *testing.T) {
	roles := &mapRoles{labels: map[string][]string{
		playerRhino: {"Rhino", "SVU"},
	}}
	ledgers := NewLedgers(domain.Ledger{}, domain.Ledger{playerRhino: domain.NewItemSet("SVU")})

	engine := NewEngine(roles)
	verdict, err := engine.CheckPlayer(context.Background(), playerRhino, ledgers)
	require.NoError(t, err)

	assert.True(t, verdict.Cheating)
	assert.Equal(t, []string{"Rhino"}, verdict.Missing)
}
