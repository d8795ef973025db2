package lootcache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

const community = "504587323577729024"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoadLatestEmptyStore(t *testing.T) {
	store := newTestStore(t)

	ledger, cutoff, err := store.LoadLatest(community, domain.TagStalkers)
	require.NoError(t, err)
	assert.Empty(t, ledger)
	assert.True(t, cutoff.IsZero())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ledger := domain.Ledger{
		"p1": domain.NewItemSet("SVU", "PTM"),
		"p2": domain.NewItemSet("Gauss Rifle"),
	}

	now := time.Now().UTC().Truncate(time.Second)
	path, err := store.Save(ctx, ledger, community, domain.TagStalkers, now)
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, cutoff, err := store.LoadLatest(community, domain.TagStalkers)
	require.NoError(t, err)
	assert.Equal(t, []string{"PTM", "SVU"}, loaded.Owned("p1").Sorted())
	assert.Equal(t, []string{"Gauss Rifle"}, loaded.Owned("p2").Sorted())

	// Cutoff carries the 60s safety margin.
	assert.Equal(t, now.Add(-60*time.Second), cutoff)
}

func TestSaveDeletesPreviousSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ledger := domain.Ledger{"p1": domain.NewItemSet("SVU")}
	first, err := store.Save(ctx, ledger, community, domain.TagStalkers, time.Unix(1700000000, 0))
	require.NoError(t, err)

	second, err := store.Save(ctx, ledger, community, domain.TagStalkers, time.Unix(1700000100, 0))
	require.NoError(t, err)

	assert.NoFileExists(t, first)
	assert.FileExists(t, second)
}

func TestSaveKeepsFactionsSeparate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, domain.Ledger{"p1": domain.NewItemSet("SVU")}, community, domain.TagStalkers, time.Unix(1700000000, 0))
	require.NoError(t, err)
	_, err = store.Save(ctx, domain.Ledger{"p2": domain.NewItemSet("Gauss Rifle")}, community, domain.TagMonolith, time.Unix(1700000001, 0))
	require.NoError(t, err)

	stalkers, _, err := store.LoadLatest(community, domain.TagStalkers)
	require.NoError(t, err)
	monolith, _, err := store.LoadLatest(community, domain.TagMonolith)
	require.NoError(t, err)

	assert.Contains(t, stalkers, "p1")
	assert.NotContains(t, stalkers, "p2")
	assert.Contains(t, monolith, "p2")
}

func TestLoadLatestCorruptSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	path, err := store.Save(ctx, domain.Ledger{"p1": domain.NewItemSet("SVU")}, community, domain.TagStalkers, time.Unix(1700000000, 0))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, err = store.LoadLatest(community, domain.TagStalkers)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSnapshotCorrupt)
}

func TestLoadLatestMissingSnapshotFile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	path, err := store.Save(ctx, domain.Ledger{"p1": domain.NewItemSet("SVU")}, community, domain.TagStalkers, time.Unix(1700000000, 0))
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	_, _, err = store.LoadLatest(community, domain.TagStalkers)
	assert.ErrorIs(t, err, domain.ErrSnapshotCorrupt)
}

func TestBuildLedgerNoPriorSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var gotCutoff time.Time
	harvest := func(ctx context.Context, after time.Time) (domain.Ledger, error) {
		gotCutoff = after
		return domain.Ledger{"p1": domain.NewItemSet("SVU")}, nil
	}

	ledger, err := store.BuildLedger(ctx, community, domain.TagStalkers, harvest)
	require.NoError(t, err)

	assert.True(t, gotCutoff.IsZero(), "full history harvest expected without a snapshot")
	assert.Equal(t, []string{"SVU"}, ledger.Owned("p1").Sorted())

	// The result was persisted as the new live snapshot.
	persisted, _, err := store.LoadLatest(community, domain.TagStalkers)
	require.NoError(t, err)
	assert.Equal(t, []string{"SVU"}, persisted.Owned("p1").Sorted())
}

func TestBuildLedgerMergesCachedAndFresh(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	writeTime := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	_, err := store.Save(ctx, domain.Ledger{"p1": domain.NewItemSet("SVU")}, community, domain.TagStalkers, writeTime)
	require.NoError(t, err)

	harvest := func(ctx context.Context, after time.Time) (domain.Ledger, error) {
		assert.Equal(t, writeTime.Add(-60*time.Second), after)
		return domain.Ledger{
			"p1": domain.NewItemSet("PTM"),
			"p2": domain.NewItemSet("Kora"),
		}, nil
	}

	ledger, err := store.BuildLedger(ctx, community, domain.TagStalkers, harvest)
	require.NoError(t, err)

	assert.Equal(t, []string{"PTM", "SVU"}, ledger.Owned("p1").Sorted())
	assert.Equal(t, []string{"Kora"}, ledger.Owned("p2").Sorted())

	// Exactly one live snapshot plus the index remain on disk.
	entries, err := os.ReadDir(storeDir(store))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func storeDir(s *Store) string {
	return filepath.Dir(s.indexPath())
}
