// Package lootcache persists accumulated ownership ledgers as on-disk
// snapshots, one live snapshot per (community, faction).
//
// Snapshots are found through an explicit index record instead of scanning
// the directory for timestamped filenames; the index maps community+faction
// to the live snapshot path and its cutoff instant, and is replaced
// atomically on every save.
package lootcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/zonewatch/uprising-bot/internal/domain"
	"github.com/zonewatch/uprising-bot/internal/logger"
	"github.com/zonewatch/uprising-bot/internal/metrics"
)

const indexFileName = "snapshot_index.json"

// cutoffSafetyMargin tolerates message search ordering skew around the
// snapshot write instant: facts cached up to T are re-scanned from T-60s.
const cutoffSafetyMargin = 60 * time.Second

// indexEntry points at the live snapshot for one community+faction.
type indexEntry struct {
	Path        string `json:"path"`
	CutoffUnix  int64  `json:"cutoff_unix"`
	WrittenUnix int64  `json:"written_unix"`
}

// Store reads and writes ledger snapshots under a single directory.
type Store struct {
	dir string
}

// NewStore creates a snapshot store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func indexKey(community string, tag domain.FactionTag) string {
	return community + ":" + string(tag)
}

func (s *Store) indexPath() string {
	return filepath.Join(s.dir, indexFileName)
}

func (s *Store) readIndex() (map[string]indexEntry, error) {
	data, err := os.ReadFile(s.indexPath())
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]indexEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading index: %v", domain.ErrSnapshotCorrupt, err)
	}

	var idx map[string]indexEntry
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("%w: decoding index: %v", domain.ErrSnapshotCorrupt, err)
	}
	return idx, nil
}

// writeIndex replaces the index atomically: write aside, then rename.
func (s *Store) writeIndex(idx map[string]indexEntry) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding index: %v", domain.ErrSnapshotWrite, err)
	}

	tmp := s.indexPath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing index: %v", domain.ErrSnapshotWrite, err)
	}
	if err := os.Rename(tmp, s.indexPath()); err != nil {
		return fmt.Errorf("%w: replacing index: %v", domain.ErrSnapshotWrite, err)
	}
	return nil
}

// LoadLatest returns the live snapshot ledger for community+faction together
// with its cutoff instant. When no snapshot exists it returns an empty ledger
// and a zero time.
func (s *Store) LoadLatest(community string, tag domain.FactionTag) (domain.Ledger, time.Time, error) {
	idx, err := s.readIndex()
	if err != nil {
		return nil, time.Time{}, err
	}

	entry, ok := idx[indexKey(community, tag)]
	if !ok {
		return make(domain.Ledger), time.Time{}, nil
	}

	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: reading %s: %v", domain.ErrSnapshotCorrupt, entry.Path, err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: decoding %s: %v", domain.ErrSnapshotCorrupt, entry.Path, err)
	}

	ledger := make(domain.Ledger, len(raw))
	for playerID, items := range raw {
		ledger[playerID] = domain.NewItemSet(items...)
	}

	return ledger, time.Unix(entry.CutoffUnix, 0).UTC(), nil
}

// Save persists ledger as the new live snapshot for community+faction and
// returns its path. The previous snapshot file is deleted only after the new
// snapshot and the updated index are durably in place; a failed deletion is
// logged and otherwise ignored (a leftover file is a minor leak, not a
// correctness risk).
func (s *Store) Save(ctx context.Context, ledger domain.Ledger, community string, tag domain.FactionTag, now time.Time) (string, error) {
	idx, err := s.readIndex()
	if err != nil {
		return "", err
	}

	key := indexKey(community, tag)
	previous, hadPrevious := idx[key]

	serializable := make(map[string][]string, len(ledger))
	for playerID, items := range ledger {
		serializable[playerID] = items.Sorted()
	}
	data, err := json.MarshalIndent(serializable, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encoding snapshot: %v", domain.ErrSnapshotWrite, err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s_%d.json", community, tag, now.Unix()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: writing %s: %v", domain.ErrSnapshotWrite, path, err)
	}

	idx[key] = indexEntry{
		Path:        path,
		CutoffUnix:  now.Add(-cutoffSafetyMargin).Unix(),
		WrittenUnix: now.Unix(),
	}
	if err := s.writeIndex(idx); err != nil {
		return "", err
	}

	metrics.SnapshotWrites.WithLabelValues(string(tag)).Inc()

	if hadPrevious && previous.Path != path {
		s.removeStale(ctx, previous.Path)
	}
	return path, nil
}

// removeStale deletes an outdated snapshot file, tolerating "already gone".
func (s *Store) removeStale(ctx context.Context, path string) {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}
	logger.FromContext(ctx).Warn("could not delete stale snapshot", "path", path, "error", err)
}
