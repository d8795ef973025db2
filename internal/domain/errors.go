package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Parse errors (skip-local, never fatal to a scan)
	ErrMsgMalformedRoll = "malformed roll message"
	ErrMsgMalformedLoot = "malformed loot message"

	// Snapshot errors (surfaced to the caller)
	ErrMsgSnapshotCorrupt = "loot snapshot unreadable"
	ErrMsgSnapshotWrite   = "loot snapshot write failed"

	// Input errors
	ErrMsgBadTimeRange = "end must be after start"
	ErrMsgBadDatetime  = "bad datetime"
)

// Common domain errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details)
// for additional context.
var (
	// ErrMalformedRoll means a message carried no parseable roll payload.
	// The message is excluded from scoring; the scan continues.
	ErrMalformedRoll = errors.New(ErrMsgMalformedRoll)

	// ErrMalformedLoot means a loot message matched neither grammar.
	ErrMalformedLoot = errors.New(ErrMsgMalformedLoot)

	// ErrSnapshotCorrupt means a cached ledger snapshot could not be read or
	// decoded. Propagated: silently dropping ownership history risks false
	// cheat accusations.
	ErrSnapshotCorrupt = errors.New(ErrMsgSnapshotCorrupt)

	// ErrSnapshotWrite means the new snapshot could not be persisted. The
	// previous snapshot must survive.
	ErrSnapshotWrite = errors.New(ErrMsgSnapshotWrite)

	// ErrBadTimeRange means the requested scan window is empty or inverted.
	ErrBadTimeRange = errors.New(ErrMsgBadTimeRange)

	// ErrBadDatetime means a user-supplied datetime string did not parse.
	ErrBadDatetime = errors.New(ErrMsgBadDatetime)
)
