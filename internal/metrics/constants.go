package metrics

// Metric names
const (
	MetricNameMessagesScanned  = "scan_messages_scanned_total"
	MetricNameLootFactsParsed  = "loot_facts_parsed_total"
	MetricNameRollsScored      = "rolls_scored_total"
	MetricNameMalformedRolls   = "malformed_roll_messages_total"
	MetricNameCheatersDetected = "cheaters_detected_total"
	MetricNameSnapshotWrites   = "ledger_snapshot_writes_total"
	MetricNameScanDuration     = "scan_duration_seconds"
)

// Metric help text
const (
	HelpTextMessagesScanned  = "Total number of channel messages scanned"
	HelpTextLootFactsParsed  = "Total number of (owner, item) loot facts parsed"
	HelpTextRollsScored      = "Total number of roll messages folded into faction totals"
	HelpTextMalformedRolls   = "Total number of messages skipped as malformed roll announcements"
	HelpTextCheatersDetected = "Total number of roll records flagged as cheating"
	HelpTextSnapshotWrites   = "Total number of ledger snapshot files written"
	HelpTextScanDuration     = "Duration of a full scoring invocation in seconds"
)

// Label names
const (
	LabelChannelKind = "channel_kind"
	LabelFaction     = "faction"
)

// ScanLatencyBuckets cover seconds-to-minutes scans; history scans over large
// channels routinely take tens of seconds because of pacing pauses.
var ScanLatencyBuckets = []float64{1, 5, 15, 30, 60, 120, 300, 600}
