// Package metrics defines Prometheus instrumentation for the scan engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan metrics
var (
	MessagesScanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMessagesScanned,
			Help: HelpTextMessagesScanned,
		},
		[]string{LabelChannelKind},
	)

	LootFactsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootFactsParsed,
			Help: HelpTextLootFactsParsed,
		},
		[]string{LabelFaction},
	)

	RollsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsScored,
			Help: HelpTextRollsScored,
		},
		[]string{LabelFaction},
	)

	MalformedRolls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMalformedRolls,
			Help: HelpTextMalformedRolls,
		},
	)

	CheatersDetected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCheatersDetected,
			Help: HelpTextCheatersDetected,
		},
	)

	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotWrites,
			Help: HelpTextSnapshotWrites,
		},
		[]string{LabelFaction},
	)

	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameScanDuration,
			Help:    HelpTextScanDuration,
			Buckets: ScanLatencyBuckets,
		},
	)
)
