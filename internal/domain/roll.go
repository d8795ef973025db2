package domain

// RollRecord is one parsed and resolved dice-roll announcement.
type RollRecord struct {
	Roll     int
	PlayerID string
	Faction  Faction
	Equipped ItemSet
}

// ReviewFlag is a human-readable request for manual validation of an
// ambiguous legacy-armor case.
type ReviewFlag string

// Review accumulates manual-review flags for a single scoring invocation.
// It is scoped to the call that created it; nothing is shared across scans.
type Review struct {
	flags []ReviewFlag
}

// Append records one flag, preserving insertion order.
func (r *Review) Append(flag ReviewFlag) {
	r.flags = append(r.flags, flag)
}

// Flags returns the accumulated flags in insertion order.
func (r *Review) Flags() []ReviewFlag {
	return r.flags
}
