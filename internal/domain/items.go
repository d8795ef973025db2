package domain

import "sort"

// ItemSet is a set of canonical item names.
type ItemSet map[string]struct{}

// NewItemSet builds a set from the given names.
func NewItemSet(names ...string) ItemSet {
	s := make(ItemSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s ItemSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s ItemSet) Add(name string) {
	s[name] = struct{}{}
}

// Remove deletes name from the set.
func (s ItemSet) Remove(name string) {
	delete(s, name)
}

// Clone returns an independent copy of the set.
func (s ItemSet) Clone() ItemSet {
	out := make(ItemSet, len(s))
	for n := range s {
		out[n] = struct{}{}
	}
	return out
}

// Union returns a new set containing the members of both sets.
func (s ItemSet) Union(other ItemSet) ItemSet {
	out := s.Clone()
	for n := range other {
		out[n] = struct{}{}
	}
	return out
}

// Intersect returns a new set containing the members present in both sets.
func (s ItemSet) Intersect(other ItemSet) ItemSet {
	out := make(ItemSet)
	for n := range s {
		if other.Has(n) {
			out[n] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in lexicographic order.
func (s ItemSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Ledger maps a player ID to the set of items they legitimately obtained
// from loot events. A ledger only ever grows; facts are never retracted.
type Ledger map[string]ItemSet

// Record adds one (owner, item) fact to the ledger.
func (l Ledger) Record(playerID, item string) {
	if set, ok := l[playerID]; ok {
		set.Add(item)
		return
	}
	l[playerID] = NewItemSet(item)
}

// Owned returns the item set for a player, or an empty set when the player
// has no recorded loot. The returned set must not be mutated by callers.
func (l Ledger) Owned(playerID string) ItemSet {
	if set, ok := l[playerID]; ok {
		return set
	}
	return ItemSet{}
}

// MergeLedgers unions the item sets of both ledgers per owner. Owners present
// in only one side are carried through unchanged. Neither input is mutated.
func MergeLedgers(a, b Ledger) Ledger {
	merged := make(Ledger, len(a)+len(b))
	for id, items := range a {
		merged[id] = items.Clone()
	}
	for id, items := range b {
		if existing, ok := merged[id]; ok {
			for n := range items {
				existing.Add(n)
			}
			continue
		}
		merged[id] = items.Clone()
	}
	return merged
}
