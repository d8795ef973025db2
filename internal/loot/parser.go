// Package loot parses ownership facts out of loot-channel messages and folds
// them into a ledger.
package loot

import (
	"regexp"
	"strings"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

// youGotRE extracts the item name following "you got", anchored to end of text.
var youGotRE = regexp.MustCompile(`(?i)\byou got\s+(.+?)\s*$`)

const (
	stalkerSuccessMarker = "foray successful"
	stalkerFailureMarker = "foray failed"
	stalkerItemPrefix    = "you got "
	monolithCallMarker   = ", COME TO ME!"
)

// Fact is one (owner, raw item) ownership fact parsed from a loot message.
// The item spelling is raw; callers canonicalize it through the alias table
// before recording it.
type Fact struct {
	PlayerID string
	Item     string
}

// ParseFunc turns one raw message body into an optional ownership fact.
type ParseFunc func(content string) (Fact, bool)

// nonBlankLines splits content into trimmed non-blank lines.
func nonBlankLines(content string) []string {
	var lines []string
	for _, ln := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(ln); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// ParseStalkerLoot parses the stalker loot-channel format:
//
//	<@userid>, Foray Successful
//	<flavor>
//	You Got <item name>
//
// Failed forays and anything not unambiguously successful yield no fact. The
// "You Got" line is searched for anywhere below the first line rather than at
// a fixed index.
func ParseStalkerLoot(content string) (Fact, bool) {
	lines := nonBlankLines(content)
	if len(lines) == 0 {
		return Fact{}, false
	}

	first := lines[0]
	playerID, ok := domain.FirstMentionID(first)
	if !ok {
		return Fact{}, false
	}

	firstLower := strings.ToLower(first)
	if strings.Contains(firstLower, stalkerFailureMarker) {
		return Fact{}, false
	}
	if !strings.Contains(firstLower, stalkerSuccessMarker) {
		return Fact{}, false
	}

	for _, ln := range lines[1:] {
		if strings.HasPrefix(strings.ToLower(ln), stalkerItemPrefix) {
			item := strings.TrimSpace(ln[len(stalkerItemPrefix):])
			if item == "" {
				return Fact{}, false
			}
			return Fact{PlayerID: playerID, Item: item}, true
		}
	}

	return Fact{}, false
}

// ParseMonolithLoot parses the monolith loot-channel format:
//
//	<@userid>, COME TO ME!
//
//	You hear the voice of Monolith! You got <item name>
//
// The first line must equal "<@userid>, COME TO ME!" exactly once the mention
// is removed; any deviation rejects the message. The item is whatever follows
// "you got" (case-insensitive) at the end of the body.
func ParseMonolithLoot(content string) (Fact, bool) {
	lines := nonBlankLines(content)
	if len(lines) == 0 {
		return Fact{}, false
	}

	first := lines[0]
	playerID, ok := domain.FirstMentionID(first)
	if !ok {
		return Fact{}, false
	}

	// Remove only the first mention; a second mention on the line is a
	// deviation from the literal pattern and must reject.
	start, end, _ := domain.FirstMentionSpan(first)
	remainder := strings.TrimSpace(first[:start] + first[end:])
	if remainder != monolithCallMarker {
		return Fact{}, false
	}

	m := youGotRE.FindStringSubmatch(strings.Join(lines, "\n"))
	if m == nil {
		return Fact{}, false
	}

	item := strings.TrimSpace(m[1])
	if item == "" {
		return Fact{}, false
	}
	return Fact{PlayerID: playerID, Item: item}, true
}
