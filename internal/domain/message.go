package domain

import (
	"context"
	"regexp"
	"time"
)

// mentionRE matches <@123> and <@!123> (nick mention form).
var mentionRE = regexp.MustCompile(`<@!?(\d{15,25})>`)

// FirstMentionID extracts the player ID from the first mention in text.
func FirstMentionID(text string) (string, bool) {
	m := mentionRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FirstMentionSpan returns the byte range of the first mention in text, or
// ok=false when the text carries no mention.
func FirstMentionSpan(text string) (start, end int, ok bool) {
	loc := mentionRE.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Embed is the structured payload of a roll announcement: a numeric title and
// a descriptive body containing one player mention.
type Embed struct {
	Title       string
	Description string
}

// Message is one chat message as seen by the scoring engine. The engine never
// talks to the chat platform directly; glue code adapts platform messages
// into this shape.
type Message struct {
	AuthorID  string
	Content   string
	Embeds    []Embed
	Timestamp time.Time
}

// MessageSource yields messages in strictly increasing chronological order.
// Next returns (nil, nil) when the stream is exhausted. The engine depends on
// oldest-first ordering: both the weird-flower pairing tie-break and the
// cache cutoff merge break under reordering.
type MessageSource interface {
	Next(ctx context.Context) (*Message, error)
}

// RoleResolver looks up a player's current role labels. A player that cannot
// be resolved yields an empty slice and no error; downstream that simply
// means an empty equipment set.
type RoleResolver interface {
	Labels(ctx context.Context, playerID string) ([]string, error)
}
