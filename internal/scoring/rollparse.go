// Package scoring folds a channel of roll announcements into faction totals,
// flagging players whose claimed equipment was never legitimately looted.
package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

// ParseRoll extracts the roll value and the rolling player from a roll
// announcement. The announcement carries a structured payload whose title is
// the roll number and whose description mentions the player.
//
// Returns domain.ErrMalformedRoll when the message has no payload, a
// non-numeric title, or no player mention.
func ParseRoll(msg *domain.Message) (int, string, error) {
	if len(msg.Embeds) == 0 {
		return 0, "", fmt.Errorf("%w: no embed payload", domain.ErrMalformedRoll)
	}

	embed := msg.Embeds[0]

	title := strings.TrimSpace(embed.Title)
	if title == "" {
		return 0, "", fmt.Errorf("%w: empty embed title", domain.ErrMalformedRoll)
	}
	roll, err := strconv.Atoi(title)
	if err != nil {
		return 0, "", fmt.Errorf("%w: embed title %q is not an integer", domain.ErrMalformedRoll, embed.Title)
	}

	playerID, ok := domain.FirstMentionID(embed.Description)
	if !ok {
		return 0, "", fmt.Errorf("%w: no player mention in embed description", domain.ErrMalformedRoll)
	}

	return roll, playerID, nil
}
