package discord

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

const (
	// historyBatchSize is the Discord API maximum per page.
	historyBatchSize = 100

	// Gentle throttling on huge channels: pause briefly at a fixed message
	// interval. Pure rate-limit hygiene, no ordering semantics.
	pacingInterval = 50
	pacingDelay    = 300 * time.Millisecond
)

// discordEpochMs is the Discord snowflake epoch (first second of 2015).
const discordEpochMs int64 = 1420070400000

// timeToSnowflake converts an instant into a synthetic snowflake usable as a
// pagination boundary.
func timeToSnowflake(t time.Time) string {
	ms := t.UnixMilli() - discordEpochMs
	if ms < 0 {
		ms = 0
	}
	return strconv.FormatInt(ms<<22, 10)
}

// HistoryScanner opens oldest-first message streams over channel history.
// It implements loot.ChannelScanner.
type HistoryScanner struct {
	session *discordgo.Session
}

// NewHistoryScanner creates a scanner reading through session.
func NewHistoryScanner(session *discordgo.Session) *HistoryScanner {
	return &HistoryScanner{session: session}
}

// Scan returns a message source yielding the channel's messages in strictly
// increasing chronological order, bounded to (after, before). Zero bounds
// are open.
func (h *HistoryScanner) Scan(ctx context.Context, channelID string, after, before time.Time) (domain.MessageSource, error) {
	cursor := "0"
	if !after.IsZero() {
		cursor = timeToSnowflake(after)
	}
	return &historySource{
		session:   h.session,
		channelID: channelID,
		before:    before,
		cursor:    cursor,
	}, nil
}

// historySource pages through channel history behind a pull interface. The
// API returns each page newest-first; pages are reversed before yielding so
// consumers see one chronological stream.
type historySource struct {
	session   *discordgo.Session
	channelID string
	before    time.Time
	cursor    string
	buffer    []*discordgo.Message
	exhausted bool
	yielded   int
}

// Next returns the next message, or (nil, nil) at end of stream.
func (src *historySource) Next(ctx context.Context) (*domain.Message, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if src.exhausted && len(src.buffer) == 0 {
			return nil, nil
		}

		if len(src.buffer) == 0 {
			if err := src.fetchPage(ctx); err != nil {
				return nil, err
			}
			continue
		}

		msg := src.buffer[0]
		src.buffer = src.buffer[1:]

		if !src.before.IsZero() && !msg.Timestamp.Before(src.before) {
			// Chronological order: everything from here on is out of window.
			src.exhausted = true
			src.buffer = nil
			return nil, nil
		}

		src.yielded++
		if src.yielded%pacingInterval == 0 {
			if err := pace(ctx); err != nil {
				return nil, err
			}
		}

		return adaptMessage(msg), nil
	}
}

func (src *historySource) fetchPage(ctx context.Context) error {
	page, err := src.session.ChannelMessages(src.channelID, historyBatchSize, "", src.cursor, "", discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("fetching channel history: %w", err)
	}
	if len(page) == 0 {
		src.exhausted = true
		return nil
	}

	// Newest-first page; the newest ID is the next pagination boundary.
	src.cursor = page[0].ID
	for i, j := 0, len(page)-1; i < j; i, j = i+1, j-1 {
		page[i], page[j] = page[j], page[i]
	}
	src.buffer = page
	return nil
}

func adaptMessage(msg *discordgo.Message) *domain.Message {
	out := &domain.Message{
		AuthorID:  "",
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}
	if msg.Author != nil {
		out.AuthorID = msg.Author.ID
	}
	for _, e := range msg.Embeds {
		out.Embeds = append(out.Embeds, domain.Embed{
			Title:       e.Title,
			Description: e.Description,
		})
	}
	return out
}

func pace(ctx context.Context) error {
	timer := time.NewTimer(pacingDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
