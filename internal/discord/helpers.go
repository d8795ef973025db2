package discord

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zonewatch/uprising-bot/internal/domain"
)

// datetimeLayout is the format commands accept, e.g. "2026-01-02 13:45".
const datetimeLayout = "2006-01-02 15:04"

// DatetimeFormatHint documents the accepted datetime format in option help.
const DatetimeFormatHint = "YYYY-MM-DD HH:MM (e.g., 2026-01-02 13:45)"

var titleCaser = cases.Title(language.English)

// deferResponse sends a deferred ephemeral response so slow history scans
// don't hit the interaction timeout. Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// respondEphemeral answers immediately with an ephemeral message, for
// rejections before any deferral happened.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to send interaction response", "error", err)
	}
}

// editResponse replaces the content of a deferred response. Used both for
// staged progress updates and the final reply.
func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondError reports a failure on an already-deferred interaction.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	editResponse(s, i, "❌ "+message)
}

// getOptions extracts command options from an interaction.
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// optionMap keys options by name so optional ones can be looked up safely.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := getOptions(i)
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// hasScanPermission gates the scan commands to moderators: Manage Messages,
// Administrator, or the configured bot owner.
func hasScanPermission(i *discordgo.InteractionCreate, ownerUserID string) bool {
	if i.Member == nil {
		return false
	}
	if ownerUserID != "" && i.Member.User != nil && i.Member.User.ID == ownerUserID {
		return true
	}
	perms := i.Member.Permissions
	return perms&discordgo.PermissionManageMessages != 0 || perms&discordgo.PermissionAdministrator != 0
}

// parseDatetime parses "YYYY-MM-DD HH:MM" (or with a "T" separator) in the
// given IANA timezone and returns the instant in UTC.
func parseDatetime(value, tzName string) (time.Time, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unknown timezone %q", domain.ErrBadDatetime, tzName)
	}

	normalized := strings.ReplaceAll(strings.TrimSpace(value), "T", " ")
	local, err := time.ParseInLocation(datetimeLayout, normalized, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected %s", domain.ErrBadDatetime, value, DatetimeFormatHint)
	}

	return local.UTC(), nil
}

// factionDisplay renders a faction name for replies.
func factionDisplay(f domain.Faction) string {
	return titleCaser.String(strings.ToLower(string(f)))
}
