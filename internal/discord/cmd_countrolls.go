package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/zonewatch/uprising-bot/internal/catalog"
	"github.com/zonewatch/uprising-bot/internal/logger"
	"github.com/zonewatch/uprising-bot/internal/metrics"
	"github.com/zonewatch/uprising-bot/internal/scoring"
)

// cheaterListCap bounds the reply so it stays under the message size limit.
const cheaterListCap = 50

// CountRollsCommand returns the count-rolls command definition and handler.
// It scores every roll announcement in a channel over a time window and
// reports faction totals, cheaters, flower pairs and manual-review flags.
func CountRollsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "count-rolls",
		Description: "Count rolls in a channel for a time range for messages by a user.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Channel to scan",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "author",
				Description: "Whose messages to analyze",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "start",
				Description: "Start datetime (" + DatetimeFormatHint + ")",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "end",
				Description: "End datetime (" + DatetimeFormatHint + ")",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tz",
				Description: "Timezone name (IANA), e.g. Europe/Warsaw",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if i.GuildID == "" {
			respondEphemeral(s, i, "This command only works in a server (not in DMs).")
			return
		}
		if !hasScanPermission(i, deps.Cfg.OwnerUserID) {
			respondEphemeral(s, i, "You don't have permission to run this (need Manage Messages or Admin).")
			return
		}

		opts := optionMap(i)
		channel := opts["channel"].ChannelValue(s)
		author := opts["author"].UserValue(s)

		tzName := deps.Cfg.DefaultTimezone
		if opt, ok := opts["tz"]; ok {
			tzName = opt.StringValue()
		}

		startUTC, err := parseDatetime(opts["start"].StringValue(), tzName)
		if err != nil {
			respondEphemeral(s, i, err.Error())
			return
		}
		endUTC, err := parseDatetime(opts["end"].StringValue(), tzName)
		if err != nil {
			respondEphemeral(s, i, err.Error())
			return
		}
		if !endUTC.After(startUTC) {
			respondEphemeral(s, i, "End must be after Start.")
			return
		}

		perms, err := s.UserChannelPermissions(s.State.User.ID, channel.ID)
		if err != nil || perms&discordgo.PermissionViewChannel == 0 || perms&discordgo.PermissionReadMessageHistory == 0 {
			respondEphemeral(s, i, "Bot lacks View Channel and/or Read Message History in that channel.")
			return
		}

		if !deferResponse(s, i) {
			return
		}

		ctx := logger.WithScanID(context.Background(), logger.GenerateScanID())
		log := logger.FromContext(ctx)
		log.Info("count-rolls started",
			"channel", channel.ID,
			"author", author.ID,
			"start", startUTC,
			"end", endUTC)

		started := time.Now()

		editResponse(s, i, "Stage 1/2: parsing fairly looted equipment…")
		ledgers, err := buildLedgers(ctx, s, deps, i.GuildID, author.ID)
		if err != nil {
			log.Error("ledger build failed", "error", err)
			respondError(s, i, "Could not build the loot ledger: "+err.Error())
			return
		}

		editResponse(s, i, "Stage 2/2: parsing rolls…")
		scanner := NewHistoryScanner(s)
		src, err := scanner.Scan(ctx, channel.ID, startUTC, endUTC)
		if err != nil {
			log.Error("roll channel scan failed", "error", err)
			respondError(s, i, "Could not read the roll channel.")
			return
		}

		engine := scoring.NewEngine(NewRoleResolver(s, i.GuildID))
		result, err := engine.CountRolls(ctx, src, author.ID, ledgers)
		if err != nil {
			log.Error("roll scan failed", "error", err)
			respondError(s, i, "Scan failed: "+err.Error())
			return
		}

		metrics.ScanDuration.Observe(time.Since(started).Seconds())
		editResponse(s, i, formatCountRollsReply(channel, author, tzName, opts["start"].StringValue(), opts["end"].StringValue(), result))
	}

	return cmd, handler
}

// formatCountRollsReply renders the scan result for Discord.
func formatCountRollsReply(channel *discordgo.Channel, author *discordgo.User, tzName, start, end string, result *scoring.Result) string {
	lines := []string{
		fmt.Sprintf("- Channel: <#%s>", channel.ID),
		fmt.Sprintf("- Author: <@%s>", author.ID),
		fmt.Sprintf("- Range (local %s): %s → %s", tzName, start, end),
		"",
		fmt.Sprintf("**Monolith total score:** %d x %d = %d", result.MonolithTotal, catalog.MonolithMultiplier, result.MonolithDisplayTotal()),
		fmt.Sprintf("**STALKERS total score:** %d", result.StalkersTotal),
		"",
		fmt.Sprintf("**Cheaters:** %d", len(result.Cheaters)),
	}

	shown := result.Cheaters
	if len(shown) > cheaterListCap {
		shown = shown[:cheaterListCap]
	}
	for _, cheater := range shown {
		missing := result.MissingByCheater[cheater.PlayerID]
		missingStr := "(no items listed)"
		if len(missing) > 0 {
			missingStr = strings.Join(missing, ", ")
		}
		lines = append(lines, fmt.Sprintf("- `%s`(%s): %s", cheater.PlayerID, factionDisplay(cheater.Faction), missingStr))
	}
	if len(result.Cheaters) > cheaterListCap {
		lines = append(lines, fmt.Sprintf("...and %d more.", len(result.Cheaters)-cheaterListCap))
	}

	lines = append(lines, fmt.Sprintf("\n**Weird Flower Pairs:** %d", len(result.FlowerPairs)))
	lines = append(lines, result.FlowerPairs...)

	if len(result.ReviewFlags) > 0 {
		flags := make([]string, len(result.ReviewFlags))
		for idx, flag := range result.ReviewFlags {
			flags[idx] = string(flag)
		}
		sort.Strings(flags)
		lines = append(lines,
			"\n**Here is the list of users with possible Faction Wars 24 equipment**, "+
				"that should be validated manually in case it may change the result of the battle. "+
				"The equipment bonuses are already added to the score, subtract the bonus if the "+
				"equipment is confirmed to be from the 2024 event. If the equipment is present, "+
				"please check it for cheating as well (you can use /is-cheater).")
		lines = append(lines, flags...)
	}

	return strings.Join(lines, "\n")
}

// buildLedgers rebuilds both faction ledgers through the snapshot cache,
// harvesting only messages newer than each snapshot's cutoff.
func buildLedgers(ctx context.Context, s *discordgo.Session, deps *Deps, guildID, lootAuthorID string) (scoring.Ledgers, error) {
	scanner := NewHistoryScanner(s)
	harvester := newLootHarvester(scanner, lootAuthorID)

	monolith, err := deps.Store.BuildLedger(ctx, guildID, tagMonolith, harvester.monolith(deps.Cfg.MonolithLootChannels))
	if err != nil {
		return scoring.Ledgers{}, err
	}

	stalkers, err := deps.Store.BuildLedger(ctx, guildID, tagStalkers, harvester.stalkers(deps.Cfg.StalkerLootChannels))
	if err != nil {
		return scoring.Ledgers{}, err
	}

	slog.Debug("ledgers built", "monolith_owners", len(monolith), "stalker_owners", len(stalkers))
	return scoring.NewLedgers(monolith, stalkers), nil
}
