package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/zonewatch/uprising-bot/internal/logger"
	"github.com/zonewatch/uprising-bot/internal/scoring"
)

// IsCheaterCommand returns the is-cheater command definition and handler.
// It checks one user's currently equipped roles against the loot ledger.
func IsCheaterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "is-cheater",
		Description: "Check whether a user is cheating based on currently equipped roles vs looted equipment.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "author",
				Description: "Bot/user whose messages are parsed in loot channels",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "User to check",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if i.GuildID == "" {
			respondEphemeral(s, i, "This command only works in a server (not in DMs).")
			return
		}
		if !hasScanPermission(i, deps.Cfg.OwnerUserID) {
			respondEphemeral(s, i, "You don't have permission to run this (need Manage Messages, Admin, or be the bot owner).")
			return
		}

		opts := optionMap(i)
		lootAuthor := opts["author"].UserValue(s)
		user := opts["user"].UserValue(s)

		if !deferResponse(s, i) {
			return
		}

		ctx := logger.WithScanID(context.Background(), logger.GenerateScanID())
		log := logger.FromContext(ctx)
		log.Info("is-cheater started", "user", user.ID, "loot_author", lootAuthor.ID)

		ledgers, err := buildLedgers(ctx, s, deps, i.GuildID, lootAuthor.ID)
		if err != nil {
			log.Error("ledger build failed", "error", err)
			respondError(s, i, "Could not build the loot ledger: "+err.Error())
			return
		}

		engine := scoring.NewEngine(NewRoleResolver(s, i.GuildID))
		verdict, err := engine.CheckPlayer(ctx, user.ID, ledgers)
		if err != nil {
			log.Error("cheat check failed", "error", err)
			respondError(s, i, "Check failed: "+err.Error())
			return
		}

		editResponse(s, i, formatVerdict(user, verdict))
	}

	return cmd, handler
}

func formatVerdict(user *discordgo.User, verdict *scoring.PlayerVerdict) string {
	equippedStr := "(none)"
	if len(verdict.Equipped) > 0 {
		equippedStr = strings.Join(verdict.Equipped.Sorted(), ", ")
	}

	if verdict.Cheating {
		missingStr := "(none)"
		if len(verdict.Missing) > 0 {
			missingStr = strings.Join(verdict.Missing, ", ")
		}
		return fmt.Sprintf(
			"**Result: CHEATER 🔴**\n- User: <@%s> (`%s`)\n- Faction: `%s`\n- Equipped: %s\n- Missing from loot: %s\n",
			user.ID, user.ID, factionDisplay(verdict.Faction), equippedStr, missingStr)
	}

	return fmt.Sprintf(
		"**Result: NOT a cheater ✅**\n- User: <@%s> (`%s`)\n- Faction: `%s`\n- Equipped: %s\n",
		user.ID, user.ID, factionDisplay(verdict.Faction), equippedStr)
}
