package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/zonewatch/uprising-bot/internal/config"
	"github.com/zonewatch/uprising-bot/internal/discord"
	"github.com/zonewatch/uprising-bot/internal/logger"
	"github.com/zonewatch/uprising-bot/internal/lootcache"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "uprising-bot",
		Environment: cfg.Environment,
		AddSource:   cfg.Environment == "dev",
	})

	store, err := lootcache.NewStore(cfg.CacheDir)
	if err != nil {
		slog.Error("Failed to open snapshot store", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg, store)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(cfg.MetricsPort)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot)

	if err := bot.RegisterCommands(); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// CommandFactory creates a Discord command and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func registerCommands(bot *discord.Bot) {
	factories := []CommandFactory{
		discord.CountRollsCommand,
		discord.IsCheaterCommand,
	}
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
