// Package discord adapts the scoring engine to the Discord platform: slash
// command wiring, channel-history message sources and member role lookups.
package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/zonewatch/uprising-bot/internal/config"
	"github.com/zonewatch/uprising-bot/internal/lootcache"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Deps     *Deps
	Registry *CommandRegistry
}

// Deps bundles the collaborators command handlers need.
type Deps struct {
	Cfg   *config.Config
	Store *lootcache.Store
}

// New creates a new Discord bot
func New(cfg *config.Config, store *lootcache.Store) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	// Member intent is needed for role lookups on rolled players.
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessages

	return &Bot{
		Session:  s,
		Deps:     &Deps{Cfg: cfg, Store: store},
		Registry: NewCommandRegistry(),
	}, nil
}

// Start opens the gateway session.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop closes the gateway session.
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Deps)
	}
}
