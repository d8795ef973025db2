package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		h(s, i, deps)
	}
}

// RegisterCommands overwrites the guild's command set with the registry's.
// Guild-scoped registration appears immediately, unlike global commands.
func (b *Bot) RegisterCommands() error {
	cfg := b.Deps.Cfg

	desired := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desired = append(desired, cmd)
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(cfg.DiscordAppID, cfg.GuildID, desired); err != nil {
		return fmt.Errorf("failed to overwrite guild commands: %w", err)
	}

	slog.Info("Commands registered", "guild", cfg.GuildID, "count", len(desired))
	return nil
}
