package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/zonewatch/uprising-bot/internal/logger"
)

const (
	roleCacheSize = 2048
	roleCacheTTL  = 5 * time.Minute
)

// RoleResolver looks up a member's role label strings, caching results so a
// scan that sees the same player many times doesn't hammer the member API.
// It implements domain.RoleResolver.
type RoleResolver struct {
	session *discordgo.Session
	guildID string
	cache   *expirable.LRU[string, []string]
}

// NewRoleResolver creates a resolver for one guild.
func NewRoleResolver(session *discordgo.Session, guildID string) *RoleResolver {
	return &RoleResolver{
		session: session,
		guildID: guildID,
		cache:   expirable.NewLRU[string, []string](roleCacheSize, nil, roleCacheTTL),
	}
}

// Labels returns the player's current role names, trimmed, in role order. A
// player that left the guild or cannot be fetched resolves to no labels and
// no error.
func (r *RoleResolver) Labels(ctx context.Context, playerID string) ([]string, error) {
	if labels, ok := r.cache.Get(playerID); ok {
		return labels, nil
	}

	member, err := r.member(ctx, playerID)
	if err != nil || member == nil {
		logger.FromContext(ctx).Debug("member lookup failed", "player", playerID, "error", err)
		return nil, nil
	}

	names, err := r.roleNames()
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(member.Roles))
	for _, roleID := range member.Roles {
		if name, ok := names[roleID]; ok {
			labels = append(labels, strings.TrimSpace(name))
		}
	}

	r.cache.Add(playerID, labels)
	return labels, nil
}

// member reads from gateway state first, falling back to the REST API.
func (r *RoleResolver) member(ctx context.Context, playerID string) (*discordgo.Member, error) {
	if member, err := r.session.State.Member(r.guildID, playerID); err == nil && member != nil {
		return member, nil
	}
	return r.session.GuildMember(r.guildID, playerID, discordgo.WithContext(ctx))
}

// roleNames maps role IDs to names for the guild.
func (r *RoleResolver) roleNames() (map[string]string, error) {
	var roles []*discordgo.Role
	if guild, err := r.session.State.Guild(r.guildID); err == nil && guild != nil && len(guild.Roles) > 0 {
		roles = guild.Roles
	} else {
		fetched, err := r.session.GuildRoles(r.guildID)
		if err != nil {
			return nil, fmt.Errorf("fetching guild roles: %w", err)
		}
		roles = fetched
	}

	names := make(map[string]string, len(roles))
	for _, role := range roles {
		names[role.ID] = role.Name
	}
	return names, nil
}
