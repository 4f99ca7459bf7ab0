package services

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// DiscordRoles implements shop.RoleService on top of the Discord REST API.
type DiscordRoles struct {
	rest   rest.Rest
	caches cache.Caches
}

func NewDiscordRoles(r rest.Rest, caches cache.Caches) *DiscordRoles {
	return &DiscordRoles{rest: r, caches: caches}
}

func (d *DiscordRoles) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	gid, uid, err := parseIDs(guildID, userID)
	if err != nil {
		return nil, err
	}
	member, err := d.rest.GetMember(gid, uid, rest.WithCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member %s: %w", userID, err)
	}
	roles := make([]string, 0, len(member.RoleIDs))
	for _, id := range member.RoleIDs {
		roles = append(roles, id.String())
	}
	return roles, nil
}

// RoleExists checks the role cache first and falls back to listing the guild roles.
func (d *DiscordRoles) RoleExists(ctx context.Context, guildID, roleID string) (bool, error) {
	gid, rid, err := parseIDs(guildID, roleID)
	if err != nil {
		return false, err
	}
	if d.caches != nil {
		if _, ok := d.caches.Role(gid, rid); ok {
			return true, nil
		}
	}
	roles, err := d.rest.GetRoles(gid, rest.WithCtx(ctx))
	if err != nil {
		return false, fmt.Errorf("failed to fetch roles of guild %s: %w", guildID, err)
	}
	for _, role := range roles {
		if role.ID == rid {
			return true, nil
		}
	}
	return false, nil
}

func (d *DiscordRoles) GrantRole(ctx context.Context, guildID, userID, roleID string) error {
	gid, uid, err := parseIDs(guildID, userID)
	if err != nil {
		return err
	}
	rid, err := snowflake.Parse(roleID)
	if err != nil {
		return fmt.Errorf("invalid role id %q: %w", roleID, err)
	}
	if err := d.rest.AddMemberRole(gid, uid, rid, rest.WithCtx(ctx)); err != nil {
		return fmt.Errorf("failed to add role %s to %s: %w", roleID, userID, err)
	}
	return nil
}

func parseIDs(a, b string) (snowflake.ID, snowflake.ID, error) {
	first, err := snowflake.Parse(a)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid id %q: %w", a, err)
	}
	second, err := snowflake.Parse(b)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid id %q: %w", b, err)
	}
	return first, second, nil
}
