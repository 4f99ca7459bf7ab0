package utils

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

// RequireAdmin returns ErrPermissionDenied unless the invoker has Administrator in the current guild.
func RequireAdmin(e *handler.CommandEvent) error {
	member := e.Member()
	if e.GuildID() == nil || member == nil {
		return ErrPermissionDenied
	}
	if !member.Permissions.Has(discord.PermissionAdministrator) {
		return ErrPermissionDenied
	}
	return nil
}

// GuildIDString returns the guild id as a string, or "" outside a guild.
func GuildIDString(id *snowflake.ID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
