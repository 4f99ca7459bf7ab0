package models

import "github.com/uptrace/bun"

// GuildMember records that a user was seen issuing a command in a guild. Rows are never removed.
type GuildMember struct {
	bun.BaseModel `bun:"table:guild_members,alias:gm"`

	GuildID string `bun:"guild_id,pk"`
	UserID  string `bun:"user_id,pk"`
}
