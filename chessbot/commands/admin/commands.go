package admin

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/json"
)

var Commands = []discord.ApplicationCommandCreate{
	Questions,
	AddMoney,
	RemoveMoney,
	ResetDaily,
}

// adminOnly hides a command from non-admins in the client. Handlers still check with utils.RequireAdmin.
var adminOnly = json.NewNullablePtr(discord.PermissionAdministrator)

func intPtr(i int) *int {
	return &i
}
