package economy

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Daily,
	Balance,
	Leaderboard,
	Shop,
}
