package economy

import (
	"fmt"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Balance = discord.SlashCommandCreate{
	Name:        "balance",
	Description: "Check coins",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "User to check",
			Required:    false,
		},
	},
}

func BalanceHandler(b *chessbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		target := e.User()
		if user, ok := e.SlashCommandInteractionData().OptUser("user"); ok {
			target = user
		}

		ctx, cancel := b.QueryContext()
		defer cancel()

		coins, err := b.Ledger.Balance(ctx, target.ID.String())
		if err != nil {
			return err
		}

		return utils.EH.Reply(e, []discord.Embed{{
			Title:       "💰 Balance",
			Description: fmt.Sprintf("User: %s\nCoins: %d", target.Username, coins),
			Color:       config.ShopColor,
		}})
	}
}
