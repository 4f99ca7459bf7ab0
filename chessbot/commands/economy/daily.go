package economy

import (
	"fmt"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Daily = discord.SlashCommandCreate{
	Name:        "daily",
	Description: "Claim your daily coins",
}

func DailyHandler(b *chessbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := b.QueryContext()
		defer cancel()

		result, err := b.Ledger.ClaimDaily(ctx, e.User().ID.String())
		if err != nil {
			return err
		}

		if !result.Claimed {
			return utils.EH.Reply(e, []discord.Embed{{
				Title:       "⏳ Already claimed today!",
				Description: fmt.Sprintf("Come back in **%s**.", utils.FormatDuration(result.Remaining)),
				Color:       config.WarningColor,
			}})
		}

		return utils.EH.Reply(e, []discord.Embed{{
			Title:       "🎁 Daily Reward",
			Description: fmt.Sprintf("You received %s.\n💰 Balance: %s", utils.FormatCoins(result.Reward), utils.FormatCoins(result.Balance)),
			Color:       config.SuccessColor,
		}})
	}
}
