package admin

import (
	"fmt"
	"log/slog"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var ResetDaily = discord.SlashCommandCreate{
	Name:                     "resetdaily",
	Description:              "Admin: Reset a user's daily cooldown",
	DefaultMemberPermissions: adminOnly,
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The user whose daily cooldown to reset",
			Required:    true,
		},
	},
}

func ResetDailyHandler(b *chessbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := utils.RequireAdmin(e); err != nil {
			return err
		}

		target := e.SlashCommandInteractionData().User("user")

		ctx, cancel := b.QueryContext()
		defer cancel()

		if err := b.Ledger.ResetDaily(ctx, target.ID.String()); err != nil {
			return err
		}

		slog.Info("Daily reset",
			slog.String("type", "ledger"),
			slog.String("admin_id", e.User().ID.String()),
			slog.String("user_id", target.ID.String()),
		)

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("✅ Reset the daily cooldown of <@%s>.", target.ID))
	}
}
