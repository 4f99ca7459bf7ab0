package admin

import (
	"fmt"
	"log/slog"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var AddMoney = discord.SlashCommandCreate{
	Name:                     "addmoney",
	Description:              "Admin: Add coins",
	DefaultMemberPermissions: adminOnly,
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "User to give coins",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "Amount of coins to add",
			Required:    true,
			MinValue:    intPtr(1),
		},
	},
}

func AddMoneyHandler(b *chessbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := utils.RequireAdmin(e); err != nil {
			return err
		}

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		amount := int64(data.Int("amount"))

		ctx, cancel := b.QueryContext()
		defer cancel()

		balance, err := b.Ledger.Grant(ctx, target.ID.String(), amount)
		if err != nil {
			return err
		}

		slog.Info("Balance adjusted by admin",
			slog.String("type", "cmd"),
			slog.String("admin_id", e.User().ID.String()),
			slog.String("user_id", target.ID.String()),
		)

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("✅ Added **%d** coins to <@%s>. New balance: **%d**.", amount, target.ID, balance))
	}
}
