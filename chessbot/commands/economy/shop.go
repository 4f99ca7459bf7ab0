package economy

import (
	"fmt"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/chessquiz/quizbot/internal/domain/shop"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Shop = discord.SlashCommandCreate{
	Name:        "shop",
	Description: "View shop",
}

func ShopHandler(b *chessbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := utils.GuildIDString(e.GuildID())
		if guildID == "" {
			return shop.ErrGuildRequired
		}

		ctx, cancel := b.QueryContext()
		defer cancel()

		view, err := b.Shop.View(ctx, guildID, e.User().ID.String())
		if err != nil {
			return err
		}

		return utils.EH.Reply(e, []discord.Embed{shopEmbed(view)}, shopComponents(view)...)
	}
}

// ShopComponentHandler serves the buy and close buttons under a shop message.
func ShopComponentHandler(b *chessbot.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		action, err := shop.ParseAction(e.Data.CustomID())
		if err != nil {
			return e.CreateMessage(discord.MessageCreate{
				Content: "This button action is no longer valid.",
				Flags:   discord.MessageFlagEphemeral,
			})
		}

		if action.Kind == shop.ActionClose {
			return e.UpdateMessage(discord.MessageUpdate{
				Components: &[]discord.ContainerComponent{},
			})
		}

		if err := e.DeferUpdateMessage(); err != nil {
			return err
		}

		ctx, cancel := b.QueryContext()
		defer cancel()

		receipt, err := b.Shop.Purchase(ctx, utils.GuildIDString(e.GuildID()), e.User().ID.String(), action.RoleID)
		if err != nil {
			if ferr := utils.EH.FollowupError(e.ComponentInteractionCreate, err); ferr != nil {
				return ferr
			}
			if utils.IsExpected(err) {
				return nil
			}
			return err
		}

		rows := shopComponents(receipt.View)
		if _, err := e.Client().Rest().UpdateInteractionResponse(e.ApplicationID(), e.Token(), discord.MessageUpdate{
			Embeds:     &[]discord.Embed{shopEmbed(receipt.View)},
			Components: &rows,
		}); err != nil {
			return err
		}

		return utils.EH.FollowupSuccess(e.ComponentInteractionCreate,
			fmt.Sprintf("You successfully bought the %s role!", receipt.Entitlement.Name))
	}
}

func shopEmbed(view *shop.View) discord.Embed {
	fields := make([]discord.EmbedField, 0, len(view.Items))
	for _, item := range view.Items {
		status := "Not Owned"
		if item.Owned {
			status = "Already Owned"
		}
		value := fmt.Sprintf("📝 Description: %s\n💰 Price: %d coins\n🎭 Role: <@&%s>\n✅ Status: %s",
			item.Description, item.Price, item.RoleID, status)
		fields = append(fields, discord.EmbedField{
			Name:  "♟️ " + item.Name,
			Value: value,
		})
	}

	return discord.Embed{
		Title:       "🛒 Server Shop",
		Description: fmt.Sprintf("💰 Balance: %d coins", view.Balance),
		Fields:      fields,
		Color:       config.ShopColor,
	}
}

func shopComponents(view *shop.View) []discord.ContainerComponent {
	buttons := make([]discord.InteractiveComponent, 0, len(view.Items))
	for _, item := range view.Items {
		var button discord.ButtonComponent
		if item.Owned {
			button = discord.NewSecondaryButton("Owned: "+item.Name, shop.BuyButtonID(item.RoleID)).WithDisabled(true)
		} else {
			button = discord.NewPrimaryButton(fmt.Sprintf("Buy %s • %d Coins", item.Name, item.Price), shop.BuyButtonID(item.RoleID))
		}
		buttons = append(buttons, button.WithEmoji(discord.ComponentEmoji{Name: "🛒"}))
	}

	rows := make([]discord.ContainerComponent, 0, len(buttons)/config.ButtonsPerRow+2)
	for start := 0; start < len(buttons); start += config.ButtonsPerRow {
		end := min(start+config.ButtonsPerRow, len(buttons))
		rows = append(rows, discord.NewActionRow(buttons[start:end]...))
	}
	rows = append(rows, discord.NewActionRow(
		discord.NewDangerButton("Close Shop", shop.CloseButtonID()).WithEmoji(discord.ComponentEmoji{Name: "🧹"}),
	))
	return rows
}
