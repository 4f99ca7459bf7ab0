package economy

import (
	"fmt"
	"strings"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/chessquiz/quizbot/internal/domain/ledger"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Leaderboard = discord.SlashCommandCreate{
	Name:        "leaderboard",
	Description: "Top 10 players",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "scope",
			Description: "Leaderboard scope",
			Required:    false,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Global", Value: string(ledger.ScopeGlobal)},
				{Name: "Server", Value: string(ledger.ScopeServer)},
			},
		},
	},
}

var medals = []string{"🥇", "🥈", "🥉"}

func LeaderboardHandler(b *chessbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		scope := ledger.ParseScope(e.SlashCommandInteractionData().String("scope"))

		ctx, cancel := b.QueryContext()
		defer cancel()

		standings, used, err := b.Ledger.Leaderboard(ctx, scope, utils.GuildIDString(e.GuildID()))
		if err != nil {
			return err
		}

		title := "🌍 Global Leaderboard"
		if used == ledger.ScopeServer {
			title = "🏆 Server Leaderboard"
		}

		return utils.EH.Reply(e, []discord.Embed{{
			Title:       title,
			Description: formatStandings(standings),
			Color:       config.LeaderboardColor,
			Footer:      &discord.EmbedFooter{Text: fmt.Sprintf("Top %d players", b.Cfg.Economy.LeaderboardSize)},
		}})
	}
}

func formatStandings(standings []ledger.Standing) string {
	if len(standings) == 0 {
		return "Empty."
	}
	var sb strings.Builder
	for i, s := range standings {
		rank := fmt.Sprintf("**%d.**", s.Rank)
		if s.Rank <= len(medals) {
			rank = medals[s.Rank-1]
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s <@%s> • %d coins", rank, s.UserID, s.Coins)
	}
	return sb.String()
}
