package quiz

import (
	"fmt"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var ChessQuiz = discord.SlashCommandCreate{
	Name:        "chessquiz",
	Description: "Get a chess question",
}

func ChessQuizHandler(b *chessbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := b.QueryContext()
		defer cancel()

		issued, err := b.Quiz.Issue(ctx, e.User().ID.String())
		if err != nil {
			return err
		}

		footer := fmt.Sprintf("Reward: %d coins • Cooldown: %s", issued.Reward, utils.FormatDuration(b.Quiz.Cooldown()))
		if issued.HistoryReset {
			footer += " • You've seen every question, starting over!"
		}

		return utils.EH.Reply(e, []discord.Embed{{
			Title:       "🧠 Chess Quiz",
			Description: fmt.Sprintf("❓ %s\n\nReply with `/answer`.", issued.Prompt),
			Color:       config.QuizColor,
			Footer:      &discord.EmbedFooter{Text: footer},
		}})
	}
}
