package quiz

import (
	"fmt"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/chessquiz/quizbot/internal/domain/quiz"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Answer = discord.SlashCommandCreate{
	Name:        "answer",
	Description: "Answer the quiz",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "text",
			Description: "Your chess answer",
			Required:    true,
		},
	},
}

func AnswerHandler(b *chessbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		text := e.SlashCommandInteractionData().String("text")

		ctx, cancel := b.QueryContext()
		defer cancel()

		outcome, err := b.Quiz.Submit(ctx, e.User().ID.String(), text)
		if err != nil {
			return err
		}

		return utils.EH.Reply(e, []discord.Embed{outcomeEmbed(outcome)})
	}
}

func outcomeEmbed(o *quiz.Outcome) discord.Embed {
	if o.Correct && o.RewardLost {
		return discord.Embed{
			Title:       "✅ Correct Answer",
			Description: fmt.Sprintf("Answer: %s\n⚠️ Your reward could not be credited right now. No cooldown was started, so you can play again.", o.Answer),
			Color:       config.WarningColor,
		}
	}
	if o.Correct {
		return discord.Embed{
			Title:       "✅ Correct Answer",
			Description: fmt.Sprintf("You earned **%d** coins.\nAnswer: %s", o.Reward, o.Answer),
			Color:       config.SuccessColor,
		}
	}
	return discord.Embed{
		Title:       "❌ Wrong Answer",
		Description: fmt.Sprintf("Correct answer: **%s**", o.Answer),
		Color:       config.ErrorColor,
	}
}
