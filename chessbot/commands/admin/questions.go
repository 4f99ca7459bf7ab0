package admin

import (
	"fmt"
	"strings"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/chessquiz/quizbot/internal/domain/quiz"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
)

var Questions = discord.SlashCommandCreate{
	Name:                     "questions",
	Description:              "Admin: View quiz questions",
	DefaultMemberPermissions: adminOnly,
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "page",
			Description: "Page number to start from",
			Required:    false,
		},
		discord.ApplicationCommandOptionString{
			Name:        "search",
			Description: "Only show questions whose text matches",
			Required:    false,
		},
	},
}

func QuestionsHandler(b *chessbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := utils.RequireAdmin(e); err != nil {
			return err
		}

		data := e.SlashCommandInteractionData()
		questions := b.Quiz.Catalog().All()
		query := strings.TrimSpace(data.String("search"))
		if query != "" {
			questions = b.Quiz.Catalog().Search(query)
			if len(questions) == 0 {
				return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("🔍 No questions match `%s`.", query))
			}
		}

		requested := 1
		if page, ok := data.OptInt("page"); ok {
			requested = page
		}
		_, start := quiz.Paginate(questions, requested, config.QuestionsPerPage)
		totalPages := quiz.PageCount(len(questions), config.QuestionsPerPage)

		title := "📚 Questions"
		if query != "" {
			title = fmt.Sprintf("📚 Questions matching \"%s\"", query)
		}

		if totalPages == 1 {
			embed := discord.NewEmbedBuilder()
			renderQuestionsPage(embed, questions, title, 1)
			return utils.EH.Reply(e, []discord.Embed{embed.Build()})
		}

		return b.Paginator.Create(utils.DeferredResponder(e), paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				renderQuestionsPage(embed, questions, title, displayedPage(page, start, totalPages))
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

// displayedPage maps the paginator's 0-based position to a 1-based catalog page so the first
// view is the requested page. Navigation wraps around the end.
func displayedPage(position, start, total int) int {
	return (start-1+position)%total + 1
}

func renderQuestionsPage(embed *discord.EmbedBuilder, all []quiz.Question, title string, page int) {
	totalPages := quiz.PageCount(len(all), config.QuestionsPerPage)
	questions, page := quiz.Paginate(all, page, config.QuestionsPerPage)
	lines := make([]string, 0, len(questions))
	for _, q := range questions {
		lines = append(lines, fmt.Sprintf("#%d: ❓ %s", q.ID, q.Prompt))
	}
	description := strings.Join(lines, "\n")
	if description == "" {
		description = "Empty."
	}

	embed.
		SetTitle(fmt.Sprintf("%s (%d/%d)", title, page, totalPages)).
		SetDescription(description).
		SetColor(config.InfoColor).
		SetFooter(fmt.Sprintf("Admin view • %d questions", len(all)), "")
}
