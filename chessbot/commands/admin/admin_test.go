package admin

import (
	"fmt"
	"testing"

	"github.com/chessquiz/quizbot/internal/domain/quiz"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/require"
)

func TestDisplayedPage(t *testing.T) {
	tests := []struct {
		position, start, total, want int
	}{
		{0, 1, 15, 1},
		{3, 1, 15, 4},
		{0, 15, 15, 15},
		{1, 15, 15, 1},
		{14, 2, 15, 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, displayedPage(tt.position, tt.start, tt.total))
	}
}

func TestRenderQuestionsPage(t *testing.T) {
	all := quiz.DefaultCatalog.All()

	embed := discord.NewEmbedBuilder()
	renderQuestionsPage(embed, all, "📚 Questions", 1)
	built := embed.Build()

	require.Equal(t, "📚 Questions (1/15)", built.Title)
	require.Contains(t, built.Description, "#1: ❓ "+all[0].Prompt)
	require.NotNil(t, built.Footer)
	require.Equal(t, "Admin view • 300 questions", built.Footer.Text)
}

func TestRenderQuestionsPageClamps(t *testing.T) {
	embed := discord.NewEmbedBuilder()
	renderQuestionsPage(embed, quiz.DefaultCatalog.All(), "📚 Questions", 999)
	require.Equal(t, "📚 Questions (15/15)", embed.Build().Title)
}

func TestRenderQuestionsPageSearchResults(t *testing.T) {
	results := quiz.DefaultCatalog.Search("castling")
	require.NotEmpty(t, results)

	embed := discord.NewEmbedBuilder()
	renderQuestionsPage(embed, results, "📚 Questions matching \"castling\"", 1)
	built := embed.Build()

	require.Contains(t, built.Title, "(1/")
	require.Contains(t, built.Description, fmt.Sprintf("#%d: ❓ %s", results[0].ID, results[0].Prompt))
	require.Equal(t, fmt.Sprintf("Admin view • %d questions", len(results)), built.Footer.Text)
}
