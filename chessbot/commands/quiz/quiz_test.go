package quiz

import (
	"testing"

	"github.com/chessquiz/quizbot/internal/domain/quiz"
	"github.com/stretchr/testify/require"
)

func TestOutcomeEmbed(t *testing.T) {
	correct := outcomeEmbed(&quiz.Outcome{QuestionID: 7, Correct: true, Answer: "Knight", Reward: 10})
	require.Equal(t, "✅ Correct Answer", correct.Title)
	require.Equal(t, "You earned **10** coins.\nAnswer: Knight", correct.Description)

	wrong := outcomeEmbed(&quiz.Outcome{QuestionID: 7, Answer: "Knight", Reward: 10})
	require.Equal(t, "❌ Wrong Answer", wrong.Title)
	require.Equal(t, "Correct answer: **Knight**", wrong.Description)

	lost := outcomeEmbed(&quiz.Outcome{QuestionID: 7, Correct: true, Answer: "Knight", RewardLost: true})
	require.Equal(t, "✅ Correct Answer", lost.Title)
	require.Contains(t, lost.Description, "Answer: Knight")
	require.Contains(t, lost.Description, "could not be credited")
}
