package quiz

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	ChessQuiz,
	Answer,
}
