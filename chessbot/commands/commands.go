package commands

import (
	"github.com/chessquiz/quizbot/chessbot/commands/admin"
	"github.com/chessquiz/quizbot/chessbot/commands/economy"
	"github.com/chessquiz/quizbot/chessbot/commands/quiz"
	"github.com/disgoorg/disgo/discord"
)

var Commands = []discord.ApplicationCommandCreate{}

func init() {
	Commands = append(Commands, quiz.Commands...)
	Commands = append(Commands, economy.Commands...)
	Commands = append(Commands, admin.Commands...)
}
