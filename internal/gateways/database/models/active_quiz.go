package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ActiveQuiz is the single pending question of a player. The primary key on user_id is what
// keeps a player from holding two questions at once.
type ActiveQuiz struct {
	bun.BaseModel `bun:"table:active_quizzes,alias:aq"`

	UserID     string `bun:"user_id,pk"`
	QuestionID int64  `bun:"question_id,notnull"`
	AskedAt    int64  `bun:"asked_at,notnull"`
}

func (q *ActiveQuiz) Asked() time.Time {
	return time.UnixMilli(q.AskedAt)
}
