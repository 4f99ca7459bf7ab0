package models

import (
	"time"

	"github.com/uptrace/bun"
)

type QuizCooldown struct {
	bun.BaseModel `bun:"table:quiz_cooldowns,alias:qc"`

	UserID     string `bun:"user_id,pk"`
	LastUsedAt int64  `bun:"last_used_at,notnull"`
}

func (c *QuizCooldown) LastUsed() time.Time {
	return time.UnixMilli(c.LastUsedAt)
}
