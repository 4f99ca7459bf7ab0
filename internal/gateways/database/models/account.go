package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Account is a player's coin balance. Timestamps are epoch milliseconds.
type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:a"`

	UserID           string `bun:"user_id,pk"`
	Coins            int64  `bun:"coins,notnull,default:0"`
	LastDailyClaimAt int64  `bun:"last_daily_claim_at,notnull,default:0"`
}

func (a *Account) LastDailyClaim() time.Time {
	return time.UnixMilli(a.LastDailyClaimAt)
}
