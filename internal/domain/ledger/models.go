package ledger

import (
	"strings"
	"time"
)

type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeServer Scope = "server"
)

// ParseScope maps a command option to a Scope. Anything unknown, including "", is the server scope.
func ParseScope(s string) Scope {
	if Scope(strings.ToLower(strings.TrimSpace(s))) == ScopeGlobal {
		return ScopeGlobal
	}
	return ScopeServer
}

// DailyResult describes one /daily attempt.
type DailyResult struct {
	Claimed   bool
	Reward    int64
	Balance   int64
	Remaining time.Duration
}

// Standing is one leaderboard row. Rank starts at 1.
type Standing struct {
	Rank   int
	UserID string
	Coins  int64
}
