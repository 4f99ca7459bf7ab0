package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/chessquiz/quizbot/internal/gateways/database/repositories"
	"github.com/stretchr/testify/require"
)

func openTempService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	ctx := context.Background()
	db, err := database.New(ctx, database.DBConfig{Path: filepath.Join(t.TempDir(), "ledger.sqlite")})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.InitializeSchema(ctx))

	return NewService(
		repositories.NewAccountRepository(db.BunDB()),
		repositories.NewGuildMemberRepository(db.BunDB()),
		opts...,
	)
}

func TestParseScope(t *testing.T) {
	tests := map[string]Scope{
		"":        ScopeServer,
		"server":  ScopeServer,
		"global":  ScopeGlobal,
		" GLOBAL": ScopeGlobal,
		"galaxy":  ScopeServer,
	}
	for in, want := range tests {
		if got := ParseScope(in); got != want {
			t.Errorf("ParseScope(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestService_GetAccountDefaults(t *testing.T) {
	t.Parallel()
	s := openTempService(t)

	acc, err := s.GetAccount(context.Background(), "new-user")
	require.NoError(t, err)
	require.Equal(t, int64(0), acc.Coins)
	require.Equal(t, int64(0), acc.LastDailyClaimAt)
}

func TestService_CreditAndDebit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTempService(t)

	require.NoError(t, s.Credit(ctx, "u1", 25))
	require.NoError(t, s.Credit(ctx, "u1", -10))

	balance, err := s.Balance(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, int64(15), balance)
}

func TestService_RevokePolicy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name          string
		allowNegative bool
		want          int64
	}{
		{"negative balances allowed", true, -70},
		{"clamped at zero", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTempService(t, WithNegativeBalances(tt.allowNegative))
			_, err := s.Grant(ctx, "u1", 30)
			require.NoError(t, err)

			balance, err := s.Revoke(ctx, "u1", 100)
			require.NoError(t, err)
			require.Equal(t, tt.want, balance)
		})
	}
}

func TestService_ClaimDaily(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	s := openTempService(t, WithClock(func() time.Time { return now }))

	first, err := s.ClaimDaily(ctx, "u1")
	require.NoError(t, err)
	require.True(t, first.Claimed)
	require.Equal(t, int64(DefaultDailyReward), first.Reward)
	require.Equal(t, int64(25), first.Balance)

	now = now.Add(20 * time.Hour)
	second, err := s.ClaimDaily(ctx, "u1")
	require.NoError(t, err)
	require.False(t, second.Claimed)
	require.Equal(t, 4*time.Hour, second.Remaining)
	require.Equal(t, int64(25), second.Balance)

	now = now.Add(4 * time.Hour)
	third, err := s.ClaimDaily(ctx, "u1")
	require.NoError(t, err)
	require.True(t, third.Claimed)
	require.Equal(t, int64(50), third.Balance)
}

func TestService_ResetDaily(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTempService(t, WithDailyReward(40))

	res, err := s.ClaimDaily(ctx, "u1")
	require.NoError(t, err)
	require.True(t, res.Claimed)

	require.NoError(t, s.ResetDaily(ctx, "u1"))

	res, err = s.ClaimDaily(ctx, "u1")
	require.NoError(t, err)
	require.True(t, res.Claimed)
	require.Equal(t, int64(80), res.Balance)
}

func TestService_Leaderboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTempService(t, WithLeaderboardSize(2))

	require.NoError(t, s.Credit(ctx, "rich-outsider", 1000))
	require.NoError(t, s.Credit(ctx, "member-a", 40))
	require.NoError(t, s.Credit(ctx, "member-b", 60))
	require.NoError(t, s.Credit(ctx, "member-c", 10))
	for _, id := range []string{"member-a", "member-b", "member-c"} {
		s.ObserveMember(ctx, "g1", id)
	}

	server, scope, err := s.Leaderboard(ctx, ScopeServer, "g1")
	require.NoError(t, err)
	require.Equal(t, ScopeServer, scope)
	require.Equal(t, []Standing{
		{Rank: 1, UserID: "member-b", Coins: 60},
		{Rank: 2, UserID: "member-a", Coins: 40},
	}, server)

	global, scope, err := s.Leaderboard(ctx, ScopeGlobal, "g1")
	require.NoError(t, err)
	require.Equal(t, ScopeGlobal, scope)
	require.Len(t, global, 2)
	require.Equal(t, "rich-outsider", global[0].UserID)

	// outside a guild the server scope falls back to global
	_, scope, err = s.Leaderboard(ctx, ScopeServer, "")
	require.NoError(t, err)
	require.Equal(t, ScopeGlobal, scope)
}
