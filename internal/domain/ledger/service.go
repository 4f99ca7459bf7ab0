package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chessquiz/quizbot/internal/gateways/database/models"
	"github.com/chessquiz/quizbot/internal/gateways/database/repositories"
)

const (
	DefaultDailyReward     = 25
	DefaultDailyCooldown   = 24 * time.Hour
	DefaultLeaderboardSize = 10
)

type Service struct {
	accounts        repositories.AccountRepository
	members         repositories.GuildMemberRepository
	dailyReward     int64
	dailyCooldown   time.Duration
	allowNegative   bool
	leaderboardSize int
	now             func() time.Time
}

type Option func(*Service)

func WithDailyReward(reward int64) Option {
	return func(s *Service) { s.dailyReward = reward }
}

func WithDailyCooldown(d time.Duration) Option {
	return func(s *Service) { s.dailyCooldown = d }
}

// WithNegativeBalances controls whether Revoke may take a balance below zero.
func WithNegativeBalances(allow bool) Option {
	return func(s *Service) { s.allowNegative = allow }
}

func WithLeaderboardSize(n int) Option {
	return func(s *Service) { s.leaderboardSize = n }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(accounts repositories.AccountRepository, members repositories.GuildMemberRepository, opts ...Option) *Service {
	s := &Service{
		accounts:        accounts,
		members:         members,
		dailyReward:     DefaultDailyReward,
		dailyCooldown:   DefaultDailyCooldown,
		allowNegative:   true,
		leaderboardSize: DefaultLeaderboardSize,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.leaderboardSize <= 0 {
		s.leaderboardSize = DefaultLeaderboardSize
	}
	return s
}

func (s *Service) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	acc, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

func (s *Service) Balance(ctx context.Context, userID string) (int64, error) {
	acc, err := s.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acc.Coins, nil
}

// Credit adds amount to the balance. Negative amounts debit without a floor.
func (s *Service) Credit(ctx context.Context, userID string, amount int64) error {
	if _, err := s.accounts.Credit(ctx, userID, amount); err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}
	return nil
}

// TryDebit removes amount only when the balance covers it.
func (s *Service) TryDebit(ctx context.Context, userID string, amount int64) (bool, error) {
	ok, err := s.accounts.TryDebit(ctx, userID, amount)
	if err != nil {
		return false, fmt.Errorf("failed to debit account: %w", err)
	}
	return ok, nil
}

// Grant is the admin credit. It returns the new balance.
func (s *Service) Grant(ctx context.Context, userID string, amount int64) (int64, error) {
	balance, err := s.accounts.Credit(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to grant coins: %w", err)
	}
	slog.Info("Coins granted",
		slog.String("type", "ledger"),
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
		slog.Int64("balance", balance))
	return balance, nil
}

// Revoke is the admin debit. Whether the balance may go negative is a configured policy.
func (s *Service) Revoke(ctx context.Context, userID string, amount int64) (int64, error) {
	var (
		balance int64
		err     error
	)
	if s.allowNegative {
		balance, err = s.accounts.Credit(ctx, userID, -amount)
	} else {
		balance, err = s.accounts.DebitClamped(ctx, userID, amount)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to revoke coins: %w", err)
	}
	slog.Info("Coins revoked",
		slog.String("type", "ledger"),
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
		slog.Int64("balance", balance),
		slog.Bool("clamped", !s.allowNegative))
	return balance, nil
}

// ClaimDaily credits the daily reward once per cooldown window.
func (s *Service) ClaimDaily(ctx context.Context, userID string) (*DailyResult, error) {
	now := s.now()
	claimed, err := s.accounts.ClaimDaily(ctx, userID, s.dailyReward, now, s.dailyCooldown)
	if err != nil {
		return nil, fmt.Errorf("failed to claim daily reward: %w", err)
	}

	acc, err := s.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &DailyResult{Claimed: claimed, Balance: acc.Coins}
	if claimed {
		result.Reward = s.dailyReward
		return result, nil
	}
	if remaining := s.dailyCooldown - now.Sub(acc.LastDailyClaim()); remaining > 0 {
		result.Remaining = remaining
	}
	return result, nil
}

// ResetDaily clears the last claim so the user can claim again immediately.
func (s *Service) ResetDaily(ctx context.Context, userID string) error {
	if err := s.accounts.SetLastDailyClaim(ctx, userID, time.Time{}); err != nil {
		return fmt.Errorf("failed to reset daily claim: %w", err)
	}
	return nil
}

// Leaderboard ranks accounts by balance. The server scope needs a guild; without one it
// falls back to the global ranking, and the scope actually used is returned.
func (s *Service) Leaderboard(ctx context.Context, scope Scope, guildID string) ([]Standing, Scope, error) {
	var (
		accounts []*models.Account
		err      error
	)
	if scope == ScopeServer && guildID != "" {
		accounts, err = s.accounts.TopInGuild(ctx, guildID, s.leaderboardSize)
	} else {
		scope = ScopeGlobal
		accounts, err = s.accounts.Top(ctx, s.leaderboardSize)
	}
	if err != nil {
		return nil, scope, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	standings := make([]Standing, 0, len(accounts))
	for i, acc := range accounts {
		standings = append(standings, Standing{Rank: i + 1, UserID: acc.UserID, Coins: acc.Coins})
	}
	return standings, scope, nil
}

// ObserveMember records guild membership for the server leaderboard. Failures are logged and dropped.
func (s *Service) ObserveMember(ctx context.Context, guildID, userID string) {
	if guildID == "" || userID == "" {
		return
	}
	if err := s.members.Observe(ctx, guildID, userID); err != nil {
		slog.Debug("Failed to record guild member",
			slog.String("type", "db"),
			slog.String("guild_id", guildID),
			slog.String("user_id", userID),
			slog.Any("error", err))
	}
}
