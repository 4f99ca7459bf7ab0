package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/chessquiz/quizbot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type AccountRepository interface {
	Get(ctx context.Context, userID string) (*models.Account, error)
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	TryDebit(ctx context.Context, userID string, amount int64) (bool, error)
	DebitClamped(ctx context.Context, userID string, amount int64) (int64, error)
	ClaimDaily(ctx context.Context, userID string, reward int64, now time.Time, cooldown time.Duration) (bool, error)
	SetLastDailyClaim(ctx context.Context, userID string, at time.Time) error
	Top(ctx context.Context, limit int) ([]*models.Account, error)
	TopInGuild(ctx context.Context, guildID string, limit int) ([]*models.Account, error)
}

type accountRepository struct {
	db *bun.DB
}

func NewAccountRepository(db *bun.DB) AccountRepository {
	return &accountRepository{db: db}
}

// ensure creates the account with zero coins if it does not exist yet.
func (r *accountRepository) ensure(ctx context.Context, userID string) error {
	_, err := r.db.NewInsert().
		Model(&models.Account{UserID: userID}).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return database.Classify("ensure account", err)
	}
	return nil
}

func (r *accountRepository) Get(ctx context.Context, userID string) (*models.Account, error) {
	if err := r.ensure(ctx, userID); err != nil {
		return nil, err
	}

	account := new(models.Account)
	err := r.db.NewSelect().
		Model(account).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, database.Classify("get account", err)
	}
	return account, nil
}

// Credit adds amount to the balance and returns the new balance. Negative amounts debit without a lower bound.
func (r *accountRepository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if err := r.ensure(ctx, userID); err != nil {
		return 0, err
	}

	var balance int64
	err := r.db.NewUpdate().
		Model((*models.Account)(nil)).
		Set("coins = coins + ?", amount).
		Where("user_id = ?", userID).
		Returning("coins").
		Scan(ctx, &balance)
	if err != nil {
		return 0, database.Classify("credit account", err)
	}
	return balance, nil
}

// TryDebit removes amount only if the balance covers it. The check and the update are one statement.
func (r *accountRepository) TryDebit(ctx context.Context, userID string, amount int64) (bool, error) {
	if err := r.ensure(ctx, userID); err != nil {
		return false, err
	}

	res, err := r.db.NewUpdate().
		Model((*models.Account)(nil)).
		Set("coins = coins - ?", amount).
		Where("user_id = ?", userID).
		Where("coins >= ?", amount).
		Exec(ctx)
	if err != nil {
		return false, database.Classify("debit account", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Classify("debit account", err)
	}
	return n == 1, nil
}

// DebitClamped removes up to amount, never taking the balance below zero, and returns the new balance.
func (r *accountRepository) DebitClamped(ctx context.Context, userID string, amount int64) (int64, error) {
	if err := r.ensure(ctx, userID); err != nil {
		return 0, err
	}

	var balance int64
	err := r.db.NewUpdate().
		Model((*models.Account)(nil)).
		Set("coins = CASE WHEN coins > ? THEN coins - ? ELSE 0 END", amount, amount).
		Where("user_id = ?", userID).
		Returning("coins").
		Scan(ctx, &balance)
	if err != nil {
		return 0, database.Classify("debit account", err)
	}
	return balance, nil
}

// ClaimDaily credits reward and stamps the claim time if the last claim is at least cooldown old.
// It reports false when the claim is still cooling down.
func (r *accountRepository) ClaimDaily(ctx context.Context, userID string, reward int64, now time.Time, cooldown time.Duration) (bool, error) {
	if err := r.ensure(ctx, userID); err != nil {
		return false, err
	}

	res, err := r.db.NewUpdate().
		Model((*models.Account)(nil)).
		Set("coins = coins + ?", reward).
		Set("last_daily_claim_at = ?", now.UnixMilli()).
		Where("user_id = ?", userID).
		Where("last_daily_claim_at <= ?", now.Add(-cooldown).UnixMilli()).
		Exec(ctx)
	if err != nil {
		return false, database.Classify("claim daily", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Classify("claim daily", err)
	}

	slog.Debug("Daily claim attempted",
		slog.String("type", "db"),
		slog.String("operation", "ClaimDaily"),
		slog.String("user_id", userID),
		slog.Bool("claimed", n == 1))
	return n == 1, nil
}

func (r *accountRepository) SetLastDailyClaim(ctx context.Context, userID string, at time.Time) error {
	if err := r.ensure(ctx, userID); err != nil {
		return err
	}

	var millis int64
	if !at.IsZero() {
		millis = at.UnixMilli()
	}
	_, err := r.db.NewUpdate().
		Model((*models.Account)(nil)).
		Set("last_daily_claim_at = ?", millis).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return database.Classify("set last daily claim", err)
	}
	return nil
}

func (r *accountRepository) Top(ctx context.Context, limit int) ([]*models.Account, error) {
	var accounts []*models.Account
	err := r.db.NewSelect().
		Model(&accounts).
		OrderExpr("a.coins DESC, a.user_id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, database.Classify("top accounts", err)
	}
	return accounts, nil
}

// TopInGuild ranks only accounts observed as members of guildID.
func (r *accountRepository) TopInGuild(ctx context.Context, guildID string, limit int) ([]*models.Account, error) {
	var accounts []*models.Account
	err := r.db.NewSelect().
		Model(&accounts).
		Join("JOIN guild_members AS gm ON gm.user_id = a.user_id").
		Where("gm.guild_id = ?", guildID).
		OrderExpr("a.coins DESC, a.user_id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, database.Classify(fmt.Sprintf("top accounts in guild %s", guildID), err)
	}
	return accounts, nil
}
