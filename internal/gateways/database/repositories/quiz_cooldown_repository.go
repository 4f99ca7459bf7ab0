package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/chessquiz/quizbot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type QuizCooldownRepository interface {
	Get(ctx context.Context, userID string) (*models.QuizCooldown, error)
	Touch(ctx context.Context, userID string, at time.Time) error
}

type quizCooldownRepository struct {
	db *bun.DB
}

func NewQuizCooldownRepository(db *bun.DB) QuizCooldownRepository {
	return &quizCooldownRepository{db: db}
}

func (r *quizCooldownRepository) Get(ctx context.Context, userID string) (*models.QuizCooldown, error) {
	cd := new(models.QuizCooldown)
	err := r.db.NewSelect().
		Model(cd).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.Classify("get quiz cooldown", err)
	}
	return cd, nil
}

func (r *quizCooldownRepository) Touch(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.NewInsert().
		Model(&models.QuizCooldown{UserID: userID, LastUsedAt: at.UnixMilli()}).
		On("CONFLICT (user_id) DO UPDATE").
		Set("last_used_at = EXCLUDED.last_used_at").
		Exec(ctx)
	if err != nil {
		return database.Classify("touch quiz cooldown", err)
	}
	return nil
}
