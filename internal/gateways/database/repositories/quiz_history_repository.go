package repositories

import (
	"context"
	"database/sql"
	"errors"
	"slices"

	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/chessquiz/quizbot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type QuizHistoryRepository interface {
	Get(ctx context.Context, userID string) ([]int64, error)
	Append(ctx context.Context, userID string, questionID int64) error
	Replace(ctx context.Context, userID string, questionIDs []int64) error
}

type quizHistoryRepository struct {
	db *bun.DB
}

func NewQuizHistoryRepository(db *bun.DB) QuizHistoryRepository {
	return &quizHistoryRepository{db: db}
}

func (r *quizHistoryRepository) Get(ctx context.Context, userID string) ([]int64, error) {
	h, err := r.load(ctx, r.db, userID)
	if err != nil {
		return nil, database.Classify("get quiz history", err)
	}
	return h.IDs(), nil
}

func (r *quizHistoryRepository) load(ctx context.Context, db bun.IDB, userID string) (*models.QuizHistory, error) {
	h := new(models.QuizHistory)
	err := db.NewSelect().
		Model(h).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return h, err
}

// Append adds questionID to the history. Appending an id already present is a no-op.
func (r *quizHistoryRepository) Append(ctx context.Context, userID string, questionID int64) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		h, err := r.load(ctx, tx, userID)
		if err != nil {
			return err
		}
		ids := h.IDs()
		if slices.Contains(ids, questionID) {
			return nil
		}
		return r.save(ctx, tx, userID, append(ids, questionID))
	})
	if err != nil {
		return database.Classify("append quiz history", err)
	}
	return nil
}

func (r *quizHistoryRepository) Replace(ctx context.Context, userID string, questionIDs []int64) error {
	if err := r.save(ctx, r.db, userID, questionIDs); err != nil {
		return database.Classify("replace quiz history", err)
	}
	return nil
}

func (r *quizHistoryRepository) save(ctx context.Context, db bun.IDB, userID string, ids []int64) error {
	h := &models.QuizHistory{UserID: userID}
	h.SetIDs(ids)
	_, err := db.NewInsert().
		Model(h).
		On("CONFLICT (user_id) DO UPDATE").
		Set("asked_ids = EXCLUDED.asked_ids").
		Exec(ctx)
	return err
}
