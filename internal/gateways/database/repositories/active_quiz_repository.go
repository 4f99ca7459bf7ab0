package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/chessquiz/quizbot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type ActiveQuizRepository interface {
	Get(ctx context.Context, userID string) (*models.ActiveQuiz, error)
	Insert(ctx context.Context, slot *models.ActiveQuiz) (bool, error)
	Delete(ctx context.Context, userID string) (bool, error)
}

type activeQuizRepository struct {
	db *bun.DB
}

func NewActiveQuizRepository(db *bun.DB) ActiveQuizRepository {
	return &activeQuizRepository{db: db}
}

func (r *activeQuizRepository) Get(ctx context.Context, userID string) (*models.ActiveQuiz, error) {
	slot := new(models.ActiveQuiz)
	err := r.db.NewSelect().
		Model(slot).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.Classify("get active quiz", err)
	}
	return slot, nil
}

// Insert stores slot unless the user already holds one. The primary key decides the race.
func (r *activeQuizRepository) Insert(ctx context.Context, slot *models.ActiveQuiz) (bool, error) {
	res, err := r.db.NewInsert().
		Model(slot).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, database.Classify("insert active quiz", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Classify("insert active quiz", err)
	}
	return n == 1, nil
}

func (r *activeQuizRepository) Delete(ctx context.Context, userID string) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.ActiveQuiz)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return false, database.Classify("delete active quiz", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Classify("delete active quiz", err)
	}
	return n > 0, nil
}
