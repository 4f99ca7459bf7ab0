package quiz

import (
	"context"
	"time"

	"github.com/chessquiz/quizbot/internal/gateways/database/models"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

// ActiveQuizRepository stores the single pending question slot of each player.
type ActiveQuizRepository interface {
	// Get returns nil when the player has no pending question.
	Get(ctx context.Context, userID string) (*models.ActiveQuiz, error)
	// Insert stores the slot unless one already exists and reports whether it did.
	Insert(ctx context.Context, slot *models.ActiveQuiz) (bool, error)
	// Delete removes the slot and reports whether one existed.
	Delete(ctx context.Context, userID string) (bool, error)
}

// CooldownRepository stores when each player last answered.
type CooldownRepository interface {
	// Get returns nil when the player never answered.
	Get(ctx context.Context, userID string) (*models.QuizCooldown, error)
	Touch(ctx context.Context, userID string, at time.Time) error
}

// HistoryRepository stores the question ids already shown to each player.
type HistoryRepository interface {
	Get(ctx context.Context, userID string) ([]int64, error)
	Append(ctx context.Context, userID string, questionID int64) error
	Replace(ctx context.Context, userID string, questionIDs []int64) error
}

// Rewarder credits quiz rewards to the ledger.
type Rewarder interface {
	Credit(ctx context.Context, userID string, amount int64) error
}
