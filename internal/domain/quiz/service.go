package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/chessquiz/quizbot/internal/gateways/database/models"
)

const DefaultCooldown = 90 * time.Minute

type Service struct {
	catalog   *Catalog
	slots     ActiveQuizRepository
	cooldowns CooldownRepository
	history   HistoryRepository
	rewards   Rewarder
	cooldown  time.Duration
	now       func() time.Time
	pick      func(n int) int
}

type Option func(*Service)

// WithCooldown overrides the time a player waits after answering.
func WithCooldown(d time.Duration) Option {
	return func(s *Service) { s.cooldown = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPicker overrides the random index source. pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) { s.pick = pick }
}

func NewService(catalog *Catalog, slots ActiveQuizRepository, cooldowns CooldownRepository, history HistoryRepository, rewards Rewarder, opts ...Option) *Service {
	s := &Service{
		catalog:   catalog,
		slots:     slots,
		cooldowns: cooldowns,
		history:   history,
		rewards:   rewards,
		cooldown:  DefaultCooldown,
		now:       time.Now,
		pick:      rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

func (s *Service) Cooldown() time.Duration {
	return s.cooldown
}

// Issue hands the player a new question.
func (s *Service) Issue(ctx context.Context, userID string) (*Issued, error) {
	now := s.now()

	cd, err := s.cooldowns.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz cooldown: %w", err)
	}
	if cd != nil {
		if elapsed := now.Sub(cd.LastUsed()); elapsed < s.cooldown {
			return nil, &CooldownError{Remaining: s.cooldown - elapsed}
		}
	}

	slot, err := s.slots.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active quiz: %w", err)
	}
	if slot != nil {
		return nil, ErrQuestionPending
	}

	q, reset, err := s.selectQuestion(ctx, userID)
	if err != nil {
		return nil, err
	}

	inserted, err := s.slots.Insert(ctx, &models.ActiveQuiz{
		UserID:     userID,
		QuestionID: q.ID,
		AskedAt:    now.UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store active quiz: %w", err)
	}
	if !inserted {
		// Another request for the same player won the slot between the check and the insert.
		return nil, ErrQuestionPending
	}

	slog.Debug("Quiz question issued",
		slog.String("type", "quiz"),
		slog.String("user_id", userID),
		slog.Int64("question_id", q.ID),
		slog.Bool("history_reset", reset))

	return &Issued{
		QuestionID:   q.ID,
		Prompt:       q.Prompt,
		Reward:       q.Reward,
		AskedAt:      now,
		HistoryReset: reset,
	}, nil
}

// selectQuestion picks uniformly among questions the player has not seen yet. Once every
// question has been seen the history starts over, seeded with the question being issued.
func (s *Service) selectQuestion(ctx context.Context, userID string) (Question, bool, error) {
	seen, err := s.history.Get(ctx, userID)
	if err != nil {
		return Question{}, false, fmt.Errorf("failed to get quiz history: %w", err)
	}

	if remaining := s.catalog.remaining(seen); len(remaining) > 0 {
		return remaining[s.pick(len(remaining))], false, nil
	}

	all := s.catalog.All()
	q := all[s.pick(len(all))]
	if err := s.history.Replace(ctx, userID, []int64{q.ID}); err != nil {
		return Question{}, false, fmt.Errorf("failed to reset quiz history: %w", err)
	}
	return q, true, nil
}

// Submit checks the player's answer to their pending question. The slot is cleared and the
// cooldown restarted whether or not the answer is correct, unless a correct answer could not be
// credited.
func (s *Service) Submit(ctx context.Context, userID, text string) (*Outcome, error) {
	slot, err := s.slots.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active quiz: %w", err)
	}
	if slot == nil {
		return nil, ErrNoActiveQuestion
	}

	deleted, err := s.slots.Delete(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear active quiz: %w", err)
	}
	if !deleted {
		// A concurrent submission already consumed the slot.
		return nil, ErrNoActiveQuestion
	}

	q, ok := s.catalog.ByID(slot.QuestionID)
	if !ok {
		slog.Warn("Active quiz references unknown question",
			slog.String("type", "quiz"),
			slog.String("user_id", userID),
			slog.Int64("question_id", slot.QuestionID))
		return nil, ErrNoActiveQuestion
	}

	correct := q.Accepts(text)
	outcome := &Outcome{
		QuestionID: q.ID,
		Correct:    correct,
		Answer:     q.Answer,
	}

	// The slot is gone at this point, so later failures are logged and the outcome is still
	// returned. A lost reward leaves the cooldown unstarted.
	if correct {
		if err := s.rewards.Credit(ctx, userID, q.Reward); err != nil {
			slog.Error("Failed to credit quiz reward",
				slog.String("type", "quiz"),
				slog.String("user_id", userID),
				slog.Int64("question_id", q.ID),
				slog.Int64("reward", q.Reward),
				slog.Any("error", err))
			outcome.RewardLost = true
		} else {
			outcome.Reward = q.Reward
		}
	}

	if !outcome.RewardLost {
		if err := s.cooldowns.Touch(ctx, userID, s.now()); err != nil {
			slog.Error("Failed to stamp quiz cooldown",
				slog.String("type", "quiz"),
				slog.String("user_id", userID),
				slog.Any("error", err))
		}
	}
	if err := s.history.Append(ctx, userID, q.ID); err != nil {
		slog.Error("Failed to record quiz history",
			slog.String("type", "quiz"),
			slog.String("user_id", userID),
			slog.Int64("question_id", q.ID),
			slog.Any("error", err))
	}

	slog.Debug("Quiz answer submitted",
		slog.String("type", "quiz"),
		slog.String("user_id", userID),
		slog.Int64("question_id", q.ID),
		slog.Bool("correct", correct))

	return outcome, nil
}
