package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chessquiz/quizbot/internal/domain/quiz/mock"
	"github.com/chessquiz/quizbot/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

var testCatalog = MustCatalog([]Question{
	{ID: 1, Prompt: "How many squares are on a chessboard?", Answer: "64", Reward: 5},
	{ID: 2, Prompt: "Which piece moves in an L-shape?", Answer: "Knight", Aliases: []string{"horse"}, Reward: 10},
	{ID: 3, Prompt: "Which move lets king and rook move together?", Answer: "Castling", Reward: 15},
})

type serviceMocks struct {
	slots     *mock.MockActiveQuizRepository
	cooldowns *mock.MockCooldownRepository
	history   *mock.MockHistoryRepository
	rewards   *mock.MockRewarder
}

func newTestService(t *testing.T, now time.Time) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		slots:     mock.NewMockActiveQuizRepository(ctrl),
		cooldowns: mock.NewMockCooldownRepository(ctrl),
		history:   mock.NewMockHistoryRepository(ctrl),
		rewards:   mock.NewMockRewarder(ctrl),
	}
	s := NewService(testCatalog, m.slots, m.cooldowns, m.history, m.rewards,
		WithClock(func() time.Time { return now }),
		WithPicker(func(int) int { return 0 }),
	)
	return s, m
}

func TestService_Issue(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("picks an unseen question", func(t *testing.T) {
		s, m := newTestService(t, now)
		m.cooldowns.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
		m.slots.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
		m.history.EXPECT().Get(gomock.Any(), "u1").Return([]int64{1, 3}, nil)
		m.slots.EXPECT().Insert(gomock.Any(), &models.ActiveQuiz{UserID: "u1", QuestionID: 2, AskedAt: now.UnixMilli()}).Return(true, nil)

		got, err := s.Issue(ctx, "u1")
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		if got.QuestionID != 2 || got.Reward != 10 || got.HistoryReset {
			t.Fatalf("Issue() = %+v", got)
		}
	})

	t.Run("resets an exhausted history", func(t *testing.T) {
		s, m := newTestService(t, now)
		m.cooldowns.EXPECT().Get(gomock.Any(), "u1").Return(&models.QuizCooldown{UserID: "u1", LastUsedAt: now.Add(-2 * time.Hour).UnixMilli()}, nil)
		m.slots.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
		m.history.EXPECT().Get(gomock.Any(), "u1").Return([]int64{1, 2, 3}, nil)
		m.history.EXPECT().Replace(gomock.Any(), "u1", []int64{1}).Return(nil)
		m.slots.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)

		got, err := s.Issue(ctx, "u1")
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		if got.QuestionID != 1 || !got.HistoryReset {
			t.Fatalf("Issue() = %+v, want question 1 after reset", got)
		}
	})

	t.Run("cooldown active", func(t *testing.T) {
		s, m := newTestService(t, now)
		m.cooldowns.EXPECT().Get(gomock.Any(), "u1").Return(&models.QuizCooldown{UserID: "u1", LastUsedAt: now.Add(-30 * time.Minute).UnixMilli()}, nil)

		_, err := s.Issue(ctx, "u1")
		if !errors.Is(err, ErrCooldownActive) {
			t.Fatalf("Issue() error = %v, want ErrCooldownActive", err)
		}
		var cdErr *CooldownError
		if !errors.As(err, &cdErr) || cdErr.Remaining != time.Hour {
			t.Fatalf("remaining = %v, want 1h", cdErr)
		}
	})

	t.Run("question pending", func(t *testing.T) {
		s, m := newTestService(t, now)
		m.cooldowns.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
		m.slots.EXPECT().Get(gomock.Any(), "u1").Return(&models.ActiveQuiz{UserID: "u1", QuestionID: 3}, nil)

		if _, err := s.Issue(ctx, "u1"); !errors.Is(err, ErrQuestionPending) {
			t.Fatalf("Issue() error = %v, want ErrQuestionPending", err)
		}
	})

	t.Run("concurrent issue loses the slot", func(t *testing.T) {
		s, m := newTestService(t, now)
		m.cooldowns.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
		m.slots.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
		m.history.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
		m.slots.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)

		if _, err := s.Issue(ctx, "u1"); !errors.Is(err, ErrQuestionPending) {
			t.Fatalf("Issue() error = %v, want ErrQuestionPending", err)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		s, m := newTestService(t, now)
		boom := errors.New("database is locked")
		m.cooldowns.EXPECT().Get(gomock.Any(), "u1").Return(nil, boom)

		if _, err := s.Issue(ctx, "u1"); !errors.Is(err, boom) {
			t.Fatalf("Issue() error = %v, want wrapped storage error", err)
		}
	})
}

func TestService_Submit(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()
	slot := &models.ActiveQuiz{UserID: "u1", QuestionID: 2, AskedAt: now.Add(-time.Minute).UnixMilli()}

	tests := []struct {
		name        string
		text        string
		wantCorrect bool
		wantReward  int64
	}{
		{"canonical answer", "Knight", true, 10},
		{"alias", "horse", true, 10},
		{"typo within tolerance", "knighte", true, 10},
		{"wrong answer", "bishop", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t, now)
			m.slots.EXPECT().Get(gomock.Any(), "u1").Return(slot, nil)
			m.slots.EXPECT().Delete(gomock.Any(), "u1").Return(true, nil)
			m.cooldowns.EXPECT().Touch(gomock.Any(), "u1", now).Return(nil)
			m.history.EXPECT().Append(gomock.Any(), "u1", int64(2)).Return(nil)
			if tt.wantCorrect {
				m.rewards.EXPECT().Credit(gomock.Any(), "u1", int64(10)).Return(nil)
			}

			got, err := s.Submit(ctx, "u1", tt.text)
			if err != nil {
				t.Fatalf("Submit() error = %v", err)
			}
			if got.Correct != tt.wantCorrect || got.Reward != tt.wantReward || got.Answer != "Knight" {
				t.Fatalf("Submit() = %+v", got)
			}
		})
	}
}

func TestService_SubmitWithoutQuestion(t *testing.T) {
	s, m := newTestService(t, time.Now())
	m.slots.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)

	if _, err := s.Submit(context.Background(), "u1", "64"); !errors.Is(err, ErrNoActiveQuestion) {
		t.Fatalf("Submit() error = %v, want ErrNoActiveQuestion", err)
	}
}

func TestService_SubmitRaceDoesNotDoubleCredit(t *testing.T) {
	s, m := newTestService(t, time.Now())
	m.slots.EXPECT().Get(gomock.Any(), "u1").Return(&models.ActiveQuiz{UserID: "u1", QuestionID: 1}, nil)
	// another submission already removed the slot
	m.slots.EXPECT().Delete(gomock.Any(), "u1").Return(false, nil)

	if _, err := s.Submit(context.Background(), "u1", "64"); !errors.Is(err, ErrNoActiveQuestion) {
		t.Fatalf("Submit() error = %v, want ErrNoActiveQuestion", err)
	}
}

func TestService_SubmitCreditFailureKeepsOutcome(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	s, m := newTestService(t, now)
	m.slots.EXPECT().Get(gomock.Any(), "u1").Return(&models.ActiveQuiz{UserID: "u1", QuestionID: 1}, nil)
	m.slots.EXPECT().Delete(gomock.Any(), "u1").Return(true, nil)
	m.rewards.EXPECT().Credit(gomock.Any(), "u1", int64(5)).Return(errors.New("database is locked"))
	m.history.EXPECT().Append(gomock.Any(), "u1", int64(1)).Return(nil)
	// no cooldown stamp: the player keeps the right to ask again immediately
	m.cooldowns.EXPECT().Touch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := s.Submit(context.Background(), "u1", "64")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !got.Correct || !got.RewardLost || got.Reward != 0 || got.Answer != "64" {
		t.Fatalf("Submit() = %+v, want correct outcome with lost reward", got)
	}
}

func TestService_SubmitBookkeepingFailuresStillReveal(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	s, m := newTestService(t, now)
	boom := errors.New("disk I/O error")
	m.slots.EXPECT().Get(gomock.Any(), "u1").Return(&models.ActiveQuiz{UserID: "u1", QuestionID: 2}, nil)
	m.slots.EXPECT().Delete(gomock.Any(), "u1").Return(true, nil)
	m.cooldowns.EXPECT().Touch(gomock.Any(), "u1", now).Return(boom)
	m.history.EXPECT().Append(gomock.Any(), "u1", int64(2)).Return(boom)

	got, err := s.Submit(context.Background(), "u1", "bishop")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got.Correct || got.Answer != "Knight" {
		t.Fatalf("Submit() = %+v", got)
	}
}
