package repositories

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/chessquiz/quizbot/internal/gateways/database/models"
)

func assertOrder(t *testing.T, label string, got []*models.Account, want ...string) {
	t.Helper()
	ids := make([]string, 0, len(got))
	for _, a := range got {
		ids = append(ids, a.UserID)
	}
	if !slices.Equal(ids, want) {
		t.Fatalf("%s order = %v, want %v", label, ids, want)
	}
}

func TestActiveQuizRepository_SingleSlot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewActiveQuizRepository(openTempStore(t))

	slot, err := repo.Get(ctx, "u1")
	if err != nil || slot != nil {
		t.Fatalf("get empty = %v, %v; want nil, nil", slot, err)
	}

	now := time.UnixMilli(time.Now().UnixMilli())
	ok, err := repo.Insert(ctx, &models.ActiveQuiz{UserID: "u1", QuestionID: 7, AskedAt: now.UnixMilli()})
	if err != nil || !ok {
		t.Fatalf("first insert = %v, %v; want true, nil", ok, err)
	}
	ok, err = repo.Insert(ctx, &models.ActiveQuiz{UserID: "u1", QuestionID: 8, AskedAt: now.UnixMilli()})
	if err != nil || ok {
		t.Fatalf("second insert = %v, %v; want false, nil", ok, err)
	}

	slot, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if slot.QuestionID != 7 || !slot.Asked().Equal(now) {
		t.Fatalf("slot = %+v, want question 7 asked at %v", slot, now)
	}

	deleted, err := repo.Delete(ctx, "u1")
	if err != nil || !deleted {
		t.Fatalf("delete = %v, %v; want true, nil", deleted, err)
	}
	deleted, err = repo.Delete(ctx, "u1")
	if err != nil || deleted {
		t.Fatalf("second delete = %v, %v; want false, nil", deleted, err)
	}
}

func TestQuizCooldownRepository_Touch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewQuizCooldownRepository(openTempStore(t))

	cd, err := repo.Get(ctx, "u1")
	if err != nil || cd != nil {
		t.Fatalf("get empty = %v, %v; want nil, nil", cd, err)
	}

	first := time.UnixMilli(1_700_000_000_000)
	second := first.Add(2 * time.Hour)
	for _, at := range []time.Time{first, second} {
		if err := repo.Touch(ctx, "u1", at); err != nil {
			t.Fatalf("touch: %v", err)
		}
	}

	cd, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !cd.LastUsed().Equal(second) {
		t.Fatalf("last used = %v, want %v", cd.LastUsed(), second)
	}
}

func TestQuizHistoryRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewQuizHistoryRepository(openTempStore(t))

	ids, err := repo.Get(ctx, "u1")
	if err != nil || len(ids) != 0 {
		t.Fatalf("get empty = %v, %v; want empty, nil", ids, err)
	}

	for _, id := range []int64{3, 1, 3, 2} {
		if err := repo.Append(ctx, "u1", id); err != nil {
			t.Fatalf("append %d: %v", id, err)
		}
	}
	ids, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !slices.Equal(ids, []int64{3, 1, 2}) {
		t.Fatalf("history = %v, want [3 1 2]", ids)
	}

	if err := repo.Replace(ctx, "u1", []int64{9}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	ids, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !slices.Equal(ids, []int64{9}) {
		t.Fatalf("history = %v, want [9]", ids)
	}
}

func TestGuildMemberRepository_Cached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openTempStore(t)
	repo, err := NewCachedGuildMemberRepository(NewGuildMemberRepository(db), 2)
	if err != nil {
		t.Fatalf("new cached repo: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.Observe(ctx, "g1", "u1"); err != nil {
			t.Fatalf("observe: %v", err)
		}
	}

	ok, err := repo.IsMember(ctx, "g1", "u1")
	if err != nil || !ok {
		t.Fatalf("is member = %v, %v; want true, nil", ok, err)
	}
	ok, err = repo.IsMember(ctx, "g1", "u2")
	if err != nil || ok {
		t.Fatalf("stranger is member = %v, %v; want false, nil", ok, err)
	}

	// the underlying table holds the row even after the cache forgets it
	uncached := NewGuildMemberRepository(db)
	ok, err = uncached.IsMember(ctx, "g1", "u1")
	if err != nil || !ok {
		t.Fatalf("persisted member = %v, %v; want true, nil", ok, err)
	}
}
