package repositories

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestAccountRepository_GetCreatesZeroAccount(t *testing.T) {
	t.Parallel()
	repo := NewAccountRepository(openTempStore(t))

	acc, err := repo.Get(context.Background(), "42")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if acc.UserID != "42" || acc.Coins != 0 || acc.LastDailyClaimAt != 0 {
		t.Fatalf("account = %+v, want fresh zero account", acc)
	}
}

func TestAccountRepository_CreditAndDebit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAccountRepository(openTempStore(t))

	if _, err := repo.Credit(ctx, "u1", 25); err != nil {
		t.Fatalf("credit: %v", err)
	}
	balance, err := repo.Credit(ctx, "u1", -10)
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if balance != 15 {
		t.Fatalf("balance = %d, want 15", balance)
	}

	balance, err = repo.Credit(ctx, "u1", -40)
	if err != nil {
		t.Fatalf("overdraw: %v", err)
	}
	if balance != -25 {
		t.Fatalf("balance = %d, want -25", balance)
	}
}

func TestAccountRepository_TryDebit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAccountRepository(openTempStore(t))

	if _, err := repo.Credit(ctx, "u1", 100); err != nil {
		t.Fatalf("credit: %v", err)
	}

	tests := []struct {
		name    string
		amount  int64
		wantOK  bool
		balance int64
	}{
		{"covered", 75, true, 25},
		{"not covered", 30, false, 25},
		{"exact", 25, true, 0},
	}
	for _, tt := range tests {
		ok, err := repo.TryDebit(ctx, "u1", tt.amount)
		if err != nil {
			t.Fatalf("%s: try debit: %v", tt.name, err)
		}
		if ok != tt.wantOK {
			t.Fatalf("%s: ok = %v, want %v", tt.name, ok, tt.wantOK)
		}
		acc, err := repo.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("%s: get: %v", tt.name, err)
		}
		if acc.Coins != tt.balance {
			t.Fatalf("%s: balance = %d, want %d", tt.name, acc.Coins, tt.balance)
		}
	}
}

func TestAccountRepository_TryDebitConcurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAccountRepository(openTempStore(t))

	if _, err := repo.Credit(ctx, "u1", 100); err != nil {
		t.Fatalf("credit: %v", err)
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.TryDebit(ctx, "u1", 75)
			if err != nil {
				t.Errorf("try debit: %v", err)
				return
			}
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("successful debits = %d, want 1", wins)
	}
	acc, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if acc.Coins != 25 {
		t.Fatalf("balance = %d, want 25", acc.Coins)
	}
}

func TestAccountRepository_DebitClamped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAccountRepository(openTempStore(t))

	if _, err := repo.Credit(ctx, "u1", 30); err != nil {
		t.Fatalf("credit: %v", err)
	}
	balance, err := repo.DebitClamped(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if balance != 20 {
		t.Fatalf("balance = %d, want 20", balance)
	}
	balance, err = repo.DebitClamped(ctx, "u1", 500)
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if balance != 0 {
		t.Fatalf("balance = %d, want 0", balance)
	}
}

func TestAccountRepository_ClaimDaily(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAccountRepository(openTempStore(t))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const day = 24 * time.Hour

	claimed, err := repo.ClaimDaily(ctx, "u1", 25, now, day)
	if err != nil || !claimed {
		t.Fatalf("first claim = %v, %v; want true, nil", claimed, err)
	}

	claimed, err = repo.ClaimDaily(ctx, "u1", 25, now.Add(23*time.Hour), day)
	if err != nil || claimed {
		t.Fatalf("early claim = %v, %v; want false, nil", claimed, err)
	}

	claimed, err = repo.ClaimDaily(ctx, "u1", 25, now.Add(day), day)
	if err != nil || !claimed {
		t.Fatalf("next day claim = %v, %v; want true, nil", claimed, err)
	}

	acc, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if acc.Coins != 50 {
		t.Fatalf("balance = %d, want 50", acc.Coins)
	}
	if !acc.LastDailyClaim().Equal(now.Add(day)) {
		t.Fatalf("last claim = %v, want %v", acc.LastDailyClaim(), now.Add(day))
	}
}

func TestAccountRepository_SetLastDailyClaimResets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAccountRepository(openTempStore(t))
	now := time.Now()

	if _, err := repo.ClaimDaily(ctx, "u1", 25, now, 24*time.Hour); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := repo.SetLastDailyClaim(ctx, "u1", time.Time{}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	claimed, err := repo.ClaimDaily(ctx, "u1", 25, now, 24*time.Hour)
	if err != nil || !claimed {
		t.Fatalf("claim after reset = %v, %v; want true, nil", claimed, err)
	}
}

func TestAccountRepository_Leaderboards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openTempStore(t)
	accounts := NewAccountRepository(db)
	members := NewGuildMemberRepository(db)

	balances := map[string]int64{"a": 50, "b": 90, "c": 50, "d": 10}
	for id, coins := range balances {
		if _, err := accounts.Credit(ctx, id, coins); err != nil {
			t.Fatalf("credit %s: %v", id, err)
		}
	}
	for _, id := range []string{"a", "c", "d"} {
		if err := members.Observe(ctx, "g1", id); err != nil {
			t.Fatalf("observe %s: %v", id, err)
		}
	}

	top, err := accounts.Top(ctx, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	assertOrder(t, "global", top, "b", "a", "c")

	guildTop, err := accounts.TopInGuild(ctx, "g1", 10)
	if err != nil {
		t.Fatalf("top in guild: %v", err)
	}
	assertOrder(t, "guild", guildTop, "a", "c", "d")

	empty, err := accounts.TopInGuild(ctx, "g2", 10)
	if err != nil {
		t.Fatalf("top in empty guild: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("empty guild returned %d rows", len(empty))
	}
}
