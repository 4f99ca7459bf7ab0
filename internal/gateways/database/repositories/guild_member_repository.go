package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/chessquiz/quizbot/internal/gateways/database/models"
	lru "github.com/hashicorp/golang-lru"
	"github.com/uptrace/bun"
)

const DefaultMembershipCacheSize = 4096

type GuildMemberRepository interface {
	// Observe records that userID belongs to guildID. Repeated calls are no-ops.
	Observe(ctx context.Context, guildID, userID string) error
	IsMember(ctx context.Context, guildID, userID string) (bool, error)
}

type guildMemberRepository struct {
	db *bun.DB
}

func NewGuildMemberRepository(db *bun.DB) GuildMemberRepository {
	return &guildMemberRepository{db: db}
}

func (r *guildMemberRepository) Observe(ctx context.Context, guildID, userID string) error {
	_, err := r.db.NewInsert().
		Model(&models.GuildMember{GuildID: guildID, UserID: userID}).
		On("CONFLICT (guild_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return database.Classify("observe guild member", err)
	}
	return nil
}

func (r *guildMemberRepository) IsMember(ctx context.Context, guildID, userID string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.GuildMember)(nil)).
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return false, database.Classify("check guild member", err)
	}
	return exists, nil
}

// cachedGuildMemberRepository remembers recently observed pairs so repeat commands skip the insert.
type cachedGuildMemberRepository struct {
	next  GuildMemberRepository
	cache *lru.Cache
}

func NewCachedGuildMemberRepository(next GuildMemberRepository, size int) (GuildMemberRepository, error) {
	if size <= 0 {
		size = DefaultMembershipCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create membership cache: %w", err)
	}
	return &cachedGuildMemberRepository{next: next, cache: cache}, nil
}

func membershipKey(guildID, userID string) string {
	return guildID + ":" + userID
}

func (r *cachedGuildMemberRepository) Observe(ctx context.Context, guildID, userID string) error {
	key := membershipKey(guildID, userID)
	if r.cache.Contains(key) {
		return nil
	}
	if err := r.next.Observe(ctx, guildID, userID); err != nil {
		return err
	}
	r.cache.Add(key, struct{}{})
	slog.Debug("Guild member observed",
		slog.String("type", "db"),
		slog.String("guild_id", guildID),
		slog.String("user_id", userID))
	return nil
}

func (r *cachedGuildMemberRepository) IsMember(ctx context.Context, guildID, userID string) (bool, error) {
	if r.cache.Contains(membershipKey(guildID, userID)) {
		return true, nil
	}
	return r.next.IsMember(ctx, guildID, userID)
}
