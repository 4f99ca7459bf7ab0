package chessbot

import (
	"context"
	"log/slog"
	"time"

	"github.com/chessquiz/quizbot/internal/domain/ledger"
	"github.com/chessquiz/quizbot/internal/domain/quiz"
	"github.com/chessquiz/quizbot/internal/domain/shop"
	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB
	Quiz      *quiz.Service
	Ledger    *ledger.Service
	Shop      *shop.Service
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds, cache.FlagRoles)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

// QueryContext bounds the storage calls of one interaction.
func (b *Bot) QueryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), b.Cfg.DB.QueryTimeout())
}

func (b *Bot) OnReady(e *events.Ready) {
	slog.Info("Chess quiz bot is now ready",
		slog.String("type", "sys"),
		slog.String("user", e.User.Username),
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithPlayingActivity("/chessquiz"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence",
			slog.String("type", "error"),
			slog.Any("error", err))
	}
}
