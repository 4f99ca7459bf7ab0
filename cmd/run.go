package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/commands"
	"github.com/chessquiz/quizbot/chessbot/commands/admin"
	"github.com/chessquiz/quizbot/chessbot/commands/economy"
	"github.com/chessquiz/quizbot/chessbot/commands/quiz"
	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/chessquiz/quizbot/chessbot/handlers"
	"github.com/chessquiz/quizbot/chessbot/logger"
	"github.com/chessquiz/quizbot/chessbot/services"
	"github.com/chessquiz/quizbot/internal/domain/ledger"
	quizdomain "github.com/chessquiz/quizbot/internal/domain/quiz"
	"github.com/chessquiz/quizbot/internal/domain/shop"
	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/chessquiz/quizbot/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
)

func runBot(ctx context.Context, cfg *chessbot.Config) error {
	token, err := chessbot.LoadToken(cfg.Bot.TokenFile)
	if err != nil {
		return err
	}
	cfg.Bot.Token = token

	logger.LogSystem("Starting chess quiz bot",
		slog.String("version", version),
		slog.String("commit", commit))

	db, err := openDatabase(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	b := chessbot.New(*cfg, version, commit)
	b.DB = db
	if err := wireServices(b); err != nil {
		return err
	}

	h := handler.New()
	registerHandlers(h, b)

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		return fmt.Errorf("failed to setup bot: %w", err)
	}
	b.Shop = shop.NewService(shop.DefaultCatalog, b.Ledger,
		services.NewDiscordRoles(b.Client.Rest(), b.Client.Caches()))

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if cfg.Bot.SyncCommands {
		logger.LogSystem("Syncing commands", slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			logger.LogError("Failed to sync commands", err)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err = b.Client.OpenGateway(ctx); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}

	if cfg.Backup.Enabled {
		backups, err := newBackupService(ctx, cfg.Backup, db)
		if err != nil {
			logger.LogError("Backups disabled", err)
		} else {
			go backups.Run(ctx, cfg.Backup.Interval())
		}
	}

	logger.LogSystem("Bot is running. Press CTRL-C to exit.")
	<-ctx.Done()
	logger.LogSystem("Shutting down")
	return nil
}

func openDatabase(ctx context.Context, cfg database.DBConfig) (*database.DB, error) {
	start := time.Now()
	db, err := database.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := db.InitializeSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	logger.LogSystem("Database ready",
		slog.String("driver", db.Driver()),
		slog.Duration("took", time.Since(start)))
	return db, nil
}

// wireServices builds the storage-backed services. The shop needs a live client and is wired after setup.
func wireServices(b *chessbot.Bot) error {
	bunDB := b.DB.BunDB()

	members, err := repositories.NewCachedGuildMemberRepository(
		repositories.NewGuildMemberRepository(bunDB), b.Cfg.Cache.MembershipSize)
	if err != nil {
		return fmt.Errorf("failed to create membership cache: %w", err)
	}

	b.Ledger = ledger.NewService(repositories.NewAccountRepository(bunDB), members,
		ledger.WithDailyReward(b.Cfg.Economy.DailyReward),
		ledger.WithDailyCooldown(b.Cfg.Economy.DailyCooldown()),
		ledger.WithNegativeBalances(b.Cfg.Economy.AllowNegativeBalance),
		ledger.WithLeaderboardSize(b.Cfg.Economy.LeaderboardSize),
	)

	b.Quiz = quizdomain.NewService(quizdomain.DefaultCatalog,
		repositories.NewActiveQuizRepository(bunDB),
		repositories.NewQuizCooldownRepository(bunDB),
		repositories.NewQuizHistoryRepository(bunDB),
		b.Ledger,
		quizdomain.WithCooldown(b.Cfg.Quiz.Cooldown()),
	)
	return nil
}

func registerHandlers(h *handler.Mux, b *chessbot.Bot) {
	w := handlers.NewWrapper(b.Ledger)

	h.Command("/chessquiz", w.WrapWithLogging("chessquiz", quiz.ChessQuizHandler(b)))
	h.Command("/answer", w.WrapWithLogging("answer", quiz.AnswerHandler(b)))

	h.Command("/daily", w.WrapWithLogging("daily", economy.DailyHandler(b)))
	h.Command("/balance", w.WrapWithLogging("balance", economy.BalanceHandler(b)))
	h.Command("/leaderboard", w.WrapWithLogging("leaderboard", economy.LeaderboardHandler(b)))
	h.Command("/shop", w.WrapWithLogging("shop", economy.ShopHandler(b)))
	h.Component("/shop/buy/{role_id}", w.WrapComponentWithLogging("shop-buy", economy.ShopComponentHandler(b)))
	h.Component("/shop/close", w.WrapComponentWithLogging("shop-close", economy.ShopComponentHandler(b)))

	h.Command("/questions", w.WrapWithLogging("questions", admin.QuestionsHandler(b)))
	h.Command("/addmoney", w.WrapWithLogging("addmoney", admin.AddMoneyHandler(b)))
	h.Command("/removemoney", w.WrapWithLogging("removemoney", admin.RemoveMoneyHandler(b)))
	h.Command("/resetdaily", w.WrapWithLogging("resetdaily", admin.ResetDailyHandler(b)))
}
