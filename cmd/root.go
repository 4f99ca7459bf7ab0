package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/logger"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	syncCommands bool
	version      = "dev"
	commit       = "unknown"
)

var rootCmd = &cobra.Command{
	Use:          "quizbot",
	Short:        "Chess quiz and coin economy Discord bot",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := chessbot.LoadConfig(configPath)
		if err != nil {
			return err
		}
		setupLogger(cfg.Log)
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd.Context())
		if syncCommands {
			cfg.Bot.SyncCommands = true
		}
		return runBot(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
	rootCmd.Flags().BoolVar(&syncCommands, "sync-commands", false, "Whether to sync commands to discord")
}

// Execute runs the CLI and exits with status 1 on failure.
func Execute(v, c string) {
	version, commit = v, c
	setupLogger(chessbot.LogConfig{Level: slog.LevelInfo})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.LogError("Quiz bot stopped", err)
		os.Exit(1)
	}
}

func setupLogger(cfg chessbot.LogConfig) {
	slog.SetDefault(slog.New(logger.NewHandler(logger.Options{
		Level:   cfg.Level,
		NoColor: cfg.NoColor,
	})))
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *chessbot.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) *chessbot.Config {
	cfg, _ := ctx.Value(configKey{}).(*chessbot.Config)
	if cfg == nil {
		def := chessbot.DefaultConfig()
		cfg = &def
	}
	return cfg
}
