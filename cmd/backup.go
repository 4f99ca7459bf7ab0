package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chessquiz/quizbot/chessbot"
	"github.com/chessquiz/quizbot/chessbot/logger"
	"github.com/chessquiz/quizbot/chessbot/services"
	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/spf13/cobra"
)

var backupCMD = &cobra.Command{
	Use:   "backup",
	Short: "Upload one database snapshot to the configured bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd.Context())
		if cfg.Backup.Bucket == "" {
			return fmt.Errorf("backup.bucket is not configured")
		}

		db, err := openDatabase(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		backups, err := newBackupService(cmd.Context(), cfg.Backup, db)
		if err != nil {
			return err
		}
		key, err := backups.Upload(cmd.Context())
		if err != nil {
			return err
		}

		logger.LogSystem("Backup completed", slog.String("key", key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCMD)
}

func newBackupService(ctx context.Context, cfg chessbot.BackupConfig, db *database.DB) (*services.BackupService, error) {
	client, err := services.NewS3Client(ctx, services.BackupOptions{
		Key:      cfg.Key,
		Secret:   cfg.Secret,
		Region:   cfg.Region,
		Endpoint: cfg.Endpoint,
		Bucket:   cfg.Bucket,
		Prefix:   cfg.Prefix,
	})
	if err != nil {
		return nil, err
	}
	return services.NewBackupService(client, db, cfg.Bucket, cfg.Prefix), nil
}
