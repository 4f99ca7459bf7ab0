package cmd

import (
	"log/slog"

	"github.com/chessquiz/quizbot/chessbot/logger"
	"github.com/spf13/cobra"
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables and indexes, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd.Context())

		db, err := openDatabase(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		logger.LogSystem("Migration completed successfully",
			slog.String("driver", db.Driver()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCMD)
}
