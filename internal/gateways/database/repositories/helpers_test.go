package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/uptrace/bun"
)

func openTempStore(t *testing.T) *bun.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.New(ctx, database.DBConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "quizbot.sqlite"),
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(db.Close)

	if err := db.InitializeSchema(ctx); err != nil {
		t.Fatalf("initialize schema: %v", err)
	}
	return db.BunDB()
}
