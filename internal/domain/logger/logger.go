package logger

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
)

// SlowQueryThreshold promotes a query log line from debug to warn.
const SlowQueryThreshold = 250 * time.Millisecond

type QueryLogger struct {
	Operation string
	Query     string
	StartTime time.Time
}

func NewQueryLogger(operation, query string) *QueryLogger {
	return &QueryLogger{
		Operation: operation,
		Query:     query,
		StartTime: time.Now(),
	}
}

func (l *QueryLogger) Log(err error, rowsAffected int64) {
	duration := time.Since(l.StartTime)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", l.Operation),
			slog.String("query", l.Query),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return
	}

	level := slog.LevelDebug
	if duration >= SlowQueryThreshold {
		level = slog.LevelWarn
	}
	slog.Log(context.Background(), level, "Query executed",
		slog.String("type", "db"),
		slog.String("operation", l.Operation),
		slog.String("query", l.Query),
		slog.Duration("took", duration),
		slog.Int64("affected_rows", rowsAffected),
	)
}

// QueryHook feeds every bun query through a QueryLogger.
type QueryHook struct{}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook() *QueryHook {
	return &QueryHook{}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	l := &QueryLogger{
		Operation: event.Operation(),
		Query:     event.Query,
		StartTime: event.StartTime,
	}

	var affected int64
	if event.Err == nil && event.Result != nil {
		if n, err := event.Result.RowsAffected(); err == nil {
			affected = n
		}
	}
	l.Log(event.Err, affected)
}
