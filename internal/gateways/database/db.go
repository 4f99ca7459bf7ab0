package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/chessquiz/quizbot/internal/domain/logger"
	"github.com/chessquiz/quizbot/internal/gateways/database/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSQLitePath    = "data.sqlite"
	defaultBusyTimeout   = 5000
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DBConfig struct {
	Driver         string `toml:"driver"`
	Path           string `toml:"path"`
	BusyTimeoutMS  int    `toml:"busy_timeout_ms"`
	QueryTimeoutMS int    `toml:"query_timeout_ms"`

	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
	SSLMode  string `toml:"ssl_mode"`
}

// QueryTimeout bounds a single storage call. It defaults to five seconds.
func (c DBConfig) QueryTimeout() time.Duration {
	if c.QueryTimeoutMS <= 0 {
		return defaultConnTimeout
	}
	return time.Duration(c.QueryTimeoutMS) * time.Millisecond
}

type DB struct {
	driver string
	path   string
	pool   *pgxpool.Pool
	bunDB  *bun.DB
}

// New opens the configured store. SQLite is the default.
func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	var (
		db  *DB
		err error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverSQLite:
		db, err = openSQLite(ctx, cfg)
	case DriverPostgres:
		db, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	db.bunDB.AddQueryHook(logger.NewQueryHook())
	return db, nil
}

// openSQLite opens a WAL-journaled database. A single connection gives the process one writer;
// busy_timeout bounds the wait when another process holds the lock.
func openSQLite(ctx context.Context, cfg DBConfig) (*DB, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		path = defaultSQLitePath
	}
	busy := cfg.BusyTimeoutMS
	if busy <= 0 {
		busy = defaultBusyTimeout
	}
	path = filepath.Clean(path)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", path, busy)

	sqlDB, err := sql.Open(DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	return &DB{
		driver: DriverSQLite,
		path:   path,
		bunDB:  bun.NewDB(sqlDB, sqlitedialect.New()),
	}, nil
}

func openPostgres(ctx context.Context, cfg DBConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	for i := 0; i < defaultMaxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(buildDSN(cfg))))
	if cfg.PoolSize > 0 {
		sqlDB.SetMaxOpenConns(cfg.PoolSize)
	}

	return &DB{
		driver: DriverPostgres,
		pool:   pool,
		bunDB:  bun.NewDB(sqlDB, pgdialect.New()),
	}, nil
}

func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func buildDSN(cfg DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, sslMode)
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Driver() string {
	return db.driver
}

// Ping checks that the store answers within the context deadline.
func (db *DB) Ping(ctx context.Context) error {
	if db.pool != nil {
		return Classify("ping", db.pool.Ping(ctx))
	}
	return Classify("ping", db.bunDB.PingContext(ctx))
}

func (db *DB) Close() {
	if db.bunDB != nil {
		db.bunDB.Close()
	}
	if db.pool != nil {
		db.pool.Close()
	}
}

// InitializeSchema creates all tables and indexes if they do not exist yet.
func (db *DB) InitializeSchema(ctx context.Context) error {
	tables := []interface{}{
		(*models.Account)(nil),
		(*models.ActiveQuiz)(nil),
		(*models.QuizCooldown)(nil),
		(*models.QuizHistory)(nil),
		(*models.GuildMember)(nil),
	}

	for _, model := range tables {
		_, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_accounts_coins ON accounts(coins DESC);",
		"CREATE INDEX IF NOT EXISTS idx_guild_members_guild ON guild_members(guild_id);",
	}
	for _, stmt := range indexes {
		if _, err := db.bunDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	slog.Info("Database schema ready",
		slog.String("type", "db"),
		slog.String("driver", db.driver),
		slog.Int("tables", len(tables)))
	return nil
}

// Snapshot writes a consistent copy of the SQLite database to dest.
func (db *DB) Snapshot(ctx context.Context, dest string) error {
	if db.driver != DriverSQLite {
		return fmt.Errorf("snapshots are only supported for sqlite, driver is %s", db.driver)
	}
	if _, err := db.bunDB.ExecContext(ctx, "VACUUM INTO ?", dest); err != nil {
		return Classify("snapshot", err)
	}
	return nil
}
