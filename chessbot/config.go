package chessbot

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/chessquiz/quizbot/internal/domain/ledger"
	"github.com/chessquiz/quizbot/internal/domain/quiz"
	"github.com/chessquiz/quizbot/internal/gateways/database"
	"github.com/chessquiz/quizbot/internal/gateways/database/repositories"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
)

const DefaultTokenFile = "token.txt"

var ErrEmptyToken = errors.New("bot token is empty")

type Config struct {
	Log     LogConfig         `toml:"log"`
	Bot     BotConfig         `toml:"bot"`
	DB      database.DBConfig `toml:"db"`
	Quiz    QuizConfig        `toml:"quiz"`
	Economy EconomyConfig     `toml:"economy"`
	Cache   CacheConfig       `toml:"cache"`
	Backup  BackupConfig      `toml:"backup"`
}

type LogConfig struct {
	Level   slog.Level `toml:"level"`
	NoColor bool       `toml:"no_color"`
}

type BotConfig struct {
	TokenFile    string         `toml:"token_file"`
	DevGuilds    []snowflake.ID `toml:"dev_guilds"`
	SyncCommands bool           `toml:"sync_commands"`

	Token string `toml:"-"`
}

type QuizConfig struct {
	CooldownMinutes int `toml:"cooldown_minutes"`
}

func (c QuizConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMinutes) * time.Minute
}

type EconomyConfig struct {
	DailyReward          int64 `toml:"daily_reward"`
	DailyCooldownHours   int   `toml:"daily_cooldown_hours"`
	AllowNegativeBalance bool  `toml:"allow_negative_balance"`
	LeaderboardSize      int   `toml:"leaderboard_size"`
}

func (c EconomyConfig) DailyCooldown() time.Duration {
	return time.Duration(c.DailyCooldownHours) * time.Hour
}

type CacheConfig struct {
	MembershipSize int `toml:"membership_size"`
}

type BackupConfig struct {
	Enabled       bool   `toml:"enabled"`
	Key           string `toml:"key"`
	Secret        string `toml:"secret"`
	Region        string `toml:"region"`
	Endpoint      string `toml:"endpoint"`
	Bucket        string `toml:"bucket"`
	Prefix        string `toml:"prefix"`
	IntervalHours int    `toml:"interval_hours"`
}

func (c BackupConfig) Interval() time.Duration {
	return time.Duration(c.IntervalHours) * time.Hour
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: slog.LevelInfo},
		Bot: BotConfig{TokenFile: DefaultTokenFile},
		DB: database.DBConfig{
			Driver:         database.DriverSQLite,
			Path:           "data.sqlite",
			BusyTimeoutMS:  5000,
			QueryTimeoutMS: 5000,
		},
		Quiz: QuizConfig{CooldownMinutes: int(quiz.DefaultCooldown / time.Minute)},
		Economy: EconomyConfig{
			DailyReward:          ledger.DefaultDailyReward,
			DailyCooldownHours:   int(ledger.DefaultDailyCooldown / time.Hour),
			AllowNegativeBalance: true,
			LeaderboardSize:      ledger.DefaultLeaderboardSize,
		},
		Cache:  CacheConfig{MembershipSize: repositories.DefaultMembershipCacheSize},
		Backup: BackupConfig{Region: "us-east-1", Prefix: "backups/", IntervalHours: 24},
	}
}

// LoadConfig reads a TOML file over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Config file not found, using defaults",
			slog.String("type", "sys"),
			slog.String("path", path))
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Quiz.CooldownMinutes < 0:
		return fmt.Errorf("quiz.cooldown_minutes must not be negative")
	case c.Economy.DailyReward < 0:
		return fmt.Errorf("economy.daily_reward must not be negative")
	case c.Economy.DailyCooldownHours < 0:
		return fmt.Errorf("economy.daily_cooldown_hours must not be negative")
	case c.Backup.Enabled && c.Backup.Bucket == "":
		return fmt.Errorf("backup.bucket is required when backups are enabled")
	case c.Backup.Enabled && c.Backup.IntervalHours <= 0:
		return fmt.Errorf("backup.interval_hours must be positive when backups are enabled")
	}
	return nil
}

// LoadToken reads the bot token from path.
func LoadToken(path string) (string, error) {
	if path == "" {
		path = DefaultTokenFile
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read token file %s: %w", path, err)
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyToken)
	}
	return token, nil
}
