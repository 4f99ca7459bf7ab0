package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
	TypeQuiz    LogType = "QUIZ"
	TypeShop    LogType = "SHOP"
)

// attributes folded into the message line instead of printed as key=value
var inlineAttrs = []string{"type", "name", "user_name", "status", "error"}

// gateway and rest chatter from disgo
var skippedMessages = []string{
	"locking buckets",
	"unlocking buckets",
	"gateway event",
	"cleaning up bucket",
	"cleaned up rate limit buckets",
	"binary message received",
	"received gateway message",
	"opening gateway connection",
	"locking gateway rate limiter",
	"unlocking gateway rate limiter",
	"sending gateway command",
	"new request",
	"new response",
	"locking rest bucket",
	"unlocking rest bucket",
	"rate limit response headers",
	"sending heartbeat",
}

type Options struct {
	Level   slog.Leveler
	Writer  io.Writer
	NoColor bool
}

// CustomHandler prints one colourised line per record, tagged with the record's log type.
type CustomHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Leveler
	color  bool
	attrs  []slog.Attr
	groups []string
}

func NewHandler(opts Options) *CustomHandler {
	h := &CustomHandler{
		mu:    &sync.Mutex{},
		out:   opts.Writer,
		level: opts.Level,
		color: !opts.NoColor,
	}
	if h.out == nil {
		h.out = os.Stdout
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	return h
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(slices.Clip(h.attrs), attrs...)
	return &clone
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(slices.Clip(h.groups), name)
	return &clone
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	if shouldSkip(r.Message) {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	message := r.Message
	if r.Level >= slog.LevelError {
		if errText := lookup(attrs, "error"); errText != "" {
			message = fmt.Sprintf("%s: %s", message, errText)
		}
	}
	if cmd, user := lookup(attrs, "name"), lookup(attrs, "user_name"); cmd != "" && user != "" {
		message = fmt.Sprintf("%s [%s by %s]", message, cmd, user)
	}
	if status := lookup(attrs, "status"); status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}

	var extra strings.Builder
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		if slices.Contains(inlineAttrs, a.Key) {
			continue
		}
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		fmt.Fprintf(&extra, " %s=%v", key, a.Value)
	}

	levelColor, levelText := levelStyle(r.Level)
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.color {
		_, err := fmt.Fprintf(h.out, "%s[ChessQuiz] [%s] [%s%s%s] [%s] %s%s%s\n",
			colorWhite, ts.Format("15:04:05"), levelColor, levelText, colorWhite,
			logType(attrs), message, extra.String(), colorReset)
		return err
	}
	_, err := fmt.Fprintf(h.out, "[ChessQuiz] [%s] [%s] [%s] %s%s\n",
		ts.Format("15:04:05"), levelText, logType(attrs), message, extra.String())
	return err
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

func shouldSkip(msg string) bool {
	lower := strings.ToLower(msg)
	for _, skip := range skippedMessages {
		if strings.Contains(lower, skip) {
			return true
		}
	}
	return false
}

func lookup(attrs []slog.Attr, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value.String()
		}
	}
	return ""
}

func logType(attrs []slog.Attr) LogType {
	switch lookup(attrs, "type") {
	case "cmd":
		return TypeCommand
	case "db":
		return TypeDB
	case "error":
		return TypeError
	case "quiz":
		return TypeQuiz
	case "shop", "ledger":
		return TypeShop
	default:
		return TypeSystem
	}
}
