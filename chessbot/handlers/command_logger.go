package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/chessquiz/quizbot/chessbot/utils"
	"github.com/disgoorg/disgo/handler"
)

// MemberObserver records that a user was seen in a guild. Used for server-scoped leaderboards.
type MemberObserver interface {
	ObserveMember(ctx context.Context, guildID, userID string)
}

// ErrorRenderer turns a handler error into a reply.
type ErrorRenderer func(e *handler.CommandEvent, err error) error

// Wrapper decorates command handlers with membership tracking, error rendering and logging.
type Wrapper struct {
	Members MemberObserver
	Render  ErrorRenderer
	Timeout time.Duration
	Slow    time.Duration
}

func NewWrapper(members MemberObserver) *Wrapper {
	return &Wrapper{
		Members: members,
		Render:  utils.EH.HandleError,
		Timeout: config.CommandExecutionTimeout,
		Slow:    config.SlowCommandThreshold,
	}
}

// WrapWithLogging wraps a command handler with logging functionality.
// The response is deferred before the handler runs, so handlers edit it with utils.EH.Reply.
// A handler returns an error only before it has replied; the wrapper renders it.
func (w *Wrapper) WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()
		guildID := utils.GuildIDString(e.GuildID())

		slog.Info("Command started",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
			slog.String("guild_id", guildID),
			slog.String("channel_id", e.ChannelID().String()),
		)

		if err := e.DeferCreateMessage(false); err != nil {
			slog.Error("Failed to defer command",
				slog.String("type", "cmd"),
				slog.String("name", name),
				slog.String("user_id", e.User().ID.String()),
				slog.Any("error", err),
			)
			return err
		}

		w.observe(guildID, e.User().ID.String())

		done := make(chan error, 1)
		go func() {
			done <- h(e)
		}()

		select {
		case err := <-done:
			duration := time.Since(start)
			attrs := []any{
				slog.String("type", "cmd"),
				slog.String("name", name),
				slog.String("user_id", e.User().ID.String()),
				slog.String("user_name", e.User().Username),
				slog.Duration("took", duration),
			}

			if err != nil {
				if utils.IsExpected(err) {
					slog.Info("Command rejected", append(attrs,
						slog.String("reason", err.Error()),
						slog.String("status", "rejected"),
					)...)
				} else {
					slog.Error("Command failed", append(attrs,
						slog.Any("error", err),
						slog.String("status", "failed"),
					)...)
				}
				if w.Render == nil {
					return err
				}
				if rerr := w.Render(e, err); rerr != nil {
					slog.Error("Failed to render command error", append(attrs,
						slog.String("status", "failed"),
						slog.Any("error", rerr),
					)...)
				}
				return nil
			}

			if duration > w.Slow {
				slog.Warn("Command executed slowly", append(attrs,
					slog.String("status", "slow"),
				)...)
			} else {
				slog.Info("Command completed", append(attrs,
					slog.String("status", "success"),
				)...)
			}
			return nil

		case <-time.After(w.Timeout):
			slog.Error("Command timed out",
				slog.String("type", "cmd"),
				slog.String("name", name),
				slog.String("user_id", e.User().ID.String()),
				slog.String("user_name", e.User().Username),
				slog.String("status", "timeout"),
				slog.Duration("timeout", w.Timeout),
			)
			return fmt.Errorf("command timed out after %s", w.Timeout)
		}
	}
}

// observe records membership in the background so a slow store never holds up the reply.
func (w *Wrapper) observe(guildID, userID string) {
	if guildID == "" || w.Members == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.MembershipTimeout)
		defer cancel()
		w.Members.ObserveMember(ctx, guildID, userID)
	}()
}

// WrapComponentWithLogging wraps a component handler with logging functionality.
// Component handlers reply on their own, so errors are only logged here.
func (w *Wrapper) WrapComponentWithLogging(name string, h handler.ComponentHandler) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		start := time.Now()

		slog.Info("Component interaction started",
			slog.String("type", "component"),
			slog.String("name", name),
			slog.String("custom_id", e.Data.CustomID()),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
			slog.String("guild_id", utils.GuildIDString(e.GuildID())),
		)

		done := make(chan error, 1)
		go func() {
			done <- h(e)
		}()

		select {
		case err := <-done:
			duration := time.Since(start)
			attrs := []any{
				slog.String("type", "component"),
				slog.String("name", name),
				slog.String("user_id", e.User().ID.String()),
				slog.String("user_name", e.User().Username),
				slog.Duration("took", duration),
			}

			switch {
			case err != nil:
				slog.Error("Component interaction failed", append(attrs,
					slog.Any("error", err),
					slog.String("status", "failed"),
				)...)
			case duration > w.Slow:
				slog.Warn("Component interaction executed slowly", append(attrs,
					slog.String("status", "slow"),
				)...)
			default:
				slog.Info("Component interaction completed", append(attrs,
					slog.String("status", "success"),
				)...)
			}
			return err

		case <-time.After(w.Timeout):
			slog.Error("Component interaction timed out",
				slog.String("type", "component"),
				slog.String("name", name),
				slog.String("user_id", e.User().ID.String()),
				slog.String("status", "timeout"),
				slog.Duration("timeout", w.Timeout),
			)
			return fmt.Errorf("component interaction timed out after %s", w.Timeout)
		}
	}
}
