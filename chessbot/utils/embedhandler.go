package utils

import (
	"fmt"

	"github.com/chessquiz/quizbot/chessbot/config"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
)

// ResponseHandler provides standardized response methods for commands and components
type ResponseHandler struct{}

var EH = &ResponseHandler{}

// getErrorPrefix returns the emoji prefix for an error type
func getErrorPrefix(errorType ErrorType) string {
	switch errorType {
	case UserError:
		return "⚠️"
	case SystemError:
		return "🔧"
	case NotFoundError:
		return "🔍"
	case PermissionError:
		return "🚫"
	case BusinessLogicError:
		return "⏰"
	default:
		return "❌"
	}
}

func getErrorColor(errorType ErrorType) int {
	switch errorType {
	case UserError, BusinessLogicError:
		return config.WarningColor
	case NotFoundError:
		return config.InfoColor
	default:
		return config.ErrorColor
	}
}

// ErrorEmbed renders err the way users see it.
func ErrorEmbed(err error) discord.Embed {
	errorType, message := Classify(err)
	return discord.Embed{
		Description: getErrorPrefix(errorType) + " " + message,
		Color:       getErrorColor(errorType),
	}
}

// Reply edits the deferred response of a command.
func (h *ResponseHandler) Reply(event *handler.CommandEvent, embeds []discord.Embed, components ...discord.ContainerComponent) error {
	update := discord.MessageUpdate{Embeds: &embeds}
	if len(components) > 0 {
		update.Components = &components
	}
	_, err := event.UpdateInteractionResponse(update)
	return err
}

func (h *ResponseHandler) CreateErrorEmbed(event *handler.CommandEvent, message string) error {
	return h.Reply(event, []discord.Embed{{
		Description: message,
		Color:       config.ErrorColor,
	}})
}

func (h *ResponseHandler) CreateSuccessEmbed(event *handler.CommandEvent, message string) error {
	return h.Reply(event, []discord.Embed{{
		Description: message,
		Color:       config.SuccessColor,
	}})
}

// HandleError answers a deferred command with the classified error. Business outcomes such as
// a cooldown replace the public placeholder; failures remove it and follow up ephemerally.
func (h *ResponseHandler) HandleError(event *handler.CommandEvent, err error) error {
	embed := ErrorEmbed(err)
	if IsExpected(err) {
		return h.Reply(event, []discord.Embed{embed})
	}
	if derr := event.DeleteInteractionResponse(); derr != nil {
		return derr
	}
	_, ferr := event.CreateFollowupMessage(discord.MessageCreate{
		Embeds: []discord.Embed{embed},
		Flags:  discord.MessageFlagEphemeral,
	})
	return ferr
}

// DeferredResponder lets helpers that expect to send the first response, such as the
// paginator, edit the deferred response instead.
func DeferredResponder(event *handler.CommandEvent) events.InteractionResponderFunc {
	return func(_ discord.InteractionResponseType, data discord.InteractionResponseData, opts ...rest.RequestOpt) error {
		var msg discord.MessageCreate
		switch d := data.(type) {
		case discord.MessageCreate:
			msg = d
		case *discord.MessageCreate:
			msg = *d
		default:
			return fmt.Errorf("unsupported deferred response %T", data)
		}
		_, err := event.UpdateInteractionResponse(discord.MessageUpdate{
			Content:    &msg.Content,
			Embeds:     &msg.Embeds,
			Components: &msg.Components,
		}, opts...)
		return err
	}
}

// FollowupError sends the classified error as an ephemeral followup to a deferred component interaction.
func (h *ResponseHandler) FollowupError(event *events.ComponentInteractionCreate, err error) error {
	_, ferr := event.Client().Rest().CreateFollowupMessage(event.ApplicationID(), event.Token(), discord.MessageCreate{
		Embeds: []discord.Embed{ErrorEmbed(err)},
		Flags:  discord.MessageFlagEphemeral,
	})
	return ferr
}

// FollowupSuccess sends an ephemeral confirmation to a deferred component interaction.
func (h *ResponseHandler) FollowupSuccess(event *events.ComponentInteractionCreate, message string) error {
	_, err := event.Client().Rest().CreateFollowupMessage(event.ApplicationID(), event.Token(), discord.MessageCreate{
		Content: "✅ " + message,
		Flags:   discord.MessageFlagEphemeral,
	})
	return err
}
