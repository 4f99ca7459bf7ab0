package utils

import (
	"errors"
	"fmt"

	"github.com/chessquiz/quizbot/internal/domain/quiz"
	"github.com/chessquiz/quizbot/internal/domain/shop"
)

var ErrPermissionDenied = errors.New("permission denied")

// ErrorType represents different categories of errors for consistent handling
type ErrorType int

const (
	// UserError - bad input or wrong context
	UserError ErrorType = iota
	// SystemError - storage or platform failures
	SystemError
	// NotFoundError - requested resource doesn't exist
	NotFoundError
	// PermissionError - admin only
	PermissionError
	// BusinessLogicError - cooldowns, insufficient coins, game rules
	BusinessLogicError
)

const genericFailure = "Something went wrong on our side. Please try again later."

// Classify maps an error returned by a command to what the user gets to read.
// Unknown errors get a generic apology.
func Classify(err error) (ErrorType, string) {
	var cd *quiz.CooldownError
	switch {
	case errors.As(err, &cd):
		return BusinessLogicError, fmt.Sprintf("Cooldown active. Try again in **%s**.", FormatDuration(cd.Remaining))
	case errors.Is(err, quiz.ErrCooldownActive):
		return BusinessLogicError, "Cooldown active. Try again later."
	case errors.Is(err, quiz.ErrQuestionPending):
		return BusinessLogicError, "Answer your current question first with `/answer`!"
	case errors.Is(err, quiz.ErrNoActiveQuestion):
		return UserError, "No active quiz. Use `/chessquiz`."
	case errors.Is(err, shop.ErrUnknownEntitlement):
		return NotFoundError, "Item not found."
	case errors.Is(err, shop.ErrAlreadyOwned):
		return UserError, "You already own this role."
	case errors.Is(err, shop.ErrInsufficientFunds):
		return BusinessLogicError, "Insufficient funds to buy this item."
	case errors.Is(err, shop.ErrRoleUnavailable):
		return NotFoundError, "Role not found in this server."
	case errors.Is(err, shop.ErrGuildRequired):
		return UserError, "This only works inside a server."
	case errors.Is(err, ErrPermissionDenied):
		return PermissionError, "Admins only."
	default:
		return SystemError, genericFailure
	}
}

// IsExpected reports whether err is a normal outcome the user caused, as opposed to a failure.
func IsExpected(err error) bool {
	t, _ := Classify(err)
	return t != SystemError
}
