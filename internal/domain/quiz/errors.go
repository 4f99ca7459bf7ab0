package quiz

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrCooldownActive   = errors.New("quiz cooldown active")
	ErrQuestionPending  = errors.New("question pending")
	ErrNoActiveQuestion = errors.New("no active question")
)

// CooldownError is returned by Issue while the player is still cooling down.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: %s remaining", ErrCooldownActive, e.Remaining)
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}
