package shop

import "errors"

var (
	ErrUnknownEntitlement = errors.New("unknown entitlement")
	ErrAlreadyOwned       = errors.New("entitlement already owned")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrRoleUnavailable    = errors.New("role not available in this guild")
	ErrGuildRequired      = errors.New("shop is only available in a guild")
)
