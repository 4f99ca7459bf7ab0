package shop

import (
	"fmt"
	"strings"
)

// Entitlement is a purchasable cosmetic role. Ownership lives on the platform, never in our store.
type Entitlement struct {
	Name        string
	Description string
	Price       int64
	RoleID      string
}

// Item is an Entitlement as seen by one member.
type Item struct {
	Entitlement
	Owned      bool
	Affordable bool
}

type View struct {
	Balance int64
	Items   []Item
}

type Receipt struct {
	Entitlement Entitlement
	View        *View
}

const (
	buyPrefix = "/shop/buy/"
	closeID   = "/shop/close"
)

type ActionKind int

const (
	ActionBuy ActionKind = iota + 1
	ActionClose
)

type Action struct {
	Kind   ActionKind
	RoleID string
}

func BuyButtonID(roleID string) string {
	return buyPrefix + roleID
}

func CloseButtonID() string {
	return closeID
}

// IsShopComponent reports whether a component custom id belongs to the shop.
func IsShopComponent(customID string) bool {
	return customID == closeID || strings.HasPrefix(customID, buyPrefix)
}

// ParseAction decodes a shop button custom id.
func ParseAction(customID string) (Action, error) {
	switch {
	case customID == closeID:
		return Action{Kind: ActionClose}, nil
	case strings.HasPrefix(customID, buyPrefix):
		roleID := strings.TrimPrefix(customID, buyPrefix)
		if roleID == "" {
			return Action{}, fmt.Errorf("shop button %q has no role id", customID)
		}
		return Action{Kind: ActionBuy, RoleID: roleID}, nil
	default:
		return Action{}, fmt.Errorf("unknown shop button %q", customID)
	}
}
