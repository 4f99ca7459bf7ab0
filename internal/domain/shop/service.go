package shop

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// RoleService talks to the chat platform about guild roles.
type RoleService interface {
	MemberRoles(ctx context.Context, guildID, userID string) ([]string, error)
	RoleExists(ctx context.Context, guildID, roleID string) (bool, error)
	GrantRole(ctx context.Context, guildID, userID, roleID string) error
}

// Ledger is the slice of the coin ledger the shop needs.
type Ledger interface {
	Balance(ctx context.Context, userID string) (int64, error)
	TryDebit(ctx context.Context, userID string, amount int64) (bool, error)
	Credit(ctx context.Context, userID string, amount int64) error
}

type Service struct {
	catalog *Catalog
	ledger  Ledger
	roles   RoleService
}

func NewService(catalog *Catalog, ledger Ledger, roles RoleService) *Service {
	return &Service{catalog: catalog, ledger: ledger, roles: roles}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// View returns every entitlement with the member's ownership and affordability.
func (s *Service) View(ctx context.Context, guildID, userID string) (*View, error) {
	if guildID == "" {
		return nil, ErrGuildRequired
	}

	var (
		balance int64
		owned   []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = s.ledger.Balance(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		owned, err = s.roles.MemberRoles(gctx, guildID, userID)
		if err != nil {
			return fmt.Errorf("failed to get member roles: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.buildView(balance, owned), nil
}

func (s *Service) buildView(balance int64, owned []string) *View {
	items := make([]Item, 0, len(s.catalog.items))
	for _, e := range s.catalog.items {
		items = append(items, Item{
			Entitlement: e,
			Owned:       slices.Contains(owned, e.RoleID),
			Affordable:  balance >= e.Price,
		})
	}
	return &View{Balance: balance, Items: items}
}

// Purchase debits the price and grants the role. The debit is a single conditional update, so
// two purchases racing on one balance cannot both succeed. A failed grant is refunded.
func (s *Service) Purchase(ctx context.Context, guildID, userID, roleID string) (*Receipt, error) {
	if guildID == "" {
		return nil, ErrGuildRequired
	}
	item, ok := s.catalog.ByRoleID(roleID)
	if !ok {
		return nil, ErrUnknownEntitlement
	}

	owned, err := s.roles.MemberRoles(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member roles: %w", err)
	}
	if slices.Contains(owned, roleID) {
		return nil, ErrAlreadyOwned
	}

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if balance < item.Price {
		return nil, ErrInsufficientFunds
	}

	exists, err := s.roles.RoleExists(ctx, guildID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up role: %w", err)
	}
	if !exists {
		return nil, ErrRoleUnavailable
	}

	debited, err := s.ledger.TryDebit(ctx, userID, item.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to debit price: %w", err)
	}
	if !debited {
		return nil, ErrInsufficientFunds
	}

	if err := s.roles.GrantRole(ctx, guildID, userID, roleID); err != nil {
		s.refund(ctx, userID, item)
		return nil, fmt.Errorf("failed to grant role: %w", err)
	}

	slog.Info("Entitlement purchased",
		slog.String("type", "shop"),
		slog.String("guild_id", guildID),
		slog.String("user_id", userID),
		slog.String("role_id", roleID),
		slog.Int64("price", item.Price))

	balance, err = s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	// role caches on the platform side lag behind the grant
	if !slices.Contains(owned, roleID) {
		owned = append(owned, roleID)
	}
	return &Receipt{Entitlement: item, View: s.buildView(balance, owned)}, nil
}

func (s *Service) refund(ctx context.Context, userID string, item Entitlement) {
	if err := s.ledger.Credit(context.WithoutCancel(ctx), userID, item.Price); err != nil {
		slog.Error("Failed to refund purchase",
			slog.String("type", "error"),
			slog.String("user_id", userID),
			slog.String("role_id", item.RoleID),
			slog.Int64("amount", item.Price),
			slog.Any("error", err))
		return
	}
	slog.Warn("Purchase refunded after failed role grant",
		slog.String("type", "shop"),
		slog.String("user_id", userID),
		slog.String("role_id", item.RoleID),
		slog.Int64("amount", item.Price))
}
