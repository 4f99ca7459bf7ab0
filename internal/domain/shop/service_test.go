package shop

import (
	"context"
	"errors"
	"testing"

	"github.com/chessquiz/quizbot/internal/domain/shop/mock"
	"go.uber.org/mock/gomock"
)

const (
	testGuild = "900"
	testUser  = "42"
)

var testCatalog = MustCatalog([]Entitlement{
	{Name: "Chess Beginner", Description: "Starter role for new players.", Price: 25, RoleID: "r-beginner"},
	{Name: "Chess Pro", Description: "Recognizes strong consistent play.", Price: 200, RoleID: "r-pro"},
})

func newMocks(t *testing.T) (*mock.MockLedger, *mock.MockRoleService) {
	ctrl := gomock.NewController(t)
	return mock.NewMockLedger(ctrl), mock.NewMockRoleService(ctrl)
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		id      string
		want    Action
		wantErr bool
	}{
		{id: "/shop/close", want: Action{Kind: ActionClose}},
		{id: "/shop/buy/1455250623510614157", want: Action{Kind: ActionBuy, RoleID: "1455250623510614157"}},
		{id: BuyButtonID("r-pro"), want: Action{Kind: ActionBuy, RoleID: "r-pro"}},
		{id: "/shop/buy/", wantErr: true},
		{id: "paginator:next", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAction(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %+v, want %+v", tt.id, got, tt.want)
		}
	}
	if IsShopComponent("paginator:next") || !IsShopComponent(CloseButtonID()) {
		t.Error("IsShopComponent misclassified a custom id")
	}
}

func TestDefaultCatalog(t *testing.T) {
	if got := len(DefaultCatalog.All()); got != 5 {
		t.Fatalf("default catalog has %d entries, want 5", got)
	}
	goat, ok := DefaultCatalog.ByRoleID("1455250931473191148")
	if !ok || goat.Price != 1000 {
		t.Fatalf("ByRoleID(goat) = %+v, %v", goat, ok)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name    string
		items   []Entitlement
		wantErr bool
	}{
		{name: "free role", items: []Entitlement{{Name: "Welcome", Price: 0, RoleID: "r-welcome"}}},
		{name: "negative price", items: []Entitlement{{Name: "Broken", Price: -1, RoleID: "r-broken"}}, wantErr: true},
		{name: "missing role id", items: []Entitlement{{Name: "Nameless", Price: 10}}, wantErr: true},
		{name: "duplicate role id", items: []Entitlement{
			{Name: "A", Price: 10, RoleID: "r-dup"},
			{Name: "B", Price: 20, RoleID: "r-dup"},
		}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.items)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_View(t *testing.T) {
	ledger, roles := newMocks(t)
	ledger.EXPECT().Balance(gomock.Any(), testUser).Return(int64(100), nil)
	roles.EXPECT().MemberRoles(gomock.Any(), testGuild, testUser).Return([]string{"r-beginner", "unrelated"}, nil)

	view, err := NewService(testCatalog, ledger, roles).View(context.Background(), testGuild, testUser)
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if view.Balance != 100 || len(view.Items) != 2 {
		t.Fatalf("View() = %+v", view)
	}
	if !view.Items[0].Owned || !view.Items[0].Affordable {
		t.Errorf("beginner = %+v, want owned and affordable", view.Items[0])
	}
	if view.Items[1].Owned || view.Items[1].Affordable {
		t.Errorf("pro = %+v, want neither owned nor affordable", view.Items[1])
	}
}

func TestService_ViewRequiresGuild(t *testing.T) {
	ledger, roles := newMocks(t)
	if _, err := NewService(testCatalog, ledger, roles).View(context.Background(), "", testUser); !errors.Is(err, ErrGuildRequired) {
		t.Fatalf("View() error = %v, want ErrGuildRequired", err)
	}
}

func TestService_Purchase(t *testing.T) {
	grantErr := errors.New("missing permissions")

	tests := []struct {
		name    string
		roleID  string
		setup   func(l *mock.MockLedger, r *mock.MockRoleService)
		wantErr error
	}{
		{
			name:    "unknown entitlement",
			roleID:  "r-unknown",
			setup:   func(*mock.MockLedger, *mock.MockRoleService) {},
			wantErr: ErrUnknownEntitlement,
		},
		{
			name:   "already owned",
			roleID: "r-beginner",
			setup: func(l *mock.MockLedger, r *mock.MockRoleService) {
				r.EXPECT().MemberRoles(gomock.Any(), testGuild, testUser).Return([]string{"r-beginner"}, nil)
			},
			wantErr: ErrAlreadyOwned,
		},
		{
			name:   "insufficient funds",
			roleID: "r-pro",
			setup: func(l *mock.MockLedger, r *mock.MockRoleService) {
				r.EXPECT().MemberRoles(gomock.Any(), testGuild, testUser).Return(nil, nil)
				l.EXPECT().Balance(gomock.Any(), testUser).Return(int64(199), nil)
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name:   "role missing from guild",
			roleID: "r-beginner",
			setup: func(l *mock.MockLedger, r *mock.MockRoleService) {
				r.EXPECT().MemberRoles(gomock.Any(), testGuild, testUser).Return(nil, nil)
				l.EXPECT().Balance(gomock.Any(), testUser).Return(int64(30), nil)
				r.EXPECT().RoleExists(gomock.Any(), testGuild, "r-beginner").Return(false, nil)
			},
			wantErr: ErrRoleUnavailable,
		},
		{
			name:   "balance spent by a concurrent purchase",
			roleID: "r-beginner",
			setup: func(l *mock.MockLedger, r *mock.MockRoleService) {
				r.EXPECT().MemberRoles(gomock.Any(), testGuild, testUser).Return(nil, nil)
				l.EXPECT().Balance(gomock.Any(), testUser).Return(int64(30), nil)
				r.EXPECT().RoleExists(gomock.Any(), testGuild, "r-beginner").Return(true, nil)
				l.EXPECT().TryDebit(gomock.Any(), testUser, int64(25)).Return(false, nil)
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name:   "failed grant is refunded",
			roleID: "r-beginner",
			setup: func(l *mock.MockLedger, r *mock.MockRoleService) {
				r.EXPECT().MemberRoles(gomock.Any(), testGuild, testUser).Return(nil, nil)
				l.EXPECT().Balance(gomock.Any(), testUser).Return(int64(30), nil)
				r.EXPECT().RoleExists(gomock.Any(), testGuild, "r-beginner").Return(true, nil)
				l.EXPECT().TryDebit(gomock.Any(), testUser, int64(25)).Return(true, nil)
				r.EXPECT().GrantRole(gomock.Any(), testGuild, testUser, "r-beginner").Return(grantErr)
				l.EXPECT().Credit(gomock.Any(), testUser, int64(25)).Return(nil)
			},
			wantErr: grantErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, roles := newMocks(t)
			tt.setup(ledger, roles)

			_, err := NewService(testCatalog, ledger, roles).Purchase(context.Background(), testGuild, testUser, tt.roleID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Purchase() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_PurchaseSuccess(t *testing.T) {
	ledger, roles := newMocks(t)
	gomock.InOrder(
		roles.EXPECT().MemberRoles(gomock.Any(), testGuild, testUser).Return(nil, nil),
		ledger.EXPECT().Balance(gomock.Any(), testUser).Return(int64(25), nil),
		roles.EXPECT().RoleExists(gomock.Any(), testGuild, "r-beginner").Return(true, nil),
		ledger.EXPECT().TryDebit(gomock.Any(), testUser, int64(25)).Return(true, nil),
		roles.EXPECT().GrantRole(gomock.Any(), testGuild, testUser, "r-beginner").Return(nil),
		ledger.EXPECT().Balance(gomock.Any(), testUser).Return(int64(0), nil),
	)

	receipt, err := NewService(testCatalog, ledger, roles).Purchase(context.Background(), testGuild, testUser, "r-beginner")
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if receipt.Entitlement.Name != "Chess Beginner" {
		t.Fatalf("receipt = %+v", receipt.Entitlement)
	}
	if receipt.View.Balance != 0 || !receipt.View.Items[0].Owned {
		t.Fatalf("refreshed view = %+v", receipt.View)
	}
}

func TestService_PurchaseFreeRoleWithEmptyBalance(t *testing.T) {
	catalog := MustCatalog([]Entitlement{{Name: "Welcome", Price: 0, RoleID: "r-welcome"}})
	ledger, roles := newMocks(t)
	gomock.InOrder(
		roles.EXPECT().MemberRoles(gomock.Any(), testGuild, testUser).Return(nil, nil),
		ledger.EXPECT().Balance(gomock.Any(), testUser).Return(int64(0), nil),
		roles.EXPECT().RoleExists(gomock.Any(), testGuild, "r-welcome").Return(true, nil),
		ledger.EXPECT().TryDebit(gomock.Any(), testUser, int64(0)).Return(true, nil),
		roles.EXPECT().GrantRole(gomock.Any(), testGuild, testUser, "r-welcome").Return(nil),
		ledger.EXPECT().Balance(gomock.Any(), testUser).Return(int64(0), nil),
	)

	receipt, err := NewService(catalog, ledger, roles).Purchase(context.Background(), testGuild, testUser, "r-welcome")
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if receipt.Entitlement.Price != 0 || !receipt.View.Items[0].Owned {
		t.Fatalf("receipt = %+v", receipt)
	}
}

func TestService_PurchaseRequiresGuild(t *testing.T) {
	ledger, roles := newMocks(t)
	_, err := NewService(testCatalog, ledger, roles).Purchase(context.Background(), "", testUser, "r-beginner")
	if !errors.Is(err, ErrGuildRequired) {
		t.Fatalf("Purchase() error = %v, want ErrGuildRequired", err)
	}
}
