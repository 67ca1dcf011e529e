package services

import (
	"context"
	"errors"
	"testing"

	"github.com/duckshop/go-storefront/internal/domain"
	"github.com/duckshop/go-storefront/internal/gateway"
)

// ----- Fake cart API -----

type fakeCartAPI struct {
	items    []domain.CartItem
	listErr  error
	addErr   error
	addCalls int

	// itemsAfterAdd, when set, replaces items once an add succeeds, so tests
	// can observe the post-mutation refresh.
	itemsAfterAdd []domain.CartItem
}

func (f *fakeCartAPI) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCartAPI) AddToCart(ctx context.Context, productID, quantity int) error {
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	if f.itemsAfterAdd != nil {
		f.items = f.itemsAfterAdd
	}
	return nil
}

func loggedInStore(t *testing.T) *SessionStore {
	t.Helper()
	s := NewSessionStore(context.Background(), sessionDB(t))
	if err := s.Login(context.Background(), domain.User{UserID: 1, Name: "A", Email: "a@x"}, "tok"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	return s
}

// ----- TotalQuantity -----

func TestTotalQuantity(t *testing.T) {
	cases := []struct {
		name  string
		items []domain.CartItem
		want  int
	}{
		{"empty", nil, 0},
		{"empty slice", []domain.CartItem{}, 0},
		{"simple", []domain.CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 3}}, 5},
		// Duplicate product rows both count: the badge is total units.
		{"duplicate rows", []domain.CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 1, Quantity: 4}}, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalQuantity(tc.items); got != tc.want {
				t.Fatalf("TotalQuantity = %d, want %d", got, tc.want)
			}
		})
	}
}

// ----- Fetch gating and refresh -----

func TestCart_RefusesWhenLoggedOut(t *testing.T) {
	sessions := NewSessionStore(context.Background(), sessionDB(t))
	api := &fakeCartAPI{items: []domain.CartItem{{ProductID: 1, Quantity: 1}}}
	svc := NewCartService(api, sessions)

	if _, err := svc.Items(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Items err = %v, want ErrNotLoggedIn", err)
	}
	if err := svc.Add(context.Background(), 1, 1); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Add err = %v, want ErrNotLoggedIn", err)
	}
	if api.addCalls != 0 {
		t.Fatal("logged-out add reached the remote API")
	}
	if svc.Badge() != 0 {
		t.Fatalf("Badge = %d, want 0 while logged out", svc.Badge())
	}
}

func TestCart_RefreshRecomputesBadge(t *testing.T) {
	api := &fakeCartAPI{items: []domain.CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 5}}}
	svc := NewCartService(api, loggedInStore(t))

	count, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if count != 7 || svc.Badge() != 7 {
		t.Fatalf("count=%d badge=%d, want 7", count, svc.Badge())
	}
}

func TestCart_EmptyFeedIsNotAnError(t *testing.T) {
	api := &fakeCartAPI{items: []domain.CartItem{}}
	svc := NewCartService(api, loggedInStore(t))

	items, err := svc.Items(context.Background())
	if err != nil {
		t.Fatalf("empty cart produced error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %v", items)
	}
}

func TestCart_AddRefreshesBeforeReturning(t *testing.T) {
	api := &fakeCartAPI{
		items:         []domain.CartItem{{ProductID: 1, Quantity: 1}},
		itemsAfterAdd: []domain.CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 1}},
	}
	svc := NewCartService(api, loggedInStore(t))
	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if err := svc.Add(context.Background(), 2, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if svc.Badge() != 2 {
		t.Fatalf("Badge = %d after add, want 2: the count must be fresh when Add returns", svc.Badge())
	}
}

func TestCart_AddReportsRefreshFailure(t *testing.T) {
	api := &fakeCartAPI{items: []domain.CartItem{{ProductID: 1, Quantity: 1}}}
	svc := NewCartService(api, loggedInStore(t))

	api.listErr = gateway.Transportf("boom")
	err := svc.Add(context.Background(), 1, 1)
	if err == nil {
		t.Fatal("refresh failure after add must surface")
	}
	if api.addCalls != 1 {
		t.Fatalf("addCalls = %d", api.addCalls)
	}
	if !gateway.IsTransport(err) {
		t.Fatalf("err = %v, want wrapped transport error", err)
	}
}

func TestCart_LogoutResetsBadgeSynchronously(t *testing.T) {
	sessions := loggedInStore(t)
	api := &fakeCartAPI{items: []domain.CartItem{{ProductID: 1, Quantity: 9}}}
	svc := NewCartService(api, sessions)
	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if svc.Badge() != 9 {
		t.Fatalf("Badge = %d", svc.Badge())
	}

	sessions.Logout(context.Background())
	if svc.Badge() != 0 {
		t.Fatalf("Badge = %d after logout, want immediate 0", svc.Badge())
	}
}
