// Cart aggregator.
//
// The badge count is the one piece of state shared across otherwise
// independent views. It is recomputed from a fresh cart fetch after every
// mutation, before the mutation is reported complete, so no view ever shows
// a count stale relative to the last finished add-to-cart.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/duckshop/go-storefront/internal/domain"
)

// CartAPI is the remote surface the cart service needs.
type CartAPI interface {
	ListCart(ctx context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, productID, quantity int) error
}

// TotalQuantity sums Quantity over all rows of the raw cart feed. Duplicate
// product rows are counted as-is: the badge reflects total units, not
// distinct products.
func TotalQuantity(items []domain.CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// CartService owns the cart collection and the shared badge count.
type CartService struct {
	api      CartAPI
	sessions *SessionStore

	mu    sync.RWMutex
	badge int
}

// NewCartService wires the service to its remote surface and session store,
// and registers the synchronous badge reset on logout.
func NewCartService(api CartAPI, sessions *SessionStore) *CartService {
	s := &CartService{api: api, sessions: sessions}
	sessions.OnLogout(s.resetBadge)
	return s
}

// Items returns the raw cart feed. An empty cart is an empty slice, never an
// error. Refuses to fetch when logged out.
func (s *CartService) Items(ctx context.Context) ([]domain.CartItem, error) {
	if !s.sessions.IsAuthenticated() {
		return nil, ErrNotLoggedIn
	}
	return s.api.ListCart(ctx)
}

// Refresh re-fetches the cart and recomputes the shared badge, returning the
// new count.
func (s *CartService) Refresh(ctx context.Context) (int, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return s.Badge(), err
	}
	count := TotalQuantity(items)
	s.mu.Lock()
	s.badge = count
	s.mu.Unlock()
	return count, nil
}

// Add appends quantity units of productID to the cart, then refreshes the
// badge before returning. A refresh failure after a successful mutation is
// reported: the mutation stood, but the shared count could not be brought up
// to date and views must not pretend it was.
func (s *CartService) Add(ctx context.Context, productID, quantity int) error {
	if !s.sessions.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	if err := s.api.AddToCart(ctx, productID, quantity); err != nil {
		return err
	}
	if _, err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("item added, but cart count refresh failed: %w", err)
	}
	return nil
}

// Badge returns the shared cart count. Zero when logged out.
func (s *CartService) Badge() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.badge
}

func (s *CartService) resetBadge() {
	s.mu.Lock()
	s.badge = 0
	s.mu.Unlock()
}
