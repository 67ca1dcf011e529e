// Order collection and its pure derivations.
//
// Selection UIs consume the de-duplicated view (first occurrence wins,
// order preserved); anything that needs the full feed works on the raw list.
// The derivations are plain functions over fetched data so they are testable
// without any network behavior.
package services

import (
	"context"

	"github.com/duckshop/go-storefront/internal/domain"
	"github.com/duckshop/go-storefront/internal/utils"
)

// OrderAPI is the remote surface the order service needs.
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// OrderService owns the order collection.
type OrderService struct {
	api      OrderAPI
	sessions *SessionStore
}

// NewOrderService wires the service to its remote surface and session store.
func NewOrderService(api OrderAPI, sessions *SessionStore) *OrderService {
	return &OrderService{api: api, sessions: sessions}
}

// Orders returns the raw order feed. An empty feed is an empty slice, never
// an error. Refuses to fetch when logged out.
func (s *OrderService) Orders(ctx context.Context) ([]domain.Order, error) {
	if !s.sessions.IsAuthenticated() {
		return nil, ErrNotLoggedIn
	}
	return s.api.ListOrders(ctx)
}

// UniqueOrders de-duplicates a feed by OrderID, first occurrence retained.
func UniqueOrders(orders []domain.Order) []domain.Order {
	return utils.UniqueBy(orders, func(o domain.Order) int { return o.OrderID })
}

// PaidOrders keeps only paid orders (case-insensitive status match).
func PaidOrders(orders []domain.Order) []domain.Order {
	return utils.Filter(orders, func(o domain.Order) bool { return o.Status.IsPaid() })
}

// TrackableOrders is the selection set for the tracking view: paid orders,
// de-duplicated.
func TrackableOrders(orders []domain.Order) []domain.Order {
	return UniqueOrders(PaidOrders(orders))
}

// FindOrder returns the first order in the feed with the given id.
func FindOrder(orders []domain.Order, orderID int) (domain.Order, bool) {
	for _, o := range orders {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return domain.Order{}, false
}
