// Payment flow: Order→Payment dependent selection plus the user-initiated
// "place payment" action.
package services

import (
	"context"
	"time"

	"github.com/duckshop/go-storefront/internal/domain"
	"github.com/duckshop/go-storefront/internal/shop"
)

const (
	// defaultPaymentMethod is the only method the storefront offers.
	defaultPaymentMethod = "Credit Card"
	// fallbackPaymentID is displayed when the ack omits a payment id.
	fallbackPaymentID = "NEW"
	// completedStatus is the status shown for a just-placed payment.
	completedStatus = "Completed"
)

// PaymentAPI is the remote surface the payment flow needs.
type PaymentAPI interface {
	PaymentForOrder(ctx context.Context, orderID int) (domain.Payment, error)
	PlacePayment(ctx context.Context, req shop.PaymentRequest) (shop.PaymentAck, error)
}

// PaymentService runs the payment view's dependent selection and payment
// placement.
type PaymentService struct {
	api      PaymentAPI
	orders   *OrderService
	sessions *SessionStore
	ctrl     *SelectionController[domain.Payment]
	now      func() time.Time
}

// NewPaymentService wires the flow and resets its selection on logout.
func NewPaymentService(api PaymentAPI, orders *OrderService, sessions *SessionStore) *PaymentService {
	s := &PaymentService{
		api:      api,
		orders:   orders,
		sessions: sessions,
		now:      time.Now,
	}
	s.ctrl = NewSelectionController(s.fetch, "No payment record found for this order.")
	sessions.OnLogout(s.ctrl.Reset)
	return s
}

// fetch loads the payment for orderID. The record's own OrderID is the
// semantic-validity marker: a payload without one reads as absent.
func (s *PaymentService) fetch(ctx context.Context, orderID int) (domain.Payment, int, error) {
	if !s.sessions.IsAuthenticated() {
		return domain.Payment{}, 0, ErrNotLoggedIn
	}
	p, err := s.api.PaymentForOrder(ctx, orderID)
	return p, p.OrderID, err
}

// Select picks an order and fetches its payment record.
func (s *PaymentService) Select(ctx context.Context, orderID int) Snapshot[domain.Payment] {
	return s.ctrl.Select(ctx, orderID)
}

// Seed applies an order id carried in the page's entry parameters: at most
// once, and only when no record is loaded yet.
func (s *PaymentService) Seed(ctx context.Context, orderID int) (Snapshot[domain.Payment], bool) {
	return s.ctrl.SeedOnce(ctx, orderID)
}

// Snapshot returns the current selection state.
func (s *PaymentService) Snapshot() Snapshot[domain.Payment] {
	return s.ctrl.Snapshot()
}

// Pay places a payment for the currently selected order. It is enabled only
// when an order is selected and no record is loaded; on success the
// controller transitions directly to Loaded with the response payload, no
// re-fetch.
func (s *PaymentService) Pay(ctx context.Context) (Snapshot[domain.Payment], error) {
	if !s.sessions.IsAuthenticated() {
		return s.ctrl.Snapshot(), ErrNotLoggedIn
	}
	orderID := s.ctrl.SelectedOrder()
	if orderID == 0 {
		return s.ctrl.Snapshot(), ErrNoOrderSelected
	}
	if s.ctrl.Snapshot().State == StateLoaded {
		return s.ctrl.Snapshot(), ErrPaymentAlreadyRecorded
	}

	feed, err := s.orders.Orders(ctx)
	if err != nil {
		return s.ctrl.Snapshot(), err
	}
	order, ok := FindOrder(feed, orderID)
	if !ok {
		return s.ctrl.Snapshot(), ErrOrderNotFound
	}

	ack, err := s.api.PlacePayment(ctx, shop.PaymentRequest{
		OrderID:       orderID,
		PaymentMethod: defaultPaymentMethod,
		Amount:        order.TotalPrice,
	})
	if err != nil {
		return s.ctrl.Snapshot(), err
	}

	paymentID := ack.PaymentID
	if paymentID == "" {
		paymentID = fallbackPaymentID
	}
	rec := domain.Payment{
		PaymentID:     paymentID,
		OrderID:       orderID,
		PaymentMethod: defaultPaymentMethod,
		Amount:        order.TotalPrice,
		PaymentDate:   s.now().Format(time.RFC3339),
		Status:        completedStatus,
	}
	return s.ctrl.SetLoaded(orderID, rec), nil
}
