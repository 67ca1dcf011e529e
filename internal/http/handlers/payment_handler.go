// Payment and tracking view handlers.
//
// This file exposes the dependent-selection endpoints:
//   - GET  /payment              (page state, optional ?orderID= seed)
//   - POST /payment/selection    (select an order)
//   - POST /payment              (pay the selected order)
//   - GET  /tracking             (page state)
//   - POST /tracking/selection   (select an order)
//
// The ?orderID= query parameter on GET /payment mirrors arriving on the
// payment page from the order list: it selects that order exactly once per
// session; later GETs with the same parameter return the current state
// untouched.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duckshop/go-storefront/internal/domain"
	"github.com/duckshop/go-storefront/internal/services"
	"github.com/duckshop/go-storefront/internal/utils"
)

//
// Service contracts (context-aware)
//

// PaymentState drives the payment page's selection machine.
type PaymentState interface {
	Select(ctx context.Context, orderID int) services.Snapshot[domain.Payment]
	Seed(ctx context.Context, orderID int) (services.Snapshot[domain.Payment], bool)
	Snapshot() services.Snapshot[domain.Payment]
	Pay(ctx context.Context) (services.Snapshot[domain.Payment], error)
}

// TrackingState drives the tracking page's selection machine.
type TrackingState interface {
	Select(ctx context.Context, orderID int) services.Snapshot[domain.TrackingRecord]
	Snapshot() services.Snapshot[domain.TrackingRecord]
}

//
// DTOs
//

// SelectOrderRequest is the JSON payload for picking an order.
type SelectOrderRequest struct {
	OrderID int `json:"order_id" binding:"required,min=1" example:"7"`
}

// PaymentRecordView is a payment record with its display amount.
type PaymentRecordView struct {
	domain.Payment
	AmountDisplay string `json:"AmountDisplay,omitempty" example:"2,598.00"`
}

// PaymentPageResponse is the payment page state.
type PaymentPageResponse struct {
	State     services.SelectionState `json:"state"`
	OrderID   int                     `json:"orderId,omitempty"`
	Payment   *PaymentRecordView      `json:"payment,omitempty"`
	Error     string                  `json:"error,omitempty"`
	CartCount int                     `json:"cart_count"`
}

// TrackingPageResponse is the tracking page state.
type TrackingPageResponse struct {
	State     services.SelectionState `json:"state"`
	OrderID   int                     `json:"orderId,omitempty"`
	Tracking  *domain.TrackingRecord  `json:"tracking,omitempty"`
	Error     string                  `json:"error,omitempty"`
	CartCount int                     `json:"cart_count"`
}

//
// Handler wiring
//

// PaymentHandlers groups the payment and tracking endpoints.
type PaymentHandlers struct {
	payments PaymentState
	tracking TrackingState
	cart     CartBadge
	prices   *utils.PriceFormatter
}

// NewPaymentHandlers constructs payment handlers bound to the given services.
func NewPaymentHandlers(payments PaymentState, tracking TrackingState, cart CartBadge, prices *utils.PriceFormatter) *PaymentHandlers {
	return &PaymentHandlers{payments: payments, tracking: tracking, cart: cart, prices: prices}
}

func (h *PaymentHandlers) paymentPage(snap services.Snapshot[domain.Payment]) PaymentPageResponse {
	resp := PaymentPageResponse{
		State:     snap.State,
		OrderID:   snap.OrderID,
		Error:     snap.Error,
		CartCount: h.cart.Badge(),
	}
	if snap.State == services.StateLoaded {
		resp.Payment = &PaymentRecordView{
			Payment:       snap.Record,
			AmountDisplay: h.prices.Format(snap.Record.Amount),
		}
	}
	return resp
}

func (h *PaymentHandlers) trackingPage(snap services.Snapshot[domain.TrackingRecord]) TrackingPageResponse {
	resp := TrackingPageResponse{
		State:     snap.State,
		OrderID:   snap.OrderID,
		Error:     snap.Error,
		CartCount: h.cart.Badge(),
	}
	if snap.State == services.StateLoaded {
		rec := snap.Record
		resp.Tracking = &rec
	}
	return resp
}

// PaymentPage godoc
// @ID          paymentPage
// @Summary     Payment page state
// @Description Returns the payment selection state. A positive orderID query parameter selects that order once; repeats are ignored.
// @Tags        Payments
// @Produce     json
//
// @Param       orderID  query  int  false  "Order to pre-select"  minimum(1)
//
// @Success     200  {object}  handlers.PaymentPageResponse
// @Router      /payment [get]
func (h *PaymentHandlers) PaymentPage(c *gin.Context) {
	seed := utils.AtoiDefault(c.Query("orderID"), 0)
	if seed > 0 {
		snap, applied := h.payments.Seed(c.Request.Context(), seed)
		if applied {
			ok(c, http.StatusOK, h.paymentPage(snap))
			return
		}
	}
	ok(c, http.StatusOK, h.paymentPage(h.payments.Snapshot()))
}

// SelectPaymentOrder godoc
// @ID          selectPaymentOrder
// @Summary     Select an order for payment
// @Description Restarts the payment lookup for the given order. The response reflects the outcome of this selection; a superseded lookup never overwrites a newer one.
// @Tags        Payments
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SelectOrderRequest  true  "Order id"
//
// @Success     200  {object}  handlers.PaymentPageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /payment/selection [post]
func (h *PaymentHandlers) SelectPaymentOrder(c *gin.Context) {
	var req SelectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "order_id must be positive")
		return
	}
	snap := h.payments.Select(c.Request.Context(), req.OrderID)
	ok(c, http.StatusOK, h.paymentPage(snap))
}

// Pay godoc
// @ID          pay
// @Summary     Pay the selected order
// @Description Places a payment for the selected order. Rejected when no order is selected or a payment record is already loaded.
// @Tags        Payments
// @Produce     json
//
// @Success     201  {object}  handlers.PaymentPageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "No order selected or already paid"
// @Failure     401  {object}  handlers.ErrorResponse  "Not logged in"
// @Failure     404  {object}  handlers.ErrorResponse  "Selected order not in feed"
// @Failure     502  {object}  handlers.ErrorResponse  "Shop API unreachable"
// @Router      /payment [post]
func (h *PaymentHandlers) Pay(c *gin.Context) {
	snap, err := h.payments.Pay(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, http.StatusCreated, h.paymentPage(snap))
}

// TrackingPage godoc
// @ID          trackingPage
// @Summary     Tracking page state
// @Description Returns the tracking selection state.
// @Tags        Tracking
// @Produce     json
//
// @Success     200  {object}  handlers.TrackingPageResponse
// @Router      /tracking [get]
func (h *PaymentHandlers) TrackingPage(c *gin.Context) {
	ok(c, http.StatusOK, h.trackingPage(h.tracking.Snapshot()))
}

// SelectTrackingOrder godoc
// @ID          selectTrackingOrder
// @Summary     Select an order for tracking
// @Description Restarts the tracking lookup for the given order.
// @Tags        Tracking
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SelectOrderRequest  true  "Order id"
//
// @Success     200  {object}  handlers.TrackingPageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /tracking/selection [post]
func (h *PaymentHandlers) SelectTrackingOrder(c *gin.Context) {
	var req SelectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "order_id must be positive")
		return
	}
	snap := h.tracking.Select(c.Request.Context(), req.OrderID)
	ok(c, http.StatusOK, h.trackingPage(snap))
}
