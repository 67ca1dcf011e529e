// Package shop exposes typed operations over the remote shop API. Each
// method is one logical API call: it builds the request through the gateway,
// decodes the wire envelope, and returns plain domain values. All list
// operations return the raw, undeduplicated feed; derivations (dedup,
// filtering, totals) belong to the services layer so they stay pure and
// independently testable.
package shop

import (
	"context"
	"fmt"
	"net/http"

	"github.com/duckshop/go-storefront/internal/domain"
)

// Gateway is the transport contract consumed by the client. Satisfied by
// *gateway.Gateway; tests provide fakes.
type Gateway interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Client is the typed remote API client.
type Client struct {
	gw Gateway
}

// NewClient wraps a gateway in the typed API surface.
func NewClient(gw Gateway) *Client {
	return &Client{gw: gw}
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

// Registration is the sign-up payload.
type Registration struct {
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

// LoginResult carries the bearer credential plus the authenticated identity.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// PaymentRequest is the payload for placing a payment against an order.
type PaymentRequest struct {
	OrderID       int     `json:"OrderID"`
	PaymentMethod string  `json:"PaymentMethod"`
	Amount        float64 `json:"Amount"`
}

// PaymentAck is the response to a placed payment.
type PaymentAck struct {
	PaymentID string `json:"PaymentID"`
}

// Login exchanges credentials for a session token and identity.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var out LoginResult
	if err := c.gw.Do(ctx, http.MethodPost, "/login", creds, &out); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// Register creates a new shopper account.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return c.gw.Do(ctx, http.MethodPost, "/register", reg, nil)
}

// ListProducts returns the catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out struct {
		Products []domain.Product `json:"products"`
	}
	if err := c.gw.Do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	if out.Products == nil {
		out.Products = []domain.Product{}
	}
	return out.Products, nil
}

// ListCart returns the raw cart feed for the current session. Duplicate
// product rows are preserved: quantity totals must count every row.
func (c *Client) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	var out struct {
		CartItems []domain.CartItem `json:"cartItems"`
	}
	if err := c.gw.Do(ctx, http.MethodGet, "/cart", nil, &out); err != nil {
		return nil, err
	}
	if out.CartItems == nil {
		out.CartItems = []domain.CartItem{}
	}
	return out.CartItems, nil
}

// AddToCart appends quantity units of a product to the session cart.
func (c *Client) AddToCart(ctx context.Context, productID, quantity int) error {
	return c.gw.Do(ctx, http.MethodPost, "/cart", domain.CartItem{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// ListOrders returns the raw order feed, duplicates and all.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := c.gw.Do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	if out.Orders == nil {
		out.Orders = []domain.Order{}
	}
	return out.Orders, nil
}

// PaymentForOrder fetches the payment record attached to orderID. Semantic
// absence (a payload without an OrderID) is returned as-is; the caller
// decides what a zero OrderID means for its view.
func (c *Client) PaymentForOrder(ctx context.Context, orderID int) (domain.Payment, error) {
	var out domain.Payment
	if err := c.gw.Do(ctx, http.MethodGet, fmt.Sprintf("/payments/%d", orderID), nil, &out); err != nil {
		return domain.Payment{}, err
	}
	return out, nil
}

// PlacePayment submits a payment and returns the server-assigned id.
func (c *Client) PlacePayment(ctx context.Context, req PaymentRequest) (PaymentAck, error) {
	var out PaymentAck
	if err := c.gw.Do(ctx, http.MethodPost, "/payments", req, &out); err != nil {
		return PaymentAck{}, err
	}
	return out, nil
}

// TrackingForOrder fetches the shipment record for orderID. As with
// PaymentForOrder, semantic absence is signaled by a zero TrackingID in the
// returned value.
func (c *Client) TrackingForOrder(ctx context.Context, orderID int) (domain.TrackingRecord, error) {
	var out domain.TrackingRecord
	if err := c.gw.Do(ctx, http.MethodGet, fmt.Sprintf("/order-tracking/%d", orderID), nil, &out); err != nil {
		return domain.TrackingRecord{}, err
	}
	return out, nil
}
