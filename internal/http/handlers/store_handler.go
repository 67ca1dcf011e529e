// Storefront view handlers.
//
// This file exposes the shopping endpoints:
//   - GET  /products     (catalog)
//   - GET  /cart         (cart rows plus total quantity)
//   - POST /cart/items   (add to cart)
//   - GET  /orders       (order history plus selector option lists)
//
// Each GET returns the full view state for one page so the rendering layer
// never has to derive anything. Prices are formatted server-side with the
// configured locale.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/duckshop/go-storefront/internal/domain"
	"github.com/duckshop/go-storefront/internal/services"
	"github.com/duckshop/go-storefront/internal/utils"
)

//
// Service contracts (context-aware)
//

// CatalogState supplies the product catalog.
type CatalogState interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

// CartState supplies the cart rows and the quantity badge, and appends rows.
type CartState interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	Add(ctx context.Context, productID, quantity int) error
	Badge() int
}

// OrderState supplies the raw order feed.
type OrderState interface {
	Orders(ctx context.Context) ([]domain.Order, error)
}

//
// DTOs
//

// ProductView is one catalog entry with its display price.
type ProductView struct {
	domain.Product
	PriceDisplay string `json:"PriceDisplay" example:"1,299.00"`
}

// ProductsResponse is the catalog page state.
type ProductsResponse struct {
	Products  []ProductView `json:"products"`
	CartCount int           `json:"cart_count"`
}

// AddToCartRequest is the JSON payload for appending a cart row.
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required,min=1" example:"3"`
	Quantity  int `json:"quantity" binding:"required,min=1" example:"2"`
}

// CartResponse is the cart page state. TotalQuantity sums every row,
// duplicates included, and always equals CartCount.
type CartResponse struct {
	Items         []domain.CartItem `json:"cartItems"`
	TotalQuantity int               `json:"total_quantity"`
	CartCount     int               `json:"cart_count"`
}

// OrderView is one order row with its display total.
type OrderView struct {
	domain.Order
	TotalDisplay string `json:"TotalDisplay" example:"2,598.00"`
	Paid         bool   `json:"Paid"`
}

// OrderOption is one entry of a selection dropdown.
type OrderOption struct {
	OrderID int    `json:"OrderID"`
	Label   string `json:"Label" example:"Order #7"`
}

// OrdersResponse is the order history page state. Orders is the raw feed;
// the option lists are deduplicated by order id, first occurrence wins, and
// Trackable is further restricted to paid orders.
type OrdersResponse struct {
	Orders    []OrderView   `json:"orders"`
	Payable   []OrderOption `json:"payable"`
	Trackable []OrderOption `json:"trackable"`
	CartCount int           `json:"cart_count"`
}

//
// Handler wiring
//

// StoreHandlers groups the catalog, cart, and order endpoints.
type StoreHandlers struct {
	catalog CatalogState
	cart    CartState
	orders  OrderState
	prices  *utils.PriceFormatter
}

// NewStoreHandlers constructs store handlers bound to the given services.
func NewStoreHandlers(catalog CatalogState, cart CartState, orders OrderState, prices *utils.PriceFormatter) *StoreHandlers {
	return &StoreHandlers{catalog: catalog, cart: cart, orders: orders, prices: prices}
}

// Products godoc
// @ID          listProducts
// @Summary     Product catalog
// @Description Returns every catalog entry with display prices, plus the cart badge.
// @Tags        Store
// @Produce     json
//
// @Success     200  {object}  handlers.ProductsResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Not logged in"
// @Failure     502  {object}  handlers.ErrorResponse  "Shop API unreachable"
// @Router      /products [get]
func (h *StoreHandlers) Products(c *gin.Context) {
	items, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}

	views := make([]ProductView, 0, len(items))
	for _, p := range items {
		views = append(views, ProductView{
			Product:      p,
			PriceDisplay: h.prices.Format(p.Price),
		})
	}
	ok(c, http.StatusOK, ProductsResponse{Products: views, CartCount: h.cart.Badge()})
}

// Cart godoc
// @ID          getCart
// @Summary     Cart contents
// @Description Returns the raw cart rows and their total quantity. An empty cart is a normal empty list.
// @Tags        Store
// @Produce     json
//
// @Success     200  {object}  handlers.CartResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Not logged in"
// @Failure     502  {object}  handlers.ErrorResponse  "Shop API unreachable"
// @Router      /cart [get]
func (h *StoreHandlers) Cart(c *gin.Context) {
	items, err := h.cart.Items(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	total := services.TotalQuantity(items)
	ok(c, http.StatusOK, CartResponse{
		Items:         items,
		TotalQuantity: total,
		CartCount:     h.cart.Badge(),
	})
}

// AddToCart godoc
// @ID          addToCart
// @Summary     Add a product to the cart
// @Description Appends a cart row and refreshes the quantity badge before responding.
// @Tags        Store
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.AddToCartRequest  true  "Product and quantity"
//
// @Success     201  {object}  handlers.CartResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Not logged in"
// @Failure     502  {object}  handlers.ErrorResponse  "Shop API unreachable"
// @Router      /cart/items [post]
func (h *StoreHandlers) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "product_id and quantity must be positive")
		return
	}

	ctx := c.Request.Context()
	if err := h.cart.Add(ctx, req.ProductID, req.Quantity); err != nil {
		failFromError(c, err)
		return
	}

	items, err := h.cart.Items(ctx)
	if err != nil {
		// The add succeeded and the badge is already current; respond with
		// what we know rather than failing the whole operation.
		items = []domain.CartItem{}
	}
	ok(c, http.StatusCreated, CartResponse{
		Items:         items,
		TotalQuantity: services.TotalQuantity(items),
		CartCount:     h.cart.Badge(),
	})
}

// Orders godoc
// @ID          listOrders
// @Summary     Order history
// @Description Returns the raw order feed plus deduplicated selector options for payment and tracking.
// @Tags        Store
// @Produce     json
//
// @Success     200  {object}  handlers.OrdersResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Not logged in"
// @Failure     502  {object}  handlers.ErrorResponse  "Shop API unreachable"
// @Router      /orders [get]
func (h *StoreHandlers) Orders(c *gin.Context) {
	feed, err := h.orders.Orders(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}

	views := make([]OrderView, 0, len(feed))
	for _, o := range feed {
		views = append(views, OrderView{
			Order:        o,
			TotalDisplay: h.prices.Format(o.TotalPrice),
			Paid:         o.Status.IsPaid(),
		})
	}

	ok(c, http.StatusOK, OrdersResponse{
		Orders:    views,
		Payable:   orderOptions(services.UniqueOrders(feed)),
		Trackable: orderOptions(services.TrackableOrders(feed)),
		CartCount: h.cart.Badge(),
	})
}

func orderOptions(orders []domain.Order) []OrderOption {
	opts := make([]OrderOption, 0, len(orders))
	for _, o := range orders {
		opts = append(opts, OrderOption{
			OrderID: o.OrderID,
			Label:   "Order #" + strconv.Itoa(o.OrderID),
		})
	}
	return opts
}
