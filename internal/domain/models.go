// Package domain defines the value objects exchanged with the remote shop
// API and the session model kept by the client. All entities are read-mostly:
// the backend owns them, the client fetches, displays, and occasionally
// appends (cart rows, payments).
//
// JSON tags follow the remote API's wire names verbatim (ProductID,
// OrderDate, TrackingID, ...). Dates are carried as opaque strings: the
// client renders them, it never computes with them.
package domain

import "strings"

// User identifies the authenticated shopper.
type User struct {
	UserID int    `json:"UserID"`
	Name   string `json:"Name"`
	Email  string `json:"Email"`
}

// Session pairs the authenticated identity with its bearer credential.
//
// Invariant: Token is non-empty iff User is non-nil. A zero Session means
// logged out; every protected fetch must refuse to run and derived state
// (the cart badge) must read zero.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Authenticated reports whether the session carries an identity.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// Product is a catalog entry. Immutable from the client's perspective.
type Product struct {
	ProductID   int     `json:"ProductID"`
	ProductName string  `json:"ProductName"`
	Description string  `json:"Description"`
	Price       float64 `json:"Price"`
}

// CartItem is one row of the current session's cart. The client only appends
// rows (add to cart); it never deletes or rewrites them.
type CartItem struct {
	ProductID int `json:"ProductID"`
	Quantity  int `json:"Quantity"`
}

// OrderStatus is the backend-assigned order state. Only "paid" is
// semantically special on the client: it gates trackability.
type OrderStatus string

// IsPaid reports whether the order has been paid, case-insensitively.
func (s OrderStatus) IsPaid() bool {
	return strings.EqualFold(string(s), "paid")
}

// Order is a backend-owned purchase record. The client is read-only except
// implicitly via payment placement.
type Order struct {
	OrderID    int         `json:"OrderID"`
	OrderDate  string      `json:"OrderDate"`
	Status     OrderStatus `json:"Status"`
	TotalPrice float64     `json:"TotalPrice"`
}

// Payment is the payment record attached to an order. A zero OrderID in a
// decoded payload signals semantic absence, regardless of HTTP status.
type Payment struct {
	PaymentID     string  `json:"PaymentID"`
	OrderID       int     `json:"OrderID"`
	PaymentMethod string  `json:"PaymentMethod"`
	Amount        float64 `json:"Amount"`
	PaymentDate   string  `json:"PaymentDate"`
	Status        string  `json:"Status"`
}

// TrackingRecord is the shipment state of a paid order. A zero TrackingID in
// a decoded payload signals semantic absence, regardless of HTTP status.
type TrackingRecord struct {
	TrackingID int         `json:"TrackingID"`
	OrderID    int         `json:"OrderID"`
	Status     OrderStatus `json:"Status"`
	UpdatedAt  string      `json:"UpdatedAt"`
}
