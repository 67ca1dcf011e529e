// Package services implements the client-side state layer: the session
// store, the cart aggregator, the per-collection fetch services, and the
// dependent-selection controllers. This file centralizes service-level
// error values so they can be consistently returned by service methods and
// checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer. Remote failures are NOT re-wrapped here: they propagate
// as *gateway.Error so callers can branch on the gateway taxonomy.
package services

import "errors"

var (
	// ErrNotLoggedIn is returned by every protected operation when no
	// authenticated session exists. It is a precondition failure: nothing
	// was sent to the remote API.
	ErrNotLoggedIn = errors.New("please log in to continue")

	// ErrNoOrderSelected is returned when a payment is placed without a
	// selected order.
	ErrNoOrderSelected = errors.New("please select an order to proceed")

	// ErrOrderNotFound is returned when the selected order id is absent
	// from the order feed at payment time.
	ErrOrderNotFound = errors.New("order not found")

	// ErrPaymentAlreadyRecorded is returned when a payment is placed while
	// a payment record is already displayed for the selected order.
	ErrPaymentAlreadyRecorded = errors.New("a payment is already recorded for this order")
)
