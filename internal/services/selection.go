// Dependent-selection controller.
//
// Drives the flows where picking an order triggers a fetch of a related
// record (its payment, its tracking entry). One controller instance per
// dependent pair; the instance is the single logical owner of its state.
//
// The state machine:
//
//	Idle ──select──▶ Loading ──▶ Loaded | NotFound | Failed
//	                    ▲                    │
//	                    └────── re-select ───┘
//
// Re-selecting always restarts at Loading for the new id. Every selection
// bumps a generation counter; a fetch carries the generation that started it
// and its result is discarded when a newer selection has since begun. Last
// selection wins, never last response.
//
// Transport success is not semantic success: a record whose own order id is
// absent or differs from the requested one lands in NotFound even on a 200.
package services

import (
	"context"
	"sync"

	"github.com/duckshop/go-storefront/internal/gateway"
)

// SelectionState names a controller state.
type SelectionState string

// Controller states.
const (
	StateIdle     SelectionState = "idle"
	StateLoading  SelectionState = "loading"
	StateLoaded   SelectionState = "loaded"
	StateNotFound SelectionState = "not_found"
	StateFailed   SelectionState = "failed"
)

// FetchFunc loads the dependent record for orderID. ownID is the order
// identifier the record itself claims to belong to; implementations return 0
// when the payload lacks one (semantic absence).
type FetchFunc[T any] func(ctx context.Context, orderID int) (rec T, ownID int, err error)

// Snapshot is an immutable view of controller state, safe to hand to the
// rendering layer.
type Snapshot[T any] struct {
	State   SelectionState `json:"state"`
	OrderID int            `json:"orderId,omitempty"`
	Record  T              `json:"record"`
	Error   string         `json:"error,omitempty"`
}

// SelectionController runs the state machine for one dependent pair.
// Safe for concurrent use.
type SelectionController[T any] struct {
	fetch    FetchFunc[T]
	notFound string // user-facing message for semantic absence

	mu      sync.Mutex
	state   SelectionState
	orderID int
	record  T
	errMsg  string
	gen     uint64
	seeded  bool
}

// NewSelectionController builds an Idle controller. notFoundMsg is shown
// when a fetch succeeds but the record is absent or belongs to a different
// order.
func NewSelectionController[T any](fetch FetchFunc[T], notFoundMsg string) *SelectionController[T] {
	return &SelectionController[T]{fetch: fetch, notFound: notFoundMsg, state: StateIdle}
}

// Select starts a new selection for orderID and performs its fetch. The
// result is applied only when no newer selection has started in the
// meantime; a stale result, success or failure, is discarded. The returned
// snapshot reflects the controller after this call's resolution.
func (c *SelectionController[T]) Select(ctx context.Context, orderID int) Snapshot[T] {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.orderID = orderID
	c.state = StateLoading
	c.errMsg = ""
	var zero T
	c.record = zero
	c.mu.Unlock()

	rec, ownID, err := c.fetch(ctx, orderID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer selection started while this fetch was in flight.
		return c.snapshotLocked()
	}
	switch {
	case err != nil && gateway.IsNotFound(err):
		c.state = StateNotFound
		c.errMsg = c.notFound
	case err != nil:
		c.state = StateFailed
		c.errMsg = gateway.UserMessage(err)
	case ownID == 0 || ownID != orderID:
		c.state = StateNotFound
		c.errMsg = c.notFound
	default:
		c.state = StateLoaded
		c.record = rec
	}
	return c.snapshotLocked()
}

// SeedOnce runs Select for a seed order id carried in the page's entry
// parameters. It fires at most once per controller lifetime, and only when
// no record is loaded yet. Reports whether a selection was started.
func (c *SelectionController[T]) SeedOnce(ctx context.Context, orderID int) (Snapshot[T], bool) {
	c.mu.Lock()
	if c.seeded || c.state == StateLoaded || orderID == 0 {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, false
	}
	c.seeded = true
	c.mu.Unlock()
	return c.Select(ctx, orderID), true
}

// SetLoaded installs rec as the loaded record for orderID without a fetch.
// Used when a mutation's response payload is the record to display. It
// counts as a new selection: any in-flight fetch becomes stale.
func (c *SelectionController[T]) SetLoaded(orderID int, rec T) Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.orderID = orderID
	c.state = StateLoaded
	c.record = rec
	c.errMsg = ""
	return c.snapshotLocked()
}

// Reset returns the controller to Idle and invalidates any in-flight fetch.
// The seed latch is cleared too: a fresh session mounts fresh.
func (c *SelectionController[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = StateIdle
	c.orderID = 0
	var zero T
	c.record = zero
	c.errMsg = ""
	c.seeded = false
}

// Snapshot returns the current state.
func (c *SelectionController[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SelectedOrder returns the order id of the current selection, 0 when Idle.
func (c *SelectionController[T]) SelectedOrder() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orderID
}

func (c *SelectionController[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		State:   c.state,
		OrderID: c.orderID,
		Record:  c.record,
		Error:   c.errMsg,
	}
}
