// Tracking flow: Order→Tracking dependent selection. Tracking records are
// fetched on demand and never cached across selections.
package services

import (
	"context"

	"github.com/duckshop/go-storefront/internal/domain"
)

// TrackingAPI is the remote surface the tracking flow needs.
type TrackingAPI interface {
	TrackingForOrder(ctx context.Context, orderID int) (domain.TrackingRecord, error)
}

// TrackingService runs the tracking view's dependent selection.
type TrackingService struct {
	api      TrackingAPI
	sessions *SessionStore
	ctrl     *SelectionController[domain.TrackingRecord]
}

// NewTrackingService wires the flow and resets its selection on logout.
func NewTrackingService(api TrackingAPI, sessions *SessionStore) *TrackingService {
	s := &TrackingService{api: api, sessions: sessions}
	s.ctrl = NewSelectionController(s.fetch, "Tracking details not found for this order.")
	sessions.OnLogout(s.ctrl.Reset)
	return s
}

// fetch loads the tracking record for orderID. A payload without a
// TrackingID is semantically absent even when its OrderID matches.
func (s *TrackingService) fetch(ctx context.Context, orderID int) (domain.TrackingRecord, int, error) {
	if !s.sessions.IsAuthenticated() {
		return domain.TrackingRecord{}, 0, ErrNotLoggedIn
	}
	rec, err := s.api.TrackingForOrder(ctx, orderID)
	ownID := rec.OrderID
	if rec.TrackingID == 0 {
		ownID = 0
	}
	return rec, ownID, err
}

// Select picks a paid order and fetches its tracking record.
func (s *TrackingService) Select(ctx context.Context, orderID int) Snapshot[domain.TrackingRecord] {
	return s.ctrl.Select(ctx, orderID)
}

// Snapshot returns the current selection state.
func (s *TrackingService) Snapshot() Snapshot[domain.TrackingRecord] {
	return s.ctrl.Snapshot()
}
