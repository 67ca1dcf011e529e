package services

import (
	"context"
	"sync"
	"testing"

	"github.com/duckshop/go-storefront/internal/gateway"
)

type fakeRecord struct {
	OrderID int
	Label   string
}

func TestSelect_LoadedOnMatchingOwnID(t *testing.T) {
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		return fakeRecord{OrderID: orderID, Label: "ok"}, orderID, nil
	}, "missing")

	snap := c.Select(context.Background(), 7)
	if snap.State != StateLoaded || snap.Record.Label != "ok" || snap.OrderID != 7 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Error != "" {
		t.Fatalf("loaded state carries error %q", snap.Error)
	}
}

func TestSelect_MismatchedOwnIDIsNotFound(t *testing.T) {
	// Transport success with a record claiming another order: the HTTP 200
	// must not be trusted as semantic success.
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		return fakeRecord{OrderID: 99}, 99, nil
	}, "missing")

	snap := c.Select(context.Background(), 7)
	if snap.State != StateNotFound {
		t.Fatalf("state = %s, want not_found", snap.State)
	}
	if snap.Error != "missing" {
		t.Fatalf("error = %q", snap.Error)
	}
	if snap.Record.OrderID != 0 {
		t.Fatalf("record leaked into not_found snapshot: %+v", snap.Record)
	}
}

func TestSelect_AbsentOwnIDIsNotFound(t *testing.T) {
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		return fakeRecord{}, 0, nil
	}, "missing")
	if snap := c.Select(context.Background(), 7); snap.State != StateNotFound {
		t.Fatalf("state = %s, want not_found", snap.State)
	}
}

func TestSelect_GatewayNotFound(t *testing.T) {
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		return fakeRecord{}, 0, &gateway.Error{Kind: gateway.KindNotFound, Status: 404, Message: "nope"}
	}, "missing")
	if snap := c.Select(context.Background(), 7); snap.State != StateNotFound || snap.Error != "missing" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestSelect_TransportFailureIsFailed(t *testing.T) {
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		return fakeRecord{}, 0, gateway.Transportf("shop API unreachable")
	}, "missing")
	snap := c.Select(context.Background(), 7)
	if snap.State != StateFailed || snap.Error != "shop API unreachable" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

// TestSelect_StaleResponseDiscarded drives selection A whose fetch resolves
// only after selection B has completed. B must win regardless of arrival
// order, and A's late result must not overwrite it.
func TestSelect_StaleResponseDiscarded(t *testing.T) {
	releaseA := make(chan struct{})
	aStarted := make(chan struct{})

	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		if orderID == 1 {
			close(aStarted)
			<-releaseA // hold A's response until B is done
		}
		return fakeRecord{OrderID: orderID, Label: "rec"}, orderID, nil
	}, "missing")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Select(context.Background(), 1)
	}()

	<-aStarted
	snapB := c.Select(context.Background(), 2)
	if snapB.State != StateLoaded || snapB.OrderID != 2 {
		t.Fatalf("B snapshot = %+v", snapB)
	}

	close(releaseA)
	wg.Wait()

	final := c.Snapshot()
	if final.OrderID != 2 || final.Record.OrderID != 2 {
		t.Fatalf("stale A overwrote B: %+v", final)
	}
	if final.State != StateLoaded {
		t.Fatalf("final state = %s", final.State)
	}
}

// A stale FAILURE must be discarded too, not just a stale success.
func TestSelect_StaleErrorDiscarded(t *testing.T) {
	releaseA := make(chan struct{})
	aStarted := make(chan struct{})

	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		if orderID == 1 {
			close(aStarted)
			<-releaseA
			return fakeRecord{}, 0, gateway.Transportf("late boom")
		}
		return fakeRecord{OrderID: orderID}, orderID, nil
	}, "missing")

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Select(context.Background(), 1)
	}()

	<-aStarted
	c.Select(context.Background(), 2)
	close(releaseA)
	<-done

	if final := c.Snapshot(); final.State != StateLoaded || final.Error != "" {
		t.Fatalf("stale failure leaked: %+v", final)
	}
}

func TestSeedOnce(t *testing.T) {
	calls := 0
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		calls++
		return fakeRecord{OrderID: orderID}, orderID, nil
	}, "missing")

	snap, started := c.SeedOnce(context.Background(), 5)
	if !started || snap.State != StateLoaded || calls != 1 {
		t.Fatalf("first seed: started=%v snap=%+v calls=%d", started, snap, calls)
	}

	// Second mount with the same seed: no new fetch.
	if _, started := c.SeedOnce(context.Background(), 5); started || calls != 1 {
		t.Fatalf("seed fired twice (calls=%d)", calls)
	}
}

func TestSeedOnce_SkippedWhenRecordLoaded(t *testing.T) {
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		return fakeRecord{OrderID: orderID}, orderID, nil
	}, "missing")
	c.Select(context.Background(), 3)
	if _, started := c.SeedOnce(context.Background(), 9); started {
		t.Fatal("seed fired over a loaded record")
	}
	if got := c.Snapshot(); got.OrderID != 3 {
		t.Fatalf("seed displaced loaded selection: %+v", got)
	}
}

func TestSeedOnce_IgnoresZeroSeed(t *testing.T) {
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		t.Fatal("fetch must not run for a zero seed")
		return fakeRecord{}, 0, nil
	}, "missing")
	if _, started := c.SeedOnce(context.Background(), 0); started {
		t.Fatal("zero seed started a selection")
	}
}

func TestSetLoaded_InvalidatesInFlightFetch(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		close(started)
		<-release
		return fakeRecord{OrderID: orderID, Label: "from fetch"}, orderID, nil
	}, "missing")

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Select(context.Background(), 1)
	}()
	<-started

	snap := c.SetLoaded(1, fakeRecord{OrderID: 1, Label: "from payload"})
	if snap.State != StateLoaded || snap.Record.Label != "from payload" {
		t.Fatalf("SetLoaded snapshot = %+v", snap)
	}

	close(release)
	<-done
	if final := c.Snapshot(); final.Record.Label != "from payload" {
		t.Fatalf("in-flight fetch overwrote SetLoaded: %+v", final)
	}
}

func TestReset(t *testing.T) {
	c := NewSelectionController(func(ctx context.Context, orderID int) (fakeRecord, int, error) {
		return fakeRecord{OrderID: orderID}, orderID, nil
	}, "missing")
	c.Select(context.Background(), 4)
	c.Reset()

	snap := c.Snapshot()
	if snap.State != StateIdle || snap.OrderID != 0 || snap.Record.OrderID != 0 {
		t.Fatalf("reset snapshot = %+v", snap)
	}
	// Seed latch cleared: a fresh session may seed again.
	if _, started := c.SeedOnce(context.Background(), 4); !started {
		t.Fatal("seed blocked after reset")
	}
}
