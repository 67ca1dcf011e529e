package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/duckshop/go-storefront/internal/domain"
)

type fakeOrderAPI struct {
	orders []domain.Order
	err    error
}

func (f *fakeOrderAPI) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func TestOrders_RefusesWhenLoggedOut(t *testing.T) {
	svc := NewOrderService(&fakeOrderAPI{}, NewSessionStore(context.Background(), sessionDB(t)))
	if _, err := svc.Orders(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}
}

func TestOrders_ReturnsRawFeed(t *testing.T) {
	feed := []domain.Order{{OrderID: 1}, {OrderID: 1}, {OrderID: 2}}
	svc := NewOrderService(&fakeOrderAPI{orders: feed}, loggedInStore(t))
	got, err := svc.Orders(context.Background())
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("raw feed was deduplicated: %+v", got)
	}
}

func TestUniqueOrders(t *testing.T) {
	in := []domain.Order{
		{OrderID: 2, Status: "Pending"},
		{OrderID: 1, Status: "Paid"},
		{OrderID: 2, Status: "Paid"},
	}
	got := UniqueOrders(in)
	want := []domain.Order{
		{OrderID: 2, Status: "Pending"},
		{OrderID: 1, Status: "Paid"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("UniqueOrders = %+v, want first occurrences in order", got)
	}
}

func TestPaidOrders_CaseInsensitive(t *testing.T) {
	in := []domain.Order{
		{OrderID: 1, Status: "Paid"},
		{OrderID: 2, Status: "pending"},
		{OrderID: 3, Status: "PAID"},
	}
	got := PaidOrders(in)
	if len(got) != 2 || got[0].OrderID != 1 || got[1].OrderID != 3 {
		t.Fatalf("PaidOrders = %+v", got)
	}
}

func TestTrackableOrders(t *testing.T) {
	in := []domain.Order{
		{OrderID: 1, Status: "Paid"},
		{OrderID: 2, Status: "Pending"},
		{OrderID: 1, Status: "Paid"},
	}
	got := TrackableOrders(in)
	if len(got) != 1 || got[0].OrderID != 1 {
		t.Fatalf("TrackableOrders = %+v, want exactly order 1", got)
	}
}

func TestFindOrder(t *testing.T) {
	feed := []domain.Order{{OrderID: 1, TotalPrice: 10}, {OrderID: 2, TotalPrice: 20}}
	if o, ok := FindOrder(feed, 2); !ok || o.TotalPrice != 20 {
		t.Fatalf("FindOrder(2) = %+v, %v", o, ok)
	}
	if _, ok := FindOrder(feed, 3); ok {
		t.Fatal("FindOrder(3) should miss")
	}
}

func TestCatalog_Gating(t *testing.T) {
	api := catalogFake{products: []domain.Product{{ProductID: 1, ProductName: "Duck"}}}

	loggedOut := NewCatalogService(api, NewSessionStore(context.Background(), sessionDB(t)))
	if _, err := loggedOut.Products(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}

	loggedIn := NewCatalogService(api, loggedInStore(t))
	got, err := loggedIn.Products(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("Products = %+v, %v", got, err)
	}
}

type catalogFake struct {
	products []domain.Product
}

func (f catalogFake) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, nil
}
