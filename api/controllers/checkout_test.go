package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cartsvc "github.com/kanzcollective/storefront-backend/internal/cart"
	"github.com/kanzcollective/storefront-backend/internal/checkout"
	"github.com/kanzcollective/storefront-backend/internal/orders"
	"github.com/kanzcollective/storefront-backend/pkg/config"
	pkgerrors "github.com/kanzcollective/storefront-backend/pkg/errors"
)

type stubOrderCreator struct {
	order *orders.Order
	err   error

	gotItems    []cartsvc.Line
	gotTotal    int
	gotCustomer orders.Customer
}

func (s *stubOrderCreator) Create(ctx context.Context, items []cartsvc.Line, totalAmount int, customer orders.Customer) (*orders.Order, error) {
	s.gotItems = items
	s.gotTotal = totalAmount
	s.gotCustomer = customer
	return s.order, s.err
}

func testFees(t *testing.T) checkout.Fees {
	t.Helper()
	fees, err := checkout.NewFees(config.CheckoutConfig{
		ShippingFee:           150,
		FreeShippingThreshold: 5000,
		TaxRate:               "0.05",
	})
	if err != nil {
		t.Fatalf("building fees: %v", err)
	}
	return fees
}

const validCheckoutBody = `{"customer":{"name":"Asha Rao","email":"asha@example.com","address":"12 Loom Lane","city":"Varanasi","pincode":"221001"}}`

func TestCheckoutTotalsForCurrentCart(t *testing.T) {
	t.Parallel()

	carts := &stubCartService{state: cartsvc.State{Lines: []cartsvc.Line{{ProductID: "kc001", Price: 2499, Quantity: 1}}}}
	r := httptest.NewRequest("GET", "/api/v1/checkout/totals", nil)
	w, _ := withSession(r, CheckoutTotals(carts, testFees(t), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var payload struct {
		Data checkout.Totals `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	want := checkout.Totals{Subtotal: 2499, Shipping: 150, Tax: 125, Total: 2774}
	if payload.Data != want {
		t.Fatalf("expected %+v, got %+v", want, payload.Data)
	}
}

func TestCheckoutConfirmsAndClearsCart(t *testing.T) {
	t.Parallel()

	carts := &stubCartService{state: cartsvc.State{Lines: []cartsvc.Line{{ProductID: "kc001", Price: 2499, Quantity: 1}}}}
	orderSvc := &stubOrderCreator{order: &orders.Order{
		ID:          "KC-20250812-4242",
		TotalAmount: 2774,
		Status:      orders.StatusConfirmed,
		Date:        time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC),
	}}

	r := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(validCheckoutBody))
	w, _ := withSession(r, Checkout(carts, orderSvc, testFees(t), nil, nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if orderSvc.gotTotal != 2774 {
		t.Fatalf("expected server-computed total 2774, got %d", orderSvc.gotTotal)
	}
	if orderSvc.gotCustomer.Email != "asha@example.com" {
		t.Fatalf("expected customer from body, got %+v", orderSvc.gotCustomer)
	}
	if len(carts.calls) == 0 || carts.calls[len(carts.calls)-1] != "clear" {
		t.Fatalf("cart must be cleared after confirmation, calls: %v", carts.calls)
	}

	var payload struct {
		Data struct {
			Order  orders.Order    `json:"order"`
			Totals checkout.Totals `json:"totals"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if payload.Data.Order.ID != "KC-20250812-4242" || payload.Data.Order.Status != orders.StatusConfirmed {
		t.Fatalf("unexpected order in response: %+v", payload.Data.Order)
	}
	if payload.Data.Totals.Total != 2774 {
		t.Fatalf("expected totals echoed, got %+v", payload.Data.Totals)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	t.Parallel()

	orderSvc := &stubOrderCreator{}
	r := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(validCheckoutBody))
	w, _ := withSession(r, Checkout(&stubCartService{}, orderSvc, testFees(t), nil, nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if orderSvc.gotItems != nil {
		t.Fatal("empty cart must not reach the order adapter")
	}
}

func TestCheckoutInvalidCustomer(t *testing.T) {
	t.Parallel()

	body := `{"customer":{"name":"Asha Rao","email":"not-an-email","address":"12 Loom Lane","city":"Varanasi","pincode":"221001"}}`
	r := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(body))
	w, _ := withSession(r, Checkout(&stubCartService{}, &stubOrderCreator{}, testFees(t), nil, nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	t.Parallel()

	carts := &stubCartService{state: cartsvc.State{Lines: []cartsvc.Line{{ProductID: "kc001", Price: 2499, Quantity: 1}}}}
	orderSvc := &stubOrderCreator{err: pkgerrors.New(pkgerrors.CodeInternal, "processor down")}

	r := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(validCheckoutBody))
	w, _ := withSession(r, Checkout(carts, orderSvc, testFees(t), nil, nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	for _, call := range carts.calls {
		if call == "clear" {
			t.Fatal("failed submission must not clear the cart")
		}
	}
}
