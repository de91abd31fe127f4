package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kanzcollective/storefront-backend/api/controllers"
	cartsvc "github.com/kanzcollective/storefront-backend/internal/cart"
	"github.com/kanzcollective/storefront-backend/internal/catalog"
	"github.com/kanzcollective/storefront-backend/internal/checkout"
	"github.com/kanzcollective/storefront-backend/internal/orders"
	"github.com/kanzcollective/storefront-backend/pkg/config"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubCatalogService struct{}

func (stubCatalogService) ListProducts(ctx context.Context, q catalog.Query) ([]catalog.ProductDTO, error) {
	return []catalog.ProductDTO{}, nil
}

func (stubCatalogService) GetProduct(ctx context.Context, id string) (*catalog.ProductDTO, error) {
	return &catalog.ProductDTO{ID: id}, nil
}

func (stubCatalogService) Tags() []string {
	return []string{"sarees"}
}

type stubCartService struct{}

func (stubCartService) Get(ctx context.Context, sessionID string) (cartsvc.State, error) {
	return cartsvc.State{Lines: []cartsvc.Line{{ProductID: "kc001", Price: 100, Quantity: 1}}}, nil
}

func (s stubCartService) Add(ctx context.Context, sessionID, productID string) (cartsvc.State, error) {
	return s.Get(ctx, sessionID)
}

func (s stubCartService) Remove(ctx context.Context, sessionID, productID string) (cartsvc.State, error) {
	return s.Get(ctx, sessionID)
}

func (s stubCartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (cartsvc.State, error) {
	return s.Get(ctx, sessionID)
}

func (s stubCartService) Clear(ctx context.Context, sessionID string) (cartsvc.State, error) {
	return cartsvc.State{Lines: []cartsvc.Line{}}, nil
}

func (s stubCartService) Toggle(ctx context.Context, sessionID string) (cartsvc.State, error) {
	return s.Get(ctx, sessionID)
}

type stubOrderService struct{}

func (stubOrderService) Create(ctx context.Context, items []cartsvc.Line, totalAmount int, customer orders.Customer) (*orders.Order, error) {
	return &orders.Order{ID: "KC-20250812-1234", Status: orders.StatusConfirmed}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{App: config.AppConfig{Env: "dev", Port: "8080"}}
	fees, err := checkout.NewFees(config.CheckoutConfig{ShippingFee: 150, FreeShippingThreshold: 5000, TaxRate: "0.05"})
	if err != nil {
		t.Fatalf("building fees: %v", err)
	}

	return NewRouter(
		cfg,
		nil,
		map[string]controllers.Pinger{"postgres": stubPinger{}, "redis": stubPinger{}},
		stubCatalogService{},
		stubCartService{},
		stubOrderService{},
		fees,
		nil,
		prometheus.NewRegistry(),
	)
}

func TestRouterWiresExpectedRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{"GET", "/health/live", "", http.StatusOK},
		{"GET", "/health/ready", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"GET", "/api/v1/products", "", http.StatusOK},
		{"GET", "/api/v1/products/tags", "", http.StatusOK},
		{"GET", "/api/v1/products/kc001", "", http.StatusOK},
		{"GET", "/api/v1/cart", "", http.StatusOK},
		{"POST", "/api/v1/cart/items", `{"productId":"kc001"}`, http.StatusOK},
		{"DELETE", "/api/v1/cart/items/kc001", "", http.StatusOK},
		{"PATCH", "/api/v1/cart/items/kc001", `{"quantity":2}`, http.StatusOK},
		{"POST", "/api/v1/cart/clear", "", http.StatusOK},
		{"POST", "/api/v1/cart/toggle", "", http.StatusOK},
		{"GET", "/api/v1/checkout/totals", "", http.StatusOK},
		{"POST", "/api/v1/checkout", `{"customer":{"name":"Asha Rao","email":"asha@example.com","address":"12 Loom Lane","city":"Varanasi","pincode":"221001"}}`, http.StatusCreated},
		{"GET", "/api/v1/orders", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		var body *strings.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		} else {
			body = strings.NewReader("")
		}

		r := httptest.NewRequest(tc.method, tc.path, body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d: %s", tc.method, tc.path, tc.want, w.Code, w.Body.String())
		}
	}
}

func TestRouterSetsSessionCookieOnCartRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	r := httptest.NewRequest("GET", "/api/v1/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "kc_session" && cookie.Value != "" {
			return
		}
	}
	t.Fatal("expected kc_session cookie on first cart contact")
}

func TestRouterEchoesRequestID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	r := httptest.NewRequest("GET", "/health/live", nil)
	r.Header.Set("X-Request-Id", "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if got := w.Header().Get("X-Request-Id"); got != "req-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
}
