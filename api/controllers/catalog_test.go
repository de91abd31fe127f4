package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kanzcollective/storefront-backend/internal/catalog"
	pkgerrors "github.com/kanzcollective/storefront-backend/pkg/errors"
)

type stubCatalogService struct {
	products []catalog.ProductDTO
	product  *catalog.ProductDTO
	tags     []string
	err      error

	gotQuery catalog.Query
	gotID    string
}

func (s *stubCatalogService) ListProducts(ctx context.Context, q catalog.Query) ([]catalog.ProductDTO, error) {
	s.gotQuery = q
	return s.products, s.err
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id string) (*catalog.ProductDTO, error) {
	s.gotID = id
	return s.product, s.err
}

func (s *stubCatalogService) Tags() []string {
	return s.tags
}

func TestProductListPassesQueryThrough(t *testing.T) {
	t.Parallel()

	svc := &stubCatalogService{products: []catalog.ProductDTO{{ID: "kc001", Name: "Classic Banarasi Silk"}}}
	handler := ProductList(svc, nil)

	r := httptest.NewRequest("GET", "/api/v1/products?search=silk&tags=sarees,silk&sort=price-low-high", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.gotQuery.Search != "silk" {
		t.Fatalf("expected search passed through, got %q", svc.gotQuery.Search)
	}
	if len(svc.gotQuery.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", svc.gotQuery.Tags)
	}
	if svc.gotQuery.Sort != catalog.SortPriceLowHigh {
		t.Fatalf("expected price-low-high sort, got %q", svc.gotQuery.Sort)
	}

	var payload struct {
		Data struct {
			Products []catalog.ProductDTO `json:"products"`
			Count    int                  `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if payload.Data.Count != 1 || len(payload.Data.Products) != 1 {
		t.Fatalf("expected one product, got %+v", payload.Data)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	t.Parallel()

	svc := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := ProductDetail(svc, nil)

	r := httptest.NewRequest("GET", "/api/v1/products/kc999", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", "kc999")
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	handler(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if svc.gotID != "kc999" {
		t.Fatalf("expected id from route, got %q", svc.gotID)
	}
}

func TestProductTags(t *testing.T) {
	t.Parallel()

	svc := &stubCatalogService{tags: []string{"sarees", "silk"}}
	w := httptest.NewRecorder()
	ProductTags(svc, nil)(w, httptest.NewRequest("GET", "/api/v1/products/tags", nil))

	var payload struct {
		Data struct {
			Tags []string `json:"tags"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(payload.Data.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", payload.Data.Tags)
	}
}
