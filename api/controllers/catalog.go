package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kanzcollective/storefront-backend/api/responses"
	"github.com/kanzcollective/storefront-backend/api/validators"
	"github.com/kanzcollective/storefront-backend/internal/catalog"
	"github.com/kanzcollective/storefront-backend/pkg/logger"
)

// ProductList returns the catalog filtered and ordered by the shop
// page's controls.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListProducts(r.Context(), validators.CatalogQuery(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}

// ProductDetail returns a single product by id.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		productID := chi.URLParam(r, "productId")
		if logg != nil {
			ctx = logg.WithProductID(ctx, productID)
		}

		product, err := svc.GetProduct(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ProductTags returns the fixed filter vocabulary the shop page offers.
func ProductTags(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"tags": svc.Tags()})
	}
}
