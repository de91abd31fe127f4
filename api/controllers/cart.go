package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kanzcollective/storefront-backend/api/middleware"
	"github.com/kanzcollective/storefront-backend/api/responses"
	"github.com/kanzcollective/storefront-backend/api/validators"
	cartsvc "github.com/kanzcollective/storefront-backend/internal/cart"
	"github.com/kanzcollective/storefront-backend/pkg/logger"
)

// cartView is the drawer's render model: the line sequence plus the
// derived aggregates, recomputed on every response.
type cartView struct {
	Items      []cartsvc.Line `json:"items"`
	TotalItems int            `json:"totalItems"`
	Subtotal   int            `json:"subtotal"`
	Open       bool           `json:"open"`
}

func toCartView(state cartsvc.State) cartView {
	items := state.Lines
	if items == nil {
		items = []cartsvc.Line{}
	}
	return cartView{
		Items:      items,
		TotalItems: state.TotalItems(),
		Subtotal:   state.Subtotal(),
		Open:       state.Open,
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// Quantity carries no floor here: the state machine clamps anything
// below one up to one, matching how the drawer's stepper behaves.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartFetch returns the session's cart, rehydrating it on first contact.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartView(state))
	}
}

// CartAddItem puts one more unit of the product in the cart. The response
// carries an `opened` hint so clients can surface the drawer without the
// cart state itself flipping visibility.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body addItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithProductID(ctx, body.ProductID)
		}

		state, err := svc.Add(ctx, middleware.SessionIDFromContext(ctx), body.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"cart":   toCartView(state),
			"opened": true,
		})
	}
}

// CartRemoveItem drops the product's line entirely.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		productID := chi.URLParam(r, "productId")
		if logg != nil {
			ctx = logg.WithProductID(ctx, productID)
		}

		state, err := svc.Remove(ctx, middleware.SessionIDFromContext(ctx), productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartView(state))
	}
}

// CartUpdateQuantity sets the product's line quantity, floored at one.
func CartUpdateQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		productID := chi.URLParam(r, "productId")
		if logg != nil {
			ctx = logg.WithProductID(ctx, productID)
		}

		var body updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		state, err := svc.UpdateQuantity(ctx, middleware.SessionIDFromContext(ctx), productID, body.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartView(state))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Clear(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartView(state))
	}
}

// CartToggle flips the drawer visibility flag.
func CartToggle(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Toggle(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartView(state))
	}
}
