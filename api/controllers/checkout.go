package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/kanzcollective/storefront-backend/api/middleware"
	"github.com/kanzcollective/storefront-backend/api/responses"
	"github.com/kanzcollective/storefront-backend/api/validators"
	cartsvc "github.com/kanzcollective/storefront-backend/internal/cart"
	"github.com/kanzcollective/storefront-backend/internal/checkout"
	"github.com/kanzcollective/storefront-backend/internal/orders"
	pkgerrors "github.com/kanzcollective/storefront-backend/pkg/errors"
	"github.com/kanzcollective/storefront-backend/pkg/logger"
	"github.com/kanzcollective/storefront-backend/pkg/metrics"
)

// OrderCreator is the submission adapter the checkout handler hands the
// cart snapshot to.
type OrderCreator interface {
	Create(ctx context.Context, items []cartsvc.Line, totalAmount int, customer orders.Customer) (*orders.Order, error)
}

type checkoutRequest struct {
	Customer orders.Customer `json:"customer" validate:"required"`
}

// CheckoutTotals returns the amount breakdown for the session's current
// cart.
func CheckoutTotals(carts cartsvc.Service, fees checkout.Fees, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := carts.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, fees.Compute(state.Subtotal()))
	}
}

// Checkout places an order for the session's cart. The items and amounts
// come from the server-held cart, never from the request body; on success
// the cart is cleared, on failure it is left intact for retry.
func Checkout(carts cartsvc.Service, orderSvc OrderCreator, fees checkout.Fees, m *metrics.CheckoutMetrics, logg *logger.Logger) http.HandlerFunc {
	record := func(outcome string, start time.Time) {
		m.IncOrder(outcome)
		m.ObserveDuration(outcome, time.Since(start))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID := middleware.SessionIDFromContext(ctx)
		start := time.Now()

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			record("validation_failed", start)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		state, err := carts.Get(ctx, sessionID)
		if err != nil {
			record("cart_unavailable", start)
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if len(state.Lines) == 0 {
			record("empty_cart", start)
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "cannot submit an empty cart"))
			return
		}

		totals := fees.Compute(state.Subtotal())
		order, err := orderSvc.Create(ctx, state.Lines, totals.Total, body.Customer)
		if err != nil {
			record("failed", start)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithOrderID(ctx, order.ID)
		}

		// The confirmed order already snapshots the lines, so clearing
		// here cannot lose anything; a failed clear only leaves a stale
		// slot behind.
		if _, err := carts.Clear(ctx, sessionID); err != nil && logg != nil {
			logg.Warn(ctx, "cart clear after order failed")
		}

		record("confirmed", start)
		m.ObserveOrderValue(order.TotalAmount)
		if logg != nil {
			logg.Info(ctx, "order.confirmed")
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"order":  order,
			"totals": totals,
		})
	}
}
