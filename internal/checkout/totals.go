package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kanzcollective/storefront-backend/pkg/config"
)

// Fees captures the storefront's order-level charges. Amounts are whole
// currency units (the catalog prices carry no minor units).
type Fees struct {
	ShippingFee           int
	FreeShippingThreshold int
	TaxRate               decimal.Decimal
}

// NewFees parses the configured tax rate into a decimal fee schedule.
func NewFees(cfg config.CheckoutConfig) (Fees, error) {
	rate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return Fees{}, fmt.Errorf("parsing tax rate %q: %w", cfg.TaxRate, err)
	}
	if rate.IsNegative() {
		return Fees{}, fmt.Errorf("tax rate must not be negative, got %s", rate)
	}
	return Fees{
		ShippingFee:           cfg.ShippingFee,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		TaxRate:               rate,
	}, nil
}

// Totals is the order amount breakdown shown on the checkout summary.
type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}

// Compute derives the breakdown for a cart subtotal. Shipping is waived
// strictly above the threshold; tax is the configured rate applied to the
// subtotal, rounded to the nearest whole unit.
func (f Fees) Compute(subtotal int) Totals {
	shipping := f.ShippingFee
	if subtotal > f.FreeShippingThreshold {
		shipping = 0
	}

	tax := int(decimal.NewFromInt(int64(subtotal)).
		Mul(f.TaxRate).
		Round(0).
		IntPart())

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
