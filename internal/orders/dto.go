package orders

import (
	"time"

	"github.com/kanzcollective/storefront-backend/internal/cart"
)

// Customer is the contact/address record collected on the checkout form.
type Customer struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// Order is the synthesized record handed back after a mock submission.
// It is never mutated and never persisted; the confirmation view is its
// only consumer.
type Order struct {
	ID          string      `json:"id"`
	Items       []cart.Line `json:"items"`
	TotalAmount int         `json:"totalAmount"`
	Customer    Customer    `json:"customer"`
	Status      string      `json:"status"`
	Date        time.Time   `json:"date"`
}

// StatusConfirmed is the only status the mock adapter ever produces;
// "pending" exists in the model for a future real processor.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)
