package orders

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/kanzcollective/storefront-backend/internal/cart"
	pkgerrors "github.com/kanzcollective/storefront-backend/pkg/errors"
)

const idPrefix = "KC"

// Service synthesizes orders after a simulated processing delay. There is
// no retry and no idempotency key: every submission mints a distinct
// order, and the mock never declines.
type Service struct {
	delay  time.Duration
	now    func() time.Time
	suffix func() int
}

// NewService constructs the submission adapter. delay simulates payment
// processing; zero disables it.
func NewService(delay time.Duration) *Service {
	return &Service{
		delay:  delay,
		now:    time.Now,
		suffix: func() int { return 1000 + rand.Intn(9000) },
	}
}

// Create validates nothing beyond a non-empty snapshot (field validation
// happens at the API edge), waits out the simulated delay, and returns the
// confirmed order.
func (s *Service) Create(ctx context.Context, items []cart.Line, totalAmount int, customer Customer) (*Order, error) {
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot submit an empty cart")
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, ctx.Err(), "order submission cancelled")
		case <-timer.C:
		}
	}

	now := s.now()
	snapshot := make([]cart.Line, len(items))
	copy(snapshot, items)

	return &Order{
		ID:          fmt.Sprintf("%s-%s-%04d", idPrefix, now.Format("20060102"), s.suffix()),
		Items:       snapshot,
		TotalAmount: totalAmount,
		Customer:    customer,
		Status:      StatusConfirmed,
		Date:        now,
	}, nil
}
