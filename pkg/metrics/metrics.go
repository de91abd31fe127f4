package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records order submission outcomes.
type CheckoutMetrics struct {
	duration   *prometheus.HistogramVec
	orders     *prometheus.CounterVec
	orderValue prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Duration of checkout submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_total",
		Help: "Orders submitted, by outcome.",
	}, []string{"outcome"})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_value_units",
		Help:    "Order totals in whole currency units.",
		Buckets: prometheus.ExponentialBuckets(100, 2.5, 8),
	})
	reg.MustRegister(duration, orders, orderValue)
	return &CheckoutMetrics{
		duration:   duration,
		orders:     orders,
		orderValue: orderValue,
	}
}

// ObserveDuration records how long a submission took.
func (c *CheckoutMetrics) ObserveDuration(outcome string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncOrder counts a submission with the given outcome.
func (c *CheckoutMetrics) IncOrder(outcome string) {
	if c == nil || c.orders == nil {
		return
	}
	c.orders.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveOrderValue records the total of a confirmed order.
func (c *CheckoutMetrics) ObserveOrderValue(totalUnits int) {
	if c == nil || c.orderValue == nil {
		return
	}
	c.orderValue.Observe(float64(totalUnits))
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}
