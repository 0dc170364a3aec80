package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for telemetry forwarding.
type Metrics struct {
	Forwarded        prometheus.Counter
	Suppressed       prometheus.Counter
	DeliveryFailures prometheus.Counter
}

// New creates and registers telemetry metrics on the default registry.
// Call at most once per process.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers telemetry metrics on the given registerer. Tests use a
// fresh prometheus.NewRegistry to avoid duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Forwarded: factory.NewCounter(prometheus.CounterOpts{
			Name: "reframe_telemetry_events_forwarded_total",
			Help: "Total number of telemetry events forwarded to the analytics backend",
		}),
		Suppressed: factory.NewCounter(prometheus.CounterOpts{
			Name: "reframe_telemetry_events_suppressed_total",
			Help: "Total number of telemetry events suppressed by development mode",
		}),
		DeliveryFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "reframe_telemetry_delivery_failures_total",
			Help: "Total number of telemetry events the backend failed to accept",
		}),
	}
}

// IncForwarded increments the forwarded counter.
func (m *Metrics) IncForwarded() {
	m.Forwarded.Inc()
}

// IncSuppressed increments the suppressed counter.
func (m *Metrics) IncSuppressed() {
	m.Suppressed.Inc()
}

// IncDeliveryFailures increments the delivery failure counter.
func (m *Metrics) IncDeliveryFailures() {
	m.DeliveryFailures.Inc()
}
