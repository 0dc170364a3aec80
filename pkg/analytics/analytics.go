// Package analytics is the product telemetry facade for Reframe.
//
// Application code never talks to the analytics provider directly. It calls
// the typed event catalog on Client (see events.go), which forwards each call
// to an injected Backend. Most events are suppressed in development so local
// testing does not pollute production dashboards; the exceptions are listed
// per method in the catalog.
//
// Events feed aggregate dashboards only. Do not attach directly identifying
// information (emails, names) to any event.
package analytics

import (
	"context"
	"log/slog"

	"reframe/pkg/analytics/metrics"
)

// Client forwards catalog events to a Backend, applying development-mode
// suppression. The zero value is not usable; construct with New.
type Client struct {
	backend Backend
	isDev   func() bool
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for local log output and delivery failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithDevelopmentMode sets the predicate consulted before each suppressible
// event. It is called per event, so the mode can change at runtime.
func WithDevelopmentMode(isDev func() bool) Option {
	return func(c *Client) {
		if isDev != nil {
			c.isDev = isDev
		}
	}
}

// WithMetrics attaches Prometheus counters for forwarded, suppressed, and
// failed events.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a telemetry client. A nil backend degrades to Noop so callers
// can wire the facade unconditionally and decide about delivery elsewhere.
func New(backend Backend, opts ...Option) *Client {
	c := &Client{
		backend: backend,
		isDev:   func() bool { return false },
		logger:  slog.Default(),
	}
	if backend == nil {
		c.backend = Noop{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Screen records a screen view. Suppressed in development.
func (c *Client) Screen(ctx context.Context, name string) {
	if c.suppress() {
		return
	}
	c.forward(ctx, name, c.backend.Screen(ctx, name))
}

// Identify associates subsequent events with an anonymous user ID.
// Suppressed in development.
func (c *Client) Identify(ctx context.Context, id string) {
	if c.suppress() {
		return
	}
	c.forward(ctx, "identify", c.backend.Identify(ctx, id))
}

// IdentifyWithTraits associates an anonymous user ID along with traits.
// Suppressed in development.
func (c *Client) IdentifyWithTraits(ctx context.Context, id string, traits Properties) {
	if c.suppress() {
		return
	}
	c.forward(ctx, "identify", c.backend.IdentifyWithTraits(ctx, id, traits))
}

// Log records a labeled diagnostic event. In development it writes to the
// local logger and nothing reaches the backend; in production it forwards as
// a "log" event with the label and, when present, the nested properties.
func (c *Client) Log(ctx context.Context, label string, props Properties) {
	if c.development() {
		c.logger.InfoContext(ctx, "telemetry log", "label", label, "properties", props)
		c.countSuppressed()
		return
	}
	payload := Properties{"label": label}
	if props != nil {
		payload["properties"] = props
	}
	c.forward(ctx, EventLog, c.backend.TrackWithProperties(ctx, EventLog, payload))
}

func (c *Client) development() bool {
	return c.isDev()
}

// suppress reports whether a dev-checked event should be dropped, counting
// the drop when it happens.
func (c *Client) suppress() bool {
	if !c.development() {
		return false
	}
	c.countSuppressed()
	return true
}

// track forwards a no-properties event, honoring development suppression.
func (c *Client) track(ctx context.Context, name string) {
	if c.suppress() {
		return
	}
	c.forward(ctx, name, c.backend.Track(ctx, name))
}

// trackAlways forwards a no-properties event regardless of environment.
// Reserved for funnel-critical events whose dashboards count every install.
func (c *Client) trackAlways(ctx context.Context, name string) {
	c.forward(ctx, name, c.backend.Track(ctx, name))
}

// trackWithProperties forwards an event with properties, honoring
// development suppression.
func (c *Client) trackWithProperties(ctx context.Context, name string, props Properties) {
	if c.suppress() {
		return
	}
	c.forward(ctx, name, c.backend.TrackWithProperties(ctx, name, props))
}

// trackWithPropertiesAlways forwards an event with properties regardless of
// environment.
func (c *Client) trackWithPropertiesAlways(ctx context.Context, name string, props Properties) {
	c.forward(ctx, name, c.backend.TrackWithProperties(ctx, name, props))
}

// forward accounts for the outcome of a backend call. Telemetry is
// fire-and-forget: failures are logged and counted, never surfaced to the
// caller, and never retried here.
func (c *Client) forward(ctx context.Context, name string, err error) {
	if err != nil {
		c.logger.WarnContext(ctx, "telemetry delivery failed", "event", name, "error", err)
		if c.metrics != nil {
			c.metrics.IncDeliveryFailures()
		}
		return
	}
	if c.metrics != nil {
		c.metrics.IncForwarded()
	}
}

func (c *Client) countSuppressed() {
	if c.metrics != nil {
		c.metrics.IncSuppressed()
	}
}
