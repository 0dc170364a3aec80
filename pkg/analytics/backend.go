package analytics

import "context"

// Properties carries optional event attributes. Values should stay primitive
// (strings, numbers, booleans) so every provider can ingest them unchanged.
//
// Never put directly identifying information (emails, names, phone numbers)
// in properties. Dashboards are aggregate-only; this is enforced in review,
// not in code.
type Properties map[string]any

// Backend is the port to the analytics provider. Adapters live under
// backends/ and are injected into the Client; the facade never constructs
// one itself.
//
// Delivery guarantees, batching, and retry are the provider's concern. An
// adapter makes at most one outbound call per method invocation.
type Backend interface {
	// Screen records a screen view.
	Screen(ctx context.Context, name string) error

	// Track records a named event with no properties.
	Track(ctx context.Context, name string) error

	// TrackWithProperties records a named event with attached properties.
	TrackWithProperties(ctx context.Context, name string, props Properties) error

	// Identify associates subsequent events with the given anonymous ID.
	Identify(ctx context.Context, id string) error

	// IdentifyWithTraits associates an anonymous ID along with traits.
	IdentifyWithTraits(ctx context.Context, id string, traits Properties) error
}

// Noop is a Backend that discards everything. Useful as a default when
// telemetry is disabled entirely.
type Noop struct{}

func (Noop) Screen(context.Context, string) error                          { return nil }
func (Noop) Track(context.Context, string) error                           { return nil }
func (Noop) TrackWithProperties(context.Context, string, Properties) error { return nil }
func (Noop) Identify(context.Context, string) error                        { return nil }
func (Noop) IdentifyWithTraits(context.Context, string, Properties) error  { return nil }
