// Package console provides an analytics backend that writes events to a
// structured logger instead of a provider. Intended for development builds
// and for environments where outbound telemetry is disabled.
package console

import (
	"context"
	"log/slog"

	"reframe/pkg/analytics"
)

// Backend logs every call at debug level and never fails.
type Backend struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{logger: logger}
}

func (b *Backend) Screen(ctx context.Context, name string) error {
	b.logger.DebugContext(ctx, "analytics screen", "name", name)
	return nil
}

func (b *Backend) Track(ctx context.Context, name string) error {
	b.logger.DebugContext(ctx, "analytics track", "event", name)
	return nil
}

func (b *Backend) TrackWithProperties(ctx context.Context, name string, props analytics.Properties) error {
	b.logger.DebugContext(ctx, "analytics track", "event", name, "properties", props)
	return nil
}

func (b *Backend) Identify(ctx context.Context, id string) error {
	b.logger.DebugContext(ctx, "analytics identify", "id", id)
	return nil
}

func (b *Backend) IdentifyWithTraits(ctx context.Context, id string, traits analytics.Properties) error {
	b.logger.DebugContext(ctx, "analytics identify", "id", id, "traits", traits)
	return nil
}
