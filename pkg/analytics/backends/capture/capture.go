// Package capture implements the analytics backend over the provider's HTTP
// capture API.
//
// Each backend method issues exactly one POST. Batching, retry, and delivery
// guarantees belong to the provider; this client deliberately has none.
package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"reframe/pkg/analytics"
	"reframe/pkg/platform/sentinel"
)

// Platform selects which write key authenticates outbound events.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// Config carries everything needed to reach the capture endpoint. Both
// platform write keys are provisioned together; Platform picks the active one.
type Config struct {
	Endpoint        string
	AndroidWriteKey string
	IOSWriteKey     string
	Platform        Platform

	// HTTPClient overrides the default client (10s timeout) when set.
	HTTPClient *http.Client
}

// Backend sends events to the provider's /capture endpoint.
type Backend struct {
	endpoint string
	writeKey string
	client   *http.Client

	mu         sync.Mutex
	distinctID string
}

// event is the capture API request body.
type event struct {
	APIKey     string               `json:"api_key"`
	UUID       string               `json:"uuid"`
	Event      string               `json:"event"`
	DistinctID string               `json:"distinct_id"`
	Properties analytics.Properties `json:"properties,omitempty"`
	Timestamp  string               `json:"timestamp"`
}

// New creates a capture backend. The write key for the configured platform
// must be present; the distinct ID starts as a random anonymous ID and is
// replaced when Identify is called.
func New(cfg Config) (*Backend, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("capture: endpoint is required")
	}
	writeKey := cfg.AndroidWriteKey
	if cfg.Platform == PlatformIOS {
		writeKey = cfg.IOSWriteKey
	}
	if writeKey == "" {
		return nil, fmt.Errorf("capture: %w for platform %q", sentinel.ErrInvalidWriteKey, cfg.Platform)
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Backend{
		endpoint:   cfg.Endpoint,
		writeKey:   writeKey,
		client:     client,
		distinctID: uuid.NewString(),
	}, nil
}

func (b *Backend) Screen(ctx context.Context, name string) error {
	return b.send(ctx, "$screen", analytics.Properties{"$screen_name": name})
}

func (b *Backend) Track(ctx context.Context, name string) error {
	return b.send(ctx, name, nil)
}

func (b *Backend) TrackWithProperties(ctx context.Context, name string, props analytics.Properties) error {
	return b.send(ctx, name, props)
}

func (b *Backend) Identify(ctx context.Context, id string) error {
	b.setDistinctID(id)
	return b.send(ctx, "$identify", nil)
}

func (b *Backend) IdentifyWithTraits(ctx context.Context, id string, traits analytics.Properties) error {
	b.setDistinctID(id)
	return b.send(ctx, "$identify", analytics.Properties{"$set": traits})
}

func (b *Backend) setDistinctID(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.distinctID = id
}

func (b *Backend) currentDistinctID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.distinctID
}

func (b *Backend) send(ctx context.Context, name string, props analytics.Properties) error {
	body, err := json.Marshal(event{
		APIKey:     b.writeKey,
		UUID:       uuid.NewString(),
		Event:      name,
		DistinctID: b.currentDistinctID(),
		Properties: props,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("encode capture event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build capture request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("send capture event: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("capture rejected: %w", sentinel.ErrInvalidWriteKey)
	default:
		return fmt.Errorf("capture returned status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}
}
