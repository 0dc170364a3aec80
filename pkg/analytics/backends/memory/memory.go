// Package memory provides a recording analytics backend. Tests and local
// tooling use it to assert exactly which events the facade forwarded.
package memory

import (
	"context"
	"sync"

	"reframe/pkg/analytics"
)

// Call is one recorded backend invocation.
type Call struct {
	Op         string // "screen", "track", "identify"
	Name       string // event or screen name; empty for identify
	ID         string // identify only
	Properties analytics.Properties
}

// Recorder implements analytics.Backend by appending every call to a slice.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Screen(_ context.Context, name string) error {
	r.append(Call{Op: "screen", Name: name})
	return nil
}

func (r *Recorder) Track(_ context.Context, name string) error {
	r.append(Call{Op: "track", Name: name})
	return nil
}

func (r *Recorder) TrackWithProperties(_ context.Context, name string, props analytics.Properties) error {
	r.append(Call{Op: "track", Name: name, Properties: props})
	return nil
}

func (r *Recorder) Identify(_ context.Context, id string) error {
	r.append(Call{Op: "identify", ID: id})
	return nil
}

func (r *Recorder) IdentifyWithTraits(_ context.Context, id string, traits analytics.Properties) error {
	r.append(Call{Op: "identify", ID: id, Properties: traits})
	return nil
}

// Calls returns a copy of everything recorded so far, in call order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call{}, r.calls...)
}

// Clear discards all recorded calls.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *Recorder) append(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}
