package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Backend adapters return these
// (optionally wrapped) so callers can branch on the fact without parsing
// provider responses.
//
// These represent factual states about the provider, not validation failures:
// - ErrUnavailable: provider rejected or could not accept the event
// - ErrInvalidWriteKey: provider did not recognize the configured write key
var (
	ErrUnavailable     = errors.New("unavailable")
	ErrInvalidWriteKey = errors.New("invalid write key")
)
