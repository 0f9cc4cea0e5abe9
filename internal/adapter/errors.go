package adapter

import "errors"

// Sentinel errors returned by [TrackProvider] implementations. Callers match
// them with [errors.Is] to translate provider failures into the transport
// layer's error taxonomy.
var (
	// ErrMissingAPIKey is returned when no provider credential is
	// configured. This is a deployment defect, not a caller mistake.
	ErrMissingAPIKey = errors.New("metadata provider api key is not configured")

	// ErrUpstreamUnavailable is returned when the provider is unreachable,
	// responds with a transport-level error, or returns a malformed or
	// error-carrying payload.
	ErrUpstreamUnavailable = errors.New("metadata provider unavailable")

	// ErrTrackNotFound is returned by lookups when the provider explicitly
	// reports that no track matches the given identifier.
	ErrTrackNotFound = errors.New("track not found at metadata provider")
)
