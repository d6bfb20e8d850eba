package weather

import "errors"

// Failure kinds surfaced by the pipeline. Callers distinguish them with
// errors.Is so an out-of-coverage coordinate is never reported as a network
// problem.
var (
	// Input validation, raised before any upstream call.
	ErrCityRequired     = errors.New("city name must not be empty")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")

	// ErrNotFound means the geocoder matched zero locations.
	ErrNotFound = errors.New("location not found")

	// ErrOutOfCoverage means the coordinate is outside the territory the
	// weather provider publishes data for.
	ErrOutOfCoverage = errors.New("coordinate not covered by the weather provider")

	// ErrUpstream is a non-2xx response or network failure after retries.
	ErrUpstream = errors.New("upstream request failed")

	// ErrTimeout is an upstream request that exceeded its deadline.
	ErrTimeout = errors.New("upstream request timed out")

	// ErrBadPayload is a 2xx response missing required fields.
	ErrBadPayload = errors.New("upstream response missing required fields")
)
