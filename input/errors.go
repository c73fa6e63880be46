package input

import "errors"

// Sentinel errors for the input cache. Returned errors wrap one of these
// together with the underlying cause.
var (
	// ErrInvalidArgument indicates year < 2015 or day outside 1..25.
	ErrInvalidArgument = errors.New("input: invalid argument")
	// ErrUnauthorized indicates the remote rejected the credential (4xx),
	// or no credential could be loaded.
	ErrUnauthorized = errors.New("input: unauthorized")
	// ErrRemoteUnavailable indicates a transport error, a 5xx or other
	// unexpected status, a truncated body, or a limiter refusing the request.
	ErrRemoteUnavailable = errors.New("input: remote unavailable")
	// ErrStorageUnavailable indicates a local filesystem failure while persisting.
	ErrStorageUnavailable = errors.New("input: storage unavailable")
	// ErrNoCredential indicates the credential source had no session cookie.
	ErrNoCredential = errors.New("input: no session credential")
	// ErrInvalidConfig indicates a configuration that cannot work.
	ErrInvalidConfig = errors.New("input: invalid config")
)

// errorKind labels an error for the fetch error counter.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrRemoteUnavailable):
		return "remote_unavailable"
	case errors.Is(err, ErrStorageUnavailable):
		return "storage_unavailable"
	default:
		return "other"
	}
}
