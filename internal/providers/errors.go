package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable is returned when no upstream provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrPersonNotFound is returned when the upstream has no record for an ID.
	ErrPersonNotFound = errors.New("person not found")
	// ErrNoIDs is returned when a lookup is issued without any player IDs.
	ErrNoIDs = errors.New("at least one player id is required")
)

// StatusError captures non-200 responses from upstream providers.
type StatusError struct {
	Provider   string
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	if e.URL != "" {
		msg += " from " + e.URL
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}
