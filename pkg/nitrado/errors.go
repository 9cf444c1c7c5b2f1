package nitrado

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for client operations.
var (
	// ErrRateLimited is returned when the retry budget is exhausted while
	// the service keeps answering 429.
	ErrRateLimited = errors.New("rate limited")
	// ErrUnknownListType is returned for a list outside whitelist/bans/priority.
	ErrUnknownListType = errors.New("unknown list type")
	// ErrUnknownAction is returned for an action outside add/remove.
	ErrUnknownAction = errors.New("unknown list action")
	// ErrInvalidSchedule is returned when the hour expression does not form
	// a parseable cron spec.
	ErrInvalidSchedule = errors.New("invalid schedule expression")
	// ErrCredentialsUnavailable is returned when the details payload carries
	// no usable FTP credentials.
	ErrCredentialsUnavailable = errors.New("ftp credentials unavailable")
)

// APIError describes a non-success answer from the API: the HTTP status code
// plus whatever the error envelope said. Transport failures are not APIErrors;
// they surface as wrapped errors from the underlying HTTP client.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Status is the envelope "status" field, typically "error".
	Status string
	// Message is the envelope "message" field, or the raw body when the
	// response was not a JSON envelope.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// RateLimited reports whether the error is an HTTP 429 outcome.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Is lets errors.Is(err, ErrRateLimited) succeed for 429 outcomes without
// callers digging the concrete type out first.
func (e *APIError) Is(target error) bool {
	return target == ErrRateLimited && e.RateLimited()
}
