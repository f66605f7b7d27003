package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidArgument     ErrorKind = "invalid_argument"
	KindNetworkFailure      ErrorKind = "network_failure"
	KindTimeout             ErrorKind = "timeout"
	KindNotFound            ErrorKind = "not_found"
	KindRateLimited         ErrorKind = "rate_limited"
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"
	KindMalformedResponse   ErrorKind = "malformed_response"
	KindUpstreamError       ErrorKind = "upstream_error"
)

// APIError is the single failure type the catalog client returns. StatusCode
// is only set for kinds derived from an HTTP response.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("catalog: %s (status=%d)", e.Kind, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("catalog: %s: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("catalog: %s", e.Kind)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
