package socketlabs

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is returned by New when the credentials are missing or malformed.
	ErrConfig = errors.New("socketlabs: invalid client configuration")

	// ErrValidation is returned when a message fails local checks.
	// No request is sent in that case.
	ErrValidation = errors.New("socketlabs: invalid message")

	// ErrTransport is returned when the HTTP request could not be completed
	// (connection refused, timeout, TLS failure, redirect loop).
	ErrTransport = errors.New("socketlabs: request failed")

	// ErrAPI is matched by every *APIError.
	ErrAPI = errors.New("socketlabs: unexpected response status")

	// ErrDecode is returned when a 2xx response body is not valid JSON.
	ErrDecode = errors.New("socketlabs: failed to decode response")
)

// APIError describes a non-2xx response from the Injection API.
type APIError struct {
	Body       string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("socketlabs: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("socketlabs: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Unwrap makes errors.Is(err, ErrAPI) hold for any *APIError.
func (e *APIError) Unwrap() error {
	return ErrAPI
}

// ErrorKind tags the failure class of an error returned by the client.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfig
	KindValidation
	KindTransport
	KindAPI
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// KindOf reports which class err belongs to.
// Errors not produced by this package yield KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrConfig):
		return KindConfig
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrAPI):
		return KindAPI
	case errors.Is(err, ErrDecode):
		return KindDecode
	default:
		return KindUnknown
	}
}

// IsAPIError checks whether err carries an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
