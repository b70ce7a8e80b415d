package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can branch without matching messages.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindNotFound          ErrorKind = "not_found"
	KindTransport         ErrorKind = "transport"
	KindService           ErrorKind = "service"
	KindRouteUnavailable  ErrorKind = "route_unavailable"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindMissingDistance   ErrorKind = "missing_distance"
)

var (
	// ErrMalformedResponse reports a routing response without rows[0].elements[0].
	ErrMalformedResponse = errors.New("routing response has no result element")
	// ErrMissingDistance reports a routable element that carries no distance.
	ErrMissingDistance = errors.New("routing response element has no distance")
)

// ValidationError is a user-correctable input problem.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports a missing entity by type and id.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// TransportError is a network, timeout, or non-2xx HTTP failure.
// StatusCode is zero when no response was received.
type TransportError struct {
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("routing transport error: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("routing transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError is a non-OK top-level status from the routing provider.
type ServiceError struct {
	Status  string
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("routing service error: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("routing service error: %s", e.Status)
}

// RouteUnavailableError is a non-OK element status, e.g. NOT_FOUND or ZERO_RESULTS
// between the two addresses.
type RouteUnavailableError struct {
	Status string
}

func (e *RouteUnavailableError) Error() string {
	return fmt.Sprintf("no route available between addresses: %s", e.Status)
}

// KindOf maps an error chain to its ErrorKind. Unknown errors report "".
func KindOf(err error) ErrorKind {
	var (
		ve *ValidationError
		nf *NotFoundError
		te *TransportError
		se *ServiceError
		re *RouteUnavailableError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &nf):
		return KindNotFound
	case errors.As(err, &te):
		return KindTransport
	case errors.As(err, &se):
		return KindService
	case errors.As(err, &re):
		return KindRouteUnavailable
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrMissingDistance):
		return KindMissingDistance
	default:
		return ""
	}
}
