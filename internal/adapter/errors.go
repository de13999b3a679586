package adapter

import "errors"

// Sentinel errors mapped from backend HTTP status codes by mapHTTPError.
// Callers match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("backend: bad request")
	ErrUnauthorized        = errors.New("backend: unauthorized")
	ErrForbidden           = errors.New("backend: forbidden")
	ErrNotFound            = errors.New("backend: not found")
	ErrConflict            = errors.New("backend: conflict")
	ErrTooManyRequests     = errors.New("backend: too many requests")
	ErrInternalServerError = errors.New("backend: internal server error")
	ErrBadGateway          = errors.New("backend: bad gateway")
	ErrUnavailable         = errors.New("backend: unavailable")
)

// ErrMalformedResponse is returned when a 2xx response body cannot be decoded.
var ErrMalformedResponse = errors.New("backend: malformed response")
