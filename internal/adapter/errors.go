package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers match
// them with [errors.Is]; the concrete [*HTTPError] keeps the status code and
// the server message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRequestTimeout      = errors.New("request timeout")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
)

var (
	// ErrNetwork wraps transport failures: refused connections, DNS errors,
	// timeouts and cancelled requests. No HTTP response was received.
	ErrNetwork = errors.New("network error")

	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response body")

	// ErrInvalidAddress is returned by the constructor for an unusable base URL.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)
