package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// HTTPError is a non-2xx backend answer. It unwraps to one of the status
// sentinels declared in errors.go.
type HTTPError struct {
	StatusCode int
	Message    string
	sentinel   error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (http %d): %s", e.sentinel, e.StatusCode, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.sentinel
}

// NewHTTPError builds the error returned for a response with the given
// status code and server message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: code,
		Message:    message,
		sentinel:   statusSentinel(code),
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewHTTPError(resp.StatusCode(), responseMessage(resp.StatusCode(), resp.Body()))
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusRequestTimeout:
		return ErrRequestTimeout
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessableEntity
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusGatewayTimeout:
		return ErrGatewayTimeout
	default:
		return ErrUnexpectedStatus
	}
}

// responseMessage extracts a human readable message from an error body. The
// backend answers either {"message": "..."}, {"error": "..."} or plain text.
func responseMessage(code int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Error != "":
			return payload.Error
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}

	return http.StatusText(code)
}

// StatusCode returns the HTTP status carried by err, or 0 when the failure
// happened before a response was received.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// Message returns the server message carried by err, falling back to err.Error().
func Message(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsPayloadError reports whether the backend rejected the request body
// itself. Retrying the same payload cannot succeed.
func IsPayloadError(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrUnprocessableEntity)
}

// IsAuthError reports whether the backend refused the credentials.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// IsTransient reports whether the same request may succeed later: network
// failures, timeouts, throttling and 5xx answers.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrRequestTimeout) ||
		errors.Is(err, ErrTooManyRequests) {
		return true
	}

	code := StatusCode(err)
	return code >= http.StatusInternalServerError && code <= 599
}
