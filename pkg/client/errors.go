package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnsupportedMethod is returned for methods other than GET and POST.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrFormBody is returned when a form-encoded body is not url.Values, string or []byte.
	ErrFormBody = errors.New("form body must be url.Values, string or []byte")

	// ErrNoToken is returned when a login succeeds without issuing a token.
	ErrNoToken = errors.New("login response has no token")

	// ErrEmptyBody is the cause of a DecodeError for an empty success body
	// on any status other than 204 and 205.
	ErrEmptyBody = errors.New("empty response body")
)

// APIError is a non-2xx response whose body was valid JSON.
type APIError struct {
	StatusCode int
	Body       json.RawMessage // parsed error body, verbatim
	Message    string          // error.message from Body, or a fallback
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// TransportError means no HTTP response was obtained: connection refused,
// timeout, cancelled context, or a body cut off mid-read.
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means the server answered but the body was not the JSON we expected.
type DecodeError struct {
	StatusCode int
	Snippet    string
	Err        error
}

func (e *DecodeError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("decode response (HTTP %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("decode response (HTTP %d): %v: %q", e.StatusCode, e.Err, e.Snippet)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsStatus returns true if err (or any wrapped error) is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// Message returns the text to show a user for err: the server's error message
// for API errors, the error string otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func newAPIError(status int, body json.RawMessage) *APIError {
	return &APIError{StatusCode: status, Body: body, Message: errorMessage(status, body)}
}

// errorMessage extracts error.message. It also understands {"error":"..."}
// and FastAPI's {"detail":"..."} before falling back to the status text.
func errorMessage(status int, body json.RawMessage) string {
	var envelope struct {
		Error  json.RawMessage `json:"error"`
		Detail json.RawMessage `json:"detail"`
	}
	if len(body) > 0 && json.Unmarshal(body, &envelope) == nil {
		if len(envelope.Error) > 0 {
			var nested struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(envelope.Error, &nested) == nil && nested.Message != "" {
				return nested.Message
			}
			var flat string
			if json.Unmarshal(envelope.Error, &flat) == nil && flat != "" {
				return flat
			}
		}
		var detail string
		if len(envelope.Detail) > 0 && json.Unmarshal(envelope.Detail, &detail) == nil && detail != "" {
			return detail
		}
	}
	if text := http.StatusText(status); text != "" {
		return strings.ToLower(text)
	}
	return fmt.Sprintf("status %d", status)
}
