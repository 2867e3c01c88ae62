package apperr

import (
	"errors"
	"strings"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthenticated indicates that no partner session is active.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrTransport indicates the backend could not be reached.
var ErrTransport = errors.New("backend unreachable")

// ErrUpstream indicates the backend answered with a failure.
var ErrUpstream = errors.New("backend reported failure")

// APIError is a parsed failure body from the marketplace backend.
// StatusCode is zero when the request never got a response.
type APIError struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Err        string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
	Details    string `json:"details,omitempty"`
	Cause      error  `json:"-"`
}

// Error joins the non-empty error, message and details fields.
func (e *APIError) Error() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{e.Err, e.Message, e.Details} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "request failed"
	}
	return strings.Join(parts, ": ")
}

// Unwrap classifies the failure as transport or upstream and exposes the cause.
func (e *APIError) Unwrap() []error {
	class := ErrUpstream
	if e.StatusCode == 0 {
		class = ErrTransport
	}
	if e.Cause != nil {
		return []error{class, e.Cause}
	}
	return []error{class}
}

// Validation wraps ErrInvalid with a message meant for the partner.
func Validation(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct{ msg string }

func (v *validationError) Error() string { return v.msg }

func (v *validationError) Unwrap() error { return ErrInvalid }
