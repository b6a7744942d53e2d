package gauth

import (
	"errors"
	"strings"
)

// Error is an authentication/credential failure. Callers detect it with
// IsAuthError to decide whether to show credential-setup guidance.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "gauth: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

// IsAuthError reports whether err is credential-related. Typed *Error values
// are authoritative; the message check is a fallback for opaque errors coming
// out of the Google SDKs. The result only selects user-facing hints, never
// control flow.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	var authErr *Error
	if errors.As(err, &authErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "credentials") ||
		strings.Contains(msg, "authentication") ||
		strings.Contains(msg, "oauth2")
}
