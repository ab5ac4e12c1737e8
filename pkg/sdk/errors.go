package sdk

import (
	"errors"
	"fmt"
	"net/url"
)

// UnauthorizedError reports a 401 response from the portal backend. It is a
// distinct type so that the session-clear-and-relogin policy can live in one
// top-level handler instead of being buried in a transport hook.
type UnauthorizedError struct {
	Operation string
}

func (e *UnauthorizedError) Error() string {
	if e.Operation == "" {
		return "unauthorized"
	}
	return fmt.Sprintf("%s: unauthorized", e.Operation)
}

// IsUnauthorized reports whether err (or anything it wraps) is a 401 from the backend.
func IsUnauthorized(err error) bool {
	var ue *UnauthorizedError
	return errors.As(err, &ue)
}

// APIError is a non-2xx response other than 401. Fields holds the backend's
// per-field validation messages when the body was a structured error payload.
type APIError struct {
	Operation  string
	StatusCode int
	Detail     string
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Message
	}
	if msg == "" {
		return fmt.Sprintf("%s: server returned status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Operation, msg)
}

// FieldError returns the first error message recorded for the named field.
func (e *APIError) FieldError(name string) string {
	if msgs, ok := e.Fields[name]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// IsConnectionError reports whether err is a transport-level failure, meaning
// no response reached us from the server at all.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var ue *url.Error
	return errors.As(err, &ue)
}

// ErrorMessage converts any error from an SDK call into a string fit for
// display. Structured backend errors are unpacked in precedence order
// (detail, message, then the first field-specific error); transport failures
// map to a connectivity hint; everything else falls back to the supplied
// default.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if IsConnectionError(err) {
		return "Unable to connect to server. Please check your connection."
	}
	var ae *APIError
	if errors.As(err, &ae) {
		if ae.Detail != "" {
			return ae.Detail
		}
		if ae.Message != "" {
			return ae.Message
		}
		for _, field := range []string{"username", "email", "password"} {
			if msg := ae.FieldError(field); msg != "" {
				return msg
			}
		}
	}
	return fallback
}
