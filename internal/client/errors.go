package client

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation  Kind = "validation"
	KindAuth        Kind = "auth"
	KindNotFound    Kind = "not_found"
	KindRateLimited Kind = "rate_limited"
	KindServer      Kind = "server"
)

// NetworkError means no HTTP response arrived: the dial failed, the request
// timed out or the context was canceled.
type NetworkError struct {
	Op  string
	Err error
}

func (err *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", err.Op, err.Err)
}

func (err *NetworkError) Unwrap() error {
	return err.Err
}

// APIError is a non-2xx response decoded from the server's {"error", "field"} body.
type APIError struct {
	Status  int
	Message string
	Field   string
	Kind    Kind
}

func (err *APIError) Error() string {
	if err.Field != "" {
		return fmt.Sprintf("%s (%d): %s [%s]", err.Kind, err.Status, err.Message, err.Field)
	}
	return fmt.Sprintf("%s (%d): %s", err.Kind, err.Status, err.Message)
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindValidation
	}
}

// Guidance turns a client error into a short hint for the person using the app.
func Guidance(err error) string {
	if err == nil {
		return ""
	}

	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return "Unable to reach the Joy Dairy server. Check your connection and try again."
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "Something unexpected happened. Please try again."
	}

	switch apiErr.Kind {
	case KindAuth:
		return "Your session is invalid or your credentials are wrong. Please sign in again."
	case KindNotFound:
		return "Nothing was found for that request."
	case KindRateLimited:
		return "Too many attempts. Wait a few minutes before trying again."
	case KindServer:
		return "The server had a problem. Please try again in a few minutes."
	default:
		if apiErr.Message != "" {
			return "Please check your input: " + apiErr.Message
		}
		return "Please check your input and try again."
	}
}
