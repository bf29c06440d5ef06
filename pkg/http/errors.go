package http

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoContent is returned for 204 responses.
var ErrNoContent = errors.New("no content")

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Method string
	URL    string
	Status int
	Body   string
}

// NewStatusError builds a StatusError, truncating long bodies.
func NewStatusError(method, url string, status int, body []byte) *StatusError {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return &StatusError{Method: method, URL: url, Status: status, Body: string(body)}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.Status, e.Body)
}

// IsUnauthorized reports whether err is a 401 or 403 StatusError.
func IsUnauthorized(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden
	}
	return false
}
