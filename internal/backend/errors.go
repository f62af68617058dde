package backend

import (
	"errors"
	"fmt"
)

// ErrNotObject is returned by Health when the body is valid JSON but not an
// object.
var ErrNotObject = errors.New("backend: health body is not a JSON object")

// StatusError reports a non-2xx answer from the backend. The body is not
// kept: callers collapse every failure into one generic path.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s: %s", e.Method, e.URL, e.Status)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a
// StatusError (transport failures, decode errors).
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
