package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the server could not
	// be reached or its response could not be parsed.
	ErrUnavailable = errors.New("server unavailable")
)

// StatusError is an application failure: the server answered with a non-2xx
// status and, usually, a detail message.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Detail)
}

// AsStatusError unwraps err into a StatusError, if it is one.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
