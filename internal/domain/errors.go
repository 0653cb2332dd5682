package domain

import (
	"errors"
	"fmt"
)

// Authentication errors.
var (
	ErrNotLoggedIn        = errors.New("no identity held")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Resource errors.
var (
	ErrNotFound = errors.New("resource not found")
)

// External service errors.
var (
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// APIError is a non-2xx backend response, preserved verbatim. Gateways
// never transform these; screens decide how to present them.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// APIStatus returns the backend status code carried by err, or 0 when err
// is not an APIError.
func APIStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
