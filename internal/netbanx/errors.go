package netbanx

import (
	"errors"
	"fmt"
)

// APIError is a structured error body returned by the REST generation
// (vault steps and auth failures that carry an error object).
type APIError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("netbanx error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
