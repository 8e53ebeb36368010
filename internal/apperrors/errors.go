package apperrors

import (
	"errors"
	"fmt"
)

// NetworkError is returned when an upstream resource could not be reached
// (dial failure, reset connection, timeout or cancelled request).
type NetworkError struct {
	Resource string
	ID       int
	Err      error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s %d: %v", e.Resource, e.ID, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *NetworkError) Is(target error) bool {
	_, ok := target.(*NetworkError)
	return ok
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(resource string, id int, err error) *NetworkError {
	return &NetworkError{
		Resource: resource,
		ID:       id,
		Err:      err,
	}
}

// HTTPStatusError is returned when an upstream answers with a non-2xx status.
type HTTPStatusError struct {
	Resource   string
	ID         int
	StatusCode int
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s %d returned status %d", e.Resource, e.ID, e.StatusCode)
}

// Is allows for error checking with errors.Is().
// A target with a zero StatusCode matches any status.
func (e *HTTPStatusError) Is(target error) bool {
	t, ok := target.(*HTTPStatusError)
	if !ok {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// NewHTTPStatusError creates a new HTTPStatusError.
func NewHTTPStatusError(resource string, id int, statusCode int) *HTTPStatusError {
	return &HTTPStatusError{
		Resource:   resource,
		ID:         id,
		StatusCode: statusCode,
	}
}

// ParseError is returned when an upstream body does not match the expected shape.
type ParseError struct {
	Resource string
	ID       int
	Err      error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s %d: %v", e.Resource, e.ID, e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError.
func NewParseError(resource string, id int, err error) *ParseError {
	return &ParseError{
		Resource: resource,
		ID:       id,
		Err:      err,
	}
}

// InvalidAmountError is returned when a stream amount cannot be interpreted as an integer.
type InvalidAmountError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid stream amount %q: must be an integer", e.Value)
}

// Is allows for error checking with errors.Is().
func (e *InvalidAmountError) Is(target error) bool {
	_, ok := target.(*InvalidAmountError)
	return ok
}

// IsUpstream reports whether err was caused by one of the upstream resources.
func IsUpstream(err error) bool {
	for _, target := range []error{&NetworkError{}, &HTTPStatusError{}, &ParseError{}} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
