// Package entities contains core business entities and errors.
package entities

import "errors"

// ErrFetchFailed signals that the record source could not return employees.
var ErrFetchFailed = errors.New("fetch failed")

// FetchError carries the human-readable message reported by the record source.
// It matches ErrFetchFailed with errors.Is.
type FetchError struct {
	Message string
	Err     error
}

// NewFetchError wraps err with the given message.
func NewFetchError(message string, err error) *FetchError {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &FetchError{Message: message, Err: err}
}

func (e *FetchError) Error() string {
	return e.Message
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetchFailed}
	}
	return []error{ErrFetchFailed, e.Err}
}

// FetchMessage returns the message a user should see for err.
func FetchMessage(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
