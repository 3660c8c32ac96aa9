package entity

import (
	"errors"
	"fmt"
)

var (
	// provider could not be reached or answered with a failure status
	ErrTransport = errors.New("transport error")
	// provider was reached but had no answer for the request
	ErrNotFound = errors.New("not found")
	// scraped text is not lyrics
	ErrRejected = errors.New("rejected")
)

// ParseError reports a provider payload which could not be decoded,
// carrying the raw text for diagnosis
type ParseError struct {
	Raw string
	Err error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("cannot parse provider response: %v", err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Transport wraps err so that it matches both ErrTransport and err
func Transport(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}
