package helpers

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type WatchlistError struct {
	Message string
	Cause   error
}

func (e *WatchlistError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *WatchlistError) Unwrap() error {
	return e.Cause
}

// -----------------------------------------------------------------------------

// UpstreamError reports a failed upstream API call: a transport error, a
// non-2xx status, or an error/rate-limit sentinel embedded in a 200 body.
// Message carries the upstream's own text when the payload provides one.
type UpstreamError struct{ WatchlistError }

// ParseError reports a response body that does not match the expected shape
// for the requested endpoint, or a required field that failed to parse.
type ParseError struct{ WatchlistError }

// ConfigurationError reports invalid or missing runtime configuration.
type ConfigurationError struct{ WatchlistError }

// -----------------------------------------------------------------------------

func NewUpstreamError(format string, args ...interface{}) error {
	return &UpstreamError{WatchlistError{Message: fmt.Sprintf(format, args...)}}
}

func WrapUpstreamError(cause error, format string, args ...interface{}) error {
	return &UpstreamError{WatchlistError{Message: fmt.Sprintf(format, args...), Cause: cause}}
}

func NewParseError(format string, args ...interface{}) error {
	return &ParseError{WatchlistError{Message: fmt.Sprintf(format, args...)}}
}

func WrapParseError(cause error, format string, args ...interface{}) error {
	return &ParseError{WatchlistError{Message: fmt.Sprintf(format, args...), Cause: cause}}
}

// -----------------------------------------------------------------------------

// AsUpstreamError extracts an UpstreamError from an error chain.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	ok := errors.As(err, &ue)
	return ue, ok
}

// IsUpstreamError reports whether err is (or wraps) an UpstreamError.
func IsUpstreamError(err error) bool {
	_, ok := AsUpstreamError(err)
	return ok
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
