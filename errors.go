// Package shadowdive holds the error taxonomy shared by the resource codecs
// in its subpackages.
//
// Callers need to tell "could not access the file" apart from "file was
// accessed, but its content is invalid". Codecs report the former as an
// *IOError and the latter as a *ParseError. Both survive wrapping with
// github.com/pkg/errors, so IsIOError and IsParseError can be used on
// whatever error a codec returns.
package shadowdive

import (
	"github.com/pkg/errors"
)

// IOError reports a failure of the underlying transport (open, read, write).
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "shadowdive: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports bytes that were read fine, but violate a format
// invariant: a missing string terminator, a nested sprite that failed to
// decode, or data ending before its declared size.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return "shadowdive: " + e.Op + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewIOError wraps err as an *IOError attributed to op.
func NewIOError(op string, err error) error {
	return &IOError{Op: op, Err: err}
}

// NewParseError returns a *ParseError for op with a formatted reason.
func NewParseError(op string, format string, args ...interface{}) error {
	return &ParseError{Op: op, Err: errors.Errorf(format, args...)}
}

// IsIOError reports whether err, or anything it wraps, is an *IOError.
func IsIOError(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}

// IsParseError reports whether err, or anything it wraps, is a *ParseError.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
