package resolvconf

import (
	"errors"
	"fmt"
)

// Parse failures fall into a small set of kinds, one sentinel per kind.
// Use errors.Is against these to classify a returned error.
var (
	// ErrInvalidUTF8 reports a non-comment line that is not valid UTF-8.
	// Whole-line comments are exempt and may contain arbitrary bytes.
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrInvalidValue reports a directive missing a required argument or
	// carrying one that fails its shape check.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidOptionValue reports an option whose numeric value does
	// not parse as an unsigned integer.
	ErrInvalidOptionValue = errors.New("invalid option value")

	// ErrInvalidOption reports an option the dialect does not recognize.
	// Only strict dialects raise it; DialectPermissive skips instead.
	ErrInvalidOption = errors.New("unknown option")

	// ErrInvalidDirective reports a keyword the dialect does not
	// recognize. Only strict dialects raise it.
	ErrInvalidDirective = errors.New("unknown directive")

	// ErrInvalidIP reports an address or network token that failed to
	// parse. The underlying cause is wrapped alongside it.
	ErrInvalidIP = errors.New("invalid IP")

	// ErrExtraData reports trailing tokens after a directive that takes
	// a fixed number of arguments.
	ErrExtraData = errors.New("extra data at end of line")
)

// ParseError is the error type for malformed input. It carries the
// 1-based line number the problem was found on and wraps one of the
// sentinel kinds above, so both errors.As and errors.Is apply.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
