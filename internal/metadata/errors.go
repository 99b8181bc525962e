package metadata

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated      = errors.New("metadata: truncated input")
	ErrMalformedToken = errors.New("metadata: malformed token")
	ErrBufferMismatch = errors.New("metadata: buffer arrays do not match numBuffers")
)

// TruncatedInputError reports a field that needed more tokens than were left.
type TruncatedInputError struct {
	Field  string
	Offset int
	Want   int
	Have   int
}

func (e TruncatedInputError) Error() string {
	return fmt.Sprintf("metadata: truncated input at token %d: %s needs %d tokens, %d left",
		e.Offset, e.Field, e.Want, e.Have)
}

func (e TruncatedInputError) Is(target error) bool {
	return target == ErrTruncated
}

// MalformedTokenError reports a token that is not a base-16 unsigned integer.
type MalformedTokenError struct {
	Field  string
	Offset int
	Token  string
	Err    error
}

func (e MalformedTokenError) Error() string {
	return fmt.Sprintf("metadata: malformed token %q at token %d (%s): %v",
		e.Token, e.Offset, e.Field, e.Err)
}

func (e MalformedTokenError) Is(target error) bool {
	return target == ErrMalformedToken
}

func (e MalformedTokenError) Unwrap() error {
	return e.Err
}

// IOError wraps a filesystem failure while reading a dump or writing a report.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("metadata: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
