package addr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates that a literal or one of its parts is not a valid number.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange indicates that a part of a literal does not fit into its bit width.
	ErrRange = errors.New("value out of range")

	// ErrTooManyParts indicates that a literal has more than four dot-separated parts.
	ErrTooManyParts = errors.New("too many parts")
)

// ParseError describes a literal that could not be parsed as an address.
type ParseError struct {
	// Input is the literal being parsed.
	Input string

	// Part is the offending part of the literal, if the failure is specific to one.
	Part string

	Err error
}

func newParseError(input, part string, err error) *ParseError {
	return &ParseError{Input: input, Part: part, Err: err}
}

func (e *ParseError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("parse IPv4 address %q: part %q: %v", e.Input, e.Part, e.Err)
	}
	return fmt.Sprintf("parse IPv4 address %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
