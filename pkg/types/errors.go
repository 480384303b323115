package types

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the failure condition of a ParseError.
type ErrorCode string

// Error codes.
const (
	// S0xxx: Syntax errors
	ErrUnexpectedEnd       ErrorCode = "S0104"
	ErrUnexpectedCharacter ErrorCode = "S0105"
	ErrSyntaxError         ErrorCode = "S0201"
	ErrExpectedToken       ErrorCode = "S0202"
	ErrMaxDepth            ErrorCode = "S0203"
	ErrCanceled            ErrorCode = "S0204"

	// T0xxx: Semantic errors
	ErrLeftSideAssignment ErrorCode = "T2001"

	// G0xxx: Grammar configuration errors
	ErrInvalidGrammar ErrorCode = "G0101"
)

// ParseError is the single error kind returned by the lexer, the engine and the
// grammar loader. Conditions are told apart by Code.
type ParseError struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error

	// Incomplete marks an error that more input could resolve, such as a
	// closing delimiter missing at the end of the input.
	Incomplete bool
}

// NewError creates a new ParseError.
func NewError(code ErrorCode, message string, position int) *ParseError {
	return &ParseError{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WithToken adds token information to the error.
func (e *ParseError) WithToken(token string) *ParseError {
	e.Token = token
	return e
}

// AtEnd marks the error as caused by the input ending too early.
func (e *ParseError) AtEnd() *ParseError {
	e.Incomplete = true
	return e
}

// WithCause wraps another error.
func (e *ParseError) WithCause(err error) *ParseError {
	e.Err = err
	return e
}

// CodeOf returns the code of the first ParseError in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsIncomplete reports whether err means the input ended before the expression
// did, so that more input could make it parse.
func IsIncomplete(err error) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Code == ErrUnexpectedEnd || pe.Incomplete
}
