// Package errors provides the standardized domain errors shared across the
// library. These errors express what is wrong with the caller's input rather
// than how the failure was detected, and they form a closed set: the public
// luhn package re-exports them, and the validation rules return them.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the category every input failure wraps. Callers that do
// not care which rule was violated can match on this single error.
var ErrInvalidInput = errors.New("invalid input")

// Digit string violations, in the order the validator checks them.
var (
	// ErrEmptyString indicates the input string has zero length.
	ErrEmptyString = Wrap(ErrInvalidInput, "string cannot be empty")

	// ErrContainsSpaces indicates the input contains a space character.
	ErrContainsSpaces = Wrap(ErrInvalidInput, "string cannot contain spaces")

	// ErrNegativeNumber indicates the input contains a minus sign.
	ErrNegativeNumber = Wrap(ErrInvalidInput, "negative numbers are not allowed")

	// ErrFloatingPoint indicates the input contains a decimal point.
	ErrFloatingPoint = Wrap(ErrInvalidInput, "floating point numbers are not allowed")

	// ErrNonNumeric indicates the input contains a character that is not an
	// ASCII decimal digit.
	ErrNonNumeric = Wrap(ErrInvalidInput, "string must be convertible to a number")
)

// Operation-level failures.
var (
	// ErrInvalidLength indicates an input or requested length outside the
	// range an operation accepts. Call sites wrap it with the specific bound
	// that was violated.
	ErrInvalidLength = Wrap(ErrInvalidInput, "invalid length")

	// ErrParse indicates a length spec that could not be parsed as an integer.
	ErrParse = Wrap(ErrInvalidInput, "failed to parse length")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
