package luhn

import (
	apperrors "github.com/allisson/go-luhn/internal/errors"
)

// Errors returned by Generate, Validate and Random. Match them with
// errors.Is; every one of them also matches ErrInvalidInput.
var (
	// ErrInvalidInput is the category every input failure wraps.
	ErrInvalidInput = apperrors.ErrInvalidInput

	// ErrEmptyString indicates an empty input string.
	ErrEmptyString = apperrors.ErrEmptyString

	// ErrContainsSpaces indicates an input containing a space character.
	ErrContainsSpaces = apperrors.ErrContainsSpaces

	// ErrNegativeNumber indicates an input containing a minus sign.
	ErrNegativeNumber = apperrors.ErrNegativeNumber

	// ErrFloatingPoint indicates an input containing a decimal point.
	ErrFloatingPoint = apperrors.ErrFloatingPoint

	// ErrNonNumeric indicates an input containing a non-digit character.
	ErrNonNumeric = apperrors.ErrNonNumeric

	// ErrInvalidLength indicates an input or requested length outside the
	// range the operation accepts.
	ErrInvalidLength = apperrors.ErrInvalidLength

	// ErrParse indicates a length spec that could not be parsed as an
	// integer.
	ErrParse = apperrors.ErrParse
)

// Length violations with the specific bound spelled out in the message.
var (
	errValidateTooShort = apperrors.Wrap(apperrors.ErrInvalidLength, "string must be longer than 1 character")
	errRandomTooLong    = apperrors.Wrap(apperrors.ErrInvalidLength, "string must be less than 100 characters")
	errRandomTooShort   = apperrors.Wrap(apperrors.ErrInvalidLength, "string must be greater than 1")
)
