// Package luhn implements the Luhn checksum algorithm: computing a check
// digit for a digit string, validating that a digit string's trailing digit
// matches its computed checksum, and generating random digit strings of a
// given length that satisfy the check.
//
// Inputs are digit strings, not numeric values: leading zeros are significant
// and preserved. The checksum is not a cryptographic or fraud-detection
// mechanism; it only guards against accidental transcription errors.
//
// All operations are pure apart from Random reading crypto/rand, and a
// Checker is safe for concurrent use.
package luhn

import (
	"strconv"

	apperrors "github.com/allisson/go-luhn/internal/errors"
	"github.com/allisson/go-luhn/internal/validation"
)

// Checker defines the interface for Luhn check digit operations.
type Checker interface {
	Generate(digits string, opts *GenerateOptions) (string, error)
	Validate(candidate string) (bool, error)
	Random(lengthSpec string) (string, error)
}

type checker struct{}

// NewChecker creates a new Checker.
func NewChecker() Checker {
	return &checker{}
}

// Generate computes the Luhn check digit for digits and returns digits with
// the check digit appended. With opts.ChecksumOnly set, only the check digit
// is returned as a single-character string. A nil opts means defaults.
// Returns an error if digits is not a well-formed digit string.
func (c *checker) Generate(digits string, opts *GenerateOptions) (string, error) {
	if err := validation.DigitString(digits); err != nil {
		return "", err
	}

	check := strconv.Itoa(checkDigit(digits))

	if opts != nil && opts.ChecksumOnly {
		return check, nil
	}

	return digits + check, nil
}

// Validate reports whether candidate's trailing digit is the Luhn check digit
// of the digits before it. Returns an error if candidate is not a well-formed
// digit string of at least two characters.
func (c *checker) Validate(candidate string) (bool, error) {
	if err := validation.DigitString(candidate); err != nil {
		return false, err
	}

	// A single character cannot hold both a payload digit and a check digit.
	if len(candidate) < 2 {
		return false, errValidateTooShort
	}

	payload := candidate[:len(candidate)-1]
	generated, err := c.Generate(payload, nil)
	if err != nil {
		return false, err
	}

	return generated == candidate, nil
}

// Random generates a random number of the given length that passes the Luhn
// check. The length is itself given as a digit string and must denote an
// integer between 2 and 100 inclusive. All digits except the trailing check
// digit are sampled uniformly from 0 to 9, so the result may start with zero.
func (c *checker) Random(lengthSpec string) (string, error) {
	if err := validation.DigitString(lengthSpec); err != nil {
		return "", err
	}

	length, err := strconv.Atoi(lengthSpec)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrParse, err.Error())
	}
	if length > maxRandomLength {
		return "", errRandomTooLong
	}
	if length < minRandomLength {
		return "", errRandomTooShort
	}

	payload, err := randomDigits(length - 1)
	if err != nil {
		return "", err
	}

	return c.Generate(payload, nil)
}

// defaultChecker backs the package-level functions.
var defaultChecker = NewChecker()

// Generate computes the Luhn check digit for digits using the default
// Checker. See Checker.Generate.
func Generate(digits string, opts *GenerateOptions) (string, error) {
	return defaultChecker.Generate(digits, opts)
}

// Validate reports whether candidate passes the Luhn check using the default
// Checker. See Checker.Validate.
func Validate(candidate string) (bool, error) {
	return defaultChecker.Validate(candidate)
}

// Random generates a random Luhn-valid number using the default Checker. See
// Checker.Random.
func Random(lengthSpec string) (string, error) {
	return defaultChecker.Random(lengthSpec)
}
