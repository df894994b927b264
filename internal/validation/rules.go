// Package validation provides the digit string validation rules shared by
// every operation in the library.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/go-luhn/internal/errors"
)

// Rules for digit strings. They run in a fixed order so the most descriptive
// violation wins: emptiness, then spaces, then sign, then decimal point, then
// any remaining non-digit character.
var (
	// NotEmpty rejects the empty string.
	NotEmpty = validation.By(notEmpty)

	// NoSpaces rejects strings containing a space character.
	NoSpaces = validation.By(noSpaces)

	// NoMinusSign rejects strings containing a minus sign.
	NoMinusSign = validation.By(noMinusSign)

	// NoDecimalPoint rejects strings containing a decimal point.
	NoDecimalPoint = validation.By(noDecimalPoint)

	// DigitsOnly rejects strings containing any character outside '0'..'9'.
	DigitsOnly = validation.By(digitsOnly)
)

// DigitString validates that value is a non-empty string of ASCII decimal
// digits. The first violated rule is returned as the matching domain error.
func DigitString(value string) error {
	return validation.Validate(value,
		NotEmpty,
		NoSpaces,
		NoMinusSign,
		NoDecimalPoint,
		DigitsOnly,
	)
}

func notEmpty(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return apperrors.ErrEmptyString
	}
	return nil
}

func noSpaces(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsRune(s, ' ') {
		return apperrors.ErrContainsSpaces
	}
	return nil
}

func noMinusSign(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsRune(s, '-') {
		return apperrors.ErrNegativeNumber
	}
	return nil
}

func noDecimalPoint(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsRune(s, '.') {
		return apperrors.ErrFloatingPoint
	}
	return nil
}

func digitsOnly(value interface{}) error {
	s, _ := value.(string)
	for _, r := range s {
		if r < '0' || r > '9' {
			return apperrors.ErrNonNumeric
		}
	}
	return nil
}
