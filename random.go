package luhn

import (
	"crypto/rand"
	"math/big"

	apperrors "github.com/allisson/go-luhn/internal/errors"
)

// Bounds for the length accepted by Random, inclusive.
const (
	minRandomLength = 2
	maxRandomLength = 100
)

// randomDigits generates length cryptographically secure random digits, each
// sampled uniformly and independently from 0 to 9.
func randomDigits(length int) (string, error) {
	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", apperrors.Wrap(err, "failed to generate random digit")
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
