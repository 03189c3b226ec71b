package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// RandomNumericCode returns a random code of n decimal digits.
// Leading zeros are allowed.
func RandomNumericCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid code length")
	}

	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
