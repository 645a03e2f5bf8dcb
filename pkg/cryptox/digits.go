package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateDigitCode returns a uniformly random numeric code of the
// given length, e.g. "493027" for length 6. Leading zeros are allowed;
// the code is a string, not a number.
func GenerateDigitCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate digit code: %w", err)
		}
		buf[i] = '0' + byte(n.Int64())
	}

	return string(buf), nil
}

// RandomInt returns a uniformly random integer in the inclusive range
// [min, max].
func RandomInt(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("invalid range [%d, %d]", min, max)
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		return 0, err
	}

	return min + int(n.Int64()), nil
}
