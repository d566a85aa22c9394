package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	codeMin = 1000
	codeMax = 9999
)

// GenerateCode returns a 4-digit verification code drawn uniformly from [1000, 9999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
