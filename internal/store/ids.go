package store

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	orderCodeLength      = 6
	orderCodeAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	maxOrderCodeAttempts = 5
)

// randomOrderCode returns a short uppercase base-36 code such as "K3Z9QA".
func randomOrderCode() (string, error) {
	var b strings.Builder
	b.Grow(orderCodeLength)
	limit := big.NewInt(int64(len(orderCodeAlphabet)))
	for range orderCodeLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(orderCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}
