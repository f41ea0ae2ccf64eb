package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewOrderCode generates the random order document code. Staff-facing short
// codes are the last four characters, upper-cased.
func NewOrderCode() string {
	b := make([]byte, 10)
	if _, err := rand.Read(b); err != nil {
		return "0000000000ffff0000ff"
	}
	return hex.EncodeToString(b)
}
