package booking

import (
	"crypto/rand"
	"fmt"
)

const (
	refIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	refIDLength   = 8

	// maxRefIDAttempts bounds the regenerate-on-collision loop. With a 36^8
	// keyspace exhausting this is effectively unreachable, but the loop must
	// not be unbounded in principle.
	maxRefIDAttempts = 5
)

// GenerateRefID produces an 8-character customer-facing reference drawn from
// [A-Z0-9]. Uniqueness is enforced by the booking collection's unique index,
// not here.
func GenerateRefID() (string, error) {
	buf := make([]byte, refIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = refIDAlphabet[int(b)%len(refIDAlphabet)]
	}
	return string(buf), nil
}
