package utils

import (
	"crypto/rand"
	"fmt"
)

// NewRequestID returns a random 16-hex-char identifier for request tracing.
func NewRequestID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}
