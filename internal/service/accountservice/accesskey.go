package accountservice

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const accessKeyBytes = 9

// NewAccessKey returns 12 url-safe characters drawn from crypto/rand.
func NewAccessKey() (string, error) {
	buf := make([]byte, accessKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate access key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
