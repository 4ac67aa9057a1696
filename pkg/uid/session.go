package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSessionID returns a random 128-bit hex id. It ends up in page URLs
// and websocket query strings, so it only needs to be unguessable.
func GenerateSessionID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
