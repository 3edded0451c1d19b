package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateID creates a unique identifier with the given prefix
func GenerateID(prefix string) string {
	timestamp := time.Now().UnixNano()

	// Add random component for uniqueness
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)

	// Create hash for shorter, consistent length
	hash := sha256.Sum256([]byte(fmt.Sprintf("%d_%s", timestamp, hex.EncodeToString(randomBytes))))
	hashStr := hex.EncodeToString(hash[:4])

	return fmt.Sprintf("%s_%d_%s", prefix, timestamp, hashStr)
}

// FormatUint renders a uint64 for use in state keys and event metadata
func FormatUint(v uint64) string {
	return fmt.Sprintf("%d", v)
}
