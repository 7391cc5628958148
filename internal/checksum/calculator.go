package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes content checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string
}

// SHA256 implements Calculator using SHA-256 with lowercase hex output.
// It is a zero-size type; pass it by value.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
