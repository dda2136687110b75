package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Generator creates opaque correlation ids.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns hex ids of size random bytes.
type RandomGenerator struct {
	size int
}

func NewRandomGenerator(size int) *RandomGenerator {
	if size <= 0 {
		size = 16
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

const maxInboundLen = 128

// Sanitize returns an inbound id when it is short and printable, else "".
func Sanitize(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" || len(value) > maxInboundLen {
		return ""
	}
	for _, r := range value {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return value
}
