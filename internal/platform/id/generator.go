package id

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// Generator creates opaque identifiers for sessions and other server-issued handles.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	prefix string
}

// NewRandomGenerator returns a generator of 128-bit random hex IDs, each
// starting with prefix (may be empty).
func NewRandomGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: prefix}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return g.prefix + hex.EncodeToString(buf), nil
}
