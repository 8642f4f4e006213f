// Package random provides high-entropy seeds for dice sources.
//
// Seeds come from crypto/rand so that independent pools never share a
// predictable starting state, while still letting a caller replay a roll by
// reusing the returned seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return NewSeedFrom(crand.Reader)
}

// NewSeedFrom reads a seed from r. It exists so callers can supply a fixed
// entropy stream in tests.
func NewSeedFrom(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
