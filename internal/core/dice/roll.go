package dice

import (
	"math/rand"
	"time"

	"github.com/louisbranch/cortex-dice/internal/random"
)

// Source supplies the randomness for rolls.
type Source interface {
	// Intn returns a uniform int in [0, n). n is always > 0.
	Intn(n int) int
}

// NewSource returns an independent source seeded with seed.
//
// Two sources built from the same seed produce the same faces for the same
// sequence of rolls.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewRandomSource returns an independent source seeded from crypto/rand,
// together with the seed so the roll can be replayed.
func NewRandomSource() (Source, int64, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, 0, err
	}
	return NewSource(seed), seed, nil
}

// defaultSource is used by pools built without WithSource.
func defaultSource() Source {
	src, _, err := NewRandomSource()
	if err != nil {
		return NewSource(time.Now().UnixNano())
	}
	return src
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}
