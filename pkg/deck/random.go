package deck

import (
	"math/rand"
	"time"

	"github.com/fadedpez/deckcore/internal/random"
)

// Source supplies the random indexes used by Shuffle
type Source interface {
	// Intn returns a uniformly distributed int in [0, n). n is always positive.
	Intn(n int) int
}

// NewSource creates a deterministic source from seed
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewRandomSource creates a source seeded from crypto/rand, falling back to
// the current time if the system entropy pool cannot be read
func NewRandomSource() Source {
	seed, err := random.NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return NewSource(seed)
}
