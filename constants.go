package onemax

import (
	"math/rand"
	"time"
)

const (
	DEBUG = false

	GenomeLength       = 100
	MaxGenomeList      = 100
	SelectGenome       = 20
	IndividualMutation = 0.1
	GenomeMutation     = 0.1
	MaxGeneration      = 40

	// Draws for mutation are integers in [0, MutationScale] compared against
	// probability * MutationScale.
	MutationScale = 100
)

// Source is the random stream every operator draws from. *rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
}

// NewRand returns a seeded source. If seed is 0, the current time is used
// (non-deterministic). A non-zero seed gives reproducible runs.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func randomBit(rng Source) byte {
	return byte(rng.Intn(2))
}
