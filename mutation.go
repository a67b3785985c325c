package onemax

import "math/big"

// Mutator resamples genes in place. An individual is picked with probability
// IndividualRate, and each gene of a picked individual is redrawn with
// probability GeneRate. A redrawn gene can come back unchanged.
type Mutator struct {
	IndividualRate *big.Rat
	GeneRate       *big.Rat
	rng            Source
}

// NewMutator keeps the exact binary value of each float64 rate. A rate of
// 0.1 is therefore slightly above the draw 10/100 and beats it.
func NewMutator(individualRate, geneRate float64, rng Source) *Mutator {
	return &Mutator{
		IndividualRate: new(big.Rat).SetFloat64(individualRate),
		GeneRate:       new(big.Rat).SetFloat64(geneRate),
		rng:            rng,
	}
}

// chance draws an integer in [0, MutationScale], scales it into [0, 1] and
// reports whether rate is strictly greater.
func (m *Mutator) chance(rate *big.Rat) bool {
	draw := big.NewRat(int64(m.rng.Intn(MutationScale+1)), MutationScale)
	return rate.Cmp(draw) > 0
}

// Apply visits every individual once. Fitness is not touched and is stale
// for the mutated ones until the next evaluation. Returns how many
// individuals were picked for mutation.
func (m *Mutator) Apply(p *Population) int {
	picked := 0
	for _, ind := range p.Individuals {
		if !m.chance(m.IndividualRate) {
			continue
		}
		picked++
		for g := range ind.Genome {
			if m.chance(m.GeneRate) {
				ind.Genome[g] = randomBit(m.rng)
			}
		}
	}
	return picked
}
