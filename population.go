package onemax

import (
	"fmt"
	"math/big"
)

type Population struct {
	Individuals []*Individual
}

// NewPopulationFromConfig synthesizes UnitCount individuals with uniformly
// random genomes. Fitness is left unset.
func NewPopulationFromConfig(config *PopulationConfig, rng Source) *Population {
	individuals := make([]*Individual, config.UnitCount)
	for i := range individuals {
		individuals[i] = NewIndividualFromRandom(config.GenomeLength, rng)
	}
	return &Population{Individuals: individuals}
}

func NewPopulationFromGenomes(genomes ...Genome) *Population {
	individuals := make([]*Individual, len(genomes))
	for i, g := range genomes {
		individuals[i] = NewIndividual(g)
	}
	return &Population{Individuals: individuals}
}

func (p *Population) Size() int {
	return len(p.Individuals)
}

// Fitnesses lists the stored score of every individual in population order.
func (p *Population) Fitnesses() []*big.Rat {
	fits := make([]*big.Rat, len(p.Individuals))
	for i, ind := range p.Individuals {
		fits[i] = ind.Score()
	}
	return fits
}

func (p *Population) Genomes() []Genome {
	genomes := make([]Genome, len(p.Individuals))
	for i, ind := range p.Individuals {
		genomes[i] = ind.Genome
	}
	return genomes
}

func (p *Population) String() string {
	return fmt.Sprintf("Population{size: %d}", len(p.Individuals))
}
