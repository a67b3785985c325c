package onemax

import (
	"fmt"
	"math/big"
)

// An evaluation of fitness for OneMax is the share of 1-bits in the genome,
// kept as an exact rational so repeated sums for reporting do not drift. A
// genome scores 1 exactly when every gene is 1.

type Evaluator struct {
	Length uint
}

func NewEvaluator(length uint) *Evaluator {
	return &Evaluator{Length: length}
}

// Evaluate scores the genome without storing the result. A genome of the
// wrong length means an operator broke the population and is not recoverable.
func (e *Evaluator) Evaluate(ind *Individual) *big.Rat {
	if uint(len(ind.Genome)) != e.Length {
		panic(fmt.Errorf("evaluating genome of length %d, expected %d: %w", len(ind.Genome), e.Length, ErrGenomeLength))
	}
	return big.NewRat(int64(ind.Genome.Ones()), int64(e.Length))
}

// EvaluatePopulation scores every individual and stores the fitness in place.
func (e *Evaluator) EvaluatePopulation(p *Population) {
	for _, ind := range p.Individuals {
		ind.Fitness = e.Evaluate(ind)
	}
}
