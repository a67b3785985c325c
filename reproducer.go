package onemax

import "fmt"

// Reproducer builds offspring from elites with two-point crossover.
type Reproducer struct {
	Length uint
	rng    Source
}

func NewReproducer(length uint, rng Source) *Reproducer {
	return &Reproducer{
		Length: length,
		rng:    rng,
	}
}

// CrossPoints draws c1 from [0, L] and then c2 from [c1, L]. The second point
// is conditioned on the first, which skews c2 toward L.
func (r *Reproducer) CrossPoints() (int, int) {
	length := int(r.Length)
	c1 := r.rng.Intn(length + 1)
	c2 := c1 + r.rng.Intn(length-c1+1)
	return c1, c2
}

// Crossover swaps the [c1, c2) segment between two parents. Parents are left
// untouched and the children start unevaluated.
func (r *Reproducer) Crossover(a, b *Individual) (*Individual, *Individual) {
	r.checkLength(a)
	r.checkLength(b)
	c1, c2 := r.CrossPoints()
	return CrossoverAt(a, b, c1, c2)
}

func CrossoverAt(a, b *Individual, c1, c2 int) (*Individual, *Individual) {
	return NewIndividual(splice(a.Genome, b.Genome, c1, c2)),
		NewIndividual(splice(b.Genome, a.Genome, c1, c2))
}

func splice(outer, inner Genome, c1, c2 int) Genome {
	child := make(Genome, 0, len(outer))
	child = append(child, outer[:c1]...)
	child = append(child, inner[c1:c2]...)
	child = append(child, outer[c2:]...)
	return child
}

// Reproduce crosses every adjacent pair of elites, (elites[i-1], elites[i]),
// with the first elite paired against the last. It returns two children per
// elite in pairing order.
func (r *Reproducer) Reproduce(elites []*Individual) []*Individual {
	offspring := make([]*Individual, 0, 2*len(elites))
	for i := range elites {
		prev := elites[(i-1+len(elites))%len(elites)]
		c1, c2 := r.Crossover(prev, elites[i])
		offspring = append(offspring, c1, c2)
	}
	return offspring
}

func (r *Reproducer) checkLength(ind *Individual) {
	if uint(len(ind.Genome)) != r.Length {
		panic(fmt.Errorf("crossing genome of length %d, expected %d: %w", len(ind.Genome), r.Length, ErrGenomeLength))
	}
}
