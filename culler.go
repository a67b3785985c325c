package onemax

import "fmt"

// Culler assembles the next generation: the worst individuals of the current
// population make room for the elites and the offspring.
type Culler struct {
	Capacity int
}

func NewCuller(capacity int) *Culler {
	return &Culler{Capacity: capacity}
}

// Replace ranks the current population worst-first, drops as many as will be
// added, then appends elites and offspring in that order. Equal scores keep
// population order, so the earlier of two tied individuals is dropped first.
// The size of the result always equals the size of current.
func (c *Culler) Replace(current *Population, elites, offspring []*Individual) (*Population, error) {
	culled := len(elites) + len(offspring)
	if culled > current.Size() {
		return nil, fmt.Errorf("replacing %d of %d: %w", culled, current.Size(), ErrReplacementOverflow)
	}
	if c.Capacity > 0 && current.Size() != c.Capacity {
		return nil, fmt.Errorf("population holds %d, capacity is %d: %w", current.Size(), c.Capacity, ErrPopulationSize)
	}

	ranked := RankAscending(current.Individuals)
	next := make([]*Individual, 0, current.Size())
	next = append(next, ranked[culled:]...)
	next = append(next, elites...)
	next = append(next, offspring...)
	return &Population{Individuals: next}, nil
}
