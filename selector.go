package onemax

import "fmt"

type Selector struct {
	Elite int
}

func NewSelector(elite int) *Selector {
	return &Selector{Elite: elite}
}

// Select returns the Elite fittest individuals, best first. Equal scores keep
// population order. The result holds the population's own pointers, so
// later in-place mutation of an elite is visible through both.
func (s *Selector) Select(p *Population) ([]*Individual, error) {
	return SelectElites(p, s.Elite)
}

func SelectElites(p *Population, elite int) ([]*Individual, error) {
	if elite < 0 || elite > p.Size() {
		return nil, fmt.Errorf("selecting %d from %d: %w", elite, p.Size(), ErrEliteCount)
	}
	ranked := RankDescending(p.Individuals)
	return ranked[:elite:elite], nil
}
