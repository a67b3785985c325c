package onemax

import "golang.org/x/exp/slices"

// Ranking orders individuals by stored fitness. Both directions use a stable
// sort, so individuals with equal scores keep their population order. That
// order decides which of two tied genomes survives and must not change.

// RankDescending returns a best-first copy of the slice.
func RankDescending(individuals []*Individual) []*Individual {
	ranked := slices.Clone(individuals)
	slices.SortStableFunc(ranked, func(a, b *Individual) int {
		return b.Score().Cmp(a.Score())
	})
	return ranked
}

// RankAscending returns a worst-first copy of the slice.
func RankAscending(individuals []*Individual) []*Individual {
	ranked := slices.Clone(individuals)
	slices.SortStableFunc(ranked, func(a, b *Individual) int {
		return a.Score().Cmp(b.Score())
	})
	return ranked
}
