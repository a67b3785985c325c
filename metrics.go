package onemax

import (
	"math/big"
	"strings"

	"github.com/xrash/smetrics"
)

// Non-terminating averages are cut after this many fractional digits.
const decimalPrecision = 28

// GenerationMetrics holds aggregate fitness metrics for one evaluated
// population.
type GenerationMetrics struct {
	Min *big.Rat
	Max *big.Rat
	Avg *big.Rat

	// Mean Hamming distance from each genome to the best one.
	Diversity float64
}

// QueryMetrics computes min, max and mean over the stored fitness of every
// individual. The population must already be evaluated.
func QueryMetrics(p *Population) *GenerationMetrics {
	m := &GenerationMetrics{
		Min: new(big.Rat),
		Max: new(big.Rat),
		Avg: new(big.Rat),
	}
	fits := p.Fitnesses()
	if len(fits) == 0 {
		return m
	}

	sum := new(big.Rat)
	m.Min.Set(fits[0])
	m.Max.Set(fits[0])
	for _, f := range fits {
		if f.Cmp(m.Min) < 0 {
			m.Min.Set(f)
		}
		if f.Cmp(m.Max) > 0 {
			m.Max.Set(f)
		}
		sum.Add(sum, f)
	}
	m.Avg.Quo(sum, big.NewRat(int64(len(fits)), 1))
	m.Diversity = Diversity(p)
	return m
}

// Diversity is the mean Hamming distance between each genome and the
// population's best genome (first best on ties).
func Diversity(p *Population) float64 {
	if p.Size() == 0 {
		return 0
	}
	best := RankDescending(p.Individuals)[0].Genome.Bits()
	total := 0
	for _, ind := range p.Individuals {
		d, err := smetrics.Hamming(best, ind.Genome.Bits())
		if err != nil {
			// Lengths differ; count every position of the longer one.
			d = max(len(best), len(ind.Genome))
		}
		total += d
	}
	return float64(total) / float64(p.Size())
}

// FormatDecimal prints r exactly when it has a finite decimal expansion,
// always with at least one fractional digit: "0.0", "1.0", "0.5321".
func FormatDecimal(r *big.Rat) string {
	s := r.FloatString(decimalPrecision)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
