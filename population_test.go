package onemax

import (
	"math/big"
	rnd "math/rand"
	test "testing"
)

// scriptedSource replays values in order, reduced modulo n, and wraps around
// when it runs out.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func genome(bits ...byte) Genome {
	return Genome(bits)
}

func rat(a, b int64) *big.Rat {
	return big.NewRat(a, b)
}

func TestNewPopulationFromConfig(t *test.T) {
	config := DefaultConfig()
	pop := NewPopulationFromConfig(config, rnd.New(rnd.NewSource(42)))

	if pop.Size() != MaxGenomeList {
		t.Fatalf("Population size [%d] is not expected value [%d]", pop.Size(), MaxGenomeList)
	}
	for i, ind := range pop.Individuals {
		if len(ind.Genome) != GenomeLength {
			t.Errorf("Individual %d genome length [%d] is not expected value [%d]", i, len(ind.Genome), GenomeLength)
		}
		if ind.Fitness != nil {
			t.Errorf("Individual %d should start unevaluated, got %v", i, ind.Fitness)
		}
		for g, bit := range ind.Genome {
			if bit > 1 {
				t.Errorf("Individual %d gene %d is not a bit: %d", i, g, bit)
			}
		}
	}
}

func TestPopulationFromScriptedSource(t *test.T) {
	src := &scriptedSource{values: []int{1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 0, 1}}
	config := &PopulationConfig{GenomeLength: 4, UnitCount: 4}

	pop := NewPopulationFromConfig(config, src)

	expected := []string{"1111", "0000", "1010", "0101"}
	for i, ind := range pop.Individuals {
		if ind.Genome.Bits() != expected[i] {
			t.Errorf("Individual %d genome %s, expected %s", i, ind.Genome.Bits(), expected[i])
		}
	}
}

func TestUnevaluatedScoreIsZero(t *test.T) {
	pop := NewPopulationFromGenomes(genome(1, 1), genome(0, 1))
	for i, f := range pop.Fitnesses() {
		if f.Sign() != 0 {
			t.Errorf("Individual %d unevaluated score should be 0, got %s", i, f)
		}
	}
}

func TestGenomeString(t *test.T) {
	g := genome(1, 0, 1, 1)
	if g.String() != "[1, 0, 1, 1]" {
		t.Errorf("Genome.String() = %q", g.String())
	}
	if g.Bits() != "1011" {
		t.Errorf("Genome.Bits() = %q", g.Bits())
	}
	if g.Ones() != 3 {
		t.Errorf("Genome.Ones() = %d, expected 3", g.Ones())
	}
	if (Genome{}).String() != "[]" {
		t.Errorf("Empty genome renders as %q", Genome{}.String())
	}
}

func TestIndividualClone(t *test.T) {
	orig := NewIndividual(genome(1, 0, 1))
	orig.Fitness = rat(2, 3)

	clone := orig.Clone()
	if clone == orig {
		t.Fatalf("Clone returned the same pointer")
	}
	if clone.Genome.Bits() != "101" || clone.Fitness.Cmp(rat(2, 3)) != 0 {
		t.Fatalf("Clone does not match original: %v %v", clone.Genome, clone.Fitness)
	}

	orig.Genome[0] = 0
	orig.Fitness.SetInt64(0)
	if clone.Genome[0] != 1 {
		t.Errorf("Clone genome shares memory with original")
	}
	if clone.Fitness.Cmp(rat(2, 3)) != 0 {
		t.Errorf("Clone fitness shares memory with original")
	}
}

func TestIndividualCloneUnevaluated(t *test.T) {
	clone := NewIndividual(genome(0, 1)).Clone()
	if clone.Fitness != nil {
		t.Errorf("Clone of unevaluated individual should have nil fitness, got %v", clone.Fitness)
	}
}
