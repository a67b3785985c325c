package onemax

import (
	rnd "math/rand"
	test "testing"
)

func snapshot(p *Population) []string {
	bits := make([]string, p.Size())
	for i, ind := range p.Individuals {
		bits[i] = ind.Genome.Bits()
	}
	return bits
}

func randomPopulation(seed int64, length, size uint) *Population {
	return NewPopulationFromConfig(&PopulationConfig{GenomeLength: length, UnitCount: size}, rnd.New(rnd.NewSource(seed)))
}

func TestMutatorNoIndividualRate(t *test.T) {
	pop := randomPopulation(42, 50, 40)
	before := snapshot(pop)

	picked := NewMutator(0, 1, rnd.New(rnd.NewSource(3))).Apply(pop)
	if picked != 0 {
		t.Errorf("Expected no individuals picked, got %d", picked)
	}
	for i, bits := range snapshot(pop) {
		if bits != before[i] {
			t.Errorf("Individual %d changed with individual rate 0", i)
		}
	}
}

func TestMutatorNoGeneRate(t *test.T) {
	pop := randomPopulation(42, 50, 40)
	before := snapshot(pop)

	picked := NewMutator(1, 0, rnd.New(rnd.NewSource(3))).Apply(pop)
	if picked == 0 {
		t.Errorf("Expected individuals to be picked with rate 1")
	}
	for i, bits := range snapshot(pop) {
		if bits != before[i] {
			t.Errorf("Individual %d changed with gene rate 0", i)
		}
	}
}

func TestMutatorKeepsFitnessAndLength(t *test.T) {
	pop := randomPopulation(42, 20, 20)
	NewEvaluator(20).EvaluatePopulation(pop)
	stale := pop.Fitnesses()

	NewMutator(1, 1, rnd.New(rnd.NewSource(9))).Apply(pop)
	for i, ind := range pop.Individuals {
		if len(ind.Genome) != 20 {
			t.Errorf("Individual %d genome length changed to %d", i, len(ind.Genome))
		}
		if ind.Fitness != stale[i] {
			t.Errorf("Mutator replaced fitness of individual %d", i)
		}
	}
}

func TestMutatorThresholdIsStrict(t *test.T) {
	// Draw 50 -> 0.5. A rate of exactly 0.5 is not strictly greater.
	pop := NewPopulationFromGenomes(genome(0, 0))
	m := NewMutator(0.5, 1, &scriptedSource{values: []int{50}})
	if picked := m.Apply(pop); picked != 0 {
		t.Errorf("Rate 0.5 against draw 0.5 should not mutate, picked %d", picked)
	}
}

func TestMutatorFloatRateBeatsEqualDraw(t *test.T) {
	// 0.1 as a float64 is slightly above 10/100, so a draw of 10 mutates.
	// Gene draws then come back 10 (mutate) and 1 (new bit).
	pop := NewPopulationFromGenomes(genome(0))
	m := NewMutator(0.1, 0.1, &scriptedSource{values: []int{10, 10, 1}})
	if picked := m.Apply(pop); picked != 1 {
		t.Fatalf("Expected draw 10 to pick the individual, picked %d", picked)
	}
	if pop.Individuals[0].Genome[0] != 1 {
		t.Errorf("Expected gene resampled to 1, got %d", pop.Individuals[0].Genome[0])
	}
}

func TestMutatorMutatesSharedElite(t *test.T) {
	elite := NewIndividual(genome(0, 0, 0))
	next := &Population{Individuals: []*Individual{elite}}
	// Every draw is 1: 0.01 for the thresholds, 1 for the new bits.
	m := NewMutator(1, 1, &scriptedSource{values: []int{1}})
	m.Apply(next)
	if elite.Genome.Bits() != "111" {
		t.Errorf("Elite reference should see in-place mutation, got %s", elite.Genome.Bits())
	}
}
