package onemax

import (
	"math/big"
	"strconv"
	"strings"

	cp "github.com/jinzhu/copier"
)

// Genome is a fixed-length bit string. Each element is 0 or 1.
type Genome []byte

func (g Genome) Ones() int {
	total := 0
	for _, bit := range g {
		total += int(bit)
	}
	return total
}

// String renders the genome as a bracketed list, "[1, 0, 1]".
func (g Genome) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	for i, bit := range g {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(bit)))
	}
	sb.WriteRune(']')
	return sb.String()
}

// Bits renders the genome as a compact "1011" string.
func (g Genome) Bits() string {
	var sb strings.Builder
	sb.Grow(len(g))
	for _, bit := range g {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

type Individual struct {
	Genome  Genome
	Fitness *big.Rat
}

func NewIndividual(genome Genome) *Individual {
	return &Individual{Genome: genome}
}

func NewIndividualFromRandom(length uint, rng Source) *Individual {
	genome := make(Genome, length)
	for i := range genome {
		genome[i] = randomBit(rng)
	}
	return NewIndividual(genome)
}

// Score is the stored fitness, or zero if the individual has not been
// evaluated yet.
func (i *Individual) Score() *big.Rat {
	if i.Fitness == nil {
		return new(big.Rat)
	}
	return i.Fitness
}

// Clone returns a deep copy that shares no memory with i.
func (i *Individual) Clone() *Individual {
	clone := &Individual{}
	cp.CopyWithOption(clone, i, cp.Option{DeepCopy: true})
	clone.Fitness = nil
	if i.Fitness != nil {
		clone.Fitness = new(big.Rat).Set(i.Fitness)
	}
	return clone
}
