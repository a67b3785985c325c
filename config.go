package onemax

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type PopulationConfig struct {
	GenomeLength       uint    `toml:"genome_length"`
	UnitCount          uint    `toml:"population_size"`
	EliteCount         uint    `toml:"elite_count"`
	IndividualMutation float64 `toml:"individual_mutation"`
	GenomeMutation     float64 `toml:"genome_mutation"`
	Generations        uint    `toml:"generations"`
	Seed               int64   `toml:"seed"`
}

func DefaultConfig() *PopulationConfig {
	return &PopulationConfig{
		GenomeLength:       GenomeLength,
		UnitCount:          MaxGenomeList,
		EliteCount:         SelectGenome,
		IndividualMutation: IndividualMutation,
		GenomeMutation:     GenomeMutation,
		Generations:        MaxGeneration,
	}
}

// LoadConfig decodes a TOML run file on top of DefaultConfig, so a file only
// needs the keys it overrides. The result is validated.
func LoadConfig(r io.Reader) (*PopulationConfig, error) {
	config := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal population config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func LoadConfigFile(path string) (*PopulationConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load population config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// OffspringCount is the number of children one generation produces: a pair
// per elite, the last elite pairing with the first.
func (c *PopulationConfig) OffspringCount() uint {
	return 2 * c.EliteCount
}

func (c *PopulationConfig) Validate() error {
	if c.GenomeLength == 0 {
		return fmt.Errorf("genome_length %d: %w", c.GenomeLength, ErrGenomeLength)
	}
	if c.UnitCount == 0 {
		return fmt.Errorf("population_size %d: %w", c.UnitCount, ErrPopulationSize)
	}
	if c.EliteCount == 0 || c.EliteCount > c.UnitCount {
		return fmt.Errorf("elite_count %d with population_size %d: %w", c.EliteCount, c.UnitCount, ErrEliteCount)
	}
	if c.EliteCount+c.OffspringCount() > c.UnitCount {
		return fmt.Errorf("elite_count %d replaces %d of %d: %w",
			c.EliteCount, c.EliteCount+c.OffspringCount(), c.UnitCount, ErrReplacementOverflow)
	}
	if !validProbability(c.IndividualMutation) {
		return fmt.Errorf("individual_mutation %v: %w", c.IndividualMutation, ErrProbability)
	}
	if !validProbability(c.GenomeMutation) {
		return fmt.Errorf("genome_mutation %v: %w", c.GenomeMutation, ErrProbability)
	}
	if c.Generations == 0 {
		return fmt.Errorf("generations %d: %w", c.Generations, ErrGenerationCount)
	}
	return nil
}

// NaN fails both comparisons.
func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}
