package onemax

import "errors"

var (
	ErrGenomeLength        = errors.New("genome length must be positive and constant")
	ErrPopulationSize      = errors.New("population size must be positive")
	ErrEliteCount          = errors.New("elite count out of range")
	ErrProbability         = errors.New("probability outside [0, 1]")
	ErrGenerationCount     = errors.New("generation count must be positive")
	ErrReplacementOverflow = errors.New("elites and offspring exceed population size")
)
