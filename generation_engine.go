package onemax

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type EngineState int

const (
	Initializing EngineState = iota
	Running
	Done
)

func (s EngineState) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return fmt.Sprintf("EngineState(%d)", int(s))
}

// GenerationEngine owns the current population and drives the fixed number of
// generations. It is not safe for concurrent use.
type GenerationEngine struct {
	Config     *PopulationConfig
	Evaluator  *Evaluator
	Selector   *Selector
	Reproducer *Reproducer
	Culler     *Culler
	Mutator    *Mutator
	Reporter   Reporter
	Log        logrus.FieldLogger

	Population *Population
	Generation uint
	State      EngineState

	rng    Source
	elites []*Individual
}

// NewGenerationEngine validates config before building anything, so a bad
// configuration never runs a generation. A nil reporter writes to stdout and
// a nil logger uses the logrus standard logger.
func NewGenerationEngine(config *PopulationConfig, rng Source, reporter Reporter, log logrus.FieldLogger) (*GenerationEngine, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(config.Seed)
	}
	if reporter == nil {
		reporter = NewConsoleReporter(os.Stdout)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &GenerationEngine{
		Config:     config,
		Evaluator:  NewEvaluator(config.GenomeLength),
		Selector:   NewSelector(int(config.EliteCount)),
		Reproducer: NewReproducer(config.GenomeLength, rng),
		Culler:     NewCuller(int(config.UnitCount)),
		Mutator:    NewMutator(config.IndividualMutation, config.GenomeMutation, rng),
		Reporter:   reporter,
		Log:        log,
		State:      Initializing,
		rng:        rng,
	}, nil
}

// Init builds the first population from random genomes unless one was
// already set on the engine.
func (ge *GenerationEngine) Init() error {
	if ge.State != Initializing {
		return fmt.Errorf("engine is %s, cannot initialize", ge.State)
	}
	if ge.Population == nil {
		ge.Population = NewPopulationFromConfig(ge.Config, ge.rng)
	}
	if uint(ge.Population.Size()) != ge.Config.UnitCount {
		return fmt.Errorf("initial population holds %d, expected %d: %w",
			ge.Population.Size(), ge.Config.UnitCount, ErrPopulationSize)
	}
	ge.State = Running
	ge.Log.WithFields(logrus.Fields{
		"genome_length":   ge.Config.GenomeLength,
		"population_size": ge.Config.UnitCount,
		"elite_count":     ge.Config.EliteCount,
		"generations":     ge.Config.Generations,
	}).Info("population synthesized")
	return nil
}

// Step runs one generation: evaluate, select, reproduce, replace, mutate,
// report. Metrics describe the population that was just evaluated, not the
// one assembled for the next round.
func (ge *GenerationEngine) Step() (*GenerationReport, error) {
	if ge.State == Initializing {
		if err := ge.Init(); err != nil {
			return nil, err
		}
	}
	if ge.State == Done {
		return nil, fmt.Errorf("all %d generations have run", ge.Config.Generations)
	}

	current := ge.Population
	ge.Evaluator.EvaluatePopulation(current)

	elites, err := ge.Selector.Select(current)
	if err != nil {
		return nil, err
	}
	offspring := ge.Reproducer.Reproduce(elites)

	next, err := ge.Culler.Replace(current, elites, offspring)
	if err != nil {
		return nil, err
	}

	report := &GenerationReport{
		Generation: ge.Generation + 1,
		Elites:     len(elites),
		Offspring:  len(offspring),
		Best:       elites[0].Clone(),
	}
	report.Mutated = ge.Mutator.Apply(next)
	report.Metrics = QueryMetrics(current)

	if err := ge.Reporter.ReportGeneration(report); err != nil {
		return nil, fmt.Errorf("reporting generation %d: %w", report.Generation, err)
	}
	ge.Log.WithFields(logrus.Fields{
		"generation": report.Generation,
		"elites":     report.Elites,
		"offspring":  report.Offspring,
		"mutated":    report.Mutated,
		"diversity":  report.Metrics.Diversity,
	}).Debug("generation complete")

	ge.elites = elites
	ge.Population = next
	ge.Generation++
	if ge.Generation >= ge.Config.Generations {
		ge.State = Done
	}
	return report, nil
}

// Best is the top elite of the last completed generation. It is the same
// instance that was carried into the next population, so it includes any
// mutation applied there. Nil before the first generation.
func (ge *GenerationEngine) Best() *Individual {
	if len(ge.elites) == 0 {
		return nil
	}
	return ge.elites[0]
}

// Run drives the engine to Done and reports the best genome. The context is
// only checked between generations.
func (ge *GenerationEngine) Run(ctx context.Context) error {
	for ge.State != Done {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := ge.Step(); err != nil {
			return err
		}
	}

	best := ge.Best()
	if err := ge.Reporter.ReportBest(best); err != nil {
		return fmt.Errorf("reporting best individual: %w", err)
	}
	ge.Log.WithFields(logrus.Fields{
		"generations": ge.Generation,
		"best":        best.Genome.Bits(),
	}).Info("evolution finished")
	return nil
}
