package onemax

import (
	"fmt"
	"io"
)

type GenerationReport struct {
	Generation uint
	Metrics    *GenerationMetrics
	Elites     int
	Offspring  int
	Mutated    int
	// Snapshot of the best elite taken before the mutation pass.
	Best *Individual
}

// Reporter receives the result of every generation and the final best genome.
type Reporter interface {
	ReportGeneration(r *GenerationReport) error
	ReportBest(best *Individual) error
}

// ConsoleReporter writes the per-generation result blocks.
type ConsoleReporter struct {
	Out io.Writer
}

func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Out: out}
}

func (c *ConsoleReporter) ReportGeneration(r *GenerationReport) error {
	_, err := fmt.Fprintf(c.Out, "-----第%d世代の結果-----\n  Min:%s\n  Max:%s\n  Avg:%s\n",
		r.Generation,
		FormatDecimal(r.Metrics.Min),
		FormatDecimal(r.Metrics.Max),
		FormatDecimal(r.Metrics.Avg))
	return err
}

func (c *ConsoleReporter) ReportBest(best *Individual) error {
	_, err := fmt.Fprintf(c.Out, "最も優れた個体は%s\n", best.Genome)
	return err
}
