package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/onemax"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "onemax [run.toml]",
		Short:         "Evolve a bit string of all ones with a genetic algorithm",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr)

			config := onemax.DefaultConfig()
			if len(args) == 1 {
				loaded, err := onemax.LoadConfigFile(args[0])
				if err != nil {
					return err
				}
				config = loaded
			}

			engine, err := onemax.NewGenerationEngine(config, onemax.NewRand(config.Seed), onemax.NewConsoleReporter(stdout), log)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return engine.Run(cmd.Context())
		},
	}
}

func newLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if onemax.DEBUG {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
