// Package commands implements the marsrover command line interface
package commands

import (
	"fmt"
	"log"
	"time"

	"github.com/samuelfneumann/marsrover/experiment"
	"github.com/spf13/cobra"
)

var (
	configFile string
	seed       uint64
	tableFile  string
	episodes   int
)

// GetRootCommand returns the marsrover command with all of its
// subcommands
func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:          "marsrover",
		Short:        "Train and evaluate a Q-Learning Mars rover",
		SilenceUsage: true,
	}
	rootCommand.PersistentFlags().StringVarP(&configFile, "config", "c", "", "JSON experiment configuration (defaults to the Mars Rover map)")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed, 0 seeds from the clock")
	rootCommand.PersistentFlags().StringVarP(&tableFile, "table", "t", experiment.DefaultTable, "File the learned table is saved to and loaded from")
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 0, "Number of training episodes, 0 uses the configured number")

	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(EvaluateCommand())
	rootCommand.AddCommand(RunCommand())
	return rootCommand
}

// loadConfig returns the experiment configuration with the persistent
// flags applied
func loadConfig(cmd *cobra.Command) (experiment.Config, error) {
	c := experiment.DefaultConfig()
	if configFile != "" {
		var err error
		if c, err = experiment.LoadConfig(configFile); err != nil {
			return c, err
		}
	}

	if cmd.Flags().Changed("seed") {
		c.Seed = seed
	}
	if cmd.Flags().Changed("table") || c.Table == "" {
		c.Table = tableFile
	}
	if episodes > 0 {
		c.Episodes = episodes
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func newLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "[marsrover] ", log.LstdFlags)
}
