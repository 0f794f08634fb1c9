package commands

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/samuelfneumann/marsrover/agent/tabular/qlearning"
	"github.com/samuelfneumann/marsrover/environment/gridworld"
	"github.com/samuelfneumann/marsrover/experiment"
	"github.com/samuelfneumann/marsrover/experiment/checkpointer"
	"github.com/samuelfneumann/marsrover/experiment/trackers"
	"github.com/spf13/cobra"
)

// trainOutputs names the optional files written during training
type trainOutputs struct {
	returns         string
	lengths         string
	successes       string
	plot            string
	plotWindow      int
	checkpointEvery int
	progress        io.Writer
}

// train trains an agent as described by c and returns it along with
// the environment it was trained in
func train(c experiment.Config, logger *log.Logger,
	out trainOutputs) (*gridworld.GridWorld, *qlearning.QLearning, error) {
	opts := []experiment.TrainerOption{experiment.WithLogger(logger)}
	if out.progress != nil {
		opts = append(opts, experiment.WithProgressBar(out.progress))
	}

	world, agent, trainer, err := c.CreateExp(opts...)
	if err != nil {
		return nil, nil, err
	}

	// The plotted returns are kept next to the plot if no returns file
	// is given
	if out.plot != "" && out.returns == "" {
		out.returns = strings.TrimSuffix(out.plot, filepath.Ext(out.plot)) +
			".bin"
	}

	var returns *trackers.Return
	if out.returns != "" {
		returns = trackers.NewReturn(out.returns)
		trainer.Register(returns)
	}
	if out.lengths != "" {
		trainer.Register(trackers.NewEpisodeLength(out.lengths))
	}
	if out.successes != "" {
		trainer.Register(trackers.NewSuccess(out.successes))
	}

	if out.checkpointEvery > 0 {
		ext := filepath.Ext(c.Table)
		name := strings.TrimSuffix(c.Table, ext) + "_"
		check, err := checkpointer.NewNEpisode(out.checkpointEvery,
			agent.Table(), checkpointer.FilenameEnumerator(0, name, ext))
		if err != nil {
			return nil, nil, err
		}
		trainer.RegisterCheckpointer(check)
	}

	logger.Printf("Training for %d episodes (seed %d)", c.Episodes, c.Seed)
	if err := trainer.Run(); err != nil {
		return nil, nil, err
	}

	if err := trainer.Save(); err != nil {
		return nil, nil, err
	}
	if out.plot != "" {
		err := trackers.Plot(out.plot, "Training returns", "Return",
			returns.Data(), out.plotWindow)
		if err != nil {
			return nil, nil, err
		}
		logger.Printf("Learning curve saved to %v", out.plot)
	}

	return world, agent, nil
}

// trainAndSave trains an agent and saves its table to c.Table
func trainAndSave(c experiment.Config, logger *log.Logger,
	out trainOutputs) (*gridworld.GridWorld, *qlearning.QLearning, error) {
	world, agent, err := train(c, logger, out)
	if err != nil {
		return nil, nil, err
	}

	if err := agent.Table().Save(c.Table); err != nil {
		return nil, nil, fmt.Errorf("could not save table: %w", err)
	}
	logger.Printf("Q-table saved to %v", c.Table)
	return world, agent, nil
}

func addTrainFlags(cmd *cobra.Command, out *trainOutputs,
	progress *bool) {
	cmd.Flags().BoolVar(progress, "progress", false, "Draw a progress bar of the training episodes")
	cmd.Flags().StringVar(&out.returns, "returns", "", "Save the return of each episode to this file")
	cmd.Flags().StringVar(&out.lengths, "lengths", "", "Save the length of each episode to this file")
	cmd.Flags().StringVar(&out.successes, "successes", "", "Save whether each episode reached the goal to this file")
	cmd.Flags().StringVar(&out.plot, "plot", "", "Plot the learning curve to this image file")
	cmd.Flags().IntVar(&out.plotWindow, "plot-window", 100, "Moving average window of the learning curve")
	cmd.Flags().IntVar(&out.checkpointEvery, "checkpoint-every", 0, "Checkpoint the table every n episodes, 0 disables checkpoints")
}

// TrainCommand returns the command which trains a rover and saves its
// table
func TrainCommand() *cobra.Command {
	var out trainOutputs
	var progress bool

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a rover and save the learned table",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if progress {
				out.progress = cmd.ErrOrStderr()
			}
			_, _, err = trainAndSave(c, newLogger(cmd), out)
			return err
		},
	}
	addTrainFlags(cmd, &out, &progress)
	return cmd
}
