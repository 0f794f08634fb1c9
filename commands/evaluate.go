package commands

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/samuelfneumann/marsrover/agent/tabular/qtable"
	"github.com/samuelfneumann/marsrover/environment/gridworld"
	"github.com/samuelfneumann/marsrover/experiment"
	"github.com/samuelfneumann/marsrover/experiment/checkpointer"
	"github.com/samuelfneumann/marsrover/render"
	"github.com/spf13/cobra"
)

// evalOptions configures how an evaluation episode is displayed
type evalOptions struct {
	delay  time.Duration
	clear  bool
	frames string
}

// loadTable loads the table stored in c.Table. If no table has been
// saved, fallback is returned.
func loadTable(c experiment.Config, fallback *qtable.QTable,
	logger *log.Logger) (*qtable.QTable, bool, error) {
	q, loaded, err := qtable.LoadOr(c.Table, fallback)
	if err != nil {
		return nil, false, fmt.Errorf("could not load table: %w", err)
	}

	if loaded {
		logger.Printf("Loaded Q-table from %v", c.Table)
	}
	return q, loaded, nil
}

// evaluate shows a greedy episode of q in world and reports its outcome
func evaluate(world *gridworld.GridWorld, q *qtable.QTable, w io.Writer,
	opts evalOptions) (experiment.EpisodeResult, error) {
	var sink render.Sink = render.NewConsole(w, opts.delay, opts.clear)

	if opts.frames != "" {
		if err := os.MkdirAll(opts.frames, 0o755); err != nil {
			return experiment.EpisodeResult{}, err
		}
		images := render.NewImages(checkpointer.FilenameEnumerator(0,
			filepath.Join(opts.frames, "frame"), ".png"), 0)
		sink = render.Multi{sink, images}
	}

	result, err := experiment.NewEvaluator(world).Evaluate(q, sink)
	if err != nil {
		return result, err
	}

	if result.Success {
		fmt.Fprintln(w, "SUCCESS: The rover reached the goal!")
	} else {
		fmt.Fprintln(w, "FAILURE: The rover did not reach the goal.")
	}
	fmt.Fprintf(w, "Total reward: %.0f in %d steps\n", result.Return,
		result.Steps)
	return result, nil
}

func addEvalFlags(cmd *cobra.Command, opts *evalOptions) {
	cmd.Flags().DurationVar(&opts.delay, "delay", 100*time.Millisecond, "Pause between rendered steps")
	cmd.Flags().BoolVar(&opts.clear, "clear", true, "Clear the terminal before each rendered step")
	cmd.Flags().StringVar(&opts.frames, "frames", "", "Also draw each step as a PNG image in this directory")
}

// EvaluateCommand returns the command which evaluates a saved table. If
// no table has been saved, a new one is trained in memory first.
func EvaluateCommand() *cobra.Command {
	var opts evalOptions

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Watch the greedy policy of a saved table",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd)

			world, _, err := c.EnvConf.Create()
			if err != nil {
				return err
			}
			fallback := qtable.New(world.NumStates(), world.NumActions())

			q, loaded, err := loadTable(c, fallback, logger)
			if err != nil {
				return err
			}
			if !loaded {
				logger.Printf("No Q-table found at %v, training a new one",
					c.Table)
				_, agent, err := train(c, logger, trainOutputs{})
				if err != nil {
					return err
				}
				q = agent.Table()
			}

			_, err = evaluate(world, q, cmd.OutOrStdout(), opts)
			return err
		},
	}
	addEvalFlags(cmd, &opts)
	return cmd
}

// RunCommand returns the command which trains a rover, saves its
// table, reloads the table, and evaluates it
func RunCommand() *cobra.Command {
	var out trainOutputs
	var opts evalOptions
	var progress bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Train, save, and evaluate a rover",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd)
			if progress {
				out.progress = cmd.ErrOrStderr()
			}

			world, agent, err := trainAndSave(c, logger, out)
			if err != nil {
				return err
			}

			q, _, err := loadTable(c, agent.Table(), logger)
			if errors.Is(err, qtable.ErrShape) {
				return err
			} else if err != nil {
				logger.Printf("Using the table in memory: %v", err)
				q = agent.Table()
			}

			_, err = evaluate(world, q, cmd.OutOrStdout(), opts)
			return err
		},
	}
	addTrainFlags(cmd, &out, &progress)
	addEvalFlags(cmd, &opts)
	return cmd
}
