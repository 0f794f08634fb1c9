// Package experiment implements functionality for training a Q-Learning
// rover and evaluating the policy it learns
package experiment

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/marsrover/agent/tabular/qlearning"
	"github.com/samuelfneumann/marsrover/environment/envconfig"
	"github.com/samuelfneumann/marsrover/environment/gridworld"
	"github.com/samuelfneumann/marsrover/timestep"
)

// DefaultTable is the default file that the learned table is saved to
const DefaultTable = "mars_rover_q_table.bin"

// EpisodeResult summarises a single finished episode
type EpisodeResult struct {
	Episode  int
	State    int
	Position gridworld.Position
	Return   float64
	Steps    int
	Success  bool
	End      timestep.EndType
}

func (e EpisodeResult) String() string {
	return fmt.Sprintf("Episode %d | Steps: %d | Return: %.0f | End: %v | "+
		"Position: %v", e.Episode, e.Steps, e.Return, e.End, e.Position)
}

// Config represents a configuration of an experiment
type Config struct {
	Episodes  int
	LogEvery  int
	Seed      uint64
	Table     string
	EnvConf   envconfig.Config
	AgentConf qlearning.Config
}

// DefaultConfig returns the configuration of the Mars Rover experiment
func DefaultConfig() Config {
	return Config{
		Episodes:  20000,
		LogEvery:  5000,
		Seed:      0,
		Table:     DefaultTable,
		EnvConf:   envconfig.MarsRover(),
		AgentConf: qlearning.Default(),
	}
}

// LoadConfig reads a JSON experiment configuration from filename.
// Fields missing from the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}

	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode %v: %w",
			filename, err)
	}
	return c, nil
}

// Validate returns an error if the Config cannot be used to run an
// experiment
func (c Config) Validate() error {
	if c.Episodes < 1 {
		return fmt.Errorf("validate: episodes must be positive, got %d",
			c.Episodes)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("validate: log interval must be non-negative, "+
			"got %d", c.LogEvery)
	}
	if c.Table == "" {
		return fmt.Errorf("validate: no table file given")
	}
	if err := c.EnvConf.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if err := c.AgentConf.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// CreateExp creates the environment, agent, and trainer described by
// the Config
func (c Config) CreateExp(opts ...TrainerOption) (*gridworld.GridWorld,
	*qlearning.QLearning, *Trainer, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("createExp: %w", err)
	}

	world, _, err := c.EnvConf.Create()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("createExp: %w", err)
	}

	agent, err := qlearning.New(world, c.AgentConf, c.Seed)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("createExp: could not create "+
			"agent: %w", err)
	}

	opts = append([]TrainerOption{WithLogEvery(c.LogEvery)}, opts...)
	return world, agent, NewTrainer(world, agent, c.Episodes, opts...), nil
}
