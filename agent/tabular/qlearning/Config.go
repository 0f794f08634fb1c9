package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/marsrover/agent"
	"github.com/samuelfneumann/marsrover/agent/tabular/policy"
	"github.com/samuelfneumann/marsrover/environment"
)

// Config represents a configuration for the QLearning agent
type Config struct {
	LearningRate float64 // α, in (0, 1]
	Discount     float64 // γ, in [0, 1)

	// Behaviour policy exploration schedule
	EpsilonStart float64
	EpsilonEnd   float64
	EpsilonDecay float64 // per episode
}

// Default returns the default Q-learning configuration
func Default() Config {
	return Config{
		LearningRate: 0.7,
		Discount:     0.618,
		EpsilonStart: 1.0,
		EpsilonEnd:   0.01,
		EpsilonDecay: 0.999,
	}
}

// CreateAgent creates the agent from the Config. The agent's table is
// zero initialized.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	q, err := New(env, c, seed)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate %v not in (0, 1]", c.LearningRate)
	}
	if c.Discount < 0 || c.Discount >= 1 {
		return fmt.Errorf("discount %v not in [0, 1)", c.Discount)
	}
	return policy.ValidateSchedule(c.EpsilonStart, c.EpsilonEnd,
		c.EpsilonDecay)
}
