// Package qlearning implements the tabular Q-Learning algorithm.
//
// A QLearning agent acts with an ε-greedy behaviour policy whose ε
// decays at the end of every episode, and learns the action values of
// the greedy target policy.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/marsrover/agent/tabular/policy"
	"github.com/samuelfneumann/marsrover/agent/tabular/qtable"
	"github.com/samuelfneumann/marsrover/environment"
)

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	*QLearner
	*policy.EGreedy
	target *policy.Greedy
	seed   uint64
}

// New creates a new QLearning agent for env with a zero initialized
// table
func New(env environment.Environment, c Config,
	seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}

	table := qtable.New(env.NumStates(), env.NumActions())
	behaviour, err := policy.NewEGreedy(table, c.EpsilonStart,
		c.EpsilonEnd, c.EpsilonDecay, seed)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	learner := NewQLearner(table, c.LearningRate, c.Discount)
	target := policy.NewGreedy(table)

	return &QLearning{learner, behaviour, target, seed}, nil
}

// EndEpisode decays the exploration rate of the behaviour policy
func (q *QLearning) EndEpisode() {
	q.Decay()
}

// Table returns the agent's table of action values
func (q *QLearning) Table() *qtable.QTable {
	return q.QLearner.Table()
}

// TargetPolicy returns the greedy policy with respect to the agent's
// table
func (q *QLearning) TargetPolicy() *policy.Greedy {
	return q.target
}
