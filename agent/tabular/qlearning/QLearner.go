package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/marsrover/agent/tabular/qtable"
	"github.com/samuelfneumann/marsrover/timestep"
)

// Update applies a single Q-learning update to q for the transition
// (state, action, reward, next):
//
//	Q[s, a] += α * (r + γ * max_a' Q[s', a'] - Q[s, a])
//
// and returns the temporal difference error of the transition.
func Update(q *qtable.QTable, state, action int, reward float64, next int,
	learningRate, discount float64) float64 {
	current := q.Get(state, action)
	tdError := reward + discount*q.MaxValue(next) - current
	q.Set(state, action, current+learningRate*tdError)

	return tdError
}

// QLearner implements the update functionality for the Q-Learning
// algorithm.
type QLearner struct {
	table        *qtable.QTable
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner struct which updates table
func NewQLearner(table *qtable.QTable, learningRate,
	discount float64) *QLearner {
	return &QLearner{
		table:        table,
		learningRate: learningRate,
		discount:     discount,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		return fmt.Errorf("observeFirst: should only be called on the "+
			"first timestep (current timestep = %d)", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
	return nil
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QLearner) Observe(action int, nextStep timestep.TimeStep) error {
	if _, actions := q.table.Dims(); action < 0 || action >= actions {
		return fmt.Errorf("observe: no such action %d", action)
	}
	q.step = q.nextStep
	q.action = action
	q.nextStep = nextStep
	return nil
}

// Step updates the table using the most recently observed transition
func (q *QLearner) Step() error {
	if q.nextStep.First() {
		return fmt.Errorf("step: no transition observed")
	}

	Update(q.table, q.step.Observation, q.action, q.nextStep.Reward,
		q.nextStep.Observation, q.learningRate, q.discount)
	return nil
}

// TdError returns the temporal difference error of the most recently
// observed transition under the current table
func (q *QLearner) TdError() float64 {
	target := q.nextStep.Reward + q.discount*q.table.MaxValue(
		q.nextStep.Observation)
	return target - q.table.Get(q.step.Observation, q.action)
}

// Table returns the table updated by the learner
func (q *QLearner) Table() *qtable.QTable {
	return q.table
}
