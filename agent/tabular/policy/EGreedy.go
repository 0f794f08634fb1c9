// Package policy implements tabular policies over a qtable.QTable
package policy

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/marsrover/agent/tabular/qtable"
	"github.com/samuelfneumann/marsrover/timestep"
)

// EGreedy implements an ε-greedy policy whose ε decays geometrically
// after each episode. With probability ε a uniformly random action is
// selected, otherwise the greedy action of the table is selected.
type EGreedy struct {
	table   *qtable.QTable
	epsilon float64
	start   float64
	end     float64
	decay   float64
	rng     *rand.Rand
}

// NewEGreedy returns a new EGreedy policy over table. Exploration
// starts at ε = start and decays by a factor of decay per episode
// until reaching end. Random numbers are drawn from a source seeded
// with seed.
func NewEGreedy(table *qtable.QTable, start, end, decay float64,
	seed uint64) (*EGreedy, error) {
	if err := ValidateSchedule(start, end, decay); err != nil {
		return nil, fmt.Errorf("newEGreedy: %w", err)
	}

	return &EGreedy{
		table:   table,
		epsilon: start,
		start:   start,
		end:     end,
		decay:   decay,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// ValidateSchedule checks that an exploration schedule satisfies
// 0 <= end <= start <= 1 and 0 < decay < 1
func ValidateSchedule(start, end, decay float64) error {
	if start < 0 || start > 1 {
		return fmt.Errorf("epsilon start %v not in [0, 1]", start)
	}
	if end < 0 || end > start {
		return fmt.Errorf("epsilon end %v not in [0, %v]", end, start)
	}
	if decay <= 0 || decay >= 1 {
		return fmt.Errorf("epsilon decay %v not in (0, 1)", decay)
	}
	return nil
}

// SelectAction selects an action in the state of timestep t
func (p *EGreedy) SelectAction(t timestep.TimeStep) int {
	return p.Choose(t.Observation, p.table)
}

// Choose selects an action in state using the action values of q
func (p *EGreedy) Choose(state int, q *qtable.QTable) int {
	if p.epsilon > 0 && p.rng.Float64() < p.epsilon {
		_, actions := q.Dims()
		return p.rng.Intn(actions)
	}
	return q.BestAction(state)
}

// Decay decays ε once. It should be called exactly once at the end of
// each episode.
func (p *EGreedy) Decay() {
	p.epsilon = math.Max(p.epsilon*p.decay, p.end)
}

// Epsilon returns the current probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Table returns the table the policy acts on
func (p *EGreedy) Table() *qtable.QTable {
	return p.table
}
