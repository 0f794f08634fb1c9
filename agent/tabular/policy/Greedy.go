package policy

import (
	"github.com/samuelfneumann/marsrover/agent/tabular/qtable"
	"github.com/samuelfneumann/marsrover/timestep"
)

// Greedy always selects the action with the largest value, breaking
// ties in favour of the lowest action index. It never draws random
// numbers, so its action choices are fully determined by its table.
type Greedy struct {
	table *qtable.QTable
}

// NewGreedy creates a new Greedy policy over table
func NewGreedy(table *qtable.QTable) *Greedy {
	return &Greedy{table}
}

// SelectAction selects the greedy action in the state of timestep t
func (g *Greedy) SelectAction(t timestep.TimeStep) int {
	return g.table.BestAction(t.Observation)
}
