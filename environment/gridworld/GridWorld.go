// Package gridworld implements 2D gridworld environments with obstacles
// and a single goal cell
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/marsrover/environment"
	"github.com/samuelfneumann/marsrover/timestep"
)

// GridWorld represents a gridworld environment
//
// A rover starts each episode at the start cell and moves one cell
// North, South, East, or West on each step. Moves off the grid leave
// the rover where it is along that axis, and moves into an obstacle
// leave the rover in place. An episode ends when the goal is reached
// or when the step budget is exhausted.
type GridWorld struct {
	*Goal
	environment.Starter
	layout *Layout

	cutoff   int
	ender    environment.Ender
	passable bool

	currentStep timestep.TimeStep
}

// Option configures a GridWorld
type Option func(*GridWorld)

// WithPassableObstacles lets the rover enter obstacle cells, receiving
// the task's obstacle reward when it does so
func WithPassableObstacles() Option {
	return func(g *GridWorld) {
		g.passable = true
	}
}

// New creates a new gridworld on layout with task t, where episodes
// start at the state returned by s and are truncated after cutoff
// steps. New validates that the start state is a safe cell distinct
// from the goal and that the goal can be reached from it.
func New(layout *Layout, t *Goal, s environment.Starter, cutoff int,
	opts ...Option) (*GridWorld, timestep.TimeStep, error) {
	if cutoff < 1 {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: cutoff %d: %w",
			cutoff, ErrDimensions)
	}

	start := s.Start()
	if start < 0 || start >= layout.NumStates() {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: start state %d: %w",
			start, ErrOutOfBounds)
	}

	startPos := layout.PositionOf(start)
	switch {
	case startPos == layout.Goal():
		return nil, timestep.TimeStep{}, fmt.Errorf("new: start %v: %w",
			startPos, ErrStartIsGoal)

	case layout.At(startPos) == ObstacleCell:
		return nil, timestep.TimeStep{}, fmt.Errorf("new: start %v: %w",
			startPos, ErrBlocked)

	case !layout.Reachable(startPos, layout.Goal()):
		return nil, timestep.TimeStep{}, fmt.Errorf("new: goal %v from %v: %w",
			layout.Goal(), startPos, ErrUnreachable)
	}

	g := &GridWorld{
		Goal:    t,
		Starter: s,
		layout:  layout,
		cutoff:  cutoff,
	}
	for _, opt := range opts {
		opt(g)
	}

	// The goal check comes first so that reaching the goal on the last
	// step of the budget is a success
	g.ender = environment.Enders{
		environment.NewFunctionEnder(g.AtGoal, timestep.TerminalStateReached),
		environment.NewStepLimit(cutoff),
	}

	return g, g.Reset(), nil
}

// Reset resets the environment to the starting state
func (g *GridWorld) Reset() timestep.TimeStep {
	startStep := timestep.New(timestep.First, 0, g.Start(), 0)
	g.currentStep = startStep
	return startStep
}

// Transition computes the state reached, the reward received, and
// whether the goal was reached when taking action in state. Transition
// does not change the environment.
func (g *GridWorld) Transition(state int, action Action) (next int,
	reward float64, terminated bool) {
	current := g.layout.PositionOf(state)
	nextPos := g.layout.Move(current, action)

	if !g.passable && g.layout.At(nextPos) == ObstacleCell {
		nextPos = current
	}

	reward = g.GetReward(nextPos)
	return g.layout.StateOf(nextPos), reward, nextPos == g.layout.Goal()
}

// Step takes one environmental step given some action, returning the
// next timestep and whether that timestep is the last in the episode
func (g *GridWorld) Step(action int) (timestep.TimeStep, bool) {
	if action < 0 || action >= NumActions {
		panic(fmt.Sprintf("step: no such action %d", action))
	}

	next, reward, _ := g.Transition(g.currentStep.Observation, Action(action))
	step := timestep.New(timestep.Mid, reward, next, g.currentStep.Number+1)
	last := g.ender.End(&step)

	g.currentStep = step
	return step, last
}

// CurrentTimeStep returns the most recent timestep of the environment
func (g *GridWorld) CurrentTimeStep() timestep.TimeStep {
	return g.currentStep
}

// Position returns the current position of the rover
func (g *GridWorld) Position() Position {
	return g.layout.PositionOf(g.currentStep.Observation)
}

// Layout returns the layout of the gridworld
func (g *GridWorld) Layout() *Layout {
	return g.layout
}

// Cutoff returns the step budget of each episode
func (g *GridWorld) Cutoff() int {
	return g.cutoff
}

// NumStates returns the number of states in the environment
func (g *GridWorld) NumStates() int {
	return g.layout.NumStates()
}

// NumActions returns the number of actions in the environment
func (g *GridWorld) NumActions() int {
	return NumActions
}

// Render renders the gridworld with the rover at its current position
func (g *GridWorld) Render() string {
	return Render(g.Position(), g.layout)
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |   Goal: %v  |  Bounds: (%d, %d)"
	rows, cols := g.layout.Dims()

	return fmt.Sprintf(str, g.Position(), g.layout.Goal(), rows, cols)
}

var _ environment.Environment = &GridWorld{}
