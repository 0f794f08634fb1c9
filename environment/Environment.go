// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"github.com/samuelfneumann/marsrover/timestep"
)

// Starter returns the starting state of each episode
type Starter interface {
	Start() int
}

// Ender determines when an episode should end. If the episode should
// end, End() modifies the argument TimeStep so that it is the last
// TimeStep of the episode and records why the episode ended.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated episodic environment with a
// discrete, finite state space and a discrete, finite action space.
// States and actions are identified by their integer indices.
type Environment interface {
	Reset() timestep.TimeStep // Resets between episodes
	Step(action int) (timestep.TimeStep, bool)
	CurrentTimeStep() timestep.TimeStep

	NumStates() int
	NumActions() int
}
