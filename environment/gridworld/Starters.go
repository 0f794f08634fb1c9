package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/marsrover/environment"
)

// SingleStart starts every episode in the same position
type SingleStart struct {
	state    int
	position Position
}

// NewSingleStart returns a Starter that always starts episodes at
// position p of layout
func NewSingleStart(p Position, layout *Layout) (environment.Starter, error) {
	if !layout.InBounds(p) {
		return &SingleStart{}, fmt.Errorf("newSingleStart: start %v: %w", p,
			ErrOutOfBounds)
	}
	return &SingleStart{layout.StateOf(p), p}, nil
}

// Start returns the starting state
func (s *SingleStart) Start() int {
	return s.state
}

// Position returns the starting position
func (s *SingleStart) Position() Position {
	return s.position
}
