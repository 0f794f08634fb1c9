package trackers

import (
	"fmt"

	"github.com/samuelfneumann/marsrover/timestep"
)

// Success records, for each finished episode, 1 if the episode ended
// in a terminal state and 0 if it was truncated
type Success struct {
	successes []float64
	filename  string
}

// NewSuccess returns a new Success tracker saving to filename
func NewSuccess(filename string) *Success {
	return &Success{filename: filename}
}

// Track records the outcome of an episode on its last timestep
func (s *Success) Track(t timestep.TimeStep) {
	if !t.Last() {
		return
	}
	if t.Terminated() {
		s.successes = append(s.successes, 1)
	} else {
		s.successes = append(s.successes, 0)
	}
}

// Data returns the outcomes of all finished episodes
func (s *Success) Data() []float64 {
	return s.successes
}

// Save saves the data tracked by the Success Tracker to disk
func (s *Success) Save() error {
	if err := save(s.filename, s.successes); err != nil {
		return fmt.Errorf("success: %w", err)
	}
	return nil
}
